package safety

// ViolationKind classifies why a member is unsafe to share.
type ViolationKind int

const (
	// NonReadonlyMember means the member can be reassigned after construction.
	NonReadonlyMember ViolationKind = iota + 1
	// MutableReadonlyMember means the reference is fixed but its type is mutable.
	MutableReadonlyMember
	// NonSingletonRegistration means the member's type is registered with a
	// non-shared lifetime and should not be captured by a singleton.
	NonSingletonRegistration
	// EventFound means the member is a subscriber list.
	EventFound
)

// String returns the violation kind name.
func (k ViolationKind) String() string {
	switch k {
	case NonReadonlyMember:
		return "NonReadonlyMember"
	case MutableReadonlyMember:
		return "MutableReadonlyMember"
	case NonSingletonRegistration:
		return "NonSingletonRegistration"
	case EventFound:
		return "EventFound"
	default:
		return "Unknown"
	}
}

// Violation pairs a member with the reason it is unsafe.
type Violation struct {
	Member Member
	Kind   ViolationKind
}

// Verdict is the result of evaluating a type.
//
// Verdicts returned by the Analyzer are cached and shared; callers must not
// modify them.
type Verdict struct {
	// Violations in discovery order: fields, then properties, then events,
	// each walking the type before its ancestors.
	Violations []Violation

	// NotFullyChecked is set when some member could not be cleared because a
	// type it depends on was still being evaluated (a cycle).
	NotFullyChecked bool
}

// safeVerdict is returned for intrinsically immutable types.
var safeVerdict = &Verdict{}

// Conclusive reports whether the verdict was fully determined.
func (v *Verdict) Conclusive() bool {
	return !v.NotFullyChecked
}

// HasViolations reports whether any violation was found.
func (v *Verdict) HasViolations() bool {
	return len(v.Violations) > 0
}

// IsSafe reports whether the verdict is conclusive and has no violations.
func (v *Verdict) IsSafe() bool {
	return v.Conclusive() && !v.HasViolations()
}

// outcome is the result of classifying a single member.
type outcome int

const (
	clean outcome = iota
	violated
	// potentiallySafe means a dependency is still being evaluated.
	potentiallySafe
)
