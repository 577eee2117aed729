package safety

import (
	"errors"
	"go/types"
	"log/slog"
	"slices"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/mpyw/singletonsafe/internal/registry"
	internaltypeutil "github.com/mpyw/singletonsafe/internal/typeutil"
	"github.com/mpyw/singletonsafe/internal/typespec"
)

var (
	// ErrNilType is returned when Check or Evaluate is called without a type.
	ErrNilType = errors.New("safety: type is nil")
	// ErrNoProvider is returned by New when Config.Provider is nil.
	ErrNoProvider = errors.New("safety: member provider is required")
)

// Registrations reports how a type is registered in the DI container.
type Registrations interface {
	LifetimeOf(t types.Type) registry.Lifetime
}

// Policy filters violations before they are recorded.
// Returning false drops the violation.
type Policy func(Violation) bool

// Config holds the strategies an Analyzer is built from.
type Config struct {
	// Provider supplies type members. Required.
	Provider Provider

	// Registrations answers lifetime queries. Nil means nothing is registered.
	Registrations Registrations

	// Classifier overrides the default ImmutabilityClassifier.
	// A custom classifier does not consult KnownNotMutableTypes.
	Classifier Classifier

	// KnownNotMutableTypes seeds the allow-list. Nil means
	// DefaultKnownNotMutableTypes.
	KnownNotMutableTypes []typespec.Spec

	// Policy filters violations. Nil keeps all of them.
	Policy Policy

	// Logger receives debug traces. Nil discards them.
	Logger *slog.Logger
}

type entryState int

const (
	inProgress entryState = iota + 1
	resolved
)

// cacheEntry is the per-type evaluation state. A missing entry means the
// type has not been started.
type cacheEntry struct {
	state   entryState
	verdict *Verdict
}

// Analyzer evaluates types recursively and memoizes verdicts.
//
// An Analyzer is not safe for concurrent use. Callers that share one
// between goroutines must serialize calls themselves.
type Analyzer struct {
	provider      Provider
	registrations Registrations
	classifier    Classifier
	known         *TypeList
	policy        Policy
	logger        *slog.Logger
	cache         *typeutil.Map // types.Type -> *cacheEntry
}

// New creates an Analyzer from cfg.
func New(cfg Config) (*Analyzer, error) {
	if cfg.Provider == nil {
		return nil, ErrNoProvider
	}

	known := cfg.KnownNotMutableTypes
	if known == nil {
		known = DefaultKnownNotMutableTypes()
	}

	a := &Analyzer{
		provider:      cfg.Provider,
		registrations: cfg.Registrations,
		classifier:    cfg.Classifier,
		known:         NewTypeList(known...),
		policy:        cfg.Policy,
		logger:        cfg.Logger,
		cache:         new(typeutil.Map),
	}

	if a.registrations == nil {
		a.registrations = registry.New()
	}
	if a.classifier == nil {
		a.classifier = &ImmutabilityClassifier{Known: a.known}
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}

	return a, nil
}

// KnownNotMutableTypes returns the live allow-list used by the default
// classifier. Changes take effect on types not yet cached.
func (a *Analyzer) KnownNotMutableTypes() *TypeList {
	return a.known
}

// Check returns the violations found in t, in discovery order.
// The slice is a copy the caller may modify.
func (a *Analyzer) Check(t types.Type) ([]Violation, error) {
	v, err := a.Evaluate(t)
	if err != nil {
		return nil, err
	}

	return slices.Clone(v.Violations), nil
}

// Evaluate returns the verdict for t. Repeated calls return the same
// cached verdict until ClearCache.
func (a *Analyzer) Evaluate(t types.Type) (*Verdict, error) {
	if t == nil {
		return nil, ErrNilType
	}

	return a.evaluate(types.Unalias(t)), nil
}

// ClearCache discards all memoized verdicts.
func (a *Analyzer) ClearCache() {
	a.cache = new(typeutil.Map)
}

func (a *Analyzer) evaluate(t types.Type) *Verdict {
	if a.classifier.IsIntrinsicallyImmutable(t) {
		return safeVerdict
	}

	entry, _ := a.cache.At(t).(*cacheEntry)
	switch {
	case entry == nil:
		a.cache.Set(t, &cacheEntry{state: inProgress})
	case entry.state == resolved:
		return entry.verdict
	default:
		// t is being evaluated further up the stack.
		a.logger.Debug("cycle detected", slog.String("type", t.String()))
		return &Verdict{NotFullyChecked: true}
	}

	v := a.walk(t)
	a.cache.Set(t, &cacheEntry{state: resolved, verdict: v})

	a.logger.Debug("evaluated",
		slog.String("type", t.String()),
		slog.Int("violations", len(v.Violations)),
		slog.Bool("conclusive", v.Conclusive()),
	)

	return v
}

// walk classifies every member of t and its ancestors.
func (a *Analyzer) walk(t types.Type) *Verdict {
	var fields, props, events []Member

	for _, typ := range a.ancestry(t) {
		fields = append(fields, a.provider.Fields(typ)...)
		props = append(props, a.provider.Properties(typ)...)
		events = append(events, a.provider.Events(typ)...)
	}

	eventNames := make(map[string]bool, len(events))
	for _, ev := range events {
		eventNames[ev.Name] = true
	}

	v := &Verdict{}

	for _, m := range fields {
		if m.Synthesized && eventNames[m.Name] {
			continue
		}
		a.record(v, m, a.classifyField)
	}

	for _, m := range props {
		if m.Synthesized && eventNames[m.Name] {
			continue
		}
		a.record(v, m, a.classifyProperty)
	}

	for _, m := range events {
		a.record(v, m, classifyEvent)
	}

	return v
}

// ancestry returns t followed by its ancestors, breadth-first, each once.
// A value and a pointer to it count as the same ancestor.
func (a *Analyzer) ancestry(t types.Type) []types.Type {
	chain := []types.Type{t}

	var seen typeutil.Map
	seen.Set(internaltypeutil.UnwrapPointer(t), true)

	for i := 0; i < len(chain); i++ {
		for _, base := range a.provider.Bases(chain[i]) {
			if base == nil {
				continue
			}

			key := internaltypeutil.UnwrapPointer(base)
			if seen.At(key) != nil {
				continue
			}
			seen.Set(key, true)

			chain = append(chain, base)
		}
	}

	return chain
}

func (a *Analyzer) record(v *Verdict, m Member, classify func(Member) (outcome, ViolationKind)) {
	out, kind := classify(m)

	switch out {
	case violated:
		violation := Violation{Member: m, Kind: kind}
		if a.policy == nil || a.policy(violation) {
			v.Violations = append(v.Violations, violation)
		}
	case potentiallySafe:
		v.NotFullyChecked = true
	}
}

func (a *Analyzer) classifyField(m Member) (outcome, ViolationKind) {
	if m.Trusted {
		return clean, 0
	}
	if m.Settable {
		return violated, NonReadonlyMember
	}
	if m.Embedded {
		// The embedded type is walked as an ancestor.
		return clean, 0
	}

	return a.classifyMember(m)
}

func (a *Analyzer) classifyProperty(m Member) (outcome, ViolationKind) {
	if m.Synthesized || m.Trusted {
		return clean, 0
	}
	if m.Settable {
		return violated, NonReadonlyMember
	}

	return a.classifyMember(m)
}

func classifyEvent(Member) (outcome, ViolationKind) {
	return violated, EventFound
}

// classifyMember judges a read-only member by its declared type.
func (a *Analyzer) classifyMember(m Member) (outcome, ViolationKind) {
	t := types.Unalias(m.Type)

	lifetime := a.registrations.LifetimeOf(t)
	if a.classifier.IsIntrinsicallyImmutable(t) || lifetime == registry.Shared {
		return clean, 0
	}
	if lifetime == registry.NonShared {
		return violated, NonSingletonRegistration
	}
	if a.classifier.IsTopType(t) {
		return violated, MutableReadonlyMember
	}

	sub := a.evaluate(t)
	switch {
	case sub.HasViolations():
		return violated, MutableReadonlyMember
	case sub.NotFullyChecked:
		return potentiallySafe, 0
	default:
		return clean, 0
	}
}
