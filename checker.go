package singletonsafe

import (
	"go/types"
	"log/slog"

	"github.com/mpyw/singletonsafe/internal/members"
	"github.com/mpyw/singletonsafe/internal/registry"
	"github.com/mpyw/singletonsafe/internal/safety"
	"github.com/mpyw/singletonsafe/internal/typespec"
)

// Library surface for checking go/types types outside an analysis pass,
// e.g. from a test that loads the application's packages.
type (
	// Checker evaluates types and memoizes verdicts. Not safe for concurrent use.
	Checker = safety.Analyzer
	// Verdict is the result of evaluating a type.
	Verdict = safety.Verdict
	// Violation pairs a member with the reason it is unsafe.
	Violation = safety.Violation
	// ViolationKind classifies a violation.
	ViolationKind = safety.ViolationKind
	// Member describes a field, property or event.
	Member = safety.Member
	// TypeSpec identifies a named type as "pkg/path.TypeName".
	TypeSpec = typespec.Spec
	// TypeList is the allow-list returned by Checker.KnownNotMutableTypes.
	TypeList = safety.TypeList
	// Registrations answers lifetime queries.
	Registrations = safety.Registrations
	// RegistrationTable is the default Registrations implementation.
	RegistrationTable = registry.Table
	// Registration binds a type spec to a lifetime.
	Registration = registry.Registration
	// Lifetime is a DI lifetime.
	Lifetime = registry.Lifetime
)

const (
	NonReadonlyMember        = safety.NonReadonlyMember
	MutableReadonlyMember    = safety.MutableReadonlyMember
	NonSingletonRegistration = safety.NonSingletonRegistration
	EventFound               = safety.EventFound

	Unregistered = registry.Unregistered
	Shared       = registry.Shared
	NonShared    = registry.NonShared
)

// ErrNilType is returned when a nil type is checked.
var ErrNilType = safety.ErrNilType

// CheckerConfig configures NewChecker.
type CheckerConfig struct {
	// Registrations answers lifetime queries. Nil means nothing is registered.
	Registrations Registrations

	// KnownNotMutableTypes seeds the allow-list. Nil means
	// DefaultKnownNotMutableTypes.
	KnownNotMutableTypes []TypeSpec

	// Trusted reports whether a field or setter method is explicitly trusted.
	Trusted func(obj types.Object) bool

	// Mutated reports whether an unexported field is stored to after
	// construction. Without it only exported fields count as settable.
	Mutated func(field *types.Var) bool

	// Policy filters violations. Returning false drops one.
	Policy func(Violation) bool

	// Logger receives debug traces.
	Logger *slog.Logger
}

// NewChecker creates a Checker over go/types.
func NewChecker(cfg CheckerConfig) (*Checker, error) {
	return safety.New(safety.Config{
		Provider: members.New(members.Options{
			Trusted: cfg.Trusted,
			Mutated: cfg.Mutated,
		}),
		Registrations:        cfg.Registrations,
		KnownNotMutableTypes: cfg.KnownNotMutableTypes,
		Policy:               cfg.Policy,
		Logger:               cfg.Logger,
	})
}

// NewRegistrationTable creates an empty registration table.
func NewRegistrationTable() *RegistrationTable {
	return registry.New()
}

// LoadRegistrations reads a YAML or TOML registration snapshot.
func LoadRegistrations(path string) ([]Registration, error) {
	return registry.Load(path)
}

// ParseTypeSpec parses "pkg/path.TypeName".
func ParseTypeSpec(s string) (TypeSpec, error) {
	return typespec.ParseOne(s)
}

// DefaultKnownNotMutableTypes returns the default allow-list.
func DefaultKnownNotMutableTypes() []TypeSpec {
	return safety.DefaultKnownNotMutableTypes()
}
