package registry

import (
	"go/types"

	"github.com/mpyw/singletonsafe/internal/typespec"
	"github.com/mpyw/singletonsafe/internal/typeutil"
)

// Registration binds a type spec to a lifetime.
type Registration struct {
	Spec     typespec.Spec
	Lifetime Lifetime
}

// Table is a read-only view of a DI container's registrations.
// It answers which lifetime, if any, a type is registered with.
type Table struct {
	registrations []Registration                // from flags and registration files
	objects       map[*types.TypeName]Lifetime // from directives
	fallback      func(*types.TypeName) (Lifetime, bool)
}

// New creates a new empty table.
func New() *Table {
	return &Table{
		objects: make(map[*types.TypeName]Lifetime),
	}
}

// Register adds spec-based registrations. A later registration of the same
// type overrides an earlier one, as in most containers.
func (t *Table) Register(regs ...Registration) {
	t.registrations = append(t.registrations, regs...)
}

// RegisterSpecs registers every spec with the same lifetime.
func (t *Table) RegisterSpecs(specs []typespec.Spec, lifetime Lifetime) {
	for _, spec := range specs {
		t.Register(Registration{Spec: spec, Lifetime: lifetime})
	}
}

// RegisterObject registers a type declared in source.
func (t *Table) RegisterObject(obj *types.TypeName, lifetime Lifetime) {
	t.objects[obj] = lifetime
}

// SetFallback installs a lookup used when neither specs nor objects match,
// e.g. analysis facts imported from dependencies.
func (t *Table) SetFallback(fn func(*types.TypeName) (Lifetime, bool)) {
	t.fallback = fn
}

// Len returns the number of explicit registrations (specs + objects).
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.registrations) + len(t.objects)
}

// LifetimeOf reports the lifetime typ is registered with.
// Pointers are unwrapped, so registering Service covers *Service.
func (t *Table) LifetimeOf(typ types.Type) Lifetime {
	if t == nil {
		return Unregistered
	}

	obj := typeutil.ObjectOf(typ)
	if obj == nil {
		return Unregistered
	}

	for i := len(t.registrations) - 1; i >= 0; i-- {
		if t.registrations[i].Spec.MatchesObject(obj) {
			return t.registrations[i].Lifetime
		}
	}

	if lifetime, ok := t.objects[obj]; ok {
		return lifetime
	}

	if t.fallback != nil {
		if lifetime, ok := t.fallback(obj); ok {
			return lifetime
		}
	}

	return Unregistered
}
