// Package members provides the go/types implementation of safety.Provider.
package members

import (
	"go/types"
	"slices"
	"strings"
	"unicode"

	"github.com/mpyw/singletonsafe/internal/safety"
	"github.com/mpyw/singletonsafe/internal/typeutil"
)

// Synthetic member names for built-in reference types.
const (
	PointeeName = "*"
	ElemName    = "[]"
	MapElemName = "[key]"
)

// Options supplies facts the type checker does not record.
type Options struct {
	// Trusted reports whether a field or method carries a trust marker.
	Trusted func(obj types.Object) bool

	// Mutated reports whether an unexported field is stored to after
	// construction.
	Mutated func(field *types.Var) bool
}

// Provider reads members from go/types.
//
// Go has no readonly fields, so a field counts as settable when it is
// exported or when its package stores to it after construction.
type Provider struct {
	opts Options
}

var _ safety.Provider = (*Provider)(nil)

// New creates a new Provider.
func New(opts Options) *Provider {
	return &Provider{opts: opts}
}

// Fields implements safety.Provider.
func (p *Provider) Fields(t types.Type) []safety.Member {
	t = types.Unalias(t)

	switch u := t.Underlying().(type) {
	case *types.Pointer:
		elem := types.Unalias(u.Elem())
		if st, ok := elem.Underlying().(*types.Struct); ok {
			return p.structFields(st, t)
		}
		return []safety.Member{synthetic(PointeeName, elem, t)}
	case *types.Struct:
		return p.structFields(u, t)
	case *types.Slice:
		return []safety.Member{synthetic(ElemName, u.Elem(), t)}
	case *types.Map:
		return []safety.Member{synthetic(MapElemName, u.Elem(), t)}
	case *types.Basic:
		if u.Kind() == types.UnsafePointer {
			return []safety.Member{synthetic(PointeeName, t, t)}
		}
	}

	return nil
}

// Events implements safety.Provider.
func (p *Provider) Events(t types.Type) []safety.Member {
	st := typeutil.StructOf(t)
	if st == nil {
		return nil
	}

	var events []safety.Member

	for f := range st.Fields() {
		if f.Embedded() || !typeutil.IsSubscriberList(f.Type()) {
			continue
		}

		events = append(events, safety.Member{
			Kind:    safety.EventMember,
			Name:    f.Name(),
			Type:    f.Type(),
			Owner:   t,
			Obj:     f,
			Trusted: p.trusted(f.Origin()),
		})
	}

	return events
}

// Properties implements safety.Provider.
func (p *Provider) Properties(t types.Type) []safety.Member {
	t = types.Unalias(t)

	if iface, ok := t.Underlying().(*types.Interface); ok {
		return p.interfaceProperties(iface, t)
	}

	named := typeutil.NamedOf(t)
	if named == nil {
		return nil
	}

	methods := make([]*types.Func, 0, named.NumMethods())
	for i := range named.NumMethods() {
		methods = append(methods, named.Method(i))
	}
	sortByPos(methods)

	st := typeutil.StructOf(named)

	var props []safety.Member

	for _, fn := range methods {
		name, typ, ok := setter(fn)
		if !ok {
			continue
		}

		props = append(props, safety.Member{
			Kind:        safety.PropertyMember,
			Name:        name,
			Type:        typ,
			Owner:       t,
			Obj:         fn,
			Settable:    true,
			Synthesized: hasField(st, name),
			Trusted:     p.trusted(fn.Origin()),
		})
	}

	return props
}

// interfaceProperties treats setters as settable properties and
// single-result getters without a setter as get-only properties.
func (p *Provider) interfaceProperties(iface *types.Interface, owner types.Type) []safety.Member {
	methods := make([]*types.Func, 0, iface.NumExplicitMethods())
	for i := range iface.NumExplicitMethods() {
		methods = append(methods, iface.ExplicitMethod(i))
	}
	sortByPos(methods)

	setters := make(map[string]bool)
	for _, fn := range methods {
		if name, _, ok := setter(fn); ok {
			setters[name] = true
		}
	}

	var props []safety.Member

	for _, fn := range methods {
		if name, typ, ok := setter(fn); ok {
			props = append(props, safety.Member{
				Kind:     safety.PropertyMember,
				Name:     name,
				Type:     typ,
				Owner:    owner,
				Obj:      fn,
				Settable: true,
				Trusted:  p.trusted(fn.Origin()),
			})
			continue
		}

		typ, ok := getter(fn)
		if !ok || setters[fn.Name()] {
			continue
		}

		props = append(props, safety.Member{
			Kind:    safety.PropertyMember,
			Name:    fn.Name(),
			Type:    typ,
			Owner:   owner,
			Obj:     fn,
			Trusted: p.trusted(fn.Origin()),
		})
	}

	return props
}

// Bases implements safety.Provider. Embedded fields and embedded
// interfaces are the ancestors of a type.
func (p *Provider) Bases(t types.Type) []types.Type {
	t = types.Unalias(t)

	if iface, ok := t.Underlying().(*types.Interface); ok {
		var bases []types.Type
		for i := range iface.NumEmbeddeds() {
			embedded := iface.EmbeddedType(i)
			if _, ok := embedded.Underlying().(*types.Interface); ok {
				bases = append(bases, embedded)
			}
		}
		return bases
	}

	st := typeutil.StructOf(t)
	if st == nil {
		return nil
	}

	var bases []types.Type
	for f := range st.Fields() {
		if f.Embedded() {
			bases = append(bases, f.Type())
		}
	}

	return bases
}

func (p *Provider) structFields(st *types.Struct, owner types.Type) []safety.Member {
	var fields []safety.Member

	for f := range st.Fields() {
		if f.Name() == "_" {
			continue
		}

		// An embedded field is named after its type and can be reassigned
		// like any other field.
		fields = append(fields, safety.Member{
			Kind:        safety.FieldMember,
			Name:        f.Name(),
			Type:        f.Type(),
			Owner:       owner,
			Obj:         f,
			Settable:    f.Exported() || p.mutated(f.Origin()),
			Synthesized: !f.Embedded() && typeutil.IsSubscriberList(f.Type()),
			Trusted:     p.trusted(f.Origin()),
			Embedded:    f.Embedded(),
		})
	}

	return fields
}

func (p *Provider) trusted(obj types.Object) bool {
	return p.opts.Trusted != nil && p.opts.Trusted(obj)
}

func (p *Provider) mutated(field *types.Var) bool {
	return p.opts.Mutated != nil && p.opts.Mutated(field)
}

// synthetic describes the mutation surface of a built-in reference type.
func synthetic(name string, typ, owner types.Type) safety.Member {
	return safety.Member{
		Kind:     safety.FieldMember,
		Name:     name,
		Type:     typ,
		Owner:    owner,
		Settable: true,
	}
}

// setter matches SetX(v T) and SetX(v T) error, returning X and T.
func setter(fn *types.Func) (string, types.Type, bool) {
	name := fn.Name()
	if len(name) <= len("Set") || !strings.HasPrefix(name, "Set") {
		return "", nil, false
	}

	rest := name[len("Set"):]
	if !unicode.IsUpper(rune(rest[0])) {
		return "", nil, false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Variadic() {
		return "", nil, false
	}

	switch sig.Results().Len() {
	case 0:
	case 1:
		if !isError(sig.Results().At(0).Type()) {
			return "", nil, false
		}
	default:
		return "", nil, false
	}

	return rest, sig.Params().At(0).Type(), true
}

// getter matches exported X() T.
func getter(fn *types.Func) (types.Type, bool) {
	if !fn.Exported() {
		return nil, false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return nil, false
	}

	return sig.Results().At(0).Type(), true
}

func hasField(st *types.Struct, name string) bool {
	if st == nil {
		return false
	}

	for f := range st.Fields() {
		if strings.EqualFold(f.Name(), name) {
			return true
		}
	}

	return false
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

func sortByPos(fns []*types.Func) {
	slices.SortStableFunc(fns, func(a, b *types.Func) int {
		return int(a.Pos() - b.Pos())
	})
}
