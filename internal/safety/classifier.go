package safety

import (
	"go/types"

	"github.com/mpyw/singletonsafe/internal/typeutil"
)

// Classifier decides immutability from type shape alone.
type Classifier interface {
	// IsIntrinsicallyImmutable reports whether no value of t can be mutated
	// after construction through a shared reference.
	IsIntrinsicallyImmutable(t types.Type) bool

	// IsTopType reports whether t gives no guarantee at all about the
	// values it holds (any, unconstrained type parameters).
	IsTopType(t types.Type) bool
}

// ImmutabilityClassifier is the default Classifier.
//
// Immutable are:
//   - value types (basic types, structs, arrays), which are copied on read;
//   - channels, which synchronize internally;
//   - types on the Known list, looking through one pointer;
//   - instantiations of generic types on the Known list whose type
//     arguments are all immutable;
//   - type parameters whose constraint only admits immutable types.
type ImmutabilityClassifier struct {
	Known *TypeList
}

var _ Classifier = (*ImmutabilityClassifier)(nil)

// IsIntrinsicallyImmutable implements Classifier.
func (c *ImmutabilityClassifier) IsIntrinsicallyImmutable(t types.Type) bool {
	t = types.Unalias(t)

	if named := typeutil.NamedOf(t); named != nil && c.Known.Contains(named) {
		return c.typeArgsImmutable(named)
	}

	switch u := t.(type) {
	case *types.TypeParam:
		return c.constraintImmutable(u)
	case *types.Pointer:
		return false
	}

	return isValueType(t.Underlying())
}

// IsTopType implements Classifier.
func (c *ImmutabilityClassifier) IsTopType(t types.Type) bool {
	t = types.Unalias(t)

	if tp, ok := t.(*types.TypeParam); ok {
		return !c.constraintImmutable(tp)
	}

	return typeutil.IsEmptyInterface(t)
}

// typeArgsImmutable checks the arguments of an instantiated generic type.
// Non-generic types trivially pass.
func (c *ImmutabilityClassifier) typeArgsImmutable(named *types.Named) bool {
	args := named.TypeArgs()
	for i := range args.Len() {
		if !c.IsIntrinsicallyImmutable(args.At(i)) {
			return false
		}
	}

	return true
}

// constraintImmutable reports whether every type in tp's type set is immutable.
// Constraints without explicit terms (any, comparable, method-only) admit
// arbitrary types and never qualify.
func (c *ImmutabilityClassifier) constraintImmutable(tp *types.TypeParam) bool {
	iface, ok := tp.Constraint().Underlying().(*types.Interface)
	if !ok || iface.IsMethodSet() {
		return false
	}

	found := false

	for i := range iface.NumEmbeddeds() {
		union, ok := types.Unalias(iface.EmbeddedType(i)).(*types.Union)
		if !ok {
			// A single term such as ~int embeds the type directly.
			if !c.IsIntrinsicallyImmutable(iface.EmbeddedType(i)) {
				return false
			}
			found = true

			continue
		}

		for j := range union.Len() {
			if !c.IsIntrinsicallyImmutable(union.Term(j).Type()) {
				return false
			}
			found = true
		}
	}

	return found
}

// isValueType reports whether values of the underlying type u are copied on
// assignment. Channels are included: sharing one is the intended use.
func isValueType(u types.Type) bool {
	switch u := u.(type) {
	case *types.Basic:
		return u.Kind() != types.UnsafePointer && u.Kind() != types.UntypedNil && u.Kind() != types.Invalid
	case *types.Struct, *types.Array, *types.Chan:
		return true
	default:
		return false
	}
}
