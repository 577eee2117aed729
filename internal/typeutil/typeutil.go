package typeutil

import (
	"go/types"
)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
// Aliases are resolved on both sides of the pointer.
func UnwrapPointer(t types.Type) types.Type {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		return types.Unalias(ptr.Elem())
	}

	return t
}

// NamedOf returns the named type behind t, looking through aliases and at
// most one pointer. It returns nil for unnamed types.
func NamedOf(t types.Type) *types.Named {
	named, ok := UnwrapPointer(t).(*types.Named)
	if !ok {
		return nil
	}

	return named
}

// ObjectOf returns the origin type name of the named type behind t.
// Instantiated generics resolve to their generic declaration.
func ObjectOf(t types.Type) *types.TypeName {
	named := NamedOf(t)
	if named == nil {
		return nil
	}

	return named.Origin().Obj()
}

// StructOf returns the struct type a value of t stores its fields in,
// looking through aliases, names and one pointer.
func StructOf(t types.Type) *types.Struct {
	st, ok := UnwrapPointer(t).Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	return st
}

// IsSubscriberList reports whether t is a slice or map of funcs, the shape
// of a hand-rolled event handler list.
func IsSubscriberList(t types.Type) bool {
	var elem types.Type

	switch u := types.Unalias(t).Underlying().(type) {
	case *types.Slice:
		elem = u.Elem()
	case *types.Map:
		elem = u.Elem()
	default:
		return false
	}

	_, ok := types.Unalias(elem).Underlying().(*types.Signature)

	return ok
}

// IsEmptyInterface reports whether t is any or interface{}.
func IsEmptyInterface(t types.Type) bool {
	iface, ok := types.Unalias(t).Underlying().(*types.Interface)
	if !ok {
		return false
	}

	return iface.NumMethods() == 0 && iface.IsMethodSet() && !iface.IsComparable()
}

// QualifiedName returns "pkg/path.Name" for the origin of a named type, or
// the empty string.
func QualifiedName(t types.Type) string {
	obj := ObjectOf(t)
	if obj == nil || obj.Pkg() == nil {
		return ""
	}

	return obj.Pkg().Path() + "." + obj.Name()
}
