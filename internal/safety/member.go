package safety

import (
	"go/token"
	"go/types"
)

// MemberKind distinguishes the three kinds of state-bearing members.
type MemberKind int

const (
	// FieldMember is a struct field.
	FieldMember MemberKind = iota + 1
	// PropertyMember is an accessor method (setter, or getter on an interface).
	PropertyMember
	// EventMember is a subscriber list.
	EventMember
)

// String returns the lowercase member kind, as used in diagnostics.
func (k MemberKind) String() string {
	switch k {
	case FieldMember:
		return "field"
	case PropertyMember:
		return "property"
	case EventMember:
		return "event"
	default:
		return "member"
	}
}

// Member describes one field, property or event of a type or of one of its
// ancestors.
type Member struct {
	Kind MemberKind
	Name string

	// Type is the member's declared type.
	Type types.Type

	// Owner is the type in the ancestor chain that declares the member.
	Owner types.Type

	// Obj is the declaring *types.Var or *types.Func.
	// Nil for synthetic members of built-in reference types.
	Obj types.Object

	// Settable reports whether the member can be reassigned after construction.
	Settable bool

	// Synthesized marks members that only back another inspected member.
	Synthesized bool

	// Trusted marks members explicitly annotated as safe.
	Trusted bool

	// Embedded marks an embedded field. Its type is also an ancestor.
	Embedded bool
}

// Pos returns the declaring position, or token.NoPos.
func (m Member) Pos() token.Pos {
	if m.Obj == nil {
		return token.NoPos
	}

	return m.Obj.Pos()
}

// Provider supplies the members of a type.
//
// Each method returns only what t itself declares, in declaration order.
// Inherited members are reached by walking Bases.
type Provider interface {
	Fields(t types.Type) []Member
	Properties(t types.Type) []Member
	Events(t types.Type) []Member
	Bases(t types.Type) []types.Type
}
