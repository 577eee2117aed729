// Package mutation finds struct fields that are stored to after construction.
package mutation

import (
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ssa"

	internalssa "github.com/mpyw/singletonsafe/internal/ssa"
)

// Set records fields stored to by methods, keyed by origin field.
type Set struct {
	fields map[*types.Var]token.Pos // field -> first store position
}

// Scan collects the fields stored to by the methods of prog.
func Scan(prog *internalssa.Program) *Set {
	return ScanFuncs(prog.Methods())
}

// ScanFuncs collects the fields stored to by fns.
// Callers pass only methods and closures nested in methods: stores made by
// plain functions are construction, not mutation.
func ScanFuncs(fns []*ssa.Function) *Set {
	s := &Set{fields: make(map[*types.Var]token.Pos)}

	for _, fn := range fns {
		for _, block := range fn.Blocks {
			for _, instr := range block.Instrs {
				store, ok := instr.(*ssa.Store)
				if !ok {
					continue
				}

				for _, field := range storedFields(store.Addr) {
					if _, seen := s.fields[field]; !seen {
						s.fields[field] = store.Pos()
					}
				}
			}
		}
	}

	return s
}

// Contains reports whether field is stored to after construction.
func (s *Set) Contains(field *types.Var) bool {
	if s == nil || field == nil {
		return false
	}

	_, ok := s.fields[field.Origin()]

	return ok
}

// Len returns the number of mutated fields.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.fields)
}

// Fields returns the mutated fields in position order.
func (s *Set) Fields() []*types.Var {
	if s == nil {
		return nil
	}

	fields := make([]*types.Var, 0, len(s.fields))
	for f := range s.fields {
		fields = append(fields, f)
	}

	slices.SortFunc(fields, func(a, b *types.Var) int {
		return int(a.Pos() - b.Pos())
	})

	return fields
}

// storedFields walks the address of a store back through field and array
// selections. Every field on the way is written: c.cfg.timeout = x writes
// both timeout and cfg. Addresses rooted in a local allocation write a
// fresh or copied value and are ignored.
func storedFields(addr ssa.Value) []*types.Var {
	var path []*types.Var

	for {
		switch v := addr.(type) {
		case *ssa.FieldAddr:
			if f := fieldOf(v); f != nil {
				path = append(path, f)
			}
			addr = v.X
		case *ssa.IndexAddr:
			// Slice elements live outside the struct; only arrays are inline.
			if _, ok := v.X.Type().Underlying().(*types.Pointer); !ok {
				return path
			}
			addr = v.X
		case *ssa.Alloc:
			return nil
		default:
			return path
		}
	}
}

func fieldOf(fa *ssa.FieldAddr) *types.Var {
	ptr, ok := fa.X.Type().Underlying().(*types.Pointer)
	if !ok {
		return nil
	}

	st, ok := ptr.Elem().Underlying().(*types.Struct)
	if !ok || fa.Field >= st.NumFields() {
		return nil
	}

	return st.Field(fa.Field).Origin()
}
