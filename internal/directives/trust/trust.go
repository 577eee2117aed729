// Package trust handles //singletonsafe:trusted directives.
package trust

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/singletonsafe/internal/directives"
)

// Name is the directive name.
const Name = "trusted"

// Set holds the fields and methods marked as trusted.
type Set map[types.Object]directives.Directive

// Build scans files for struct fields and methods carrying the directive.
// The directive may be the doc comment or the trailing line comment:
//
//	//singletonsafe:trusted - guarded by mu
//	count int
//
//	count int //singletonsafe:trusted
func Build(info *types.Info, insp *inspector.Inspector) Set {
	s := make(Set)

	nodeFilter := []ast.Node{
		(*ast.StructType)(nil),
		(*ast.FuncDecl)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch node := n.(type) {
		case *ast.StructType:
			s.addFields(info, node)
		case *ast.FuncDecl:
			if node.Recv == nil {
				return
			}
			if d, ok := directives.Find(isTrusted, node.Doc); ok {
				s.add(info.Defs[node.Name], d)
			}
		}
	})

	return s
}

func (s Set) addFields(info *types.Info, st *ast.StructType) {
	for _, field := range st.Fields.List {
		d, ok := directives.Find(isTrusted, field.Doc, field.Comment)
		if !ok {
			continue
		}

		for _, name := range field.Names {
			s.add(info.Defs[name], d)
		}
	}
}

func (s Set) add(obj types.Object, d directives.Directive) {
	if obj != nil {
		s[obj] = d
	}
}

// Contains reports whether obj is trusted.
func (s Set) Contains(obj types.Object) bool {
	_, ok := s[obj]
	return ok
}

func isTrusted(name string) bool {
	return name == Name
}
