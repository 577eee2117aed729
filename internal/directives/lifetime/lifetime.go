// Package lifetime handles //singletonsafe:singleton, :scoped and :transient directives.
package lifetime

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/singletonsafe/internal/directives"
	"github.com/mpyw/singletonsafe/internal/registry"
)

// Entry is a type registered by directive.
type Entry struct {
	Obj       *types.TypeName
	Lifetime  registry.Lifetime
	Directive directives.Directive
}

// Build scans type declarations carrying a lifetime directive.
// Entries are returned in source order.
func Build(info *types.Info, insp *inspector.Inspector) []Entry {
	var entries []Entry

	nodeFilter := []ast.Node{
		(*ast.GenDecl)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		gd := n.(*ast.GenDecl)
		if gd.Tok != token.TYPE {
			return
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			groups := []*ast.CommentGroup{ts.Doc, ts.Comment}
			if !gd.Lparen.IsValid() {
				// Ungrouped declarations keep their doc on the GenDecl.
				groups = append(groups, gd.Doc)
			}

			d, ok := directives.Find(IsLifetime, groups...)
			if !ok {
				continue
			}

			obj, ok := info.Defs[ts.Name].(*types.TypeName)
			if !ok {
				continue
			}

			lifetime, err := registry.ParseLifetime(d.Name)
			if err != nil {
				continue
			}

			entries = append(entries, Entry{Obj: obj, Lifetime: lifetime, Directive: d})
		}
	})

	return entries
}

// IsLifetime reports whether a directive name is a lifetime.
func IsLifetime(name string) bool {
	_, err := registry.ParseLifetime(name)
	return err == nil
}
