package singletonsafe

import (
	"fmt"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/singletonsafe/internal/registry"
	"github.com/mpyw/singletonsafe/internal/safety"
)

// checkSingletons evaluates every package-level type registered as a
// singleton and reports its violations.
func checkSingletons(pass *analysis.Pass, checker *safety.Analyzer, table *registry.Table, skipFiles map[string]bool) {
	scope := pass.Pkg.Scope()

	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() || skipFiles[pass.Fset.Position(obj.Pos()).Filename] {
			continue
		}

		named, ok := obj.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue // Open generics have no concrete shape to check
		}

		if table.LifetimeOf(named) != registry.Shared {
			continue
		}

		verdict, err := checker.Evaluate(checkTarget(named))
		if err != nil {
			continue
		}

		for _, v := range verdict.Violations {
			pass.Reportf(reportPos(pass, obj, v.Member, skipFiles), "%s", message(pass, obj.Name(), v))
		}

		if reportIncomplete && !verdict.Conclusive() {
			pass.Reportf(obj.Pos(),
				"singleton %s could not be fully checked: cyclic type dependency needs manual review", obj.Name())
		}
	}
}

// checkTarget returns the type a container hands out for named.
// Struct singletons are shared by pointer; a struct value would be copied.
func checkTarget(named *types.Named) types.Type {
	if _, ok := named.Underlying().(*types.Struct); ok {
		return types.NewPointer(named)
	}

	return named
}

// reportPos returns the member's position when it is declared in this
// package, otherwise the singleton's.
func reportPos(pass *analysis.Pass, singleton *types.TypeName, m safety.Member, skipFiles map[string]bool) token.Pos {
	if m.Obj == nil || m.Obj.Pkg() != pass.Pkg || !m.Pos().IsValid() {
		return singleton.Pos()
	}

	if skipFiles[pass.Fset.Position(m.Pos()).Filename] {
		return singleton.Pos()
	}

	return m.Pos()
}

// message formats a violation for a singleton.
func message(pass *analysis.Pass, singleton string, v safety.Violation) string {
	m := v.Member
	qualifier := types.RelativeTo(pass.Pkg)

	switch v.Kind {
	case safety.NonReadonlyMember:
		return fmt.Sprintf("%s %q of singleton %s is not read-only", m.Kind, m.Name, singleton)
	case safety.MutableReadonlyMember:
		return fmt.Sprintf("%s %q of singleton %s holds mutable type %s",
			m.Kind, m.Name, singleton, types.TypeString(m.Type, qualifier))
	case safety.NonSingletonRegistration:
		return fmt.Sprintf("%s %q of singleton %s captures %s registered with a non-singleton lifetime",
			m.Kind, m.Name, singleton, types.TypeString(m.Type, qualifier))
	case safety.EventFound:
		return fmt.Sprintf("event %q of singleton %s has a mutable subscriber list", m.Name, singleton)
	default:
		return fmt.Sprintf("%s %q of singleton %s: %s", m.Kind, m.Name, singleton, v.Kind)
	}
}
