// Package ssa provides SSA access for singletonsafe.
package ssa

import (
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/ssa"
)

// BuildSSAAnalyzer is the buildssa analyzer that must be in Requires.
var BuildSSAAnalyzer = buildssa.Analyzer

// Program wraps an SSA program with the analyzed package.
type Program struct {
	*ssa.Program
	Pkg      *ssa.Package
	SrcFuncs []*ssa.Function
}

// Build creates an SSA program from the analysis pass.
// This requires buildssa.Analyzer to be in the pass's Requires.
func Build(pass *analysis.Pass) *Program {
	ssaResult, ok := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)
	if !ok || ssaResult == nil {
		return nil
	}

	return &Program{
		Program:  ssaResult.Pkg.Prog,
		Pkg:      ssaResult.Pkg,
		SrcFuncs: ssaResult.SrcFuncs,
	}
}

// Receiver returns the receiver of the method fn belongs to, following
// anonymous functions up to their enclosing declaration.
// It returns nil for plain functions.
func Receiver(fn *ssa.Function) *types.Var {
	for fn.Parent() != nil {
		fn = fn.Parent()
	}

	return fn.Signature.Recv()
}

// Methods returns the source functions that belong to a method, including
// closures declared inside methods.
func (p *Program) Methods() []*ssa.Function {
	if p == nil {
		return nil
	}

	var methods []*ssa.Function
	for _, fn := range p.SrcFuncs {
		if Receiver(fn) != nil {
			methods = append(methods, fn)
		}
	}

	return methods
}
