// Package ssa provides SSA access for singletonsafe.
//
// # Overview
//
// Go has no readonly fields. singletonsafe approximates "read-only after
// construction" by looking for stores in methods, which SSA makes explicit:
//
//	func (c *Counter) Inc() {
//	    c.n++
//	}
//
// becomes
//
//	t0 = &c.n [#0]     *ssa.FieldAddr
//	t1 = *t0           *ssa.UnOp
//	t2 = t1 + 1:int    *ssa.BinOp
//	*t0 = t2           *ssa.Store
//
// # Program Building
//
// Use [Build] to obtain the program from an analysis pass. The pass must
// require [BuildSSAAnalyzer]:
//
//	var Analyzer = &analysis.Analyzer{
//	    Requires: []*analysis.Analyzer{ssa.BuildSSAAnalyzer},
//	}
//
//	prog := ssa.Build(pass)
//	for _, fn := range prog.Methods() {
//	    // fn is a method or a closure inside one
//	}
//
// [Program.SrcFuncs] includes anonymous functions, so closures started by
// methods are covered: [Receiver] follows them to their enclosing method.
package ssa
