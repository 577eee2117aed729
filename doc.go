// Package singletonsafe provides a go/analysis based analyzer for detecting
// singleton-registered types that expose unsynchronized mutable state.
//
// # Architecture Overview
//
//	                        +------------------+
//	                        |   analyzer.go    |  Entry point, flags, facts
//	                        +--------+---------+
//	                                 |
//	      +--------------------------+--------------------------+
//	      |                          |                          |
//	+-----v------+          +--------v---------+       +--------v--------+
//	| directives |          |     mutation     |       |    registry     |
//	| trust      |          |  (SSA stores in  |       | (flags, YAML or |
//	| lifetime   |          |     methods)     |       |   TOML files)   |
//	+-----+------+          +--------+---------+       +--------+--------+
//	      |                          |                          |
//	      +------------+-------------+                          |
//	                   |                                        |
//	          +--------v---------+                              |
//	          |     members      |  go/types member provider    |
//	          +--------+---------+                              |
//	                   |                                        |
//	          +--------v---------+                              |
//	          |      safety      |<-----------------------------+
//	          +--------+---------+
//	                   |
//	          +--------v---------+
//	          |    report.go     |  Diagnostics
//	          +------------------+
//
// # Execution Flow
//
//  1. Directives are collected: //singletonsafe:trusted on fields and
//     methods, //singletonsafe:singleton, :scoped and :transient on types.
//  2. SSA finds unexported fields stored to by methods.
//  3. Both are exported as facts so importing packages see them.
//  4. The registration table is built from directives, the -registrations
//     file and the -singletons / -transients flags, falling back to facts.
//  5. Every package-level type registered as a singleton is evaluated and
//     its violations are reported via pass.Reportf.
//
// # Directives
//
//	//singletonsafe:singleton
//	type Service struct {
//	    //singletonsafe:trusted - guarded by mu
//	    hits int
//	    mu   sync.Mutex
//	}
//
// Outside an analysis pass, [NewChecker] evaluates go/types types directly.
package singletonsafe
