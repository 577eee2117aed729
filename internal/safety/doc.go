// Package safety infers whether a type can be shared as a singleton without
// exposing unsynchronized mutable state.
//
// # Overview
//
// An [Analyzer] walks the fields, properties and events of a type and of
// every ancestor, and classifies each member:
//
//	┌──────────────────────────────┬───────────────────────────────────┐
//	│ Member                       │ Result                            │
//	├──────────────────────────────┼───────────────────────────────────┤
//	│ trusted                      │ skipped                           │
//	│ settable field / property    │ NonReadonlyMember                 │
//	│ event                        │ EventFound                        │
//	│ read-only, immutable type    │ ok                                │
//	│ read-only, singleton type    │ ok                                │
//	│ read-only, scoped/transient  │ NonSingletonRegistration          │
//	│ read-only, any               │ MutableReadonlyMember             │
//	│ read-only, other type T      │ recurse into T                    │
//	└──────────────────────────────┴───────────────────────────────────┘
//
// Recursion reports MutableReadonlyMember when T has violations, and marks
// the verdict NotFullyChecked when T is part of a cycle that is still
// being evaluated.
//
// # Cycles and Memoization
//
// The verdict cache doubles as the visited set. Before walking a type the
// analyzer stores an in-progress entry; meeting that entry again returns a
// fresh inconclusive verdict instead of recursing:
//
//	type A struct{ b *B }
//	type B struct{ a *A }
//
//	Evaluate(*A)
//	  └─ b: Evaluate(*B)
//	       └─ a: Evaluate(*A) -> in progress -> NotFullyChecked
//
// Resolved verdicts stay cached until [Analyzer.ClearCache].
//
// # Known Limitations
//
// A member whose type is registered as a singleton anywhere is accepted,
// even when the enclosing type is built by hand outside the container.
// It is a known source of false negatives.
//
// The Analyzer holds no locks. Concurrent callers must serialize access or
// use one Analyzer each.
package safety
