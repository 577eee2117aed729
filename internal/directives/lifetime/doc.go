// Package lifetime provides lifetime directive parsing.
//
// # Overview
//
// Lifetime directives register a type the way the application's DI
// container does, without a separate registration file:
//
//	//singletonsafe:singleton
//	type Service struct { ... }      // checked by the analyzer
//
//	//singletonsafe:scoped
//	type RequestContext struct { ... }
//
//	//singletonsafe:transient
//	type Builder struct { ... }
//
// # Directive Placement
//
// The directive is read from the type's doc comment or its trailing line
// comment. Inside a grouped declaration each spec carries its own:
//
//	type (
//	    //singletonsafe:singleton
//	    Clock struct{}
//
//	    Builder struct{} //singletonsafe:transient
//	)
//
// # Lifetimes
//
//	┌────────────┬──────────────────────┐
//	│ Directive  │ Lifetime             │
//	├────────────┼──────────────────────┤
//	│ singleton  │ registry.Shared      │
//	│ scoped     │ registry.NonShared   │
//	│ transient  │ registry.NonShared   │
//	└────────────┴──────────────────────┘
//
// Registered types are exported as facts so importing packages resolve
// them too.
package lifetime
