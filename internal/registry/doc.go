// Package registry provides the registration table singletonsafe consults
// to learn how a type is registered in a DI container.
//
// # Overview
//
// The analyzer never resolves anything from a container. It only needs a
// read-only answer to one question per type:
//
//	table.LifetimeOf(typ) // Shared, NonShared or Unregistered
//
// # Sources
//
// A [Table] is filled from three sources, checked in this order:
//
//	┌──────────────────────────────┬─────────────────────────────────────┐
//	│ Source                       │ Example                             │
//	├──────────────────────────────┼─────────────────────────────────────┤
//	│ -singletons / -transients    │ -singletons=example.com/app.Service │
//	│ -registrations file          │ registrations.yaml / .toml          │
//	│ //singletonsafe:<lifetime>   │ directive on a type declaration     │
//	│ fallback                     │ lifetime facts from dependencies    │
//	└──────────────────────────────┴─────────────────────────────────────┘
//
// Flag and file entries are [Registration] values matched by
// [typespec.Spec]; the last matching entry wins.
//
// # Registration Files
//
// [Load] accepts YAML or TOML, chosen by extension:
//
//	registrations:
//	  - type: example.com/app.Service
//	    lifetime: singleton
//	  - type: example.com/app.RequestScope
//	    lifetime: scoped
//
//	[[registrations]]
//	type = "example.com/app.Service"
//	lifetime = "singleton"
//
// Lifetime names follow common container vocabulary: singleton is
// [Shared]; scoped and transient are [NonShared].
package registry
