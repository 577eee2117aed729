// Package typeutil provides go/types helpers shared by singletonsafe.
//
// # Overview
//
// Most lookups in singletonsafe are keyed on a named type regardless of
// whether a value is held directly or behind a pointer. The helpers in
// this package normalize a [types.Type] to that form:
//
//	NamedOf(*pkg.Service)  // pkg.Service
//	NamedOf(pkg.Service)   // pkg.Service
//	NamedOf([]pkg.Service) // nil
//
// Aliases are always resolved first, so `type S = pkg.Service` behaves as
// pkg.Service.
//
// # Shape Predicates
//
// [IsSubscriberList] recognizes event handler lists:
//
//	type Service struct {
//	    onChange []func(old, new string) // subscriber list
//	    hooks    map[string]func()       // subscriber list
//	    next     func()                  // single callback, not a list
//	}
//
// [IsEmptyInterface] recognizes the top type (any / interface{}).
package typeutil
