// Package directives provides directive parsing for singletonsafe.
//
// # Overview
//
// This package contains subpackages for parsing comment directives
// that feed the analyzer:
//
//	directives/
//	├── lifetime/  # //singletonsafe:singleton, :scoped, :transient
//	└── trust/     # //singletonsafe:trusted
//
// # Directive Format
//
// All directives follow the format:
//
//	//singletonsafe:<directive> [args] [- reason]
//
// Examples:
//
//	//singletonsafe:singleton
//	//singletonsafe:transient - built per request
//	//singletonsafe:trusted - guarded by mu
//
// # Lifetime Directives
//
// Register the type declared on the next line (or on the same line):
//
//	//singletonsafe:singleton
//	type Service struct { ... }
//
// See [lifetime] package for details.
//
// # Trusted Directive
//
// Marks a struct field or setter method as safe to share:
//
//	type Service struct {
//	    mu    sync.Mutex
//	    count int //singletonsafe:trusted - guarded by mu
//	}
//
// See [trust] package for details.
package directives
