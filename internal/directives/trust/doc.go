// Package trust provides //singletonsafe:trusted directive parsing.
//
// # Overview
//
// Some shared state is safe for reasons the analyzer cannot see, such as a
// field only touched while holding a mutex. The trusted directive opts a
// single member out of the check:
//
//	//singletonsafe:singleton
//	type Cache struct {
//	    mu      sync.Mutex
//	    entries map[string]string //singletonsafe:trusted - guarded by mu
//	}
//
// # Directive Placement
//
// The directive is read from the member's doc comment or its trailing line
// comment. It applies to every name declared by the field:
//
//	//singletonsafe:trusted
//	a, b int // both trusted
//
// Setter methods can be trusted as well:
//
//	//singletonsafe:trusted - only called during startup
//	func (c *Cache) SetLimit(n int) { ... }
//
// Subscriber lists (events) are always reported; the directive does not
// apply to them.
//
// # Cross-Package Use
//
// The analyzer exports a fact for each trusted object so that packages
// embedding or referencing the type see the same markers.
package trust
