package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLifetime is returned when a lifetime name is not recognized.
var ErrUnknownLifetime = errors.New("unknown lifetime")

// Lifetime is the DI lifetime a type is registered with.
type Lifetime int

const (
	// Unregistered means the type has no registration.
	Unregistered Lifetime = iota
	// Shared means one instance is shared for the life of the container (singleton).
	Shared
	// NonShared means instances vary per scope or per resolution (scoped, transient).
	NonShared
)

// String returns the lifetime name.
func (l Lifetime) String() string {
	switch l {
	case Shared:
		return "shared"
	case NonShared:
		return "non-shared"
	default:
		return "unregistered"
	}
}

// ParseLifetime maps a container lifetime name to a Lifetime.
//
// Accepted names (case-insensitive):
//   - singleton          -> Shared
//   - scoped, transient  -> NonShared
func ParseLifetime(s string) (Lifetime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singleton":
		return Shared, nil
	case "scoped", "transient":
		return NonShared, nil
	default:
		return Unregistered, fmt.Errorf("%w: %q", ErrUnknownLifetime, s)
	}
}
