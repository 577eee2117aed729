// Package typespec provides "pkg/path.TypeName" specification parsing and matching.
package typespec

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/mpyw/singletonsafe/internal/typeutil"
)

// Spec identifies a named type.
// Format: "pkg/path.TypeName" (e.g., "github.com/example/app.Service").
type Spec struct {
	PkgPath  string
	TypeName string
}

// String returns the spec in its parsed form.
func (s Spec) String() string {
	return s.PkgPath + "." + s.TypeName
}

// Matches checks if the given type matches this spec.
// Pointers are unwrapped and instantiated generics match their origin.
func (s Spec) Matches(t types.Type) bool {
	obj := typeutil.ObjectOf(t)
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return s.MatchesObject(obj)
}

// MatchesObject checks if the type name matches this spec.
func (s Spec) MatchesObject(obj *types.TypeName) bool {
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return matchPkg(obj.Pkg().Path(), s.PkgPath) && obj.Name() == s.TypeName
}

// matchPkg checks if pkgPath matches targetPkg, allowing version suffixes.
func matchPkg(pkgPath, targetPkg string) bool {
	if pkgPath == targetPkg {
		return true
	}
	// Check for version suffix like /v2, /v3, etc.
	prefix := targetPkg + "/v"
	if !strings.HasPrefix(pkgPath, prefix) {
		return false
	}
	rest := pkgPath[len(prefix):]
	return len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9'
}

// ParseOne parses a single type specification.
func ParseOne(s string) (Spec, error) {
	s = strings.TrimSpace(s)

	lastDot := strings.LastIndex(s, ".")
	if lastDot <= 0 || lastDot == len(s)-1 || strings.Contains(s[lastDot+1:], "/") {
		return Spec{}, fmt.Errorf("invalid type spec %q: want pkg/path.TypeName", s)
	}

	return Spec{
		PkgPath:  s[:lastDot],
		TypeName: s[lastDot+1:],
	}, nil
}

// ParseList parses a comma-separated list of type specifications.
// Unlike Parse, it fails on the first malformed entry.
func ParseList(s string) ([]Spec, error) {
	var specs []Spec

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		spec, err := ParseOne(part)
		if err != nil {
			return nil, err
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

// MustParse parses specs that are known to be well-formed.
func MustParse(specs ...string) []Spec {
	out := make([]Spec, 0, len(specs))

	for _, s := range specs {
		spec, err := ParseOne(s)
		if err != nil {
			panic(err)
		}
		out = append(out, spec)
	}

	return out
}
