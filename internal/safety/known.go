package safety

import (
	"go/types"
	"slices"

	"github.com/mpyw/singletonsafe/internal/typespec"
)

// defaultKnownNotMutable lists library types that offer no unsynchronized
// mutation surface: they are immutable once built, or synchronize internally.
var defaultKnownNotMutable = []string{
	"regexp.Regexp",
	"iter.Seq",
	"iter.Seq2",
	"time.Location",
	"sync.Mutex",
	"sync.RWMutex",
	"sync.Once",
	"sync.WaitGroup",
	"sync.Map",
	"sync.Pool",
	"sync.Cond",
	"sync/atomic.Bool",
	"sync/atomic.Int32",
	"sync/atomic.Int64",
	"sync/atomic.Uint32",
	"sync/atomic.Uint64",
	"sync/atomic.Uintptr",
	"sync/atomic.Value",
	"sync/atomic.Pointer",
}

// DefaultKnownNotMutableTypes returns a fresh copy of the default allow-list.
func DefaultKnownNotMutableTypes() []typespec.Spec {
	return typespec.MustParse(defaultKnownNotMutable...)
}

// TypeList is a caller-extensible allow-list of named types.
// Generic entries match every instantiation of the type.
type TypeList struct {
	specs []typespec.Spec
}

// NewTypeList creates a list holding specs.
func NewTypeList(specs ...typespec.Spec) *TypeList {
	return &TypeList{specs: slices.Clone(specs)}
}

// Add appends specs to the list.
func (l *TypeList) Add(specs ...typespec.Spec) {
	l.specs = append(l.specs, specs...)
}

// Replace discards the current entries and installs specs.
func (l *TypeList) Replace(specs ...typespec.Spec) {
	l.specs = slices.Clone(specs)
}

// Remove drops every entry equal to spec.
func (l *TypeList) Remove(spec typespec.Spec) {
	l.specs = slices.DeleteFunc(l.specs, func(s typespec.Spec) bool {
		return s == spec
	})
}

// Specs returns a copy of the entries.
func (l *TypeList) Specs() []typespec.Spec {
	return slices.Clone(l.specs)
}

// Len returns the number of entries.
func (l *TypeList) Len() int {
	return len(l.specs)
}

// Contains reports whether the named type (or its generic origin) is listed.
func (l *TypeList) Contains(named *types.Named) bool {
	if l == nil || named == nil {
		return false
	}

	obj := named.Origin().Obj()
	for _, spec := range l.specs {
		if spec.MatchesObject(obj) {
			return true
		}
	}

	return false
}
