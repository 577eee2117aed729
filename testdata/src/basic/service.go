package basic

import (
	"regexp"
	"sync"
	"time"
)

//singletonsafe:singleton
type Service struct { // want Service:`lifetime\(shared\)`
	Name  string            // want `field "Name" of singleton Service is not read-only`
	re    *regexp.Regexp
	loc   *time.Location
	mu    sync.Mutex
	done  chan struct{}
	count int               // want count:`mutated` `field "count" of singleton Service is not read-only`
	cache map[string]string // want `field "cache" of singleton Service holds mutable type map\[string\]string`
	limit int               // want limit:`mutated` `field "limit" of singleton Service is not read-only`

	onStop []func() // want `event "onStop" of singleton Service has a mutable subscriber list`

	//singletonsafe:trusted - guarded by mu
	hits int // want hits:`trusted` hits:`mutated`
}

func NewService(name string) *Service {
	return &Service{
		Name:  name,
		re:    regexp.MustCompile(`^[a-z]+$`),
		loc:   time.UTC,
		done:  make(chan struct{}),
		cache: make(map[string]string),
	}
}

func (s *Service) Inc() { s.count++ }

func (s *Service) Hit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits++
}

func (s *Service) Lookup(key string) (string, bool) {
	v, ok := s.cache[key]
	return v, ok
}

// SetLimit backs the limit field and is reported through it.
func (s *Service) SetLimit(n int) { s.limit = n }

func (s *Service) SetOwner(owner string) {} // want `property "Owner" of singleton Service is not read-only`

//singletonsafe:trusted
func (s *Service) SetMode(mode string) {} // want SetMode:`trusted`

//singletonsafe:singleton
type Clock struct { // want Clock:`lifetime\(shared\)`
	loc *time.Location
	now func() time.Time
}

func (c *Clock) Now() time.Time { return c.now().In(c.loc) }

// Scratch is not registered, so its state is never checked.
type Scratch struct {
	Items []int
}

type base struct {
	Version int // want `field "Version" of singleton Swappable is not read-only` `field "Version" of singleton Wrapped is not read-only`
}

// Wrapped never reassigns its unexported embedded field.
//
//singletonsafe:singleton
type Wrapped struct { // want Wrapped:`lifetime\(shared\)`
	*base
}

//singletonsafe:singleton
type Swappable struct { // want Swappable:`lifetime\(shared\)`
	*base // want base:`mutated` `field "base" of singleton Swappable is not read-only`
}

func (s *Swappable) Swap() { s.base = &base{} }

// Importers can replace an exported embedded field.
//
//singletonsafe:singleton
type Extended struct { // want Extended:`lifetime\(shared\)`
	*Clock // want `field "Clock" of singleton Extended is not read-only`
}

//singletonsafe:singleton
type Lookup map[string]int // want Lookup:`lifetime\(shared\)` `field "\[key\]" of singleton Lookup is not read-only`

//singletonsafe:singleton
type Store interface { // want Store:`lifetime\(shared\)`
	Get(key string) string
	Keys() []string // want `property "Keys" of singleton Store holds mutable type \[\]string`
	Len() int
}

//singletonsafe:singelton // want `unknown singletonsafe directive "singelton"`
type Typo struct {
	Name string
}
