package generics

// List is declared immutable through -immutable-types.
type List[T any] struct {
	items []T
}

func (l List[T]) Len() int { return len(l.items) }

type Box[T any] struct {
	v T
}

type Numeric[T ~int | ~float64] struct {
	v T
}

//singletonsafe:singleton
type Registry struct { // want Registry:`lifetime\(shared\)`
	names  *List[string]
	blobs  *List[[]byte] // want `field "blobs" of singleton Registry holds mutable type \*List\[\[\]byte\]`
	box    *Box[int]
	anyBox *Box[any] // want `field "anyBox" of singleton Registry holds mutable type \*Box\[(any|interface\{\})\]`
}

// Open generics are skipped until instantiated.
//
//singletonsafe:singleton
type Pool[T any] struct { // want Pool:`lifetime\(shared\)`
	items []T
}

// Numeric only admits value types, so every instantiation is immutable.
//
//singletonsafe:singleton
type Stats struct { // want Stats:`lifetime\(shared\)`
	ints   *Numeric[int]
	floats *Numeric[float64]
}
