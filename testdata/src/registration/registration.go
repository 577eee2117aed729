package registration

//singletonsafe:transient
type Request struct { // want Request:`lifetime\(non-shared\)`
	id string
}

//singletonsafe:scoped
type Session struct { // want Session:`lifetime\(non-shared\)`
	user string
}

//singletonsafe:singleton
type Logger struct { // want Logger:`lifetime\(shared\)`
	prefix string
}

// DB is registered through -transients.
type DB struct {
	conns []string
}

// Cache is registered through -singletons.
type Cache struct {
	Entries map[string]string // want `field "Entries" of singleton Cache is not read-only`
}

//singletonsafe:singleton
type Handler struct { // want Handler:`lifetime\(shared\)`
	req     *Request // want `field "req" of singleton Handler captures \*Request registered with a non-singleton lifetime`
	session *Session // want `field "session" of singleton Handler captures \*Session registered with a non-singleton lifetime`
	db      *DB      // want `field "db" of singleton Handler captures \*DB registered with a non-singleton lifetime`
	logger  *Logger
	cache   *Cache
}
