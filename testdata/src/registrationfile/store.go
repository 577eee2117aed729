package registrationfile

// Store and Tx are registered by the registration snapshot.
type Store struct {
	Name string // want `field "Name" of singleton Store is not read-only`
	tx   *Tx    // want `field "tx" of singleton Store captures \*Tx registered with a non-singleton lifetime`
}

type Tx struct {
	ops []string
}
