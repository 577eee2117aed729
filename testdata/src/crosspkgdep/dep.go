package crosspkgdep

//singletonsafe:transient
type Request struct {
	ID string
}

type Counter struct {
	n int
}

func (c *Counter) Inc() { c.n++ }

type Guarded struct {
	//singletonsafe:trusted - atomic access only
	n int64
}

func (g *Guarded) Reset() { g.n = 0 }

type Config struct {
	timeout int
}

func NewConfig(timeout int) *Config {
	return &Config{timeout: timeout}
}
