package registrations

type Request struct {
	path string
}

type Router struct {
	routes map[string]string
	req    *Request
}
