package main

import "fmt"

//singletonsafe:singleton
type Counter struct {
	count int
}

func (c *Counter) Inc() { c.count++ }

func main() {
	c := &Counter{}
	c.Inc()
	fmt.Println(c.count)
}
