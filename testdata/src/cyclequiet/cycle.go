package cyclequiet

//singletonsafe:singleton
type Node struct { // want Node:`lifetime\(shared\)`
	next *Node
}
