package cycle

//singletonsafe:singleton
type Node struct { // want Node:`lifetime\(shared\)` `singleton Node could not be fully checked: cyclic type dependency needs manual review`
	next *Edge
}

type Edge struct {
	to *Node
}

//singletonsafe:singleton
type Graph struct { // want Graph:`lifetime\(shared\)` `singleton Graph could not be fully checked: cyclic type dependency needs manual review`
	root *Node
}

// Chain refers to itself, but its violation is found without following the cycle.
//
//singletonsafe:singleton
type Chain struct { // want Chain:`lifetime\(shared\)`
	Next *Chain // want `field "Next" of singleton Chain is not read-only`
}
