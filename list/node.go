package list

// node is a single link of the chain. The prev/next fields are plain
// relational pointers, not ownership: the List alone mutates them, and every
// mutation updates both neighbors before any reference to a spliced-out node
// is dropped, so interior nodes always satisfy n.prev.next == n and
// n.next.prev == n between calls.
type node[T any] struct {
	elem T
	prev *node[T]
	next *node[T]
}
