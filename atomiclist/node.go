package atomiclist

import "sync/atomic"

// link is an immutable record pairing a node's forward pointer with its
// deletion mark. Mutation replaces the whole record with a fresh one via
// CAS on node.link; a record is never modified in place, and once a record
// with dead set is installed the node's link never changes again.
type link[T any] struct {
	next *node[T]
	dead bool
}

// node is a single element of the chain. elem is written once before the
// node is published and read only while the node is live, so it needs no
// synchronization of its own. prev is a non-authoritative hint for backward
// movement.
type node[T any] struct {
	elem T
	link atomic.Pointer[link[T]]
	prev atomic.Pointer[node[T]]
}

// newNode returns an unpublished node holding v with an empty live link.
func newNode[T any](v T) *node[T] {
	n := &node[T]{elem: v}
	n.link.Store(&link[T]{})
	return n
}

// isDead reports whether the node carries the deletion mark.
func (n *node[T]) isDead() bool {
	return n.link.Load().dead
}
