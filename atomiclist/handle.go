package atomiclist

// Handle is a caller-held position in a List. Each goroutine takes its own
// handle and moves it independently; the list itself carries no shared
// position state.
//
// A handle is not safe for concurrent use by multiple goroutines, but any
// number of handles may work over the same list at once. A handle whose
// element has been removed does not go stale: forward movement passes
// through the dead node on its frozen link, and backward movement falls
// back to a scan from the head.
type Handle[T any] struct {
	list *List[T]
	node *node[T]
}

// Head returns a handle parked before the first element, so that the first
// Next lands on the front of the list.
func (l *List[T]) Head() *Handle[T] {
	return &Handle[T]{list: l, node: l.head}
}

// Value returns the element under the handle, or false when the handle is
// parked before the head or its element has been removed.
func (h *Handle[T]) Value() (T, bool) {
	var zero T
	if h.node == h.list.head {
		return zero, false
	}
	slot := h.list.rec.pin()
	defer h.list.rec.unpin(slot)
	if h.node.isDead() {
		return zero, false
	}
	return h.node.elem, true
}

// Next advances the handle to the next live element and returns it, or
// false when the end of the list is reached. The handle stays put on
// failure.
func (h *Handle[T]) Next() (T, bool) {
	slot := h.list.rec.pin()
	defer h.list.rec.unpin(slot)

	n := h.list.succ(h.node)
	if n == nil {
		var zero T
		return zero, false
	}
	h.node = n
	return n.elem, true
}

// Prev moves the handle to the previous live element and returns it, or
// false at the front of the list. Backward hints are best-effort; when they
// have gone stale the handle rescans forward from the head, so under heavy
// concurrent removal Prev may land on the nearest surviving predecessor
// rather than the exact former neighbor.
func (h *Handle[T]) Prev() (T, bool) {
	var zero T
	if h.node == h.list.head {
		return zero, false
	}
	slot := h.list.rec.pin()
	defer h.list.rec.unpin(slot)

	for p := h.node.prev.Load(); p != nil; p = p.prev.Load() {
		if p == h.list.head {
			return zero, false
		}
		if !p.isDead() {
			h.node = p
			return p.elem, true
		}
	}

	// Hint chain scrubbed out from under us; find the last live node before
	// the handle by walking forward.
	prev := h.list.head
	for n := h.list.succ(h.list.head); n != nil; n = h.list.succ(n) {
		if n == h.node {
			break
		}
		prev = n
	}
	if prev == h.list.head {
		return zero, false
	}
	h.node = prev
	return prev.elem, true
}

// InsertAfter inserts v directly after the handle's element. It returns
// false when the element has been removed; callers should reposition the
// handle and retry. A handle parked before the head inserts at the front.
func (h *Handle[T]) InsertAfter(v T) bool {
	slot := h.list.rec.pin()
	defer h.list.rec.unpin(slot)
	return h.list.insertAfter(h.node, newNode(v))
}

// Consume removes the handle's element and returns it. Exactly one of any
// number of concurrent Consume calls on the same element wins; the rest
// return false. The handle stays on the removed node, from which Next and
// Prev still work.
func (h *Handle[T]) Consume() (T, bool) {
	var zero T
	n := h.node
	if n == h.list.head {
		return zero, false
	}
	slot := h.list.rec.pin()
	defer h.list.rec.unpin(slot)

	for {
		ln := n.link.Load()
		if ln.dead {
			return zero, false
		}
		if n.link.CompareAndSwap(ln, &link[T]{next: ln.next, dead: true}) {
			elem := n.elem
			h.list.length.Add(-1)
			h.list.unlinkDead(n)
			h.list.rec.retire(n)
			return elem, true
		}
	}
}

// unlinkDead makes a best-effort attempt to splice the already-marked node
// n out of the physical chain. succ splices the dead run after the nearest
// live predecessor as a side effect of one step; if the backward hints are
// too stale to find that predecessor, a later traversal will help instead.
// Callers must hold a pin.
func (l *List[T]) unlinkDead(n *node[T]) {
	p := n.prev.Load()
	for p != nil && p.isDead() {
		p = p.prev.Load()
	}
	if p == nil {
		p = l.head
	}
	l.succ(p)
}
