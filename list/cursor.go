package list

// Cursor is a detached, read-only traversal handle over a List. It shares
// the list's chain but tracks its own position, starting on the ghost slot
// before the head so that the first Next lands on the true head.
//
// A cursor captures the list's revision when created. Any structural
// mutation of the list afterward invalidates the cursor, which then fails
// closed: every operation reports no element instead of walking links that
// may no longer be part of the chain. Reacquire re-attaches an invalidated
// cursor.
type Cursor[T any] struct {
	list     *List[T]
	current  *node[T]
	index    int
	entered  bool
	done     bool
	revision uint64
}

// AsCursor returns a detached cursor over l. Any number of cursors may
// traverse the same list independently; none of them mutate it or move its
// embedded cursor.
func (l *List[T]) AsCursor() *Cursor[T] {
	return &Cursor[T]{list: l, index: NoIndex, revision: l.revision}
}

// live reports whether the cursor may still touch the chain.
func (c *Cursor[T]) live() bool {
	return !c.done && c.revision == c.list.revision
}

// Next steps the cursor onto the next element and returns it. Repeated
// calls yield the elements head to tail; after the tail has been yielded
// the cursor is exhausted and keeps reporting false. Traverse again by
// taking a fresh cursor from AsCursor.
func (c *Cursor[T]) Next() (T, bool) {
	var zero T
	if !c.live() {
		c.done = true
		return zero, false
	}

	next := c.list.head
	if c.entered {
		next = c.current.next
	}
	if next == nil {
		c.done = true
		return zero, false
	}

	c.current = next
	c.entered = true
	c.index++
	return next.elem, true
}

// Current returns the element under the cursor, or false on the starting
// ghost slot, after exhaustion, or once the cursor is invalidated.
func (c *Cursor[T]) Current() (T, bool) {
	if !c.live() || !c.entered {
		var zero T
		return zero, false
	}
	return c.current.elem, true
}

// Index returns the cursor's 0-based index, or NoIndex when the cursor is
// not on an element.
func (c *Cursor[T]) Index() int {
	if !c.live() || !c.entered {
		return NoIndex
	}
	return c.index
}

// Advance moves the cursor one step forward, returning true if it landed on
// an element. Unlike Next it does not exhaust the cursor at the end. From
// the starting ghost slot it enters at the head.
func (c *Cursor[T]) Advance() bool {
	if !c.live() {
		return false
	}
	next := c.list.head
	if c.entered {
		next = c.current.next
	}
	if next == nil {
		return false
	}
	c.current, c.entered = next, true
	c.index++
	return true
}

// Retreat moves the cursor one step backward, returning true if it landed
// on an element. From the starting ghost slot it enters at the tail.
func (c *Cursor[T]) Retreat() bool {
	if !c.live() {
		return false
	}
	if !c.entered {
		if c.list.tail == nil {
			return false
		}
		c.current, c.entered = c.list.tail, true
		c.index = c.list.length - 1
		return true
	}
	if c.current.prev == nil {
		return false
	}
	c.current = c.current.prev
	c.index--
	return true
}

// MoveBy moves the cursor by a signed offset. It returns false if the
// cursor hit an end before covering the full offset.
func (c *Cursor[T]) MoveBy(delta int) bool {
	for i := 0; i < delta; i++ {
		if !c.Advance() {
			return false
		}
	}
	for i := 0; i > delta; i-- {
		if !c.Retreat() {
			return false
		}
	}
	return true
}

// MoveTo positions the cursor on the element at index, walking from its
// current position. It returns false if index is out of range or the
// cursor is invalidated.
func (c *Cursor[T]) MoveTo(index int) bool {
	if !c.live() || index < 0 || index >= c.list.length {
		return false
	}
	if !c.entered {
		c.current, c.entered = c.list.head, true
		c.index = 0
	}
	for c.index < index {
		c.current = c.current.next
		c.index++
	}
	for c.index > index {
		c.current = c.current.prev
		c.index--
	}
	return true
}

// Peek returns the element at the given signed offset from the cursor
// without moving it.
func (c *Cursor[T]) Peek(offset int) (T, bool) {
	var zero T
	if !c.live() || !c.entered {
		return zero, false
	}
	i := c.index + offset
	if i < 0 || i >= c.list.length {
		return zero, false
	}
	n := c.current
	for at := c.index; at < i; at++ {
		n = n.next
	}
	for at := c.index; at > i; at-- {
		n = n.prev
	}
	return n.elem, true
}

// Reacquire re-attaches the cursor to l at its embedded cursor's position,
// clearing any exhaustion or invalidation. When l's embedded cursor is not
// on an element the cursor parks on the starting ghost slot instead.
func (c *Cursor[T]) Reacquire(l *List[T]) {
	c.list = l
	c.revision = l.revision
	c.done = false
	if l.current != nil {
		c.current, c.index, c.entered = l.current, l.index, true
		return
	}
	c.current, c.index, c.entered = nil, NoIndex, false
}
