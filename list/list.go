package list

import (
	"fmt"
	"strings"
)

// List is a doubly linked list with an embedded movable cursor. The zero
// value is not usable; call New.
type List[T any] struct {
	head    *node[T]
	tail    *node[T]
	current *node[T] // nil at the empty and ghost positions
	index   int      // cursor index, meaningful only when current != nil
	offEnd  boundary
	length  int

	// revision counts structural mutations. Detached cursors capture it at
	// creation and fail closed once it moves on.
	revision uint64
}

// boundary records which end the cursor fell off when it reached the ghost
// slot, so that moving in the opposite direction re-enters the chain at the
// right end.
type boundary uint8

const (
	offNone boundary = iota
	offHead          // moved backward past the head
	offTail          // moved forward past the tail
)

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice creates a list holding the elements of s in order, with the
// cursor on the first element.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	for _, v := range s {
		l.PushNext(v)
	}
	l.MoveTo(0)
	return l
}

// Read Operations

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty returns true if the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Index returns the cursor's 0-based index, or NoIndex at the empty or
// ghost position.
func (l *List[T]) Index() int {
	if l.current == nil {
		return NoIndex
	}
	return l.index
}

// Current returns the element under the cursor. The second result is false
// at the empty or ghost position.
func (l *List[T]) Current() (T, bool) {
	if l.current == nil {
		var zero T
		return zero, false
	}
	return l.current.elem, true
}

// Position returns a snapshot of the cursor's position.
func (l *List[T]) Position() Position {
	switch {
	case l.length == 0:
		return Position{Kind: PositionEmpty, Index: NoIndex}
	case l.current == nil:
		return Position{Kind: PositionGhost, Index: NoIndex}
	default:
		return Position{Kind: PositionOnElement, Index: l.index}
	}
}

// Get returns the element at absolute index i without moving the cursor.
// The temporary walk starts from the nearest of the cursor, the head, and
// the tail, so the cost is O(min distance).
func (l *List[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= l.length {
		return zero, false
	}

	n, at := l.head, 0
	if l.length-1-i < i {
		n, at = l.tail, l.length-1
	}
	if l.current != nil && abs(l.index-i) < abs(at-i) {
		n, at = l.current, l.index
	}

	for at < i {
		n = n.next
		at++
	}
	for at > i {
		n = n.prev
		at--
	}
	return n.elem, true
}

// Peek returns the element at the given signed offset from the cursor
// without moving it. It reports false when the cursor is not on an element
// or the offset leaves the list.
func (l *List[T]) Peek(offset int) (T, bool) {
	if l.current == nil {
		var zero T
		return zero, false
	}
	return l.Get(l.index + offset)
}

// Insertion

// InsertNext inserts v immediately after the cursor, leaving the cursor on
// the element it was on. On an empty list the new element becomes the sole
// element and the cursor moves onto it; at the ghost position the element
// is linked at the boundary the cursor fell off and the cursor stays
// ghosted.
func (l *List[T]) InsertNext(v T) {
	n := &node[T]{elem: v}
	l.revision++
	l.length++

	switch {
	case l.head == nil:
		l.head, l.tail = n, n
		l.current, l.index, l.offEnd = n, 0, offNone
	case l.current == nil:
		l.linkAtBoundary(n)
	default:
		l.linkAfter(n, l.current)
	}
}

// InsertPrev inserts v immediately before the cursor, leaving the cursor on
// the element it was on. Empty and ghost positions behave as in InsertNext.
func (l *List[T]) InsertPrev(v T) {
	n := &node[T]{elem: v}
	l.revision++
	l.length++

	switch {
	case l.head == nil:
		l.head, l.tail = n, n
		l.current, l.index, l.offEnd = n, 0, offNone
	case l.current == nil:
		l.linkAtBoundary(n)
	default:
		l.linkBefore(n, l.current)
		l.index++
	}
}

// PushNext inserts v immediately after the cursor and moves the cursor onto
// the new element. A ghosted cursor re-enters the chain on it.
func (l *List[T]) PushNext(v T) {
	wasOn := l.current != nil
	l.InsertNext(v)

	switch {
	case wasOn:
		l.current = l.current.next
		l.index++
	case l.current == nil:
		l.enterBoundary()
	}
	// Pushing onto an empty list already placed the cursor.
}

// PushPrev inserts v immediately before the cursor and moves the cursor onto
// the new element. A ghosted cursor re-enters the chain on it.
func (l *List[T]) PushPrev(v T) {
	wasOn := l.current != nil
	l.InsertPrev(v)

	switch {
	case wasOn:
		l.current = l.current.prev
		l.index--
	case l.current == nil:
		l.enterBoundary()
	}
}

// Navigation

// Advance moves the cursor one step forward, returning true if it landed on
// an element. Stepping past the tail parks the cursor on the ghost slot and
// returns false; stepping forward from a ghost reached off the head
// re-enters at the head. There is no wraparound.
func (l *List[T]) Advance() bool {
	switch {
	case l.length == 0:
		return false
	case l.current == nil:
		if l.offEnd == offHead {
			l.current, l.index, l.offEnd = l.head, 0, offNone
			return true
		}
		return false
	case l.current.next == nil:
		l.current, l.offEnd = nil, offTail
		return false
	default:
		l.current = l.current.next
		l.index++
		return true
	}
}

// Retreat moves the cursor one step backward, returning true if it landed
// on an element. Stepping past the head parks the cursor on the ghost slot
// and returns false; stepping backward from a ghost reached off the tail
// re-enters at the tail. There is no wraparound.
func (l *List[T]) Retreat() bool {
	switch {
	case l.length == 0:
		return false
	case l.current == nil:
		if l.offEnd == offTail {
			l.current, l.index, l.offEnd = l.tail, l.length-1, offNone
			return true
		}
		return false
	case l.current.prev == nil:
		l.current, l.offEnd = nil, offHead
		return false
	default:
		l.current = l.current.prev
		l.index--
		return true
	}
}

// MoveBy moves the cursor by a signed offset, O(|delta|). It returns false
// if the cursor fell to the ghost slot before covering the full offset.
func (l *List[T]) MoveBy(delta int) bool {
	for i := 0; i < delta; i++ {
		if !l.Advance() {
			return false
		}
	}
	for i := 0; i > delta; i-- {
		if !l.Retreat() {
			return false
		}
	}
	return true
}

// MoveTo positions the cursor on the element at index, walking from the
// cursor's current position, O(distance). An index outside [0, Len()) parks
// the cursor on the ghost slot past the nearer boundary and returns false.
func (l *List[T]) MoveTo(index int) bool {
	switch {
	case l.length == 0:
		return false
	case index < 0:
		l.current, l.offEnd = nil, offHead
		return false
	case index >= l.length:
		l.current, l.offEnd = nil, offTail
		return false
	}

	if l.current == nil {
		l.enterBoundary()
	}
	for l.index < index {
		l.current = l.current.next
		l.index++
	}
	for l.index > index {
		l.current = l.current.prev
		l.index--
	}
	return true
}

// MoveToFront moves the cursor onto the head element and returns the number
// of steps traversed. Re-entering from the ghost slot counts as one step.
// On an empty list the cursor stays put and the count is zero.
func (l *List[T]) MoveToFront() int {
	if l.length == 0 {
		return 0
	}
	steps := 0
	if l.current == nil {
		l.enterBoundary()
		steps++
	}
	steps += l.index
	l.current, l.index = l.head, 0
	return steps
}

// MoveToBack moves the cursor onto the tail element and returns the number
// of steps traversed. Re-entering from the ghost slot counts as one step.
// On an empty list the cursor stays put and the count is zero.
func (l *List[T]) MoveToBack() int {
	if l.length == 0 {
		return 0
	}
	steps := 0
	if l.current == nil {
		l.enterBoundary()
		steps++
	}
	steps += l.length - 1 - l.index
	l.current, l.index = l.tail, l.length-1
	return steps
}

// Removal

// ConsumeForward removes the element under the cursor and moves the cursor
// to the following element. The second result reports whether the cursor
// landed on a real element; it is false when the removed element was the
// last and the cursor fell to the ghost slot. The third result is false
// when the cursor was not on an element.
func (l *List[T]) ConsumeForward() (T, bool, bool) {
	if l.current == nil {
		var zero T
		return zero, false, false
	}

	n := l.current
	next := n.next
	l.unlink(n)

	switch {
	case next != nil:
		// The following element takes over the removed element's index.
		l.current = next
		return n.elem, true, true
	case l.length == 0:
		l.current, l.offEnd = nil, offNone
		return n.elem, false, true
	default:
		l.current, l.offEnd = nil, offTail
		return n.elem, false, true
	}
}

// ConsumeBackward removes the element under the cursor and moves the cursor
// to the preceding element. The second result reports whether the cursor
// landed on a real element; it is false when the removed element was the
// first and the cursor fell to the ghost slot. The third result is false
// when the cursor was not on an element.
func (l *List[T]) ConsumeBackward() (T, bool, bool) {
	if l.current == nil {
		var zero T
		return zero, false, false
	}

	n := l.current
	prev := n.prev
	l.unlink(n)

	switch {
	case prev != nil:
		l.current = prev
		l.index--
		return n.elem, true, true
	case l.length == 0:
		l.current, l.offEnd = nil, offNone
		return n.elem, false, true
	default:
		l.current, l.offEnd = nil, offHead
		return n.elem, false, true
	}
}

// Replace swaps the element under the cursor for v and returns the previous
// element. When the cursor is not on an element, v is pushed instead and
// the second result is false.
func (l *List[T]) Replace(v T) (T, bool) {
	if l.current == nil {
		var zero T
		l.PushNext(v)
		return zero, false
	}
	old := l.current.elem
	l.current.elem = v
	return old, true
}

// Splitting

// Split cuts the chain at the cursor. Every element before the cursor moves
// into the returned list; the receiver keeps the cursor's element and
// everything after it. Both lists end up with their cursor on their own
// head. Only the links at the split point are touched, O(1).
func (l *List[T]) Split() *List[T] {
	front := New[T]()
	l.revision++

	switch {
	case l.length == 0:
		return front
	case l.current == nil && l.offEnd == offHead:
		// Ghost before the head: nothing precedes the cursor.
		l.current, l.index, l.offEnd = l.head, 0, offNone
		return front
	case l.current == nil:
		// Ghost past the tail: everything precedes the cursor.
		l.moveChainInto(front)
		return front
	case l.current.prev == nil:
		l.index = 0
		return front
	}

	front.head = l.head
	front.tail = l.current.prev
	front.current, front.index = front.head, 0
	front.length = l.index

	front.tail.next = nil
	l.current.prev = nil
	l.head = l.current
	l.length -= front.length
	l.index = 0
	return front
}

// SplitAfter cuts the chain immediately after the cursor. Every element
// after the cursor moves into the returned list with its cursor on its new
// head; the receiver keeps the cursor where it was. O(1).
func (l *List[T]) SplitAfter() *List[T] {
	back := New[T]()
	l.revision++

	switch {
	case l.length == 0:
		return back
	case l.current == nil && l.offEnd == offTail:
		// Ghost past the tail: nothing follows the cursor.
		return back
	case l.current == nil:
		// Ghost before the head: everything follows the cursor.
		l.moveChainInto(back)
		return back
	case l.current.next == nil:
		return back
	}

	back.head = l.current.next
	back.tail = l.tail
	back.current, back.index = back.head, 0
	back.length = l.length - l.index - 1

	l.tail = l.current
	l.tail.next = nil
	back.head.prev = nil
	l.length -= back.length
	return back
}

// Traversal

// Fold accumulates the list's elements from true head to true tail,
// independent of the cursor position. The cursor does not move. O(n).
func Fold[T, A any](l *List[T], init A, f func(A, T) A) A {
	acc := init
	for n := l.head; n != nil; n = n.next {
		acc = f(acc, n.elem)
	}
	return acc
}

// Range calls fn on each element from head to tail until fn returns false.
// The cursor does not move.
func (l *List[T]) Range(fn func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.elem) {
			return
		}
	}
}

// Slice returns the elements head to tail as a new slice. O(n).
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.length)
	l.Range(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Clone returns a copy of the list with its cursor at the same position.
// Elements are copied by assignment. O(n).
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for n := l.head; n != nil; n = n.next {
		c.PushNext(n.elem)
	}
	switch {
	case l.current != nil:
		c.MoveTo(l.index)
	case l.length > 0:
		c.current = nil
		c.offEnd = l.offEnd
	}
	return c
}

// String renders the elements head to tail in bracketed form.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	l.Range(func(v T) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
		return true
	})
	b.WriteByte(']')
	return b.String()
}

// Internals

// moveChainInto hands the whole chain to dst, cursor on dst's head, and
// leaves the receiver empty.
func (l *List[T]) moveChainInto(dst *List[T]) {
	dst.head, dst.tail = l.head, l.tail
	dst.current, dst.index = l.head, 0
	dst.length = l.length
	l.head, l.tail, l.current = nil, nil, nil
	l.length, l.index, l.offEnd = 0, 0, offNone
}

// linkAfter splices n in immediately after at, keeping tail current.
func (l *List[T]) linkAfter(n, at *node[T]) {
	n.prev = at
	n.next = at.next
	if at.next != nil {
		at.next.prev = n
	} else {
		l.tail = n
	}
	at.next = n
}

// linkBefore splices n in immediately before at, keeping head current.
func (l *List[T]) linkBefore(n, at *node[T]) {
	n.next = at
	n.prev = at.prev
	if at.prev != nil {
		at.prev.next = n
	} else {
		l.head = n
	}
	at.prev = n
}

// linkAtBoundary links n at the boundary a ghosted cursor fell off.
func (l *List[T]) linkAtBoundary(n *node[T]) {
	if l.offEnd == offHead {
		l.linkBefore(n, l.head)
	} else {
		l.linkAfter(n, l.tail)
	}
}

// enterBoundary moves a ghosted cursor back onto the chain at the boundary
// it fell off.
func (l *List[T]) enterBoundary() {
	if l.offEnd == offHead {
		l.current, l.index = l.head, 0
	} else {
		l.current, l.index = l.tail, l.length-1
	}
	l.offEnd = offNone
}

// unlink removes n from the chain, updating both neighbors and the boundary
// pointers before dropping the node's own links.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.revision++
	l.length--
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
