package atomiclist

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// List is a lock-free linked list safe for any number of concurrent
// readers and writers. The zero value is not usable; construct with New.
//
// The list owns a sentinel head node that is never removed and never
// carries an element, so every real node always has a predecessor and
// insertion at the front needs no special case.
type List[T any] struct {
	head   *node[T]
	tail   atomic.Pointer[node[T]] // hint, may lag behind the true tail
	length atomic.Int64
	rec    reclaimer[T]
}

// New creates an empty concurrent list.
func New[T any]() *List[T] {
	l := &List[T]{}
	var zero T
	l.head = newNode(zero)
	l.tail.Store(l.head)
	l.rec.init()
	return l
}

// Len returns the number of live elements. Under concurrent mutation the
// value is a snapshot and may be stale by the time the caller reads it.
func (l *List[T]) Len() int {
	return int(l.length.Load())
}

// PushHead inserts v at the front of the list.
func (l *List[T]) PushHead(v T) {
	slot := l.rec.pin()
	defer l.rec.unpin(slot)
	// The sentinel is never dead, so insertion after it cannot fail.
	l.insertAfter(l.head, newNode(v))
}

// PushTail appends v at the end of the list.
func (l *List[T]) PushTail(v T) {
	slot := l.rec.pin()
	defer l.rec.unpin(slot)

	n := newNode(v)
	for {
		t := l.findTail()
		ln := t.link.Load()
		if ln.dead || ln.next != nil {
			continue // lost a race; rescan
		}
		n.prev.Store(t)
		if t.link.CompareAndSwap(ln, &link[T]{next: n}) {
			l.tail.Store(n)
			l.length.Add(1)
			return
		}
	}
}

// insertAfter links n in directly after anchor. It returns false if anchor
// has been removed, in which case n is not published. Callers must hold a
// pin.
func (l *List[T]) insertAfter(anchor, n *node[T]) bool {
	for {
		ln := anchor.link.Load()
		if ln.dead {
			return false
		}
		n.link.Store(&link[T]{next: ln.next})
		n.prev.Store(anchor)
		if anchor.link.CompareAndSwap(ln, &link[T]{next: n}) {
			if ln.next != nil {
				ln.next.prev.Store(n)
			} else {
				l.tail.Store(n)
			}
			l.length.Add(1)
			return true
		}
	}
}

// succ returns the next live node after n, or nil when none remains. It
// helps complete pending removals along the way: a dead successor behind a
// live node is spliced out before the walk moves on, and a dead n is passed
// through on its frozen forward pointer. Callers must hold a pin.
func (l *List[T]) succ(n *node[T]) *node[T] {
	cur := n
	for {
		ln := cur.link.Load()
		next := ln.next
		if next == nil {
			return nil
		}
		nl := next.link.Load()
		if !nl.dead {
			return next
		}
		if !ln.dead && cur.link.CompareAndSwap(ln, &link[T]{next: nl.next}) {
			if nl.next != nil {
				nl.next.prev.Store(cur)
			}
			continue // re-examine cur's fresh link
		}
		cur = next
	}
}

// findTail walks to the last live node, starting from the tail hint when it
// is still usable. Callers must hold a pin.
func (l *List[T]) findTail() *node[T] {
	last := l.head
	if t := l.tail.Load(); t != nil && !t.isDead() {
		last = t
	}
	for {
		next := l.succ(last)
		if next == nil {
			return last
		}
		last = next
	}
}

// First returns the first live element, or false when the list is empty.
func (l *List[T]) First() (T, bool) {
	slot := l.rec.pin()
	defer l.rec.unpin(slot)

	n := l.succ(l.head)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.elem, true
}

// Range calls fn on each live element from front to back, stopping early if
// fn returns false. Elements inserted or removed during the walk may or may
// not be observed.
func (l *List[T]) Range(fn func(T) bool) {
	slot := l.rec.pin()
	defer l.rec.unpin(slot)

	for n := l.succ(l.head); n != nil; n = l.succ(n) {
		if !fn(n.elem) {
			return
		}
	}
}

// Fold reduces the list front to back into an accumulator, starting from
// init. The walk sees a consistent forward chain but not necessarily a
// single point-in-time snapshot.
func Fold[T, A any](l *List[T], init A, f func(A, T) A) A {
	acc := init
	l.Range(func(v T) bool {
		acc = f(acc, v)
		return true
	})
	return acc
}

// Slice returns the live elements front to back as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	l.Range(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// String renders the list as a bracketed, comma-separated sequence.
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
