// Package list provides a doubly linked list whose primary access pattern is
// a movable cursor. Navigation, insertion, and removal are amortized O(1)
// around the cursor's current position; absolute access costs O(distance).
//
// The list package provides:
//
//   - A List with an embedded cursor for navigation and mutation
//   - Position values describing the cursor's state (empty, element, ghost)
//   - Detached read-only Cursors for independent traversal
//   - O(1) splitting at the cursor and head-to-tail folding
//
// Cursor Model:
//
// The embedded cursor is part of the List's state: the list remembers where
// you are. Moving past either end parks the cursor on the ghost slot, a
// single virtual position between the tail and the head. A ghosted cursor
// re-enters the chain from the boundary it fell off when moved in the
// opposite direction; it never wraps around.
//
// Detached cursors obtained from AsCursor share the chain but track their
// own position, starting on the ghost slot before the head so the first
// Next lands on the true head. They are invalidated by any structural
// mutation of the list and fail closed afterward: traversal simply yields
// no further elements.
//
// Basic usage:
//
//	l := list.New[int]()
//	l.PushNext(1)
//	l.PushNext(2)
//	l.PushNext(3)   // [1, 2, 3], cursor on 3
//
//	l.MoveTo(0)     // cursor on 1
//	l.PushNext(9)   // [1, 9, 2, 3], cursor on 9
//
//	sum := list.Fold(l, 0, func(acc, v int) int { return acc + v })
//
// Thread Safety:
//
// A List and its cursors are not safe for concurrent use. Mutating a list
// while another goroutine traverses it is a data race; use the atomiclist
// package when multiple goroutines share one list.
package list
