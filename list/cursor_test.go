package list

import (
	"testing"
)

func TestCursorTraversal(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	c := l.AsCursor()
	var got []int
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", got)
	}

	// Exhausted cursors stay exhausted.
	if _, ok := c.Next(); ok {
		t.Error("exhausted cursor should keep reporting false")
	}
	if _, ok := c.Current(); ok {
		t.Error("exhausted cursor should have no current element")
	}
}

func TestCursorStartsBeforeHead(t *testing.T) {
	l := FromSlice([]int{10, 20})
	l.MoveTo(1) // embedded cursor on 20

	c := l.AsCursor()
	if _, ok := c.Current(); ok {
		t.Error("fresh cursor should start before the head, not on an element")
	}
	if c.Index() != NoIndex {
		t.Errorf("fresh cursor index should be NoIndex, got %d", c.Index())
	}
	if v, ok := c.Next(); !ok || v != 10 {
		t.Errorf("first Next should yield the head 10, got %d (%v)", v, ok)
	}
	if c.Index() != 0 {
		t.Errorf("expected index 0, got %d", c.Index())
	}

	// The embedded cursor is untouched.
	if l.Index() != 1 {
		t.Errorf("embedded cursor moved to index %d", l.Index())
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	a := l.AsCursor()
	b := l.AsCursor()

	a.Next()
	a.Next()
	if v, ok := b.Next(); !ok || v != 1 {
		t.Errorf("second cursor should still start at the head, got %d (%v)", v, ok)
	}
	if v, ok := a.Current(); !ok || v != 2 {
		t.Errorf("first cursor should sit on 2, got %d (%v)", v, ok)
	}
}

func TestCursorOnEmptyList(t *testing.T) {
	l := New[int]()
	c := l.AsCursor()

	if _, ok := c.Next(); ok {
		t.Error("cursor over an empty list should yield nothing")
	}
	if c.Advance() {
		t.Error("Advance over an empty list should fail")
	}
	if c.Retreat() {
		t.Error("Retreat over an empty list should fail")
	}
}

func TestCursorRetreatFromStart(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	c := l.AsCursor()
	if !c.Retreat() {
		t.Fatal("Retreat from the starting slot should enter at the tail")
	}
	if v, ok := c.Current(); !ok || v != 3 {
		t.Errorf("expected tail 3, got %d (%v)", v, ok)
	}
	if c.Index() != 2 {
		t.Errorf("expected index 2, got %d", c.Index())
	}

	if !c.Retreat() {
		t.Fatal("Retreat should step back to 2")
	}
	if c.Retreat() && c.Retreat() {
		t.Error("Retreat past the head should fail")
	}
}

func TestCursorAdvanceDoesNotExhaust(t *testing.T) {
	l := FromSlice([]int{1, 2})

	c := l.AsCursor()
	c.Advance()
	c.Advance()
	if c.Advance() {
		t.Error("Advance past the tail should fail")
	}
	// Unlike Next, a failed Advance leaves the cursor usable.
	if v, ok := c.Current(); !ok || v != 2 {
		t.Errorf("cursor should remain on the tail 2, got %d (%v)", v, ok)
	}
	if !c.Retreat() {
		t.Error("Retreat should still work after a failed Advance")
	}
}

func TestCursorMoveByAndMoveTo(t *testing.T) {
	l := FromSlice([]int{10, 20, 30, 40})

	c := l.AsCursor()
	if !c.MoveTo(2) {
		t.Fatal("MoveTo(2) should land")
	}
	if v, _ := c.Current(); v != 30 {
		t.Errorf("expected 30, got %d", v)
	}

	if !c.MoveBy(-2) {
		t.Fatal("MoveBy(-2) should land")
	}
	if v, _ := c.Current(); v != 10 {
		t.Errorf("expected 10, got %d", v)
	}

	if c.MoveBy(9) {
		t.Error("MoveBy past the tail should report failure")
	}
	if c.MoveTo(4) {
		t.Error("MoveTo out of range should report failure")
	}
	if c.MoveTo(-1) {
		t.Error("MoveTo(-1) should report failure")
	}
}

func TestCursorPeek(t *testing.T) {
	l := FromSlice([]int{10, 20, 30})

	c := l.AsCursor()
	if _, ok := c.Peek(0); ok {
		t.Error("Peek before entering should report no element")
	}

	c.MoveTo(1)
	if v, ok := c.Peek(1); !ok || v != 30 {
		t.Errorf("Peek(1) should yield 30, got %d (%v)", v, ok)
	}
	if v, ok := c.Peek(-1); !ok || v != 10 {
		t.Errorf("Peek(-1) should yield 10, got %d (%v)", v, ok)
	}
	if _, ok := c.Peek(5); ok {
		t.Error("Peek out of range should report no element")
	}
	if c.Index() != 1 {
		t.Errorf("Peek moved the cursor to %d", c.Index())
	}
}

func TestCursorInvalidatedByMutation(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	c := l.AsCursor()
	c.Next()

	l.PushNext(9) // structural mutation

	if _, ok := c.Next(); ok {
		t.Error("stale cursor should fail closed on Next")
	}
	if _, ok := c.Current(); ok {
		t.Error("stale cursor should fail closed on Current")
	}
	if c.Index() != NoIndex {
		t.Errorf("stale cursor should report NoIndex, got %d", c.Index())
	}
	if c.Advance() || c.Retreat() || c.MoveTo(0) || c.MoveBy(1) {
		t.Error("stale cursor should fail closed on movement")
	}
	if _, ok := c.Peek(0); ok {
		t.Error("stale cursor should fail closed on Peek")
	}
}

func TestCursorInvalidatedByRemoval(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	c := l.AsCursor()
	c.MoveTo(1)

	l.MoveTo(1)
	l.ConsumeForward()

	if _, ok := c.Current(); ok {
		t.Error("cursor should be invalidated by element removal")
	}
}

func TestCursorReacquire(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	c := l.AsCursor()
	c.MoveTo(2)
	l.PushNext(4) // invalidates c

	if _, ok := c.Current(); ok {
		t.Fatal("cursor should be stale before Reacquire")
	}

	c.Reacquire(l)
	if v, ok := c.Current(); !ok || v != 4 {
		t.Errorf("reacquired cursor should sit where the embedded cursor is, got %d (%v)", v, ok)
	}
	if c.Index() != l.Index() {
		t.Errorf("reacquired index %d should match the list's %d", c.Index(), l.Index())
	}
	if v, ok := c.Next(); !ok || v != 2 {
		t.Errorf("Next after Reacquire should continue from the list's position, got %d (%v)", v, ok)
	}
}

func TestCursorReacquireAtGhost(t *testing.T) {
	l := FromSlice([]int{1, 2})
	l.MoveTo(99) // embedded cursor ghosts past the tail

	c := l.AsCursor()
	c.Next()
	l.PushNext(3)
	l.MoveTo(99)

	c.Reacquire(l)
	if _, ok := c.Current(); ok {
		t.Error("reacquiring at a ghost slot should park before the head")
	}
	if v, ok := c.Next(); !ok || v != 1 {
		t.Errorf("Next should restart at the head, got %d (%v)", v, ok)
	}
}
