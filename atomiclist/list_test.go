package atomiclist

import (
	"sync"
	"testing"
)

func TestNewListIsEmpty(t *testing.T) {
	l := New[int]()

	if l.Len() != 0 {
		t.Errorf("expected length 0, got %d", l.Len())
	}
	if _, ok := l.First(); ok {
		t.Error("empty list should have no first element")
	}
	if got := l.String(); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}

func TestPushHeadOrder(t *testing.T) {
	l := New[int]()
	l.PushHead(1)
	l.PushHead(2)
	l.PushHead(3)

	if got := l.String(); got != "[3, 2, 1]" {
		t.Errorf("expected [3, 2, 1], got %s", got)
	}
	if v, ok := l.First(); !ok || v != 3 {
		t.Errorf("expected first 3, got %d (%v)", v, ok)
	}
}

func TestPushTailOrder(t *testing.T) {
	l := New[int]()
	l.PushTail(1)
	l.PushTail(2)
	l.PushTail(3)

	if got := l.String(); got != "[1, 2, 3]" {
		t.Errorf("expected [1, 2, 3], got %s", got)
	}
	if l.Len() != 3 {
		t.Errorf("expected length 3, got %d", l.Len())
	}
}

func TestHandleTraversal(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 4; i++ {
		l.PushTail(i * 10)
	}

	h := l.Head()
	if _, ok := h.Value(); ok {
		t.Error("handle at the head slot should have no value")
	}

	var got []int
	for v, ok := h.Next(); ok; v, ok = h.Next() {
		got = append(got, v)
	}
	if len(got) != 4 || got[0] != 10 || got[3] != 40 {
		t.Errorf("expected [10 20 30 40], got %v", got)
	}

	// The handle stays on the tail after a failed Next.
	if v, ok := h.Value(); !ok || v != 40 {
		t.Errorf("handle should remain on 40, got %d (%v)", v, ok)
	}

	if v, ok := h.Prev(); !ok || v != 30 {
		t.Errorf("Prev should yield 30, got %d (%v)", v, ok)
	}
	if v, ok := h.Prev(); !ok || v != 20 {
		t.Errorf("Prev should yield 20, got %d (%v)", v, ok)
	}
	h.Prev()
	if _, ok := h.Prev(); ok {
		t.Error("Prev past the front should report false")
	}
}

func TestHandleInsertAfter(t *testing.T) {
	l := New[int]()
	l.PushTail(1)
	l.PushTail(3)

	h := l.Head()
	h.Next() // on 1
	if !h.InsertAfter(2) {
		t.Fatal("InsertAfter on a live element should succeed")
	}
	if got := l.String(); got != "[1, 2, 3]" {
		t.Errorf("expected [1, 2, 3], got %s", got)
	}

	// A handle before the head inserts at the front.
	if !l.Head().InsertAfter(0) {
		t.Fatal("InsertAfter at the head slot should succeed")
	}
	if got := l.String(); got != "[0, 1, 2, 3]" {
		t.Errorf("expected [0, 1, 2, 3], got %s", got)
	}
}

func TestConsume(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 3; i++ {
		l.PushTail(i)
	}

	h := l.Head()
	h.Next() // 1
	h.Next() // 2

	v, ok := h.Consume()
	if !ok || v != 2 {
		t.Errorf("expected to consume 2, got %d (%v)", v, ok)
	}
	if got := l.String(); got != "[1, 3]" {
		t.Errorf("expected [1, 3], got %s", got)
	}
	if l.Len() != 2 {
		t.Errorf("expected length 2, got %d", l.Len())
	}

	// Consuming the same element twice fails the second time.
	if _, ok := h.Consume(); ok {
		t.Error("consuming an already-removed element should fail")
	}

	// The handle still navigates from the removed node.
	if v, ok := h.Next(); !ok || v != 3 {
		t.Errorf("Next from the removed node should yield 3, got %d (%v)", v, ok)
	}
}

func TestConsumeAtHeadSlot(t *testing.T) {
	l := New[int]()
	l.PushTail(1)

	if _, ok := l.Head().Consume(); ok {
		t.Error("consuming at the head slot should fail")
	}
	if l.Len() != 1 {
		t.Errorf("length should be untouched, got %d", l.Len())
	}
}

func TestInsertAfterRemovedFails(t *testing.T) {
	l := New[int]()
	l.PushTail(1)
	l.PushTail(2)

	h := l.Head()
	h.Next() // on 1
	h.Consume()

	if h.InsertAfter(9) {
		t.Error("InsertAfter on a removed element should fail")
	}
	if got := l.String(); got != "[2]" {
		t.Errorf("expected [2], got %s", got)
	}
}

func TestPrevThroughRemovedNodes(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 4; i++ {
		l.PushTail(i)
	}

	h := l.Head()
	for i := 0; i < 4; i++ {
		h.Next()
	}
	// Remove 2 and 3 out from under the handle sitting on 4.
	r := l.Head()
	r.Next()
	r.Next()
	r.Consume() // 2
	r.Next()
	r.Consume() // 3

	if v, ok := h.Prev(); !ok || v != 1 {
		t.Errorf("Prev should skip removed nodes and land on 1, got %d (%v)", v, ok)
	}
}

func TestFold(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 5; i++ {
		l.PushTail(i)
	}

	sum := Fold(l, 0, func(acc, v int) int { return acc + v })
	if sum != 15 {
		t.Errorf("expected sum 15, got %d", sum)
	}
}

func TestRangeEarlyStop(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 5; i++ {
		l.PushTail(i)
	}

	var seen []int
	l.Range(func(v int) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	if len(seen) != 2 {
		t.Errorf("expected 2 elements, got %v", seen)
	}
}

func TestConcurrentPushTail(t *testing.T) {
	const (
		workers  = 8
		elements = 200
	)

	l := New[int]()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < elements; i++ {
				l.PushTail(w*elements + i)
			}
		}(w)
	}
	wg.Wait()

	if l.Len() != workers*elements {
		t.Fatalf("expected %d elements, got %d", workers*elements, l.Len())
	}

	seen := make(map[int]int)
	l.Range(func(v int) bool {
		seen[v]++
		return true
	})
	if len(seen) != workers*elements {
		t.Fatalf("expected %d distinct elements, got %d", workers*elements, len(seen))
	}
	for v, n := range seen {
		if n != 1 {
			t.Fatalf("element %d appeared %d times", v, n)
		}
	}

	// Each worker's own elements must appear in the order it pushed them.
	last := make([]int, workers)
	for w := range last {
		last[w] = -1
	}
	l.Range(func(v int) bool {
		w, i := v/elements, v%elements
		if i <= last[w] {
			t.Errorf("worker %d order violated: %d after %d", w, i, last[w])
			return false
		}
		last[w] = i
		return true
	})
}

func TestConcurrentPushHead(t *testing.T) {
	const (
		workers  = 8
		elements = 200
	)

	l := New[int]()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < elements; i++ {
				l.PushHead(w*elements + i)
			}
		}(w)
	}
	wg.Wait()

	if l.Len() != workers*elements {
		t.Fatalf("expected %d elements, got %d", workers*elements, l.Len())
	}
	seen := make(map[int]bool)
	l.Range(func(v int) bool {
		if seen[v] {
			t.Fatalf("element %d appeared twice", v)
		}
		seen[v] = true
		return true
	})
	if len(seen) != workers*elements {
		t.Fatalf("expected %d distinct elements, got %d", workers*elements, len(seen))
	}
}

func TestConcurrentConsumeExactlyOnce(t *testing.T) {
	const (
		total   = 1000
		workers = 8
	)

	l := New[int]()
	for i := 0; i < total; i++ {
		l.PushTail(i)
	}

	var mu sync.Mutex
	consumed := make(map[int]int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got []int
			h := l.Head()
			for {
				if _, ok := h.Next(); !ok {
					break
				}
				if v, ok := h.Consume(); ok {
					got = append(got, v)
				}
			}
			mu.Lock()
			for _, v := range got {
				consumed[v]++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(consumed) != total {
		t.Fatalf("expected %d consumed elements, got %d", total, len(consumed))
	}
	for v, n := range consumed {
		if n != 1 {
			t.Fatalf("element %d consumed %d times", v, n)
		}
	}
	if l.Len() != 0 {
		t.Errorf("expected empty list, got length %d", l.Len())
	}
	if _, ok := l.First(); ok {
		t.Error("drained list should have no first element")
	}
}

func TestConcurrentMixed(t *testing.T) {
	const iterations = 500

	l := New[int]()
	var wg sync.WaitGroup

	// Two pushers, one consumer, one reader all working at once. The test
	// is that nothing deadlocks or trips the race detector, and that the
	// final contents are exactly the pushed-but-not-consumed elements.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			l.PushTail(i)
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := iterations; i < 2*iterations; i++ {
			l.PushHead(i)
		}
	}()

	var mu sync.Mutex
	consumed := make(map[int]bool)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			h := l.Head()
			if _, ok := h.Next(); !ok {
				continue
			}
			if v, ok := h.Consume(); ok {
				mu.Lock()
				consumed[v] = true
				mu.Unlock()
			}
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			Fold(l, 0, func(acc, v int) int { return acc + v })
		}
	}()
	wg.Wait()

	remaining := make(map[int]bool)
	l.Range(func(v int) bool {
		if remaining[v] {
			t.Fatalf("element %d appeared twice", v)
		}
		remaining[v] = true
		return true
	})

	for v := 0; v < 2*iterations; v++ {
		in, out := remaining[v], consumed[v]
		if in && out {
			t.Fatalf("element %d both consumed and present", v)
		}
		if !in && !out {
			t.Fatalf("element %d lost", v)
		}
	}
	if l.Len() != len(remaining) {
		t.Errorf("length %d does not match traversal count %d", l.Len(), len(remaining))
	}
}

func TestReclaimSweep(t *testing.T) {
	l := New[int]()
	// Push and consume enough elements to force several sweeps.
	for i := 0; i < reclaimBatch*3; i++ {
		l.PushTail(i)
	}
	h := l.Head()
	for {
		if _, ok := h.Next(); !ok {
			break
		}
		h.Consume()
	}

	if l.Len() != 0 {
		t.Fatalf("expected empty list, got length %d", l.Len())
	}

	// The list remains fully usable after reclamation.
	l.PushTail(42)
	if v, ok := l.First(); !ok || v != 42 {
		t.Errorf("expected 42 after reclamation, got %d (%v)", v, ok)
	}
}
