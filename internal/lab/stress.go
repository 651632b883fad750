package lab

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/iterlist/atomiclist"
)

// StressReport summarizes one stress run.
type StressReport struct {
	// RunID uniquely identifies the run in logs and comparisons.
	RunID string
	// Workers is the number of goroutines used on each side.
	Workers int
	// Elements is how many elements each pusher inserted.
	Elements int
	// Consumed is the number of elements removed during the drain phase.
	Consumed int
	// PushDuration covers the concurrent insert phase.
	PushDuration time.Duration
	// DrainDuration covers the concurrent remove phase.
	DrainDuration time.Duration
	// Violations lists every consistency breach detected. A clean run has
	// none.
	Violations []string
}

// OK reports whether the run completed without consistency violations.
func (r *StressReport) OK() bool {
	return len(r.Violations) == 0
}

// String renders a one-paragraph summary of the run.
func (r *StressReport) String() string {
	status := "ok"
	if !r.OK() {
		status = fmt.Sprintf("%d violations", len(r.Violations))
	}
	return fmt.Sprintf("run %s: %d workers x %d elements, pushed in %v, drained %d in %v: %s",
		r.RunID, r.Workers, r.Elements, r.PushDuration, r.Consumed, r.DrainDuration, status)
}

// RunStress hammers a fresh concurrent list: workers goroutines each push
// elements distinct values (half at the head, half at the tail), then the
// same number of goroutines drain the list through their own handles. The
// report records whether every value survived exactly once and was
// consumed exactly once.
func RunStress(workers, elements int) *StressReport {
	report := &StressReport{
		RunID:    uuid.New().String(),
		Workers:  workers,
		Elements: elements,
	}

	l := atomiclist.New[int]()
	total := workers * elements

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < elements; i++ {
				v := w*elements + i
				if i%2 == 0 {
					l.PushTail(v)
				} else {
					l.PushHead(v)
				}
			}
		}(w)
	}
	wg.Wait()
	report.PushDuration = time.Since(start)

	if got := l.Len(); got != total {
		report.Violations = append(report.Violations,
			fmt.Sprintf("after push: length %d, want %d", got, total))
	}
	seen := make(map[int]int, total)
	l.Range(func(v int) bool {
		seen[v]++
		return true
	})
	for v := 0; v < total; v++ {
		if seen[v] != 1 {
			report.Violations = append(report.Violations,
				fmt.Sprintf("after push: element %d present %d times", v, seen[v]))
		}
	}

	start = time.Now()
	counts := make([]map[int]int, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			mine := make(map[int]int)
			h := l.Head()
			for {
				if _, ok := h.Next(); !ok {
					break
				}
				if v, ok := h.Consume(); ok {
					mine[v]++
				}
			}
			counts[w] = mine
		}(w)
	}
	wg.Wait()
	report.DrainDuration = time.Since(start)

	consumed := make(map[int]int, total)
	for _, mine := range counts {
		for v, n := range mine {
			consumed[v] += n
			report.Consumed += n
		}
	}
	for v := 0; v < total; v++ {
		if consumed[v] != 1 {
			report.Violations = append(report.Violations,
				fmt.Sprintf("after drain: element %d consumed %d times", v, consumed[v]))
		}
	}
	if got := l.Len(); got != 0 {
		report.Violations = append(report.Violations,
			fmt.Sprintf("after drain: length %d, want 0", got))
	}

	return report
}
