package atomiclist

import (
	"runtime"
	"sync"
	"sync/atomic"
)

const (
	// pinSlots bounds the number of simultaneously pinned operations. A
	// pin attempt spins when every slot is taken, so the bound trades a
	// little contention under extreme parallelism for a fixed-size scan
	// during reclamation.
	pinSlots = 32

	// reclaimBatch is how many retired nodes accumulate before the epoch
	// advances and the limbo list is swept.
	reclaimBatch = 64
)

// retired is a node awaiting scrubbing, tagged with the epoch at which it
// was removed.
type retired[T any] struct {
	n     *node[T]
	epoch uint64
}

// reclaimer implements epoch-based reclamation for one list. Read-side
// operations pin the current epoch in a slot for their duration. A retired
// node is scrubbed only once the minimum pinned epoch has moved at least
// two epochs past its retirement, which guarantees that every operation
// that could have obtained a reference to it has finished.
//
// Scrubbing zeroes the payload and drops the backward hint so the garbage
// collector can reclaim what the node was keeping alive. The node's frozen
// forward link is deliberately left intact: a handle parked on a long-dead
// node must still be able to follow the chain out.
type reclaimer[T any] struct {
	epoch atomic.Uint64
	slots [pinSlots]atomic.Uint64 // 0 means free, otherwise a pinned epoch

	mu    sync.Mutex
	limbo []retired[T]
}

func (r *reclaimer[T]) init() {
	// Epoch 0 is reserved as the free-slot marker.
	r.epoch.Store(1)
}

// pin claims a slot stamped with the current epoch and returns its index.
// It spins when all slots are busy; slots are held only for the span of a
// single list operation, so the wait is short.
func (r *reclaimer[T]) pin() int {
	for {
		e := r.epoch.Load()
		for i := range r.slots {
			if r.slots[i].CompareAndSwap(0, e) {
				return i
			}
		}
		runtime.Gosched()
	}
}

// unpin releases the slot claimed by pin.
func (r *reclaimer[T]) unpin(slot int) {
	r.slots[slot].Store(0)
}

// retire queues n for scrubbing. When the limbo list has grown enough the
// epoch advances and eligible nodes are swept.
func (r *reclaimer[T]) retire(n *node[T]) {
	r.mu.Lock()
	r.limbo = append(r.limbo, retired[T]{n: n, epoch: r.epoch.Load()})
	if len(r.limbo) >= reclaimBatch {
		r.sweep()
	}
	r.mu.Unlock()
}

// sweep advances the epoch and scrubs every limbo node whose retirement is
// at least two epochs behind the oldest pin. Callers must hold mu.
func (r *reclaimer[T]) sweep() {
	min := r.epoch.Add(1)
	for i := range r.slots {
		if e := r.slots[i].Load(); e != 0 && e < min {
			min = e
		}
	}

	kept := r.limbo[:0]
	for _, ret := range r.limbo {
		if ret.epoch+2 <= min {
			var zero T
			ret.n.elem = zero
			ret.n.prev.Store(nil)
		} else {
			kept = append(kept, ret)
		}
	}
	// Let the tail of the old backing array go.
	for i := len(kept); i < len(r.limbo); i++ {
		r.limbo[i] = retired[T]{}
	}
	r.limbo = kept
}
