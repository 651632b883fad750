// Package atomiclist provides a lock-free singly-published, doubly-hinted
// linked list for concurrent use.
//
// Unlike package list, which bakes a cursor into the structure itself, an
// atomic list has no shared position: each goroutine holds its own Handle
// and moves it independently. All mutation goes through compare-and-swap on
// immutable link records, so readers never observe a half-updated node.
//
// # Link Records
//
// Every node stores its forward pointer and its deletion mark together in a
// single immutable link record swapped whole via atomic.Pointer. Marking a
// node dead and capturing its successor therefore happen in one CAS, which
// closes the classic race where an element is removed while a neighbor is
// spliced in after it. Once a node's record carries the dead mark the record
// never changes again, so a traverser that has already stepped onto a dying
// node can still follow its frozen forward pointer out.
//
// Backward pointers are hints only. They are maintained best-effort and a
// backward step falls back to a forward scan from the head when the hints
// have gone stale.
//
// # Reclamation
//
// Removed nodes enter a limbo list tagged with the current epoch. Read-side
// operations pin the epoch for their duration; a limbo node is scrubbed
// (payload zeroed, backward hint dropped) only after every operation that
// could still reach it has unpinned. The frozen forward pointer is left
// intact so late traversers pass through safely, and the garbage collector
// reclaims the memory once the last reference drops.
package atomiclist
