// Package cdq implements the cross-domain queue that connects the host and
// the device execution domains.
//
// The queue is a fixed-capacity single-producer/single-consumer ring. Each
// side owns one monotonically increasing index; an index is published with a
// single atomic store, so the opposite domain never observes a torn update.
// This is the software rendering of the Gray-code pointer synchronizers the
// hardware uses to cross clock domains.
package cdq

import (
	"fmt"
	"math/bits"
	"sync/atomic"

	"github.com/npulab/npusim/npu"
)

// DefaultCapacity is the reference queue depth D.
const DefaultCapacity = 512

// A Ring is a bounded FIFO of frames shared by exactly one writer and one
// reader running at independent rates. Writes to a full ring and reads from
// an empty ring fail without blocking; the caller owns the retry policy.
type Ring struct {
	slots []npu.Frame
	mask  uint64

	// head is advanced only by the reader, tail only by the writer. Fill
	// level is tail-head over the full monotonic index space.
	head atomic.Uint64
	tail atomic.Uint64
}

// NewRing creates a ring with the given capacity, which must be a power of
// two.
func NewRing(capacity int) *Ring {
	if capacity <= 0 || bits.OnesCount(uint(capacity)) != 1 {
		panic(fmt.Sprintf("cdq: capacity %d is not a power of two", capacity))
	}

	return &Ring{
		slots: make([]npu.Frame, capacity),
		mask:  uint64(capacity - 1),
	}
}

// Capacity returns the number of slots in the ring.
func (r *Ring) Capacity() int {
	return len(r.slots)
}

// TryWrite appends a frame. It returns false, dropping nothing and queueing
// nothing, when the ring is full.
func (r *Ring) TryWrite(f npu.Frame) bool {
	tail := r.tail.Load()
	head := r.head.Load()

	if tail-head == uint64(len(r.slots)) {
		return false
	}

	r.slots[tail&r.mask] = f
	r.tail.Store(tail + 1)

	return true
}

// TryRead removes the oldest frame. It returns false when the ring is empty.
func (r *Ring) TryRead() (npu.Frame, bool) {
	head := r.head.Load()
	tail := r.tail.Load()

	if tail == head {
		return npu.Frame{}, false
	}

	f := r.slots[head&r.mask]
	r.head.Store(head + 1)

	return f, true
}

// IsFull reports whether a write would fail right now.
func (r *Ring) IsFull() bool {
	return r.tail.Load()-r.head.Load() == uint64(len(r.slots))
}

// IsEmpty reports whether a read would fail right now.
func (r *Ring) IsEmpty() bool {
	return r.tail.Load() == r.head.Load()
}

// Len returns the current fill level. Under concurrent use the value is a
// snapshot, exact only from the owning side.
func (r *Ring) Len() int {
	return int(r.tail.Load() - r.head.Load())
}
