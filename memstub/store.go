// Package memstub models the bounded scratch memory the pipeline loads from
// and stores to. A flat word-addressed store sits behind a ticking component
// that answers read and write requests after a configurable latency.
package memstub

import "github.com/npulab/npusim/npu"

// DefaultSize is the reference store size in 32-bit words.
const DefaultSize = 1024

// A Store is a flat, bounded array of 32-bit cells. Out-of-range accesses
// are a defined condition: reads answer the load sentinel and report
// invalid, writes report invalid and touch nothing.
type Store struct {
	cells []uint32
}

// NewStore creates a store with the given number of words.
func NewStore(words int) *Store {
	if words <= 0 {
		words = DefaultSize
	}

	return &Store{cells: make([]uint32, words)}
}

// Size returns the number of addressable words.
func (s *Store) Size() int {
	return len(s.cells)
}

// Read returns the word at addr. For an out-of-range addr it returns the
// sentinel value and false.
func (s *Store) Read(addr uint32) (uint32, bool) {
	if int(addr) >= len(s.cells) {
		return npu.LoadSentinel, false
	}

	return s.cells[addr], true
}

// Write stores value at addr. It returns false for an out-of-range addr.
func (s *Store) Write(addr uint32, value uint32) bool {
	if int(addr) >= len(s.cells) {
		return false
	}

	s.cells[addr] = value

	return true
}
