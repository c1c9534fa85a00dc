package core

import "github.com/npulab/npusim/npu"

// DefaultLanes is the reference number of processing elements.
const DefaultLanes = 16

// A ProcessingElement is one arithmetic lane. Its accumulator is the only
// persistent per-lane state: MAC adds into it, an explicit reset clears it,
// and no other operation touches it.
type ProcessingElement struct {
	id          int
	accumulator uint32
}

// ID returns the lane index.
func (pe *ProcessingElement) ID() int {
	return pe.id
}

// Accumulator returns the current accumulator value.
func (pe *ProcessingElement) Accumulator() uint32 {
	return pe.accumulator
}

// Reset clears the accumulator. It is only driven by the device-level reset
// signal, never by instruction execution.
func (pe *ProcessingElement) Reset() {
	pe.accumulator = 0
}

// Apply executes one operation on the lane. All arithmetic wraps modulo
// 2^32. For an opcode the lane does not implement, valid is false and the
// result must not be used.
func (pe *ProcessingElement) Apply(op npu.Opcode, a, b uint32) (result uint32, valid bool) {
	switch op {
	case npu.OpAdd:
		return a + b, true
	case npu.OpSub:
		return a - b, true
	case npu.OpMul:
		return a * b, true
	case npu.OpMac:
		pe.accumulator += a * b
		return pe.accumulator, true
	default:
		return 0, false
	}
}

// An Array is the bank of parallel lanes the pipeline dispatches to. Lane
// selection is by destination index modulo the lane count, so MAC state for
// a given dst always lands in the same lane.
type Array struct {
	lanes []*ProcessingElement
}

// NewArray creates an array with n lanes.
func NewArray(n int) *Array {
	if n <= 0 {
		n = DefaultLanes
	}

	a := &Array{lanes: make([]*ProcessingElement, n)}
	for i := range a.lanes {
		a.lanes[i] = &ProcessingElement{id: i}
	}

	return a
}

// Len returns the number of lanes.
func (a *Array) Len() int {
	return len(a.lanes)
}

// Lane returns lane i.
func (a *Array) Lane(i int) *ProcessingElement {
	return a.lanes[i]
}

// Select picks the lane for a destination index.
func (a *Array) Select(dst uint8) *ProcessingElement {
	return a.lanes[int(dst)%len(a.lanes)]
}

// Reset clears every accumulator in the array.
func (a *Array) Reset() {
	for _, pe := range a.lanes {
		pe.Reset()
	}
}
