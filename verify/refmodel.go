// Package verify cross-checks the timing simulator against a cycle-free
// reference model of the instruction semantics.
package verify

import "github.com/npulab/npusim/npu"

// RefModel executes instructions functionally, one call per instruction,
// with no notion of queues, frames, or cycles. It implements exactly the
// architectural semantics: per-lane MAC accumulators, bounded word memory
// with the load sentinel, and a zero result for unknown opcodes.
type RefModel struct {
	accumulators []uint32
	memory       []uint32
}

// NewRefModel creates a reference model with the given lane count and
// memory size in words.
func NewRefModel(lanes, memWords int) *RefModel {
	return &RefModel{
		accumulators: make([]uint32, lanes),
		memory:       make([]uint32, memWords),
	}
}

// Execute runs one instruction and returns its result word.
func (m *RefModel) Execute(inst npu.Instruction) uint32 {
	a := uint32(inst.Src1)
	b := uint32(inst.Src2)

	switch inst.Opcode {
	case npu.OpAdd:
		return a + b
	case npu.OpSub:
		return a - b
	case npu.OpMul:
		return a * b
	case npu.OpMac:
		lane := int(inst.Dst) % len(m.accumulators)
		m.accumulators[lane] += a * b
		return m.accumulators[lane]
	case npu.OpLoad:
		if int(inst.Src1) >= len(m.memory) {
			return npu.LoadSentinel
		}
		return m.memory[inst.Src1]
	case npu.OpStore:
		if int(inst.Dst) < len(m.memory) {
			m.memory[inst.Dst] = a
		}
		return a
	default:
		return 0
	}
}

// ExecuteAll runs a whole stream and returns one result per instruction.
func (m *RefModel) ExecuteAll(insts []npu.Instruction) []uint32 {
	results := make([]uint32, len(insts))
	for i, inst := range insts {
		results[i] = m.Execute(inst)
	}

	return results
}

// Accumulator returns the accumulator of the given lane.
func (m *RefModel) Accumulator(lane int) uint32 {
	return m.accumulators[lane]
}

// Memory returns the word at addr, or the sentinel when out of range.
func (m *RefModel) Memory(addr uint32) uint32 {
	if int(addr) >= len(m.memory) {
		return npu.LoadSentinel
	}

	return m.memory[addr]
}
