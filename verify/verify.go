package verify

import "github.com/npulab/npusim/npu"

// A Mismatch is one disagreement between the timing simulator and the
// reference model.
type Mismatch struct {
	Index    int
	Inst     npu.Instruction
	Expected uint32
	Actual   uint32
}

// Compare runs the reference model over insts and diffs its results against
// the words the timing simulator produced. The device geometry must match
// the one the simulator ran with.
func Compare(
	insts []npu.Instruction,
	actual []uint32,
	lanes, memWords int,
) []Mismatch {
	expected := NewRefModel(lanes, memWords).ExecuteAll(insts)

	var mismatches []Mismatch
	for i := range insts {
		if i >= len(actual) || expected[i] != actual[i] {
			m := Mismatch{
				Index:    i,
				Inst:     insts[i],
				Expected: expected[i],
			}
			if i < len(actual) {
				m.Actual = actual[i]
			}
			mismatches = append(mismatches, m)
		}
	}

	return mismatches
}
