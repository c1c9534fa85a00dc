package verify

import "github.com/npulab/npusim/npu"

// IssueType classifies lint findings.
type IssueType string

const (
	// IssueInvalidOpcode flags a word the pipeline will retire with a zero
	// result and a transient error.
	IssueInvalidOpcode IssueType = "InvalidOpcode"

	// IssueLoadOutOfRange flags a LOAD that will answer the sentinel.
	IssueLoadOutOfRange IssueType = "LoadOutOfRange"

	// IssueStoreOutOfRange flags a STORE that will write nothing.
	IssueStoreOutOfRange IssueType = "StoreOutOfRange"
)

// An Issue is one lint finding tied to a stream position.
type Issue struct {
	Index   int
	Type    IssueType
	Inst    npu.Instruction
	Message string
}

// Lint inspects an instruction stream for words with surprising, although
// well-defined, behavior on a device with the given memory size.
func Lint(insts []npu.Instruction, memWords int) []Issue {
	var issues []Issue

	for i, inst := range insts {
		switch {
		case !inst.Opcode.IsValid():
			issues = append(issues, Issue{
				Index:   i,
				Type:    IssueInvalidOpcode,
				Inst:    inst,
				Message: "opcode is outside the instruction set",
			})
		case inst.Opcode == npu.OpLoad && int(inst.Src1) >= memWords:
			issues = append(issues, Issue{
				Index:   i,
				Type:    IssueLoadOutOfRange,
				Inst:    inst,
				Message: "load address exceeds the memory size",
			})
		case inst.Opcode == npu.OpStore && int(inst.Dst) >= memWords:
			issues = append(issues, Issue{
				Index:   i,
				Type:    IssueStoreOutOfRange,
				Inst:    inst,
				Message: "store address exceeds the memory size",
			})
		}
	}

	return issues
}
