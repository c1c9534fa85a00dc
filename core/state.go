package core

// pipelineState is the closed set of stages the pipeline moves through.
// Exactly one instruction is in flight at a time; a new word may only enter
// stateDecode after the previous instruction returned to stateIdle.
type pipelineState int

const (
	stateIdle pipelineState = iota
	stateDecode
	stateExecute
	stateMemAccess
	stateWriteback
)

// Name returns the name of the pipeline state.
func (s pipelineState) Name() string {
	switch s {
	case stateIdle:
		return "IDLE"
	case stateDecode:
		return "DECODE"
	case stateExecute:
		return "EXECUTE"
	case stateMemAccess:
		return "MEMORY_ACCESS"
	case stateWriteback:
		return "WRITEBACK"
	default:
		panic("invalid pipeline state")
	}
}
