// Package core implements the device-domain instruction pipeline and its
// processing element array.
package core

import (
	"sync/atomic"

	"github.com/sarchlab/akita/v4/mem/mem"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/npulab/npusim/codec"
	"github.com/npulab/npusim/npu"
)

// Core is the instruction pipeline. It consumes one instruction word at a
// time from the inbound cross-domain queue, drives the processing element
// array or the memory stub, and publishes exactly one result word per
// instruction to the outbound queue.
type Core struct {
	*sim.TickingComponent

	ctrlPort sim.Port
	memPort  sim.Port

	hostRemote sim.RemotePort
	memRemote  sim.RemotePort

	inbound  *codec.Unpacker
	outbound *codec.Packer
	pes      *Array

	state  pipelineState
	inst   npu.Instruction
	result uint32

	// pendingDoorbells is a bitmask of npu.DoorbellKind values that still
	// have to be delivered to the host.
	pendingDoorbells uint8

	status     atomic.Uint32
	cycleCount atomic.Uint64
	opCount    atomic.Uint64
}

// CtrlPort returns the port the host driver connects to.
func (c *Core) CtrlPort() sim.Port {
	return c.ctrlPort
}

// MemPort returns the port the memory stub connects to.
func (c *Core) MemPort() sim.Port {
	return c.memPort
}

// SetHostRemote tells the core where to ring its doorbells.
func (c *Core) SetHostRemote(remote sim.RemotePort) {
	c.hostRemote = remote
}

// SetMemRemote tells the core where to send memory requests.
func (c *Core) SetMemRemote(remote sim.RemotePort) {
	c.memRemote = remote
}

// Status returns the current status word. It is safe to read from the host
// domain at any time.
func (c *Core) Status() uint32 {
	return c.status.Load()
}

// PerfCounters returns the total cycles ticked and instructions retired.
func (c *Core) PerfCounters() (cycles, operations uint64) {
	return c.cycleCount.Load(), c.opCount.Load()
}

// ResetPerfCounters zeroes both performance counters.
func (c *Core) ResetPerfCounters() {
	c.cycleCount.Store(0)
	c.opCount.Store(0)
}

// PEArray returns the processing element array.
func (c *Core) PEArray() *Array {
	return c.pes
}

// Tick runs the pipeline for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	c.cycleCount.Add(1)

	madeProgress = c.processCtrl() || madeProgress
	madeProgress = c.processMemRsp() || madeProgress
	madeProgress = c.step() || madeProgress
	madeProgress = c.sendDoorbells() || madeProgress

	return madeProgress
}

// processCtrl drains doorbells and reset signals from the host.
func (c *Core) processCtrl() bool {
	madeProgress := false

	for {
		item := c.ctrlPort.PeekIncoming()
		if item == nil {
			break
		}

		switch msg := item.(type) {
		case *npu.DoorbellMsg:
			// The doorbell carries no payload; retrieving it already woke
			// the pipeline, and step() will see the new queue state.
			npu.Trace("Pipeline",
				"Behavior", "Doorbell",
				"Kind", msg.Kind,
			)
		case *npu.ResetMsg:
			c.pes.Reset()
			c.clearStatus(npu.StatusError | npu.StatusDone)
			npu.Trace("Pipeline", "Behavior", "Reset")
		default:
			panic("core: unexpected control message")
		}

		c.ctrlPort.RetrieveIncoming()
		madeProgress = true
	}

	return madeProgress
}

// processMemRsp completes an outstanding MEMORY_ACCESS.
func (c *Core) processMemRsp() bool {
	if c.state != stateMemAccess {
		return false
	}

	item := c.memPort.PeekIncoming()
	if item == nil {
		return false
	}

	switch rsp := item.(type) {
	case *mem.DataReadyRsp:
		c.result = bytesToWord(rsp.Data)
	case *mem.WriteDoneRsp:
		// The echo value for STORE was latched in EXECUTE.
	default:
		panic("core: unexpected memory response")
	}

	c.memPort.RetrieveIncoming()
	c.state = stateWriteback

	return true
}

// step advances the pipeline by one stage.
func (c *Core) step() bool {
	switch c.state {
	case stateIdle:
		return c.doIdle()
	case stateDecode:
		return c.doDecode()
	case stateExecute:
		return c.doExecute()
	case stateMemAccess:
		// Waiting on the memory stub; completion happens in processMemRsp.
		return false
	case stateWriteback:
		return c.doWriteback()
	default:
		panic("invalid pipeline state")
	}
}

// doIdle accepts the next instruction word. The pipeline only leaves IDLE
// when the result side can take one more word, so an accepted instruction
// can always run to WRITEBACK.
func (c *Core) doIdle() bool {
	if !c.outbound.CanPut() {
		return false
	}

	word, ok := c.inbound.TryNext()
	if !ok {
		return false
	}

	if c.inbound.Buffered() == npu.FrameWords-1 {
		// A frame just left the inbound queue; the host may be waiting for
		// that slot.
		c.queueDoorbell(npu.SpaceAvailable)
	}

	c.inst = npu.DecodeInstruction(word)
	c.setStatus(npu.StatusBusy)
	c.clearStatus(npu.StatusReady | npu.StatusDone)
	c.state = stateDecode

	return true
}

func (c *Core) doDecode() bool {
	if !c.inst.Opcode.IsValid() {
		c.setStatus(npu.StatusError)
		npu.Trace("Pipeline",
			"Behavior", "InvalidOpcode",
			"Opcode", uint8(c.inst.Opcode),
		)
	}

	c.state = stateExecute

	return true
}

func (c *Core) doExecute() bool {
	if c.inst.Opcode.IsMemory() {
		return c.issueMemAccess()
	}

	lane := c.pes.Select(c.inst.Dst)
	result, valid := lane.Apply(
		c.inst.Opcode, uint32(c.inst.Src1), uint32(c.inst.Src2))
	if !valid {
		result = 0
	}

	c.result = result
	c.state = stateWriteback

	npu.Trace("Pipeline",
		"Behavior", "Execute",
		"Opcode", c.inst.Opcode.Name(),
		"Lane", lane.ID(),
		"Result", result,
	)

	return true
}

// issueMemAccess sends the LOAD or STORE request. A failed send is retried
// on the next cycle; the pipeline stays in EXECUTE until the request is out.
func (c *Core) issueMemAccess() bool {
	var req sim.Msg

	switch c.inst.Opcode {
	case npu.OpLoad:
		req = mem.ReadReqBuilder{}.
			WithAddress(uint64(c.inst.Src1)).
			WithSrc(c.memPort.AsRemote()).
			WithDst(c.memRemote).
			WithByteSize(4).
			Build()
	case npu.OpStore:
		value := uint32(c.inst.Src1)
		req = mem.WriteReqBuilder{}.
			WithAddress(uint64(c.inst.Dst)).
			WithData(wordToBytes(value)).
			WithSrc(c.memPort.AsRemote()).
			WithDst(c.memRemote).
			Build()
		// STORE echoes the stored word; latch it before the round trip.
		c.result = value
	default:
		panic("core: not a memory opcode")
	}

	if err := c.memPort.Send(req); err != nil {
		return false
	}

	c.state = stateMemAccess

	return true
}

// doWriteback publishes the result word. When the outbound path is full the
// result is held, not dropped, and the stage retries until space exists.
func (c *Core) doWriteback() bool {
	if !c.outbound.TryPut(c.result) {
		npu.Trace("Backpressure",
			"Type", "WritebackStalled",
			"Result", c.result,
		)
		return false
	}

	if c.outbound.Pending() == 0 {
		// A full frame crossed to the host side.
		c.queueDoorbell(npu.ResultAvailable)
	}

	c.opCount.Add(1)
	c.setStatus(npu.StatusReady | npu.StatusDone)
	c.clearStatus(npu.StatusBusy | npu.StatusError)
	c.state = stateIdle

	return true
}

func (c *Core) queueDoorbell(kind npu.DoorbellKind) {
	c.pendingDoorbells |= 1 << uint(kind)
}

func (c *Core) sendDoorbells() bool {
	if c.pendingDoorbells == 0 || c.hostRemote == "" {
		return false
	}

	madeProgress := false

	for kind := npu.WorkAvailable; kind <= npu.SpaceAvailable; kind++ {
		if c.pendingDoorbells&(1<<uint(kind)) == 0 {
			continue
		}

		msg := npu.DoorbellMsgBuilder{}.
			WithSrc(c.ctrlPort.AsRemote()).
			WithDst(c.hostRemote).
			WithKind(kind).
			Build()

		if err := c.ctrlPort.Send(msg); err != nil {
			break
		}

		c.pendingDoorbells &^= 1 << uint(kind)
		madeProgress = true
	}

	return madeProgress
}

func (c *Core) setStatus(bits uint32) {
	c.status.Store(c.status.Load() | bits)
}

func (c *Core) clearStatus(bits uint32) {
	c.status.Store(c.status.Load() &^ bits)
}

func wordToBytes(data uint32) []byte {
	return []byte{byte(data >> 24), byte(data >> 16), byte(data >> 8), byte(data)}
}

func bytesToWord(data []byte) uint32 {
	return uint32(data[0])<<24 | uint32(data[1])<<16 |
		uint32(data[2])<<8 | uint32(data[3])
}
