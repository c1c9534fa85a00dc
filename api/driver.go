// Package api defines the host-side driver API for the NPU.
package api

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/npulab/npusim/cdq"
	"github.com/npulab/npusim/codec"
	"github.com/npulab/npusim/npu"
)

// Device is the accelerator surface the driver programs against.
type Device interface {
	InstructionQueue() *cdq.Ring
	ResultQueue() *cdq.Ring
	CtrlPort() sim.Port
	SetHostRemote(remote sim.RemotePort)
	Status() uint32
	PerfCounters() (cycles, operations uint64)
	ResetPerfCounters()
}

// Driver provides the interface to control an accelerator.
type Driver interface {
	sim.Component

	// RegisterDevice registers a device to the driver. The driver will
	// establish a control connection to the device and attach to its
	// cross-domain queues.
	RegisterDevice(device Device)

	// Submit queues a batch of instructions for execution. The returned
	// Batch collects one result word per instruction, in submission order.
	Submit(insts []npu.Instruction) *Batch

	// Reset asks the device to clear its accumulators and sticky status
	// bits. The reset takes effect when the device processes it.
	Reset()

	// Status reads the device status word.
	Status() uint32

	// PerfCounters reads the device cycle and operation counters.
	PerfCounters() (cycles, operations uint64)

	// ResetPerfCounters zeroes the device performance counters.
	ResetPerfCounters()

	// Run drives the simulation until all submitted batches complete.
	Run()
}

// A Batch tracks one Submit call. Results become available as the device
// retires the batch's instructions.
type Batch struct {
	results   []uint32
	collected int
}

// Done reports whether every instruction in the batch has a result.
func (b *Batch) Done() bool {
	return b.collected == len(b.results)
}

// Results returns one word per submitted instruction, in submission order.
// It must only be read after Done reports true.
func (b *Batch) Results() []uint32 {
	if !b.Done() {
		panic("batch is not complete")
	}

	return b.results
}

// A batchTask is the driver-internal view of a batch: the word stream to
// feed, padding included, and the cursor positions on both sides.
type batchTask struct {
	words      []uint32
	feedIdx    int
	collectIdx int

	batch *Batch
}

func (t *batchTask) fedAll() bool {
	return t.feedIdx >= len(t.words)
}

func (t *batchTask) collectedAll() bool {
	return t.collectIdx >= len(t.words)
}

type driverImpl struct {
	*sim.TickingComponent

	ctrlPort sim.Port

	device       Device
	deviceRemote sim.RemotePort

	packer   *codec.Packer
	unpacker *codec.Unpacker

	tasks        []*batchTask
	collectHead  int
	pendingReset bool

	// pendingDoorbells is a bitmask of npu.DoorbellKind values waiting to
	// be delivered to the device.
	pendingDoorbells uint8
}

// Tick runs the driver for one cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	madeProgress = d.processCtrl() || madeProgress
	madeProgress = d.doFeed() || madeProgress
	madeProgress = d.doCollect() || madeProgress
	madeProgress = d.sendReset() || madeProgress
	madeProgress = d.sendDoorbells() || madeProgress

	return madeProgress
}

// processCtrl drains doorbells rung by the device. The doorbell payload is
// its arrival; feed and collect run right after in the same tick.
func (d *driverImpl) processCtrl() bool {
	madeProgress := false

	for {
		item := d.ctrlPort.PeekIncoming()
		if item == nil {
			break
		}

		msg, ok := item.(*npu.DoorbellMsg)
		if !ok {
			panic("driver: unexpected control message")
		}

		npu.Trace("Driver",
			"Behavior", "Doorbell",
			"Kind", msg.Kind,
		)

		d.ctrlPort.RetrieveIncoming()
		madeProgress = true
	}

	return madeProgress
}

// doFeed pushes instruction words into the inbound queue. A full queue is
// backpressure: the driver holds the word and retries when the device rings
// the space doorbell.
func (d *driverImpl) doFeed() bool {
	madeProgress := false

	for _, task := range d.tasks {
		if task.fedAll() {
			continue
		}

		for !task.fedAll() {
			if !d.packer.TryPut(task.words[task.feedIdx]) {
				npu.Trace("Backpressure",
					"Type", "InstructionQueueFull",
					"Word", task.words[task.feedIdx],
				)
				return madeProgress
			}

			task.feedIdx++
			madeProgress = true

			if d.packer.Pending() == 0 {
				d.queueDoorbell(npu.WorkAvailable)
			}
		}
	}

	return madeProgress
}

// doCollect drains result words from the outbound queue into the oldest
// incomplete batch. Padding results are consumed and discarded.
func (d *driverImpl) doCollect() bool {
	madeProgress := false

	for d.collectHead < len(d.tasks) {
		task := d.tasks[d.collectHead]

		for !task.collectedAll() {
			word, ok := d.unpacker.TryNext()
			if !ok {
				return madeProgress
			}

			if d.unpacker.Buffered() == npu.FrameWords-1 {
				// A frame left the outbound queue; the pipeline may be
				// stalled in writeback waiting for that slot.
				d.queueDoorbell(npu.SpaceAvailable)
			}

			if task.collectIdx < len(task.batch.results) {
				task.batch.results[task.collectIdx] = word
				task.batch.collected++
			}
			task.collectIdx++
			madeProgress = true
		}

		d.collectHead++
	}

	return madeProgress
}

func (d *driverImpl) sendReset() bool {
	if !d.pendingReset {
		return false
	}

	msg := npu.ResetMsgBuilder{}.
		WithSrc(d.ctrlPort.AsRemote()).
		WithDst(d.deviceRemote).
		Build()

	if err := d.ctrlPort.Send(msg); err != nil {
		return false
	}

	d.pendingReset = false

	return true
}

func (d *driverImpl) queueDoorbell(kind npu.DoorbellKind) {
	d.pendingDoorbells |= 1 << uint(kind)
}

func (d *driverImpl) sendDoorbells() bool {
	if d.pendingDoorbells == 0 {
		return false
	}

	madeProgress := false

	for kind := npu.WorkAvailable; kind <= npu.SpaceAvailable; kind++ {
		if d.pendingDoorbells&(1<<uint(kind)) == 0 {
			continue
		}

		msg := npu.DoorbellMsgBuilder{}.
			WithSrc(d.ctrlPort.AsRemote()).
			WithDst(d.deviceRemote).
			WithKind(kind).
			Build()

		if err := d.ctrlPort.Send(msg); err != nil {
			break
		}

		d.pendingDoorbells &^= 1 << uint(kind)
		madeProgress = true
	}

	return madeProgress
}

// RegisterDevice registers a device to the driver. The driver will
// establish a control connection to the device and attach to its
// cross-domain queues.
func (d *driverImpl) RegisterDevice(device Device) {
	d.device = device
	d.deviceRemote = device.CtrlPort().AsRemote()
	d.packer = codec.NewPacker(device.InstructionQueue())
	d.unpacker = codec.NewUnpacker(device.ResultQueue())

	conn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.Freq).
		Build(d.Name() + ".CtrlConn")
	conn.PlugIn(d.ctrlPort)
	conn.PlugIn(device.CtrlPort())

	device.SetHostRemote(d.ctrlPort.AsRemote())
}

// Submit queues a batch of instructions. Batches are padded to a whole
// number of frames with no-op words; the device emits a result word for
// every word it consumes, so padding keeps batch boundaries frame-aligned.
// The padding results are discarded during collection.
func (d *driverImpl) Submit(insts []npu.Instruction) *Batch {
	words := make([]uint32, 0,
		(len(insts)+npu.FrameWords-1)/npu.FrameWords*npu.FrameWords)

	for _, inst := range insts {
		words = append(words, inst.Word())
	}
	for len(words)%npu.FrameWords != 0 {
		words = append(words, 0)
	}

	batch := &Batch{
		results: make([]uint32, len(insts)),
	}

	d.tasks = append(d.tasks, &batchTask{
		words: words,
		batch: batch,
	})

	npu.Trace("Driver",
		"Behavior", "Submit",
		"Instructions", len(insts),
		"PaddedWords", len(words),
	)

	return batch
}

// Reset asks the device to clear its accumulators and sticky status bits.
func (d *driverImpl) Reset() {
	d.pendingReset = true
}

// Status reads the device status word.
func (d *driverImpl) Status() uint32 {
	return d.device.Status()
}

// PerfCounters reads the device cycle and operation counters.
func (d *driverImpl) PerfCounters() (cycles, operations uint64) {
	return d.device.PerfCounters()
}

// ResetPerfCounters zeroes the device performance counters.
func (d *driverImpl) ResetPerfCounters() {
	d.device.ResetPerfCounters()
}

// Run runs until every submitted batch has completed.
func (d *driverImpl) Run() {
	d.TickNow()
	d.Engine.Run()
}
