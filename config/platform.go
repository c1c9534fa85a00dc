package config

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/npulab/npusim/cdq"
	"github.com/npulab/npusim/core"
	"github.com/npulab/npusim/memstub"
)

// A Device is an assembled NPU: the instruction pipeline, the memory stub,
// and the two cross-domain queues that connect it to the host domain.
type Device struct {
	name string

	core    *core.Core
	memStub *memstub.Comp

	inbound  *cdq.Ring
	outbound *cdq.Ring
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// InstructionQueue returns the ring the host writes instruction frames to.
func (d *Device) InstructionQueue() *cdq.Ring {
	return d.inbound
}

// ResultQueue returns the ring the host reads result frames from.
func (d *Device) ResultQueue() *cdq.Ring {
	return d.outbound
}

// CtrlPort returns the port the host driver connects to for doorbells and
// resets.
func (d *Device) CtrlPort() sim.Port {
	return d.core.CtrlPort()
}

// SetHostRemote tells the device where to deliver its doorbells.
func (d *Device) SetHostRemote(remote sim.RemotePort) {
	d.core.SetHostRemote(remote)
}

// Status returns the device status word.
func (d *Device) Status() uint32 {
	return d.core.Status()
}

// PerfCounters returns the total cycles ticked and instructions retired.
func (d *Device) PerfCounters() (cycles, operations uint64) {
	return d.core.PerfCounters()
}

// ResetPerfCounters zeroes the device performance counters.
func (d *Device) ResetPerfCounters() {
	d.core.ResetPerfCounters()
}

// Core returns the instruction pipeline.
func (d *Device) Core() *core.Core {
	return d.core
}

// MemStore returns the backing word store of the memory stub.
func (d *Device) MemStore() *memstub.Store {
	return d.memStub.Store()
}
