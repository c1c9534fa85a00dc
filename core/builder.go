package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/npulab/npusim/cdq"
	"github.com/npulab/npusim/codec"
	"github.com/npulab/npusim/npu"
)

// Builder can create new cores.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	lanes    int
	inbound  *cdq.Ring
	outbound *cdq.Ring
}

func MakeBuilder() Builder {
	return Builder{
		freq:  1 * sim.GHz,
		lanes: DefaultLanes,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithLanes sets the number of processing elements.
func (b Builder) WithLanes(lanes int) Builder {
	if lanes < 1 {
		panic("need at least one processing element")
	}
	b.lanes = lanes
	return b
}

// WithInboundQueue sets the ring the core reads instruction frames from.
func (b Builder) WithInboundQueue(ring *cdq.Ring) Builder {
	b.inbound = ring
	return b
}

// WithOutboundQueue sets the ring the core writes result frames to.
func (b Builder) WithOutboundQueue(ring *cdq.Ring) Builder {
	b.outbound = ring
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.inbound == nil || b.outbound == nil {
		panic("core needs both cross-domain queues")
	}

	c := &Core{}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.ctrlPort = npu.NewPort(c, 4, 4, name+".Ctrl")
	c.memPort = npu.NewPort(c, 1, 1, name+".Mem")
	c.AddPort("Ctrl", c.ctrlPort)
	c.AddPort("Mem", c.memPort)
	c.inbound = codec.NewUnpacker(b.inbound)
	c.outbound = codec.NewPacker(b.outbound)
	c.pes = NewArray(b.lanes)
	c.state = stateIdle
	c.setStatus(npu.StatusReady)

	return c
}
