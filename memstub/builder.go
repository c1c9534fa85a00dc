package memstub

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/npulab/npusim/npu"
)

// Builder can create memory stubs.
type Builder struct {
	engine  sim.Engine
	freq    sim.Freq
	latency int
	words   int
}

// MakeBuilder returns a builder with the reference configuration.
func MakeBuilder() Builder {
	return Builder{
		freq:    1 * sim.GHz,
		latency: 1,
		words:   DefaultSize,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the memory stub.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithLatency sets the response latency in cycles. It must be at least 1.
func (b Builder) WithLatency(latency int) Builder {
	if latency < 1 {
		panic("memstub: latency must be at least 1 cycle")
	}

	b.latency = latency
	return b
}

// WithSize sets the store size in words.
func (b Builder) WithSize(words int) Builder {
	b.words = words
	return b
}

// Build creates a memory stub.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		store:   NewStore(b.words),
		latency: b.latency,
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.topPort = npu.NewPort(c, 4, 4, name+".Top")
	c.AddPort("Top", c.topPort)

	return c
}
