package api

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/npulab/npusim/npu"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine sim.Engine
	freq   sim.Freq
}

// MakeDriverBuilder returns a builder with the default driver frequency.
func MakeDriverBuilder() DriverBuilder {
	return DriverBuilder{
		freq: 1 * sim.GHz,
	}
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)
	d.ctrlPort = npu.NewPort(d, 4, 4, name+".Ctrl")
	d.AddPort("Ctrl", d.ctrlPort)

	return d
}
