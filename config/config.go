// Package config provides a default configuration for the NPU device.
package config

import (
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/npulab/npusim/cdq"
	"github.com/npulab/npusim/core"
	"github.com/npulab/npusim/memstub"
)

// DeviceBuilder can build NPU devices.
type DeviceBuilder struct {
	engine     sim.Engine
	freq       sim.Freq
	lanes      int
	queueDepth int
	memLatency int
	memWords   int
	monitor    *monitoring.Monitor
}

// MakeDeviceBuilder returns a builder with the default device geometry.
func MakeDeviceBuilder() DeviceBuilder {
	return DeviceBuilder{
		freq:       1 * sim.GHz,
		lanes:      core.DefaultLanes,
		queueDepth: cdq.DefaultCapacity,
		memLatency: 1,
		memWords:   memstub.DefaultSize,
	}
}

// WithEngine sets the engine that drives the device simulation.
func (d DeviceBuilder) WithEngine(engine sim.Engine) DeviceBuilder {
	d.engine = engine
	return d
}

// WithFreq sets the frequency of the device.
func (d DeviceBuilder) WithFreq(freq sim.Freq) DeviceBuilder {
	d.freq = freq
	return d
}

// WithLanes sets the number of processing elements in the core.
func (d DeviceBuilder) WithLanes(lanes int) DeviceBuilder {
	d.lanes = lanes
	return d
}

// WithQueueDepth sets the frame capacity of each cross-domain queue. It must
// be a power of two.
func (d DeviceBuilder) WithQueueDepth(depth int) DeviceBuilder {
	d.queueDepth = depth
	return d
}

// WithMemLatency sets the memory stub response latency in cycles.
func (d DeviceBuilder) WithMemLatency(cycles int) DeviceBuilder {
	d.memLatency = cycles
	return d
}

// WithMemSize sets the number of words the memory stub holds.
func (d DeviceBuilder) WithMemSize(words int) DeviceBuilder {
	d.memWords = words
	return d
}

// WithMonitor registers the device components with a monitor.
func (d DeviceBuilder) WithMonitor(monitor *monitoring.Monitor) DeviceBuilder {
	d.monitor = monitor
	return d
}

// Build creates an NPU device.
func (d DeviceBuilder) Build(name string) *Device {
	dev := &Device{
		name:     name,
		inbound:  cdq.NewRing(d.queueDepth),
		outbound: cdq.NewRing(d.queueDepth),
	}

	dev.core = core.MakeBuilder().
		WithEngine(d.engine).
		WithFreq(d.freq).
		WithLanes(d.lanes).
		WithInboundQueue(dev.inbound).
		WithOutboundQueue(dev.outbound).
		Build(name + ".Core")

	dev.memStub = memstub.MakeBuilder().
		WithEngine(d.engine).
		WithFreq(d.freq).
		WithLatency(d.memLatency).
		WithSize(d.memWords).
		Build(name + ".MemStub")

	memConn := directconnection.MakeBuilder().
		WithEngine(d.engine).
		WithFreq(d.freq).
		Build(name + ".MemConn")
	memConn.PlugIn(dev.core.MemPort())
	memConn.PlugIn(dev.memStub.TopPort())

	dev.core.SetMemRemote(dev.memStub.TopPort().AsRemote())

	if d.monitor != nil {
		d.monitor.RegisterComponent(dev.core)
		d.monitor.RegisterComponent(dev.memStub)
	}

	return dev
}
