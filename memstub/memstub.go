package memstub

import (
	"github.com/sarchlab/akita/v4/mem/mem"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/npulab/npusim/npu"
)

type pendingAccess struct {
	req        sim.Msg
	cyclesLeft int
}

// Comp services memory requests from the pipeline. Every request completes
// after the configured latency; requests are answered strictly in arrival
// order.
type Comp struct {
	*sim.TickingComponent

	topPort sim.Port
	store   *Store
	latency int

	pending []*pendingAccess
}

// TopPort returns the port the pipeline connects to.
func (c *Comp) TopPort() sim.Port {
	return c.topPort
}

// Store returns the backing store, e.g. for preloading test data.
func (c *Comp) Store() *Store {
	return c.store
}

// Tick runs the memory stub for one cycle. Responding runs before aging so
// a request that just reached zero waits one more cycle before its response
// leaves; a latency-L access occupies L+1 cycles after acceptance.
func (c *Comp) Tick() (madeProgress bool) {
	madeProgress = c.respond() || madeProgress
	madeProgress = c.age() || madeProgress
	madeProgress = c.accept() || madeProgress

	return madeProgress
}

func (c *Comp) age() bool {
	aged := false

	for _, p := range c.pending {
		if p.cyclesLeft > 0 {
			p.cyclesLeft--
			aged = true
		}
	}

	return aged
}

func (c *Comp) respond() bool {
	madeProgress := false

	for len(c.pending) > 0 {
		p := c.pending[0]
		if p.cyclesLeft > 0 {
			break
		}

		if !c.sendRsp(p.req) {
			break
		}

		c.pending = c.pending[1:]
		madeProgress = true
	}

	return madeProgress
}

func (c *Comp) sendRsp(req sim.Msg) bool {
	var rsp sim.Msg

	switch req := req.(type) {
	case *mem.ReadReq:
		value, valid := c.store.Read(uint32(req.Address))
		rsp = mem.DataReadyRspBuilder{}.
			WithSrc(c.topPort.AsRemote()).
			WithDst(req.Src).
			WithRspTo(req.ID).
			WithData(wordToBytes(value)).
			Build()

		if !valid {
			npu.Trace("Memory",
				"Behavior", "OutOfRangeRead",
				"Addr", req.Address,
				"Sentinel", value,
			)
		}
	case *mem.WriteReq:
		valid := c.store.Write(uint32(req.Address), bytesToWord(req.Data))
		rsp = mem.WriteDoneRspBuilder{}.
			WithSrc(c.topPort.AsRemote()).
			WithDst(req.Src).
			WithRspTo(req.ID).
			Build()

		if !valid {
			npu.Trace("Memory",
				"Behavior", "OutOfRangeWrite",
				"Addr", req.Address,
			)
		}
	default:
		panic("memstub: unexpected request type")
	}

	return c.topPort.Send(rsp) == nil
}

func (c *Comp) accept() bool {
	madeProgress := false

	for {
		item := c.topPort.PeekIncoming()
		if item == nil {
			break
		}

		c.pending = append(c.pending, &pendingAccess{
			req:        item,
			cyclesLeft: c.latency,
		})
		c.topPort.RetrieveIncoming()
		madeProgress = true
	}

	return madeProgress
}

func wordToBytes(data uint32) []byte {
	return []byte{byte(data >> 24), byte(data >> 16), byte(data >> 8), byte(data)}
}

func bytesToWord(data []byte) uint32 {
	return uint32(data[0])<<24 | uint32(data[1])<<16 |
		uint32(data[2])<<8 | uint32(data[3])
}
