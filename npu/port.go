package npu

import (
	"fmt"
	"sync"

	"github.com/sarchlab/akita/v4/sim"
)

// HookPosPortMsgSend marks when a message is sent out from the port.
var HookPosPortMsgSend = &sim.HookPos{Name: "Port Msg Send"}

// HookPosPortMsgRecvd marks when an inbound message arrives at the port.
var HookPosPortMsgRecvd = &sim.HookPos{Name: "Port Msg Recv"}

// HookPosPortMsgRetrieve marks when a message is taken out of a port buffer.
var HookPosPortMsgRetrieve = &sim.HookPos{Name: "Port Msg Retrieve"}

// port is the buffered port used by every component in the simulator.
type port struct {
	sim.HookableBase

	lock sync.Mutex
	name string
	comp sim.Component
	conn sim.Connection

	incomingBuf sim.Buffer
	outgoingBuf sim.Buffer
}

// NewPort creates a port with bounded incoming and outgoing buffers.
func NewPort(
	comp sim.Component,
	incomingBufCap, outgoingBufCap int,
	name string,
) sim.Port {
	p := new(port)
	p.comp = comp
	p.incomingBuf = sim.NewBuffer(name+".IncomingBuf", incomingBufCap)
	p.outgoingBuf = sim.NewBuffer(name+".OutgoingBuf", outgoingBufCap)
	p.name = name

	return p
}

// Name returns the name of the port.
func (p *port) Name() string {
	return p.name
}

// AsRemote returns the name other components use to address this port.
func (p *port) AsRemote() sim.RemotePort {
	return sim.RemotePort(p.name)
}

// SetConnection sets which connection is plugged into this port.
func (p *port) SetConnection(conn sim.Connection) {
	if p.conn != nil {
		panic(fmt.Sprintf(
			"connection already set to %s, now connecting to %s",
			p.conn.Name(), conn.Name(),
		))
	}

	p.conn = conn
}

// Component returns the owner component of the port.
func (p *port) Component() sim.Component {
	return p.comp
}

// CanSend checks if the port can accept an outgoing message without error.
func (p *port) CanSend() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.outgoingBuf.CanPush()
}

// Send is used by the owning component to send a message out.
func (p *port) Send(msg sim.Msg) *sim.SendError {
	p.lock.Lock()

	p.msgMustBeValid(msg)

	if !p.outgoingBuf.CanPush() {
		p.lock.Unlock()
		return sim.NewSendError()
	}

	wasEmpty := p.outgoingBuf.Size() == 0
	p.outgoingBuf.Push(msg)

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgSend,
		Item:   msg,
	})
	p.lock.Unlock()

	if wasEmpty {
		p.conn.NotifySend()
	}

	return nil
}

// Deliver is used by the connection to hand a message to the component.
func (p *port) Deliver(msg sim.Msg) *sim.SendError {
	p.lock.Lock()

	if !p.incomingBuf.CanPush() {
		p.lock.Unlock()
		return sim.NewSendError()
	}

	wasEmpty := p.incomingBuf.Size() == 0

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRecvd,
		Item:   msg,
	})

	p.incomingBuf.Push(msg)
	p.lock.Unlock()

	if p.comp != nil && wasEmpty {
		p.comp.NotifyRecv(p)
	}

	return nil
}

// RetrieveIncoming takes one message from the incoming buffer.
func (p *port) RetrieveIncoming() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.incomingBuf.Pop()
	if item == nil {
		return nil
	}

	msg := item.(sim.Msg)
	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRetrieve,
		Item:   msg,
	})

	if p.incomingBuf.Size() == p.incomingBuf.Capacity()-1 {
		p.conn.NotifyAvailable(p)
	}

	return msg
}

// RetrieveOutgoing takes one message from the outgoing buffer.
func (p *port) RetrieveOutgoing() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.outgoingBuf.Pop()
	if item == nil {
		return nil
	}

	msg := item.(sim.Msg)
	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRetrieve,
		Item:   msg,
	})

	if p.outgoingBuf.Size() == p.outgoingBuf.Capacity()-1 {
		p.comp.NotifyPortFree(p)
	}

	return msg
}

// PeekIncoming returns the head of the incoming buffer without removing it.
func (p *port) PeekIncoming() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.incomingBuf.Peek()
	if item == nil {
		return nil
	}

	return item.(sim.Msg)
}

// PeekOutgoing returns the head of the outgoing buffer without removing it.
func (p *port) PeekOutgoing() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.outgoingBuf.Peek()
	if item == nil {
		return nil
	}

	return item.(sim.Msg)
}

// NotifyAvailable is called by the connection when it can carry traffic
// again.
func (p *port) NotifyAvailable() {
	if p.comp != nil {
		p.comp.NotifyPortFree(p)
	}
}

func (p *port) msgMustBeValid(msg sim.Msg) {
	if p.Name() != string(msg.Meta().Src) {
		panic("sending port is not msg src")
	}

	if msg.Meta().Dst == "" {
		panic("dst is not given")
	}

	if msg.Meta().Src == msg.Meta().Dst {
		panic("sending back to src")
	}
}
