package npu

import "github.com/sarchlab/akita/v4/sim"

// DoorbellKind tells the receiver which cross-domain queue has news.
type DoorbellKind int

const (
	// WorkAvailable signals the device that the host pushed frames into the
	// inbound queue.
	WorkAvailable DoorbellKind = iota

	// ResultAvailable signals the host that the device pushed a result frame
	// into the outbound queue.
	ResultAvailable

	// SpaceAvailable signals the other domain that slots were freed in the
	// queue it writes to, so a previously failed write can be retried.
	SpaceAvailable
)

// DoorbellMsg is the wake-up signal exchanged between the host driver and
// the device core. It carries no payload; the data itself rides the
// cross-domain queues.
type DoorbellMsg struct {
	sim.MsgMeta

	Kind DoorbellKind
}

// Meta returns the meta data of the msg.
func (m *DoorbellMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone duplicates the msg with a fresh ID.
func (m *DoorbellMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// DoorbellMsgBuilder is a factory for DoorbellMsg.
type DoorbellMsgBuilder struct {
	src, dst sim.RemotePort
	kind     DoorbellKind
}

// WithSrc sets the source port of the msg.
func (b DoorbellMsgBuilder) WithSrc(src sim.RemotePort) DoorbellMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b DoorbellMsgBuilder) WithDst(dst sim.RemotePort) DoorbellMsgBuilder {
	b.dst = dst
	return b
}

// WithKind sets the doorbell kind.
func (b DoorbellMsgBuilder) WithKind(kind DoorbellKind) DoorbellMsgBuilder {
	b.kind = kind
	return b
}

// Build creates a DoorbellMsg.
func (b DoorbellMsgBuilder) Build() *DoorbellMsg {
	return &DoorbellMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Kind: b.kind,
	}
}

// ResetMsg carries the device-level reset signal. It clears every processing
// element accumulator and the sticky status bits; it does not touch memory.
type ResetMsg struct {
	sim.MsgMeta
}

// Meta returns the meta data of the msg.
func (m *ResetMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone duplicates the msg with a fresh ID.
func (m *ResetMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// ResetMsgBuilder is a factory for ResetMsg.
type ResetMsgBuilder struct {
	src, dst sim.RemotePort
}

// WithSrc sets the source port of the msg.
func (b ResetMsgBuilder) WithSrc(src sim.RemotePort) ResetMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b ResetMsgBuilder) WithDst(dst sim.RemotePort) ResetMsgBuilder {
	b.dst = dst
	return b
}

// Build creates a ResetMsg.
func (b ResetMsgBuilder) Build() *ResetMsg {
	return &ResetMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
	}
}
