// Package codec converts between 32-bit word streams and the 128-bit frames
// carried by the cross-domain queues. It is used symmetrically: the host
// packs instruction words going in and unpacks result words coming out; the
// device does the reverse.
package codec

import (
	"github.com/npulab/npusim/cdq"
	"github.com/npulab/npusim/npu"
)

// A Packer accumulates words and writes one frame to the ring for every
// four words accepted. Partial frames are never flushed; the producer must
// supply a full frame's worth of words before anything crosses the queue.
type Packer struct {
	out *cdq.Ring

	buf [npu.FrameWords]uint32
	n   int
}

// NewPacker creates a packer that flushes into out.
func NewPacker(out *cdq.Ring) *Packer {
	return &Packer{out: out}
}

// CanPut reports whether TryPut would accept a word right now.
func (p *Packer) CanPut() bool {
	return p.n < npu.FrameWords-1 || !p.out.IsFull()
}

// TryPut stages one word. The fourth word closes the frame and pushes it
// onto the ring in the same call; when the ring is full the closing word is
// rejected and must be offered again. An accepted word has always landed,
// either staged or inside a frame on the ring.
func (p *Packer) TryPut(word uint32) bool {
	if p.n == npu.FrameWords-1 && p.out.IsFull() {
		return false
	}

	p.buf[p.n] = word
	p.n++

	if p.n == npu.FrameWords {
		// Cannot fail: fullness was checked above and this side is the
		// ring's only producer.
		p.out.TryWrite(npu.PackFrame(p.buf))
		p.n = 0
	}

	return true
}

// Pending returns the number of staged words that have not crossed the ring.
func (p *Packer) Pending() int {
	return p.n
}

// An Unpacker pops frames from the ring and hands out their words in the
// order they were packed.
type Unpacker struct {
	in *cdq.Ring

	buf [npu.FrameWords]uint32
	n   int
	idx int
}

// NewUnpacker creates an unpacker that drains in.
func NewUnpacker(in *cdq.Ring) *Unpacker {
	return &Unpacker{in: in}
}

// TryNext returns the next word. It returns false when no staged word is
// left and the ring is empty.
func (u *Unpacker) TryNext() (uint32, bool) {
	if u.idx == u.n {
		f, ok := u.in.TryRead()
		if !ok {
			return 0, false
		}

		words := f.Words()
		copy(u.buf[:], words[:])
		u.n = npu.FrameWords
		u.idx = 0
	}

	w := u.buf[u.idx]
	u.idx++

	return w, true
}

// Buffered returns the number of staged words not yet handed out. Words still
// inside the ring are not counted.
func (u *Unpacker) Buffered() int {
	return u.n - u.idx
}
