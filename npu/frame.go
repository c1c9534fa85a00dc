package npu

// FrameWords is the number of 32-bit words one transport frame carries.
const FrameWords = 4

// A Frame is the 128-bit transport unit that crosses between the host and
// the device domain. Word 0 occupies bits [31:0] of Lo and word 3 occupies
// bits [63:32] of Hi, so the first word enqueued sits in the least
// significant bits of the frame.
type Frame struct {
	Lo uint64
	Hi uint64
}

// PackFrame bundles four words into a frame, least-significant-word first.
func PackFrame(words [FrameWords]uint32) Frame {
	return Frame{
		Lo: uint64(words[0]) | uint64(words[1])<<32,
		Hi: uint64(words[2]) | uint64(words[3])<<32,
	}
}

// Words unpacks the frame into its four words in enqueue order.
func (f Frame) Words() [FrameWords]uint32 {
	return [FrameWords]uint32{
		uint32(f.Lo),
		uint32(f.Lo >> 32),
		uint32(f.Hi),
		uint32(f.Hi >> 32),
	}
}
