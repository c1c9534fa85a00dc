package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/npulab/npusim/cdq"
	"github.com/npulab/npusim/codec"
	"github.com/npulab/npusim/npu"
)

var _ = Describe("Packer and Unpacker", func() {
	var (
		ring     *cdq.Ring
		packer   *codec.Packer
		unpacker *codec.Unpacker
	)

	BeforeEach(func() {
		ring = cdq.NewRing(4)
		packer = codec.NewPacker(ring)
		unpacker = codec.NewUnpacker(ring)
	})

	It("should not emit a frame before four words are staged", func() {
		packer.TryPut(1)
		packer.TryPut(2)
		packer.TryPut(3)

		Expect(ring.IsEmpty()).To(BeTrue())
		Expect(packer.Pending()).To(Equal(3))

		_, ok := unpacker.TryNext()
		Expect(ok).To(BeFalse())
	})

	It("should emit a frame on the fourth word", func() {
		for w := uint32(1); w <= 4; w++ {
			Expect(packer.TryPut(w)).To(BeTrue())
		}

		Expect(ring.Len()).To(Equal(1))
		Expect(packer.Pending()).To(Equal(0))
	})

	It("should hand out words in packing order", func() {
		words := []uint32{10, 20, 30, 40, 50, 60, 70, 80}
		for _, w := range words {
			packer.TryPut(w)
		}

		for _, want := range words {
			got, ok := unpacker.TryNext()
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(want))
		}
	})

	It("should preserve all-zero and all-one words", func() {
		words := []uint32{0x00000000, 0xFFFFFFFF, 0x00000000, 0xFFFFFFFF}
		for _, w := range words {
			packer.TryPut(w)
		}

		for _, want := range words {
			got, _ := unpacker.TryNext()
			Expect(got).To(Equal(want))
		}
	})

	It("should reject the frame-closing word when the ring is full", func() {
		for i := 0; i < ring.Capacity(); i++ {
			ring.TryWrite(npu.Frame{})
		}

		Expect(packer.TryPut(1)).To(BeTrue())
		Expect(packer.TryPut(2)).To(BeTrue())
		Expect(packer.TryPut(3)).To(BeTrue())
		Expect(packer.CanPut()).To(BeFalse())
		Expect(packer.TryPut(4)).To(BeFalse())
		Expect(packer.Pending()).To(Equal(3))

		ring.TryRead()

		Expect(packer.CanPut()).To(BeTrue())
		Expect(packer.TryPut(4)).To(BeTrue())
		Expect(packer.Pending()).To(Equal(0))
	})

	It("should count staged words on the unpacking side", func() {
		for w := uint32(1); w <= 4; w++ {
			packer.TryPut(w)
		}

		Expect(unpacker.Buffered()).To(Equal(0))

		unpacker.TryNext()

		Expect(unpacker.Buffered()).To(Equal(npu.FrameWords - 1))
	})
})
