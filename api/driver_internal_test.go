package api

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/npulab/npusim/cdq"
	"github.com/npulab/npusim/codec"
	"github.com/npulab/npusim/npu"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl   *gomock.Controller
		mockDevice *MockDevice
		driver     *driverImpl
		inQ, outQ  *cdq.Ring
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockDevice = NewMockDevice(mockCtrl)

		inQ = cdq.NewRing(4)
		outQ = cdq.NewRing(4)

		driver = &driverImpl{
			device:   mockDevice,
			packer:   codec.NewPacker(inQ),
			unpacker: codec.NewUnpacker(outQ),
		}
		driver.TickingComponent =
			sim.NewTickingComponent("Driver", nil, 1, driver)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should pad submitted batches to a whole number of frames", func() {
		inst := npu.Instruction{Opcode: npu.OpAdd, Src1: 1, Src2: 2, Dst: 0}

		batch := driver.Submit([]npu.Instruction{inst})

		Expect(driver.tasks).To(HaveLen(1))
		Expect(driver.tasks[0].words).To(HaveLen(npu.FrameWords))
		Expect(driver.tasks[0].words[0]).To(Equal(inst.Word()))
		Expect(driver.tasks[0].words[1]).To(Equal(uint32(0)))
		Expect(batch.Done()).To(BeFalse())
	})

	It("should not pad batches that already fill whole frames", func() {
		insts := make([]npu.Instruction, 2*npu.FrameWords)
		for i := range insts {
			insts[i] = npu.Instruction{Opcode: npu.OpAdd, Src1: uint8(i)}
		}

		driver.Submit(insts)

		Expect(driver.tasks[0].words).To(HaveLen(2 * npu.FrameWords))
	})

	It("should feed instruction frames into the inbound queue", func() {
		insts := make([]npu.Instruction, 2*npu.FrameWords)
		for i := range insts {
			insts[i] = npu.Instruction{Opcode: npu.OpAdd, Src1: uint8(i)}
		}
		driver.Submit(insts)

		madeProgress := driver.doFeed()

		Expect(madeProgress).To(BeTrue())
		Expect(inQ.Len()).To(Equal(2))
		Expect(driver.tasks[0].fedAll()).To(BeTrue())
		Expect(driver.pendingDoorbells &
			(1 << uint(npu.WorkAvailable))).NotTo(BeZero())
	})

	It("should hold words when the inbound queue is full", func() {
		for i := 0; i < inQ.Capacity(); i++ {
			inQ.TryWrite(npu.Frame{})
		}

		driver.Submit(make([]npu.Instruction, npu.FrameWords))

		driver.doFeed()

		// Three words stage locally; the frame-closing word must wait for
		// a free slot.
		Expect(driver.tasks[0].feedIdx).To(Equal(npu.FrameWords - 1))

		inQ.TryRead()

		madeProgress := driver.doFeed()

		Expect(madeProgress).To(BeTrue())
		Expect(driver.tasks[0].fedAll()).To(BeTrue())
	})

	It("should collect results and discard padding words", func() {
		batch := driver.Submit([]npu.Instruction{
			{Opcode: npu.OpAdd, Src1: 100, Src2: 200},
			{Opcode: npu.OpMul, Src1: 10, Src2: 20},
		})

		outQ.TryWrite(npu.PackFrame([npu.FrameWords]uint32{300, 200, 0, 0}))

		madeProgress := driver.doCollect()

		Expect(madeProgress).To(BeTrue())
		Expect(batch.Done()).To(BeTrue())
		Expect(batch.Results()).To(Equal([]uint32{300, 200}))
		Expect(driver.pendingDoorbells &
			(1 << uint(npu.SpaceAvailable))).NotTo(BeZero())
	})

	It("should collect batches in submission order", func() {
		first := driver.Submit([]npu.Instruction{
			{Opcode: npu.OpAdd, Src1: 1, Src2: 1},
		})
		second := driver.Submit([]npu.Instruction{
			{Opcode: npu.OpAdd, Src1: 2, Src2: 2},
		})

		outQ.TryWrite(npu.PackFrame([npu.FrameWords]uint32{2, 0, 0, 0}))
		outQ.TryWrite(npu.PackFrame([npu.FrameWords]uint32{4, 0, 0, 0}))

		driver.doCollect()

		Expect(first.Results()).To(Equal([]uint32{2}))
		Expect(second.Results()).To(Equal([]uint32{4}))
	})

	It("should read the device status word", func() {
		mockDevice.EXPECT().
			Status().
			Return(npu.StatusReady | npu.StatusDone)

		Expect(driver.Status()).To(Equal(npu.StatusReady | npu.StatusDone))
	})

	It("should read the device performance counters", func() {
		mockDevice.EXPECT().
			PerfCounters().
			Return(uint64(100), uint64(25))

		cycles, ops := driver.PerfCounters()

		Expect(cycles).To(Equal(uint64(100)))
		Expect(ops).To(Equal(uint64(25)))
	})
})
