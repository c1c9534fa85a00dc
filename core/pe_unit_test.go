package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/npulab/npusim/npu"
)

var _ = Describe("ProcessingElement", func() {
	var pe *ProcessingElement

	BeforeEach(func() {
		pe = &ProcessingElement{}
	})

	Context("Arithmetic Operations", func() {
		Describe("ADD", func() {
			It("should add the operands", func() {
				result, valid := pe.Apply(npu.OpAdd, 100, 200)
				Expect(valid).To(BeTrue())
				Expect(result).To(Equal(uint32(300)))
			})

			It("should wrap around on overflow", func() {
				result, _ := pe.Apply(npu.OpAdd, 0xFFFFFFFF, 1)
				Expect(result).To(Equal(uint32(0)))
			})
		})

		Describe("SUB", func() {
			It("should subtract the operands", func() {
				result, _ := pe.Apply(npu.OpSub, 200, 50)
				Expect(result).To(Equal(uint32(150)))
			})

			It("should wrap around below zero", func() {
				result, _ := pe.Apply(npu.OpSub, 50, 200)
				Expect(result).To(Equal(uint32(0xFFFFFF6A)))
			})
		})

		Describe("MUL", func() {
			It("should multiply the operands", func() {
				result, _ := pe.Apply(npu.OpMul, 10, 20)
				Expect(result).To(Equal(uint32(200)))
			})
		})

		Describe("MAC", func() {
			It("should accumulate across operations", func() {
				result, _ := pe.Apply(npu.OpMac, 2, 3)
				Expect(result).To(Equal(uint32(6)))

				result, _ = pe.Apply(npu.OpMac, 4, 5)
				Expect(result).To(Equal(uint32(26)))

				result, _ = pe.Apply(npu.OpMac, 2, 5)
				Expect(result).To(Equal(uint32(36)))
			})

			It("should not disturb the accumulator from other ops", func() {
				pe.Apply(npu.OpMac, 2, 3)
				pe.Apply(npu.OpAdd, 100, 100)
				pe.Apply(npu.OpMul, 7, 7)

				Expect(pe.Accumulator()).To(Equal(uint32(6)))
			})

			It("should clear the accumulator on reset", func() {
				pe.Apply(npu.OpMac, 10, 10)
				pe.Reset()

				Expect(pe.Accumulator()).To(Equal(uint32(0)))
			})
		})
	})

	Context("Unsupported Opcodes", func() {
		It("should refuse memory opcodes", func() {
			_, valid := pe.Apply(npu.OpLoad, 1, 2)
			Expect(valid).To(BeFalse())

			_, valid = pe.Apply(npu.OpStore, 1, 2)
			Expect(valid).To(BeFalse())
		})

		It("should refuse opcodes outside the instruction set", func() {
			result, valid := pe.Apply(npu.Opcode(0xFF), 9, 9)
			Expect(valid).To(BeFalse())
			Expect(result).To(Equal(uint32(0)))
		})
	})
})

var _ = Describe("Array", func() {
	It("should select the lane by destination modulo lane count", func() {
		a := NewArray(16)

		Expect(a.Select(0).ID()).To(Equal(0))
		Expect(a.Select(15).ID()).To(Equal(15))
		Expect(a.Select(16).ID()).To(Equal(0))
		Expect(a.Select(255).ID()).To(Equal(15))
	})

	It("should keep per-lane accumulators independent", func() {
		a := NewArray(4)

		a.Select(0).Apply(npu.OpMac, 2, 3)
		a.Select(1).Apply(npu.OpMac, 4, 5)

		Expect(a.Lane(0).Accumulator()).To(Equal(uint32(6)))
		Expect(a.Lane(1).Accumulator()).To(Equal(uint32(20)))
		Expect(a.Lane(2).Accumulator()).To(Equal(uint32(0)))
	})

	It("should clear every lane on reset", func() {
		a := NewArray(4)
		for i := 0; i < a.Len(); i++ {
			a.Lane(i).Apply(npu.OpMac, 3, 3)
		}

		a.Reset()

		for i := 0; i < a.Len(); i++ {
			Expect(a.Lane(i).Accumulator()).To(Equal(uint32(0)))
		}
	})
})

var _ = Describe("PipelineState", func() {
	It("should name every stage", func() {
		Expect(stateIdle.Name()).To(Equal("IDLE"))
		Expect(stateDecode.Name()).To(Equal("DECODE"))
		Expect(stateExecute.Name()).To(Equal("EXECUTE"))
		Expect(stateMemAccess.Name()).To(Equal("MEMORY_ACCESS"))
		Expect(stateWriteback.Name()).To(Equal("WRITEBACK"))
	})
})
