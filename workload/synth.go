package workload

import (
	"math/rand"

	"github.com/npulab/npusim/npu"
)

// A Generator produces the i-th instruction of a synthetic stream.
type Generator func(i int) npu.Instruction

// Synthesize builds a workload of n generated instructions.
func Synthesize(name string, n int, gen Generator) *Workload {
	w := &Workload{
		Name:         name,
		Instructions: make([]npu.Instruction, n),
	}
	for i := range w.Instructions {
		w.Instructions[i] = gen(i)
	}

	return w
}

// MakeArithGen returns a generator of pseudo-random arithmetic
// instructions. The same seed always yields the same stream.
func MakeArithGen(seed int64) Generator {
	r := rand.New(rand.NewSource(seed))
	ops := []npu.Opcode{npu.OpAdd, npu.OpSub, npu.OpMul, npu.OpMac}

	return func(int) npu.Instruction {
		return npu.Instruction{
			Opcode: ops[r.Intn(len(ops))],
			Src1:   uint8(r.Intn(256)),
			Src2:   uint8(r.Intn(256)),
			Dst:    uint8(r.Intn(256)),
		}
	}
}

// MakeMixedGen returns a generator that also emits loads, stores, and the
// occasional word outside the instruction set, exercising every pipeline
// path.
func MakeMixedGen(seed int64) Generator {
	r := rand.New(rand.NewSource(seed))
	ops := []npu.Opcode{
		npu.OpAdd, npu.OpSub, npu.OpMul, npu.OpMac,
		npu.OpLoad, npu.OpStore,
		npu.Opcode(0x00), npu.Opcode(0xFF),
	}

	return func(int) npu.Instruction {
		return npu.Instruction{
			Opcode: ops[r.Intn(len(ops))],
			Src1:   uint8(r.Intn(256)),
			Src2:   uint8(r.Intn(256)),
			Dst:    uint8(r.Intn(256)),
		}
	}
}
