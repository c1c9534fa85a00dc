// Package npu defines the commonly used data structures for the NPU core.
package npu

// Opcode identifies the operation carried by an instruction word.
type Opcode uint8

const (
	OpAdd   Opcode = 0x01
	OpSub   Opcode = 0x02
	OpMul   Opcode = 0x03
	OpMac   Opcode = 0x04
	OpLoad  Opcode = 0x10
	OpStore Opcode = 0x11
)

// Name returns the mnemonic of the opcode.
func (o Opcode) Name() string {
	switch o {
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpMul:
		return "MUL"
	case OpMac:
		return "MAC"
	case OpLoad:
		return "LOAD"
	case OpStore:
		return "STORE"
	default:
		return "INVALID"
	}
}

// IsArithmetic reports whether the opcode executes on a processing element.
func (o Opcode) IsArithmetic() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpMac:
		return true
	default:
		return false
	}
}

// IsMemory reports whether the opcode needs a memory access.
func (o Opcode) IsMemory() bool {
	return o == OpLoad || o == OpStore
}

// IsValid reports whether the opcode belongs to the closed instruction set.
func (o Opcode) IsValid() bool {
	return o.IsArithmetic() || o.IsMemory()
}

// An Instruction is one operation for the pipeline. It packs into a single
// 32-bit word with the opcode in the highest byte.
type Instruction struct {
	Opcode Opcode
	Src1   uint8
	Src2   uint8
	Dst    uint8
}

// Word packs the instruction into its 32-bit wire form.
func (i Instruction) Word() uint32 {
	return uint32(i.Opcode)<<24 | uint32(i.Src1)<<16 | uint32(i.Src2)<<8 |
		uint32(i.Dst)
}

// DecodeInstruction unpacks a 32-bit instruction word.
func DecodeInstruction(word uint32) Instruction {
	return Instruction{
		Opcode: Opcode(word >> 24),
		Src1:   uint8(word >> 16),
		Src2:   uint8(word >> 8),
		Dst:    uint8(word),
	}
}

// Status bits exposed to the host through the status register.
const (
	StatusReady uint32 = 0x1
	StatusBusy  uint32 = 0x2
	StatusError uint32 = 0x4
	StatusDone  uint32 = 0x8
)

// LoadSentinel is returned by a LOAD that addresses outside the memory
// range. It is a defined result, not an error.
const LoadSentinel uint32 = 0xDEADBEEF

// Register offsets used by the host driver to address the core. They are
// documented for interface fidelity; the simulator does not decode them.
const (
	RegControl   = 0x00
	RegStatus    = 0x04
	RegDataAddr  = 0x08
	RegDataSize  = 0x0C
	RegInterrupt = 0x10
)

// PCI identity of the device the driver binds to.
const (
	PCIVendorID = 0x10EE
	PCIDeviceID = 0x7024
)
