package vm_test

import "github.com/rv32emu/rv32emu/vm"

// Hand-assembled RV32IMFC encoders for test images. There is no
// assembler in this repo (the simulator only ever consumes already
// encoded words), so tests build instruction words directly from the
// bit layouts vm/bits.go decodes.

const (
	opLoad   = 0x03
	opOpImm  = 0x13
	opAuipc  = 0x17
	opStore  = 0x23
	opOp     = 0x33
	opLui    = 0x37
	opBranch = 0x63
	opJalr   = 0x67
	opJal    = 0x6f
	opSystem = 0x73
)

func rType(opcode, funct3, funct7 uint32, rd, rs1, rs2 vm.Reg) uint32 {
	return funct7<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | funct3<<12 | uint32(rd)<<7 | opcode
}

func iType(opcode, funct3 uint32, rd, rs1 vm.Reg, imm int32) uint32 {
	return (uint32(imm)&0xfff)<<20 | uint32(rs1)<<15 | funct3<<12 | uint32(rd)<<7 | opcode
}

func sType(opcode, funct3 uint32, rs1, rs2 vm.Reg, imm int32) uint32 {
	u := uint32(imm)
	return (u>>5&0x7f)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | funct3<<12 | (u&0x1f)<<7 | opcode
}

func bType(opcode, funct3 uint32, rs1, rs2 vm.Reg, imm int32) uint32 {
	u := uint32(imm)
	return (u>>12&0x1)<<31 | (u>>5&0x3f)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 |
		funct3<<12 | (u>>1&0xf)<<8 | (u>>11&0x1)<<7 | opcode
}

func uType(opcode uint32, rd vm.Reg, imm uint32) uint32 {
	return (imm & 0xfffff000) | uint32(rd)<<7 | opcode
}

func jType(opcode uint32, rd vm.Reg, imm int32) uint32 {
	u := uint32(imm)
	return (u>>20&0x1)<<31 | (u>>1&0x3ff)<<21 | (u>>11&0x1)<<20 | (u>>12&0xff)<<12 | uint32(rd)<<7 | opcode
}

func addi(rd, rs1 vm.Reg, imm int32) uint32 { return iType(opOpImm, 0b000, rd, rs1, imm) }
func lb(rd, rs1 vm.Reg, imm int32) uint32   { return iType(opLoad, 0b000, rd, rs1, imm) }
func jalr(rd, rs1 vm.Reg, imm int32) uint32 { return iType(opJalr, 0b000, rd, rs1, imm) }

func sb(rs1, rs2 vm.Reg, imm int32) uint32 { return sType(opStore, 0b000, rs1, rs2, imm) }

func beq(rs1, rs2 vm.Reg, imm int32) uint32 { return bType(opBranch, 0b000, rs1, rs2, imm) }

func lui(rd vm.Reg, imm uint32) uint32   { return uType(opLui, rd, imm) }
func auipc(rd vm.Reg, imm uint32) uint32 { return uType(opAuipc, rd, imm) }

func jal(rd vm.Reg, imm int32) uint32 { return jType(opJal, rd, imm) }

func add(rd, rs1, rs2 vm.Reg) uint32  { return rType(opOp, 0b000, 0b0000000, rd, rs1, rs2) }
func div(rd, rs1, rs2 vm.Reg) uint32  { return rType(opOp, 0b100, 0b0000001, rd, rs1, rs2) }
func divu(rd, rs1, rs2 vm.Reg) uint32 { return rType(opOp, 0b101, 0b0000001, rd, rs1, rs2) }
func remu(rd, rs1, rs2 vm.Reg) uint32 { return rType(opOp, 0b111, 0b0000001, rd, rs1, rs2) }
func sll(rd, rs1, rs2 vm.Reg) uint32  { return rType(opOp, 0b001, 0b0000000, rd, rs1, rs2) }

const ecall = uint32(opSystem)         // rd=0, funct3=0, rs1=0, funct12=0
const ebreak = uint32(1<<20 | opSystem) // funct12=1

// assembleWords lays out words as consecutive little-endian 32-bit
// instructions starting at offset 0.
func assembleWords(words ...uint32) []byte {
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = append(out, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return out
}

// newTestVM builds a VM with a silent console, ready to load a test
// image at the default RAM base.
func newTestVM() *vm.VM {
	return vm.NewVM(func(byte) {})
}

// runToTrap loads image at vm.RAMStart and steps until the CPU traps
// or a step error occurs, returning after at most maxSteps iterations
// to bound runaway test images.
func runToTrap(v *vm.VM, image []byte, maxSteps int) {
	if err := v.LoadProgram(image, vm.RAMStart); err != nil {
		panic(err)
	}
	v.SetEntryPoint(vm.RAMStart)
	for i := 0; i < maxSteps; i++ {
		if err := v.Step(); err != nil {
			return
		}
		if v.CPU.Trapped() {
			return
		}
	}
}
