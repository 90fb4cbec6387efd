package rv32ir

import "github.com/rv32emu/rv32emu/vm"

func (b *Builder) Mul(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpMul, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Mulh(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpMulh, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Mulhsu(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpMulhsu, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Mulhu(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpMulhu, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Div(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpDiv, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Divu(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpDivu, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Rem(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpRem, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Remu(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpRemu, Rd: rd, Rs1: rs1, Rs2: rs2}
}
