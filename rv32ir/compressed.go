package rv32ir

import "github.com/rv32emu/rv32emu/vm"

// Compressed instructions get their own Op tag rather than being
// folded into the base instruction they lower to, so a consumer that
// cares about code density or original encoding (the cross-referencer's
// "which instructions in this image are 16-bit" question) can still
// tell. The register-lowering machinery that maps these to base
// execution lives in the CPU consumer, not here.

func (b *Builder) CAddi4spn(rdp vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCAddi4spn, Rd: rdp, Rs1: vm.RegSp, Imm: imm}
}

func (b *Builder) CLw(rdp, rs1p vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCLw, Rd: rdp, Rs1: rs1p, Imm: imm}
}

func (b *Builder) CSw(rs1p, rs2p vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCSw, Rs1: rs1p, Rs2: rs2p, Imm: imm}
}

func (b *Builder) CSub(rdrs1p, rs2p vm.Reg) Instruction {
	return Instruction{Op: OpCSub, Rd: rdrs1p, Rs1: rdrs1p, Rs2: rs2p}
}

func (b *Builder) CXor(rdrs1p, rs2p vm.Reg) Instruction {
	return Instruction{Op: OpCXor, Rd: rdrs1p, Rs1: rdrs1p, Rs2: rs2p}
}

func (b *Builder) COr(rdrs1p, rs2p vm.Reg) Instruction {
	return Instruction{Op: OpCOr, Rd: rdrs1p, Rs1: rdrs1p, Rs2: rs2p}
}

func (b *Builder) CAnd(rdrs1p, rs2p vm.Reg) Instruction {
	return Instruction{Op: OpCAnd, Rd: rdrs1p, Rs1: rdrs1p, Rs2: rs2p}
}

func (b *Builder) CNop(imm uint32) Instruction {
	return Instruction{Op: OpCNop, Imm: imm}
}

func (b *Builder) CAddi16sp(imm uint32) Instruction {
	return Instruction{Op: OpCAddi16sp, Rd: vm.RegSp, Rs1: vm.RegSp, Imm: imm}
}

func (b *Builder) CAndi(rdrs1p vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCAndi, Rd: rdrs1p, Rs1: rdrs1p, Imm: imm}
}

func (b *Builder) CAddi(rdrs1n0 vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCAddi, Rd: rdrs1n0, Rs1: rdrs1n0, Imm: imm}
}

func (b *Builder) CLi(rd vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCLi, Rd: rd, Imm: imm}
}

func (b *Builder) CLui(rdn2 vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCLui, Rd: rdn2, Imm: imm}
}

func (b *Builder) CJ(imm uint32) Instruction {
	return Instruction{Op: OpCJ, Imm: imm}
}

func (b *Builder) CBeqz(rs1p vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCBeqz, Rs1: rs1p, Imm: imm}
}

func (b *Builder) CBnez(rs1p vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCBnez, Rs1: rs1p, Imm: imm}
}

func (b *Builder) CJr(rs1n0 vm.Reg) Instruction {
	return Instruction{Op: OpCJr, Rs1: rs1n0}
}

func (b *Builder) CJalr(rs1n0 vm.Reg) Instruction {
	return Instruction{Op: OpCJalr, Rd: vm.RegRa, Rs1: rs1n0}
}

func (b *Builder) CEbreak() Instruction {
	return Instruction{Op: OpCEbreak}
}

func (b *Builder) CMv(rd, rs2n0 vm.Reg) Instruction {
	return Instruction{Op: OpCMv, Rd: rd, Rs2: rs2n0}
}

func (b *Builder) CAdd(rdrs1, rs2n0 vm.Reg) Instruction {
	return Instruction{Op: OpCAdd, Rd: rdrs1, Rs1: rdrs1, Rs2: rs2n0}
}

func (b *Builder) CLwsp(rdn0 vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCLwsp, Rd: rdn0, Rs1: vm.RegSp, Imm: imm}
}

func (b *Builder) CSwsp(rs2 vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCSwsp, Rs1: vm.RegSp, Rs2: rs2, Imm: imm}
}

func (b *Builder) CJal(imm uint32) Instruction {
	return Instruction{Op: OpCJal, Rd: vm.RegRa, Imm: imm}
}

func (b *Builder) CSrli(rdrs1p vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCSrli, Rd: rdrs1p, Rs1: rdrs1p, Imm: imm}
}

func (b *Builder) CSrai(rdrs1p vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCSrai, Rd: rdrs1p, Rs1: rdrs1p, Imm: imm}
}

func (b *Builder) CSlli(rdrs1n0 vm.Reg, imm uint32) Instruction {
	return Instruction{Op: OpCSlli, Rd: rdrs1n0, Rs1: rdrs1n0, Imm: imm}
}
