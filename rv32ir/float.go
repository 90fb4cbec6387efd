package rv32ir

import "github.com/rv32emu/rv32emu/vm"

func (b *Builder) Flw(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpFlw, Rd: rd, Rs1: rs1, Imm: iimm}
}

func (b *Builder) Fsw(rs1, rs2 vm.Reg, simm uint32) Instruction {
	return Instruction{Op: OpFsw, Rs1: rs1, Rs2: rs2, Imm: simm}
}

func (b *Builder) FsqrtS(rd, rs1 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFsqrtS, Rd: rd, Rs1: rs1, Rm: rm}
}

func (b *Builder) FcvtWS(rd, rs1 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFcvtWS, Rd: rd, Rs1: rs1, Rm: rm}
}

func (b *Builder) FcvtWuS(rd, rs1 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFcvtWuS, Rd: rd, Rs1: rs1, Rm: rm}
}

func (b *Builder) FcvtSW(rd, rs1 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFcvtSW, Rd: rd, Rs1: rs1, Rm: rm}
}

func (b *Builder) FcvtSWu(rd, rs1 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFcvtSWu, Rd: rd, Rs1: rs1, Rm: rm}
}

func (b *Builder) FaddS(rd, rs1, rs2 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFaddS, Rd: rd, Rs1: rs1, Rs2: rs2, Rm: rm}
}

func (b *Builder) FsubS(rd, rs1, rs2 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFsubS, Rd: rd, Rs1: rs1, Rs2: rs2, Rm: rm}
}

func (b *Builder) FmulS(rd, rs1, rs2 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFmulS, Rd: rd, Rs1: rs1, Rs2: rs2, Rm: rm}
}

func (b *Builder) FdivS(rd, rs1, rs2 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFdivS, Rd: rd, Rs1: rs1, Rs2: rs2, Rm: rm}
}

func (b *Builder) FmaddS(rd, rs1, rs2, rs3 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFmaddS, Rd: rd, Rs1: rs1, Rs2: rs2, Rs3: rs3, Rm: rm}
}

func (b *Builder) FmsubS(rd, rs1, rs2, rs3 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFmsubS, Rd: rd, Rs1: rs1, Rs2: rs2, Rs3: rs3, Rm: rm}
}

func (b *Builder) FnmsubS(rd, rs1, rs2, rs3 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFnmsubS, Rd: rd, Rs1: rs1, Rs2: rs2, Rs3: rs3, Rm: rm}
}

func (b *Builder) FnmaddS(rd, rs1, rs2, rs3 vm.Reg, rm uint32) Instruction {
	return Instruction{Op: OpFnmaddS, Rd: rd, Rs1: rs1, Rs2: rs2, Rs3: rs3, Rm: rm}
}

func (b *Builder) FmvXW(rd, rs1 vm.Reg) Instruction {
	return Instruction{Op: OpFmvXW, Rd: rd, Rs1: rs1}
}

func (b *Builder) FmvWX(rd, rs1 vm.Reg) Instruction {
	return Instruction{Op: OpFmvWX, Rd: rd, Rs1: rs1}
}

func (b *Builder) FclassS(rd, rs1 vm.Reg) Instruction {
	return Instruction{Op: OpFclassS, Rd: rd, Rs1: rs1}
}

func (b *Builder) FsgnjS(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpFsgnjS, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func (b *Builder) FminS(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpFminS, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func (b *Builder) FleS(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpFleS, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func (b *Builder) FsgnjnS(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpFsgnjnS, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func (b *Builder) FmaxS(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpFmaxS, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func (b *Builder) FltS(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpFltS, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func (b *Builder) FsgnjxS(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpFsgnjxS, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func (b *Builder) FeqS(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpFeqS, Rd: rd, Rs1: rs1, Rs2: rs2}
}
