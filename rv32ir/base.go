package rv32ir

import "github.com/rv32emu/rv32emu/vm"

func (b *Builder) Beq(rs1, rs2 vm.Reg, bimm uint32) Instruction {
	return Instruction{Op: OpBeq, Rs1: rs1, Rs2: rs2, Imm: bimm}
}
func (b *Builder) Bne(rs1, rs2 vm.Reg, bimm uint32) Instruction {
	return Instruction{Op: OpBne, Rs1: rs1, Rs2: rs2, Imm: bimm}
}
func (b *Builder) Blt(rs1, rs2 vm.Reg, bimm uint32) Instruction {
	return Instruction{Op: OpBlt, Rs1: rs1, Rs2: rs2, Imm: bimm}
}
func (b *Builder) Bge(rs1, rs2 vm.Reg, bimm uint32) Instruction {
	return Instruction{Op: OpBge, Rs1: rs1, Rs2: rs2, Imm: bimm}
}
func (b *Builder) Bltu(rs1, rs2 vm.Reg, bimm uint32) Instruction {
	return Instruction{Op: OpBltu, Rs1: rs1, Rs2: rs2, Imm: bimm}
}
func (b *Builder) Bgeu(rs1, rs2 vm.Reg, bimm uint32) Instruction {
	return Instruction{Op: OpBgeu, Rs1: rs1, Rs2: rs2, Imm: bimm}
}

func (b *Builder) Lb(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpLb, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Lh(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpLh, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Lw(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpLw, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Lbu(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpLbu, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Lhu(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpLhu, Rd: rd, Rs1: rs1, Imm: iimm}
}

func (b *Builder) Addi(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpAddi, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Slti(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpSlti, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Sltiu(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpSltiu, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Xori(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpXori, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Ori(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpOri, Rd: rd, Rs1: rs1, Imm: iimm}
}
func (b *Builder) Andi(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpAndi, Rd: rd, Rs1: rs1, Imm: iimm}
}

func (b *Builder) Jalr(rd, rs1 vm.Reg, iimm uint32) Instruction {
	return Instruction{Op: OpJalr, Rd: rd, Rs1: rs1, Imm: iimm}
}

func (b *Builder) Sb(rs1, rs2 vm.Reg, simm uint32) Instruction {
	return Instruction{Op: OpSb, Rs1: rs1, Rs2: rs2, Imm: simm}
}
func (b *Builder) Sh(rs1, rs2 vm.Reg, simm uint32) Instruction {
	return Instruction{Op: OpSh, Rs1: rs1, Rs2: rs2, Imm: simm}
}
func (b *Builder) Sw(rs1, rs2 vm.Reg, simm uint32) Instruction {
	return Instruction{Op: OpSw, Rs1: rs1, Rs2: rs2, Imm: simm}
}

func (b *Builder) Auipc(rd vm.Reg, uimm uint32) Instruction {
	return Instruction{Op: OpAuipc, Rd: rd, Imm: uimm}
}
func (b *Builder) Lui(rd vm.Reg, uimm uint32) Instruction {
	return Instruction{Op: OpLui, Rd: rd, Imm: uimm}
}

func (b *Builder) Jal(rd vm.Reg, jimm uint32) Instruction {
	return Instruction{Op: OpJal, Rd: rd, Imm: jimm}
}

func (b *Builder) Add(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpAdd, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Sub(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpSub, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Sll(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpSll, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Slt(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpSlt, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Sltu(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpSltu, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Xor(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpXor, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Srl(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpSrl, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Sra(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpSra, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) Or(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpOr, Rd: rd, Rs1: rs1, Rs2: rs2}
}
func (b *Builder) And(rd, rs1, rs2 vm.Reg) Instruction {
	return Instruction{Op: OpAnd, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func (b *Builder) Slli(rd, rs1 vm.Reg, shamt uint32) Instruction {
	return Instruction{Op: OpSlli, Rd: rd, Rs1: rs1, Imm: shamt}
}
func (b *Builder) Srli(rd, rs1 vm.Reg, shamt uint32) Instruction {
	return Instruction{Op: OpSrli, Rd: rd, Rs1: rs1, Imm: shamt}
}
func (b *Builder) Srai(rd, rs1 vm.Reg, shamt uint32) Instruction {
	return Instruction{Op: OpSrai, Rd: rd, Rs1: rs1, Imm: shamt}
}

func (b *Builder) Fence(fm uint32, rd, rs1 vm.Reg) Instruction {
	return Instruction{Op: OpFence, Rd: rd, Rs1: rs1, Fm: fm}
}

func (b *Builder) Ecall() Instruction  { return Instruction{Op: OpEcall} }
func (b *Builder) Ebreak() Instruction { return Instruction{Op: OpEbreak} }
