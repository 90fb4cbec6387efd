package disasm

import (
	"fmt"

	"github.com/rv32emu/rv32emu/vm"
)

// Illegal renders an undecodable word as a raw hex dump, matching the
// reference disassembler's trap-format fallback.
func (d *Disassembler) Illegal(word uint32) string {
	return fmt.Sprintf("ILLEGAL\t0x%08x", word)
}

func (d *Disassembler) Beq(rs1, rs2 vm.Reg, bimm uint32) string  { return branch("BEQ", rs1, rs2, bimm) }
func (d *Disassembler) Bne(rs1, rs2 vm.Reg, bimm uint32) string  { return branch("BNE", rs1, rs2, bimm) }
func (d *Disassembler) Blt(rs1, rs2 vm.Reg, bimm uint32) string  { return branch("BLT", rs1, rs2, bimm) }
func (d *Disassembler) Bge(rs1, rs2 vm.Reg, bimm uint32) string  { return branch("BGE", rs1, rs2, bimm) }
func (d *Disassembler) Bltu(rs1, rs2 vm.Reg, bimm uint32) string { return branch("BLTU", rs1, rs2, bimm) }
func (d *Disassembler) Bgeu(rs1, rs2 vm.Reg, bimm uint32) string { return branch("BGEU", rs1, rs2, bimm) }

func branch(mnemonic string, rs1, rs2 vm.Reg, bimm uint32) string {
	return fmt.Sprintf("%s\t%s, %s, %d", mnemonic, rs1, rs2, int32(bimm))
}

func (d *Disassembler) Lb(rd, rs1 vm.Reg, iimm uint32) string  { return load("LB", rd, rs1, iimm) }
func (d *Disassembler) Lh(rd, rs1 vm.Reg, iimm uint32) string  { return load("LH", rd, rs1, iimm) }
func (d *Disassembler) Lw(rd, rs1 vm.Reg, iimm uint32) string  { return load("LW", rd, rs1, iimm) }
func (d *Disassembler) Lbu(rd, rs1 vm.Reg, iimm uint32) string { return load("LBU", rd, rs1, iimm) }
func (d *Disassembler) Lhu(rd, rs1 vm.Reg, iimm uint32) string { return load("LHU", rd, rs1, iimm) }

func load(mnemonic string, rd, rs1 vm.Reg, iimm uint32) string {
	return fmt.Sprintf("%s\t%s, %d(%s)", mnemonic, rd, int32(iimm), rs1)
}

func (d *Disassembler) Addi(rd, rs1 vm.Reg, iimm uint32) string  { return opImm("ADDI", rd, rs1, iimm) }
func (d *Disassembler) Slti(rd, rs1 vm.Reg, iimm uint32) string  { return opImm("SLTI", rd, rs1, iimm) }
func (d *Disassembler) Sltiu(rd, rs1 vm.Reg, iimm uint32) string { return opImm("SLTIU", rd, rs1, iimm) }
func (d *Disassembler) Xori(rd, rs1 vm.Reg, iimm uint32) string  { return opImm("XORI", rd, rs1, iimm) }
func (d *Disassembler) Ori(rd, rs1 vm.Reg, iimm uint32) string   { return opImm("ORI", rd, rs1, iimm) }
func (d *Disassembler) Andi(rd, rs1 vm.Reg, iimm uint32) string  { return opImm("ANDI", rd, rs1, iimm) }

func opImm(mnemonic string, rd, rs1 vm.Reg, iimm uint32) string {
	return fmt.Sprintf("%s\t%s, %s, %d", mnemonic, rd, rs1, int32(iimm))
}

func (d *Disassembler) Jalr(rd, rs1 vm.Reg, iimm uint32) string {
	return fmt.Sprintf("JALR\t%s, %s, %d", rd, rs1, int32(iimm))
}

func (d *Disassembler) Sb(rs1, rs2 vm.Reg, simm uint32) string { return store("SB", rs1, rs2, simm) }
func (d *Disassembler) Sh(rs1, rs2 vm.Reg, simm uint32) string { return store("SH", rs1, rs2, simm) }
func (d *Disassembler) Sw(rs1, rs2 vm.Reg, simm uint32) string { return store("SW", rs1, rs2, simm) }

func store(mnemonic string, rs1, rs2 vm.Reg, simm uint32) string {
	return fmt.Sprintf("%s\t%s, %d(%s)", mnemonic, rs2, int32(simm), rs1)
}

func (d *Disassembler) Auipc(rd vm.Reg, uimm uint32) string {
	return fmt.Sprintf("AUIPC\t%s, %d", rd, int32(uimm)>>12)
}

func (d *Disassembler) Lui(rd vm.Reg, uimm uint32) string {
	return fmt.Sprintf("LUI\t%s, %d", rd, int32(uimm)>>12)
}

func (d *Disassembler) Jal(rd vm.Reg, jimm uint32) string {
	return fmt.Sprintf("JAL\t%s, %d", rd, int32(jimm))
}

func (d *Disassembler) Add(rd, rs1, rs2 vm.Reg) string  { return op("ADD", rd, rs1, rs2) }
func (d *Disassembler) Sub(rd, rs1, rs2 vm.Reg) string  { return op("SUB", rd, rs1, rs2) }
func (d *Disassembler) Sll(rd, rs1, rs2 vm.Reg) string  { return op("SLL", rd, rs1, rs2) }
func (d *Disassembler) Slt(rd, rs1, rs2 vm.Reg) string  { return op("SLT", rd, rs1, rs2) }
func (d *Disassembler) Sltu(rd, rs1, rs2 vm.Reg) string { return op("SLTU", rd, rs1, rs2) }
func (d *Disassembler) Xor(rd, rs1, rs2 vm.Reg) string  { return op("XOR", rd, rs1, rs2) }
func (d *Disassembler) Srl(rd, rs1, rs2 vm.Reg) string  { return op("SRL", rd, rs1, rs2) }
func (d *Disassembler) Sra(rd, rs1, rs2 vm.Reg) string  { return op("SRA", rd, rs1, rs2) }
func (d *Disassembler) Or(rd, rs1, rs2 vm.Reg) string   { return op("OR", rd, rs1, rs2) }
func (d *Disassembler) And(rd, rs1, rs2 vm.Reg) string  { return op("AND", rd, rs1, rs2) }

func op(mnemonic string, rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("%s\t%s, %s, %s", mnemonic, rd, rs1, rs2)
}

func (d *Disassembler) Slli(rd, rs1 vm.Reg, shamt uint32) string { return shift("SLLI", rd, rs1, shamt) }
func (d *Disassembler) Srli(rd, rs1 vm.Reg, shamt uint32) string { return shift("SRLI", rd, rs1, shamt) }
func (d *Disassembler) Srai(rd, rs1 vm.Reg, shamt uint32) string { return shift("SRAI", rd, rs1, shamt) }

func shift(mnemonic string, rd, rs1 vm.Reg, shamt uint32) string {
	return fmt.Sprintf("%s\t%s, %s, %d", mnemonic, rd, rs1, shamt)
}

// Fence ignores fm/rd/rs1, matching the reference disassembler's
// decision to skip FENCE.TSO's predecessor/successor detail as optional.
func (d *Disassembler) Fence(fm uint32, rd, rs1 vm.Reg) string {
	return "FENCE\t"
}

func (d *Disassembler) Ecall() string  { return "ECALL" }
func (d *Disassembler) Ebreak() string { return "EBREAK" }
