package disasm

import (
	"fmt"

	"github.com/rv32emu/rv32emu/vm"
)

// Compressed instructions keep their "C." mnemonic in the rendered
// output rather than the base instruction they lower to, since that is
// what a reader expects from a RVC disassembly; the lowering to base
// semantics happens on the execute consumer, not here.

func (d *Disassembler) CAddi4spn(rdp vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.ADDI4SPN\t%s, %d", rdp, imm)
}

func (d *Disassembler) CLw(rdp, rs1p vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.LW\t%s, %d(%s)", rdp, imm, rs1p)
}

func (d *Disassembler) CSw(rs1p, rs2p vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.SW\t%s, %d(%s)", rs2p, imm, rs1p)
}

func (d *Disassembler) CSub(rdrs1p, rs2p vm.Reg) string {
	return fmt.Sprintf("C.SUB\t%s, %s", rdrs1p, rs2p)
}

func (d *Disassembler) CXor(rdrs1p, rs2p vm.Reg) string {
	return fmt.Sprintf("C.XOR\t%s, %s", rdrs1p, rs2p)
}

func (d *Disassembler) COr(rdrs1p, rs2p vm.Reg) string {
	return fmt.Sprintf("C.OR\t%s, %s", rdrs1p, rs2p)
}

func (d *Disassembler) CAnd(rdrs1p, rs2p vm.Reg) string {
	return fmt.Sprintf("C.AND\t%s, %s", rdrs1p, rs2p)
}

func (d *Disassembler) CNop(imm uint32) string {
	return "C.NOP"
}

func (d *Disassembler) CAddi16sp(imm uint32) string {
	return fmt.Sprintf("C.ADDI16SP\tsp, %d", int32(imm))
}

func (d *Disassembler) CAndi(rdrs1p vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.ANDI\t%s, %d", rdrs1p, int32(imm))
}

func (d *Disassembler) CAddi(rdrs1n0 vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.ADDI\t%s, %d", rdrs1n0, int32(imm))
}

func (d *Disassembler) CLi(rd vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.LI\t%s, %d", rd, int32(imm))
}

func (d *Disassembler) CLui(rdn2 vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.LUI\t%s, %d", rdn2, int32(imm)>>12)
}

func (d *Disassembler) CJ(imm uint32) string {
	return fmt.Sprintf("C.J\t%d", int32(imm))
}

func (d *Disassembler) CBeqz(rs1p vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.BEQZ\t%s, %d", rs1p, int32(imm))
}

func (d *Disassembler) CBnez(rs1p vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.BNEZ\t%s, %d", rs1p, int32(imm))
}

func (d *Disassembler) CJr(rs1n0 vm.Reg) string {
	return fmt.Sprintf("C.JR\t%s", rs1n0)
}

func (d *Disassembler) CJalr(rs1n0 vm.Reg) string {
	return fmt.Sprintf("C.JALR\t%s", rs1n0)
}

func (d *Disassembler) CEbreak() string {
	return "C.EBREAK"
}

func (d *Disassembler) CMv(rd, rs2n0 vm.Reg) string {
	return fmt.Sprintf("C.MV\t%s, %s", rd, rs2n0)
}

func (d *Disassembler) CAdd(rdrs1, rs2n0 vm.Reg) string {
	return fmt.Sprintf("C.ADD\t%s, %s", rdrs1, rs2n0)
}

func (d *Disassembler) CLwsp(rdn0 vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.LWSP\t%s, %d(sp)", rdn0, imm)
}

func (d *Disassembler) CSwsp(rs2 vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.SWSP\t%s, %d(sp)", rs2, imm)
}

func (d *Disassembler) CJal(imm uint32) string {
	return fmt.Sprintf("C.JAL\t%d", int32(imm))
}

func (d *Disassembler) CSrli(rdrs1p vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.SRLI\t%s, %d", rdrs1p, imm)
}

func (d *Disassembler) CSrai(rdrs1p vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.SRAI\t%s, %d", rdrs1p, imm)
}

func (d *Disassembler) CSlli(rdrs1n0 vm.Reg, imm uint32) string {
	return fmt.Sprintf("C.SLLI\t%s, %d", rdrs1n0, imm)
}
