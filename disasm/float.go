package disasm

import (
	"fmt"

	"github.com/rv32emu/rv32emu/vm"
)

func (d *Disassembler) Flw(rd, rs1 vm.Reg, iimm uint32) string {
	return fmt.Sprintf("FLW\t%s, %d(%s)", fr(rd), int32(iimm), rs1)
}

func (d *Disassembler) Fsw(rs1, rs2 vm.Reg, simm uint32) string {
	return fmt.Sprintf("FSW\t%s, %d(%s)", fr(rs2), int32(simm), rs1)
}

func (d *Disassembler) FsqrtS(rd, rs1 vm.Reg, m uint32) string {
	return fmt.Sprintf("FSQRT.S\t%s, %s, %s", fr(rd), fr(rs1), rm(m))
}

func (d *Disassembler) FcvtWS(rd, rs1 vm.Reg, m uint32) string {
	return fmt.Sprintf("FCVT.W.S\t%s, %s, %s", rd, fr(rs1), rm(m))
}

func (d *Disassembler) FcvtWuS(rd, rs1 vm.Reg, m uint32) string {
	return fmt.Sprintf("FCVT.WU.S\t%s, %s, %s", rd, fr(rs1), rm(m))
}

func (d *Disassembler) FcvtSW(rd, rs1 vm.Reg, m uint32) string {
	return fmt.Sprintf("FCVT.S.W\t%s, %s, %s", fr(rd), rs1, rm(m))
}

func (d *Disassembler) FcvtSWu(rd, rs1 vm.Reg, m uint32) string {
	return fmt.Sprintf("FCVT.S.WU\t%s, %s, %s", fr(rd), rs1, rm(m))
}

func (d *Disassembler) FaddS(rd, rs1, rs2 vm.Reg, m uint32) string {
	return fmt.Sprintf("FADD.S\t%s, %s, %s, %s", fr(rd), fr(rs1), fr(rs2), rm(m))
}

func (d *Disassembler) FsubS(rd, rs1, rs2 vm.Reg, m uint32) string {
	return fmt.Sprintf("FSUB.S\t%s, %s, %s, %s", fr(rd), fr(rs1), fr(rs2), rm(m))
}

func (d *Disassembler) FmulS(rd, rs1, rs2 vm.Reg, m uint32) string {
	return fmt.Sprintf("FMUL.S\t%s, %s, %s, %s", fr(rd), fr(rs1), fr(rs2), rm(m))
}

func (d *Disassembler) FdivS(rd, rs1, rs2 vm.Reg, m uint32) string {
	return fmt.Sprintf("FDIV.S\t%s, %s, %s, %s", fr(rd), fr(rs1), fr(rs2), rm(m))
}

func (d *Disassembler) FmaddS(rd, rs1, rs2, rs3 vm.Reg, m uint32) string {
	return fmt.Sprintf("FMADD.S\t%s, %s, %s, %s, %s", fr(rd), fr(rs1), fr(rs2), fr(rs3), rm(m))
}

func (d *Disassembler) FmsubS(rd, rs1, rs2, rs3 vm.Reg, m uint32) string {
	return fmt.Sprintf("FMSUB.S\t%s, %s, %s, %s, %s", fr(rd), fr(rs1), fr(rs2), fr(rs3), rm(m))
}

func (d *Disassembler) FnmsubS(rd, rs1, rs2, rs3 vm.Reg, m uint32) string {
	return fmt.Sprintf("FNMSUB.S\t%s, %s, %s, %s, %s", fr(rd), fr(rs1), fr(rs2), fr(rs3), rm(m))
}

func (d *Disassembler) FnmaddS(rd, rs1, rs2, rs3 vm.Reg, m uint32) string {
	return fmt.Sprintf("FNMADD.S\t%s, %s, %s, %s, %s", fr(rd), fr(rs1), fr(rs2), fr(rs3), rm(m))
}

func (d *Disassembler) FmvXW(rd, rs1 vm.Reg) string {
	return fmt.Sprintf("FMV.X.W\t%s, %s", rd, fr(rs1))
}

func (d *Disassembler) FmvWX(rd, rs1 vm.Reg) string {
	return fmt.Sprintf("FMV.W.X\t%s, %s", fr(rd), rs1)
}

func (d *Disassembler) FclassS(rd, rs1 vm.Reg) string {
	return fmt.Sprintf("FCLASS.S\t%s, %s", rd, fr(rs1))
}

func (d *Disassembler) FsgnjS(rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("FSGNJ.S\t%s, %s, %s", fr(rd), fr(rs1), fr(rs2))
}

func (d *Disassembler) FminS(rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("FMIN.S\t%s, %s, %s", fr(rd), fr(rs1), fr(rs2))
}

func (d *Disassembler) FleS(rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("FLE.S\t%s, %s, %s", rd, fr(rs1), fr(rs2))
}

func (d *Disassembler) FsgnjnS(rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("FSGNJN.S\t%s, %s, %s", fr(rd), fr(rs1), fr(rs2))
}

func (d *Disassembler) FmaxS(rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("FMAX.S\t%s, %s, %s", fr(rd), fr(rs1), fr(rs2))
}

func (d *Disassembler) FltS(rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("FLT.S\t%s, %s, %s", rd, fr(rs1), fr(rs2))
}

func (d *Disassembler) FsgnjxS(rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("FSGNJX.S\t%s, %s, %s", fr(rd), fr(rs1), fr(rs2))
}

func (d *Disassembler) FeqS(rd, rs1, rs2 vm.Reg) string {
	return fmt.Sprintf("FEQ.S\t%s, %s, %s", rd, fr(rs1), fr(rs2))
}
