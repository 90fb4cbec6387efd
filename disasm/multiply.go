package disasm

import "github.com/rv32emu/rv32emu/vm"

func (d *Disassembler) Mul(rd, rs1, rs2 vm.Reg) string    { return op("MUL", rd, rs1, rs2) }
func (d *Disassembler) Mulh(rd, rs1, rs2 vm.Reg) string   { return op("MULH", rd, rs1, rs2) }
func (d *Disassembler) Mulhsu(rd, rs1, rs2 vm.Reg) string { return op("MULHSU", rd, rs1, rs2) }
func (d *Disassembler) Mulhu(rd, rs1, rs2 vm.Reg) string  { return op("MULHU", rd, rs1, rs2) }
func (d *Disassembler) Div(rd, rs1, rs2 vm.Reg) string    { return op("DIV", rd, rs1, rs2) }
func (d *Disassembler) Divu(rd, rs1, rs2 vm.Reg) string   { return op("DIVU", rd, rs1, rs2) }
func (d *Disassembler) Rem(rd, rs1, rs2 vm.Reg) string    { return op("REM", rd, rs1, rs2) }
func (d *Disassembler) Remu(rd, rs1, rs2 vm.Reg) string   { return op("REMU", rd, rs1, rs2) }
