package vm

// C-extension: every compressed instruction lowers to a call on the
// equivalent base instruction, so this file carries no independent
// arithmetic of its own — only the register/immediate remapping each
// compressed form specifies.

// CAddi4spn lowers to addi rdp, sp, nzuimm.
func (c *CPU) CAddi4spn(rdp Reg, imm uint32) struct{} {
	return c.Addi(rdp, RegSp, imm)
}

// CLw lowers to lw rdp, imm(rs1p).
func (c *CPU) CLw(rdp, rs1p Reg, imm uint32) struct{} {
	return c.Lw(rdp, rs1p, imm)
}

// CSw lowers to sw rs1p, rs2p, imm.
func (c *CPU) CSw(rs1p, rs2p Reg, imm uint32) struct{} {
	return c.Sw(rs1p, rs2p, imm)
}

// CSub lowers to sub rdrs1p, rdrs1p, rs2p.
func (c *CPU) CSub(rdrs1p, rs2p Reg) struct{} {
	return c.Sub(rdrs1p, rdrs1p, rs2p)
}

// CXor lowers to xor rdrs1p, rdrs1p, rs2p.
func (c *CPU) CXor(rdrs1p, rs2p Reg) struct{} {
	return c.Xor(rdrs1p, rdrs1p, rs2p)
}

// COr lowers to or rdrs1p, rdrs1p, rs2p.
func (c *CPU) COr(rdrs1p, rs2p Reg) struct{} {
	return c.Or(rdrs1p, rdrs1p, rs2p)
}

// CAnd lowers to and rdrs1p, rdrs1p, rs2p.
func (c *CPU) CAnd(rdrs1p, rs2p Reg) struct{} {
	return c.And(rdrs1p, rdrs1p, rs2p)
}

// CNop does nothing.
func (c *CPU) CNop(imm uint32) struct{} {
	return struct{}{}
}

// CAddi16sp lowers to addi sp, sp, nzimm.
func (c *CPU) CAddi16sp(imm uint32) struct{} {
	return c.Addi(RegSp, RegSp, imm)
}

// CAndi lowers to andi rdrs1p, rdrs1p, imm.
func (c *CPU) CAndi(rdrs1p Reg, imm uint32) struct{} {
	return c.Andi(rdrs1p, rdrs1p, imm)
}

// CAddi lowers to addi rdrs1n0, rdrs1n0, nzimm.
func (c *CPU) CAddi(rdrs1n0 Reg, imm uint32) struct{} {
	return c.Addi(rdrs1n0, rdrs1n0, imm)
}

// CLi lowers to addi rd, x0, imm.
func (c *CPU) CLi(rd Reg, imm uint32) struct{} {
	return c.Addi(rd, RegZero, imm)
}

// CLui lowers to lui rdn2, nzimm.
func (c *CPU) CLui(rdn2 Reg, imm uint32) struct{} {
	return c.Lui(rdn2, imm)
}

// CJ lowers to jal x0, imm.
func (c *CPU) CJ(imm uint32) struct{} {
	return c.Jal(RegZero, imm)
}

// CBeqz lowers to beq rs1p, x0, imm.
func (c *CPU) CBeqz(rs1p Reg, imm uint32) struct{} {
	return c.Beq(rs1p, RegZero, imm)
}

// CBnez lowers to bne rs1p, x0, imm.
func (c *CPU) CBnez(rs1p Reg, imm uint32) struct{} {
	return c.Bne(rs1p, RegZero, imm)
}

// CJr lowers to jalr x0, 0(rs1n0).
func (c *CPU) CJr(rs1n0 Reg) struct{} {
	return c.Jalr(RegZero, rs1n0, 0)
}

// CJalr lowers to jalr ra, 0(rs1n0).
func (c *CPU) CJalr(rs1n0 Reg) struct{} {
	return c.Jalr(RegRa, rs1n0, 0)
}

// CEbreak lowers to ebreak.
func (c *CPU) CEbreak() struct{} {
	return c.Ebreak()
}

// CMv lowers to add rd, x0, rs2n0.
func (c *CPU) CMv(rd, rs2n0 Reg) struct{} {
	return c.Add(rd, RegZero, rs2n0)
}

// CAdd lowers to add rdrs1, rdrs1, rs2n0.
func (c *CPU) CAdd(rdrs1, rs2n0 Reg) struct{} {
	return c.Add(rdrs1, rdrs1, rs2n0)
}

// CLwsp lowers to lw rdn0, imm(sp).
func (c *CPU) CLwsp(rdn0 Reg, imm uint32) struct{} {
	return c.Lw(rdn0, RegSp, imm)
}

// CSwsp lowers to sw sp, rs2, imm.
func (c *CPU) CSwsp(rs2 Reg, imm uint32) struct{} {
	return c.Sw(RegSp, rs2, imm)
}

// CJal lowers to jal ra, imm.
func (c *CPU) CJal(imm uint32) struct{} {
	return c.Jal(RegRa, imm)
}

// CSrli lowers to srli rdrs1p, rdrs1p, imm.
func (c *CPU) CSrli(rdrs1p Reg, imm uint32) struct{} {
	return c.Srli(rdrs1p, rdrs1p, imm)
}

// CSrai lowers to srai rdrs1p, rdrs1p, imm.
func (c *CPU) CSrai(rdrs1p Reg, imm uint32) struct{} {
	return c.Srai(rdrs1p, rdrs1p, imm)
}

// CSlli lowers to slli rdrs1n0, rdrs1n0, imm.
func (c *CPU) CSlli(rdrs1n0 Reg, imm uint32) struct{} {
	return c.Slli(rdrs1n0, rdrs1n0, imm)
}
