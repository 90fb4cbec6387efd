package vm

// M-extension: integer multiply and divide.

// Mul computes rd <- rs1 * rs2 (low 32 bits).
func (c *CPU) Mul(rd, rs1, rs2 Reg) struct{} {
	c.Wx(rd, c.Rx(rs1)*c.Rx(rs2))
	return struct{}{}
}

// Mulh computes rd <- high 32 bits of signed(rs1) * signed(rs2).
func (c *CPU) Mulh(rd, rs1, rs2 Reg) struct{} {
	a := int64(int32(c.Rx(rs1)))
	b := int64(int32(c.Rx(rs2)))
	c.Wx(rd, uint32((a*b)>>32))
	return struct{}{}
}

// Mulhsu computes rd <- high 32 bits of signed(rs1) * unsigned(rs2).
func (c *CPU) Mulhsu(rd, rs1, rs2 Reg) struct{} {
	a := int64(int32(c.Rx(rs1)))
	b := int64(c.Rx(rs2))
	c.Wx(rd, uint32((a*b)>>32))
	return struct{}{}
}

// Mulhu computes rd <- high 32 bits of unsigned(rs1) * unsigned(rs2).
func (c *CPU) Mulhu(rd, rs1, rs2 Reg) struct{} {
	a := uint64(c.Rx(rs1))
	b := uint64(c.Rx(rs2))
	c.Wx(rd, uint32((a*b)>>32))
	return struct{}{}
}

// Div computes rd <- rs1 / rs2, signed. Division by zero yields -1;
// the one signed-overflow case (MinInt32 / -1) yields the dividend
// unchanged rather than overflowing, matching RISC-V's defined
// behavior for that corner case.
func (c *CPU) Div(rd, rs1, rs2 Reg) struct{} {
	dividend := int32(c.Rx(rs1))
	divisor := int32(c.Rx(rs2))
	if uint32(dividend) == 0x80000000 && divisor == -1 {
		c.Wx(rd, uint32(dividend))
		return struct{}{}
	}
	if divisor == 0 {
		c.Wx(rd, 0xffffffff)
		return struct{}{}
	}
	c.Wx(rd, uint32(dividend/divisor))
	return struct{}{}
}

// Divu computes rd <- rs1 / rs2, unsigned. Division by zero yields
// all-ones (UINT32_MAX).
func (c *CPU) Divu(rd, rs1, rs2 Reg) struct{} {
	dividend := c.Rx(rs1)
	divisor := c.Rx(rs2)
	if divisor == 0 {
		c.Wx(rd, 0xffffffff)
		return struct{}{}
	}
	c.Wx(rd, dividend/divisor)
	return struct{}{}
}

// Rem computes rd <- rs1 % rs2, signed. Division by zero yields the
// dividend; the MinInt32 % -1 overflow case yields 0.
func (c *CPU) Rem(rd, rs1, rs2 Reg) struct{} {
	dividend := int32(c.Rx(rs1))
	divisor := int32(c.Rx(rs2))
	if uint32(dividend) == 0x80000000 && divisor == -1 {
		c.Wx(rd, 0)
		return struct{}{}
	}
	if divisor == 0 {
		c.Wx(rd, uint32(dividend))
		return struct{}{}
	}
	c.Wx(rd, uint32(dividend%divisor))
	return struct{}{}
}

// Remu computes rd <- rs1 % rs2, unsigned. Division by zero yields the
// dividend.
func (c *CPU) Remu(rd, rs1, rs2 Reg) struct{} {
	dividend := c.Rx(rs1)
	divisor := c.Rx(rs2)
	if divisor == 0 {
		c.Wx(rd, dividend)
		return struct{}{}
	}
	c.Wx(rd, dividend%divisor)
	return struct{}{}
}
