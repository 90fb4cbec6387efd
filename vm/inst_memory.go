package vm

// Load/store, jump, fence, and system instructions. A memory fault
// latches LoadAccessFault/StoreAccessFault with the failing address
// rather than propagating the host *Memory error, per spec.md's
// architectural-trap-vs-host-error split.

// Lb loads a sign-extended byte: rd <- sx(m8(rs1 + iimm)).
func (c *CPU) Lb(rd, rs1 Reg, iimm uint32) struct{} {
	addr := c.Rx(rs1) + iimm
	b, err := c.Mem.Read8(addr)
	if err != nil {
		c.HandleTrap(TrapCause{Kind: LoadAccessFault, Addr: addr})
		return struct{}{}
	}
	c.Wx(rd, uint32(int32(int8(b))))
	return struct{}{}
}

// Lh loads a sign-extended halfword: rd <- sx(m16(rs1 + iimm)).
func (c *CPU) Lh(rd, rs1 Reg, iimm uint32) struct{} {
	addr := c.Rx(rs1) + iimm
	h, err := c.Mem.Read16(addr)
	if err != nil {
		c.HandleTrap(TrapCause{Kind: LoadAccessFault, Addr: addr})
		return struct{}{}
	}
	c.Wx(rd, uint32(int32(int16(h))))
	return struct{}{}
}

// Lw loads a word: rd <- m32(rs1 + iimm).
func (c *CPU) Lw(rd, rs1 Reg, iimm uint32) struct{} {
	addr := c.Rx(rs1) + iimm
	w, err := c.Mem.Read32(addr)
	if err != nil {
		c.HandleTrap(TrapCause{Kind: LoadAccessFault, Addr: addr})
		return struct{}{}
	}
	c.Wx(rd, w)
	return struct{}{}
}

// Lbu loads a zero-extended byte: rd <- zx(m8(rs1 + iimm)).
func (c *CPU) Lbu(rd, rs1 Reg, iimm uint32) struct{} {
	addr := c.Rx(rs1) + iimm
	b, err := c.Mem.Read8(addr)
	if err != nil {
		c.HandleTrap(TrapCause{Kind: LoadAccessFault, Addr: addr})
		return struct{}{}
	}
	c.Wx(rd, uint32(b))
	return struct{}{}
}

// Lhu loads a zero-extended halfword: rd <- zx(m16(rs1 + iimm)).
func (c *CPU) Lhu(rd, rs1 Reg, iimm uint32) struct{} {
	addr := c.Rx(rs1) + iimm
	h, err := c.Mem.Read16(addr)
	if err != nil {
		c.HandleTrap(TrapCause{Kind: LoadAccessFault, Addr: addr})
		return struct{}{}
	}
	c.Wx(rd, uint32(h))
	return struct{}{}
}

// Sb stores the low byte of rs2: m8(rs1 + simm) <- rs2[7:0].
func (c *CPU) Sb(rs1, rs2 Reg, simm uint32) struct{} {
	addr := c.Rx(rs1) + simm
	if err := c.Mem.Write8(addr, byte(c.Rx(rs2))); err != nil {
		c.HandleTrap(TrapCause{Kind: StoreAccessFault, Addr: addr})
	}
	return struct{}{}
}

// Sh stores the low halfword of rs2: m16(rs1 + simm) <- rs2[15:0].
func (c *CPU) Sh(rs1, rs2 Reg, simm uint32) struct{} {
	addr := c.Rx(rs1) + simm
	if err := c.Mem.Write16(addr, uint16(c.Rx(rs2))); err != nil {
		c.HandleTrap(TrapCause{Kind: StoreAccessFault, Addr: addr})
	}
	return struct{}{}
}

// Sw stores rs2: m32(rs1 + simm) <- rs2.
func (c *CPU) Sw(rs1, rs2 Reg, simm uint32) struct{} {
	addr := c.Rx(rs1) + simm
	if err := c.Mem.Write32(addr, c.Rx(rs2)); err != nil {
		c.HandleTrap(TrapCause{Kind: StoreAccessFault, Addr: addr})
	}
	return struct{}{}
}

// Jal computes rd <- link, pc <- pc + jimm, where link is the address of
// the instruction that follows (pc+2 for c.jal, pc+4 for jal) — exactly
// the next_pc Fetch already latched before decoding this one.
func (c *CPU) Jal(rd Reg, jimm uint32) struct{} {
	link := c.nextPC
	c.Wx(rd, link)
	c.SetNextPC(c.PC() + jimm)
	return struct{}{}
}

// Jalr computes rd <- link, pc <- (rs1 + iimm) & ~1; see Jal for link.
// rs1 and link are both read before rd is written because rd may alias
// rs1.
func (c *CPU) Jalr(rd, rs1 Reg, iimm uint32) struct{} {
	target := c.Rx(rs1)
	link := c.nextPC
	c.Wx(rd, link)
	c.SetNextPC((target + iimm) &^ 1)
	return struct{}{}
}

// Fence is a no-op: the simulator executes instructions strictly in
// order with no reordering for FENCE to constrain.
func (c *CPU) Fence(fm uint32, rd, rs1 Reg) struct{} {
	return struct{}{}
}

// Ecall latches the environment-call trap.
func (c *CPU) Ecall() struct{} {
	c.HandleEcall()
	return struct{}{}
}

// Ebreak latches the breakpoint trap.
func (c *CPU) Ebreak() struct{} {
	c.HandleEbreak()
	return struct{}{}
}

// Illegal latches IllegalInstruction with the offending word, for any
// bit pattern the decode table doesn't recognize.
func (c *CPU) Illegal(word uint32) struct{} {
	c.HandleTrap(TrapCause{Kind: IllegalInstruction, Word: word})
	return struct{}{}
}
