package vm

// Compressed-instruction immediate decoders. The RVC encodings scatter
// each immediate's bits across non-contiguous positions; these mirror
// the standard RISC-V compressed-instruction-set immediate layout.

// CNzuimm10 decodes C.ADDI4SPN's zero-extended imm[9:2], scaled by 4.
func (w Word) CNzuimm10() uint32 {
	imm54 := w.Bits(12, 11) << 4
	imm96 := w.Bits(10, 7) << 6
	imm3 := w.Bits(5, 5) << 3
	imm2 := w.Bits(6, 6) << 2
	return imm54 | imm96 | imm3 | imm2
}

// CUimm7 decodes C.LW/C.SW's zero-extended word offset, offset[6:2].
func (w Word) CUimm7() uint32 {
	imm53 := w.Bits(12, 10) << 3
	imm2 := w.Bits(6, 6) << 2
	imm6 := w.Bits(5, 5) << 6
	return imm53 | imm2 | imm6
}

// CNzimm6 decodes C.ADDI's sign-extended imm[5:0].
func (w Word) CNzimm6() uint32 {
	return w.signExtendCI()
}

// CImm6 decodes C.LI's/C.ANDI's sign-extended imm[5:0]; same bit layout
// as CNzimm6, named separately because the source instruction (and the
// "must be nonzero" constraint) differs.
func (w Word) CImm6() uint32 {
	return w.signExtendCI()
}

func (w Word) signExtendCI() uint32 {
	imm5 := w.Bits(12, 12)
	imm40 := w.Bits(6, 2)
	raw := (imm5 << 5) | imm40
	if imm5 != 0 {
		return raw | 0xffffffc0
	}
	return raw
}

// CNzuimm6 decodes C.SRLI/C.SRAI/C.SLLI's zero-extended shift amount,
// shamt[5:0].
func (w Word) CNzuimm6() uint32 {
	return (w.Bits(12, 12) << 5) | w.Bits(6, 2)
}

// CNzimm10 decodes C.ADDI16SP's sign-extended imm[9:0].
func (w Word) CNzimm10() uint32 {
	imm9 := w.Bits(12, 12)
	imm4 := w.Bits(6, 6) << 4
	imm6 := w.Bits(5, 5) << 6
	imm87 := w.Bits(4, 3) << 7
	imm5 := w.Bits(2, 2) << 5
	raw := (imm9 << 9) | imm87 | imm6 | imm5 | imm4
	if imm9 != 0 {
		return raw | 0xfffffc00
	}
	return raw
}

// CNzimm18 decodes C.LUI's sign-extended imm[17:12], already shifted
// into U-immediate position.
func (w Word) CNzimm18() uint32 {
	imm17 := w.Bits(12, 12)
	imm1612 := w.Bits(6, 2) << 12
	raw := (imm17 << 17) | imm1612
	if imm17 != 0 {
		return raw | 0xfffc0000
	}
	return raw
}

// CImm12 decodes C.J/C.JAL's sign-extended jump offset, offset[11:1].
func (w Word) CImm12() uint32 {
	imm11 := w.Bits(12, 12) << 11
	imm4 := w.Bits(11, 11) << 4
	imm98 := w.Bits(10, 9) << 8
	imm10 := w.Bits(8, 8) << 10
	imm6 := w.Bits(7, 7) << 6
	imm7 := w.Bits(6, 6) << 7
	imm31 := w.Bits(5, 3) << 1
	imm5 := w.Bits(2, 2) << 5
	raw := imm11 | imm4 | imm98 | imm10 | imm6 | imm7 | imm31 | imm5
	if w.Bits(12, 12) != 0 {
		return raw | 0xfffff000
	}
	return raw
}

// CBimm9 decodes C.BEQZ/C.BNEZ's sign-extended branch offset, offset[8:1].
func (w Word) CBimm9() uint32 {
	imm8 := w.Bits(12, 12) << 8
	imm43 := w.Bits(11, 10) << 3
	imm76 := w.Bits(6, 5) << 6
	imm21 := w.Bits(4, 3) << 1
	imm5 := w.Bits(2, 2) << 5
	raw := imm8 | imm43 | imm76 | imm21 | imm5
	if w.Bits(12, 12) != 0 {
		return raw | 0xfffffe00
	}
	return raw
}

// CUimm8sp decodes C.LWSP's zero-extended stack-relative offset, offset[7:2].
func (w Word) CUimm8sp() uint32 {
	imm5 := w.Bits(12, 12) << 5
	imm42 := w.Bits(6, 4) << 2
	imm76 := w.Bits(3, 2) << 6
	return imm5 | imm42 | imm76
}

// CUimm8spS decodes C.SWSP's zero-extended stack-relative offset, offset[7:2].
func (w Word) CUimm8spS() uint32 {
	imm52 := w.Bits(12, 9) << 2
	imm76 := w.Bits(8, 7) << 6
	return imm52 | imm76
}

// Compressed-instruction register-field decoders.

// Rdp returns the CIW/CL/CS-format destination "popular" register, x8-x15.
func (w Word) Rdp() Reg {
	return CReg(w.RdRs1p())
}

// Rs1p returns the CL/CS/CB-format source-1 "popular" register, x8-x15.
func (w Word) Rs1p() Reg {
	return CReg(w.RdRs1p())
}

// Rs2p returns the CS/CA-format source-2 "popular" register, x8-x15.
func (w Word) Rs2p() Reg {
	return CReg(w.Rs2p32())
}

// Rs2p32 is the raw 3-bit field behind Rs2p; kept separate so Rs2p's
// name doesn't collide with the bit-accessor of the same name.
func (w Word) Rs2p32() uint32 {
	return w.Bits(4, 2)
}

// Rdrs1p returns the CA-format shared destination/source-1 register.
func (w Word) Rdrs1p() Reg {
	return CReg(w.RdRs1p())
}

// RdFull returns the full 5-bit CI/CR-format register field, inst[11:7].
func (w Word) RdFull() Reg {
	return NewReg(w.RdRs1())
}

// Rdrs1n0 returns the CI-format shared destination/source-1 register
// (full 5-bit field); the "n0" (not x0) constraint is an encoding
// precondition the decoder does not itself enforce.
func (w Word) Rdrs1n0() Reg {
	return NewReg(w.RdRs1())
}

// Rdrs1 returns the CR-format shared destination/source-1 register.
func (w Word) Rdrs1() Reg {
	return NewReg(w.RdRs1())
}

// Rdn2 returns C.LUI's destination register (full 5-bit field); "n2"
// flags that x0 and x2 are reserved encodings the decoder passes through.
func (w Word) Rdn2() Reg {
	return NewReg(w.RdRs1())
}

// Rdn0 returns C.LWSP's destination register (full 5-bit field).
func (w Word) Rdn0() Reg {
	return NewReg(w.RdRs1())
}

// Rs1n0 returns the CR/CJ-format source-1 register (full 5-bit field),
// used by C.JR/C.JALR.
func (w Word) Rs1n0() Reg {
	return NewReg(w.RdRs1())
}

// Rs2n0 returns the CR-format source-2 register (full 5-bit field),
// used by C.MV/C.ADD.
func (w Word) Rs2n0() Reg {
	return NewReg(w.Rs2Wide())
}

// CRs2 returns the CSS-format source-2 register (full 5-bit field),
// used by C.SWSP.
func (w Word) CRs2() Reg {
	return NewReg(w.Rs2Wide())
}
