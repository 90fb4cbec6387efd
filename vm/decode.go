package vm

// Decode dispatches one fetched instruction word to the matching method
// on consumer, returning whatever that method returns. The bit-pattern
// table below is transliterated from the reference decoder: compressed
// (16-bit) encodings are tried first by quadrant by matching c.Quadrant()
// against 00/01/10, since 11 always means a full 32-bit base instruction;
// anything that doesn't match a known pattern falls through to
// consumer.Illegal.
//
// Quadrant, funct3, and funct7 sub-matches are laid out in the same
// nesting order as the source table so the two stay easy to compare
// field-by-field when the F-extension or a future extension needs a
// case added.
func Decode[T any](consumer Consumer[T], word uint32) T {
	w := Word(word)

	switch w.Quadrant() {
	case 0b00:
		switch w.CFunct3() {
		case 0b000:
			return consumer.CAddi4spn(w.Rdp(), w.CNzuimm10())
		case 0b010:
			return consumer.CLw(w.Rdp(), w.Rs1p(), w.CUimm7())
		case 0b110:
			return consumer.CSw(w.Rs1p(), w.Rs2p(), w.CUimm7())
		}
	case 0b01:
		switch w.Bits(6, 5) {
		case 0b00:
			if w.Bits(12, 10) == 0b011 && w.CFunct3() == 0b100 {
				return consumer.CSub(w.Rdrs1p(), w.Rs2p())
			}
		case 0b01:
			if w.Bits(12, 10) == 0b011 && w.CFunct3() == 0b100 {
				return consumer.CXor(w.Rdrs1p(), w.Rs2p())
			}
		case 0b10:
			if w.Bits(12, 10) == 0b011 && w.CFunct3() == 0b100 {
				return consumer.COr(w.Rdrs1p(), w.Rs2p())
			}
		case 0b11:
			if w.Bits(12, 10) == 0b011 && w.CFunct3() == 0b100 {
				return consumer.CAnd(w.Rdrs1p(), w.Rs2p())
			}
		}
		switch w.RdRs1() {
		case 0b00000:
			if w.CFunct3() == 0b000 {
				return consumer.CNop(w.CNzimm6())
			}
		case 0b00010:
			if w.CFunct3() == 0b011 {
				return consumer.CAddi16sp(w.CNzimm10())
			}
		}
		switch w.Bits(11, 10) {
		case 0b00:
			if w.CFunct3() == 0b100 {
				return consumer.CSrli(w.Rdrs1p(), w.CNzuimm6())
			}
		case 0b01:
			if w.CFunct3() == 0b100 {
				return consumer.CSrai(w.Rdrs1p(), w.CNzuimm6())
			}
		case 0b10:
			if w.CFunct3() == 0b100 {
				return consumer.CAndi(w.Rdrs1p(), w.CImm6())
			}
		}
		switch w.CFunct3() {
		case 0b000:
			return consumer.CAddi(w.Rdrs1n0(), w.CNzimm6())
		case 0b001:
			return consumer.CJal(w.CImm12())
		case 0b010:
			return consumer.CLi(w.RdFull(), w.CImm6())
		case 0b011:
			return consumer.CLui(w.Rdn2(), w.CNzimm18())
		case 0b101:
			return consumer.CJ(w.CImm12())
		case 0b110:
			return consumer.CBeqz(w.Rs1p(), w.CBimm9())
		case 0b111:
			return consumer.CBnez(w.Rs1p(), w.CBimm9())
		}
	case 0b10:
		if w.Bits(6, 2) == 0b00000 {
			switch w.Bits(12, 12) {
			case 0b0:
				if w.CFunct3() == 0b100 {
					return consumer.CJr(w.Rs1n0())
				}
			case 0b1:
				if w.CFunct3() == 0b100 && w.RdRs1() != 0 {
					return consumer.CJalr(w.Rs1n0())
				}
			}
		}
		if w.Bits(11, 2) == 0 && w.Bits(12, 12) == 0b1 && w.CFunct3() == 0b100 {
			return consumer.CEbreak()
		}
		switch w.Bits(12, 12) {
		case 0b0:
			if w.CFunct3() == 0b100 {
				return consumer.CMv(w.RdFull(), w.Rs2n0())
			}
		case 0b1:
			if w.CFunct3() == 0b100 {
				return consumer.CAdd(w.Rdrs1(), w.Rs2n0())
			}
		}
		switch w.CFunct3() {
		case 0b000:
			return consumer.CSlli(w.Rdrs1n0(), w.CNzuimm6())
		case 0b010:
			return consumer.CLwsp(w.Rdn0(), w.CUimm8sp())
		case 0b110:
			return consumer.CSwsp(w.CRs2(), w.CUimm8spS())
		}
	}

	switch w.Opcode() {
	case 0b0000011: // LOAD
		switch w.Funct3() {
		case 0b000:
			return consumer.Lb(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b001:
			return consumer.Lh(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b010:
			return consumer.Lw(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b100:
			return consumer.Lbu(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b101:
			return consumer.Lhu(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		}
	case 0b0000111: // LOAD-FP
		if w.Funct3() == 0b010 {
			return consumer.Flw(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		}
	case 0b0001111: // MISC-MEM
		if w.Funct3() == 0b000 {
			return consumer.Fence(w.Fm(), NewReg(w.Rd()), NewReg(w.Rs1()))
		}
	case 0b0010011: // OP-IMM
		switch w.Funct3() {
		case 0b000:
			return consumer.Addi(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b001:
			if w.Funct7() == 0b0000000 {
				return consumer.Slli(NewReg(w.Rd()), NewReg(w.Rs1()), w.Shamtw())
			}
		case 0b010:
			return consumer.Slti(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b011:
			return consumer.Sltiu(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b100:
			return consumer.Xori(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b101:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.Srli(NewReg(w.Rd()), NewReg(w.Rs1()), w.Shamtw())
			case 0b0100000:
				return consumer.Srai(NewReg(w.Rd()), NewReg(w.Rs1()), w.Shamtw())
			}
		case 0b110:
			return consumer.Ori(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		case 0b111:
			return consumer.Andi(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		}
	case 0b0010111: // AUIPC
		return consumer.Auipc(NewReg(w.Rd()), w.UImmediate())
	case 0b0100011: // STORE
		switch w.Funct3() {
		case 0b000:
			return consumer.Sb(NewReg(w.Rs1()), NewReg(w.Rs2()), w.SImmediate())
		case 0b001:
			return consumer.Sh(NewReg(w.Rs1()), NewReg(w.Rs2()), w.SImmediate())
		case 0b010:
			return consumer.Sw(NewReg(w.Rs1()), NewReg(w.Rs2()), w.SImmediate())
		}
	case 0b0100111: // STORE-FP
		if w.Funct3() == 0b010 {
			return consumer.Fsw(NewReg(w.Rs1()), NewReg(w.Rs2()), w.SImmediate())
		}
	case 0b1000011: // MADD
		if w.Fmt() == 0b00 {
			return consumer.FmaddS(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()), NewReg(w.Rs3()), w.Rm())
		}
	case 0b1000111: // MSUB
		if w.Fmt() == 0b00 {
			return consumer.FmsubS(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()), NewReg(w.Rs3()), w.Rm())
		}
	case 0b1001011: // NMSUB
		if w.Fmt() == 0b00 {
			return consumer.FnmsubS(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()), NewReg(w.Rs3()), w.Rm())
		}
	case 0b1001111: // NMADD
		if w.Fmt() == 0b00 {
			return consumer.FnmaddS(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()), NewReg(w.Rs3()), w.Rm())
		}
	case 0b0110011: // OP
		switch w.Funct3() {
		case 0b000:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.Add(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0000001:
				return consumer.Mul(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0100000:
				return consumer.Sub(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			}
		case 0b001:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.Sll(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0000001:
				return consumer.Mulh(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			}
		case 0b010:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.Slt(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0000001:
				return consumer.Mulhsu(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			}
		case 0b011:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.Sltu(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0000001:
				return consumer.Mulhu(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			}
		case 0b100:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.Xor(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0000001:
				return consumer.Div(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			}
		case 0b101:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.Srl(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0000001:
				return consumer.Divu(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0100000:
				return consumer.Sra(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			}
		case 0b110:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.Or(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0000001:
				return consumer.Rem(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			}
		case 0b111:
			switch w.Funct7() {
			case 0b0000000:
				return consumer.And(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			case 0b0000001:
				return consumer.Remu(NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2()))
			}
		}
	case 0b0110111: // LUI
		return consumer.Lui(NewReg(w.Rd()), w.UImmediate())
	case 0b1010011: // OP-FP
		rd, rs1, rs2 := NewReg(w.Rd()), NewReg(w.Rs1()), NewReg(w.Rs2())
		switch w.Funct7() {
		case 0b0000000:
			return consumer.FaddS(rd, rs1, rs2, w.Rm())
		case 0b0000100:
			return consumer.FsubS(rd, rs1, rs2, w.Rm())
		case 0b0001000:
			return consumer.FmulS(rd, rs1, rs2, w.Rm())
		case 0b0001100:
			return consumer.FdivS(rd, rs1, rs2, w.Rm())
		case 0b0101100:
			if w.Rs2() == 0b00000 {
				return consumer.FsqrtS(rd, rs1, w.Rm())
			}
		case 0b0010000:
			switch w.Funct3() {
			case 0b000:
				return consumer.FsgnjS(rd, rs1, rs2)
			case 0b001:
				return consumer.FsgnjnS(rd, rs1, rs2)
			case 0b010:
				return consumer.FsgnjxS(rd, rs1, rs2)
			}
		case 0b0010100:
			switch w.Funct3() {
			case 0b000:
				return consumer.FminS(rd, rs1, rs2)
			case 0b001:
				return consumer.FmaxS(rd, rs1, rs2)
			}
		case 0b1100000:
			switch w.Rs2() {
			case 0b00000:
				return consumer.FcvtWS(rd, rs1, w.Rm())
			case 0b00001:
				return consumer.FcvtWuS(rd, rs1, w.Rm())
			}
		case 0b1110000:
			if w.Rs2() == 0b00000 {
				switch w.Funct3() {
				case 0b000:
					return consumer.FmvXW(rd, rs1)
				case 0b001:
					return consumer.FclassS(rd, rs1)
				}
			}
		case 0b1010000:
			switch w.Funct3() {
			case 0b010:
				return consumer.FeqS(rd, rs1, rs2)
			case 0b001:
				return consumer.FltS(rd, rs1, rs2)
			case 0b000:
				return consumer.FleS(rd, rs1, rs2)
			}
		case 0b1101000:
			switch w.Rs2() {
			case 0b00000:
				return consumer.FcvtSW(rd, rs1, w.Rm())
			case 0b00001:
				return consumer.FcvtSWu(rd, rs1, w.Rm())
			}
		case 0b1111000:
			if w.Rs2() == 0b00000 && w.Funct3() == 0b000 {
				return consumer.FmvWX(rd, rs1)
			}
		}
	case 0b1100011: // BRANCH
		switch w.Funct3() {
		case 0b000:
			return consumer.Beq(NewReg(w.Rs1()), NewReg(w.Rs2()), w.BImmediate())
		case 0b001:
			return consumer.Bne(NewReg(w.Rs1()), NewReg(w.Rs2()), w.BImmediate())
		case 0b100:
			return consumer.Blt(NewReg(w.Rs1()), NewReg(w.Rs2()), w.BImmediate())
		case 0b101:
			return consumer.Bge(NewReg(w.Rs1()), NewReg(w.Rs2()), w.BImmediate())
		case 0b110:
			return consumer.Bltu(NewReg(w.Rs1()), NewReg(w.Rs2()), w.BImmediate())
		case 0b111:
			return consumer.Bgeu(NewReg(w.Rs1()), NewReg(w.Rs2()), w.BImmediate())
		}
	case 0b1100111: // JALR
		if w.Funct3() == 0b000 {
			return consumer.Jalr(NewReg(w.Rd()), NewReg(w.Rs1()), w.IImmediate())
		}
	case 0b1101111: // JAL
		return consumer.Jal(NewReg(w.Rd()), w.JImmediate())
	case 0b1110011: // SYSTEM
		if w.Rd() == 0b00000 && w.Funct3() == 0b000 && w.Rs1() == 0b00000 {
			switch w.Funct12() {
			case 0b000000000000:
				return consumer.Ecall()
			case 0b000000000001:
				return consumer.Ebreak()
			}
		}
	}

	return consumer.Illegal(word)
}
