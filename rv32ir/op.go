package rv32ir

// Op values, one per RV32IMFC mnemonic. Names match the disasm
// package's mnemonic strings (upper-cased, "." dropped) so a caller
// that has both an Instruction and its rendered text can line the two
// up without a lookup table.
const (
	OpIllegal Op = iota

	OpBeq
	OpBne
	OpBlt
	OpBge
	OpBltu
	OpBgeu

	OpLb
	OpLh
	OpLw
	OpLbu
	OpLhu

	OpAddi
	OpSlti
	OpSltiu
	OpXori
	OpOri
	OpAndi
	OpJalr

	OpSb
	OpSh
	OpSw

	OpAuipc
	OpLui
	OpJal

	OpAdd
	OpSub
	OpSll
	OpSlt
	OpSltu
	OpXor
	OpSrl
	OpSra
	OpOr
	OpAnd

	OpSlli
	OpSrli
	OpSrai

	OpFence
	OpEcall
	OpEbreak

	OpMul
	OpMulh
	OpMulhsu
	OpMulhu
	OpDiv
	OpDivu
	OpRem
	OpRemu

	OpCAddi4spn
	OpCLw
	OpCSw
	OpCSub
	OpCXor
	OpCOr
	OpCAnd
	OpCNop
	OpCAddi16sp
	OpCAndi
	OpCAddi
	OpCLi
	OpCLui
	OpCJ
	OpCBeqz
	OpCBnez
	OpCJr
	OpCJalr
	OpCEbreak
	OpCMv
	OpCAdd
	OpCLwsp
	OpCSwsp
	OpCJal
	OpCSrli
	OpCSrai
	OpCSlli

	OpFlw
	OpFsw
	OpFsqrtS
	OpFcvtWS
	OpFcvtWuS
	OpFcvtSW
	OpFcvtSWu
	OpFaddS
	OpFsubS
	OpFmulS
	OpFdivS
	OpFmaddS
	OpFmsubS
	OpFnmsubS
	OpFnmaddS
	OpFmvXW
	OpFmvWX
	OpFclassS
	OpFsgnjS
	OpFminS
	OpFleS
	OpFsgnjnS
	OpFmaxS
	OpFltS
	OpFsgnjxS
	OpFeqS
)

// names is Op-indexed for String/debugging; kept in the same order as
// the const block above.
var names = [...]string{
	"ILLEGAL",
	"BEQ", "BNE", "BLT", "BGE", "BLTU", "BGEU",
	"LB", "LH", "LW", "LBU", "LHU",
	"ADDI", "SLTI", "SLTIU", "XORI", "ORI", "ANDI", "JALR",
	"SB", "SH", "SW",
	"AUIPC", "LUI", "JAL",
	"ADD", "SUB", "SLL", "SLT", "SLTU", "XOR", "SRL", "SRA", "OR", "AND",
	"SLLI", "SRLI", "SRAI",
	"FENCE", "ECALL", "EBREAK",
	"MUL", "MULH", "MULHSU", "MULHU", "DIV", "DIVU", "REM", "REMU",
	"C.ADDI4SPN", "C.LW", "C.SW", "C.SUB", "C.XOR", "C.OR", "C.AND",
	"C.NOP", "C.ADDI16SP", "C.ANDI", "C.ADDI", "C.LI", "C.LUI", "C.J",
	"C.BEQZ", "C.BNEZ", "C.JR", "C.JALR", "C.EBREAK", "C.MV", "C.ADD",
	"C.LWSP", "C.SWSP", "C.JAL", "C.SRLI", "C.SRAI", "C.SLLI",
	"FLW", "FSW", "FSQRT.S", "FCVT.W.S", "FCVT.WU.S", "FCVT.S.W",
	"FCVT.S.WU", "FADD.S", "FSUB.S", "FMUL.S", "FDIV.S", "FMADD.S",
	"FMSUB.S", "FNMSUB.S", "FNMADD.S", "FMV.X.W", "FMV.W.X", "FCLASS.S",
	"FSGNJ.S", "FMIN.S", "FLE.S", "FSGNJN.S", "FMAX.S", "FLT.S",
	"FSGNJX.S", "FEQ.S",
}

// String returns the instruction's mnemonic.
func (op Op) String() string {
	if int(op) < 0 || int(op) >= len(names) {
		return "UNKNOWN"
	}
	return names[op]
}

// IsBranch reports whether op is a conditional branch whose Imm is a
// PC-relative delta to the branch-taken target.
func (op Op) IsBranch() bool {
	switch op {
	case OpBeq, OpBne, OpBlt, OpBge, OpBltu, OpBgeu, OpCBeqz, OpCBnez:
		return true
	}
	return false
}

// IsCall reports whether op is a direct jump that writes a return
// address (jal or c.jal). It looks at the op only, not at rd: a jal
// whose rd is zero also reports true, so telling a call from a plain
// jump also needs a check that rd is ra.
func (op Op) IsCall() bool {
	switch op {
	case OpJal, OpCJal:
		return true
	}
	return false
}

// IsDirectJump reports whether op carries a PC-relative Imm naming its
// own target, as opposed to an indirect jump computed from a register.
func (op Op) IsDirectJump() bool {
	switch op {
	case OpJal, OpCJal, OpCJ:
		return true
	}
	return op.IsBranch()
}

// IsIndirectJump reports whether op computes its target from a base
// register plus immediate rather than a PC-relative immediate alone.
func (op Op) IsIndirectJump() bool {
	switch op {
	case OpJalr, OpCJr, OpCJalr:
		return true
	}
	return false
}

// IsLoad reports whether op reads memory through rs1+Imm.
func (op Op) IsLoad() bool {
	switch op {
	case OpLb, OpLh, OpLw, OpLbu, OpLhu, OpFlw, OpCLw, OpCLwsp:
		return true
	}
	return false
}

// IsStore reports whether op writes memory through rs1+Imm.
func (op Op) IsStore() bool {
	switch op {
	case OpSb, OpSh, OpSw, OpFsw, OpCSw, OpCSwsp:
		return true
	}
	return false
}

// IsAuipc reports whether op materializes a PC-relative base address
// into Rd, the first half of the auipc+addi/lw/jalr absolute-addressing
// idiom.
func (op Op) IsAuipc() bool {
	return op == OpAuipc
}
