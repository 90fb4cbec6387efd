package vm

// RV32I is the consumer interface for every base-ISA instruction. A
// decode call is handed a RV32I[T] (composed, via Consumer[T], with
// RV32M/RV32C/RV32F) and the decoder invokes exactly one method per
// decoded word, returning whatever that method returns as T.
//
// This is the Go rendering of a Rust trait with an associated type: Go
// has no blanket-impl-over-trait-bound mechanism, so instead of one
// shared default body reused by every consumer, each concrete consumer
// (CPU, disassembler, rv32ir builder) implements the full method set
// itself. CPU's implementation is the "execute" consumer; disasm's is
// the "render" consumer; rv32ir's is the "build a tagged struct"
// consumer (spec.md's three documented decoder-consumer shapes).
type RV32I[T any] interface {
	Illegal(word uint32) T

	Beq(rs1, rs2 Reg, bimm uint32) T
	Bne(rs1, rs2 Reg, bimm uint32) T
	Blt(rs1, rs2 Reg, bimm uint32) T
	Bge(rs1, rs2 Reg, bimm uint32) T
	Bltu(rs1, rs2 Reg, bimm uint32) T
	Bgeu(rs1, rs2 Reg, bimm uint32) T

	Lb(rd, rs1 Reg, iimm uint32) T
	Lh(rd, rs1 Reg, iimm uint32) T
	Lw(rd, rs1 Reg, iimm uint32) T
	Lbu(rd, rs1 Reg, iimm uint32) T
	Lhu(rd, rs1 Reg, iimm uint32) T
	Addi(rd, rs1 Reg, iimm uint32) T
	Slti(rd, rs1 Reg, iimm uint32) T
	Sltiu(rd, rs1 Reg, iimm uint32) T
	Xori(rd, rs1 Reg, iimm uint32) T
	Ori(rd, rs1 Reg, iimm uint32) T
	Andi(rd, rs1 Reg, iimm uint32) T
	Jalr(rd, rs1 Reg, iimm uint32) T

	Sb(rs1, rs2 Reg, simm uint32) T
	Sh(rs1, rs2 Reg, simm uint32) T
	Sw(rs1, rs2 Reg, simm uint32) T

	Auipc(rd Reg, uimm uint32) T
	Lui(rd Reg, uimm uint32) T

	Jal(rd Reg, jimm uint32) T

	Add(rd, rs1, rs2 Reg) T
	Sub(rd, rs1, rs2 Reg) T
	Sll(rd, rs1, rs2 Reg) T
	Slt(rd, rs1, rs2 Reg) T
	Sltu(rd, rs1, rs2 Reg) T
	Xor(rd, rs1, rs2 Reg) T
	Srl(rd, rs1, rs2 Reg) T
	Sra(rd, rs1, rs2 Reg) T
	Or(rd, rs1, rs2 Reg) T
	And(rd, rs1, rs2 Reg) T

	Slli(rd, rs1 Reg, shamt uint32) T
	Srli(rd, rs1 Reg, shamt uint32) T
	Srai(rd, rs1 Reg, shamt uint32) T

	Fence(fm uint32, rd, rs1 Reg) T

	Ecall() T
	Ebreak() T
}

// RV32M is the consumer interface for the M-extension (integer
// multiply/divide) instructions.
type RV32M[T any] interface {
	Mul(rd, rs1, rs2 Reg) T
	Mulh(rd, rs1, rs2 Reg) T
	Mulhsu(rd, rs1, rs2 Reg) T
	Mulhu(rd, rs1, rs2 Reg) T
	Div(rd, rs1, rs2 Reg) T
	Divu(rd, rs1, rs2 Reg) T
	Rem(rd, rs1, rs2 Reg) T
	Remu(rd, rs1, rs2 Reg) T
}

// RV32C is the consumer interface for the C-extension (16-bit
// compressed) instructions. Every method corresponds to a compressed
// opcode; the decoder has already recovered the full 5-bit register
// indices and sign-extended immediates before calling these.
type RV32C[T any] interface {
	CAddi4spn(rdp Reg, imm uint32) T
	CLw(rdp, rs1p Reg, imm uint32) T
	CSw(rs1p, rs2p Reg, imm uint32) T
	CSub(rdrs1p, rs2p Reg) T
	CXor(rdrs1p, rs2p Reg) T
	COr(rdrs1p, rs2p Reg) T
	CAnd(rdrs1p, rs2p Reg) T
	CNop(imm uint32) T
	CAddi16sp(imm uint32) T
	CAndi(rdrs1p Reg, imm uint32) T
	CAddi(rdrs1n0 Reg, imm uint32) T
	CLi(rd Reg, imm uint32) T
	CLui(rdn2 Reg, imm uint32) T
	CJ(imm uint32) T
	CBeqz(rs1p Reg, imm uint32) T
	CBnez(rs1p Reg, imm uint32) T
	CJr(rs1n0 Reg) T
	CJalr(rs1n0 Reg) T
	CEbreak() T
	CMv(rd, rs2n0 Reg) T
	CAdd(rdrs1, rs2n0 Reg) T
	CLwsp(rdn0 Reg, imm uint32) T
	CSwsp(rs2 Reg, imm uint32) T
	CJal(imm uint32) T
	CSrli(rdrs1p Reg, imm uint32) T
	CSrai(rdrs1p Reg, imm uint32) T
	CSlli(rdrs1n0 Reg, imm uint32) T
}

// RV32F is the consumer interface for the F-extension (single-precision
// floating point) instructions.
type RV32F[T any] interface {
	Flw(rd, rs1 Reg, iimm uint32) T
	Fsw(rs1, rs2 Reg, simm uint32) T

	FsqrtS(rd, rs1 Reg, rm uint32) T
	FcvtWS(rd, rs1 Reg, rm uint32) T
	FcvtWuS(rd, rs1 Reg, rm uint32) T
	FcvtSW(rd, rs1 Reg, rm uint32) T
	FcvtSWu(rd, rs1 Reg, rm uint32) T

	FaddS(rd, rs1, rs2 Reg, rm uint32) T
	FsubS(rd, rs1, rs2 Reg, rm uint32) T
	FmulS(rd, rs1, rs2 Reg, rm uint32) T
	FdivS(rd, rs1, rs2 Reg, rm uint32) T

	FmaddS(rd, rs1, rs2, rs3 Reg, rm uint32) T
	FmsubS(rd, rs1, rs2, rs3 Reg, rm uint32) T
	FnmsubS(rd, rs1, rs2, rs3 Reg, rm uint32) T
	FnmaddS(rd, rs1, rs2, rs3 Reg, rm uint32) T

	FmvXW(rd, rs1 Reg) T
	FmvWX(rd, rs1 Reg) T
	FclassS(rd, rs1 Reg) T

	FsgnjS(rd, rs1, rs2 Reg) T
	FminS(rd, rs1, rs2 Reg) T
	FleS(rd, rs1, rs2 Reg) T
	FsgnjnS(rd, rs1, rs2 Reg) T
	FmaxS(rd, rs1, rs2 Reg) T
	FltS(rd, rs1, rs2 Reg) T
	FsgnjxS(rd, rs1, rs2 Reg) T
	FeqS(rd, rs1, rs2 Reg) T
}

// Consumer is the full decoder consumer interface: the union of the
// base, multiply, compressed, and float instruction sets. Decode is
// generic over Consumer[T] so a single decode table serves CPU
// execution (T = struct{}), disassembly (T = string), and tagged-IR
// construction (T = rv32ir.Instruction) without three copies of the bit
// patterns. This corresponds to option (a)/(c) in spec.md's Design
// Notes on decoder consumers: CPU satisfies it via static dispatch on
// the hot path, disasm/rv32ir via the same interface for offline use.
type Consumer[T any] interface {
	RV32I[T]
	RV32M[T]
	RV32C[T]
	RV32F[T]
}
