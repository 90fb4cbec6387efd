// Package rv32ir builds an allocating tagged-variant intermediate
// representation of decoded RV32IMFC instructions. It implements
// vm.Consumer[Instruction]: the same bit-field decode table that drives
// CPU execution and disassembly also drives IR construction here, so
// offline tools (cross-referencers, static analyzers) work from
// structured instructions instead of re-parsing opcodes out of a
// register-return string.
//
// The variant shapes mirror the reference decoder's tagged-enum
// DecodedInstruction: each instruction format (R-type, I-type, S-type,
// B-type, U-type, J-type, the compressed formats, and the FP R4/rm
// formats) carries exactly the operand fields that format has, with Op
// as the tag distinguishing the specific mnemonic within its shape.
package rv32ir

import "github.com/rv32emu/rv32emu/vm"

// Op tags which instruction an Instruction value represents.
type Op int

// Instruction is the tagged-variant IR node: Op selects which of the
// fields below are meaningful, mirroring the per-shape field sets of
// the reference decoder's DecodedInstruction enum (RdRs1Rs2, RdRs1Imm12,
// Rs1Rs2BImm12, RdImm20, RdJImm20, RdRs1Rs2Rs3Rm, ...) flattened into one
// struct rather than one Go type per shape, since Go has no sum types.
type Instruction struct {
	Op Op

	Rd  vm.Reg
	Rs1 vm.Reg
	Rs2 vm.Reg
	Rs3 vm.Reg

	// Imm holds the decoded immediate for every shape that carries one:
	// branch/jump deltas are PC-relative and already sign-extended by
	// the decoder, load/store/op-imm immediates are sign-extended,
	// shift amounts and fence fields are zero-extended.
	Imm uint32

	Rm uint32
	Fm uint32

	// Word is the raw encoded instruction of an OpIllegal node (e.g. for
	// a hex dump); the builders for every other op leave it zero.
	Word uint32
}

// Builder is the IR-construction consumer: stateless, since every
// operand it needs arrives as a Decode argument.
type Builder struct{}

// New returns a ready-to-use Builder.
func New() *Builder {
	return &Builder{}
}

var _ vm.Consumer[Instruction] = (*Builder)(nil)

// Decode decodes one instruction word into its tagged IR form.
func Decode(word uint32) Instruction {
	return vm.Decode[Instruction](New(), word)
}

func (b *Builder) Illegal(word uint32) Instruction {
	return Instruction{Op: OpIllegal, Word: word}
}
