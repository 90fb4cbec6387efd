// Package disasm renders decoded RV32IMFC instructions as text. It
// implements vm.Consumer[string]: Decode dispatches to exactly one
// method per opcode and returns that method's string, so the same
// bit-field decode table that drives CPU execution also drives
// disassembly, with no separate instruction-format parser.
//
// Output is a tab-separated mnemonic and comma-separated operand list,
// e.g. "ADD\ta0, a1, a2" or "LB\ta0, 4(sp)". Register operands use
// their ABI display name (vm.Reg.String / vm.FReg.String) rather than
// a raw x<N>/f<N> index.
package disasm

import "github.com/rv32emu/rv32emu/vm"

// Disassembler is the render consumer: it carries no state of its own,
// since every operand it needs arrives as an argument from Decode.
type Disassembler struct{}

// New returns a ready-to-use Disassembler.
func New() *Disassembler {
	return &Disassembler{}
}

var _ vm.Consumer[string] = (*Disassembler)(nil)

// roundingModes is the FP rounding-mode field's display name table,
// inst[14:12] / the rs1_rm.rm field of R4-type FP instructions.
var roundingModes = [8]string{
	"rne", "rtz", "rdn", "rup", "rmm", "reserved5", "reserved6", "dyn",
}

func rm(mode uint32) string {
	return roundingModes[mode&0x7]
}

// fr formats r as a float-register ABI name (fa0, ft1, ...).
func fr(r vm.Reg) string {
	return vm.FReg(uint32(r)).String()
}
