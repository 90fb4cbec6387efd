package rv32ir_test

import (
	"testing"

	"github.com/rv32emu/rv32emu/rv32ir"
	"github.com/rv32emu/rv32emu/vm"
)

func TestDecodeBaseInstructions(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want rv32ir.Instruction
	}{
		// ADD a0, a1, a2
		{"add", 0x00C58533, rv32ir.Instruction{Op: rv32ir.OpAdd, Rd: vm.RegA0, Rs1: vm.RegA1, Rs2: vm.RegA2}},
		// ADDI a0, a1, -4
		{"addi negative imm", 0xFFC58513, rv32ir.Instruction{Op: rv32ir.OpAddi, Rd: vm.RegA0, Rs1: vm.RegA1, Imm: 0xFFFFFFFC}},
		// LW a0, 8(sp)
		{"lw", 0x00812503, rv32ir.Instruction{Op: rv32ir.OpLw, Rd: vm.RegA0, Rs1: vm.RegSp, Imm: 8}},
		// JAL ra, 0
		{"jal", 0x000000EF, rv32ir.Instruction{Op: rv32ir.OpJal, Rd: vm.RegRa, Imm: 0}},
		{"ecall", 0x00000073, rv32ir.Instruction{Op: rv32ir.OpEcall}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rv32ir.Decode(tt.word)
			if got != tt.want {
				t.Errorf("Decode(0x%08X) = %+v, want %+v", tt.word, got, tt.want)
			}
		})
	}
}

func TestDecodeCompressedInstructions(t *testing.T) {
	// C.ADDI a0, 1
	got := rv32ir.Decode(0x0505)
	want := rv32ir.Instruction{Op: rv32ir.OpCAddi, Rd: vm.RegA0, Rs1: vm.RegA0, Imm: 1}
	if got != want {
		t.Errorf("Decode(0x0505) = %+v, want %+v", got, want)
	}
}

func TestDecodeIllegal(t *testing.T) {
	got := rv32ir.Decode(0xFFFFFFFF)
	if got.Op != rv32ir.OpIllegal || got.Word != 0xFFFFFFFF {
		t.Errorf("Decode(illegal) = %+v, want Op=OpIllegal Word=0xFFFFFFFF", got)
	}
}

func TestOpClassification(t *testing.T) {
	if !rv32ir.OpBeq.IsBranch() {
		t.Error("OpBeq.IsBranch() = false, want true")
	}
	if !rv32ir.OpJal.IsCall() {
		t.Error("OpJal.IsCall() = false, want true")
	}
	if !rv32ir.OpJalr.IsIndirectJump() {
		t.Error("OpJalr.IsIndirectJump() = false, want true")
	}
	if !rv32ir.OpLw.IsLoad() {
		t.Error("OpLw.IsLoad() = false, want true")
	}
	if !rv32ir.OpSw.IsStore() {
		t.Error("OpSw.IsStore() = false, want true")
	}
}
