package disasm_test

import (
	"testing"

	"github.com/rv32emu/rv32emu/disasm"
	"github.com/rv32emu/rv32emu/vm"
)

func TestDisassembleBaseInstructions(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want string
	}{
		// ADD a0, a1, a2
		{"add", 0x00C58533, "ADD\ta0, a1, a2"},
		// ADDI a0, a1, -4
		{"addi negative imm", 0xFFC58513, "ADDI\ta0, a1, -4"},
		// LW a0, 8(sp)
		{"lw", 0x00812503, "LW\ta0, 8(sp)"},
		// SW a0, 8(sp)
		{"sw", 0x00A12423, "SW\ta0, 8(sp)"},
		// JAL ra, 0 (self-referential, just checking field extraction)
		{"jal", 0x000000EF, "JAL\tra, 0"},
		// ECALL
		{"ecall", 0x00000073, "ECALL"},
		// EBREAK
		{"ebreak", 0x00100073, "EBREAK"},
	}

	d := disasm.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vm.Decode[string](d, tt.word)
			if got != tt.want {
				t.Errorf("Decode(0x%08X) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestDisassembleCompressedInstructions(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want string
	}{
		// C.ADDI a0, 1 (quadrant 01, funct3 000, rd/rs1=a0=x10)
		{"c.addi", 0x0505, "C.ADDI\ta0, 1"},
		// C.NOP
		{"c.nop", 0x0001, "C.NOP"},
		// C.EBREAK
		{"c.ebreak", 0x9002, "C.EBREAK"},
	}

	d := disasm.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vm.Decode[string](d, tt.word)
			if got != tt.want {
				t.Errorf("Decode(0x%04X) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestIllegalInstruction(t *testing.T) {
	d := disasm.New()
	got := vm.Decode[string](d, 0xFFFFFFFF)
	want := "ILLEGAL\t0xffffffff"
	if got != want {
		t.Errorf("Decode(illegal) = %q, want %q", got, want)
	}
}
