package vm_test

import (
	"testing"

	"github.com/rv32emu/rv32emu/disasm"
	"github.com/rv32emu/rv32emu/rv32ir"
	"github.com/rv32emu/rv32emu/vm"
)

// A write to x0 never sticks: every handler that would write rd=0
// leaves register 0 reading 0.
func TestZeroRegisterStaysZero(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		addi(vm.RegZero, vm.RegZero, 5),
		add(vm.RegZero, vm.RegZero, vm.RegZero),
		ebreak,
	)
	runToTrap(v, image, 10)

	if got := v.CPU.Rx(vm.RegZero); got != 0 {
		t.Errorf("x[0] = %d, want 0", got)
	}
}

// Fetch advances pc by 2 for a compressed instruction and by 4 for a
// base one, keyed off the low two bits of the fetched word.
func TestFetchAdvancesByEncodingWidth(t *testing.T) {
	v := newTestVM()

	// C.NOP (0x0001) followed by a base ebreak.
	img := append([]byte{0x01, 0x00}, assembleWords(ebreak)...)
	if err := v.CPU.Mem.WriteBytes(vm.RAMStart, img); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	v.SetEntryPoint(vm.RAMStart)

	c := rv32ir.Decode(0x0001)
	if c.Op != rv32ir.OpCNop {
		t.Fatalf("0x0001 decoded as %v, want c.nop (sanity check on fixture)", c.Op)
	}

	if !v.CPU.Step() {
		t.Fatalf("step on compressed nop trapped: %v", v.CPU.TrapCause())
	}
	if got := v.CPU.PC(); got != vm.RAMStart {
		t.Fatalf("pc after first (compressed) instruction = 0x%x, want 0x%x", got, vm.RAMStart)
	}

	second := v.CPU.Fetch()
	if got := v.CPU.PC(); got != vm.RAMStart+2 {
		t.Errorf("pc after compressed instruction = 0x%x, want 0x%x", got, vm.RAMStart+2)
	}
	if second != ebreak {
		t.Errorf("second fetch word = 0x%08x, want ebreak 0x%08x", second, ebreak)
	}
}

// For a non-trapping instruction that doesn't touch control flow,
// next_pc lands exactly one encoding width past pc.
func TestNextPCIsPCPlusSize(t *testing.T) {
	v := newTestVM()
	image := assembleWords(addi(vm.RegA0, vm.RegZero, 1), ebreak)
	if err := v.CPU.Mem.WriteBytes(vm.RAMStart, image); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	v.SetEntryPoint(vm.RAMStart)

	start := v.CPU.PC()
	if err := v.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	v.CPU.Fetch() // commits next_pc into pc
	if v.CPU.PC() != start+4 {
		t.Errorf("next_pc after addi = 0x%x, want 0x%x", v.CPU.PC(), start+4)
	}
}

// The decoder is total: an unrecognized 32-bit pattern still produces
// exactly one handler call, Illegal, rather than panicking or silently
// doing nothing.
func TestDecoderTotalityOnUnrecognizedWord(t *testing.T) {
	cpu := vm.NewCPU(vm.NewMemory(func(byte) {}))
	vm.Decode[struct{}](cpu, 0xFFFFFFFF)
	if !cpu.Trapped() {
		t.Fatal("decoding 0xFFFFFFFF did not trap")
	}
	cause := cpu.TrapCause()
	if cause.Kind != vm.IllegalInstruction {
		t.Errorf("trap kind = %v, want IllegalInstruction", cause.Kind)
	}
	if cause.Word != 0xFFFFFFFF {
		t.Errorf("trap word = 0x%08x, want 0xFFFFFFFF", cause.Word)
	}
}

// CJal links ra to the address of the instruction that follows it
// (pc+2, since c.jal is itself a 16-bit encoding), not pc+4 — a call
// through the compressed encoding must not skip two extra bytes on
// return.
func TestCompressedJalLinksToPCPlusTwo(t *testing.T) {
	v := newTestVM()
	image := make([]byte, 0, 8)
	image = append(image, 0x11, 0x20) // c.jal +4
	image = append(image, 0x00, 0x20) // unmatched quadrant-00 pattern: illegal, must be jumped over
	image = append(image, assembleWords(ebreak)...)

	if err := v.CPU.Mem.WriteBytes(vm.RAMStart, image); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	v.SetEntryPoint(vm.RAMStart)
	for i := 0; i < 10; i++ {
		if err := v.Step(); err != nil {
			break
		}
		if v.CPU.Trapped() {
			break
		}
	}

	if !v.CPU.Trapped() || v.CPU.TrapCause().Kind != vm.Breakpoint {
		t.Fatalf("trap = %v, want Breakpoint", v.CPU.TrapCause())
	}
	if got := v.CPU.PC(); got != vm.RAMStart+4 {
		t.Errorf("pc = 0x%x, want 0x%x (c.jal landed past the illegal word)", got, vm.RAMStart+4)
	}
	if got := v.CPU.Rx(vm.RegRa); got != vm.RAMStart+2 {
		t.Errorf("x[ra] = 0x%x, want 0x%x (link address is pc+2 for a compressed call)", got, vm.RAMStart+2)
	}
}

// Decoding and disassembling a word is deterministic and side-effect
// free: running it twice (through two independent Consumer[T]
// implementations) yields the same results both times.
func TestDecodeDisassembleIsPureAndDeterministic(t *testing.T) {
	words := []uint32{
		add(vm.RegA0, vm.RegA1, vm.RegA2),
		addi(vm.RegA0, vm.RegA1, -4),
		jal(vm.RegRa, 0),
		0x0001, // c.addi x0, 0
	}
	for _, w := range words {
		ir1 := rv32ir.Decode(w)
		ir2 := rv32ir.Decode(w)
		if ir1 != ir2 {
			t.Errorf("rv32ir.Decode(0x%08x) not deterministic: %+v != %+v", w, ir1, ir2)
		}

		text1 := vm.Decode[string](disasm.New(), w)
		text2 := vm.Decode[string](disasm.New(), w)
		if text1 != text2 {
			t.Errorf("disasm.Decode(0x%08x) not deterministic: %q != %q", w, text1, text2)
		}
	}
}
