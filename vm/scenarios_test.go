package vm_test

import (
	"testing"

	"github.com/rv32emu/rv32emu/vm"
)

// Six end-to-end programs, each a literal encoded image, each asserted
// against its final register/pc/trap state.

func TestScenarioAddTwoImmediates(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		addi(vm.RegA0, vm.RegZero, 5),
		addi(vm.RegA1, vm.RegZero, 7),
		add(vm.RegA2, vm.RegA0, vm.RegA1),
		ebreak,
	)
	runToTrap(v, image, 10)

	if !v.CPU.Trapped() || v.CPU.TrapCause().Kind != vm.Breakpoint {
		t.Fatalf("trap = %v, want Breakpoint", v.CPU.TrapCause())
	}
	if got := v.CPU.Rx(vm.RegA0); got != 5 {
		t.Errorf("x[a0] = %d, want 5", got)
	}
	if got := v.CPU.Rx(vm.RegA1); got != 7 {
		t.Errorf("x[a1] = %d, want 7", got)
	}
	if got := v.CPU.Rx(vm.RegA2); got != 12 {
		t.Errorf("x[a2] = %d, want 12", got)
	}
}

func TestScenarioSignedOverflowDivision(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		lui(vm.RegA0, 0x80000000),
		addi(vm.RegA1, vm.RegZero, -1),
		div(vm.RegA2, vm.RegA0, vm.RegA1),
		ebreak,
	)
	runToTrap(v, image, 10)

	if !v.CPU.Trapped() || v.CPU.TrapCause().Kind != vm.Breakpoint {
		t.Fatalf("trap = %v, want Breakpoint", v.CPU.TrapCause())
	}
	if got := v.CPU.Rx(vm.RegA2); got != 0x80000000 {
		t.Errorf("x[a2] = 0x%08x, want 0x80000000", got)
	}
}

func TestScenarioLoadByteSignExtension(t *testing.T) {
	v := newTestVM()
	// a0 <- RAMStart+0x100 via lui+addi (RAMStart is itself 4K-aligned,
	// so lui alone lands exactly on it); that address holds the 0xFF
	// fixture byte, clear of the program image at RAMStart.
	image := assembleWords(
		lui(vm.RegA0, vm.RAMStart),
		addi(vm.RegA0, vm.RegA0, 0x100),
		lb(vm.RegA1, vm.RegA0, 0),
		ebreak,
	)
	if err := v.CPU.Mem.WriteBytes(vm.RAMStart, image); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	if err := v.CPU.Mem.Write8(vm.RAMStart+0x100, 0xFF); err != nil {
		t.Fatalf("Write8 fixture byte: %v", err)
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
	if got := v.CPU.Rx(vm.RegA1); got != 0xFFFFFFFF {
		t.Errorf("x[a1] = 0x%08x, want 0xFFFFFFFF (sign-extended byte)", got)
	}
}

func TestScenarioBranchTakenAndNotTaken(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		addi(vm.RegA0, vm.RegZero, 3),
		addi(vm.RegA1, vm.RegZero, 3),
		beq(vm.RegA0, vm.RegA1, 8), // taken: skips the next addi
		addi(vm.RegA2, vm.RegZero, 1),
		addi(vm.RegA2, vm.RegZero, 2),
		ebreak,
	)
	runToTrap(v, image, 10)

	if !v.CPU.Trapped() || v.CPU.TrapCause().Kind != vm.Breakpoint {
		t.Fatalf("trap = %v, want Breakpoint", v.CPU.TrapCause())
	}
	if got := v.CPU.Rx(vm.RegA2); got != 2 {
		t.Errorf("x[a2] = %d, want 2 (branch taken, first addi skipped)", got)
	}
}

// c.j +4 at RAMStart jumps clean over an illegal compressed word at
// RAMStart+2, landing on an ebreak at RAMStart+4.
func TestScenarioCompressedJumpOverIllegal(t *testing.T) {
	v := newTestVM()
	image := make([]byte, 0, 8)
	image = append(image, 0x11, 0xA0) // c.j +4
	image = append(image, 0x00, 0x20) // unmatched quadrant-00 pattern: illegal
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
		t.Fatalf("trap = %v, want Breakpoint (illegal word must be jumped over, not executed)", v.CPU.TrapCause())
	}
	if got := v.CPU.PC(); got != vm.RAMStart+4 {
		t.Errorf("pc = 0x%x, want 0x%x (c.j landed past the illegal word)", got, vm.RAMStart+4)
	}
}

// Storing a byte to an address inside the read-only ROM segment traps
// as a store access fault; the trailing ebreak is never reached.
func TestScenarioStoreToReadOnlyROM(t *testing.T) {
	v := newTestVM()
	const romAddr = 0x100
	image := assembleWords(
		addi(vm.RegA0, vm.RegZero, romAddr),
		sb(vm.RegA0, vm.RegZero, 0),
		ebreak,
	)
	runToTrap(v, image, 10)

	if !v.CPU.Trapped() {
		t.Fatal("store to ROM did not trap")
	}
	cause := v.CPU.TrapCause()
	if cause.Kind != vm.StoreAccessFault {
		t.Errorf("trap kind = %v, want StoreAccessFault", cause.Kind)
	}
	if cause.Addr != romAddr {
		t.Errorf("fault addr = 0x%x, want 0x%x", cause.Addr, romAddr)
	}
}
