package vm_test

import (
	"testing"

	"github.com/rv32emu/rv32emu/vm"
)

// Signed division overflow (MIN_INT / -1) yields MIN_INT back, not a
// trap: RV32M defines this as the one case div doesn't route through
// ordinary two's-complement division.
func TestDivSignedOverflowDoesNotTrap(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		lui(vm.RegA0, 0x80000000),
		addi(vm.RegA1, vm.RegZero, -1),
		div(vm.RegA2, vm.RegA0, vm.RegA1),
		ebreak,
	)
	runToTrap(v, image, 10)

	if !v.CPU.Trapped() || v.CPU.TrapCause().Kind != vm.Breakpoint {
		t.Fatalf("expected to reach the trailing ebreak, got trap=%v", v.CPU.TrapCause())
	}
	if got := v.CPU.Rx(vm.RegA2); got != 0x80000000 {
		t.Errorf("x[a2] = 0x%08x, want 0x80000000", got)
	}
}

// divu by zero yields all-ones; remu by zero yields the dividend
// unchanged. Neither traps.
func TestDivuRemuByZero(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		addi(vm.RegA0, vm.RegZero, 42),
		addi(vm.RegA1, vm.RegZero, 0),
		divu(vm.RegA2, vm.RegA0, vm.RegA1),
		remu(vm.RegA3, vm.RegA0, vm.RegA1),
		ebreak,
	)
	runToTrap(v, image, 10)

	if got := v.CPU.Rx(vm.RegA2); got != 0xFFFFFFFF {
		t.Errorf("divu by zero = 0x%08x, want 0xFFFFFFFF", got)
	}
	if got := v.CPU.Rx(vm.RegA3); got != 42 {
		t.Errorf("remu by zero = %d, want dividend 42", got)
	}
}

// Shift amounts are always masked to their low 5 bits: a shift by 32
// behaves identically to a shift by 0.
func TestShiftAmountMaskedToFiveBits(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		addi(vm.RegA0, vm.RegZero, 1),
		addi(vm.RegA1, vm.RegZero, 32),
		sll(vm.RegA2, vm.RegA0, vm.RegA1),
		ebreak,
	)
	runToTrap(v, image, 10)

	if got := v.CPU.Rx(vm.RegA2); got != 1 {
		t.Errorf("1 sll 32 = %d, want 1 (shift amount masked to 0)", got)
	}
}

// A byte load or store two bytes past the end of RAM (beyond the TTY
// registers that follow it) traps with the
// faulting address, rather than silently reading/writing adjacent
// memory.
func TestByteAccessPastRAMTraps(t *testing.T) {
	pastRAM := uint32(vm.RAMStart + vm.RAMSize + 2) // clear of the TTY registers too

	t.Run("load", func(t *testing.T) {
		v := newTestVM()
		image := assembleWords(
			lui(vm.RegA0, pastRAM&0xfffff000),
			addi(vm.RegA0, vm.RegA0, int32(pastRAM&0xfff)),
			lb(vm.RegA1, vm.RegA0, 0),
			ebreak,
		)
		runToTrap(v, image, 10)

		if !v.CPU.Trapped() {
			t.Fatal("load past RAM did not trap")
		}
		cause := v.CPU.TrapCause()
		if cause.Kind != vm.LoadAccessFault {
			t.Errorf("trap kind = %v, want LoadAccessFault", cause.Kind)
		}
		if cause.Addr != pastRAM {
			t.Errorf("fault addr = 0x%x, want 0x%x", cause.Addr, pastRAM)
		}
	})

	t.Run("store", func(t *testing.T) {
		v := newTestVM()
		image := assembleWords(
			lui(vm.RegA0, pastRAM&0xfffff000),
			addi(vm.RegA0, vm.RegA0, int32(pastRAM&0xfff)),
			sb(vm.RegA0, vm.RegZero, 0),
			ebreak,
		)
		runToTrap(v, image, 10)

		if !v.CPU.Trapped() {
			t.Fatal("store past RAM did not trap")
		}
		cause := v.CPU.TrapCause()
		if cause.Kind != vm.StoreAccessFault {
			t.Errorf("trap kind = %v, want StoreAccessFault", cause.Kind)
		}
		if cause.Addr != pastRAM {
			t.Errorf("fault addr = 0x%x, want 0x%x", cause.Addr, pastRAM)
		}
	})
}

// jalr with rd == rs1 uses rs1's old value for the jump target, since
// the handler reads rs1 before writing rd. auipc a0,0; addi a0,a0,16
// parks base+16 in a0; jalr a0,a0,0 must jump there (not to the link
// address it is about to overwrite a0 with).
func TestJalrAliasedRdRs1UsesOldValue(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		auipc(vm.RegA0, 0),         // a0 <- base
		addi(vm.RegA0, vm.RegA0, 16), // a0 <- base+16 (jump target)
		jalr(vm.RegA0, vm.RegA0, 0),   // rd == rs1
		ebreak,                        // at base+12, skipped over by the jump
		ebreak,                        // at base+16, the actual landing site
	)
	linkAddr := uint32(vm.RAMStart + 12)
	target := uint32(vm.RAMStart + 16)

	runToTrap(v, image, 10)

	if !v.CPU.Trapped() || v.CPU.TrapCause().Kind != vm.Breakpoint {
		t.Fatalf("did not land on the ebreak at the jump target: trap=%v", v.CPU.TrapCause())
	}
	if got := v.CPU.PC(); got != target {
		t.Errorf("pc = 0x%x, want 0x%x (jalr target, old x[a0])", got, target)
	}
	if got := v.CPU.Rx(vm.RegA0); got != linkAddr {
		t.Errorf("x[a0] = 0x%x, want link address 0x%x", got, linkAddr)
	}
}
