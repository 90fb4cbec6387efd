package vm_test

import (
	"math"
	"testing"

	"github.com/rv32emu/rv32emu/vm"
)

const opOpFp = 0x53

func fmvXW(rd, rs1 vm.Reg) uint32 {
	return rType(opOpFp, 0b000, 0b1110000, rd, rs1, 0)
}

func fmvWX(rd, rs1 vm.Reg) uint32 {
	return rType(opOpFp, 0b000, 0b1111000, rd, rs1, 0)
}

// fmv.x.w composed with fmv.w.x is the identity on bit patterns: the
// float register's raw bits round-trip through an integer register and
// back unchanged, since neither op performs a numeric conversion.
func TestFmvRoundTripIsBitIdentity(t *testing.T) {
	v := newTestVM()
	pattern := math.Float32bits(-0.0)
	v.CPU.Wf(vm.RegT0, math.Float32frombits(pattern))

	image := assembleWords(
		fmvXW(vm.RegA0, vm.RegT0),
		fmvWX(vm.RegT1, vm.RegA0),
		fmvXW(vm.RegA1, vm.RegT1),
		ebreak,
	)
	runToTrap(v, image, 10)

	if got := v.CPU.Rx(vm.RegA1); got != pattern {
		t.Errorf("round-tripped bits = 0x%08x, want 0x%08x", got, pattern)
	}
}

// auipc rd, 0 followed by jalr zero, rd, 0 sets pc back to the address
// of the auipc itself: auipc captures pc_of_auipc + 0, and jalr jumps
// to that captured value + 0.
func TestAuipcJalrRoundTripsToAuipcAddress(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		auipc(vm.RegT0, 0),
		jalr(vm.RegZero, vm.RegT0, 0),
		ebreak,
	)
	if err := v.CPU.Mem.WriteBytes(vm.RAMStart, image); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	v.SetEntryPoint(vm.RAMStart)

	auipcAddr := v.CPU.PC()
	if err := v.Step(); err != nil { // auipc
		t.Fatalf("Step (auipc): %v", err)
	}
	if err := v.Step(); err != nil { // jalr
		t.Fatalf("Step (jalr): %v", err)
	}
	v.CPU.Fetch() // commits the jump target into pc

	if got := v.CPU.PC(); got != auipcAddr {
		t.Errorf("pc after auipc/jalr round trip = 0x%x, want 0x%x (address of auipc)", got, auipcAddr)
	}
}

// lui rd, imm followed by addi rd, rd, 0 yields x[rd] = imm << 12 with
// no further transformation, since addi rd, rd, 0 is a pure identity.
func TestLuiAddiRoundTripsToShiftedImmediate(t *testing.T) {
	v := newTestVM()
	image := assembleWords(
		lui(vm.RegA0, 0x12345000),
		addi(vm.RegA0, vm.RegA0, 0),
		ebreak,
	)
	runToTrap(v, image, 10)

	if got := v.CPU.Rx(vm.RegA0); got != 0x12345000 {
		t.Errorf("x[a0] = 0x%08x, want 0x12345000", got)
	}
}
