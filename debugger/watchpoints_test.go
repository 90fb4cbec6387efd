package debugger

import (
	"testing"

	"github.com/rv32emu/rv32emu/vm"
)

func TestAddWatchpointAssignsIncreasingIDs(t *testing.T) {
	wm := NewWatchpointManager()

	wp1 := wm.AddWatchpoint(WatchWrite, "a0", 0, true, int(vm.RegA0))
	wp2 := wm.AddWatchpoint(WatchWrite, "[0x4000]", 0x4000, false, 0)

	if wp1.ID == wp2.ID {
		t.Fatalf("two distinct watchpoints got the same ID %d", wp1.ID)
	}
	if wm.Count() != 2 {
		t.Errorf("Count() = %d, want 2", wm.Count())
	}
}

func TestCheckWatchpointsDetectsRegisterChange(t *testing.T) {
	wm := NewWatchpointManager()
	machine := vm.NewVM(func(byte) {})
	wp := wm.AddWatchpoint(WatchWrite, "a0", 0, true, int(vm.RegA0))

	if err := wm.InitializeWatchpoint(wp.ID, machine); err != nil {
		t.Fatalf("InitializeWatchpoint: %v", err)
	}
	if _, changed := wm.CheckWatchpoints(machine); changed {
		t.Fatal("CheckWatchpoints reported a change before any write")
	}

	machine.CPU.Wx(vm.RegA0, 42)

	hit, changed := wm.CheckWatchpoints(machine)
	if !changed {
		t.Fatal("CheckWatchpoints missed the register write")
	}
	if hit.ID != wp.ID {
		t.Errorf("hit watchpoint ID = %d, want %d", hit.ID, wp.ID)
	}
	if hit.LastValue != 42 {
		t.Errorf("hit.LastValue = %d, want 42", hit.LastValue)
	}
	if hit.HitCount != 1 {
		t.Errorf("hit.HitCount = %d, want 1", hit.HitCount)
	}
}

// The pc sentinel register (32) reads CPU.PC() rather than an x-register.
func TestCheckWatchpointsPCSentinel(t *testing.T) {
	wm := NewWatchpointManager()
	machine := vm.NewVM(func(byte) {})
	wp := wm.AddWatchpoint(WatchWrite, "pc", 0, true, 32)

	if err := wm.InitializeWatchpoint(wp.ID, machine); err != nil {
		t.Fatalf("InitializeWatchpoint: %v", err)
	}

	machine.SetEntryPoint(vm.RAMStart + 4)

	hit, changed := wm.CheckWatchpoints(machine)
	if !changed {
		t.Fatal("CheckWatchpoints missed the pc change")
	}
	if hit.LastValue != vm.RAMStart+4 {
		t.Errorf("hit.LastValue = 0x%x, want 0x%x", hit.LastValue, vm.RAMStart+4)
	}
}

func TestCheckWatchpointsSkipsDisabled(t *testing.T) {
	wm := NewWatchpointManager()
	machine := vm.NewVM(func(byte) {})
	wp := wm.AddWatchpoint(WatchWrite, "a0", 0, true, int(vm.RegA0))
	wm.InitializeWatchpoint(wp.ID, machine)
	wm.DisableWatchpoint(wp.ID)

	machine.CPU.Wx(vm.RegA0, 42)

	if _, changed := wm.CheckWatchpoints(machine); changed {
		t.Error("CheckWatchpoints fired for a disabled watchpoint")
	}
}

func TestDeleteWatchpoint(t *testing.T) {
	wm := NewWatchpointManager()
	wp := wm.AddWatchpoint(WatchWrite, "a0", 0, true, int(vm.RegA0))

	if err := wm.DeleteWatchpoint(wp.ID); err != nil {
		t.Fatalf("DeleteWatchpoint: %v", err)
	}
	if wm.GetWatchpoint(wp.ID) != nil {
		t.Error("watchpoint still retrievable after delete")
	}
	if err := wm.DeleteWatchpoint(wp.ID); err == nil {
		t.Error("deleting an already-deleted watchpoint should error")
	}
}
