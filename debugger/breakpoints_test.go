package debugger

import "testing"

func TestAddBreakpointAssignsIncreasingIDs(t *testing.T) {
	bm := NewBreakpointManager()

	bp1 := bm.AddBreakpoint(0x1000, false, "")
	bp2 := bm.AddBreakpoint(0x2000, false, "")

	if bp1.ID == bp2.ID {
		t.Fatalf("two distinct breakpoints got the same ID %d", bp1.ID)
	}
	if bm.Count() != 2 {
		t.Errorf("Count() = %d, want 2", bm.Count())
	}
}

func TestAddBreakpointAtExistingAddressUpdatesInPlace(t *testing.T) {
	bm := NewBreakpointManager()

	first := bm.AddBreakpoint(0x1000, false, "")
	second := bm.AddBreakpoint(0x1000, true, "x > 0")

	if second.ID != first.ID {
		t.Errorf("re-adding at the same address allocated a new ID (%d != %d)", second.ID, first.ID)
	}
	if bm.Count() != 1 {
		t.Errorf("Count() = %d, want 1 (duplicate address must not grow the set)", bm.Count())
	}
	if !bm.GetBreakpoint(0x1000).Temporary {
		t.Error("re-added breakpoint did not pick up Temporary=true")
	}
	if bm.GetBreakpoint(0x1000).Condition != "x > 0" {
		t.Errorf("condition = %q, want %q", bm.GetBreakpoint(0x1000).Condition, "x > 0")
	}
}

func TestDeleteBreakpointByID(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.AddBreakpoint(0x1000, false, "")

	if err := bm.DeleteBreakpoint(bp.ID); err != nil {
		t.Fatalf("DeleteBreakpoint: %v", err)
	}
	if bm.HasBreakpoint(0x1000) {
		t.Error("breakpoint still present after delete")
	}
	if err := bm.DeleteBreakpoint(bp.ID); err == nil {
		t.Error("deleting an already-deleted breakpoint should error")
	}
}

func TestEnableDisableBreakpoint(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.AddBreakpoint(0x1000, false, "")

	if err := bm.DisableBreakpoint(bp.ID); err != nil {
		t.Fatalf("DisableBreakpoint: %v", err)
	}
	if bm.GetBreakpointByID(bp.ID).Enabled {
		t.Error("breakpoint still enabled after DisableBreakpoint")
	}

	if err := bm.EnableBreakpoint(bp.ID); err != nil {
		t.Fatalf("EnableBreakpoint: %v", err)
	}
	if !bm.GetBreakpointByID(bp.ID).Enabled {
		t.Error("breakpoint still disabled after EnableBreakpoint")
	}
}

// ProcessHit increments HitCount and auto-removes temporary breakpoints
// after their first hit, but leaves permanent ones in place.
func TestProcessHitRemovesTemporaryBreakpoint(t *testing.T) {
	bm := NewBreakpointManager()
	bm.AddBreakpoint(0x1000, true, "")
	bm.AddBreakpoint(0x2000, false, "")

	hit := bm.ProcessHit(0x1000)
	if hit == nil || hit.HitCount != 1 {
		t.Fatalf("ProcessHit(temporary) = %+v, want HitCount 1", hit)
	}
	if bm.HasBreakpoint(0x1000) {
		t.Error("temporary breakpoint survived its first hit")
	}

	hit = bm.ProcessHit(0x2000)
	if hit == nil || hit.HitCount != 1 {
		t.Fatalf("ProcessHit(permanent) = %+v, want HitCount 1", hit)
	}
	if !bm.HasBreakpoint(0x2000) {
		t.Error("permanent breakpoint removed after a hit")
	}

	if hit := bm.ProcessHit(0x9999); hit != nil {
		t.Errorf("ProcessHit on unset address = %+v, want nil", hit)
	}
}

func TestClearRemovesAllBreakpoints(t *testing.T) {
	bm := NewBreakpointManager()
	bm.AddBreakpoint(0x1000, false, "")
	bm.AddBreakpoint(0x2000, false, "")

	bm.Clear()

	if bm.Count() != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", bm.Count())
	}
	if len(bm.GetAllBreakpoints()) != 0 {
		t.Error("GetAllBreakpoints() not empty after Clear()")
	}
}
