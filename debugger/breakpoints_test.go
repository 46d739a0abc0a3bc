package debugger

import "testing"

func TestBreakpointManager_AddAndHas(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x1000, false, "")

	if !bm.Has(0x1000) {
		t.Fatal("expected breakpoint at 0x1000 to be armed")
	}
	if bm.Has(0x2000) {
		t.Fatal("expected no breakpoint at 0x2000")
	}
}

func TestBreakpointManager_DeleteAt(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x1000, false, "")

	if err := bm.DeleteAt(0x1000); err != nil {
		t.Fatalf("DeleteAt: %v", err)
	}
	if bm.Has(0x1000) {
		t.Fatal("expected breakpoint to be gone")
	}
	if err := bm.DeleteAt(0x1000); err == nil {
		t.Fatal("expected error deleting an already-removed breakpoint")
	}
}

func TestBreakpointManager_TemporaryRemovedOnHit(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.Add(0x2000, true, "")

	hit := bm.ProcessHit(0x2000)
	if hit == nil || hit.ID != bp.ID {
		t.Fatalf("ProcessHit = %v, want a copy of %v", hit, bp)
	}
	if bm.Has(0x2000) {
		t.Fatal("temporary breakpoint should be removed after one hit")
	}
}

func TestBreakpointManager_PermanentSurvivesHit(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x3000, false, "")

	bm.ProcessHit(0x3000)
	bm.ProcessHit(0x3000)

	bp := bm.All()[0]
	if bp.HitCount != 2 {
		t.Fatalf("HitCount = %d, want 2", bp.HitCount)
	}
	if !bm.Has(0x3000) {
		t.Fatal("permanent breakpoint should survive hits")
	}
}

func TestBreakpointManager_SetEnabled(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.Add(0x4000, false, "")

	if err := bm.SetEnabled(bp.ID, false); err != nil {
		t.Fatalf("SetEnabled: %v", err)
	}
	if bm.Has(0x4000) {
		t.Fatal("disabled breakpoint should not be armed")
	}
}
