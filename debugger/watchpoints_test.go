package debugger

import (
	"testing"

	"github.com/rvsim/rv64sim/core"
)

func newTestCPU() *core.CPU {
	return core.NewCPU(core.NewMemory())
}

func TestWatchpointManager_RegisterChangeFires(t *testing.T) {
	cpu := newTestCPU()
	wm := NewWatchpointManager()
	wp := wm.AddRegisterWatch(5)

	if err := wm.Init(wp.ID, cpu); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if _, hit := wm.Check(cpu); hit {
		t.Fatal("expected no hit before register changes")
	}

	cpu.X.Write(5, 0x42)

	got, hit := wm.Check(cpu)
	if !hit || got.ID != wp.ID {
		t.Fatalf("Check = %v, %v; want a hit on watchpoint %d", got, hit, wp.ID)
	}
	if got.HitCount != 1 {
		t.Fatalf("HitCount = %d, want 1", got.HitCount)
	}
}

func TestWatchpointManager_MemoryChangeFires(t *testing.T) {
	cpu := newTestCPU()
	wm := NewWatchpointManager()
	wp := wm.AddMemoryWatch(0x1000)
	_ = wm.Init(wp.ID, cpu)

	cpu.Mem.WriteUintLE(0x1000, 7, 8)

	_, hit := wm.Check(cpu)
	if !hit {
		t.Fatal("expected memory watchpoint to fire")
	}
}

func TestWatchpointManager_DisabledNeverFires(t *testing.T) {
	cpu := newTestCPU()
	wm := NewWatchpointManager()
	wp := wm.AddRegisterWatch(1)
	_ = wm.Init(wp.ID, cpu)
	_ = wm.SetEnabled(wp.ID, false)

	cpu.X.Write(1, 99)

	if _, hit := wm.Check(cpu); hit {
		t.Fatal("disabled watchpoint should not fire")
	}
}

func TestWatchpointManager_Delete(t *testing.T) {
	wm := NewWatchpointManager()
	wp := wm.AddCSRWatch(core.CSRMcause)

	if err := wm.Delete(wp.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if wm.Count() != 0 {
		t.Fatalf("Count = %d, want 0", wm.Count())
	}
}
