package debugger

import (
	"fmt"
	"sync"

	"github.com/rvsim/rv64sim/core"
)

// WatchKind distinguishes what a Watchpoint observes. Detection is by value
// change, not true read/write interception: the CPU has no memory-access
// hook, so every kind behaves the same way underneath.
type WatchKind int

const (
	WatchRegister WatchKind = iota
	WatchMemory
	WatchCSR
)

// Watchpoint fires when the value it names differs from the value observed
// at the previous check.
type Watchpoint struct {
	ID        int
	Kind      WatchKind
	Register  uint64 // X register index, when Kind == WatchRegister
	Address   uint64 // memory address, when Kind == WatchMemory
	CSR       uint64 // CSR index, when Kind == WatchCSR
	Enabled   bool
	LastValue uint64
	HitCount  int
}

// WatchpointManager tracks the live set of watchpoints for a debugger
// session.
type WatchpointManager struct {
	mu          sync.RWMutex
	watchpoints map[int]*Watchpoint
	nextID      int
}

// NewWatchpointManager returns an empty manager.
func NewWatchpointManager() *WatchpointManager {
	return &WatchpointManager{
		watchpoints: make(map[int]*Watchpoint),
		nextID:      1,
	}
}

// AddRegisterWatch arms a watchpoint on X register reg.
func (wm *WatchpointManager) AddRegisterWatch(reg uint64) *Watchpoint {
	return wm.add(&Watchpoint{Kind: WatchRegister, Register: reg, Enabled: true})
}

// AddMemoryWatch arms a watchpoint on the 64-bit word at addr.
func (wm *WatchpointManager) AddMemoryWatch(addr uint64) *Watchpoint {
	return wm.add(&Watchpoint{Kind: WatchMemory, Address: addr, Enabled: true})
}

// AddCSRWatch arms a watchpoint on CSR idx.
func (wm *WatchpointManager) AddCSRWatch(idx uint64) *Watchpoint {
	return wm.add(&Watchpoint{Kind: WatchCSR, CSR: idx, Enabled: true})
}

func (wm *WatchpointManager) add(wp *Watchpoint) *Watchpoint {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wp.ID = wm.nextID
	wm.watchpoints[wp.ID] = wp
	wm.nextID++
	return wp
}

// Delete removes a watchpoint by ID.
func (wm *WatchpointManager) Delete(id int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	if _, ok := wm.watchpoints[id]; !ok {
		return fmt.Errorf("watchpoint %d not found", id)
	}
	delete(wm.watchpoints, id)
	return nil
}

// SetEnabled arms or disarms a watchpoint by ID.
func (wm *WatchpointManager) SetEnabled(id int, enabled bool) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wp, ok := wm.watchpoints[id]
	if !ok {
		return fmt.Errorf("watchpoint %d not found", id)
	}
	wp.Enabled = enabled
	return nil
}

// All returns every watchpoint, in no particular order.
func (wm *WatchpointManager) All() []*Watchpoint {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	result := make([]*Watchpoint, 0, len(wm.watchpoints))
	for _, wp := range wm.watchpoints {
		result = append(result, wp)
	}
	return result
}

func (wp *Watchpoint) valueOf(cpu *core.CPU) uint64 {
	switch wp.Kind {
	case WatchRegister:
		return cpu.X.Read(wp.Register)
	case WatchCSR:
		return cpu.CSR.Read(wp.CSR)
	default:
		return cpu.Mem.ReadUint64LE(wp.Address)
	}
}

// Check scans every enabled watchpoint and returns the first whose value
// has changed since the last Check or Init call.
func (wm *WatchpointManager) Check(cpu *core.CPU) (*Watchpoint, bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	for _, wp := range wm.watchpoints {
		if !wp.Enabled {
			continue
		}
		current := wp.valueOf(cpu)
		if current != wp.LastValue {
			wp.HitCount++
			wp.LastValue = current
			return wp, true
		}
	}
	return nil, false
}

// Init records the current value for a watchpoint without treating it as a
// hit, so the first Check after arming doesn't fire spuriously.
func (wm *WatchpointManager) Init(id int, cpu *core.CPU) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wp, ok := wm.watchpoints[id]
	if !ok {
		return fmt.Errorf("watchpoint %d not found", id)
	}
	wp.LastValue = wp.valueOf(cpu)
	return nil
}

// Clear removes all watchpoints.
func (wm *WatchpointManager) Clear() {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.watchpoints = make(map[int]*Watchpoint)
}

// Count reports the number of watchpoints, enabled or not.
func (wm *WatchpointManager) Count() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return len(wm.watchpoints)
}
