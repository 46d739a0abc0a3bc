// Package debugger provides breakpoint- and watchpoint-driven
// single-stepping over a core.CPU plus a small tcell/tview text UI for
// inspecting register, CSR, and memory state, scaled down from the
// emulator's original debugger to the handful of concerns an RV64
// instruction-level simulator needs.
package debugger

import (
	"fmt"

	"github.com/rvsim/rv64sim/core"
)

// Debugger wraps a CPU with breakpoint and watchpoint management and step
// control.
type Debugger struct {
	CPU *core.CPU

	Breaks      *BreakpointManager
	Watch       *WatchpointManager
	Eval        *ExpressionEvaluator
	History     *CommandHistory
	Running     bool
	LastCommand string

	// Output accumulates rendered command responses for the TUI's output
	// pane and for headless (non-TUI) use.
	Output []string
}

// NewDebugger wraps cpu for interactive inspection.
func NewDebugger(c *core.CPU) *Debugger {
	return &Debugger{
		CPU:     c,
		Breaks:  NewBreakpointManager(),
		Watch:   NewWatchpointManager(),
		Eval:    NewExpressionEvaluator(),
		History: NewCommandHistory(),
	}
}

// SetBreakpoint arms a (non-temporary, unconditional) breakpoint at addr.
func (d *Debugger) SetBreakpoint(addr uint64) {
	d.Breaks.Add(addr, false, "")
}

// SetConditionalBreakpoint arms a breakpoint that only fires when
// condition evaluates nonzero.
func (d *Debugger) SetConditionalBreakpoint(addr uint64, condition string) {
	d.Breaks.Add(addr, false, condition)
}

// ClearBreakpoint disarms the breakpoint at addr.
func (d *Debugger) ClearBreakpoint(addr uint64) {
	_ = d.Breaks.DeleteAt(addr)
}

// HasBreakpoint reports whether an enabled breakpoint sits at addr.
func (d *Debugger) HasBreakpoint(addr uint64) bool {
	return d.Breaks.Has(addr)
}

// StepOne executes a single instruction.
func (d *Debugger) StepOne() error {
	if err := d.CPU.Step(); err != nil {
		return fmt.Errorf("debugger: step at pc=0x%016x: %w", d.CPU.PC, err)
	}
	return nil
}

// breakpointFires reports whether the breakpoint at addr is armed and its
// condition (if any) currently holds.
func (d *Debugger) breakpointFires(addr uint64) *Breakpoint {
	if !d.HasBreakpoint(addr) {
		return nil
	}
	bp := d.Breaks.ProcessHit(addr)
	if bp == nil {
		return nil
	}
	if bp.Condition == "" {
		return bp
	}
	ok, err := d.Eval.Evaluate(bp.Condition, d.CPU)
	if err != nil {
		d.log("breakpoint %d condition error: %v", bp.ID, err)
		return bp
	}
	if !ok {
		return nil
	}
	return bp
}

// Continue steps until a breakpoint or watchpoint fires, an error occurs,
// or maxSteps is exhausted (a safety bound for headless use; 0 means
// unbounded).
func (d *Debugger) Continue(maxSteps int) (stepsRun int, hitBreakpoint bool, err error) {
	for maxSteps == 0 || stepsRun < maxSteps {
		if err := d.StepOne(); err != nil {
			return stepsRun, false, err
		}
		stepsRun++
		if wp, hit := d.Watch.Check(d.CPU); hit {
			d.log("watchpoint %d fired: new value 0x%x", wp.ID, wp.LastValue)
			return stepsRun, true, nil
		}
		if bp := d.breakpointFires(d.CPU.PC); bp != nil {
			d.log("breakpoint %d hit at pc=0x%016x (count %d)", bp.ID, bp.Address, bp.HitCount)
			return stepsRun, true, nil
		}
	}
	return stepsRun, false, nil
}

// log appends a line to Output, bounding growth.
func (d *Debugger) log(format string, args ...interface{}) {
	d.Output = append(d.Output, fmt.Sprintf(format, args...))
	if len(d.Output) > 10000 {
		d.Output = d.Output[len(d.Output)-10000:]
	}
}
