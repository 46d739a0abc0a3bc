package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rvsim/rv64sim/core"
)

// TUI is the text interface for the debugger: register/CSR/memory panels,
// an output log, and a command line.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application

	MainLayout   *tview.Flex
	RegisterView *tview.TextView
	CSRView      *tview.TextView
	MemoryView   *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField

	MemoryAddress uint64
}

// NewTUI builds the panel layout around debugger.
func NewTUI(debugger *Debugger) *TUI {
	t := &TUI{
		Debugger: debugger,
		App:      tview.NewApplication(),
	}
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	t.refresh()
	return t
}

func (t *TUI) initializeViews() {
	t.RegisterView = tview.NewTextView().SetDynamicColors(true)
	t.RegisterView.SetBorder(true).SetTitle(" X Registers ")

	t.CSRView = tview.NewTextView().SetDynamicColors(true)
	t.CSRView.SetBorder(true).SetTitle(" CSR ")

	t.MemoryView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	t.MemoryView.SetBorder(true).SetTitle(" Memory ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().SetLabel("(rvsim) ")
	t.CommandInput.SetBorder(true)
}

func (t *TUI) buildLayout() {
	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, 0, 2, false).
		AddItem(t.CSRView, 0, 1, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.MemoryView, 0, 2, false).
		AddItem(t.OutputView, 0, 2, false)

	panels := tview.NewFlex().
		AddItem(left, 0, 1, false).
		AddItem(right, 0, 2, false)

	t.MainLayout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(panels, 0, 1, false).
		AddItem(t.CommandInput, 3, 0, true)
}

func (t *TUI) setupKeyBindings() {
	t.CommandInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		line := strings.TrimSpace(t.CommandInput.GetText())
		t.CommandInput.SetText("")
		if line == "" {
			line = t.Debugger.LastCommand
		}
		t.Debugger.LastCommand = line
		t.Debugger.History.Add(line)
		t.runCommand(line)
		t.refresh()
	})
	t.CommandInput.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			if prev := t.Debugger.History.Previous(); prev != "" {
				t.CommandInput.SetText(prev)
			}
			return nil
		case tcell.KeyDown:
			t.CommandInput.SetText(t.Debugger.History.Next())
			return nil
		}
		return event
	})
}

// runCommand interprets a single debugger command line.
func (t *TUI) runCommand(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	d := t.Debugger
	switch fields[0] {
	case "s", "step":
		if err := d.StepOne(); err != nil {
			d.log("error: %v", err)
		}
	case "c", "continue":
		steps, hit, err := d.Continue(0)
		if err != nil {
			d.log("error after %d steps: %v", steps, err)
		} else if hit {
			d.log("breakpoint hit at pc=0x%016x after %d steps", d.CPU.PC, steps)
		}
	case "b", "break":
		if len(fields) < 2 {
			d.log("usage: break <hex addr> [condition]")
			return
		}
		addr, err := parseHex(fields[1])
		if err != nil {
			d.log("error: %v", err)
			return
		}
		if len(fields) > 2 {
			cond := strings.Join(fields[2:], " ")
			d.SetConditionalBreakpoint(addr, cond)
			d.log("breakpoint set at 0x%016x if %s", addr, cond)
		} else {
			d.SetBreakpoint(addr)
			d.log("breakpoint set at 0x%016x", addr)
		}
	case "p", "print":
		if len(fields) < 2 {
			d.log("usage: print <expression>")
			return
		}
		expr := strings.Join(fields[1:], " ")
		v, err := d.Eval.EvaluateExpression(expr, d.CPU)
		if err != nil {
			d.log("error: %v", err)
			return
		}
		d.log("%s = 0x%x", expr, v)
	case "w", "watch":
		if len(fields) < 3 {
			d.log("usage: watch reg|mem|csr <value>")
			return
		}
		v, err := parseHex(fields[2])
		if err != nil {
			d.log("error: %v", err)
			return
		}
		switch fields[1] {
		case "reg":
			d.Watch.AddRegisterWatch(v)
		case "mem":
			d.Watch.AddMemoryWatch(v)
		case "csr":
			d.Watch.AddCSRWatch(v)
		default:
			d.log("unknown watch kind: %s", fields[1])
			return
		}
		d.log("watchpoint armed on %s 0x%x", fields[1], v)
	case "m", "mem":
		if len(fields) < 2 {
			d.log("usage: mem <hex addr>")
			return
		}
		addr, err := parseHex(fields[1])
		if err != nil {
			d.log("error: %v", err)
			return
		}
		t.MemoryAddress = addr
	case "q", "quit":
		t.App.Stop()
	default:
		d.log("unknown command: %s", fields[0])
	}
}

func parseHex(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	var v uint64
	if _, err := fmt.Sscanf(s, "%x", &v); err != nil {
		return 0, fmt.Errorf("invalid hex address %q: %w", s, err)
	}
	return v, nil
}

// refresh re-renders every panel from current CPU state.
func (t *TUI) refresh() {
	t.renderRegisters()
	t.renderCSRs()
	t.renderMemory()
	t.renderOutput()
}

func (t *TUI) renderRegisters() {
	c := t.Debugger.CPU
	var b strings.Builder
	fmt.Fprintf(&b, "pc  = 0x%016x  priv = %s\n", c.PC, c.Priv)
	for i := 0; i < 32; i += 2 {
		fmt.Fprintf(&b, "x%-2d = 0x%016x   x%-2d = 0x%016x\n", i, c.X.Read(uint64(i)), i+1, c.X.Read(uint64(i+1)))
	}
	t.RegisterView.SetText(b.String())
}

func (t *TUI) renderCSRs() {
	c := t.Debugger.CPU
	var b strings.Builder
	fmt.Fprintf(&b, "mstatus = 0x%016x\n", c.CSR.Read(core.CSRMstatus))
	fmt.Fprintf(&b, "mtvec   = 0x%016x\n", c.CSR.Read(core.CSRMtvec))
	fmt.Fprintf(&b, "mepc    = 0x%016x\n", c.CSR.Read(core.CSRMepc))
	fmt.Fprintf(&b, "mcause  = 0x%016x\n", c.CSR.Read(core.CSRMcause))
	fmt.Fprintf(&b, "fcsr    = 0x%016x\n", c.CSR.Read(core.CSRFcsr))
	fmt.Fprintf(&b, "mcycle  = %d\n", c.CSR.Read(core.CSRMcycle))
	fmt.Fprintf(&b, "minstret= %d\n", c.CSR.Read(core.CSRMinstret))
	t.CSRView.SetText(b.String())
}

func (t *TUI) renderMemory() {
	c := t.Debugger.CPU
	var b strings.Builder
	base := t.MemoryAddress &^ 0xf
	for row := 0; row < 8; row++ {
		addr := base + uint64(row*16)
		bytes := c.Mem.ReadBytes(addr, 16)
		fmt.Fprintf(&b, "0x%016x  ", addr)
		for _, v := range bytes {
			fmt.Fprintf(&b, "%02x ", v)
		}
		b.WriteByte('\n')
	}
	t.MemoryView.SetText(b.String())
}

func (t *TUI) renderOutput() {
	t.OutputView.SetText(strings.Join(t.Debugger.Output, "\n"))
	t.OutputView.ScrollToEnd()
}

// Run starts the tview event loop.
func (t *TUI) Run() error {
	return t.App.SetRoot(t.MainLayout, true).SetFocus(t.CommandInput).Run()
}
