// Package trace records per-instruction execution history: PC, the decoded
// mnemonic, and (optionally) CSR/float register snapshots. It mirrors the
// shape of the emulator's original execution trace, generalized from a
// flat register file to rvsim's X/F/CSR state.
package trace

import (
	"fmt"
	"io"

	"github.com/rvsim/rv64sim/core"
)

// Entry is a single recorded step.
type Entry struct {
	Sequence uint64
	PC       uint64
	Mnemonic string
}

// Trace accumulates execution entries and can render them to a writer.
type Trace struct {
	Enabled      bool
	Writer       io.Writer
	IncludeCSRs  bool
	IncludeFRegs bool
	MaxEntries   int

	entries []Entry
}

// New returns a trace writing rendered entries to w as they are recorded.
func New(w io.Writer) *Trace {
	return &Trace{
		Enabled:    true,
		Writer:     w,
		MaxEntries: 1000000,
		entries:    make([]Entry, 0, 1024),
	}
}

// Record captures one executed instruction's PC and mnemonic, and
// immediately renders it to Writer if set.
func (t *Trace) Record(cpu *core.CPU, seq uint64, pc uint64, in *core.Instruction) {
	if !t.Enabled {
		return
	}
	if t.MaxEntries > 0 && len(t.entries) >= t.MaxEntries {
		return
	}

	entry := Entry{Sequence: seq, PC: pc, Mnemonic: in.Op.String()}
	t.entries = append(t.entries, entry)

	if t.Writer == nil {
		return
	}
	line := fmt.Sprintf("%08d pc=0x%016x %s", entry.Sequence, entry.PC, entry.Mnemonic)
	if t.IncludeCSRs {
		line += fmt.Sprintf(" priv=%s mcause=0x%x", cpu.Priv, cpu.CSR.Read(core.CSRMcause))
	}
	if t.IncludeFRegs {
		for i := uint64(0); i < 32; i++ {
			line += fmt.Sprintf(" f%d=0x%016x", i, cpu.F.Read(i))
		}
	}
	fmt.Fprintln(t.Writer, line)
}

// Entries returns the recorded entries (for tests and post-run summaries).
func (t *Trace) Entries() []Entry {
	return t.entries
}
