// Package hostio drives the batch-and-poll execution loop and implements
// the tohost/fromhost host-syscall convention used by the riscv-tests
// suite: after every batch of executed instructions, tohost is inspected
// for a termination signal or a sys_write syscall block.
package hostio

import (
	"fmt"

	"github.com/rvsim/rv64sim/core"
)

// Status is the terminal outcome of a Run.
type Status int

const (
	// StatusPass means tohost signaled termination with X[10] == 0.
	StatusPass Status = iota
	// StatusFail means tohost signaled termination with X[10] != 0.
	StatusFail
	// StatusSilent means MaxBatches elapsed with no termination signal.
	StatusSilent
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "RISCV_TEST_PASS"
	case StatusFail:
		return "RISCV_TEST_FAIL"
	default:
		return "RISCV_TEST_SILENT_EXIT"
	}
}

// Outcome reports how the run ended.
type Outcome struct {
	Status   Status
	ExitCode uint64
}

// Options configures the batch loop. Zero values fall back to the
// default batch size (5000) and batch count (80).
type Options struct {
	BatchSize  int
	MaxBatches int
	ToHost     uint64
	FromHost   uint64

	// OnBatch, if set, runs after every batch; it receives the number of
	// batches executed so far.
	OnBatch func(batchIndex int)

	// OnStep, if set, runs after every retired instruction with the
	// sequence number (1-based). Used to drive execution tracing.
	OnStep func(seq uint64)
}

const (
	defaultBatchSize  = 5000
	defaultMaxBatches = 80
)

// Run steps cpu in batches, polling tohost after each one, until the guest
// signals termination or MaxBatches elapses.
func Run(cpu *core.CPU, opts Options) (Outcome, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	maxBatches := opts.MaxBatches
	if maxBatches <= 0 {
		maxBatches = defaultMaxBatches
	}

	var seq uint64
	for batch := 0; batch < maxBatches; batch++ {
		for i := 0; i < batchSize; i++ {
			if err := cpu.Step(); err != nil {
				return Outcome{}, fmt.Errorf("hostio: step failed: %w", err)
			}
			seq++
			if opts.OnStep != nil {
				opts.OnStep(seq)
			}
		}
		if opts.OnBatch != nil {
			opts.OnBatch(batch + 1)
		}

		toHostVal := cpu.Mem.ReadUintLE(opts.ToHost, 4)
		if toHostVal == 0 {
			continue
		}
		if toHostVal&1 != 0 {
			exitCode := cpu.X.Read(10)
			status := StatusFail
			if exitCode == 0 {
				status = StatusPass
			}
			return Outcome{Status: status, ExitCode: exitCode}, nil
		}

		length := cpu.Mem.ReadUintLE(opts.ToHost+24, 4)
		cpu.Mem.WriteUintLE(opts.ToHost, length, 4)
		cpu.Mem.WriteUintLE(opts.ToHost, 0, 4)
		cpu.Mem.WriteUintLE(opts.FromHost, 1, 4)
	}

	return Outcome{Status: StatusSilent}, nil
}
