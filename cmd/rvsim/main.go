// Command rvsim is the CLI entry point: it loads a statically linked RV64
// ELF image, wires up the optional trace/config/debugger machinery, and
// runs the host-syscall batch loop until the guest signals termination.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rvsim/rv64sim/config"
	"github.com/rvsim/rv64sim/core"
	"github.com/rvsim/rv64sim/debugger"
	"github.com/rvsim/rv64sim/hostio"
	"github.com/rvsim/rv64sim/loader"
	"github.com/rvsim/rv64sim/trace"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		tuiMode     = flag.Bool("tui", false, "launch the interactive register/CSR/memory debugger")
		cliMode     = flag.Bool("debug-cli", false, "launch the headless line-oriented debugger instead of the TUI")
		configPath  = flag.String("config", "", "path to a TOML config file (default: platform config dir)")
		traceFlag   = flag.Bool("trace", false, "enable execution tracing")
		traceFile   = flag.String("trace-file", "", "trace output file (default: the config's trace output_file, or stdout if that is empty)")
		batchSize   = flag.Int("batch-size", 0, "instructions executed per host-poll batch (0: use config default)")
		maxBatches  = flag.Int("max-batches", 0, "batches executed before a silent-exit verdict (0: use config default)")
		statsFlag   = flag.Bool("stats", false, "print instruction/cycle counters on exit")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("rvsim %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		printUsage()
		os.Exit(1)
	}
	elfPath := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rvsim: %v\n", err)
		os.Exit(1)
	}
	if *batchSize != 0 {
		cfg.Execution.BatchSize = *batchSize
	}
	if *maxBatches != 0 {
		cfg.Execution.MaxBatches = *maxBatches
	}

	mem := core.NewMemory()
	cpu := core.NewCPU(mem)

	image, err := loader.Load(elfPath, mem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rvsim: loading %s: %v\n", elfPath, err)
		os.Exit(1)
	}
	resetVector := loader.WriteResetVector(mem, image.EntryPoint)
	cpu.PC = resetVector

	var tr *trace.Trace
	if *traceFlag || cfg.Execution.EnableTrace {
		w := os.Stdout
		if *traceFile != "" {
			f, err := os.Create(*traceFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "rvsim: opening trace file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			tr = trace.New(f)
		} else if cfg.Trace.OutputFile != "" {
			f, err := os.Create(cfg.Trace.OutputFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "rvsim: opening trace file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			tr = trace.New(f)
		} else {
			tr = trace.New(w)
		}
		tr.IncludeCSRs = cfg.Trace.IncludeCSRs
		tr.IncludeFRegs = cfg.Trace.IncludeFRegs
		if cfg.Trace.MaxEntries > 0 {
			tr.MaxEntries = cfg.Trace.MaxEntries
		}
	}

	if *tuiMode || *cliMode {
		d := debugger.NewDebugger(cpu)
		runDebugger := debugger.RunTUI
		if *cliMode {
			runDebugger = debugger.RunCLI
		}
		if err := runDebugger(d); err != nil {
			fmt.Fprintf(os.Stderr, "rvsim: debugger: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := hostio.Options{
		BatchSize:  cfg.Execution.BatchSize,
		MaxBatches: cfg.Execution.MaxBatches,
		ToHost:     image.ToHost,
		FromHost:   image.FromHost,
	}
	if tr != nil {
		opts.OnStep = func(seq uint64) {
			tr.Record(cpu, seq, cpu.LastPC, cpu.LastInstruction)
		}
	}

	outcome, err := hostio.Run(cpu, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rvsim: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(outcome.Status)
	if *statsFlag || cfg.Execution.EnableStats {
		fmt.Printf("instructions retired: %d\n", cpu.CSR.Read(core.CSRMinstret))
		fmt.Printf("cycles: %d\n", cpu.CSR.Read(core.CSRMcycle))
	}

	if outcome.Status == hostio.StatusFail {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "usage: rvsim [flags] <elf-file>\n\n")
	flag.PrintDefaults()
}
