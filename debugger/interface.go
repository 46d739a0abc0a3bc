package debugger

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RunCLI runs a headless, line-oriented debugger loop over stdin: the same
// commands the TUI's command line accepts, without the panel layout.
func RunCLI(d *Debugger) error {
	t := &TUI{Debugger: d}
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("(rvsim) ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "q" || line == "exit" {
			break
		}
		t.runCommand(line)
		for _, out := range d.Output {
			fmt.Println(out)
		}
		d.Output = d.Output[:0]
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("debugger: reading input: %w", err)
	}
	return nil
}

// RunTUI launches the full-screen tview debugger.
func RunTUI(d *Debugger) error {
	return NewTUI(d).Run()
}
