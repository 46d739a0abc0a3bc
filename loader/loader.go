// Package loader resolves a statically linked RV64 ELF image into a Memory
// instance: every PT_LOAD segment is copied into place, and the
// tohost/fromhost symbols are resolved for the host-syscall bridge.
package loader

import (
	"debug/elf"
	"fmt"

	"github.com/rvsim/rv64sim/core"
)

// Image is the result of loading an ELF file: the entry point and the
// resolved host-convention symbol addresses.
type Image struct {
	EntryPoint uint64
	ToHost     uint64
	FromHost   uint64
}

// Load reads the ELF at path, copies every PT_LOAD segment into mem at its
// physical address, and resolves the tohost/fromhost symbols.
func Load(path string, mem *core.Memory) (*Image, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("loader: %s is not a 64-bit ELF", path)
	}
	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("loader: %s is not a RISC-V ELF (machine=%s)", path, f.Machine)
	}

	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		if err := copySegment(prog, mem); err != nil {
			return nil, fmt.Errorf("loader: %s: %w", path, err)
		}
	}

	toHost, fromHost, err := resolveHostSymbols(f)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return &Image{
		EntryPoint: f.Entry,
		ToHost:     toHost,
		FromHost:   fromHost,
	}, nil
}

func copySegment(prog *elf.Prog, mem *core.Memory) error {
	buf := make([]byte, prog.Filesz)
	if prog.Filesz > 0 {
		if _, err := prog.ReadAt(buf, 0); err != nil {
			return fmt.Errorf("read PT_LOAD segment at paddr=0x%x: %w", prog.Paddr, err)
		}
	}
	mem.WriteBytes(prog.Paddr, buf)
	return nil
}

func resolveHostSymbols(f *elf.File) (toHost, fromHost uint64, err error) {
	syms, symErr := f.Symbols()
	if symErr != nil {
		return 0, 0, fmt.Errorf("reading symbol table: %w", symErr)
	}
	var haveToHost, haveFromHost bool
	for _, sym := range syms {
		switch sym.Name {
		case "tohost":
			toHost = sym.Value
			haveToHost = true
		case "fromhost":
			fromHost = sym.Value
			haveFromHost = true
		}
	}
	if !haveToHost || !haveFromHost {
		return 0, 0, fmt.Errorf("tohost/fromhost symbols not found (tohost=%v, fromhost=%v)", haveToHost, haveFromHost)
	}
	return toHost, fromHost, nil
}

// WriteResetVector writes the 8-word reset stub at physical address 0x1000
// and returns the initial PC (0x1000).
func WriteResetVector(mem *core.Memory, entryPoint uint64) uint64 {
	const resetBase = uint64(0x1000)
	words := [8]uint32{
		0x00000297, // auipc t0, 0
		0x02028593, // addi a1, t0, &dtb-relative
		0xf1402573, // csrr a0, mhartid
		0x0182b283, // ld t0, 24(t0)
		0x00028067, // jr t0
		0x00000000, // padding
		uint32(entryPoint),
		uint32(entryPoint >> 32),
	}
	for i, w := range words {
		mem.WriteUintLE(resetBase+uint64(i*4), uint64(w), 4)
	}
	return resetBase
}
