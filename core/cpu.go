package core

// Privilege is the processor's current privilege mode.
type Privilege int

const (
	PrivU Privilege = iota
	PrivS
	PrivM
)

func (p Privilege) String() string {
	switch p {
	case PrivU:
		return "U"
	case PrivS:
		return "S"
	case PrivM:
		return "M"
	default:
		return "?"
	}
}

// CPU holds the complete architectural state of the simulated hart:
// program counter, the X/F/CSR register files, memory, and the current
// privilege mode.
type CPU struct {
	PC   uint64
	X    XRegisters
	F    FRegisters
	CSR  CSRFile
	Priv Privilege

	Mem *Memory
	Dec *Decoder

	// LastPC and LastInstruction record the most recently retired step,
	// for trace and debugger consumers that run after Step returns.
	LastPC          uint64
	LastInstruction *Instruction
}

// NewCPU returns a CPU in the reset state: privilege M, PC 0, fresh
// register files, and the given backing memory.
func NewCPU(mem *Memory) *CPU {
	return &CPU{
		PC:   0,
		Priv: PrivM,
		Mem:  mem,
		Dec:  NewDecoder(),
	}
}

// Step executes the outer step loop:
//  1. fetch 8 bytes at PC, little-endian
//  2. decode; INVALID is fatal
//  3. dispatch and execute the semantic
//  4. advance PC by the decoded length
//  5. increment mcycle and minstret
//
// When decode or execution fails, mcycle and minstret are still
// incremented before the error is returned; the PC is left unchanged.
func (c *CPU) Step() error {
	word := c.Mem.ReadUint64LE(c.PC)
	raw32 := uint32(word)

	in := c.Dec.Decode(raw32)
	if in.Op == INVALID {
		c.CSR.slots[CSRMcycle]++
		c.CSR.slots[CSRMinstret]++
		return &DecodeError{PC: c.PC, Raw: raw32}
	}

	if err := c.execute(in); err != nil {
		c.CSR.slots[CSRMcycle]++
		c.CSR.slots[CSRMinstret]++
		return err
	}

	c.LastPC = c.PC
	c.LastInstruction = in

	c.PC += uint64(in.Length)
	c.CSR.slots[CSRMcycle]++
	c.CSR.slots[CSRMinstret]++
	return nil
}
