package core

// PC convention: control-flow instructions compute their true target and
// assign pc = target - length, so that the unconditional post-dispatch
// pc += length restores the target. Fall-through branches do nothing;
// the post-advance takes effect.

// execBranch implements BEQ/BNE/BLT/BGE/BLTU/BGEU.
func (c *CPU) execBranch(in *Instruction) error {
	a := c.X.Read(in.Rs1())
	b := c.X.Read(in.Rs2())
	var taken bool
	switch in.Op {
	case BEQ:
		taken = a == b
	case BNE:
		taken = a != b
	case BLT:
		taken = int64(a) < int64(b)
	case BGE:
		taken = int64(a) >= int64(b)
	case BLTU:
		taken = a < b
	case BGEU:
		taken = a >= b
	}
	if taken {
		offset := uint64(SignExtend(in.ImmBtype(), 13))
		target := c.PC + offset
		c.PC = target - uint64(in.Length)
	}
	return nil
}

// execJAL writes the return address then jumps to pc + sext(imm21).
func (c *CPU) execJAL(in *Instruction) error {
	c.X.Write(in.Rd(), c.PC+uint64(in.Length))
	offset := uint64(SignExtend(in.ImmJtype(), 21))
	target := c.PC + offset
	c.PC = target - uint64(in.Length)
	return nil
}

// execJALR writes the return address then jumps to (rs1+sext(imm12)) with
// bit 0 cleared.
func (c *CPU) execJALR(in *Instruction) error {
	base := c.X.Read(in.Rs1())
	offset := uint64(SignExtend(in.ImmItype(), 12))
	target := (base + offset) &^ 1
	c.X.Write(in.Rd(), c.PC+uint64(in.Length))
	c.PC = target - uint64(in.Length)
	return nil
}
