package core

// execECALL writes mcause per the current privilege, transitions mode,
// and jumps to mtvec (U->S raises cause 8, S->M cause 9, M->M cause 11).
func (c *CPU) execECALL(in *Instruction) error {
	var cause uint64
	switch c.Priv {
	case PrivU:
		cause = 8
		c.Priv = PrivS
	case PrivS:
		cause = 9
		c.Priv = PrivM
	case PrivM:
		cause = 11
		c.Priv = PrivM
	}
	c.CSR.slots[CSRMcause] = cause
	target := c.CSR.slots[CSRMtvec]
	c.PC = target - uint64(in.Length)
	return nil
}

// execMRET unconditionally returns to U mode (this model has no mstatus.MPP
// to restore) and jumps to mepc.
func (c *CPU) execMRET(in *Instruction) error {
	c.Priv = PrivU
	target := c.CSR.slots[CSRMepc]
	c.PC = target - uint64(in.Length)
	return nil
}

// execCSR implements CSRRW/CSRRS/CSRRC and their immediate forms. The old
// value is written to rd unless rd is zero; rd==0 needs no special case
// beyond the skip below, since Write(0, ...) is already a no-op on the
// register file.
func (c *CPU) execCSR(in *Instruction) error {
	idx := in.CSR()
	old := c.CSR.Read(idx)
	if in.Rd() != 0 {
		c.X.Write(in.Rd(), old)
	}
	var src uint64
	switch in.Op {
	case CSRRW, CSRRS, CSRRC:
		src = c.X.Read(in.Rs1())
	case CSRRWI, CSRRSI, CSRRCI:
		src = in.Rs1()
	}
	switch in.Op {
	case CSRRW, CSRRWI:
		c.CSR.Write(idx, src)
	case CSRRS, CSRRSI:
		c.CSR.Write(idx, old|src)
	case CSRRC, CSRRCI:
		c.CSR.Write(idx, old&^src)
	}
	return nil
}
