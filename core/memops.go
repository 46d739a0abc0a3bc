package core

// execLoad computes rs1 + sign_extend(imm12) and reads 1/2/4/8 bytes,
// sign- or zero-extending to 64 bits per opcode.
func (c *CPU) execLoad(in *Instruction) error {
	addr := c.X.Read(in.Rs1()) + uint64(SignExtend(in.ImmItype(), 12))
	var v uint64
	switch in.Op {
	case LB:
		v = uint64(SignExtend(c.Mem.ReadUintLE(addr, 1), 8))
	case LH:
		v = uint64(SignExtend(c.Mem.ReadUintLE(addr, 2), 16))
	case LW:
		v = uint64(SignExtend(c.Mem.ReadUintLE(addr, 4), 32))
	case LD:
		v = c.Mem.ReadUintLE(addr, 8)
	case LBU:
		v = c.Mem.ReadUintLE(addr, 1)
	case LHU:
		v = c.Mem.ReadUintLE(addr, 2)
	case LWU:
		v = c.Mem.ReadUintLE(addr, 4)
	}
	c.X.Write(in.Rd(), v)
	return nil
}

// execStore computes rs1 + sign_extend(imm12_s) and writes the low
// 1/2/4/8 bytes of rs2.
func (c *CPU) execStore(in *Instruction) error {
	addr := c.X.Read(in.Rs1()) + uint64(SignExtend(in.ImmStype(), 12))
	v := c.X.Read(in.Rs2())
	switch in.Op {
	case SB:
		c.Mem.WriteUintLE(addr, v, 1)
	case SH:
		c.Mem.WriteUintLE(addr, v, 2)
	case SW:
		c.Mem.WriteUintLE(addr, v, 4)
	case SD:
		c.Mem.WriteUintLE(addr, v, 8)
	}
	return nil
}

// execFLoad implements FLW/FLD. FLW NaN-boxes the loaded single into the
// destination F register.
func (c *CPU) execFLoad(in *Instruction) error {
	addr := c.X.Read(in.Rs1()) + uint64(SignExtend(in.ImmItype(), 12))
	switch in.Op {
	case FLW:
		raw := uint32(c.Mem.ReadUintLE(addr, 4))
		c.F.Write(in.Rd(), nanBoxUpper|uint64(raw))
	case FLD:
		c.F.Write(in.Rd(), c.Mem.ReadUintLE(addr, 8))
	}
	return nil
}

// execFStore implements FSW/FSD.
func (c *CPU) execFStore(in *Instruction) error {
	addr := c.X.Read(in.Rs1()) + uint64(SignExtend(in.ImmStype(), 12))
	switch in.Op {
	case FSW:
		c.Mem.WriteUintLE(addr, c.F.Read(in.Rs2()), 4)
	case FSD:
		c.Mem.WriteUintLE(addr, c.F.Read(in.Rs2()), 8)
	}
	return nil
}
