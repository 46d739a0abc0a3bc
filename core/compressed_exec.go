package core

// execCompressedALU implements the compressed register/immediate ALU
// forms by translating them into the same arithmetic the standard forms
// use: every compressed instruction is semantically equivalent to one
// standard-form instruction, per the RISC-V C extension.
func (c *CPU) execCompressedALU(in *Instruction) error {
	switch in.Op {
	case C_NOP:
		return nil
	case C_ADDI4SPN:
		rd := in.RdCiw()
		c.X.Write(rd, c.X.Read(2)+in.ImmCAddi4SPN())
		return nil
	case C_ADDI:
		rd := in.RdC()
		c.X.Write(rd, c.X.Read(rd)+uint64(SignExtend(in.ImmCI(), 6)))
		return nil
	case C_ADDIW:
		rd := in.RdC()
		r32 := uint32(c.X.Read(rd)) + uint32(SignExtend(in.ImmCI(), 6))
		c.X.Write(rd, uint64(SignExtend(uint64(r32), 32)))
		return nil
	case C_LI:
		c.X.Write(in.RdC(), uint64(SignExtend(in.ImmCI(), 6)))
		return nil
	case C_ADDI16SP:
		c.X.Write(2, c.X.Read(2)+uint64(SignExtend(in.ImmCAddi16SP(), 10)))
		return nil
	case C_LUI:
		c.X.Write(in.RdC(), uint64(SignExtend(in.ImmCLUI(), 18)))
		return nil
	case C_SRLI:
		rd := in.Rs13b()
		c.X.Write(rd, c.X.Read(rd)>>in.ImmCI())
		return nil
	case C_SRAI:
		rd := in.Rs13b()
		c.X.Write(rd, uint64(int64(c.X.Read(rd))>>in.ImmCI()))
		return nil
	case C_ANDI:
		rd := in.Rs13b()
		c.X.Write(rd, c.X.Read(rd)&uint64(SignExtend(in.ImmCI(), 6)))
		return nil
	case C_SUB:
		rd := in.Rs13b()
		c.X.Write(rd, c.X.Read(rd)-c.X.Read(in.Rs23b()))
		return nil
	case C_XOR:
		rd := in.Rs13b()
		c.X.Write(rd, c.X.Read(rd)^c.X.Read(in.Rs23b()))
		return nil
	case C_OR:
		rd := in.Rs13b()
		c.X.Write(rd, c.X.Read(rd)|c.X.Read(in.Rs23b()))
		return nil
	case C_AND:
		rd := in.Rs13b()
		c.X.Write(rd, c.X.Read(rd)&c.X.Read(in.Rs23b()))
		return nil
	case C_SUBW:
		rd := in.Rs13b()
		r32 := uint32(c.X.Read(rd)) - uint32(c.X.Read(in.Rs23b()))
		c.X.Write(rd, uint64(SignExtend(uint64(r32), 32)))
		return nil
	case C_ADDW:
		rd := in.Rs13b()
		r32 := uint32(c.X.Read(rd)) + uint32(c.X.Read(in.Rs23b()))
		c.X.Write(rd, uint64(SignExtend(uint64(r32), 32)))
		return nil
	case C_SLLI:
		rd := in.RdC()
		c.X.Write(rd, c.X.Read(rd)<<in.ImmCI())
		return nil
	case C_MV:
		c.X.Write(in.RdC(), c.X.Read(in.Rs2C()))
		return nil
	case C_ADD:
		rd := in.RdC()
		c.X.Write(rd, c.X.Read(rd)+c.X.Read(in.Rs2C()))
		return nil
	}
	return &SemanticError{PC: c.PC, Raw: in.word32OrHalf(), Reason: "unreachable compressed ALU op " + in.Op.String()}
}

// execCompressedMem implements the compressed load/store forms, both
// sp-relative and register-relative, for integer and double-precision
// float registers.
func (c *CPU) execCompressedMem(in *Instruction) error {
	switch in.Op {
	case C_LW:
		addr := c.X.Read(in.Rs13b()) + in.ImmCLW()
		c.X.Write(in.RdCl(), uint64(SignExtend(c.Mem.ReadUintLE(addr, 4), 32)))
	case C_LD:
		addr := c.X.Read(in.Rs13b()) + in.ImmCLD()
		c.X.Write(in.RdCl(), c.Mem.ReadUintLE(addr, 8))
	case C_SW:
		addr := c.X.Read(in.Rs13b()) + in.ImmCLW()
		c.Mem.WriteUintLE(addr, c.X.Read(in.Rs23b()), 4)
	case C_SD:
		addr := c.X.Read(in.Rs13b()) + in.ImmCLD()
		c.Mem.WriteUintLE(addr, c.X.Read(in.Rs23b()), 8)
	case C_FLD:
		addr := c.X.Read(in.Rs13b()) + in.ImmCLD()
		c.F.Write(in.RdCl(), c.Mem.ReadUintLE(addr, 8))
	case C_FSD:
		addr := c.X.Read(in.Rs13b()) + in.ImmCLD()
		c.Mem.WriteUintLE(addr, c.F.Read(in.Rs23b()), 8)
	case C_LWSP:
		addr := c.X.Read(2) + in.ImmCLWSP()
		c.X.Write(in.RdC(), uint64(SignExtend(c.Mem.ReadUintLE(addr, 4), 32)))
	case C_LDSP:
		addr := c.X.Read(2) + in.ImmCLDSP()
		c.X.Write(in.RdC(), c.Mem.ReadUintLE(addr, 8))
	case C_SWSP:
		addr := c.X.Read(2) + in.ImmCSWSP()
		c.Mem.WriteUintLE(addr, c.X.Read(in.Rs2C()), 4)
	case C_SDSP:
		addr := c.X.Read(2) + in.ImmCSDSP()
		c.Mem.WriteUintLE(addr, c.X.Read(in.Rs2C()), 8)
	case C_FLDSP:
		addr := c.X.Read(2) + in.ImmCLDSP()
		c.F.Write(in.RdC(), c.Mem.ReadUintLE(addr, 8))
	case C_FSDSP:
		addr := c.X.Read(2) + in.ImmCSDSP()
		c.Mem.WriteUintLE(addr, c.F.Read(in.Rs2C()), 8)
	default:
		return &SemanticError{PC: c.PC, Raw: in.word32OrHalf(), Reason: "unreachable compressed mem op " + in.Op.String()}
	}
	return nil
}

// execCompressedBranch implements C.J/C.BEQZ/C.BNEZ/C.JR/C.JALR, applying
// the same PC convention as the standard control-flow forms.
func (c *CPU) execCompressedBranch(in *Instruction) error {
	switch in.Op {
	case C_J:
		offset := uint64(SignExtend(in.ImmCJ(), 12))
		target := c.PC + offset
		c.PC = target - uint64(in.Length)
	case C_BEQZ, C_BNEZ:
		rs1 := in.Rs13b()
		isZero := c.X.Read(rs1) == 0
		taken := isZero == (in.Op == C_BEQZ)
		if taken {
			offset := uint64(SignExtend(in.ImmCB(), 9))
			target := c.PC + offset
			c.PC = target - uint64(in.Length)
		}
	case C_JR:
		target := c.X.Read(in.RdC()) &^ 1
		c.PC = target - uint64(in.Length)
	case C_JALR:
		rs1 := in.RdC()
		target := c.X.Read(rs1) &^ 1
		c.X.Write(1, c.PC+uint64(in.Length))
		c.PC = target - uint64(in.Length)
	default:
		return &SemanticError{PC: c.PC, Raw: in.word32OrHalf(), Reason: "unreachable compressed branch op " + in.Op.String()}
	}
	return nil
}
