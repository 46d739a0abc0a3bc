package core

import (
	"math"
	"testing"
)

func TestExecFPSingle_FADD_Basic(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, 1.5)
	c.F.WriteSingle(2, 2.5)
	in := &Instruction{Op: FADD_S, Raw: uint64(testRType(0x00, 2, 1, 0x0, 3, 0x53))}
	_ = c.execFPSingle(in)
	if got := c.F.ReadSingle(3); got != 4.0 {
		t.Fatalf("FADD.S(1.5, 2.5) = %v, want 4.0", got)
	}
}

func TestExecFPSingle_FDIV_InfinityOverInfinityIsCanonicalNaN(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, float32(math.Inf(1)))
	c.F.WriteSingle(2, float32(math.Inf(1)))
	in := &Instruction{Op: FDIV_S, Raw: uint64(testRType(0x00, 2, 1, 0x0, 3, 0x53))}
	_ = c.execFPSingle(in)
	if got := c.F.ReadSingle(3); !math.IsNaN(float64(got)) {
		t.Fatalf("FDIV.S(inf, inf) = %v, want NaN", got)
	}
	if flags := c.CSR.Read(CSRFflags); flags&fflagNV == 0 {
		t.Fatalf("fflags = 0x%x, want NV set", flags)
	}
}

func TestExecFPSingle_FDIV_ByZeroRaisesDZ(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, 1.0)
	c.F.WriteSingle(2, 0.0)
	in := &Instruction{Op: FDIV_S, Raw: uint64(testRType(0x00, 2, 1, 0x0, 3, 0x53))}
	_ = c.execFPSingle(in)
	if flags := c.CSR.Read(CSRFflags); flags&fflagDZ == 0 {
		t.Fatalf("fflags = 0x%x, want DZ set", flags)
	}
	if got := c.F.ReadSingle(3); !math.IsInf(float64(got), 1) {
		t.Fatalf("FDIV.S(1, 0) = %v, want +Inf", got)
	}
}

func TestExecFPSingle_FCVT_WU_S_NegativeSaturatesToZero(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, -1.0)
	in := &Instruction{Op: FCVT_WU_S, Raw: uint64(testRType(0x60, 1, 1, 0x0, 2, 0x53))}
	_ = c.execFPSingle(in)
	if got := int32(c.X.Read(2)); got != 0 {
		t.Fatalf("FCVT.WU.S(-1.0) = %d, want 0", got)
	}
}

func TestExecFPSingle_FCVT_W_S_NaNSaturatesToMaxInt32(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, float32(math.NaN()))
	in := &Instruction{Op: FCVT_W_S, Raw: uint64(testRType(0x60, 0, 1, 0x0, 2, 0x53))}
	_ = c.execFPSingle(in)
	if got := int32(c.X.Read(2)); got != math.MaxInt32 {
		t.Fatalf("FCVT.W.S(NaN) = %d, want MaxInt32", got)
	}
}

func TestExecFPSingle_FSGNJN_InvertsSign(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, 3.0)
	c.F.WriteSingle(2, 1.0) // positive sign
	in := &Instruction{Op: FSGNJN_S, Raw: uint64(testRType(0x10, 2, 1, 0x1, 3, 0x53))}
	_ = c.execFPSingle(in)
	if got := c.F.ReadSingle(3); got != -3.0 {
		t.Fatalf("FSGNJN.S(3.0, +1.0) = %v, want -3.0", got)
	}
}

func TestExecFPSingle_FMIN_PropagatesNonNaNOperand(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, float32(math.NaN()))
	c.F.WriteSingle(2, 5.0)
	in := &Instruction{Op: FMIN_S, Raw: uint64(testRType(0x14, 2, 1, 0x0, 3, 0x53))}
	_ = c.execFPSingle(in)
	if got := c.F.ReadSingle(3); got != 5.0 {
		t.Fatalf("FMIN.S(NaN, 5.0) = %v, want 5.0", got)
	}
}

func TestExecFPSingle_FEQ_NaNIsAlwaysFalse(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, float32(math.NaN()))
	c.F.WriteSingle(2, float32(math.NaN()))
	in := &Instruction{Op: FEQ_S, Raw: uint64(testRType(0x50, 2, 1, 0x2, 3, 0x53))}
	_ = c.execFPSingle(in)
	if got := c.X.Read(3); got != 0 {
		t.Fatalf("FEQ.S(NaN, NaN) = %d, want 0", got)
	}
}

func TestFRegisters_ReadSingle_RejectsUnboxedValue(t *testing.T) {
	f := &FRegisters{}
	f.Write(1, 0x0000000000000001) // upper 32 bits not all-ones
	got := f.ReadSingle(1)
	if !math.IsNaN(float64(got)) {
		t.Fatalf("ReadSingle of un-boxed slot = %v, want canonical NaN", got)
	}
}

func TestExecFPDouble_FADD_Basic(t *testing.T) {
	c := newTestCPU()
	c.F.WriteDouble(1, 1.25)
	c.F.WriteDouble(2, 2.75)
	in := &Instruction{Op: FADD_D, Raw: uint64(testRType(0x01, 2, 1, 0x0, 3, 0x53))}
	_ = c.execFPDouble(in)
	if got := c.F.ReadDouble(3); got != 4.0 {
		t.Fatalf("FADD.D(1.25, 2.75) = %v, want 4.0", got)
	}
}

func TestExecFMASingle_FMADD(t *testing.T) {
	c := newTestCPU()
	c.F.WriteSingle(1, 2.0)
	c.F.WriteSingle(2, 3.0)
	c.F.WriteSingle(3, 1.0)
	in := &Instruction{Op: FMADD_S, Raw: uint64(testR4Type(3, 0, 2, 1, 0x0, 4, 0x43))}
	_ = c.execFMASingle(in)
	if got := c.F.ReadSingle(4); got != 7.0 {
		t.Fatalf("FMADD.S(2, 3, 1) = %v, want 7.0", got)
	}
}

func testR4Type(rs3, funct2, rs2, rs1, funct3, rd, opcode uint32) uint32 {
	return rs3<<27 | funct2<<25 | rs2<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
}
