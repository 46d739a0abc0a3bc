package core

import "math"

// fflags bit positions per the RISC-V F/D extension: NV invalid,
// DZ divide-by-zero, OF overflow, UF underflow, NX inexact.
const (
	fflagNX = uint64(1 << 0)
	fflagUF = uint64(1 << 1)
	fflagOF = uint64(1 << 2)
	fflagDZ = uint64(1 << 3)
	fflagNV = uint64(1 << 4)
)

// arithFlagsDouble derives a best-effort exception-flag set for a binary
// double-precision arithmetic result (invalid, overflow, underflow,
// inexact). Go's math package does not expose hardware flags, so these
// are inferred from operand and result classification rather than from
// rounding residue.
func arithFlagsDouble(a, b, r float64) uint64 {
	var flags uint64
	aNaN, bNaN, rNaN := math.IsNaN(a), math.IsNaN(b), math.IsNaN(r)
	if rNaN && !aNaN && !bNaN {
		flags |= fflagNV
	}
	if math.IsInf(r, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		flags |= fflagOF | fflagNX
	}
	if r == 0 && !rNaN && a != 0 && b != 0 && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		flags |= fflagUF | fflagNX
	}
	return flags
}

func arithFlagsSingle(a, b, r float32) uint64 {
	return arithFlagsDouble(float64(a), float64(b), float64(r))
}

func (c *CPU) raiseFlags(flags uint64) {
	if flags != 0 {
		c.CSR.SetExceptionFlags(flags)
	}
}

// fsgnjBits returns the magnitude of a with a sign chosen per mode: 0=the
// sign of b, 1=the inverted sign of b, 2=the sign of a XOR the sign of b.
func fsgnjBits(aBits, bBits, signMask uint64, mode uint64) uint64 {
	mag := aBits &^ signMask
	switch mode {
	case 0:
		return mag | (bBits & signMask)
	case 1:
		return mag | ((^bBits) & signMask)
	default:
		return mag | ((aBits ^ bBits) & signMask)
	}
}

func fminmax(a, b float64, isMin bool) float64 {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return math.NaN()
	case aNaN:
		return b
	case bNaN:
		return a
	}
	if a == 0 && b == 0 {
		aNeg := math.Signbit(a)
		bNeg := math.Signbit(b)
		if isMin {
			if aNeg || bNeg {
				return math.Copysign(0, -1)
			}
			return 0
		}
		if aNeg && bNeg {
			return math.Copysign(0, -1)
		}
		return 0
	}
	if isMin {
		return math.Min(a, b)
	}
	return math.Max(a, b)
}

func classifyDouble(f float64) uint64 {
	bits := math.Float64bits(f)
	neg := bits>>63 != 0
	switch {
	case math.IsInf(f, 0):
		if neg {
			return 1 << 0
		}
		return 1 << 7
	case math.IsNaN(f):
		if bits&(1<<51) == 0 {
			return 1 << 8 // signaling
		}
		return 1 << 9 // quiet
	case f == 0:
		if neg {
			return 1 << 3
		}
		return 1 << 4
	default:
		exp := (bits >> 52) & 0x7ff
		if exp == 0 {
			if neg {
				return 1 << 2
			}
			return 1 << 5
		}
		if neg {
			return 1 << 1
		}
		return 1 << 6
	}
}

func classifySingle(f float32) uint64 {
	bits := math.Float32bits(f)
	neg := bits>>31 != 0
	switch {
	case math.IsInf(float64(f), 0):
		if neg {
			return 1 << 0
		}
		return 1 << 7
	case math.IsNaN(float64(f)):
		if bits&(1<<22) == 0 {
			return 1 << 8
		}
		return 1 << 9
	case f == 0:
		if neg {
			return 1 << 3
		}
		return 1 << 4
	default:
		exp := (bits >> 23) & 0xff
		if exp == 0 {
			if neg {
				return 1 << 2
			}
			return 1 << 5
		}
		if neg {
			return 1 << 1
		}
		return 1 << 6
	}
}

// satToInt64 saturates a double-precision float to a 64-bit signed range,
// mapping NaN to the maximum value, per RISC-V float-to-int conversion
// saturation rules.
func satToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return math.MaxInt64
	case f >= 9223372036854775807.0:
		return math.MaxInt64
	case f < -9223372036854775808.0:
		return math.MinInt64
	default:
		return int64(f)
	}
}

func satToUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return math.MaxUint64
	case f < 0:
		return 0
	case f >= 18446744073709551615.0:
		return math.MaxUint64
	default:
		return uint64(f)
	}
}

func satToInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return math.MaxInt32
	case f >= 2147483647.0:
		return math.MaxInt32
	case f < -2147483648.0:
		return math.MinInt32
	default:
		return int32(f)
	}
}

func satToUint32(f float64) uint32 {
	switch {
	case math.IsNaN(f):
		return math.MaxUint32
	case f < 0:
		return 0
	case f >= 4294967295.0:
		return math.MaxUint32
	default:
		return uint32(f)
	}
}

const singleSignMask = uint64(1) << 31
const doubleSignMask = uint64(1) << 63

// execFPSingle implements the single-precision arithmetic, compare,
// classify, sign-injection, and conversion ops.
func (c *CPU) execFPSingle(in *Instruction) error {
	switch in.Op {
	case FADD_S, FSUB_S, FMUL_S, FDIV_S:
		a := c.F.ReadSingle(in.Rs1())
		b := c.F.ReadSingle(in.Rs2())
		var r float32
		var dzFlag uint64
		switch in.Op {
		case FADD_S:
			r = a + b
		case FSUB_S:
			r = a - b
		case FMUL_S:
			r = a * b
		case FDIV_S:
			r = a / b
			if b == 0 && a != 0 && !math.IsNaN(float64(a)) {
				dzFlag = fflagDZ
			}
		}
		c.raiseFlags(arithFlagsSingle(a, b, r) | dzFlag)
		if math.IsNaN(float64(r)) {
			r = math.Float32frombits(canonicalQNaN32Bits)
		}
		c.F.WriteSingle(in.Rd(), r)
	case FSQRT_S:
		a := c.F.ReadSingle(in.Rs1())
		if a < 0 && !math.IsNaN(float64(a)) {
			c.raiseFlags(fflagNV)
			c.F.WriteSingle(in.Rd(), math.Float32frombits(canonicalQNaN32Bits))
		} else {
			r := float32(math.Sqrt(float64(a)))
			if math.IsNaN(float64(r)) {
				r = math.Float32frombits(canonicalQNaN32Bits)
			}
			c.F.WriteSingle(in.Rd(), r)
		}
	case FSGNJ_S, FSGNJN_S, FSGNJX_S:
		aBits := uint64(math.Float32bits(c.F.ReadSingle(in.Rs1())))
		bBits := uint64(math.Float32bits(c.F.ReadSingle(in.Rs2())))
		var mode uint64
		switch in.Op {
		case FSGNJN_S:
			mode = 1
		case FSGNJX_S:
			mode = 2
		}
		r := fsgnjBits(aBits, bBits, singleSignMask, mode)
		c.F.WriteSingle(in.Rd(), math.Float32frombits(uint32(r)))
	case FMIN_S, FMAX_S:
		a := c.F.ReadSingle(in.Rs1())
		b := c.F.ReadSingle(in.Rs2())
		if isSNaN32(a) || isSNaN32(b) {
			c.raiseFlags(fflagNV)
		}
		r := fminmax(float64(a), float64(b), in.Op == FMIN_S)
		c.F.WriteSingle(in.Rd(), float32(r))
	case FEQ_S, FLT_S, FLE_S:
		a := c.F.ReadSingle(in.Rs1())
		b := c.F.ReadSingle(in.Rs2())
		var result bool
		if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
			if in.Op != FEQ_S || isSNaN32(a) || isSNaN32(b) {
				c.raiseFlags(fflagNV)
			}
			result = false
		} else {
			switch in.Op {
			case FEQ_S:
				result = a == b
			case FLT_S:
				result = a < b
			case FLE_S:
				result = a <= b
			}
		}
		c.X.Write(in.Rd(), boolToWord(result))
	case FCLASS_S:
		c.X.Write(in.Rd(), classifySingle(c.F.ReadSingle(in.Rs1())))
	case FMV_X_W:
		c.X.Write(in.Rd(), uint64(SignExtend(uint64(math.Float32bits(c.F.ReadSingle(in.Rs1()))), 32)))
	case FMV_W_X:
		c.F.WriteSingle(in.Rd(), math.Float32frombits(uint32(c.X.Read(in.Rs1()))))
	case FCVT_W_S:
		c.X.Write(in.Rd(), uint64(SignExtend(uint64(uint32(satToInt32(float64(c.F.ReadSingle(in.Rs1()))))), 32)))
	case FCVT_WU_S:
		c.X.Write(in.Rd(), uint64(SignExtend(uint64(satToUint32(float64(c.F.ReadSingle(in.Rs1())))), 32)))
	case FCVT_L_S:
		c.X.Write(in.Rd(), uint64(satToInt64(float64(c.F.ReadSingle(in.Rs1())))))
	case FCVT_LU_S:
		c.X.Write(in.Rd(), satToUint64(float64(c.F.ReadSingle(in.Rs1()))))
	case FCVT_S_W:
		c.F.WriteSingle(in.Rd(), float32(int32(uint32(c.X.Read(in.Rs1())))))
	case FCVT_S_WU:
		c.F.WriteSingle(in.Rd(), float32(uint32(c.X.Read(in.Rs1()))))
	case FCVT_S_L:
		c.F.WriteSingle(in.Rd(), float32(int64(c.X.Read(in.Rs1()))))
	case FCVT_S_LU:
		c.F.WriteSingle(in.Rd(), float32(c.X.Read(in.Rs1())))
	}
	return nil
}

// execFPDouble implements the double-precision equivalents, plus the
// cross-precision FCVT.S.D / FCVT.D.S conversions.
func (c *CPU) execFPDouble(in *Instruction) error {
	switch in.Op {
	case FADD_D, FSUB_D, FMUL_D, FDIV_D:
		a := c.F.ReadDouble(in.Rs1())
		b := c.F.ReadDouble(in.Rs2())
		var r float64
		var dzFlag uint64
		switch in.Op {
		case FADD_D:
			r = a + b
		case FSUB_D:
			r = a - b
		case FMUL_D:
			r = a * b
		case FDIV_D:
			r = a / b
			if b == 0 && a != 0 && !math.IsNaN(a) {
				dzFlag = fflagDZ
			}
		}
		c.raiseFlags(arithFlagsDouble(a, b, r) | dzFlag)
		if math.IsNaN(r) {
			r = math.Float64frombits(canonicalQNaN64Bits)
		}
		c.F.WriteDouble(in.Rd(), r)
	case FSQRT_D:
		a := c.F.ReadDouble(in.Rs1())
		if a < 0 && !math.IsNaN(a) {
			c.raiseFlags(fflagNV)
			c.F.WriteDouble(in.Rd(), math.Float64frombits(canonicalQNaN64Bits))
		} else {
			r := math.Sqrt(a)
			if math.IsNaN(r) {
				r = math.Float64frombits(canonicalQNaN64Bits)
			}
			c.F.WriteDouble(in.Rd(), r)
		}
	case FSGNJ_D, FSGNJN_D, FSGNJX_D:
		aBits := math.Float64bits(c.F.ReadDouble(in.Rs1()))
		bBits := math.Float64bits(c.F.ReadDouble(in.Rs2()))
		var mode uint64
		switch in.Op {
		case FSGNJN_D:
			mode = 1
		case FSGNJX_D:
			mode = 2
		}
		r := fsgnjBits(aBits, bBits, doubleSignMask, mode)
		c.F.WriteDouble(in.Rd(), math.Float64frombits(r))
	case FMIN_D, FMAX_D:
		a := c.F.ReadDouble(in.Rs1())
		b := c.F.ReadDouble(in.Rs2())
		if isSNaN64(a) || isSNaN64(b) {
			c.raiseFlags(fflagNV)
		}
		c.F.WriteDouble(in.Rd(), fminmax(a, b, in.Op == FMIN_D))
	case FEQ_D, FLT_D, FLE_D:
		a := c.F.ReadDouble(in.Rs1())
		b := c.F.ReadDouble(in.Rs2())
		var result bool
		if math.IsNaN(a) || math.IsNaN(b) {
			if in.Op != FEQ_D || isSNaN64(a) || isSNaN64(b) {
				c.raiseFlags(fflagNV)
			}
			result = false
		} else {
			switch in.Op {
			case FEQ_D:
				result = a == b
			case FLT_D:
				result = a < b
			case FLE_D:
				result = a <= b
			}
		}
		c.X.Write(in.Rd(), boolToWord(result))
	case FCLASS_D:
		c.X.Write(in.Rd(), classifyDouble(c.F.ReadDouble(in.Rs1())))
	case FMV_X_D:
		c.X.Write(in.Rd(), math.Float64bits(c.F.ReadDouble(in.Rs1())))
	case FMV_D_X:
		c.F.WriteDouble(in.Rd(), math.Float64frombits(c.X.Read(in.Rs1())))
	case FCVT_W_D:
		c.X.Write(in.Rd(), uint64(SignExtend(uint64(uint32(satToInt32(c.F.ReadDouble(in.Rs1())))), 32)))
	case FCVT_WU_D:
		c.X.Write(in.Rd(), uint64(SignExtend(uint64(satToUint32(c.F.ReadDouble(in.Rs1()))), 32)))
	case FCVT_L_D:
		c.X.Write(in.Rd(), uint64(satToInt64(c.F.ReadDouble(in.Rs1()))))
	case FCVT_LU_D:
		c.X.Write(in.Rd(), satToUint64(c.F.ReadDouble(in.Rs1())))
	case FCVT_D_W:
		c.F.WriteDouble(in.Rd(), float64(int32(uint32(c.X.Read(in.Rs1())))))
	case FCVT_D_WU:
		c.F.WriteDouble(in.Rd(), float64(uint32(c.X.Read(in.Rs1()))))
	case FCVT_D_L:
		c.F.WriteDouble(in.Rd(), float64(int64(c.X.Read(in.Rs1()))))
	case FCVT_D_LU:
		c.F.WriteDouble(in.Rd(), float64(c.X.Read(in.Rs1())))
	case FCVT_S_D:
		a := c.F.ReadDouble(in.Rs1())
		r := float32(a)
		c.raiseFlags(arithFlagsSingle(r, 0, r) &^ fflagNV)
		c.F.WriteSingle(in.Rd(), r)
	case FCVT_D_S:
		c.F.WriteDouble(in.Rd(), float64(c.F.ReadSingle(in.Rs1())))
	}
	return nil
}

// execFMASingle implements FMADD.S/FMSUB.S/FNMSUB.S/FNMADD.S using
// math.FMA for single-rounding correctness, computed in double precision
// with float32 operands (close enough for a software model lacking a
// true single-precision fused unit) then rounded once to float32.
func (c *CPU) execFMASingle(in *Instruction) error {
	a := float64(c.F.ReadSingle(in.Rs1()))
	b := float64(c.F.ReadSingle(in.Rs2()))
	d := float64(c.F.ReadSingle(in.Rs3()))
	var r float64
	switch in.Op {
	case FMADD_S:
		r = math.FMA(a, b, d)
	case FMSUB_S:
		r = math.FMA(a, b, -d)
	case FNMSUB_S:
		r = math.FMA(-a, b, d)
	case FNMADD_S:
		r = math.FMA(-a, b, -d)
	}
	rf := float32(r)
	c.raiseFlags(arithFlagsSingle(float32(a), float32(b), rf))
	if math.IsNaN(float64(rf)) {
		rf = math.Float32frombits(canonicalQNaN32Bits)
	}
	c.F.WriteSingle(in.Rd(), rf)
	return nil
}

// execFMADouble implements the double-precision fused multiply-add forms.
func (c *CPU) execFMADouble(in *Instruction) error {
	a := c.F.ReadDouble(in.Rs1())
	b := c.F.ReadDouble(in.Rs2())
	d := c.F.ReadDouble(in.Rs3())
	var r float64
	switch in.Op {
	case FMADD_D:
		r = math.FMA(a, b, d)
	case FMSUB_D:
		r = math.FMA(a, b, -d)
	case FNMSUB_D:
		r = math.FMA(-a, b, d)
	case FNMADD_D:
		r = math.FMA(-a, b, -d)
	}
	c.raiseFlags(arithFlagsDouble(a, b, r))
	if math.IsNaN(r) {
		r = math.Float64frombits(canonicalQNaN64Bits)
	}
	c.F.WriteDouble(in.Rd(), r)
	return nil
}

func isSNaN32(f float32) bool {
	bits := math.Float32bits(f)
	return math.IsNaN(float64(f)) && bits&(1<<22) == 0
}

func isSNaN64(f float64) bool {
	bits := math.Float64bits(f)
	return math.IsNaN(f) && bits&(1<<51) == 0
}
