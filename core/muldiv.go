package core

import "math/bits"

// execMulDiv implements the full-width M-extension ops. MULH* variants
// use 128-bit intermediates via math/bits.Mul64 with the appropriate
// sign correction.
func (c *CPU) execMulDiv(in *Instruction) error {
	a := c.X.Read(in.Rs1())
	b := c.X.Read(in.Rs2())
	var r uint64
	switch in.Op {
	case MUL:
		r = a * b
	case MULH:
		r = uint64(mulhSigned(int64(a), int64(b)))
	case MULHSU:
		r = uint64(mulhSignedUnsigned(int64(a), b))
	case MULHU:
		hi, _ := bits.Mul64(a, b)
		r = hi
	case DIV:
		r = uint64(divSigned(int64(a), int64(b)))
	case DIVU:
		r = divUnsigned(a, b)
	case REM:
		r = uint64(remSigned(int64(a), int64(b)))
	case REMU:
		r = remUnsigned(a, b)
	}
	c.X.Write(in.Rd(), r)
	return nil
}

// execMulDivWord implements the 32-bit *W variants: operate on the low
// 32 bits, sign-extend the result to 64.
func (c *CPU) execMulDivWord(in *Instruction) error {
	a := int32(uint32(c.X.Read(in.Rs1())))
	b := int32(uint32(c.X.Read(in.Rs2())))
	var r32 int32
	switch in.Op {
	case MULW:
		r32 = a * b
	case DIVW:
		r32 = int32(divSigned(int64(a), int64(b)))
	case DIVUW:
		r32 = int32(divUnsigned(uint64(uint32(a)), uint64(uint32(b))))
	case REMW:
		r32 = int32(remSigned(int64(a), int64(b)))
	case REMUW:
		r32 = int32(remUnsigned(uint64(uint32(a)), uint64(uint32(b))))
	}
	c.X.Write(in.Rd(), uint64(SignExtend(uint64(uint32(r32)), 32)))
	return nil
}

func mulhSigned(a, b int64) int64 {
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return int64(hi)
}

func mulhSignedUnsigned(a int64, b uint64) int64 {
	hi, _ := bits.Mul64(uint64(a), b)
	if a < 0 {
		hi -= b
	}
	return int64(hi)
}

// divSigned implements DIV: division by zero yields -1; INT64_MIN / -1
// yields INT64_MIN (standard RISC-V overflow behavior).
func divSigned(a, b int64) int64 {
	if b == 0 {
		return -1
	}
	if a == minInt64 && b == -1 {
		return minInt64
	}
	return a / b
}

// remSigned implements REM: division by zero yields the dividend;
// INT64_MIN % -1 yields 0.
func remSigned(a, b int64) int64 {
	if b == 0 {
		return a
	}
	if a == minInt64 && b == -1 {
		return 0
	}
	return a % b
}

// divUnsigned implements DIVU: division by zero yields all-ones.
func divUnsigned(a, b uint64) uint64 {
	if b == 0 {
		return ^uint64(0)
	}
	return a / b
}

// remUnsigned implements REMU: division by zero yields the dividend.
func remUnsigned(a, b uint64) uint64 {
	if b == 0 {
		return a
	}
	return a % b
}

const minInt64 = int64(-1) << 63
