package core

import (
	"testing"

	"github.com/rvsim/rv64sim/testenc"
)

// TestDecode_RoundTrip exercises the decode/encode round-trip property:
// assembling a word from its fields and decoding it yields the expected
// identifier.
func TestDecode_RoundTrip(t *testing.T) {
	dec := NewDecoder()

	cases := []struct {
		name string
		word uint32
		want ID
	}{
		{"ADD", testenc.RType(0x00, 2, 1, 0x0, 3, testenc.OpcodeOp), ADD},
		{"SUB", testenc.RType(0x20, 2, 1, 0x0, 3, testenc.OpcodeOp), SUB},
		{"SLL", testenc.RType(0x00, 2, 1, 0x1, 3, testenc.OpcodeOp), SLL},
		{"SRA", testenc.RType(0x20, 2, 1, 0x5, 3, testenc.OpcodeOp), SRA},
		{"ADDW", testenc.RType(0x00, 2, 1, 0x0, 3, testenc.OpcodeOp32), ADDW},
		{"MUL", testenc.RType(0x01, 2, 1, 0x0, 3, testenc.OpcodeOp), MUL},
		{"DIVU", testenc.RType(0x01, 2, 1, 0x5, 3, testenc.OpcodeOp), DIVU},
		{"ADDI", testenc.IType(100, 1, 0x0, 3, testenc.OpcodeOpImm), ADDI},
		{"SLTIU", testenc.IType(-1, 1, 0x3, 3, testenc.OpcodeOpImm), SLTIU},
		{"JALR", testenc.IType(4, 1, 0x0, 3, testenc.OpcodeJALR), JALR},
		{"LB", testenc.IType(0, 1, 0x0, 3, testenc.OpcodeLoad), LB},
		{"LD", testenc.IType(0, 1, 0x3, 3, testenc.OpcodeLoad), LD},
		{"SB", testenc.SType(0, 2, 1, 0x0, testenc.OpcodeStore), SB},
		{"SD", testenc.SType(0, 2, 1, 0x3, testenc.OpcodeStore), SD},
		{"BEQ", testenc.BType(0, 2, 1, 0x0, testenc.OpcodeBranch), BEQ},
		{"BLTU", testenc.BType(0, 2, 1, 0x6, testenc.OpcodeBranch), BLTU},
		{"LUI", testenc.UType(0x12345, 1, testenc.OpcodeLUI), LUI},
		{"AUIPC", testenc.UType(0x12345, 1, testenc.OpcodeAUIPC), AUIPC},
		{"JAL", testenc.JType(0, 1, testenc.OpcodeJAL), JAL},
		{"FADD.S", testenc.RType(0x00, 2, 1, 0x0, 3, testenc.OpcodeOpFP), FADD_S},
		{"FADD.D", testenc.RType(0x01, 2, 1, 0x0, 3, testenc.OpcodeOpFP), FADD_D},
		{"FMADD.S", testenc.R4Type(4, 0, 2, 1, 0x0, 3, testenc.OpcodeFMADD), FMADD_S},
		{"FMADD.D", testenc.R4Type(4, 1, 2, 1, 0x0, 3, testenc.OpcodeFMADD), FMADD_D},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := dec.Decode(tc.word)
			if in.Op != tc.want {
				t.Fatalf("decode 0x%08x: got %s, want %s", tc.word, in.Op, tc.want)
			}
			if in.Length != 4 {
				t.Fatalf("decode 0x%08x: length = %d, want 4", tc.word, in.Length)
			}
		})
	}
}

func TestDecode_InvalidOpcode(t *testing.T) {
	dec := NewDecoder()
	in := dec.Decode(0x0000007f) // opcode 0x7f isn't a defined major opcode
	if in.Op != INVALID {
		t.Fatalf("got %s, want INVALID", in.Op)
	}
}

func TestDecode_CompressedQuadrantSelection(t *testing.T) {
	dec := NewDecoder()
	// C.NOP: quadrant 1, funct3 0, all other fields zero.
	in := dec.Decode(0x0001)
	if in.Length != 2 {
		t.Fatalf("length = %d, want 2", in.Length)
	}
	if in.Op != C_NOP {
		t.Fatalf("got %s, want C.NOP", in.Op)
	}
}

func TestDecode_ImmBtypeSignBit(t *testing.T) {
	dec := NewDecoder()
	word := testenc.BType(-4, 2, 1, 0x0, testenc.OpcodeBranch)
	in := dec.Decode(word)
	if in.Op != BEQ {
		t.Fatalf("got %s, want BEQ", in.Op)
	}
	got := int64(SignExtend(in.ImmBtype(), 13))
	if got != -4 {
		t.Fatalf("ImmBtype sign-extended = %d, want -4", got)
	}
}

func TestDecode_ImmJtypeSignBit(t *testing.T) {
	dec := NewDecoder()
	word := testenc.JType(-2048, 1, testenc.OpcodeJAL)
	in := dec.Decode(word)
	if in.Op != JAL {
		t.Fatalf("got %s, want JAL", in.Op)
	}
	got := int64(SignExtend(in.ImmJtype(), 21))
	if got != -2048 {
		t.Fatalf("ImmJtype sign-extended = %d, want -2048", got)
	}
}
