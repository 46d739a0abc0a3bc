package core

// The canonical instruction identifier enumeration. INVALID is the
// sentinel the decoder returns for anything it does not recognize.
const (
	INVALID ID = iota

	// RV64I base
	LUI
	AUIPC
	JAL
	JALR
	BEQ
	BNE
	BLT
	BGE
	BLTU
	BGEU
	LB
	LH
	LW
	LBU
	LHU
	LWU
	LD
	SB
	SH
	SW
	SD
	ADDI
	SLTI
	SLTIU
	XORI
	ORI
	ANDI
	SLLI
	SRLI
	SRAI
	ADD
	SUB
	SLL
	SLT
	SLTU
	XOR
	SRL
	SRA
	OR
	AND
	FENCE
	FENCEI
	ECALL
	EBREAK
	ADDIW
	SLLIW
	SRLIW
	SRAIW
	ADDW
	SUBW
	SLLW
	SRLW
	SRAW

	// CSR / privilege
	CSRRW
	CSRRS
	CSRRC
	CSRRWI
	CSRRSI
	CSRRCI
	MRET

	// M extension
	MUL
	MULH
	MULHSU
	MULHU
	DIV
	DIVU
	REM
	REMU
	MULW
	DIVW
	DIVUW
	REMW
	REMUW

	// F extension (single precision)
	FLW
	FSW
	FMADD_S
	FMSUB_S
	FNMSUB_S
	FNMADD_S
	FADD_S
	FSUB_S
	FMUL_S
	FDIV_S
	FSQRT_S
	FSGNJ_S
	FSGNJN_S
	FSGNJX_S
	FMIN_S
	FMAX_S
	FCVT_W_S
	FCVT_WU_S
	FCVT_L_S
	FCVT_LU_S
	FMV_X_W
	FEQ_S
	FLT_S
	FLE_S
	FCLASS_S
	FCVT_S_W
	FCVT_S_WU
	FCVT_S_L
	FCVT_S_LU
	FMV_W_X

	// D extension (double precision)
	FLD
	FSD
	FMADD_D
	FMSUB_D
	FNMSUB_D
	FNMADD_D
	FADD_D
	FSUB_D
	FMUL_D
	FDIV_D
	FSQRT_D
	FSGNJ_D
	FSGNJN_D
	FSGNJX_D
	FMIN_D
	FMAX_D
	FCVT_W_D
	FCVT_WU_D
	FCVT_L_D
	FCVT_LU_D
	FMV_X_D
	FEQ_D
	FLT_D
	FLE_D
	FCLASS_D
	FCVT_D_W
	FCVT_D_WU
	FCVT_D_L
	FCVT_D_LU
	FCVT_S_D
	FCVT_D_S
	FMV_D_X

	// Compressed (C extension)
	C_ADDI4SPN
	C_FLD
	C_LW
	C_LD
	C_FSD
	C_SW
	C_SD
	C_NOP
	C_ADDI
	C_ADDIW
	C_JAL
	C_LI
	C_ADDI16SP
	C_LUI
	C_SRLI
	C_SRAI
	C_ANDI
	C_SUB
	C_XOR
	C_OR
	C_AND
	C_SUBW
	C_ADDW
	C_J
	C_BEQZ
	C_BNEZ
	C_SLLI
	C_FLDSP
	C_LWSP
	C_LDSP
	C_JR
	C_MV
	C_EBREAK
	C_JALR
	C_ADD
	C_FSDSP
	C_SWSP
	C_SDSP

	idCount
)

var idNames = [idCount]string{
	INVALID: "INVALID", LUI: "LUI", AUIPC: "AUIPC", JAL: "JAL", JALR: "JALR",
	BEQ: "BEQ", BNE: "BNE", BLT: "BLT", BGE: "BGE", BLTU: "BLTU", BGEU: "BGEU",
	LB: "LB", LH: "LH", LW: "LW", LBU: "LBU", LHU: "LHU", LWU: "LWU", LD: "LD",
	SB: "SB", SH: "SH", SW: "SW", SD: "SD",
	ADDI: "ADDI", SLTI: "SLTI", SLTIU: "SLTIU", XORI: "XORI", ORI: "ORI", ANDI: "ANDI",
	SLLI: "SLLI", SRLI: "SRLI", SRAI: "SRAI",
	ADD: "ADD", SUB: "SUB", SLL: "SLL", SLT: "SLT", SLTU: "SLTU", XOR: "XOR",
	SRL: "SRL", SRA: "SRA", OR: "OR", AND: "AND",
	FENCE: "FENCE", FENCEI: "FENCE.I", ECALL: "ECALL", EBREAK: "EBREAK",
	ADDIW: "ADDIW", SLLIW: "SLLIW", SRLIW: "SRLIW", SRAIW: "SRAIW",
	ADDW: "ADDW", SUBW: "SUBW", SLLW: "SLLW", SRLW: "SRLW", SRAW: "SRAW",
	CSRRW: "CSRRW", CSRRS: "CSRRS", CSRRC: "CSRRC", CSRRWI: "CSRRWI", CSRRSI: "CSRRSI", CSRRCI: "CSRRCI",
	MRET: "MRET",
	MUL: "MUL", MULH: "MULH", MULHSU: "MULHSU", MULHU: "MULHU",
	DIV: "DIV", DIVU: "DIVU", REM: "REM", REMU: "REMU",
	MULW: "MULW", DIVW: "DIVW", DIVUW: "DIVUW", REMW: "REMW", REMUW: "REMUW",
	FLW: "FLW", FSW: "FSW",
	FMADD_S: "FMADD.S", FMSUB_S: "FMSUB.S", FNMSUB_S: "FNMSUB.S", FNMADD_S: "FNMADD.S",
	FADD_S: "FADD.S", FSUB_S: "FSUB.S", FMUL_S: "FMUL.S", FDIV_S: "FDIV.S", FSQRT_S: "FSQRT.S",
	FSGNJ_S: "FSGNJ.S", FSGNJN_S: "FSGNJN.S", FSGNJX_S: "FSGNJX.S",
	FMIN_S: "FMIN.S", FMAX_S: "FMAX.S",
	FCVT_W_S: "FCVT.W.S", FCVT_WU_S: "FCVT.WU.S", FCVT_L_S: "FCVT.L.S", FCVT_LU_S: "FCVT.LU.S",
	FMV_X_W: "FMV.X.W", FEQ_S: "FEQ.S", FLT_S: "FLT.S", FLE_S: "FLE.S", FCLASS_S: "FCLASS.S",
	FCVT_S_W: "FCVT.S.W", FCVT_S_WU: "FCVT.S.WU", FCVT_S_L: "FCVT.S.L", FCVT_S_LU: "FCVT.S.LU",
	FMV_W_X: "FMV.W.X",
	FLD: "FLD", FSD: "FSD",
	FMADD_D: "FMADD.D", FMSUB_D: "FMSUB.D", FNMSUB_D: "FNMSUB.D", FNMADD_D: "FNMADD.D",
	FADD_D: "FADD.D", FSUB_D: "FSUB.D", FMUL_D: "FMUL.D", FDIV_D: "FDIV.D", FSQRT_D: "FSQRT.D",
	FSGNJ_D: "FSGNJ.D", FSGNJN_D: "FSGNJN.D", FSGNJX_D: "FSGNJX.D",
	FMIN_D: "FMIN.D", FMAX_D: "FMAX.D",
	FCVT_W_D: "FCVT.W.D", FCVT_WU_D: "FCVT.WU.D", FCVT_L_D: "FCVT.L.D", FCVT_LU_D: "FCVT.LU.D",
	FMV_X_D: "FMV.X.D", FEQ_D: "FEQ.D", FLT_D: "FLT.D", FLE_D: "FLE.D", FCLASS_D: "FCLASS.D",
	FCVT_D_W: "FCVT.D.W", FCVT_D_WU: "FCVT.D.WU", FCVT_D_L: "FCVT.D.L", FCVT_D_LU: "FCVT.D.LU",
	FCVT_S_D: "FCVT.S.D", FCVT_D_S: "FCVT.D.S", FMV_D_X: "FMV.D.X",
	C_ADDI4SPN: "C.ADDI4SPN", C_FLD: "C.FLD", C_LW: "C.LW", C_LD: "C.LD", C_FSD: "C.FSD",
	C_SW: "C.SW", C_SD: "C.SD", C_NOP: "C.NOP", C_ADDI: "C.ADDI", C_ADDIW: "C.ADDIW", C_JAL: "C.JAL",
	C_LI: "C.LI", C_ADDI16SP: "C.ADDI16SP", C_LUI: "C.LUI",
	C_SRLI: "C.SRLI", C_SRAI: "C.SRAI", C_ANDI: "C.ANDI",
	C_SUB: "C.SUB", C_XOR: "C.XOR", C_OR: "C.OR", C_AND: "C.AND",
	C_SUBW: "C.SUBW", C_ADDW: "C.ADDW",
	C_J: "C.J", C_BEQZ: "C.BEQZ", C_BNEZ: "C.BNEZ", C_SLLI: "C.SLLI",
	C_FLDSP: "C.FLDSP", C_LWSP: "C.LWSP", C_LDSP: "C.LDSP",
	C_JR: "C.JR", C_MV: "C.MV", C_EBREAK: "C.EBREAK", C_JALR: "C.JALR", C_ADD: "C.ADD",
	C_FSDSP: "C.FSDSP", C_SWSP: "C.SWSP", C_SDSP: "C.SDSP",
}

// String renders the mnemonic for diagnostics and tracing.
func (id ID) String() string {
	if int(id) < len(idNames) && idNames[id] != "" {
		return idNames[id]
	}
	return "INVALID"
}
