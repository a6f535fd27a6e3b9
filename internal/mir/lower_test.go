package mir

import (
	"testing"

	"github.com/retroenv/asm8051/internal/parser"
	"github.com/retroenv/asm8051/internal/vocab"
	"github.com/retroenv/retrogolib/assert"
)

func regOp(kind vocab.RegisterKind) parser.Operand {
	return parser.RegisterOperand{Reg: vocab.Register{Kind: kind}}
}

func rOp(n uint8) parser.Operand {
	return parser.RegisterOperand{Reg: vocab.Register{Kind: vocab.RegR, N: n}}
}

func directOp(addr uint8) parser.Operand {
	return parser.DirectOperand{Addr: addr}
}

func bitOp(addr uint8) parser.Operand {
	return parser.DirectBitOperand{Addr: addr}
}

func indirROp(n uint8) parser.Operand {
	return parser.IndirectRegOperand{Reg: vocab.Register{Kind: vocab.RegR, N: n}}
}

func indirDptrOp() parser.Operand {
	return parser.IndirectRegOperand{Reg: vocab.Register{Kind: vocab.RegDPTR}}
}

func sumADptrOp() parser.Operand {
	return parser.IndirectSumOperand{
		Reg1: vocab.Register{Kind: vocab.RegA},
		Reg2: vocab.Register{Kind: vocab.RegDPTR},
	}
}

func sumAPCOp() parser.Operand {
	return parser.IndirectSumOperand{
		Reg1: vocab.Register{Kind: vocab.RegA},
		Reg2: vocab.Register{Kind: vocab.RegPC},
	}
}

func immOp(v int32) parser.Operand {
	return parser.ImmediateOperand{Value: v}
}

func immIDOp(id string) parser.Operand {
	return parser.ImmediateIDOperand{ID: id}
}

// TestLowerAcceptedShapes exercises every operand shape each operator
// accepts, per spec.md §4.4's operator-to-shape table.
func TestLowerAcceptedShapes(t *testing.T) {
	tests := []struct {
		name     string
		operator vocab.Operator
		operands []parser.Operand
		want     Instruction
	}{
		{"acall", vocab.ACALL, []parser.Operand{immOp(0x0800)}, Instruction{Kind: KindAcall, Addr: NumberAddr(0x0800)}},
		{"ajmp", vocab.AJMP, []parser.Operand{immOp(0x0800)}, Instruction{Kind: KindAjmp, Addr: NumberAddr(0x0800)}},
		{"ajmp label", vocab.AJMP, []parser.Operand{immIDOp("here")}, Instruction{Kind: KindAjmp, Addr: LabelAddr("here")}},

		{"add a,reg", vocab.ADD, []parser.Operand{regOp(vocab.RegA), rOp(3)}, Instruction{Kind: KindAddAReg, Reg: 3}},
		{"add a,direct", vocab.ADD, []parser.Operand{regOp(vocab.RegA), directOp(0x20)}, Instruction{Kind: KindAddADirect, Direct: 0x20}},
		{"add a,@ri", vocab.ADD, []parser.Operand{regOp(vocab.RegA), indirROp(0)}, Instruction{Kind: KindAddAIndirReg, Reg: 0}},
		{"add a,#data", vocab.ADD, []parser.Operand{regOp(vocab.RegA), immOp(5)}, Instruction{Kind: KindAddAData, Data: NumberData(5)}},

		{"addc a,reg", vocab.ADDC, []parser.Operand{regOp(vocab.RegA), rOp(1)}, Instruction{Kind: KindAddcAReg, Reg: 1}},
		{"addc a,direct", vocab.ADDC, []parser.Operand{regOp(vocab.RegA), directOp(0x30)}, Instruction{Kind: KindAddcADirect, Direct: 0x30}},
		{"addc a,@ri", vocab.ADDC, []parser.Operand{regOp(vocab.RegA), indirROp(1)}, Instruction{Kind: KindAddcAIndirReg, Reg: 1}},
		{"addc a,#data", vocab.ADDC, []parser.Operand{regOp(vocab.RegA), immOp(0xFF)}, Instruction{Kind: KindAddcAData, Data: NumberData(0xFF)}},

		{"subb a,reg", vocab.SUBB, []parser.Operand{regOp(vocab.RegA), rOp(7)}, Instruction{Kind: KindSubbAReg, Reg: 7}},
		{"subb a,direct", vocab.SUBB, []parser.Operand{regOp(vocab.RegA), directOp(0x40)}, Instruction{Kind: KindSubbADirect, Direct: 0x40}},
		{"subb a,@ri", vocab.SUBB, []parser.Operand{regOp(vocab.RegA), indirROp(0)}, Instruction{Kind: KindSubbAIndirReg, Reg: 0}},
		{"subb a,#data", vocab.SUBB, []parser.Operand{regOp(vocab.RegA), immOp(1)}, Instruction{Kind: KindSubbAData, Data: NumberData(1)}},

		{"anl a,reg", vocab.ANL, []parser.Operand{regOp(vocab.RegA), rOp(2)}, Instruction{Kind: KindAnlAReg, Reg: 2}},
		{"anl a,direct", vocab.ANL, []parser.Operand{regOp(vocab.RegA), directOp(0x21)}, Instruction{Kind: KindAnlADirect, Direct: 0x21}},
		{"anl a,@ri", vocab.ANL, []parser.Operand{regOp(vocab.RegA), indirROp(1)}, Instruction{Kind: KindAnlAIndirReg, Reg: 1}},
		{"anl a,#data", vocab.ANL, []parser.Operand{regOp(vocab.RegA), immOp(0x0F)}, Instruction{Kind: KindAnlAData, Data: NumberData(0x0F)}},
		{"anl direct,a", vocab.ANL, []parser.Operand{directOp(0x22), regOp(vocab.RegA)}, Instruction{Kind: KindAnlDirectA, Direct: 0x22}},
		{"anl direct,#data", vocab.ANL, []parser.Operand{directOp(0x22), immOp(0x0F)}, Instruction{Kind: KindAnlDirectData, Direct: 0x22, Data: NumberData(0x0F)}},
		{"anl c,bit", vocab.ANL, []parser.Operand{regOp(vocab.RegC), bitOp(0x10)}, Instruction{Kind: KindAnlCBit, Bit: 0x10}},

		{"orl a,reg", vocab.ORL, []parser.Operand{regOp(vocab.RegA), rOp(2)}, Instruction{Kind: KindOrlAReg, Reg: 2}},
		{"orl a,direct", vocab.ORL, []parser.Operand{regOp(vocab.RegA), directOp(0x23)}, Instruction{Kind: KindOrlADirect, Direct: 0x23}},
		{"orl a,@ri", vocab.ORL, []parser.Operand{regOp(vocab.RegA), indirROp(0)}, Instruction{Kind: KindOrlAIndirReg, Reg: 0}},
		{"orl a,#data", vocab.ORL, []parser.Operand{regOp(vocab.RegA), immOp(0x01)}, Instruction{Kind: KindOrlAData, Data: NumberData(0x01)}},
		{"orl direct,a", vocab.ORL, []parser.Operand{directOp(0x24), regOp(vocab.RegA)}, Instruction{Kind: KindOrlDirectA, Direct: 0x24}},
		{"orl direct,#data", vocab.ORL, []parser.Operand{directOp(0x24), immOp(0x01)}, Instruction{Kind: KindOrlDirectData, Direct: 0x24, Data: NumberData(0x01)}},
		{"orl c,bit", vocab.ORL, []parser.Operand{regOp(vocab.RegC), bitOp(0x11)}, Instruction{Kind: KindOrlCBit, Bit: 0x11}},

		{"xrl a,reg", vocab.XRL, []parser.Operand{regOp(vocab.RegA), rOp(4)}, Instruction{Kind: KindXrlAReg, Reg: 4}},
		{"xrl a,direct", vocab.XRL, []parser.Operand{regOp(vocab.RegA), directOp(0x25)}, Instruction{Kind: KindXrlADirect, Direct: 0x25}},
		{"xrl a,@ri", vocab.XRL, []parser.Operand{regOp(vocab.RegA), indirROp(1)}, Instruction{Kind: KindXrlAIndirReg, Reg: 1}},
		{"xrl a,#data", vocab.XRL, []parser.Operand{regOp(vocab.RegA), immOp(0x02)}, Instruction{Kind: KindXrlAData, Data: NumberData(0x02)}},
		{"xrl direct,a", vocab.XRL, []parser.Operand{directOp(0x26), regOp(vocab.RegA)}, Instruction{Kind: KindXrlDirectA, Direct: 0x26}},
		{"xrl direct,#data", vocab.XRL, []parser.Operand{directOp(0x26), immOp(0x02)}, Instruction{Kind: KindXrlDirectData, Direct: 0x26, Data: NumberData(0x02)}},

		{"cjne a,direct,rel", vocab.CJNE, []parser.Operand{regOp(vocab.RegA), directOp(0x20), immOp(5)}, Instruction{Kind: KindCjneADirRel, Direct: 0x20, Addr: NumberAddr(5)}},
		{"cjne a,#data,rel", vocab.CJNE, []parser.Operand{regOp(vocab.RegA), immOp(9), immOp(5)}, Instruction{Kind: KindCjneADataRel, Data: NumberData(9), Addr: NumberAddr(5)}},
		{"cjne reg,#data,rel", vocab.CJNE, []parser.Operand{rOp(2), immOp(9), immOp(5)}, Instruction{Kind: KindCjneRegDataRel, Reg: 2, Data: NumberData(9), Addr: NumberAddr(5)}},
		{"cjne @ri,#data,rel", vocab.CJNE, []parser.Operand{indirROp(0), immOp(9), immOp(5)}, Instruction{Kind: KindCjneIndirRegDataRel, Reg: 0, Data: NumberData(9), Addr: NumberAddr(5)}},

		{"clr a", vocab.CLR, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindClrA}},
		{"clr c", vocab.CLR, []parser.Operand{regOp(vocab.RegC)}, Instruction{Kind: KindClrC}},
		{"clr bit", vocab.CLR, []parser.Operand{bitOp(0x12)}, Instruction{Kind: KindClrBit, Bit: 0x12}},

		{"cpl a", vocab.CPL, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindCplA}},
		{"cpl c", vocab.CPL, []parser.Operand{regOp(vocab.RegC)}, Instruction{Kind: KindCplC}},
		{"cpl bit", vocab.CPL, []parser.Operand{bitOp(0x13)}, Instruction{Kind: KindCplBit, Bit: 0x13}},

		{"da a", vocab.DA, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindDaA}},

		{"dec a", vocab.DEC, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindDecA}},
		{"dec reg", vocab.DEC, []parser.Operand{rOp(5)}, Instruction{Kind: KindDecReg, Reg: 5}},
		{"dec direct", vocab.DEC, []parser.Operand{directOp(0x27)}, Instruction{Kind: KindDecDirect, Direct: 0x27}},
		{"dec @ri", vocab.DEC, []parser.Operand{indirROp(1)}, Instruction{Kind: KindDecIndirReg, Reg: 1}},

		{"div ab", vocab.DIV, []parser.Operand{regOp(vocab.RegA), directOp(0xF0)}, Instruction{Kind: KindDivAB}},

		{"djnz reg,rel", vocab.DJNZ, []parser.Operand{rOp(3), immOp(7)}, Instruction{Kind: KindDjnzRegRel, Reg: 3, Addr: NumberAddr(7)}},
		{"djnz direct,rel", vocab.DJNZ, []parser.Operand{directOp(0x28), immOp(7)}, Instruction{Kind: KindDjnzDirectRel, Direct: 0x28, Addr: NumberAddr(7)}},

		{"inc a", vocab.INC, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindIncA}},
		{"inc reg", vocab.INC, []parser.Operand{rOp(6)}, Instruction{Kind: KindIncReg, Reg: 6}},
		{"inc direct", vocab.INC, []parser.Operand{directOp(0x29)}, Instruction{Kind: KindIncDirect, Direct: 0x29}},
		{"inc @ri", vocab.INC, []parser.Operand{indirROp(0)}, Instruction{Kind: KindIncIndirReg, Reg: 0}},
		{"inc dptr", vocab.INC, []parser.Operand{regOp(vocab.RegDPTR)}, Instruction{Kind: KindIncDptr}},

		{"jb bit,rel", vocab.JB, []parser.Operand{bitOp(0x14), immOp(3)}, Instruction{Kind: KindJbBitRel, Bit: 0x14, Addr: NumberAddr(3)}},
		{"jbc bit,rel", vocab.JBC, []parser.Operand{bitOp(0x15), immOp(3)}, Instruction{Kind: KindJbcBitRel, Bit: 0x15, Addr: NumberAddr(3)}},
		{"jnb bit,rel", vocab.JNB, []parser.Operand{bitOp(0x16), immOp(3)}, Instruction{Kind: KindJnbBitRel, Bit: 0x16, Addr: NumberAddr(3)}},

		{"jc rel", vocab.JC, []parser.Operand{immOp(3)}, Instruction{Kind: KindJcRel, Addr: NumberAddr(3)}},
		{"jnc rel", vocab.JNC, []parser.Operand{immOp(3)}, Instruction{Kind: KindJncRel, Addr: NumberAddr(3)}},
		{"jz rel", vocab.JZ, []parser.Operand{immOp(3)}, Instruction{Kind: KindJzRel, Addr: NumberAddr(3)}},
		{"jnz rel", vocab.JNZ, []parser.Operand{immOp(3)}, Instruction{Kind: KindJnzRel, Addr: NumberAddr(3)}},
		{"sjmp rel", vocab.SJMP, []parser.Operand{immOp(3)}, Instruction{Kind: KindSjmp, Addr: NumberAddr(3)}},
		{"jmp @a+dptr", vocab.JMP, []parser.Operand{sumADptrOp()}, Instruction{Kind: KindJmpIndirAPlusDptr}},

		{"lcall", vocab.LCALL, []parser.Operand{immOp(0x1234)}, Instruction{Kind: KindLcall, Addr: NumberAddr(0x1234)}},
		{"lcall label", vocab.LCALL, []parser.Operand{immIDOp("there")}, Instruction{Kind: KindLcall, Addr: LabelAddr("there")}},
		{"ljmp", vocab.LJMP, []parser.Operand{immOp(0x1234)}, Instruction{Kind: KindLjmp, Addr: NumberAddr(0x1234)}},

		{"mov a,reg", vocab.MOV, []parser.Operand{regOp(vocab.RegA), rOp(0)}, Instruction{Kind: KindMovAReg, Reg: 0}},
		{"mov a,direct", vocab.MOV, []parser.Operand{regOp(vocab.RegA), directOp(0x30)}, Instruction{Kind: KindMovADirect, Direct: 0x30}},
		{"mov a,@ri", vocab.MOV, []parser.Operand{regOp(vocab.RegA), indirROp(1)}, Instruction{Kind: KindMovAIndirReg, Reg: 1}},
		{"mov a,#data", vocab.MOV, []parser.Operand{regOp(vocab.RegA), immOp(5)}, Instruction{Kind: KindMovAData, Data: NumberData(5)}},
		{"mov reg,a", vocab.MOV, []parser.Operand{rOp(2), regOp(vocab.RegA)}, Instruction{Kind: KindMovRegA, Reg: 2}},
		{"mov reg,direct", vocab.MOV, []parser.Operand{rOp(2), directOp(0x31)}, Instruction{Kind: KindMovRegDirect, Reg: 2, Direct: 0x31}},
		{"mov reg,#data", vocab.MOV, []parser.Operand{rOp(2), immOp(6)}, Instruction{Kind: KindMovRegData, Reg: 2, Data: NumberData(6)}},
		{"mov c,bit", vocab.MOV, []parser.Operand{regOp(vocab.RegC), bitOp(0x17)}, Instruction{Kind: KindMovCBit, Bit: 0x17}},
		{"mov dptr,#data16", vocab.MOV, []parser.Operand{regOp(vocab.RegDPTR), immOp(0x1234)}, Instruction{Kind: KindMovDptrData, Imm16: NumberAddr(0x1234)}},
		{"mov direct,a", vocab.MOV, []parser.Operand{directOp(0x32), regOp(vocab.RegA)}, Instruction{Kind: KindMovDirectA, Direct: 0x32}},
		{"mov direct,reg", vocab.MOV, []parser.Operand{directOp(0x33), rOp(3)}, Instruction{Kind: KindMovDirectReg, Direct: 0x33, Reg: 3}},
		{"mov direct,direct", vocab.MOV, []parser.Operand{directOp(0x34), directOp(0x35)}, Instruction{Kind: KindMovDirectDirect, Direct: 0x34, Direct2: 0x35}},
		{"mov direct,@ri", vocab.MOV, []parser.Operand{directOp(0x36), indirROp(0)}, Instruction{Kind: KindMovDirectIndirReg, Direct: 0x36, Reg: 0}},
		{"mov direct,#data", vocab.MOV, []parser.Operand{directOp(0x37), immOp(7)}, Instruction{Kind: KindMovDirectData, Direct: 0x37, Data: NumberData(7)}},
		{"mov bit,c", vocab.MOV, []parser.Operand{bitOp(0x18), regOp(vocab.RegC)}, Instruction{Kind: KindMovBitC, Bit: 0x18}},
		{"mov @ri,a", vocab.MOV, []parser.Operand{indirROp(0), regOp(vocab.RegA)}, Instruction{Kind: KindMovIndirRegA, Reg: 0}},
		{"mov @ri,direct", vocab.MOV, []parser.Operand{indirROp(0), directOp(0x38)}, Instruction{Kind: KindMovIndirRegDirect, Reg: 0, Direct: 0x38}},
		{"mov @ri,#data", vocab.MOV, []parser.Operand{indirROp(0), immOp(8)}, Instruction{Kind: KindMovIndirRegData, Reg: 0, Data: NumberData(8)}},

		{"movc a,@a+dptr", vocab.MOVC, []parser.Operand{regOp(vocab.RegA), sumADptrOp()}, Instruction{Kind: KindMovcAIndirAPlusDptr}},
		{"movc a,@a+pc", vocab.MOVC, []parser.Operand{regOp(vocab.RegA), sumAPCOp()}, Instruction{Kind: KindMovcAIndirAPlusPc}},

		{"movx a,@ri", vocab.MOVX, []parser.Operand{regOp(vocab.RegA), indirROp(0)}, Instruction{Kind: KindMovxAIndirReg, Reg: 0}},
		{"movx a,@dptr", vocab.MOVX, []parser.Operand{regOp(vocab.RegA), indirDptrOp()}, Instruction{Kind: KindMovxAIndirDptr}},
		{"movx @ri,a", vocab.MOVX, []parser.Operand{indirROp(0), regOp(vocab.RegA)}, Instruction{Kind: KindMovxIndirRegA, Reg: 0}},
		{"movx @dptr,a", vocab.MOVX, []parser.Operand{indirDptrOp(), regOp(vocab.RegA)}, Instruction{Kind: KindMovxIndirDptrA}},

		{"mul ab", vocab.MUL, []parser.Operand{regOp(vocab.RegA), directOp(0xF0)}, Instruction{Kind: KindMulAB}},

		{"nop", vocab.NOP, nil, Instruction{Kind: KindNop}},

		{"pop direct", vocab.POP, []parser.Operand{directOp(0x39)}, Instruction{Kind: KindPopDirect, Direct: 0x39}},
		{"push direct", vocab.PUSH, []parser.Operand{directOp(0x3A)}, Instruction{Kind: KindPushDirect, Direct: 0x3A}},

		{"ret", vocab.RET, nil, Instruction{Kind: KindRet}},
		{"reti", vocab.RETI, nil, Instruction{Kind: KindReti}},

		{"rl a", vocab.RL, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindRlA}},
		{"rlc a", vocab.RLC, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindRlcA}},
		{"rr a", vocab.RR, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindRrA}},
		{"rrc a", vocab.RRC, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindRrcA}},
		{"swap a", vocab.SWAP, []parser.Operand{regOp(vocab.RegA)}, Instruction{Kind: KindSwapA}},

		{"setb c", vocab.SETB, []parser.Operand{regOp(vocab.RegC)}, Instruction{Kind: KindSetbC}},
		{"setb bit", vocab.SETB, []parser.Operand{bitOp(0x19)}, Instruction{Kind: KindSetbBit, Bit: 0x19}},

		{"xch a,reg", vocab.XCH, []parser.Operand{regOp(vocab.RegA), rOp(3)}, Instruction{Kind: KindXchAReg, Reg: 3}},
		{"xch a,direct", vocab.XCH, []parser.Operand{regOp(vocab.RegA), directOp(0x3B)}, Instruction{Kind: KindXchADirect, Direct: 0x3B}},
		{"xch a,@ri", vocab.XCH, []parser.Operand{regOp(vocab.RegA), indirROp(1)}, Instruction{Kind: KindXchAIndirReg, Reg: 1}},

		{"xchd a,@ri", vocab.XCHD, []parser.Operand{regOp(vocab.RegA), indirROp(0)}, Instruction{Kind: KindXchdAIndirReg, Reg: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Lower(tc.operator, tc.operands)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLowerMovFromEquIdentifiers checks that MOV's data/addr operand
// shapes that accept a bare identifier defer to an IdentifierData or
// LabelAddr, rather than a literal NumberData/NumberAddr.
func TestLowerMovFromEquIdentifiers(t *testing.T) {
	got, err := Lower(vocab.MOV, []parser.Operand{regOp(vocab.RegA), immIDOp("N")})
	assert.NoError(t, err)
	assert.Equal(t, Instruction{Kind: KindMovAData, Data: IdentifierData("N")}, got)

	got, err = Lower(vocab.MOV, []parser.Operand{regOp(vocab.RegDPTR), immIDOp("TABLE")})
	assert.NoError(t, err)
	assert.Equal(t, Instruction{Kind: KindMovDptrData, Imm16: LabelAddr("TABLE")}, got)
}

// TestLowerRejectsInvalidShapes verifies at least one rejected operand
// shape or arity per operator.
func TestLowerRejectsInvalidShapes(t *testing.T) {
	tests := []struct {
		name     string
		operator vocab.Operator
		operands []parser.Operand
	}{
		{"acall wrong arity", vocab.ACALL, nil},
		{"ajmp bad shape", vocab.AJMP, []parser.Operand{regOp(vocab.RegA)}},
		{"add wrong arity", vocab.ADD, []parser.Operand{regOp(vocab.RegA)}},
		{"add dst not a", vocab.ADD, []parser.Operand{rOp(0), regOp(vocab.RegA)}},
		{"addc bad src", vocab.ADDC, []parser.Operand{regOp(vocab.RegA), regOp(vocab.RegC)}},
		{"subb bad src", vocab.SUBB, []parser.Operand{regOp(vocab.RegA), regOp(vocab.RegDPTR)}},
		{"anl bad dst", vocab.ANL, []parser.Operand{regOp(vocab.RegDPTR), regOp(vocab.RegA)}},
		{"orl bad dst", vocab.ORL, []parser.Operand{regOp(vocab.RegDPTR), regOp(vocab.RegA)}},
		{"xrl no cbit form", vocab.XRL, []parser.Operand{regOp(vocab.RegC), bitOp(0x10)}},
		{"call always rejected", vocab.CALL, []parser.Operand{immOp(0x100)}},
		{"cjne wrong arity", vocab.CJNE, []parser.Operand{regOp(vocab.RegA), immOp(1)}},
		{"clr bad shape", vocab.CLR, []parser.Operand{regOp(vocab.RegDPTR)}},
		{"cpl bad shape", vocab.CPL, []parser.Operand{regOp(vocab.RegPC)}},
		{"da wrong arity", vocab.DA, []parser.Operand{regOp(vocab.RegA), regOp(vocab.RegA)}},
		{"dec dptr rejected", vocab.DEC, []parser.Operand{regOp(vocab.RegDPTR)}},
		{"div bad second operand", vocab.DIV, []parser.Operand{regOp(vocab.RegA), regOp(vocab.RegA)}},
		{"djnz bad first operand", vocab.DJNZ, []parser.Operand{regOp(vocab.RegA), immOp(1)}},
		{"inc bad shape", vocab.INC, []parser.Operand{regOp(vocab.RegC)}},
		{"jb wrong arity", vocab.JB, []parser.Operand{bitOp(0x10)}},
		{"jbc wrong arity", vocab.JBC, []parser.Operand{bitOp(0x10)}},
		{"jnb wrong arity", vocab.JNB, []parser.Operand{bitOp(0x10)}},
		{"jc wrong arity", vocab.JC, nil},
		{"jnc wrong arity", vocab.JNC, nil},
		{"jz wrong arity", vocab.JZ, nil},
		{"jnz wrong arity", vocab.JNZ, nil},
		{"sjmp wrong arity", vocab.SJMP, nil},
		{"jmp bad shape", vocab.JMP, []parser.Operand{sumAPCOp()}},
		{"lcall wrong arity", vocab.LCALL, nil},
		{"ljmp wrong arity", vocab.LJMP, nil},
		{"mov wrong arity", vocab.MOV, []parser.Operand{regOp(vocab.RegA)}},
		{"mov a,c rejected", vocab.MOV, []parser.Operand{regOp(vocab.RegA), regOp(vocab.RegC)}},
		{"movc wrong first operand", vocab.MOVC, []parser.Operand{rOp(0), sumADptrOp()}},
		{"movx bad shape", vocab.MOVX, []parser.Operand{regOp(vocab.RegA), directOp(0x20)}},
		{"mul bad second operand", vocab.MUL, []parser.Operand{regOp(vocab.RegA), directOp(0x00)}},
		{"nop wrong arity", vocab.NOP, []parser.Operand{regOp(vocab.RegA)}},
		{"pop bad shape", vocab.POP, []parser.Operand{regOp(vocab.RegA)}},
		{"push bad shape", vocab.PUSH, []parser.Operand{regOp(vocab.RegA)}},
		{"ret wrong arity", vocab.RET, []parser.Operand{regOp(vocab.RegA)}},
		{"reti wrong arity", vocab.RETI, []parser.Operand{regOp(vocab.RegA)}},
		{"rl bad shape", vocab.RL, []parser.Operand{rOp(0)}},
		{"rlc bad shape", vocab.RLC, []parser.Operand{rOp(0)}},
		{"rr bad shape", vocab.RR, []parser.Operand{rOp(0)}},
		{"rrc bad shape", vocab.RRC, []parser.Operand{rOp(0)}},
		{"swap bad shape", vocab.SWAP, []parser.Operand{rOp(0)}},
		{"setb bad shape", vocab.SETB, []parser.Operand{regOp(vocab.RegA)}},
		{"xch bad dst", vocab.XCH, []parser.Operand{rOp(0), regOp(vocab.RegA)}},
		{"xch bad src shape", vocab.XCH, []parser.Operand{regOp(vocab.RegA), immOp(1)}},
		{"xchd bad src shape", vocab.XCHD, []parser.Operand{regOp(vocab.RegA), rOp(0)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Lower(tc.operator, tc.operands)
			assert.Error(t, err)
		})
	}
}

func TestLowerReportsArityErrors(t *testing.T) {
	_, err := Lower(vocab.ADD, []parser.Operand{regOp(vocab.RegA)})
	var arityErr *InvalidNumOperandsError
	assert.ErrorAs(t, err, &arityErr)
}

func TestLowerReportsOperandShapeErrors(t *testing.T) {
	_, err := Lower(vocab.INC, []parser.Operand{regOp(vocab.RegC)})
	var shapeErr *InvalidOperandError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestLowerReportsByteRangeImmediately(t *testing.T) {
	_, err := Lower(vocab.ADD, []parser.Operand{regOp(vocab.RegA), immOp(1000)})
	var rangeErr *InvalidByteError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestLowerCallIsUnsupported(t *testing.T) {
	_, err := Lower(vocab.CALL, []parser.Operand{immOp(0x100)})
	var unsupported *UnsupportedOperatorError
	assert.ErrorAs(t, err, &unsupported)
}
