package mir

import (
	"github.com/retroenv/asm8051/internal/parser"
	"github.com/retroenv/asm8051/internal/vocab"
)

// Lower validates a CodeLine's operand shapes against the operator's
// accepted forms (spec table in the operator-to-shape mapping) and
// produces the matching MIR Instruction. CALL is accepted by the
// grammar but has no encoding: lowering it is always an error.
func Lower(operator vocab.Operator, operands []parser.Operand) (Instruction, error) {
	switch operator {
	case vocab.ACALL:
		return lowerAcallAjmp(operator, operands, KindAcall)
	case vocab.AJMP:
		return lowerAcallAjmp(operator, operands, KindAjmp)
	case vocab.ADD:
		return lowerArithAReg(operator, operands, KindAddAReg, KindAddADirect, KindAddAIndirReg, KindAddAData)
	case vocab.ADDC:
		return lowerArithAReg(operator, operands, KindAddcAReg, KindAddcADirect, KindAddcAIndirReg, KindAddcAData)
	case vocab.SUBB:
		return lowerArithAReg(operator, operands, KindSubbAReg, KindSubbADirect, KindSubbAIndirReg, KindSubbAData)
	case vocab.ANL:
		return lowerArithBit(operator, operands, anlKinds)
	case vocab.ORL:
		return lowerArithBit(operator, operands, orlKinds)
	case vocab.XRL:
		return lowerArithBit(operator, operands, xrlKinds)
	case vocab.CALL:
		return Instruction{}, &UnsupportedOperatorError{Operator: operator}
	case vocab.CJNE:
		return lowerCjne(operands)
	case vocab.CLR:
		return lowerClrCpl(operator, operands, KindClrA, KindClrC, KindClrBit)
	case vocab.CPL:
		return lowerClrCpl(operator, operands, KindCplA, KindCplC, KindCplBit)
	case vocab.DA:
		return lowerUnaryA(operator, operands, KindDaA)
	case vocab.DEC:
		return lowerIncDec(operator, operands, KindDecA, KindDecReg, KindDecDirect, KindDecIndirReg, false)
	case vocab.DIV:
		return lowerMulDiv(operator, operands, KindDivAB)
	case vocab.DJNZ:
		return lowerDjnz(operands)
	case vocab.INC:
		return lowerIncDec(operator, operands, KindIncA, KindIncReg, KindIncDirect, KindIncIndirReg, true)
	case vocab.JB:
		return lowerBitRel(operator, operands, KindJbBitRel)
	case vocab.JBC:
		return lowerBitRel(operator, operands, KindJbcBitRel)
	case vocab.JNB:
		return lowerBitRel(operator, operands, KindJnbBitRel)
	case vocab.JC:
		return lowerRel(operator, operands, KindJcRel)
	case vocab.JNC:
		return lowerRel(operator, operands, KindJncRel)
	case vocab.JZ:
		return lowerRel(operator, operands, KindJzRel)
	case vocab.JNZ:
		return lowerRel(operator, operands, KindJnzRel)
	case vocab.SJMP:
		return lowerRel(operator, operands, KindSjmp)
	case vocab.JMP:
		return lowerJmp(operands)
	case vocab.LCALL:
		return lowerLcallLjmp(operator, operands, KindLcall)
	case vocab.LJMP:
		return lowerLcallLjmp(operator, operands, KindLjmp)
	case vocab.MOV:
		return lowerMov(operands)
	case vocab.MOVC:
		return lowerMovc(operands)
	case vocab.MOVX:
		return lowerMovx(operands)
	case vocab.MUL:
		return lowerMulDiv(operator, operands, KindMulAB)
	case vocab.NOP:
		return lowerNullary(operator, operands, KindNop)
	case vocab.POP:
		return lowerPushPop(operator, operands, KindPopDirect)
	case vocab.PUSH:
		return lowerPushPop(operator, operands, KindPushDirect)
	case vocab.RET:
		return lowerNullary(operator, operands, KindRet)
	case vocab.RETI:
		return lowerNullary(operator, operands, KindReti)
	case vocab.RL:
		return lowerUnaryA(operator, operands, KindRlA)
	case vocab.RLC:
		return lowerUnaryA(operator, operands, KindRlcA)
	case vocab.RR:
		return lowerUnaryA(operator, operands, KindRrA)
	case vocab.RRC:
		return lowerUnaryA(operator, operands, KindRrcA)
	case vocab.SETB:
		return lowerSetb(operands)
	case vocab.SWAP:
		return lowerUnaryA(operator, operands, KindSwapA)
	case vocab.XCH:
		return lowerXch(operands)
	case vocab.XCHD:
		return lowerXchd(operands)
	default:
		return Instruction{}, &UnsupportedOperatorError{Operator: operator}
	}
}

// --- operand shape helpers -------------------------------------------------

func toRegNum(op parser.Operand) (vocab.Register, bool) {
	r, ok := op.(parser.RegisterOperand)
	if !ok {
		return vocab.Register{}, false
	}
	return r.Reg, true
}

func toIndirectRi(op parser.Operand) (uint8, bool) {
	ir, ok := op.(parser.IndirectRegOperand)
	if !ok || ir.Reg.Kind != vocab.RegR || ir.Reg.N > 1 {
		return 0, false
	}
	return ir.Reg.N, true
}

func isIndirectDptr(op parser.Operand) bool {
	ir, ok := op.(parser.IndirectRegOperand)
	return ok && ir.Reg.Kind == vocab.RegDPTR
}

func isIndirectSumADptr(op parser.Operand) bool {
	s, ok := op.(parser.IndirectSumOperand)
	return ok && s.Reg1.Kind == vocab.RegA && s.Reg2.Kind == vocab.RegDPTR
}

func isIndirectSumAPC(op parser.Operand) bool {
	s, ok := op.(parser.IndirectSumOperand)
	return ok && s.Reg1.Kind == vocab.RegA && s.Reg2.Kind == vocab.RegPC
}

func toDirect(op parser.Operand) (uint8, bool) {
	d, ok := op.(parser.DirectOperand)
	if !ok {
		return 0, false
	}
	return d.Addr, true
}

func toDirectBit(op parser.Operand) (uint8, bool) {
	d, ok := op.(parser.DirectBitOperand)
	if !ok {
		return 0, false
	}
	return d.Addr, true
}

// toDataRef matches an operand as a byte-sized immediate. matched is
// false when the operand isn't an immediate shape at all; a range
// violation on a literal number is a real error, reported immediately
// since identifiers defer their check to encode time (spec §4.4).
func toDataRef(op parser.Operand, lo, hi int32) (ref DataRef, matched bool, err error) {
	switch o := op.(type) {
	case parser.ImmediateOperand:
		if o.Value < lo || o.Value > hi {
			return nil, true, &InvalidByteError{Value: o.Value}
		}
		return NumberData(uint8(o.Value)), true, nil
	case parser.ImmediateIDOperand:
		return IdentifierData(o.ID), true, nil
	default:
		return nil, false, nil
	}
}

func toAddrRef(op parser.Operand, lo, hi int32) (ref AddrRef, matched bool, err error) {
	switch o := op.(type) {
	case parser.ImmediateOperand:
		if o.Value < lo || o.Value > hi {
			return nil, true, &InvalidWordError{Value: o.Value}
		}
		return NumberAddr(uint16(o.Value)), true, nil
	case parser.ImmediateIDOperand:
		return LabelAddr(o.ID), true, nil
	default:
		return nil, false, nil
	}
}

func numOperandsErr(operator vocab.Operator, got int, expected string) error {
	return &InvalidNumOperandsError{Operator: operator, Got: got, Expected: expected}
}

func operandErr(operator vocab.Operator, pos int, op parser.Operand) error {
	return &InvalidOperandError{Operator: operator, Pos: pos, Shape: op.String()}
}

// --- shared shape families --------------------------------------------------

func lowerArithAReg(operator vocab.Operator, operands []parser.Operand, kReg, kDirect, kIndirReg, kData Kind) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(operator, len(operands), "2")
	}
	o0, o1 := operands[0], operands[1]
	r0, ok := toRegNum(o0)
	if !ok || r0.Kind != vocab.RegA {
		return Instruction{}, operandErr(operator, 0, o0)
	}
	if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegR {
		return Instruction{Kind: kReg, Reg: r1.N}, nil
	}
	if d, ok := toDirect(o1); ok {
		return Instruction{Kind: kDirect, Direct: d}, nil
	}
	if i, ok := toIndirectRi(o1); ok {
		return Instruction{Kind: kIndirReg, Reg: i}, nil
	}
	if data, matched, err := toDataRef(o1, -128, 255); matched {
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Kind: kData, Data: data}, nil
	}
	return Instruction{}, operandErr(operator, 1, o1)
}

// arithBitKinds groups the seven Kind values shared by ANL/ORL/XRL: the
// accumulator-source forms, the direct-destination forms, and the
// carry-bit form.
type arithBitKinds struct {
	AReg, ADirect, AIndirReg, AData Kind
	DirectA, DirectData             Kind
	CBit                             Kind
}

var (
	anlKinds = arithBitKinds{KindAnlAReg, KindAnlADirect, KindAnlAIndirReg, KindAnlAData, KindAnlDirectA, KindAnlDirectData, KindAnlCBit}
	orlKinds = arithBitKinds{KindOrlAReg, KindOrlADirect, KindOrlAIndirReg, KindOrlAData, KindOrlDirectA, KindOrlDirectData, KindOrlCBit}
	xrlKinds = arithBitKinds{KindXrlAReg, KindXrlADirect, KindXrlAIndirReg, KindXrlAData, KindXrlDirectA, KindXrlDirectData, 0}
)

func lowerArithBit(operator vocab.Operator, operands []parser.Operand, k arithBitKinds) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(operator, len(operands), "2")
	}
	o0, o1 := operands[0], operands[1]

	if r0, ok := toRegNum(o0); ok && r0.Kind == vocab.RegA {
		if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegR {
			return Instruction{Kind: k.AReg, Reg: r1.N}, nil
		}
		if d, ok := toDirect(o1); ok {
			return Instruction{Kind: k.ADirect, Direct: d}, nil
		}
		if i, ok := toIndirectRi(o1); ok {
			return Instruction{Kind: k.AIndirReg, Reg: i}, nil
		}
		if data, matched, err := toDataRef(o1, -128, 255); matched {
			if err != nil {
				return Instruction{}, err
			}
			return Instruction{Kind: k.AData, Data: data}, nil
		}
		return Instruction{}, operandErr(operator, 1, o1)
	}

	if d0, ok := toDirect(o0); ok {
		if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegA {
			return Instruction{Kind: k.DirectA, Direct: d0}, nil
		}
		if data, matched, err := toDataRef(o1, -128, 255); matched {
			if err != nil {
				return Instruction{}, err
			}
			return Instruction{Kind: k.DirectData, Direct: d0, Data: data}, nil
		}
		return Instruction{}, operandErr(operator, 1, o1)
	}

	if r0, ok := toRegNum(o0); ok && r0.Kind == vocab.RegC && operator != vocab.XRL {
		if bit, ok := toDirectBit(o1); ok {
			return Instruction{Kind: k.CBit, Bit: bit}, nil
		}
		return Instruction{}, operandErr(operator, 1, o1)
	}

	return Instruction{}, operandErr(operator, 0, o0)
}

func lowerIncDec(operator vocab.Operator, operands []parser.Operand, kA, kReg, kDirect, kIndirReg Kind, allowDptr bool) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(operator, len(operands), "1")
	}
	o0 := operands[0]
	if r, ok := toRegNum(o0); ok {
		switch r.Kind {
		case vocab.RegA:
			return Instruction{Kind: kA}, nil
		case vocab.RegR:
			return Instruction{Kind: kReg, Reg: r.N}, nil
		case vocab.RegDPTR:
			if allowDptr {
				return Instruction{Kind: KindIncDptr}, nil
			}
		}
	}
	if d, ok := toDirect(o0); ok {
		return Instruction{Kind: kDirect, Direct: d}, nil
	}
	if i, ok := toIndirectRi(o0); ok {
		return Instruction{Kind: kIndirReg, Reg: i}, nil
	}
	return Instruction{}, operandErr(operator, 0, o0)
}

func lowerMulDiv(operator vocab.Operator, operands []parser.Operand, kind Kind) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(operator, len(operands), "2")
	}
	r0, ok := toRegNum(operands[0])
	if !ok || r0.Kind != vocab.RegA {
		return Instruction{}, operandErr(operator, 0, operands[0])
	}
	d1, ok := toDirect(operands[1])
	if !ok || d1 != 0xF0 {
		return Instruction{}, operandErr(operator, 1, operands[1])
	}
	return Instruction{Kind: kind}, nil
}

func lowerUnaryA(operator vocab.Operator, operands []parser.Operand, kind Kind) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(operator, len(operands), "1")
	}
	r, ok := toRegNum(operands[0])
	if !ok || r.Kind != vocab.RegA {
		return Instruction{}, operandErr(operator, 0, operands[0])
	}
	return Instruction{Kind: kind}, nil
}

func lowerNullary(operator vocab.Operator, operands []parser.Operand, kind Kind) (Instruction, error) {
	if len(operands) != 0 {
		return Instruction{}, numOperandsErr(operator, len(operands), "0")
	}
	return Instruction{Kind: kind}, nil
}

func lowerPushPop(operator vocab.Operator, operands []parser.Operand, kind Kind) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(operator, len(operands), "1")
	}
	d, ok := toDirect(operands[0])
	if !ok {
		return Instruction{}, operandErr(operator, 0, operands[0])
	}
	return Instruction{Kind: kind, Direct: d}, nil
}

func lowerClrCpl(operator vocab.Operator, operands []parser.Operand, kA, kC, kBit Kind) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(operator, len(operands), "1")
	}
	o0 := operands[0]
	if r, ok := toRegNum(o0); ok {
		switch r.Kind {
		case vocab.RegA:
			return Instruction{Kind: kA}, nil
		case vocab.RegC:
			return Instruction{Kind: kC}, nil
		}
	}
	if bit, ok := toDirectBit(o0); ok {
		return Instruction{Kind: kBit, Bit: bit}, nil
	}
	return Instruction{}, operandErr(operator, 0, o0)
}

func lowerSetb(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(vocab.SETB, len(operands), "1")
	}
	o0 := operands[0]
	if r, ok := toRegNum(o0); ok && r.Kind == vocab.RegC {
		return Instruction{Kind: KindSetbC}, nil
	}
	if bit, ok := toDirectBit(o0); ok {
		return Instruction{Kind: KindSetbBit, Bit: bit}, nil
	}
	return Instruction{}, operandErr(vocab.SETB, 0, o0)
}

func lowerAcallAjmp(operator vocab.Operator, operands []parser.Operand, kind Kind) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(operator, len(operands), "1")
	}
	addr, matched, err := toAddrRef(operands[0], 0, 2048)
	if !matched {
		return Instruction{}, operandErr(operator, 0, operands[0])
	}
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Kind: kind, Addr: addr}, nil
}

func lowerLcallLjmp(operator vocab.Operator, operands []parser.Operand, kind Kind) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(operator, len(operands), "1")
	}
	addr, matched, err := toAddrRef(operands[0], 0, 65535)
	if !matched {
		return Instruction{}, operandErr(operator, 0, operands[0])
	}
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Kind: kind, Addr: addr}, nil
}

func lowerRel(operator vocab.Operator, operands []parser.Operand, kind Kind) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(operator, len(operands), "1")
	}
	addr, matched, err := toAddrRef(operands[0], 0, 65535)
	if !matched {
		return Instruction{}, operandErr(operator, 0, operands[0])
	}
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Kind: kind, Addr: addr}, nil
}

func lowerBitRel(operator vocab.Operator, operands []parser.Operand, kind Kind) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(operator, len(operands), "2")
	}
	bit, ok := toDirectBit(operands[0])
	if !ok {
		return Instruction{}, operandErr(operator, 0, operands[0])
	}
	addr, matched, err := toAddrRef(operands[1], 0, 65535)
	if !matched {
		return Instruction{}, operandErr(operator, 1, operands[1])
	}
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Kind: kind, Bit: bit, Addr: addr}, nil
}

func lowerDjnz(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(vocab.DJNZ, len(operands), "2")
	}
	addr, matched, err := toAddrRef(operands[1], 0, 65535)
	if !matched {
		return Instruction{}, operandErr(vocab.DJNZ, 1, operands[1])
	}
	if err != nil {
		return Instruction{}, err
	}
	if r, ok := toRegNum(operands[0]); ok && r.Kind == vocab.RegR {
		return Instruction{Kind: KindDjnzRegRel, Reg: r.N, Addr: addr}, nil
	}
	if d, ok := toDirect(operands[0]); ok {
		return Instruction{Kind: KindDjnzDirectRel, Direct: d, Addr: addr}, nil
	}
	return Instruction{}, operandErr(vocab.DJNZ, 0, operands[0])
}

func lowerCjne(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 3 {
		return Instruction{}, numOperandsErr(vocab.CJNE, len(operands), "3")
	}
	addr, matched, err := toAddrRef(operands[2], 0, 65535)
	if !matched {
		return Instruction{}, operandErr(vocab.CJNE, 2, operands[2])
	}
	if err != nil {
		return Instruction{}, err
	}

	if r0, ok := toRegNum(operands[0]); ok && r0.Kind == vocab.RegA {
		if d, ok := toDirect(operands[1]); ok {
			return Instruction{Kind: KindCjneADirRel, Direct: d, Addr: addr}, nil
		}
		if data, matched, err := toDataRef(operands[1], -128, 255); matched {
			if err != nil {
				return Instruction{}, err
			}
			return Instruction{Kind: KindCjneADataRel, Data: data, Addr: addr}, nil
		}
		return Instruction{}, operandErr(vocab.CJNE, 1, operands[1])
	}
	if r0, ok := toRegNum(operands[0]); ok && r0.Kind == vocab.RegR {
		data, matched, err := toDataRef(operands[1], -128, 255)
		if !matched {
			return Instruction{}, operandErr(vocab.CJNE, 1, operands[1])
		}
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Kind: KindCjneRegDataRel, Reg: r0.N, Data: data, Addr: addr}, nil
	}
	if i, ok := toIndirectRi(operands[0]); ok {
		data, matched, err := toDataRef(operands[1], -128, 255)
		if !matched {
			return Instruction{}, operandErr(vocab.CJNE, 1, operands[1])
		}
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Kind: KindCjneIndirRegDataRel, Reg: i, Data: data, Addr: addr}, nil
	}
	return Instruction{}, operandErr(vocab.CJNE, 0, operands[0])
}

func lowerJmp(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 1 {
		return Instruction{}, numOperandsErr(vocab.JMP, len(operands), "1")
	}
	if isIndirectSumADptr(operands[0]) {
		return Instruction{Kind: KindJmpIndirAPlusDptr}, nil
	}
	return Instruction{}, operandErr(vocab.JMP, 0, operands[0])
}

func lowerMovc(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(vocab.MOVC, len(operands), "2")
	}
	r0, ok := toRegNum(operands[0])
	if !ok || r0.Kind != vocab.RegA {
		return Instruction{}, operandErr(vocab.MOVC, 0, operands[0])
	}
	if isIndirectSumADptr(operands[1]) {
		return Instruction{Kind: KindMovcAIndirAPlusDptr}, nil
	}
	if isIndirectSumAPC(operands[1]) {
		return Instruction{Kind: KindMovcAIndirAPlusPc}, nil
	}
	return Instruction{}, operandErr(vocab.MOVC, 1, operands[1])
}

func lowerMovx(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(vocab.MOVX, len(operands), "2")
	}
	o0, o1 := operands[0], operands[1]
	if r0, ok := toRegNum(o0); ok && r0.Kind == vocab.RegA {
		if i, ok := toIndirectRi(o1); ok {
			return Instruction{Kind: KindMovxAIndirReg, Reg: i}, nil
		}
		if isIndirectDptr(o1) {
			return Instruction{Kind: KindMovxAIndirDptr}, nil
		}
		return Instruction{}, operandErr(vocab.MOVX, 1, o1)
	}
	if i, ok := toIndirectRi(o0); ok {
		if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegA {
			return Instruction{Kind: KindMovxIndirRegA, Reg: i}, nil
		}
		return Instruction{}, operandErr(vocab.MOVX, 1, o1)
	}
	if isIndirectDptr(o0) {
		if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegA {
			return Instruction{Kind: KindMovxIndirDptrA}, nil
		}
		return Instruction{}, operandErr(vocab.MOVX, 1, o1)
	}
	return Instruction{}, operandErr(vocab.MOVX, 0, o0)
}

func lowerXch(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(vocab.XCH, len(operands), "2")
	}
	r0, ok := toRegNum(operands[0])
	if !ok || r0.Kind != vocab.RegA {
		return Instruction{}, operandErr(vocab.XCH, 0, operands[0])
	}
	if r1, ok := toRegNum(operands[1]); ok && r1.Kind == vocab.RegR {
		return Instruction{Kind: KindXchAReg, Reg: r1.N}, nil
	}
	if d, ok := toDirect(operands[1]); ok {
		return Instruction{Kind: KindXchADirect, Direct: d}, nil
	}
	if i, ok := toIndirectRi(operands[1]); ok {
		return Instruction{Kind: KindXchAIndirReg, Reg: i}, nil
	}
	return Instruction{}, operandErr(vocab.XCH, 1, operands[1])
}

func lowerXchd(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(vocab.XCHD, len(operands), "2")
	}
	r0, ok := toRegNum(operands[0])
	if !ok || r0.Kind != vocab.RegA {
		return Instruction{}, operandErr(vocab.XCHD, 0, operands[0])
	}
	i, ok := toIndirectRi(operands[1])
	if !ok {
		return Instruction{}, operandErr(vocab.XCHD, 1, operands[1])
	}
	return Instruction{Kind: KindXchdAIndirReg, Reg: i}, nil
}

func lowerMov(operands []parser.Operand) (Instruction, error) {
	if len(operands) != 2 {
		return Instruction{}, numOperandsErr(vocab.MOV, len(operands), "2")
	}
	o0, o1 := operands[0], operands[1]

	if r0, ok := toRegNum(o0); ok {
		switch r0.Kind {
		case vocab.RegA:
			return lowerMovFromA(o1)
		case vocab.RegR:
			return lowerMovFromReg(r0.N, o1)
		case vocab.RegC:
			if bit, ok := toDirectBit(o1); ok {
				return Instruction{Kind: KindMovCBit, Bit: bit}, nil
			}
			return Instruction{}, operandErr(vocab.MOV, 1, o1)
		case vocab.RegDPTR:
			imm, matched, err := toAddrRef(o1, 0, 65535)
			if !matched {
				return Instruction{}, operandErr(vocab.MOV, 1, o1)
			}
			if err != nil {
				return Instruction{}, err
			}
			return Instruction{Kind: KindMovDptrData, Imm16: imm}, nil
		}
	}

	if d0, ok := toDirect(o0); ok {
		return lowerMovFromDirect(d0, o1)
	}
	if i, ok := toIndirectRi(o0); ok {
		return lowerMovFromIndirReg(i, o1)
	}
	if bit, ok := toDirectBit(o0); ok {
		if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegC {
			return Instruction{Kind: KindMovBitC, Bit: bit}, nil
		}
		return Instruction{}, operandErr(vocab.MOV, 1, o1)
	}

	return Instruction{}, operandErr(vocab.MOV, 0, o0)
}

func lowerMovFromA(o1 parser.Operand) (Instruction, error) {
	if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegR {
		return Instruction{Kind: KindMovAReg, Reg: r1.N}, nil
	}
	if d, ok := toDirect(o1); ok {
		if d == 0xE0 {
			return Instruction{}, operandErr(vocab.MOV, 1, o1)
		}
		return Instruction{Kind: KindMovADirect, Direct: d}, nil
	}
	if i, ok := toIndirectRi(o1); ok {
		return Instruction{Kind: KindMovAIndirReg, Reg: i}, nil
	}
	if data, matched, err := toDataRef(o1, -128, 255); matched {
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Kind: KindMovAData, Data: data}, nil
	}
	return Instruction{}, operandErr(vocab.MOV, 1, o1)
}

func lowerMovFromReg(reg uint8, o1 parser.Operand) (Instruction, error) {
	if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegA {
		return Instruction{Kind: KindMovRegA, Reg: reg}, nil
	}
	if d, ok := toDirect(o1); ok {
		return Instruction{Kind: KindMovRegDirect, Reg: reg, Direct: d}, nil
	}
	if data, matched, err := toDataRef(o1, -128, 255); matched {
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Kind: KindMovRegData, Reg: reg, Data: data}, nil
	}
	return Instruction{}, operandErr(vocab.MOV, 1, o1)
}

func lowerMovFromDirect(d0 uint8, o1 parser.Operand) (Instruction, error) {
	if r1, ok := toRegNum(o1); ok {
		if r1.Kind == vocab.RegA {
			if d0 == 0xE0 {
				return Instruction{}, operandErr(vocab.MOV, 0, parser.DirectOperand{Addr: d0})
			}
			return Instruction{Kind: KindMovDirectA, Direct: d0}, nil
		}
		if r1.Kind == vocab.RegR {
			return Instruction{Kind: KindMovDirectReg, Direct: d0, Reg: r1.N}, nil
		}
	}
	if d1, ok := toDirect(o1); ok {
		return Instruction{Kind: KindMovDirectDirect, Direct: d0, Direct2: d1}, nil
	}
	if i, ok := toIndirectRi(o1); ok {
		return Instruction{Kind: KindMovDirectIndirReg, Direct: d0, Reg: i}, nil
	}
	if data, matched, err := toDataRef(o1, -128, 255); matched {
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Kind: KindMovDirectData, Direct: d0, Data: data}, nil
	}
	return Instruction{}, operandErr(vocab.MOV, 1, o1)
}

func lowerMovFromIndirReg(reg uint8, o1 parser.Operand) (Instruction, error) {
	if r1, ok := toRegNum(o1); ok && r1.Kind == vocab.RegA {
		return Instruction{Kind: KindMovIndirRegA, Reg: reg}, nil
	}
	if d, ok := toDirect(o1); ok {
		return Instruction{Kind: KindMovIndirRegDirect, Reg: reg, Direct: d}, nil
	}
	if data, matched, err := toDataRef(o1, -128, 255); matched {
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Kind: KindMovIndirRegData, Reg: reg, Data: data}, nil
	}
	return Instruction{}, operandErr(vocab.MOV, 1, o1)
}
