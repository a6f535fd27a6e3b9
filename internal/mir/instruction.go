package mir

// Instruction is one lowered MCS-51 opcode form. Only the fields
// relevant to Kind are populated; which ones those are is documented on
// each Kind's case in Bytes and Encode.
type Instruction struct {
	Kind Kind

	Reg     uint8 // register number 0..7, or 0/1 for indirect-register forms
	Direct  uint8 // direct address; first operand for 2-direct forms
	Direct2 uint8 // second direct address, MOV direct,direct only
	Bit     uint8 // resolved bit address

	Data  DataRef // byte-sized immediate, possibly symbolic
	Addr  AddrRef // jump/call target, possibly symbolic
	Imm16 AddrRef // 16-bit immediate (MOV DPTR,#data16), possibly symbolic

	Raw []byte // verbatim bytes, Bytes kind only
}

// Bytes reports the instruction's fixed encoded length. It depends only
// on Kind, never on operand values (invariant I2), so it is safe to call
// before any symbol is resolved.
func (in Instruction) Bytes() int {
	switch in.Kind {
	case KindAddAReg, KindAddAIndirReg, KindAddcAReg, KindAddcAIndirReg,
		KindSubbAReg, KindSubbAIndirReg, KindAnlAReg, KindAnlAIndirReg,
		KindOrlAReg, KindOrlAIndirReg, KindXrlAReg, KindXrlAIndirReg,
		KindIncA, KindIncReg, KindIncIndirReg, KindIncDptr,
		KindDecA, KindDecReg, KindDecIndirReg,
		KindMulAB, KindDivAB, KindDaA,
		KindClrA, KindClrC, KindCplA, KindCplC, KindSetbC,
		KindRlA, KindRlcA, KindRrA, KindRrcA, KindSwapA,
		KindRet, KindReti, KindNop,
		KindJmpIndirAPlusDptr, KindMovcAIndirAPlusDptr, KindMovcAIndirAPlusPc,
		KindMovxAIndirReg, KindMovxAIndirDptr, KindMovxIndirRegA, KindMovxIndirDptrA,
		KindXchAReg, KindXchAIndirReg, KindXchdAIndirReg,
		KindMovAReg, KindMovAIndirReg, KindMovRegA, KindMovIndirRegA:
		return 1

	case KindAddADirect, KindAddAData, KindAddcADirect, KindAddcAData,
		KindSubbADirect, KindSubbAData, KindAnlADirect, KindAnlAData,
		KindAnlDirectA, KindAnlCBit, KindOrlADirect, KindOrlAData,
		KindOrlDirectA, KindOrlCBit, KindXrlADirect, KindXrlAData,
		KindXrlDirectA, KindIncDirect, KindDecDirect,
		KindClrBit, KindCplBit, KindSetbBit, KindPushDirect, KindPopDirect,
		KindAcall, KindAjmp, KindSjmp, KindJcRel, KindJncRel, KindJzRel, KindJnzRel,
		KindDjnzRegRel, KindXchADirect,
		KindMovADirect, KindMovAData, KindMovRegDirect, KindMovRegData,
		KindMovDirectA, KindMovDirectReg, KindMovDirectIndirReg,
		KindMovIndirRegDirect, KindMovIndirRegData, KindMovCBit, KindMovBitC:
		return 2

	case KindAnlDirectData, KindOrlDirectData, KindXrlDirectData,
		KindLcall, KindLjmp, KindJbBitRel, KindJbcBitRel, KindJnbBitRel,
		KindDjnzDirectRel, KindCjneADirRel, KindCjneADataRel,
		KindCjneRegDataRel, KindCjneIndirRegDataRel,
		KindMovDirectDirect, KindMovDirectData, KindMovDptrData:
		return 3

	case KindBytes:
		return len(in.Raw)

	default:
		panic("mir: unknown instruction kind")
	}
}

func rel(target, next uint16) byte {
	return byte(target - next)
}

// Encode resolves any symbolic references against symtab and produces
// the instruction's opcode bytes. addr is this instruction's own
// address, needed to compute relative-jump displacements.
func (in Instruction) Encode(symtab map[string]int32, addr uint16) ([]byte, error) {
	next := addr + uint16(in.Bytes())

	byteAt := func(d DataRef) (uint8, error) { return d.resolveByte(symtab) }
	wordAt := func(a AddrRef) (uint16, error) { return a.resolveWord(symtab) }
	relAt := func(a AddrRef) (byte, error) {
		target, err := a.resolveWord(symtab)
		if err != nil {
			return 0, err
		}
		return rel(target, next), nil
	}

	switch in.Kind {
	case KindAddAReg:
		return []byte{0x28 | in.Reg}, nil
	case KindAddADirect:
		return []byte{0x25, in.Direct}, nil
	case KindAddAIndirReg:
		return []byte{0x26 | in.Reg}, nil
	case KindAddAData:
		d, err := byteAt(in.Data)
		return []byte{0x24, d}, err
	case KindAddcAReg:
		return []byte{0x38 | in.Reg}, nil
	case KindAddcADirect:
		return []byte{0x35, in.Direct}, nil
	case KindAddcAIndirReg:
		return []byte{0x36 | in.Reg}, nil
	case KindAddcAData:
		d, err := byteAt(in.Data)
		return []byte{0x34, d}, err
	case KindSubbAReg:
		return []byte{0x98 | in.Reg}, nil
	case KindSubbADirect:
		return []byte{0x95, in.Direct}, nil
	case KindSubbAIndirReg:
		return []byte{0x96 | in.Reg}, nil
	case KindSubbAData:
		d, err := byteAt(in.Data)
		return []byte{0x94, d}, err

	case KindAnlAReg:
		return []byte{0x58 | in.Reg}, nil
	case KindAnlADirect:
		return []byte{0x55, in.Direct}, nil
	case KindAnlAIndirReg:
		return []byte{0x56 | in.Reg}, nil
	case KindAnlAData:
		d, err := byteAt(in.Data)
		return []byte{0x54, d}, err
	case KindAnlDirectA:
		return []byte{0x52, in.Direct}, nil
	case KindAnlDirectData:
		d, err := byteAt(in.Data)
		return []byte{0x53, in.Direct, d}, err
	case KindAnlCBit:
		return []byte{0x82, in.Bit}, nil

	case KindOrlAReg:
		return []byte{0x48 | in.Reg}, nil
	case KindOrlADirect:
		return []byte{0x45, in.Direct}, nil
	case KindOrlAIndirReg:
		return []byte{0x46 | in.Reg}, nil
	case KindOrlAData:
		d, err := byteAt(in.Data)
		return []byte{0x44, d}, err
	case KindOrlDirectA:
		return []byte{0x42, in.Direct}, nil
	case KindOrlDirectData:
		d, err := byteAt(in.Data)
		return []byte{0x43, in.Direct, d}, err
	case KindOrlCBit:
		return []byte{0x72, in.Bit}, nil

	case KindXrlAReg:
		return []byte{0x68 | in.Reg}, nil
	case KindXrlADirect:
		return []byte{0x65, in.Direct}, nil
	case KindXrlAIndirReg:
		return []byte{0x66 | in.Reg}, nil
	case KindXrlAData:
		d, err := byteAt(in.Data)
		return []byte{0x64, d}, err
	case KindXrlDirectA:
		return []byte{0x62, in.Direct}, nil
	case KindXrlDirectData:
		d, err := byteAt(in.Data)
		return []byte{0x63, in.Direct, d}, err

	case KindIncA:
		return []byte{0x04}, nil
	case KindIncReg:
		return []byte{0x08 | in.Reg}, nil
	case KindIncDirect:
		return []byte{0x05, in.Direct}, nil
	case KindIncIndirReg:
		return []byte{0x06 | in.Reg}, nil
	case KindIncDptr:
		return []byte{0xA3}, nil
	case KindDecA:
		return []byte{0x14}, nil
	case KindDecReg:
		return []byte{0x18 | in.Reg}, nil
	case KindDecDirect:
		return []byte{0x15, in.Direct}, nil
	case KindDecIndirReg:
		return []byte{0x16 | in.Reg}, nil

	case KindMulAB:
		return []byte{0xA4}, nil
	case KindDivAB:
		return []byte{0x84}, nil
	case KindDaA:
		return []byte{0xD4}, nil

	case KindClrA:
		return []byte{0xE4}, nil
	case KindClrC:
		return []byte{0xC3}, nil
	case KindClrBit:
		return []byte{0xC2, in.Bit}, nil
	case KindCplA:
		return []byte{0xF4}, nil
	case KindCplC:
		return []byte{0xB3}, nil
	case KindCplBit:
		return []byte{0xB2, in.Bit}, nil
	case KindSetbC:
		return []byte{0xD3}, nil
	case KindSetbBit:
		return []byte{0xD2, in.Bit}, nil

	case KindRlA:
		return []byte{0x23}, nil
	case KindRlcA:
		return []byte{0x33}, nil
	case KindRrA:
		return []byte{0x03}, nil
	case KindRrcA:
		return []byte{0x13}, nil
	case KindSwapA:
		return []byte{0xC4}, nil

	case KindPushDirect:
		return []byte{0xC0, in.Direct}, nil
	case KindPopDirect:
		return []byte{0xD0, in.Direct}, nil

	case KindRet:
		return []byte{0x22}, nil
	case KindReti:
		return []byte{0x32}, nil
	case KindNop:
		return []byte{0x00}, nil

	case KindAcall:
		a, err := wordAt(in.Addr)
		if err != nil {
			return nil, err
		}
		return []byte{byte((a>>3)&0xE0) | 0x11, byte(a)}, nil
	case KindAjmp:
		a, err := wordAt(in.Addr)
		if err != nil {
			return nil, err
		}
		return []byte{byte((a>>3)&0xE0) | 0x01, byte(a)}, nil
	case KindLcall:
		a, err := wordAt(in.Addr)
		if err != nil {
			return nil, err
		}
		return []byte{0x12, byte(a >> 8), byte(a)}, nil
	case KindLjmp:
		a, err := wordAt(in.Addr)
		if err != nil {
			return nil, err
		}
		return []byte{0x02, byte(a >> 8), byte(a)}, nil

	case KindSjmp:
		r, err := relAt(in.Addr)
		return []byte{0x80, r}, err
	case KindJcRel:
		r, err := relAt(in.Addr)
		return []byte{0x40, r}, err
	case KindJncRel:
		r, err := relAt(in.Addr)
		return []byte{0x50, r}, err
	case KindJzRel:
		r, err := relAt(in.Addr)
		return []byte{0x60, r}, err
	case KindJnzRel:
		r, err := relAt(in.Addr)
		return []byte{0x70, r}, err
	case KindJbBitRel:
		r, err := relAt(in.Addr)
		return []byte{0x20, in.Bit, r}, err
	case KindJbcBitRel:
		r, err := relAt(in.Addr)
		return []byte{0x10, in.Bit, r}, err
	case KindJnbBitRel:
		r, err := relAt(in.Addr)
		return []byte{0x30, in.Bit, r}, err
	case KindDjnzRegRel:
		r, err := relAt(in.Addr)
		return []byte{0xD8 | in.Reg, r}, err
	case KindDjnzDirectRel:
		r, err := relAt(in.Addr)
		return []byte{0xD5, in.Direct, r}, err
	case KindCjneADirRel:
		r, err := relAt(in.Addr)
		return []byte{0xB5, in.Direct, r}, err
	case KindCjneADataRel:
		d, err := byteAt(in.Data)
		if err != nil {
			return nil, err
		}
		r, err := relAt(in.Addr)
		return []byte{0xB4, d, r}, err
	case KindCjneRegDataRel:
		d, err := byteAt(in.Data)
		if err != nil {
			return nil, err
		}
		r, err := relAt(in.Addr)
		return []byte{0xB8 | in.Reg, d, r}, err
	case KindCjneIndirRegDataRel:
		d, err := byteAt(in.Data)
		if err != nil {
			return nil, err
		}
		r, err := relAt(in.Addr)
		return []byte{0xB6 | in.Reg, d, r}, err

	case KindJmpIndirAPlusDptr:
		return []byte{0x73}, nil
	case KindMovcAIndirAPlusDptr:
		return []byte{0x93}, nil
	case KindMovcAIndirAPlusPc:
		return []byte{0x83}, nil

	case KindMovxAIndirReg:
		return []byte{0xE2 | in.Reg}, nil
	case KindMovxAIndirDptr:
		return []byte{0xE0}, nil
	case KindMovxIndirRegA:
		return []byte{0xF2 | in.Reg}, nil
	case KindMovxIndirDptrA:
		return []byte{0xF0}, nil

	case KindXchAReg:
		return []byte{0xC8 | in.Reg}, nil
	case KindXchADirect:
		return []byte{0xC5, in.Direct}, nil
	case KindXchAIndirReg:
		return []byte{0xC6 | in.Reg}, nil
	case KindXchdAIndirReg:
		return []byte{0xD6 | in.Reg}, nil

	case KindMovAReg:
		return []byte{0xE8 | in.Reg}, nil
	case KindMovADirect:
		return []byte{0xE5, in.Direct}, nil
	case KindMovAIndirReg:
		return []byte{0xE6 | in.Reg}, nil
	case KindMovAData:
		d, err := byteAt(in.Data)
		return []byte{0x74, d}, err
	case KindMovRegA:
		return []byte{0xF8 | in.Reg}, nil
	case KindMovRegDirect:
		// 0xA8|r, the real MCS-51 opcode; not the 0xC8|r that would
		// collide with KindXchAReg (see DESIGN.md Open Question 7).
		return []byte{0xA8 | in.Reg, in.Direct}, nil
	case KindMovRegData:
		d, err := byteAt(in.Data)
		return []byte{0x78 | in.Reg, d}, err
	case KindMovDirectA:
		return []byte{0xF5, in.Direct}, nil
	case KindMovDirectReg:
		return []byte{0x88 | in.Reg, in.Direct}, nil
	case KindMovDirectDirect:
		// source-operand-first ordering: opcode, src, dst.
		return []byte{0x85, in.Direct2, in.Direct}, nil
	case KindMovDirectIndirReg:
		return []byte{0x86 | in.Reg, in.Direct}, nil
	case KindMovDirectData:
		d, err := byteAt(in.Data)
		return []byte{0x75, in.Direct, d}, err
	case KindMovIndirRegA:
		return []byte{0xF6 | in.Reg}, nil
	case KindMovIndirRegDirect:
		return []byte{0xA6 | in.Reg, in.Direct}, nil
	case KindMovIndirRegData:
		d, err := byteAt(in.Data)
		return []byte{0x76 | in.Reg, d}, err
	case KindMovCBit:
		return []byte{0xA2, in.Bit}, nil
	case KindMovBitC:
		return []byte{0x92, in.Bit}, nil
	case KindMovDptrData:
		w, err := wordAt(in.Imm16)
		if err != nil {
			return nil, err
		}
		return []byte{0x90, byte(w >> 8), byte(w)}, nil

	case KindBytes:
		return in.Raw, nil

	default:
		panic("mir: unknown instruction kind")
	}
}
