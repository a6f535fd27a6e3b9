package mir

// Kind tags one addressing-form variant of the MIR instruction set. Each
// Kind has a fixed byte length (invariant I2 of the data model) and a
// fixed subset of Instruction's fields that are meaningful for it.
type Kind int

const (
	KindAddAReg Kind = iota
	KindAddADirect
	KindAddAIndirReg
	KindAddAData
	KindAddcAReg
	KindAddcADirect
	KindAddcAIndirReg
	KindAddcAData
	KindSubbAReg
	KindSubbADirect
	KindSubbAIndirReg
	KindSubbAData
	KindAnlAReg
	KindAnlADirect
	KindAnlAIndirReg
	KindAnlAData
	KindAnlDirectA
	KindAnlDirectData
	KindAnlCBit
	KindOrlAReg
	KindOrlADirect
	KindOrlAIndirReg
	KindOrlAData
	KindOrlDirectA
	KindOrlDirectData
	KindOrlCBit
	KindXrlAReg
	KindXrlADirect
	KindXrlAIndirReg
	KindXrlAData
	KindXrlDirectA
	KindXrlDirectData

	KindIncA
	KindIncReg
	KindIncDirect
	KindIncIndirReg
	KindIncDptr
	KindDecA
	KindDecReg
	KindDecDirect
	KindDecIndirReg

	KindMulAB
	KindDivAB
	KindDaA

	KindClrA
	KindClrC
	KindClrBit
	KindCplA
	KindCplC
	KindCplBit
	KindSetbC
	KindSetbBit

	KindRlA
	KindRlcA
	KindRrA
	KindRrcA
	KindSwapA

	KindPushDirect
	KindPopDirect

	KindRet
	KindReti
	KindNop

	KindAcall
	KindAjmp
	KindLcall
	KindLjmp

	KindSjmp
	KindJcRel
	KindJncRel
	KindJzRel
	KindJnzRel
	KindJbBitRel
	KindJbcBitRel
	KindJnbBitRel
	KindDjnzRegRel
	KindDjnzDirectRel
	KindCjneADirRel
	KindCjneADataRel
	KindCjneRegDataRel
	KindCjneIndirRegDataRel

	KindJmpIndirAPlusDptr
	KindMovcAIndirAPlusDptr
	KindMovcAIndirAPlusPc

	KindMovxAIndirReg
	KindMovxAIndirDptr
	KindMovxIndirRegA
	KindMovxIndirDptrA

	KindXchAReg
	KindXchADirect
	KindXchAIndirReg
	KindXchdAIndirReg

	KindMovAReg
	KindMovADirect
	KindMovAIndirReg
	KindMovAData
	KindMovRegA
	KindMovRegDirect
	KindMovRegData
	KindMovDirectA
	KindMovDirectReg
	KindMovDirectDirect
	KindMovDirectIndirReg
	KindMovDirectData
	KindMovIndirRegA
	KindMovIndirRegDirect
	KindMovIndirRegData
	KindMovCBit
	KindMovBitC
	KindMovDptrData

	KindBytes
)
