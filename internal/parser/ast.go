// Package parser builds a program AST from a token stream using a
// recursive-descent, backtracking grammar: every alternative saves the
// cursor position before it tries, and restores it on failure.
package parser

import "github.com/retroenv/asm8051/internal/vocab"

// Program is an ordered sequence of source lines.
type Program struct {
	Lines []Line
}

// Line is one of OrgLine, EquDef or ProgramLine.
type Line interface {
	isLine()
}

// OrgLine sets the current emission address.
type OrgLine struct {
	Address uint16
}

// EquDef binds a symbolic constant.
type EquDef struct {
	ID    string
	Value int32
}

// ProgramLine is an optionally labeled code or data line. Label and Body
// are both optional; a ProgramLine with neither is a blank or
// comment-only source line.
type ProgramLine struct {
	Label    string
	HasLabel bool
	Body     LineBody // nil if the line has no body
}

func (OrgLine) isLine()     {}
func (EquDef) isLine()      {}
func (ProgramLine) isLine() {}

// LineBody is either a CodeLine or a ValueDef.
type LineBody interface {
	isLineBody()
}

// CodeLine is a mnemonic with its operand list.
type CodeLine struct {
	Operator vocab.Operator
	Operands []Operand
}

// ValueDef is a DB/DW literal data definition.
type ValueDef struct {
	Values []Value
}

func (CodeLine) isLineBody() {}
func (ValueDef) isLineBody() {}

// Operand is one addressing-mode shape parsed from source, before any
// mnemonic-specific validation.
type Operand interface {
	isOperand()
	String() string
}

// RegisterOperand names a CPU register directly (A, C, PC, DPTR, Rn).
type RegisterOperand struct {
	Reg vocab.Register
}

// DirectOperand is an absolute 8-bit direct address, from `[n]` or an SFR name.
type DirectOperand struct {
	Addr uint8
}

// DirectBitOperand is a bit address in 0x00..0xFF, produced only by the
// `<direct>.<n>` rule.
type DirectBitOperand struct {
	Addr uint8
}

// IndirectRegOperand is `@Rn` or `@DPTR`.
type IndirectRegOperand struct {
	Reg vocab.Register
}

// IndirectSumOperand is `@A+DPTR` or `@A+PC`.
type IndirectSumOperand struct {
	Reg1, Reg2 vocab.Register
}

// ImmediateOperand is a bare numeric literal used as an operand.
type ImmediateOperand struct {
	Value int32
}

// ImmediateIDOperand is a bare identifier used as an operand: an EQU name
// or a label reference, resolved during encoding.
type ImmediateIDOperand struct {
	ID string
}

func (RegisterOperand) isOperand()     {}
func (DirectOperand) isOperand()       {}
func (DirectBitOperand) isOperand()    {}
func (IndirectRegOperand) isOperand()  {}
func (IndirectSumOperand) isOperand()  {}
func (ImmediateOperand) isOperand()    {}
func (ImmediateIDOperand) isOperand()  {}

func (o RegisterOperand) String() string    { return o.Reg.String() }
func (o DirectOperand) String() string      { return "direct" }
func (o DirectBitOperand) String() string   { return "direct bit" }
func (o IndirectRegOperand) String() string { return "@" + o.Reg.String() }
func (o IndirectSumOperand) String() string { return "@" + o.Reg1.String() + "+" + o.Reg2.String() }
func (o ImmediateOperand) String() string   { return "immediate" }
func (o ImmediateIDOperand) String() string { return "immediate id " + o.ID }

// Value is one element of a DB/DW definition.
type Value interface {
	isValue()
	Bytes() []byte
}

// ByteValue is a single literal byte (from DB).
type ByteValue struct{ B uint8 }

// WordValue is a little-endian 16-bit literal (from DW).
type WordValue struct{ W uint16 }

// StringValue is a quoted string literal used inside a DB list.
type StringValue struct{ S string }

func (ByteValue) isValue()   {}
func (WordValue) isValue()   {}
func (StringValue) isValue() {}

func (v ByteValue) Bytes() []byte { return []byte{v.B} }
func (v WordValue) Bytes() []byte { return []byte{byte(v.W), byte(v.W >> 8)} }
func (v StringValue) Bytes() []byte { return []byte(v.S) }
