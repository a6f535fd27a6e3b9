// Package mir implements instruction lowering, MIR address layout, and
// symbol-resolving encoding: operand-shape validation maps a
// (vocab.Operator, []parser.Operand) pair to a tagged Instruction: the
// MIR container lays instructions out at addresses and resolves labels
// and EQU names against a symbol table during encoding.
package mir

import (
	"fmt"

	"github.com/retroenv/asm8051/internal/vocab"
)

// InvalidNumOperandsError reports an operand count that doesn't match
// the operator's required arity.
type InvalidNumOperandsError struct {
	Operator vocab.Operator
	Got      int
	Expected string
}

func (e *InvalidNumOperandsError) Error() string {
	return fmt.Sprintf("%s: expected %s operands, got %d", e.Operator, e.Expected, e.Got)
}

// InvalidOperandError reports an operand shape the operator doesn't accept.
type InvalidOperandError struct {
	Operator vocab.Operator
	Pos      int // 0-based operand index
	Shape    string
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("%s: operand %d has unsupported shape %s", e.Operator, e.Pos, e.Shape)
}

// InvalidByteError reports a resolved value that doesn't fit 8 bits
// (with the 8051's -128..255 byte-immediate allowance).
type InvalidByteError struct {
	Value int32
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("value %d does not fit in a byte", e.Value)
}

// InvalidWordError reports a resolved value that doesn't fit 16 bits.
type InvalidWordError struct {
	Value int32
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("value %d does not fit in a word", e.Value)
}

// DuplicateIdentifierError reports a label or EQU name already bound in
// the symbol table.
type DuplicateIdentifierError struct {
	Name string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %q", e.Name)
}

// UnknownLabelError reports a symbolic reference with no binding in the
// symbol table at encode time.
type UnknownLabelError struct {
	Name string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown label %q", e.Name)
}

// UnsupportedOperatorError reports a mnemonic that parses but can never
// lower. CALL is the only one: it is accepted as a token but has no
// encoding in this assembler.
type UnsupportedOperatorError struct {
	Operator vocab.Operator
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("%s is not supported", e.Operator)
}
