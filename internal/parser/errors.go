package parser

import (
	"fmt"

	"github.com/retroenv/asm8051/internal/lexer"
)

// ErrKind identifies the shape of a parse failure.
type ErrKind int

const (
	ErrUnexpectedEOF ErrKind = iota
	ErrExpectedNewline
	ErrExpectedIdentifier
	ErrExpectedOperator
	ErrExpectedNumber
	ErrExpectedColon
	ErrExpectedComma
	ErrExpectedDot
	ErrExpectedAt
	ErrExpectedPlus
	ErrExpectedLeftBracket
	ErrExpectedRightBracket
	ErrExpectedKeyword
	ErrExpectedDirectLocation
	ErrExpectedString
	ErrInvalidLineBody
	ErrInvalidMnemonic
	ErrInvalidOperand
	ErrInvalidRegister
	ErrInvalidNumber
	ErrInvalidDirectAddr
	ErrInvalidBitNumber
)

// Error is a single parse failure at a source position.
type Error struct {
	Kind ErrKind
	Pos  lexer.Position
	Text string
}

func (e *Error) Error() string {
	msg := map[ErrKind]string{
		ErrUnexpectedEOF:          "unexpected end of input",
		ErrExpectedNewline:        "expected newline",
		ErrExpectedIdentifier:     "expected identifier",
		ErrExpectedOperator:       "expected operator mnemonic",
		ErrExpectedNumber:         "expected number",
		ErrExpectedColon:          "expected ':'",
		ErrExpectedComma:          "expected ','",
		ErrExpectedDot:            "expected '.'",
		ErrExpectedAt:             "expected '@'",
		ErrExpectedPlus:           "expected '+'",
		ErrExpectedLeftBracket:    "expected '['",
		ErrExpectedRightBracket:   "expected ']'",
		ErrExpectedKeyword:        "expected keyword",
		ErrExpectedDirectLocation: "expected direct location",
		ErrExpectedString:        "expected string",
		ErrInvalidLineBody:        "invalid line body",
		ErrInvalidMnemonic:        "invalid mnemonic",
		ErrInvalidOperand:         "invalid operand",
		ErrInvalidRegister:        "invalid register",
		ErrInvalidNumber:          "invalid number",
		ErrInvalidDirectAddr:      "invalid direct address",
		ErrInvalidBitNumber:       "invalid bit number",
	}[e.Kind]
	if e.Text != "" {
		msg += ": " + e.Text
	}
	return fmt.Sprintf("%s at row %d, column %d", msg, e.Pos.Row, e.Pos.Column)
}
