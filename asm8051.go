// Package asm8051 assembles MCS-51 source text into Intel HEX object code.
// It wires the pure pipeline stages in internal/lexer, internal/parser,
// internal/mir and internal/hexfile behind three entry points that mirror
// the pipeline's own shape: Tokenize, Parse and Assemble.
package asm8051

import (
	"github.com/retroenv/asm8051/internal/hexfile"
	"github.com/retroenv/asm8051/internal/lexer"
	"github.com/retroenv/asm8051/internal/mir"
	"github.com/retroenv/asm8051/internal/parser"
)

// Tokenize lexes source text into a token stream.
func Tokenize(text string) ([]lexer.Token, error) {
	return lexer.Tokenize(text)
}

// Parse builds a program AST from a token stream.
func Parse(tokens []lexer.Token) (*parser.Program, error) {
	return parser.Parse(tokens)
}

// Assemble runs the full pipeline: lex, parse, lay out and lower to MIR,
// resolve symbols, and render the result as Intel HEX text.
func Assemble(text string) (string, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return "", err
	}

	program, err := Parse(tokens)
	if err != nil {
		return "", err
	}

	m, err := mir.Build(program)
	if err != nil {
		return "", err
	}

	records, err := m.Encode()
	if err != nil {
		return "", err
	}

	return hexfile.Write(records), nil
}
