// Package lexer turns 8051 assembly source text into a flat token stream,
// classifying identifiers against the vocab tables as it goes.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/retroenv/asm8051/internal/vocab"
)

type stateKind int

const (
	stateReady stateKind = iota
	stateNumber
	stateIdentifier
	stateString
	stateStringEscape
	stateComment
)

// Lexer is a stateful character classifier. Use Tokenize for the common
// case of lexing a complete source text in one call.
type Lexer struct {
	tokens []Token
	cur    Position
	state  stateKind
	buf    []rune
	start  Position
}

// Tokenize lexes a complete source text and returns its token stream.
// Any unexpected character aborts lexing immediately.
func Tokenize(text string) ([]Token, error) {
	l := &Lexer{cur: Position{Row: 1, Column: 1}}
	for i, c := range text {
		if err := l.consume(c); err != nil {
			return nil, err
		}
		// Columns count bytes: a multi-byte character moves the column
		// past all of its encoded bytes, not just one.
		_, size := utf8.DecodeRuneInString(text[i:])
		l.cur.Column += size - 1
	}
	l.flush()
	return l.tokens, nil
}

func (l *Lexer) advance() {
	l.cur.Column++
}

func (l *Lexer) newline() {
	l.cur.Column = 1
	l.cur.Row++
}

func (l *Lexer) consume(c rune) error {
	switch l.state {
	case stateReady:
		return l.ready(c)
	case stateNumber:
		return l.number(c)
	case stateIdentifier:
		return l.identifier(c)
	case stateString:
		return l.str(c)
	case stateStringEscape:
		return l.strEscape(c)
	case stateComment:
		return l.comment(c)
	default:
		panic("lexer: invalid state")
	}
}

func (l *Lexer) ready(c rune) error {
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		l.advance()
		return nil

	// '#' marks an immediate operand in conventional 8051 syntax, but this
	// assembler tells immediates apart by operand shape, not by sigil, so
	// '#' carries no meaning and is skipped like whitespace.
	case c == '#':
		l.advance()
		return nil

	case c == '\n':
		l.tokens = append(l.tokens, Token{Kind: Newline, Pos: l.cur})
		l.advance()
		l.newline()
		return nil

	case c >= '0' && c <= '9':
		l.start = l.cur
		l.buf = []rune{c}
		l.state = stateNumber
		l.advance()
		return nil

	case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		l.start = l.cur
		l.buf = []rune{c}
		l.state = stateIdentifier
		l.advance()
		return nil

	case c == ':':
		l.tokens = append(l.tokens, Token{Kind: Colon, Pos: l.cur})
		l.advance()
		return nil

	case c == ',':
		l.tokens = append(l.tokens, Token{Kind: Comma, Pos: l.cur})
		l.advance()
		return nil

	case c == '.':
		l.tokens = append(l.tokens, Token{Kind: Dot, Pos: l.cur})
		l.advance()
		return nil

	case c == '@':
		l.tokens = append(l.tokens, Token{Kind: At, Pos: l.cur})
		l.advance()
		return nil

	case c == '+':
		l.tokens = append(l.tokens, Token{Kind: Plus, Pos: l.cur})
		l.advance()
		return nil

	case c == '[':
		l.tokens = append(l.tokens, Token{Kind: LeftBracket, Pos: l.cur})
		l.advance()
		return nil

	case c == ']':
		l.tokens = append(l.tokens, Token{Kind: RightBracket, Pos: l.cur})
		l.advance()
		return nil

	case c == ';':
		l.state = stateComment
		l.advance()
		return nil

	case c == '"':
		l.start = l.cur
		l.buf = nil
		l.state = stateString
		l.advance()
		return nil

	default:
		return &UnexpectedCharacterError{Pos: l.cur, Char: c}
	}
}

func (l *Lexer) comment(c rune) error {
	if c == '\n' {
		l.tokens = append(l.tokens, Token{Kind: Newline, Pos: l.cur})
		l.state = stateReady
		l.advance()
		l.newline()
		return nil
	}
	l.advance()
	return nil
}

func isNumberBodyChar(c rune) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') ||
		c == 'h' || c == 'H' || c == 'o' || c == 'O'
}

func isNumberTerminator(c rune) bool {
	return strings.ContainsRune(" \t\r\n,+-*/;", c)
}

func (l *Lexer) number(c rune) error {
	switch {
	case isNumberBodyChar(c):
		l.buf = append(l.buf, c)
		l.advance()
		return nil

	case isNumberTerminator(c):
		l.tokens = append(l.tokens, Token{Kind: Number, Pos: l.start, Text: string(l.buf)})
		l.state = stateReady
		return l.ready(c)

	default:
		return &UnexpectedCharacterError{Pos: l.cur, Char: c}
	}
}

func isIdentifierBodyChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func classifyIdentifier(text string, pos Position) Token {
	if kw, ok := vocab.ParseKeyword(text); ok {
		return Token{Kind: KeywordTok, Pos: pos, Text: text, Keyword: kw}
	}
	if dir, ok := vocab.ParseDirectLocation(text); ok {
		return Token{Kind: DirectLocationTok, Pos: pos, Text: text, Direct: dir}
	}
	if op, ok := vocab.ParseOperator(text); ok {
		return Token{Kind: OperatorTok, Pos: pos, Text: text, Operator: op}
	}
	return Token{Kind: Identifier, Pos: pos, Text: text}
}

func (l *Lexer) identifier(c rune) error {
	if isIdentifierBodyChar(c) {
		l.buf = append(l.buf, c)
		l.advance()
		return nil
	}
	l.tokens = append(l.tokens, classifyIdentifier(string(l.buf), l.start))
	l.state = stateReady
	return l.ready(c)
}

func (l *Lexer) str(c rune) error {
	switch c {
	case '"':
		l.tokens = append(l.tokens, Token{Kind: String, Pos: l.start, Text: string(l.buf)})
		l.state = stateReady
		l.advance()
		return nil
	case '\\':
		l.state = stateStringEscape
		l.advance()
		return nil
	case '\n':
		return &UnexpectedCharacterError{Pos: l.cur, Char: '\n'}
	default:
		l.buf = append(l.buf, c)
		l.advance()
		return nil
	}
}

func (l *Lexer) strEscape(c rune) error {
	switch c {
	case 'r':
		l.buf = append(l.buf, '\r')
	case 'n':
		l.buf = append(l.buf, '\n')
	case 't':
		l.buf = append(l.buf, '\t')
	case '\\':
		l.buf = append(l.buf, '\\')
	case '"':
		l.buf = append(l.buf, '"')
	default:
		return &UnexpectedCharacterError{Pos: l.cur, Char: c}
	}
	l.advance()
	l.state = stateString
	return nil
}

// flush emits whatever token is pending at end of input. ReadingComment
// discards silently; Ready is a no-op.
func (l *Lexer) flush() {
	switch l.state {
	case stateNumber:
		l.tokens = append(l.tokens, Token{Kind: Number, Pos: l.start, Text: string(l.buf)})
	case stateIdentifier:
		l.tokens = append(l.tokens, classifyIdentifier(string(l.buf), l.start))
	case stateString, stateStringEscape:
		l.tokens = append(l.tokens, Token{Kind: String, Pos: l.start, Text: string(l.buf)})
	}
	l.state = stateReady
}
