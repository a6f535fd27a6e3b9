package parser

import (
	"strings"

	"github.com/retroenv/asm8051/internal/lexer"
	"github.com/retroenv/asm8051/internal/vocab"
)

// Parser walks a token slice with a backtracking cursor: every trial
// alternative remembers its start position and rewinds to it on failure.
// The token slice itself is never copied, only the integer cursor.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse builds a Program from a complete token stream.
func Parse(tokens []lexer.Token) (*Program, error) {
	p := &Parser{tokens: tokens}
	prog := &Program{}
	for p.pos < len(p.tokens) {
		line, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		prog.Lines = append(prog.Lines, line)
	}
	return prog, nil
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) peekAt(i int) (lexer.Token, bool) {
	if i >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[i], true
}

// posOrLast returns a position to blame for an error when the cursor ran
// off the end of the token stream.
func (p *Parser) posOrLast() lexer.Position {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].Pos
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1].Pos
	}
	return lexer.Position{Row: 1, Column: 1}
}

var expectedKind = map[lexer.Kind]ErrKind{
	lexer.Identifier:        ErrExpectedIdentifier,
	lexer.OperatorTok:       ErrExpectedOperator,
	lexer.DirectLocationTok: ErrExpectedDirectLocation,
	lexer.KeywordTok:        ErrExpectedKeyword,
	lexer.Number:            ErrExpectedNumber,
	lexer.String:            ErrExpectedString,
	lexer.Colon:             ErrExpectedColon,
	lexer.Comma:             ErrExpectedComma,
	lexer.Dot:               ErrExpectedDot,
	lexer.At:                ErrExpectedAt,
	lexer.Plus:              ErrExpectedPlus,
	lexer.LeftBracket:       ErrExpectedLeftBracket,
	lexer.RightBracket:      ErrExpectedRightBracket,
}

// expect consumes the current token if it has the given kind, otherwise
// returns the matching Expected* error (or UnexpectedEOF at end of input).
func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok, ok := p.peek()
	if !ok {
		return lexer.Token{}, &Error{Kind: ErrUnexpectedEOF, Pos: p.posOrLast()}
	}
	if tok.Kind != kind {
		return lexer.Token{}, &Error{Kind: expectedKind[kind], Pos: tok.Pos}
	}
	p.pos++
	return tok, nil
}

// expectNewline consumes one Newline token; end of input counts as an
// implicit newline and is not an error.
func (p *Parser) expectNewline() error {
	tok, ok := p.peek()
	if !ok {
		return nil
	}
	if tok.Kind != lexer.Newline {
		return &Error{Kind: ErrExpectedNewline, Pos: tok.Pos}
	}
	p.pos++
	return nil
}

func (p *Parser) parseLine() (Line, error) {
	if line, matched, err := p.parseOrgLine(); matched {
		return line, err
	}
	if line, matched, err := p.parseEquDef(); matched {
		return line, err
	}
	return p.parseProgramLine()
}

func (p *Parser) parseOrgLine() (Line, bool, error) {
	start := p.pos
	tok, ok := p.peek()
	if !ok || tok.Kind != lexer.KeywordTok || tok.Keyword != vocab.ORG {
		p.pos = start
		return nil, false, nil
	}
	p.pos++

	numTok, err := p.expect(lexer.Number)
	if err != nil {
		return nil, true, err
	}
	val, err := ParseNumberLiteral(numTok.Text)
	if err != nil {
		return nil, true, &Error{Kind: ErrInvalidNumber, Pos: numTok.Pos, Text: err.Error()}
	}
	if val < 0 || val > 0xFFFF {
		return nil, true, &Error{Kind: ErrInvalidNumber, Pos: numTok.Pos, Text: "address out of 16-bit range"}
	}
	if err := p.expectNewline(); err != nil {
		return nil, true, err
	}
	return OrgLine{Address: uint16(val)}, true, nil
}

func (p *Parser) parseEquDef() (Line, bool, error) {
	start := p.pos
	idTok, ok := p.peek()
	if !ok || idTok.Kind != lexer.Identifier {
		p.pos = start
		return nil, false, nil
	}
	kwTok, ok := p.peekAt(p.pos + 1)
	if !ok || kwTok.Kind != lexer.KeywordTok || kwTok.Keyword != vocab.EQU {
		p.pos = start
		return nil, false, nil
	}
	p.pos += 2

	numTok, err := p.expect(lexer.Number)
	if err != nil {
		return nil, true, err
	}
	val, err := ParseNumberLiteral(numTok.Text)
	if err != nil {
		return nil, true, &Error{Kind: ErrInvalidNumber, Pos: numTok.Pos, Text: err.Error()}
	}
	if err := p.expectNewline(); err != nil {
		return nil, true, err
	}
	return EquDef{ID: idTok.Text, Value: val}, true, nil
}

func (p *Parser) parseProgramLine() (Line, error) {
	label, hasLabel := p.tryParseLabel()
	body, err := p.tryParseLineBody()
	if err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return ProgramLine{Label: label, HasLabel: hasLabel, Body: body}, nil
}

func (p *Parser) tryParseLabel() (string, bool) {
	start := p.pos
	idTok, ok := p.peek()
	if !ok || idTok.Kind != lexer.Identifier {
		p.pos = start
		return "", false
	}
	colonTok, ok := p.peekAt(p.pos + 1)
	if !ok || colonTok.Kind != lexer.Colon {
		p.pos = start
		return "", false
	}
	p.pos += 2
	return idTok.Text, true
}

func (p *Parser) tryParseLineBody() (LineBody, error) {
	if body, matched, err := p.tryParseCodeLine(); matched {
		return body, err
	}
	if body, matched, err := p.tryParseValueDef(); matched {
		return body, err
	}
	return nil, nil
}

func (p *Parser) tryParseCodeLine() (LineBody, bool, error) {
	start := p.pos
	tok, ok := p.peek()
	if !ok || tok.Kind != lexer.OperatorTok {
		p.pos = start
		return nil, false, nil
	}
	op := tok.Operator
	p.pos++

	operands, err := p.parseOperandList()
	if err != nil {
		return nil, true, err
	}
	return CodeLine{Operator: op, Operands: operands}, true, nil
}

// parseOperandList parses an optional comma-separated operand list. Once
// a comma is consumed, a following operand is mandatory: a trailing
// comma or a malformed operand is a hard error, not a silent stop.
func (p *Parser) parseOperandList() ([]Operand, error) {
	var operands []Operand

	first, ok, err := p.tryParseOperand()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	operands = append(operands, first)

	for {
		commaStart := p.pos
		tok, ok := p.peek()
		if !ok || tok.Kind != lexer.Comma {
			p.pos = commaStart
			break
		}
		p.pos++

		next, ok, err := p.tryParseOperand()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &Error{Kind: ErrInvalidOperand, Pos: p.posOrLast()}
		}
		operands = append(operands, next)
	}
	return operands, nil
}

// tryParseOperand tries each operand shape in priority order. A bare
// identifier that names a register binds to RegisterOperand; only an
// identifier that is not a register name falls through to
// ImmediateIDOperand (an EQU name or a label reference).
func (p *Parser) tryParseOperand() (Operand, bool, error) {
	if op, ok, err := p.tryParseIndirect(); ok || err != nil {
		return op, ok, err
	}
	if op, ok := p.tryParseRegister(); ok {
		return op, true, nil
	}
	if op, ok, err := p.tryParseImmediate(); ok || err != nil {
		return op, ok, err
	}
	if op, ok, err := p.tryParseDirect(); ok || err != nil {
		return op, ok, err
	}
	return nil, false, nil
}

func (p *Parser) tryParseIndirect() (Operand, bool, error) {
	start := p.pos
	atTok, ok := p.peek()
	if !ok || atTok.Kind != lexer.At {
		p.pos = start
		return nil, false, nil
	}
	p.pos++

	regTok, ok := p.peek()
	if !ok || regTok.Kind != lexer.Identifier {
		return nil, true, &Error{Kind: ErrInvalidRegister, Pos: p.posOrLast()}
	}
	reg, ok := vocab.ParseRegister(regTok.Text)
	if !ok {
		return nil, true, &Error{Kind: ErrInvalidRegister, Pos: regTok.Pos, Text: regTok.Text}
	}
	p.pos++

	sumStart := p.pos
	if plusTok, ok := p.peek(); ok && plusTok.Kind == lexer.Plus {
		p.pos++
		reg2Tok, ok := p.peek()
		if !ok || reg2Tok.Kind != lexer.Identifier {
			return nil, true, &Error{Kind: ErrInvalidRegister, Pos: p.posOrLast()}
		}
		reg2, ok := vocab.ParseRegister(reg2Tok.Text)
		if !ok {
			return nil, true, &Error{Kind: ErrInvalidRegister, Pos: reg2Tok.Pos, Text: reg2Tok.Text}
		}
		p.pos++
		return IndirectSumOperand{Reg1: reg, Reg2: reg2}, true, nil
	}
	p.pos = sumStart
	return IndirectRegOperand{Reg: reg}, true, nil
}

func (p *Parser) tryParseRegister() (Operand, bool) {
	start := p.pos
	tok, ok := p.peek()
	if !ok || tok.Kind != lexer.Identifier {
		p.pos = start
		return nil, false
	}
	reg, ok := vocab.ParseRegister(tok.Text)
	if !ok {
		p.pos = start
		return nil, false
	}
	p.pos++
	return RegisterOperand{Reg: reg}, true
}

func (p *Parser) tryParseImmediate() (Operand, bool, error) {
	start := p.pos
	tok, ok := p.peek()
	if !ok {
		p.pos = start
		return nil, false, nil
	}
	switch tok.Kind {
	case lexer.Identifier:
		p.pos++
		return ImmediateIDOperand{ID: tok.Text}, true, nil
	case lexer.Number:
		val, err := ParseNumberLiteral(tok.Text)
		if err != nil {
			return nil, true, &Error{Kind: ErrInvalidNumber, Pos: tok.Pos, Text: err.Error()}
		}
		p.pos++
		return ImmediateOperand{Value: val}, true, nil
	default:
		p.pos = start
		return nil, false, nil
	}
}

func (p *Parser) tryParseDirect() (Operand, bool, error) {
	start := p.pos
	tok, ok := p.peek()
	if !ok {
		p.pos = start
		return nil, false, nil
	}

	var addr uint8
	switch {
	case tok.Kind == lexer.LeftBracket:
		p.pos++
		numTok, err := p.expect(lexer.Number)
		if err != nil {
			return nil, true, err
		}
		val, err := ParseNumberLiteral(numTok.Text)
		if err != nil {
			return nil, true, &Error{Kind: ErrInvalidNumber, Pos: numTok.Pos, Text: err.Error()}
		}
		if val < 0 || val > 0xFF {
			return nil, true, &Error{Kind: ErrInvalidDirectAddr, Pos: numTok.Pos}
		}
		if _, err := p.expect(lexer.RightBracket); err != nil {
			return nil, true, err
		}
		addr = uint8(val)

	case tok.Kind == lexer.DirectLocationTok:
		addr = tok.Direct.Address
		p.pos++

	default:
		p.pos = start
		return nil, false, nil
	}

	dotStart := p.pos
	dotTok, ok := p.peek()
	if !ok || dotTok.Kind != lexer.Dot {
		p.pos = dotStart
		return DirectOperand{Addr: addr}, true, nil
	}
	p.pos++

	numTok, err := p.expect(lexer.Number)
	if err != nil {
		return nil, true, err
	}
	bit, err := ParseNumberLiteral(numTok.Text)
	if err != nil {
		return nil, true, &Error{Kind: ErrInvalidNumber, Pos: numTok.Pos, Text: err.Error()}
	}
	if bit < 0 || bit > 7 {
		return nil, true, &Error{Kind: ErrInvalidBitNumber, Pos: numTok.Pos}
	}
	bitAddr, ok := bitAddress(addr, uint8(bit))
	if !ok {
		return nil, true, &Error{Kind: ErrInvalidDirectAddr, Pos: numTok.Pos, Text: "not bit-addressable"}
	}
	return DirectBitOperand{Addr: bitAddr}, true, nil
}

// bitAddress implements the §4.3 resolution rule: internal RAM
// 0x20..0x30 maps to bit addresses 0x00..0x7F, SFRs at 0x80 and up map
// bit n to direct+n. vocab.BitAddressable gates both regions at once.
func bitAddress(direct, bit uint8) (uint8, bool) {
	if !vocab.BitAddressable(direct) {
		return 0, false
	}
	if direct < 0x80 {
		return (direct-0x20)*8 + bit, true
	}
	return direct + bit, true
}

func (p *Parser) tryParseValueDef() (LineBody, bool, error) {
	start := p.pos
	tok, ok := p.peek()
	if !ok || tok.Kind != lexer.Identifier {
		p.pos = start
		return nil, false, nil
	}
	switch strings.ToUpper(tok.Text) {
	case "DB":
		p.pos++
		values, err := p.parseValList(p.parseByteVal)
		if err != nil {
			return nil, true, err
		}
		return ValueDef{Values: values}, true, nil
	case "DW":
		p.pos++
		values, err := p.parseValList(p.parseWordVal)
		if err != nil {
			return nil, true, err
		}
		return ValueDef{Values: values}, true, nil
	default:
		p.pos = start
		return nil, false, nil
	}
}

func (p *Parser) parseValList(one func() (Value, error)) ([]Value, error) {
	first, err := one()
	if err != nil {
		return nil, err
	}
	values := []Value{first}
	for {
		commaStart := p.pos
		tok, ok := p.peek()
		if !ok || tok.Kind != lexer.Comma {
			p.pos = commaStart
			break
		}
		p.pos++
		next, err := one()
		if err != nil {
			return nil, err
		}
		values = append(values, next)
	}
	return values, nil
}

func (p *Parser) parseByteVal() (Value, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.posOrLast()}
	}
	switch tok.Kind {
	case lexer.String:
		p.pos++
		return StringValue{S: tok.Text}, nil
	case lexer.Number:
		p.pos++
		val, err := ParseNumberLiteral(tok.Text)
		if err != nil {
			return nil, &Error{Kind: ErrInvalidNumber, Pos: tok.Pos, Text: err.Error()}
		}
		if val < -128 || val > 255 {
			return nil, &Error{Kind: ErrInvalidNumber, Pos: tok.Pos, Text: "out of byte range"}
		}
		return ByteValue{B: uint8(val)}, nil
	default:
		return nil, &Error{Kind: ErrExpectedNumber, Pos: tok.Pos}
	}
}

func (p *Parser) parseWordVal() (Value, error) {
	numTok, err := p.expect(lexer.Number)
	if err != nil {
		return nil, err
	}
	val, err := ParseNumberLiteral(numTok.Text)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidNumber, Pos: numTok.Pos, Text: err.Error()}
	}
	if val < 0 || val > 0xFFFF {
		return nil, &Error{Kind: ErrInvalidNumber, Pos: numTok.Pos, Text: "out of word range"}
	}
	return WordValue{W: uint16(val)}, nil
}
