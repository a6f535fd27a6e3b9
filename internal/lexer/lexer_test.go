package lexer_test

import (
	"testing"

	"github.com/retroenv/asm8051/internal/lexer"
	"github.com/retroenv/retrogolib/assert"
)

func kinds(tokens []lexer.Token) []lexer.Kind {
	ks := make([]lexer.Kind, len(tokens))
	for i, tok := range tokens {
		ks[i] = tok.Kind
	}
	return ks
}

func TestTokenizeMnemonicLine(t *testing.T) {
	tokens, err := lexer.Tokenize("mov P3, #0AAh\n")
	assert.NoError(t, err)
	assert.Equal(t, []lexer.Kind{
		lexer.OperatorTok, lexer.DirectLocationTok, lexer.Comma, lexer.Number, lexer.Newline,
	}, kinds(tokens))
}

func TestTokenizeLabelAndColon(t *testing.T) {
	tokens, err := lexer.Tokenize("start: sjmp start\n")
	assert.NoError(t, err)
	assert.Equal(t, []lexer.Kind{
		lexer.Identifier, lexer.Colon, lexer.OperatorTok, lexer.Identifier, lexer.Newline,
	}, kinds(tokens))
}

func TestTokenizeDirectLocation(t *testing.T) {
	tokens, err := lexer.Tokenize("P3\n")
	assert.NoError(t, err)
	assert.Equal(t, lexer.DirectLocationTok, tokens[0].Kind)
	assert.Equal(t, uint8(0xB0), tokens[0].Direct.Address)
}

func TestTokenizeKeyword(t *testing.T) {
	tokens, err := lexer.Tokenize("org 0100h\n")
	assert.NoError(t, err)
	assert.Equal(t, lexer.KeywordTok, tokens[0].Kind)
}

func TestTokenizeStringLiteral(t *testing.T) {
	tokens, err := lexer.Tokenize(`db "AB", 0` + "\n")
	assert.NoError(t, err)
	var found bool
	for _, tok := range tokens {
		if tok.Kind == lexer.String {
			found = true
			assert.Equal(t, "AB", tok.Text)
		}
	}
	assert.True(t, found)
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, err := lexer.Tokenize(`db "a\nb"` + "\n")
	assert.NoError(t, err)
	assert.Equal(t, "a\nb", tokens[1].Text)
}

func TestTokenizeUnterminatedStringFails(t *testing.T) {
	_, err := lexer.Tokenize("db \"abc\n")
	assert.Error(t, err)
}

func TestTokenizeCommentSkipped(t *testing.T) {
	tokens, err := lexer.Tokenize("ret ; this is a comment\nnop\n")
	assert.NoError(t, err)
	assert.Equal(t, []lexer.Kind{
		lexer.OperatorTok, lexer.Newline, lexer.OperatorTok, lexer.Newline,
	}, kinds(tokens))
}

func TestTokenizeHashIsIgnored(t *testing.T) {
	withHash, err := lexer.Tokenize("mov A, #5\n")
	assert.NoError(t, err)
	withoutHash, err := lexer.Tokenize("mov A, 5\n")
	assert.NoError(t, err)
	assert.Equal(t, kinds(withoutHash), kinds(withHash))
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := lexer.Tokenize("mov A, $5\n")
	assert.Error(t, err)

	var target *lexer.UnexpectedCharacterError
	assert.ErrorAs(t, err, &target)
}

func TestTokenizeFlushesTrailingTokenWithoutNewline(t *testing.T) {
	// lexer must not require a trailing newline to emit the final token
	// (P1 totality: every input either lexes fully or reports the first
	// bad character, never silently drops the tail).
	tokens, err := lexer.Tokenize("ret")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, lexer.OperatorTok, tokens[0].Kind)
}

func TestTokenizePositionsAreOneBased(t *testing.T) {
	tokens, err := lexer.Tokenize("nop\nret\n")
	assert.NoError(t, err)
	assert.Equal(t, 1, tokens[0].Pos.Row)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	// second real token is ret on row 2
	var retTok lexer.Token
	for _, tok := range tokens {
		if tok.Kind == lexer.OperatorTok && tok.Text == "ret" {
			retTok = tok
		}
	}
	assert.Equal(t, 2, retTok.Pos.Row)
}
