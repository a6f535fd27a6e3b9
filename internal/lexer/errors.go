package lexer

import "fmt"

// UnexpectedCharacterError aborts lexing; there is no recovery.
type UnexpectedCharacterError struct {
	Pos  Position
	Char rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at row %d, column %d", e.Char, e.Pos.Row, e.Pos.Column)
}
