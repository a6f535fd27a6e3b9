package lexer

import "github.com/retroenv/asm8051/internal/vocab"

// Kind identifies a token's shape. Payload fields on Token are only
// meaningful for the Kind that produced them.
type Kind int

const (
	Identifier Kind = iota
	OperatorTok
	DirectLocationTok
	KeywordTok
	Number
	String
	Colon
	Comma
	Dot
	At
	Plus
	LeftBracket
	RightBracket
	Newline
)

// Token is a single lexical unit with its source position. Identifier and
// Number keep their raw text (numeric base is resolved by the parser);
// String carries the already-escape-decoded value.
type Token struct {
	Kind     Kind
	Pos      Position
	Text     string // Identifier, Number (raw), String (decoded)
	Operator vocab.Operator
	Direct   vocab.DirectLocation
	Keyword  vocab.Keyword
}

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case OperatorTok:
		return "operator"
	case DirectLocationTok:
		return "direct location"
	case KeywordTok:
		return "keyword"
	case Number:
		return "number"
	case String:
		return "string"
	case Colon:
		return "':'"
	case Comma:
		return "','"
	case Dot:
		return "'.'"
	case At:
		return "'@'"
	case Plus:
		return "'+'"
	case LeftBracket:
		return "'['"
	case RightBracket:
		return "']'"
	case Newline:
		return "newline"
	default:
		return "unknown"
	}
}
