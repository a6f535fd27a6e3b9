package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reBinary  = regexp.MustCompile(`^-?[01]+b$`)
	reOctal   = regexp.MustCompile(`^-?[0-7]+o$`)
	reHex     = regexp.MustCompile(`^-?[0-9][0-9a-f]*h$`)
	reDecimal = regexp.MustCompile(`^-?[0-9]+$`)
)

// ParseNumberLiteral classifies a raw lexer Number token's text by suffix
// and returns its signed value: trailing b/o/h select binary/octal/hex,
// no suffix is decimal. Matching is case-insensitive.
func ParseNumberLiteral(raw string) (int32, error) {
	s := strings.ToLower(raw)

	var body string
	var base int
	switch {
	case reBinary.MatchString(s):
		body, base = strings.TrimSuffix(s, "b"), 2
	case reOctal.MatchString(s):
		body, base = strings.TrimSuffix(s, "o"), 8
	case reHex.MatchString(s):
		body, base = strings.TrimSuffix(s, "h"), 16
	case reDecimal.MatchString(s):
		body, base = s, 10
	default:
		return 0, &InvalidNumberError{Text: raw}
	}

	v, err := strconv.ParseInt(body, base, 64)
	if err != nil {
		return 0, &InvalidNumberError{Text: raw}
	}
	return int32(v), nil
}

// InvalidNumberError reports a Number token whose text matches none of
// the four literal forms.
type InvalidNumberError struct {
	Text string
}

func (e *InvalidNumberError) Error() string {
	return "invalid number literal " + strconv.Quote(e.Text)
}
