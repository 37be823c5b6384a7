package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota
	TokenOpen              // Open delimiter: "(", "[" or "{"
	TokenClose             // Close delimiter: ")", "]" or "}"
	TokenString            // Double quoted string, quotes included
	TokenAtom              // Anything else up to a delimiter, whitespace, ';' or '"'
	TokenEOF               // End of input
	TokenError             // Unterminated string
)

var tokenValues = map[TokenType][]byte{
	TokenOpen:  []byte("([{"),
	TokenClose: []byte(")]}"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid: "invalid",
	TokenOpen:    "open",
	TokenClose:   "close",
	TokenString:  "string",
	TokenAtom:    "atom",
	TokenEOF:     "EOF",
	TokenError:   "error",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Closer returns the close delimiter that matches the open delimiter c.
func Closer(c byte) (byte, bool) {
	for i, v := range tokenValues[TokenOpen] {
		if v == c {
			return tokenValues[TokenClose][i], true
		}
	}
	return 0, false
}

func isTokenType(tt TokenType) func(c byte) bool {
	return isOneOf(tokenValues[tt])
}

func isOneOf(set []byte) func(c byte) bool {
	return func(c byte) bool {
		for _, v := range set {
			if v == c {
				return true
			}
		}
		return false
	}
}
