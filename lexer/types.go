package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenList             // Open parenthesis: "("
	TokenCloseList            // Close parenthesis: ")"
	TokenPlus                 // Plus sign: "+"
	TokenMinus                // Minus sign: "-"
	TokenNewLine              // Newline: "\n"
	TokenWhitespace           // Space: " "
	TokenWord                 // Letters ([a-zA-Z]) and underscore
	TokenDigit                // A single decimal digit
	TokenEOF                  // End of file
)

// Only the plain space separates tokens, tabs and carriage returns are not
// part of the language.
var tokenValues = map[TokenType][]rune{
	TokenOpenList:   []rune{'('},
	TokenCloseList:  []rune{')'},
	TokenPlus:       []rune{'+'},
	TokenMinus:      []rune{'-'},
	TokenNewLine:    []rune{'\n'},
	TokenWhitespace: []rune{' '},
	TokenWord:       []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"),
	TokenDigit:      []rune("0123456789"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenList:   "open_list",
	TokenCloseList:  "close_list",
	TokenPlus:       "plus",
	TokenMinus:      "minus",
	TokenNewLine:    "newline",
	TokenWhitespace: "separator",
	TokenWord:       "word",
	TokenDigit:      "digit",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}
