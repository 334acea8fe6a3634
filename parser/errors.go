package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrSyntax          = errors.New("no such syntax")
)

// SyntaxError is returned when the source contains a character that is not
// part of the language.
type SyntaxError struct {
	Char   rune
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("NoSuchSyntax: %q at %d:%d", e.Char, e.Line, e.Column)
}

// Is reports whether target is ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
