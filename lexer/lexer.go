package lexer

import (
	"bufio"
	"bytes"
	"io"
)

const eof = rune(-1)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)

	isPlus  = isTokenType(TokenPlus)
	isMinus = isTokenType(TokenMinus)

	isNewLine    = isTokenType(TokenNewLine)
	isWhitespace = isTokenType(TokenWhitespace)

	isWord  = isTokenType(TokenWord)
	isDigit = isTokenType(TokenDigit)
)

// New initializes a Lexer object. NUL, byte order marks and invalid UTF-8
// sequences are not filtered, they come out as invalid tokens like any other
// rune outside of the language.
func New(r io.Reader) *Lexer {
	return &Lexer{
		in:    bufio.NewReader(r),
		buf:   []rune{},
		state: lexDefaultState,
	}
}

// Lexer represents a lexical analyzer. Tokens are produced on demand, every
// call to Next runs the state machine until at least one token is ready.
type Lexer struct {
	in *bufio.Reader

	state lexState
	queue []Token
	tok   Token

	lastErr error

	buf []rune

	start  int
	offset int
	lines  int
}

// Next advances to the next token, it returns false once the EOF token has
// been consumed or after an error.
func (lx *Lexer) Next() bool {
	for len(lx.queue) == 0 {
		if lx.state == nil {
			return false
		}
		lx.state = lx.state(lx)
	}
	lx.tok, lx.queue = lx.queue[0], lx.queue[1:]
	return true
}

// Token returns the last token read by Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// Err returns the error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.queue = append(lx.queue, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		col:  lx.start + 1,
		line: lx.lines + 1,
	})

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]

	if tt == TokenNewLine {
		lx.lines++
		lx.start = 0
		lx.offset = 0
	}
}

func (lx *Lexer) peek() rune {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		if err != io.EOF && lx.lastErr == nil {
			lx.lastErr = err
		}
		return eof
	}
	_ = lx.in.UnreadRune()
	return r
}

func (lx *Lexer) next() (rune, error) {
	if lx.lastErr != nil {
		return rune(0), lx.lastErr
	}
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return rune(0), err
	}

	lx.offset++
	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {

	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)

	case isPlus(r):
		return lexEmit(TokenPlus)
	case isMinus(r):
		return lexEmit(TokenMinus)

	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace)

	case isDigit(r):
		// numbers are a single digit long
		return lexEmit(TokenDigit)
	case isWord(r):
		return lexCollectStream(TokenWord)

	}

	return lexEmit(TokenInvalid)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return lexStateEOF
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.buf = lx.buf[0:0]
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}

	if err := lx.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
