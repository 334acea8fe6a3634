package parser

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/xiam/sexpr-calc/ast"
	"github.com/xiam/sexpr-calc/lexer"
)

var tokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// Parser reads tokens from a lexer and builds a program tree. Lists are
// tracked with an explicit stack, words are buffered until a separator or a
// closing parenthesis is found.
type Parser struct {
	lx   *lexer.Lexer
	root *ast.Node

	stack  []*ast.Node
	symbol []*lexer.Token

	lastErr error
}

// New creates a parser that reads source code from r.
func New(r io.Reader) *Parser {
	p := &Parser{}
	p.root = ast.NewProgram()
	p.lx = lexer.New(r)
	return p
}

// Parse consumes the whole input.
func (p *Parser) Parse() error {
	for state := parserDefaultState; state != nil; {
		state = state(p)
	}

	if err := p.lx.Err(); err != nil {
		return err
	}

	return p.lastErr
}

// Root returns the program node.
func (p *Parser) Root() *ast.Node {
	return p.root
}

func (p *Parser) next() *lexer.Token {
	if p.lx.Next() {
		tok := p.lx.Token()
		return &tok
	}
	return tokenEOF
}

// curr returns the innermost open list, or the program itself at depth 0.
func (p *Parser) curr() *ast.Node {
	if len(p.stack) == 0 {
		return p.root
	}
	return p.stack[len(p.stack)-1]
}

func (p *Parser) flush() error {
	if len(p.symbol) == 0 {
		return nil
	}
	tok := mergeTokens(lexer.TokenWord, p.symbol)
	p.symbol = p.symbol[0:0]

	_, err := p.curr().PushValue(tok, ast.NewSymbolValue(tok.Text()))
	return err
}

func mergeTokens(tt lexer.TokenType, tokens []*lexer.Token) *lexer.Token {
	var text string

	var firstTok *lexer.Token
	for _, tok := range tokens {
		if firstTok == nil {
			firstTok = tok
		}
		text = text + tok.Text()
	}

	line, col := firstTok.Pos()
	return lexer.NewToken(tt, text, line, col)
}

func parserDefaultState(p *Parser) parserState {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return parserStateEOF

	case lexer.TokenOpenList:
		return parserStateOpenList(tok)

	case lexer.TokenCloseList:
		return parserStateCloseList(tok)

	case lexer.TokenPlus, lexer.TokenMinus:
		if _, err := p.curr().PushValue(tok, ast.NewSymbolValue(tok.Text())); err != nil {
			return parserErrorState(err)
		}

	case lexer.TokenWhitespace, lexer.TokenNewLine:
		if err := p.flush(); err != nil {
			return parserErrorState(err)
		}

	case lexer.TokenDigit:
		return parserStateNumeric(tok)

	case lexer.TokenWord:
		p.symbol = append(p.symbol, tok)

	default:
		line, col := tok.Pos()
		return parserErrorState(&SyntaxError{
			Char:   tok.Rune(),
			Line:   line,
			Column: col,
		})
	}

	return parserDefaultState
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

func parserStateNumeric(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		i64, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return parserErrorState(err)
		}
		if _, err := p.curr().PushValue(tok, ast.NewNumberValue(i64)); err != nil {
			return parserErrorState(err)
		}
		return parserDefaultState
	}
}

func parserStateOpenList(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		// a pending word is not flushed here, it keeps growing inside the
		// new list
		list, err := p.curr().PushList(tok)
		if err != nil {
			return parserErrorState(err)
		}
		p.stack = append(p.stack, list)
		return parserDefaultState
	}
}

func parserStateCloseList(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		if len(p.stack) == 0 {
			line, col := tok.Pos()
			return parserErrorState(fmt.Errorf("%w %q at %d:%d", ErrUnexpectedToken, tok.Text(), line, col))
		}
		if err := p.flush(); err != nil {
			return parserErrorState(err)
		}
		p.stack = p.stack[:len(p.stack)-1]
		return parserDefaultState
	}
}

func parserStateEOF(p *Parser) parserState {
	// a trailing word with nothing after it still counts
	if err := p.flush(); err != nil {
		return parserErrorState(err)
	}
	if len(p.stack) > 0 {
		line, col := p.stack[len(p.stack)-1].Token().Pos()
		return parserErrorState(fmt.Errorf("%w: list opened at %d:%d is never closed", ErrUnexpectedEOF, line, col))
	}
	return nil
}

// Parse reads a program from the given source.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))

	err := p.Parse()
	if err != nil {
		return nil, err
	}

	return p.root, nil
}
