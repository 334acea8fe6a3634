package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/sexpr-calc/lexer"
)

var errNotVector = errors.New("nodes of type value can't accept children")

// Node represents leaf of the AST
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// New creates and returns an orphaned node based on the given token
func New(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewNumber creates and returns a node of type "number"
func NewNumber(tok *lexer.Token, n int64) *Node {
	return New(tok, NewNumberValue(n))
}

// NewSymbol creates and returns a node of type "symbol"
func NewSymbol(tok *lexer.Token, name string) *Node {
	return New(tok, NewSymbolValue(name))
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token, children ...*Node) *Node {
	return newNode(NodeTypeList, tok, append([]*Node{}, children...))
}

// NewProgram creates the root node that holds all top-level forms
func NewProgram(children ...*Node) *Node {
	return newNode(NodeTypeProgram, nil, append([]*Node{}, children...))
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := New(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Is returns true if the node is of the given type
func (n Node) Is(nt NodeType) bool {
	return n.nt == nt
}

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// Int returns the integer held by a node of type "number"
func (n Node) Int() int64 {
	return n.Value().(int64)
}

// Symbol returns the name held by a node of type "symbol"
func (n Node) Symbol() string {
	return n.Value().(string)
}

// Encode returns the encoded value of the node
func (n Node) Encode() string {
	if n.v == nil {
		return ""
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Encode()
	}
	return ""
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeList, NodeTypeProgram:
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.Value())
}

// Push appends a child node to a parent node of type "list" or "program".
func (n *Node) Push(node *Node) error {
	if !n.IsVector() {
		return errNotVector
	}
	if node.Is(NodeTypeProgram) {
		return fmt.Errorf("can't nest a %v node", node.Type())
	}
	n.v = append(n.v.([]*Node), node)
	return nil
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}
