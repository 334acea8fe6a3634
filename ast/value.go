package ast

import (
	"fmt"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeNumber:
		return fmt.Sprintf("%d", n.v)
	case NodeTypeSymbol:
		return fmt.Sprintf("%s", n.v)
	}

	panic("unreachable")
}

// NewNumberValue creates a value of type number and sets it to the given
// integer
func NewNumberValue(v int64) Valuer {
	return newNodeValue(NodeTypeNumber, v)
}

// NewSymbolValue creates a value of type symbol and sets it to the given name
func NewSymbolValue(v string) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

var _ = Valuer(&nodeValue{})
