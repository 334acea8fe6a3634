package sexpr

import (
	"errors"
)

var errNoSuchKey = errors.New("no such key")

type symbolTable struct {
	n map[string]*Value
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]*Value),
	}
}

func (st *symbolTable) Set(name string, value *Value) {
	st.n[name] = value
}

func (st *symbolTable) Get(name string) (*Value, error) {
	if value, ok := st.n[name]; ok {
		return value, nil
	}
	return nil, errNoSuchKey
}
