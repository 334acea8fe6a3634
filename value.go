package sexpr

import (
	"fmt"
	"strings"

	"github.com/nukata/goarith"
	"github.com/xiam/sexpr-calc/ast"
)

// Evaluator evaluates a node within an environment.
type Evaluator func(node *ast.Node, env *Env) (*Value, error)

// Procedure is a built-in operation. It gets its operands unevaluated, along
// with the calling environment and the evaluator to use on nested lists.
type Procedure func(operands []*ast.Node, env *Env, exec Evaluator) (*Value, error)

// ValueType tells which kind of data a Value holds.
type ValueType uint8

const (
	ValueTypeNil ValueType = iota
	ValueTypeNumber
	ValueTypeList
	ValueTypeFunction
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:      "nil",
	ValueTypeNumber:   "number",
	ValueTypeList:     "list",
	ValueTypeFunction: "function",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of an evaluation. Numbers are scalars, lists are
// sequences the caller is expected to unwrap.
type Value struct {
	v    interface{}
	name string

	Type ValueType
}

var (
	Nil = &Value{Type: ValueTypeNil}
)

// NewNumberValue wraps v in a number value.
func NewNumberValue(v goarith.Number) *Value {
	return &Value{v: v, Type: ValueTypeNumber}
}

// NewIntValue is a shortcut for numbers that fit in an int64.
func NewIntValue(v int64) *Value {
	return NewNumberValue(goarith.AsNumber(v))
}

// NewListValue creates a list value with the given items.
func NewListValue(values ...*Value) *Value {
	return &Value{v: append([]*Value{}, values...), Type: ValueTypeList}
}

// NewFunctionValue wraps a procedure so it can be bound to a name.
func NewFunctionValue(name string, fn Procedure) *Value {
	return &Value{v: fn, name: name, Type: ValueTypeFunction}
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeFunction:
		return fmt.Sprintf("<function %v>", v.name)
	case ValueTypeNil:
		return ":nil"
	case ValueTypeNumber:
		return fmt.Sprintf("%v", v.v)
	case ValueTypeList:
		vv := v.v.([]*Value)
		values := []string{}
		for i := range vv {
			values = append(values, vv[i].String())
		}
		return "[" + strings.Join(values, " ") + "]"
	}
	return fmt.Sprintf("%v", v.v)
}

func (v Value) Number() goarith.Number {
	return v.v.(goarith.Number)
}

func (v Value) List() []*Value {
	return v.v.([]*Value)
}

func (v Value) Function() Procedure {
	return v.v.(Procedure)
}

// Equal reports whether both values have the same shape and contents.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}
	if v.Type != w.Type {
		return false
	}
	switch v.Type {
	case ValueTypeNil:
		return true
	case ValueTypeNumber:
		return v.Number().Cmp(w.Number()) == 0
	case ValueTypeList:
		a, b := v.List(), w.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case ValueTypeFunction:
		return v.name == w.name
	}
	return false
}
