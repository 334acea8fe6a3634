package ast

import (
	"fmt"
)

type testDigitValue struct {
	value int64
}

func (tv *testDigitValue) Type() NodeType {
	return NodeTypeNumber
}

func (tv *testDigitValue) Value() interface{} {
	return tv.value
}

func (tv *testDigitValue) Encode() string {
	return fmt.Sprintf("%d", tv.value)
}

var (
	_ = Valuer(&testDigitValue{})
)
