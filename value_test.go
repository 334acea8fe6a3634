package sexpr

import (
	"testing"

	"github.com/nukata/goarith"
	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	testCases := []struct {
		In  *Value
		Out string
	}{
		{In: Nil, Out: ":nil"},
		{In: NewIntValue(-4), Out: "-4"},
		{In: NewListValue(), Out: "[]"},
		{In: NewListValue(NewIntValue(1), NewListValue()), Out: "[1 []]"},
		{In: NewFunctionValue("+", add), Out: "<function +>"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Nil.Equal(Nil))
	assert.True(t, NewIntValue(3).Equal(NewNumberValue(goarith.AsNumber(int64(3)))))
	assert.True(t, NewListValue(NewIntValue(1)).Equal(NewListValue(NewIntValue(1))))

	assert.False(t, NewIntValue(3).Equal(NewIntValue(4)))
	assert.False(t, NewIntValue(3).Equal(NewListValue(NewIntValue(3))))
	assert.False(t, NewListValue().Equal(NewListValue(NewListValue())))
	assert.False(t, Nil.Equal(nil))
}
