package sexpr

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/nukata/goarith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/sexpr-calc/parser"
)

func assertValue(t *testing.T, expected *Value, actual *Value, msgAndArgs ...interface{}) {
	t.Helper()
	if !expected.Equal(actual) {
		assert.Fail(t, "values are not equal: "+expected.String()+" != "+actual.String(), msgAndArgs...)
	}
}

func TestRun(t *testing.T) {
	testCases := []struct {
		In  string
		Out *Value
	}{
		{In: ``, Out: Nil},
		{In: `()`, Out: NewListValue()},
		{In: `1`, Out: NewIntValue(1)},
		{In: `(+)`, Out: NewIntValue(0)},
		{In: `(+ 1)`, Out: NewIntValue(1)},
		{In: `(- 1)`, Out: NewIntValue(-1)},
		{In: `(+ 1 2)`, Out: NewIntValue(3)},
		{In: `(- 1 2)`, Out: NewIntValue(-1)},
		{In: `(+ 1 (+ 2))`, Out: NewIntValue(3)},
		{In: `(+ 1 (+ 2 2))`, Out: NewIntValue(5)},
		{In: `(+ 1 2)(+ 1 (+ 2 2))(- 1)`, Out: NewIntValue(-1)},
		{In: "\n(+ 1 2)\n(+ 1 (+ 2 2))\n(- 1)\n", Out: NewIntValue(-1)},
		{In: `(define one 1)`, Out: Nil},
		{In: `(define one (+ 1 1))(one)`, Out: NewIntValue(2)},
		{In: `(define one 1)(+ one one)`, Out: NewIntValue(2)},
		{
			In: `
(define one 1)
(define two 2)
(define complex (+ one one))
(+ one one)
(+ one two)
`,
			Out: NewIntValue(3),
		},
		{In: `(define one 1) one`, Out: NewIntValue(1)},
		{In: `(define a 5)(define b a)(- b)`, Out: NewIntValue(-5)},
		{In: `(define a 5)(define a (- a 1))(a)`, Out: NewIntValue(4)},
		{In: `(- 9 (- 5 (+ 1 1)) 3)`, Out: NewIntValue(3)},
		{In: `((+ 1 2))`, Out: NewListValue(NewIntValue(3))},
		{In: `(1 2 3)`, Out: NewListValue(NewIntValue(1))},
		{In: `(())`, Out: NewListValue(NewListValue())},
	}

	for i := range testCases {
		value, err := Run(testCases[i].In)
		require.NoError(t, err, "input: %q", testCases[i].In)
		assertValue(t, testCases[i].Out, value, "input: %q", testCases[i].In)
	}
}

func TestRunErrors(t *testing.T) {
	testCases := []struct {
		In      string
		Err     error
		Message string
	}{
		{In: `(-)`, Err: ErrArity, Message: "expected at least 1, got 0"},
		{In: `(apple)`, Err: ErrUnbound, Message: "Unbound: 'apple'"},
		{In: `(define orange apple)`, Err: ErrUnbound, Message: "Unbound: 'apple'"},
		{In: `apple`, Err: ErrUnbound, Message: "Unbound: 'apple'"},
		{In: `(+ 1 apple)`, Err: ErrUnbound, Message: "Unbound: 'apple'"},
		{In: `(- apple)`, Err: ErrUnbound, Message: "Unbound: 'apple'"},
		{In: `(+ define)`, Err: ErrUnbound, Message: "Unbound: 'define'"},
		{In: `+`, Err: ErrUnbound, Message: "Unbound: '+'"},
		{In: `(define x)(+ x)`, Err: ErrUnbound, Message: "Unbound: 'x'"},
		{In: `(define)`, Err: ErrArity, Message: "expected at least 1, got 0"},
		{In: `(define a 1 2)`, Err: ErrArity, Message: "expected at most 2, got 3"},
		{In: `(define 1 2)`, Err: ErrNotImplemented},
		{In: `(define (a) 2)`, Err: ErrNotImplemented},
		{In: `(define + 2)`, Err: ErrNotImplemented},
		{In: `(+ (1))`, Err: ErrTypeMismatch, Message: "expected number, got list"},
		{In: `(define a ())`, Err: ErrTypeMismatch, Message: "expected number, got list"},
		{In: `(+ (define a 1))`, Err: ErrTypeMismatch, Message: "expected number, got nil"},
		{In: `(+ 1 2`, Err: parser.ErrUnexpectedEOF},
		{In: `(* 1 2)`, Err: parser.ErrSyntax, Message: "'*'"},
	}

	for i := range testCases {
		value, err := Run(testCases[i].In)
		assert.Nil(t, value)
		require.Error(t, err, "input: %q", testCases[i].In)
		assert.True(t, errors.Is(err, testCases[i].Err), "input: %q, error: %v", testCases[i].In, err)
		if testCases[i].Message != "" {
			assert.Contains(t, err.Error(), testCases[i].Message)
		}
	}
}

func TestRunErrorDetails(t *testing.T) {
	{
		_, err := Run(`(define orange apple)`)

		var unbound *UnboundError
		require.True(t, errors.As(err, &unbound))
		assert.Equal(t, "apple", unbound.Name)
	}

	{
		_, err := Run(`(-)`)

		var arity *ArityError
		require.True(t, errors.As(err, &arity))
		assert.Equal(t, "-", arity.Name)
		assert.Equal(t, 1, arity.Expected)
		assert.Equal(t, 0, arity.Got)
	}
}

func TestRunEnv(t *testing.T) {
	env := NewEnv(nil)

	value, err := RunEnv(`(define one 1)`, env)
	require.NoError(t, err)
	assertValue(t, Nil, value)

	value, err = RunEnv(`(+ one one)`, env)
	require.NoError(t, err)
	assertValue(t, NewIntValue(2), value)

	// earlier forms keep their effects when a later one fails
	_, err = RunEnv(`(define two 2)(apple)`, env)
	assert.True(t, errors.Is(err, ErrUnbound))

	value, err = RunEnv(`(+ one two)`, env)
	require.NoError(t, err)
	assertValue(t, NewIntValue(3), value)

	// a fresh session does not see those bindings
	_, err = Run(`(one)`)
	assert.True(t, errors.Is(err, ErrUnbound))
}

func TestReader(t *testing.T) {
	env := NewEnv(nil)

	value, err := NewReader(strings.NewReader("(define one 1)\n(+ one 2)\n")).Run(env)
	require.NoError(t, err)
	assertValue(t, NewIntValue(3), value)

	program, err := NewReader(strings.NewReader(`(+ one one)`)).Parse()
	require.NoError(t, err)

	value, err = Eval(program, env)
	require.NoError(t, err)
	assertValue(t, NewIntValue(2), value)

	_, err = NewReader(strings.NewReader(`(+ 1 2))`)).Run(env)
	assert.True(t, errors.Is(err, parser.ErrUnexpectedToken))
}

func TestBigNumbers(t *testing.T) {
	env := NewEnv(nil)

	_, err := RunEnv(`(define n 8)`, env)
	require.NoError(t, err)

	// 8 * 2^62 is past the range of int64
	for i := 0; i < 62; i++ {
		_, err := RunEnv(`(define n (+ n n))`, env)
		require.NoError(t, err)
	}

	value, err := RunEnv(`(n)`, env)
	require.NoError(t, err)
	require.Equal(t, ValueTypeNumber, value.Type)

	assert.True(t, value.Number().Cmp(goarith.AsNumber(int64(math.MaxInt64))) > 0)

	value, err = RunEnv(`(- n n)`, env)
	require.NoError(t, err)
	assertValue(t, NewIntValue(0), value)
}

func TestSetLogOutput(t *testing.T) {
	var buf bytes.Buffer

	SetLogOutput(&buf)
	defer SetLogOutput(io.Discard)

	_, err := Run(`(define one 1)(+ one one)`)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "define one")
	assert.Contains(t, out, "apply +/2")
}
