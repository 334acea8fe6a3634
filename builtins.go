package sexpr

import (
	"fmt"
	"regexp"

	"github.com/nukata/goarith"
	"github.com/xiam/sexpr-calc/ast"
)

var symbolName = regexp.MustCompile(`^\w+$`)

var coreEnv = newEnv(nil)

var builtins = map[string]Procedure{
	"define": define,
	"+":      add,
	"-":      sub,
}

func init() {
	for name, fn := range builtins {
		coreEnv.st.Set(name, NewFunctionValue(name, fn))
	}
	coreEnv.readOnly = true
}

// resolveOperand turns an unevaluated operand into a number.
func resolveOperand(operand *ast.Node, env *Env, exec Evaluator) (goarith.Number, error) {
	switch operand.Type() {
	case ast.NodeTypeNumber:
		return goarith.AsNumber(operand.Int()), nil

	case ast.NodeTypeSymbol:
		name := operand.Symbol()
		value, err := env.Get(name)
		if err != nil {
			return nil, err
		}
		if value.Type != ValueTypeNumber {
			return nil, &UnboundError{Name: name}
		}
		return value.Number(), nil

	case ast.NodeTypeList:
		value, err := exec(operand, env)
		if err != nil {
			return nil, err
		}
		if value == nil {
			value = Nil
		}
		if value.Type != ValueTypeNumber {
			return nil, &TypeMismatchError{Want: ValueTypeNumber, Got: value.Type}
		}
		return value.Number(), nil
	}

	return nil, fmt.Errorf("%w: operand %v", ErrNotImplemented, operand)
}

// (define name [value])
func define(operands []*ast.Node, env *Env, exec Evaluator) (*Value, error) {
	if len(operands) < 1 || len(operands) > 2 {
		return nil, &ArityError{Name: "define", Expected: 1, Max: 2, Got: len(operands)}
	}

	target := operands[0]
	if !target.Is(ast.NodeTypeSymbol) || !symbolName.MatchString(target.Symbol()) {
		return nil, fmt.Errorf("define %s: %w", ast.Encode(target), ErrNotImplemented)
	}
	name := target.Symbol()

	value := Nil
	if len(operands) == 2 {
		n, err := resolveOperand(operands[1], env, exec)
		if err != nil {
			return nil, err
		}
		value = NewNumberValue(n)
	}

	logger.Printf("%v define %s %v", env, name, value)
	if err := env.Set(name, value); err != nil {
		return nil, err
	}
	return Nil, nil
}

// (+ a b ...)
func add(operands []*ast.Node, env *Env, exec Evaluator) (*Value, error) {
	result := goarith.AsNumber(int64(0))
	for _, operand := range operands {
		n, err := resolveOperand(operand, env, exec)
		if err != nil {
			return nil, err
		}
		result = result.Add(n)
	}
	return NewNumberValue(result), nil
}

// (- a b ...)
func sub(operands []*ast.Node, env *Env, exec Evaluator) (*Value, error) {
	if len(operands) < 1 {
		return nil, &ArityError{Name: "-", Expected: 1, Max: -1, Got: len(operands)}
	}

	result, err := resolveOperand(operands[0], env, exec)
	if err != nil {
		return nil, err
	}

	if len(operands) == 1 {
		return NewNumberValue(goarith.AsNumber(int64(0)).Sub(result)), nil
	}

	for _, operand := range operands[1:] {
		n, err := resolveOperand(operand, env, exec)
		if err != nil {
			return nil, err
		}
		result = result.Sub(n)
	}
	return NewNumberValue(result), nil
}
