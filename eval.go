package sexpr

import (
	"fmt"

	"github.com/xiam/sexpr-calc/ast"
)

// Eval runs every top-level form of program in env and returns the value of
// the last one. An empty program evaluates to Nil. A nil env gets a fresh
// scope on top of the built-ins.
func Eval(program *ast.Node, env *Env) (*Value, error) {
	if program == nil {
		return nil, fmt.Errorf("%w: nil program", ErrNotImplemented)
	}
	if env == nil {
		env = NewEnv(nil)
	}

	forms := []*ast.Node{program}
	if program.Is(ast.NodeTypeProgram) {
		forms = program.List()
	}

	result := Nil
	for i := range forms {
		value, err := evalForm(forms[i], env)
		if err != nil {
			return nil, err
		}
		logger.Printf("%v form %d: %s => %v", env, i, ast.Encode(forms[i]), value)
		result = value
	}

	return result, nil
}

// Exec evaluates a list node. Lists that start with a number or another list
// are not reducible and come back wrapped in a list value, lists that start
// with a name come back as the bare value of that call.
func Exec(node *ast.Node, env *Env) (*Value, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrNotImplemented)
	}
	if env == nil {
		env = NewEnv(nil)
	}
	if !node.Is(ast.NodeTypeList) {
		return evalForm(node, env)
	}
	return execList(node.List(), env)
}

func evalForm(form *ast.Node, env *Env) (*Value, error) {
	switch form.Type() {
	case ast.NodeTypeNumber:
		return NewIntValue(form.Int()), nil

	case ast.NodeTypeSymbol:
		name := form.Symbol()
		value, err := env.Get(name)
		if err != nil {
			return nil, err
		}
		return assertNumber(name, value)

	case ast.NodeTypeList:
		return execList(form.List(), env)

	case ast.NodeTypeProgram:
		return Eval(form, env)
	}

	return nil, fmt.Errorf("%w: node %v", ErrNotImplemented, form)
}

// execList reads the list from the front, the nodes themselves are left
// untouched so a tree can be evaluated more than once.
func execList(nodes []*ast.Node, env *Env) (*Value, error) {
	if len(nodes) == 0 {
		return NewListValue(), nil
	}

	head, operands := nodes[0], nodes[1:]

	switch head.Type() {
	case ast.NodeTypeNumber:
		return NewListValue(NewIntValue(head.Int())), nil

	case ast.NodeTypeList:
		// only the leading list is evaluated
		value, err := execList(head.List(), env)
		if err != nil {
			return nil, err
		}
		return NewListValue(value), nil

	case ast.NodeTypeSymbol:
		return apply(head.Symbol(), operands, env)
	}

	return nil, fmt.Errorf("%w: node %v", ErrNotImplemented, head)
}

func apply(name string, operands []*ast.Node, env *Env) (*Value, error) {
	value, err := env.Get(name)
	if err != nil {
		return nil, err
	}

	if value.Type == ValueTypeFunction {
		logger.Printf("%v apply %s/%d", env, name, len(operands))
		result, err := value.Function()(operands, env, Exec)
		if err != nil {
			return nil, err
		}
		if result == nil {
			// procedures with nothing to return may leave the value out
			return Nil, nil
		}
		return result, nil
	}

	return assertNumber(name, value)
}

func assertNumber(name string, value *Value) (*Value, error) {
	if value.Type != ValueTypeNumber {
		return nil, &UnboundError{Name: name}
	}
	return value, nil
}
