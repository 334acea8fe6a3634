package sexpr

import (
	"errors"
	"fmt"
)

var (
	ErrUnbound        = errors.New("unbound")
	ErrArity          = errors.New("wrong number of arguments")
	ErrNotImplemented = errors.New("not implemented")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrReadOnly       = errors.New("read-only environment")
)

// UnboundError is returned when a name resolves to nothing, or to something
// that is not a number where a number is required.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("Unbound: '%s'", e.Name)
}

func (e *UnboundError) Is(target error) bool {
	return target == ErrUnbound
}

// ArityError is returned when a procedure gets a wrong number of operands.
// Max is -1 for procedures without an upper bound.
type ArityError struct {
	Name     string
	Expected int
	Max      int
	Got      int
}

func (e *ArityError) Error() string {
	if e.Got < e.Expected {
		return fmt.Sprintf("%s: too few arguments, expected at least %d, got %d", e.Name, e.Expected, e.Got)
	}
	return fmt.Sprintf("%s: too many arguments, expected at most %d, got %d", e.Name, e.Max, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// TypeMismatchError is returned when an evaluated operand does not have the
// expected shape.
type TypeMismatchError struct {
	Want ValueType
	Got  ValueType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %v, got %v", e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
