package sexpr

import (
	"fmt"
	"sync/atomic"
)

var envID = uint64(0)

// Env is a layered scope. Lookups fall back to the parent scope, writes
// always land on the scope they are made on.
//
// An Env is not safe for concurrent use. Bindings made through Set or define
// are visible to every holder of the same Env.
type Env struct {
	id uint64

	Parent *Env

	readOnly bool

	st *symbolTable
}

func newEnv(parent *Env) *Env {
	return &Env{
		id:     atomic.AddUint64(&envID, 1),
		Parent: parent,
		st:     newSymbolTable(),
	}
}

// NewEnv creates a scope on top of parent. A nil parent means the built-in
// procedures table.
func NewEnv(parent *Env) *Env {
	if parent == nil {
		parent = coreEnv
	}
	env := newEnv(parent)
	logger.Printf("*ENV: %v -> %v", parent, env)
	return env
}

// ID returns the unique identifier of the scope.
func (env *Env) ID() uint64 {
	return env.id
}

func (env *Env) String() string {
	return fmt.Sprintf("[%v]", env.id)
}

// Set binds name to value in this scope, shadowing any inherited binding.
func (env *Env) Set(name string, value *Value) error {
	if env.readOnly {
		return fmt.Errorf("%w: can't set %q", ErrReadOnly, name)
	}
	logger.Printf("env: %v -- %v -> %v", env, name, value)
	env.st.Set(name, value)
	return nil
}

// Defn binds a procedure in this scope.
func (env *Env) Defn(name string, fn Procedure) error {
	return env.Set(name, NewFunctionValue(name, fn))
}

// Get looks name up in this scope and then outwards.
func (env *Env) Get(name string) (*Value, error) {
	for e := env; e != nil; e = e.Parent {
		if value, err := e.st.Get(name); err == nil {
			return value, nil
		}
	}
	logger.Printf("env: %v <- %q: unbound", env, name)
	return nil, &UnboundError{Name: name}
}
