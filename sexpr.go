package sexpr

import (
	"io"
	"log"

	"github.com/xiam/sexpr-calc/ast"
	"github.com/xiam/sexpr-calc/parser"
)

var logger = log.New(io.Discard, "sexpr: ", log.Lmicroseconds)

// SetLogOutput sets the destination of the evaluation trace, which is
// discarded by default.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Reader parses source code read from an io.Reader.
type Reader struct {
	r io.Reader
}

// NewReader creates a Reader on top of r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads the whole stream and returns the program tree.
func (r *Reader) Parse() (*ast.Node, error) {
	p := parser.New(r.r)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Root(), nil
}

// Run parses the stream and evaluates it within env.
func (r *Reader) Run(env *Env) (*Value, error) {
	program, err := r.Parse()
	if err != nil {
		return nil, err
	}
	return Eval(program, env)
}

// Run evaluates src in a new scope and returns the value of the last
// top-level form.
func Run(src string) (*Value, error) {
	return RunEnv(src, NewEnv(nil))
}

// RunEnv evaluates src in env. Definitions made by src remain in env
// afterwards, even if a later form fails.
func RunEnv(src string, env *Env) (*Value, error) {
	program, err := parser.Parse([]byte(src))
	if err != nil {
		return nil, err
	}
	return Eval(program, env)
}
