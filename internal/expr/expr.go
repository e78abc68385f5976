package expr

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Evaluable is a compiled expression.
type Evaluable interface {
	// Text returns the source text the expression was compiled from.
	Text() string
	// Evaluate evaluates the expression against the given variables.
	Evaluate(vars map[string]cty.Value) (cty.Value, error)
}

// Compiler turns expression text into an Evaluable.
type Compiler interface {
	Compile(text string) (Evaluable, error)
}

// CompileError is returned when expression text is malformed.
type CompileError struct {
	Text string
	Err  error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid expression %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Err
}
