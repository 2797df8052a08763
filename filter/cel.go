package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// NewCEL compiles a Common Expression Language expression.
// label is a double and index an int; the result must be a bool.
func NewCEL(expression string) (Predicate, error) {
	env, err := cel.NewEnv(
		cel.Variable("label", cel.DoubleType),
		cel.Variable("index", cel.IntType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, &CompileError{Engine: EngineCEL, Expression: expression, Err: err}
	}

	ast, iss := env.Compile(expression)
	if iss.Err() != nil {
		return nil, &CompileError{Engine: EngineCEL, Expression: expression, Err: iss.Err()}
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, &CompileError{
			Engine:     EngineCEL,
			Expression: expression,
			Err:        fmt.Errorf("%w, got %s", ErrNotBool, ast.OutputType()),
		}
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, &CompileError{Engine: EngineCEL, Expression: expression, Err: err}
	}

	return func(index int, label float64) (bool, error) {
		out, _, err := prg.Eval(map[string]any{
			"label": label,
			"index": int64(index),
		})
		if err != nil {
			return false, err
		}
		b, ok := out.Value().(bool)
		if !ok {
			return false, ErrNotBool
		}
		return b, nil
	}, nil
}
