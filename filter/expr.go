package filter

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type exprEnv struct {
	Label float64 `expr:"label"`
	Index int     `expr:"index"`
}

// NewExpr compiles an expr-lang expression.
func NewExpr(expression string) (Predicate, error) {
	program, err := expr.Compile(expression, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, &CompileError{Engine: EngineExpr, Expression: expression, Err: err}
	}
	return exprPredicate(program), nil
}

func exprPredicate(program *vm.Program) Predicate {
	return func(index int, label float64) (bool, error) {
		out, err := expr.Run(program, exprEnv{Label: label, Index: index})
		if err != nil {
			return false, err
		}
		b, ok := out.(bool)
		if !ok {
			return false, ErrNotBool
		}
		return b, nil
	}
}
