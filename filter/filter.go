package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/labelvec/internal/conv"
	"github.com/hupe1980/labelvec/subset"
)

// Engine names an expression language.
type Engine string

const (
	EngineExpr Engine = "expr"
	EngineCEL  Engine = "cel"
)

// ErrUnknownEngine is returned by Compile for an unsupported engine name.
var ErrUnknownEngine = errors.New("filter: unknown engine")

// ErrNotBool is wrapped when an expression does not yield a bool.
var ErrNotBool = errors.New("filter: expression must evaluate to bool")

// ParseEngine parses an engine name.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(s)); e {
	case EngineExpr, EngineCEL:
		return e, nil
	case "":
		return EngineExpr, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, s)
	}
}

// Predicate reports whether the label at a physical index is selected.
type Predicate func(index int, label float64) (bool, error)

// CompileError describes an expression that failed to compile.
type CompileError struct {
	Engine     Engine
	Expression string
	Err        error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("filter: compile %s expression %q: %v", e.Engine, e.Expression, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// EvalError describes a runtime failure for one label.
type EvalError struct {
	Index int
	Err   error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("filter: evaluate index %d: %v", e.Index, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// Compile builds a Predicate for expression using engine.
func Compile(engine Engine, expression string) (Predicate, error) {
	switch engine {
	case EngineExpr:
		return NewExpr(expression)
	case EngineCEL:
		return NewCEL(expression)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// Select evaluates pred for every label and returns the matching offsets.
func Select(labels []float64, pred Predicate) (*subset.Bitmap, error) {
	if _, err := conv.IntToUint32(len(labels)); err != nil {
		return nil, fmt.Errorf("filter: too many labels: %w", err)
	}
	out := subset.NewBitmap()
	for i, v := range labels {
		ok, err := pred(i, v)
		if err != nil {
			return nil, &EvalError{Index: i, Err: err}
		}
		if ok {
			out.Add(uint32(i)) //nolint:gosec // bounded by the length check above
		}
	}
	return out, nil
}
