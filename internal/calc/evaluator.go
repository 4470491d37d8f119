package calc

import (
	"errors"
	"fmt"
	"io"

	"github.com/govalues/decimal"
	"github.com/rs/zerolog"

	"github.com/centcount/money"
)

// Operators understood by the evaluator.
const (
	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
	OpDiv = "div"
)

var (
	// ErrUnknownOp is returned for an operator other than add, sub, mul and div.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrBatchFailed is returned by [Evaluator.Run] when at least one
	// operation of the batch failed.
	ErrBatchFailed = errors.New("batch failed")
)

// Result is the outcome of one operation.
type Result struct {
	Op    Operation
	Value money.Money
	Err   error
}

// Evaluator evaluates operations and logs every outcome.
type Evaluator struct {
	logger zerolog.Logger
}

// NewEvaluator creates an evaluator logging to logger.
func NewEvaluator(logger zerolog.Logger) *Evaluator {
	return &Evaluator{logger: logger}
}

// Eval evaluates a single operation.
func (e *Evaluator) Eval(op Operation) (money.Money, error) {
	m, err := e.eval(op)
	if err != nil {
		e.logger.Error().Err(err).Str("op", op.Op).Str("left", op.Left).Msg("operation failed")
		return money.Money{}, err
	}
	e.logger.Debug().Str("op", op.Op).Str("left", op.Left).Stringer("result", m).Msg("operation evaluated")
	return m, nil
}

func (e *Evaluator) eval(op Operation) (money.Money, error) {
	if err := op.Validate(); err != nil {
		return money.Money{}, err
	}
	var left money.Money
	if err := left.UnmarshalText([]byte(op.Left)); err != nil {
		return money.Money{}, fmt.Errorf("left operand: %w", err)
	}
	switch op.Op {
	case OpAdd, OpSub:
		var right money.Money
		if err := right.UnmarshalText([]byte(op.Right)); err != nil {
			return money.Money{}, fmt.Errorf("right operand: %w", err)
		}
		if op.Op == OpAdd {
			return left.Add(right)
		}
		return left.Sub(right)
	default:
		factor, err := decimal.Parse(op.Factor)
		if err != nil {
			return money.Money{}, fmt.Errorf("factor: %w", err)
		}
		if op.Op == OpMul {
			return left.Mul(factor)
		}
		return left.Quo(factor)
	}
}

// Run evaluates every operation of the batch in order.
// A failed operation does not stop the batch; its error is kept in the result
// and Run returns [ErrBatchFailed] once all operations have been evaluated.
func (e *Evaluator) Run(b *Batch) ([]Result, error) {
	results := make([]Result, 0, len(b.Operations))
	failed := 0
	for _, op := range b.Operations {
		m, err := e.Eval(op)
		if err != nil {
			failed++
		}
		results = append(results, Result{Op: op, Value: m, Err: err})
	}
	e.logger.Info().Int("operations", len(results)).Int("failed", failed).Msg("batch evaluated")
	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d operations", ErrBatchFailed, failed, len(results))
	}
	return results, nil
}

// WriteResults writes one line per result to w.
func WriteResults(w io.Writer, results []Result) error {
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "%v = error: %v\n", r.Op, r.Err)
		} else {
			_, err = fmt.Fprintf(w, "%v = %v\n", r.Op, r.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
