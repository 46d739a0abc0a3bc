package debugger

import (
	"fmt"

	"github.com/rvsim/rv64sim/core"
)

// ExpressionEvaluator evaluates debugger expressions (register/memory
// references, arithmetic) and keeps a $1/$2/... history of past results,
// used for conditional breakpoints and the print command.
type ExpressionEvaluator struct {
	valueHistory []uint64
}

// NewExpressionEvaluator returns an evaluator with empty history.
func NewExpressionEvaluator() *ExpressionEvaluator {
	return &ExpressionEvaluator{}
}

// EvaluateExpression evaluates expr against cpu and records the result in
// the value history.
func (e *ExpressionEvaluator) EvaluateExpression(expr string, cpu *core.CPU) (uint64, error) {
	tokens := NewExprLexer(expr).TokenizeAll()
	result, err := NewExprParser(tokens, cpu, e).Parse()
	if err != nil {
		return 0, err
	}
	e.valueHistory = append(e.valueHistory, result)
	return result, nil
}

// Evaluate evaluates expr as a boolean condition (nonzero is true).
func (e *ExpressionEvaluator) Evaluate(expr string, cpu *core.CPU) (bool, error) {
	result, err := e.EvaluateExpression(expr, cpu)
	if err != nil {
		return false, err
	}
	return result != 0, nil
}

// GetValue returns a past result by its 1-based history number.
func (e *ExpressionEvaluator) GetValue(number int) (uint64, error) {
	if number < 1 || number > len(e.valueHistory) {
		return 0, fmt.Errorf("value $%d not in history", number)
	}
	return e.valueHistory[number-1], nil
}

// Reset clears the value history.
func (e *ExpressionEvaluator) Reset() {
	e.valueHistory = e.valueHistory[:0]
}
