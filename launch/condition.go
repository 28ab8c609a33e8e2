package launch

import (
	"strings"

	"github.com/pkg/errors"
)

// Condition gates an action.
type Condition interface {
	Evaluate(lc *Context) (bool, error)
	Describe() string
}

// IfCondition holds when its expression is true.
type IfCondition struct {
	Expression Substitution
}

func (c IfCondition) Evaluate(lc *Context) (bool, error) {
	return evaluateExpression(lc, c.Expression)
}

func (c IfCondition) Describe() string {
	return "If(" + c.Expression.Describe() + ")"
}

// UnlessCondition holds when its expression is false.
type UnlessCondition struct {
	Expression Substitution
}

func (c UnlessCondition) Evaluate(lc *Context) (bool, error) {
	v, err := evaluateExpression(lc, c.Expression)
	return !v, err
}

func (c UnlessCondition) Describe() string {
	return "Unless(" + c.Expression.Describe() + ")"
}

func evaluateExpression(lc *Context, expr Substitution) (bool, error) {
	value, err := expr.Perform(lc)
	if err != nil {
		return false, err
	}
	return ParseBool(value)
}

// ParseBool accepts true, 1, false and 0 in any case.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, errors.Errorf("invalid condition expression '%s': expected 'true', 'false', '1' or '0'", value)
}
