package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperator matches every *InvalidOperatorError with errors.Is.
	ErrInvalidOperator = errors.New("invalid operator code")

	// ErrInvalidCriterion matches every *InvalidCriterionError with errors.Is.
	ErrInvalidCriterion = errors.New("invalid criterion")
)

type InvalidOperatorError struct {
	Code string
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator code: '%s'", e.Code)
}

func (e *InvalidOperatorError) Unwrap() error {
	return ErrInvalidOperator
}

type InvalidCriterionError struct {
	Criterion any
	Operator  string
}

func (e *InvalidCriterionError) Error() string {
	return fmt.Sprintf("'%s' is not a valid criterion for the '%s' operator", display(e.Criterion), e.Operator)
}

func (e *InvalidCriterionError) Unwrap() error {
	return ErrInvalidCriterion
}
