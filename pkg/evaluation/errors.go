package evaluation

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidStrategy      = errors.New("invalid seed strategy")
	ErrInsufficientSeedPool = errors.New("insufficient seed pool")
	ErrEmptyTrialSet        = errors.New("empty trial set")
	ErrInvalidTrialCount    = errors.New("invalid trial count")
)

// EvaluationError provides structured error information for seed selection
// and evaluation failures.
type EvaluationError struct {
	Op        string // Operation that failed (e.g., "select", "evaluate")
	Strategy  string // Seed strategy in use
	Requested int    // Trials requested
	Available int    // Eligible seeds found
	Cause     error
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	if e.Strategy == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s %s (requested %d, available %d): %v",
		e.Op, e.Strategy, e.Requested, e.Available, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

// InvalidStrategyError creates an error for an unknown strategy name
func InvalidStrategyError(name string) error {
	return &EvaluationError{
		Op:    "parse strategy",
		Cause: fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidStrategy, name, StrategyRandom, StrategyMaxDegree),
	}
}

// InsufficientSeedPoolError creates an error for a pool smaller than requested
func InsufficientSeedPoolError(strategy string, requested, available int) error {
	return &EvaluationError{
		Op:        "select",
		Strategy:  strategy,
		Requested: requested,
		Available: available,
		Cause:     ErrInsufficientSeedPool,
	}
}

// EmptyTrialSetError creates an error for a selection that yielded no seeds
func EmptyTrialSetError(strategy string, requested, available int) error {
	return &EvaluationError{
		Op:        "evaluate",
		Strategy:  strategy,
		Requested: requested,
		Available: available,
		Cause:     ErrEmptyTrialSet,
	}
}
