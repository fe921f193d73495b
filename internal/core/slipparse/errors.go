package slipparse

import "fmt"

// StructuralError means the line or group does not match any grammar shape:
// wrong delimiter, missing '=', non-numeric token. It is always attributable
// to one line or group and is never coerced into a different grammar.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string { return e.Reason }

// ValidationError means the shape parsed but a semantic constraint failed:
// number outside the pana set, column out of range for its chart, duplicate
// time column, non-positive value.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func structuralf(format string, args ...any) *StructuralError {
	return &StructuralError{Reason: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
