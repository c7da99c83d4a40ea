package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	// Validation is the error code for malformed arguments: bad face sets, bad roll counts, unknown result forms.
	Validation = iota
	// Lookup is the error code for a face that is not on the die.
	Lookup
	// Type is the error code for a weight that cannot be read as a real number.
	Type
	// State is the error code for reading results before anything was played.
	State
	// Unexpected errors should not occur.
	Unexpected = 999
)

//MonteCarloError represents a custom error returned by the montecarlo package
type MonteCarloError struct {
	Err   string
	Code  int32
	Inner error
}

//Error returns the message string
func (e MonteCarloError) Error() string {
	if e.Inner != nil {
		return e.Err + ": " + e.Inner.Error()
	}
	return e.Err
}

//Unwrap returns the inner error, if any
func (e MonteCarloError) Unwrap() error {
	return e.Inner
}

//NewMonteCarloError creates a new MonteCarloError
func NewMonteCarloError(text string, code int32, inner error) *MonteCarloError {
	return &MonteCarloError{
		Err:   text,
		Code:  code,
		Inner: inner,
	}
}

//NewValidationError creates a MonteCarloError with the Validation code
func NewValidationError(format string, a ...interface{}) *MonteCarloError {
	return NewMonteCarloError(fmt.Sprintf(format, a...), Validation, nil)
}

//NewLookupError creates a MonteCarloError with the Lookup code
func NewLookupError(format string, a ...interface{}) *MonteCarloError {
	return NewMonteCarloError(fmt.Sprintf(format, a...), Lookup, nil)
}

//NewTypeError creates a MonteCarloError with the Type code
func NewTypeError(inner error, format string, a ...interface{}) *MonteCarloError {
	return NewMonteCarloError(fmt.Sprintf(format, a...), Type, inner)
}

//NewStateError creates a MonteCarloError with the State code
func NewStateError(format string, a ...interface{}) *MonteCarloError {
	return NewMonteCarloError(fmt.Sprintf(format, a...), State, nil)
}

//CodeOf returns the code of the first MonteCarloError in err's chain, or Unexpected.
func CodeOf(err error) int32 {
	var mcErr *MonteCarloError
	if stderrors.As(err, &mcErr) {
		return mcErr.Code
	}
	return Unexpected
}

func IsValidation(err error) bool { return err != nil && CodeOf(err) == Validation }
func IsLookup(err error) bool     { return err != nil && CodeOf(err) == Lookup }
func IsType(err error) bool       { return err != nil && CodeOf(err) == Type }
func IsState(err error) bool      { return err != nil && CodeOf(err) == State }

//New creates a new simple error
func New(text string) error {
	return stderrors.New(text)
}

//Newf creates a new simple error with fmt.Errorf
func Newf(text string, a ...interface{}) error {
	return fmt.Errorf(text, a...)
}
