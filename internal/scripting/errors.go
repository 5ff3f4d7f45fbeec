package scripting

import (
	"errors"
	"fmt"
)

// ArgumentError is raised for a wrong argument count or an invalid
// argument value.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// RangeError is raised for a numeric argument outside its allowed range.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return e.Msg }

// TypeError is raised when an argument has the wrong type.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

// NoMethodError is raised when a receiver does not respond to a method.
type NoMethodError struct {
	Class  string
	Method string
}

func (e *NoMethodError) Error() string {
	return fmt.Sprintf("undefined method '%s' for %s", e.Method, e.Class)
}

func argumentErrorf(format string, args ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}

func rangeErrorf(format string, args ...any) error {
	return &RangeError{Msg: fmt.Sprintf(format, args...)}
}

func typeErrorf(format string, args ...any) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

// IsArgumentError reports whether err is or wraps an ArgumentError.
func IsArgumentError(err error) bool {
	var target *ArgumentError
	return errors.As(err, &target)
}

// IsRangeError reports whether err is or wraps a RangeError.
func IsRangeError(err error) bool {
	var target *RangeError
	return errors.As(err, &target)
}

// IsTypeError reports whether err is or wraps a TypeError.
func IsTypeError(err error) bool {
	var target *TypeError
	return errors.As(err, &target)
}
