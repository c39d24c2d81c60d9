// FILE: lixenwraith/simple/errors.go
package simple

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrRequired is returned when a value is established from a nil input.
	ErrRequired = errors.New("argument required")
	// ErrImmutable is returned when a second, differing value is asserted.
	ErrImmutable = errors.New("value cannot be changed")
	// ErrNotConvertible is returned when a kind's cast cannot represent a present input.
	ErrNotConvertible = errors.New("value not convertible")
	// ErrInvalidConfig is returned when a configuration is neither a Config nor a *Value.
	ErrInvalidConfig = errors.New("invalid configuration type")
	// ErrInvalidType is returned for missing or malformed type descriptors.
	ErrInvalidType = errors.New("invalid type")
	// ErrDocumentNotFound is returned when a spec document file does not exist.
	ErrDocumentNotFound = errors.New("spec document not found")
)

// ArgumentError reports a failed argument with its localized reason.
type ArgumentError struct {
	Arg    string
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("simple: argument %q: %v", e.Arg, e.Err)
	}
	return fmt.Sprintf("simple: argument %q: %s", e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// CastError is raised by a kind's cast when the input is rejected for a
// reason more precise than "not convertible". It reaches callers unwrapped.
type CastError struct {
	Kind  string
	Input any
	Err   error
}

func (e *CastError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("simple: cannot cast %v (%T) to %s", e.Input, e.Input, e.Kind)
	}
	return fmt.Sprintf("simple: cannot cast %v (%T) to %s: %v", e.Input, e.Input, e.Kind, e.Err)
}

func (e *CastError) Unwrap() error {
	return e.Err
}

func argRequired(b *Bundle, arg string) error {
	return &ArgumentError{Arg: arg, Reason: b.Format(MsgArgRequired, arg), Err: ErrRequired}
}

func argInvalid(arg, reason string, err error) error {
	return &ArgumentError{Arg: arg, Reason: reason, Err: err}
}

func argInvalidType(b *Bundle, arg string, accepted []string, got any) error {
	return &ArgumentError{
		Arg:    arg,
		Reason: b.Format(MsgArgInvalidType, arg, accepted, fmt.Sprintf("%T", got)),
		Err:    ErrInvalidConfig,
	}
}
