package gomap

import (
	"errors"
	"fmt"
)

var (
	ErrExpectedValue  = errors.New("expected value")
	ErrExpectedArray  = errors.New("expected array")
	ErrExpectedObject = errors.New("expected object")
)

// ScalarError reports value text that does not parse as the requested
// scalar type.
type ScalarError struct {
	Value string
	Err   error
}

func (e *ScalarError) Error() string {
	return fmt.Sprintf("cannot convert value %q: %v", e.Value, e.Err)
}

func (e *ScalarError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a declared field absent from the object being
// converted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// ArityError reports a fixed-size sequence conversion applied to an array
// of the wrong length.
type ArityError struct {
	Expected, Found int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("invalid length: expected %d, found %d", e.Expected, e.Found)
}

// VariantError reports a value outside a closed variant name set.
type VariantError struct {
	Name string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("unrecognized variant %q", e.Name)
}
