package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every FormatError.
	ErrFormat = errors.New("format error")
	// ErrRange matches every RangeError.
	ErrRange = errors.New("range error")
)

// FormatError reports text that is not a dotted-quad address or a CIDR.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Input, e.Reason)
}

// Is makes errors.Is(err, ErrFormat) hold.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// RangeError.Field values.
const (
	FieldPrefixLength = "prefix length"
	FieldRangeStart   = "range start"
)

// RangeError reports a numeric value outside its domain, such as a prefix
// length above 32 or a range whose start is after its end.
type RangeError struct {
	Field string
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %d", e.Field, e.Value)
}

// Is makes errors.Is(err, ErrRange) hold.
func (e *RangeError) Is(target error) bool { return target == ErrRange }
