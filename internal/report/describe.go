package report

import (
	"errors"
	"fmt"

	"cidrcalc/internal/domain"
)

// Describe maps core error kinds to a message for the user. Errors of any
// other kind are returned as-is.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var fe *domain.FormatError
	if errors.As(err, &fe) {
		return fmt.Sprintf("%q is not valid: %s", fe.Input, fe.Reason)
	}
	var re *domain.RangeError
	if errors.As(err, &re) {
		switch re.Field {
		case domain.FieldPrefixLength:
			return fmt.Sprintf("prefix length %d is outside 0-32", re.Value)
		case domain.FieldRangeStart:
			return "the start address must not be after the end address"
		default:
			return fmt.Sprintf("%s %d is out of range", re.Field, re.Value)
		}
	}
	return err.Error()
}
