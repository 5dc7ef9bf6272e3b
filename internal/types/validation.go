package types

import "fmt"

// ------------------------------
// Parameter validation
// ------------------------------
//
// Validation failures are local-kind APIErrors so callers still handle a
// single error type.

// ValidateRequired checks that a required string parameter is present.
func ValidateRequired(value, name string) error {
	if value == "" {
		return &APIError{Kind: ErrorKindLocal, Message: fmt.Sprintf("%s is required", name)}
	}
	return nil
}

// ValidateAmount checks that a required monetary parameter is positive.
func ValidateAmount(value float64, name string) error {
	if value <= 0 {
		return &APIError{Kind: ErrorKindLocal, Message: fmt.Sprintf("%s must be positive", name)}
	}
	return nil
}
