package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePath validates an output or input file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateDimension checks that a frame dimension is a finite positive number.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive (got %g)", name, v)
	}
	return nil
}

// ValidateNonNegative checks that a length such as a margin, node radius or
// clearance is finite and not negative.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative (got %g)", name, v)
	}
	return nil
}

// ValidateChoice checks that value is one of the allowed options.
func ValidateChoice(code Code, name, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(code, "invalid %s: %q (must be one of: %s)", name, value, strings.Join(allowed, ", "))
}
