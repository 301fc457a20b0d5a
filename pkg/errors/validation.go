package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateDimension checks that a canvas dimension is a positive, finite
// number of pixels.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimensions, "%s must be a finite number, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimensions, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateFraction checks that v is finite and within [0, limit].
func ValidateFraction(name string, v, limit float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidJitter, "%s must be a finite number, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidJitter, "%s must not be negative, got %v", name, v)
	}
	if v > limit {
		return New(ErrCodeInvalidJitter, "%s must be at most %v, got %v", name, limit, v)
	}
	return nil
}

// ValidateBasename validates an output file basename.
//
// Validation rules:
//   - Basename cannot be empty
//   - Maximum length of 200 characters
//   - No null bytes or control characters
//   - No path separators (use the output directory instead)
//   - Not "." or ".."
func ValidateBasename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output basename cannot be empty")
	}

	const maxLength = 200
	if len(name) > maxLength {
		return New(ErrCodeInvalidPath, "output basename too long (max %d characters)", maxLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output basename contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return New(ErrCodeInvalidPath, "output basename cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "output basename cannot be %q", name)
	}

	return nil
}
