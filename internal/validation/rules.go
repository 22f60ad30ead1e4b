// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/credseal/internal/errors"
)

// MaxSecretBytes bounds the plaintext accepted by the transit API.
const MaxSecretBytes = 64 * 1024

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a non-empty string is not only whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// UTF8 validates that a string is well-formed UTF-8, since plaintexts are
// returned as JSON strings.
var UTF8 = validation.NewStringRuleWithError(
	utf8.ValidString,
	validation.NewError("validation_utf8", "must be valid UTF-8"),
)

// MaxBytes validates the encoded length of a string in bytes.
func MaxBytes(limit int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return len(s) <= limit
		},
		validation.NewError("validation_max_bytes", "is too large"),
	)
}
