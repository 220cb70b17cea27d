// Package validation provides jellydator/validation rules for token request bodies.
package validation

import (
	"encoding/base64"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/tokenguard/internal/errors"
)

// WrapValidationError marks a request validation failure as ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank rejects strings that are empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// OneOfFold accepts a string equal to one of values, ignoring case and surrounding
// whitespace. Empty strings pass so optional fields fall back to their default.
func OneOfFold(values ...string) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			s = strings.TrimSpace(s)
			for _, v := range values {
				if strings.EqualFold(s, v) {
					return true
				}
			}
			return false
		},
		validation.NewError("validation_one_of", "must be one of: "+strings.Join(values, ", ")),
	)
}

// Base64 accepts padded standard base64, the encoding used for payloads and modifiers.
var Base64 = encodedRule("validation_base64", "must be valid base64-encoded data",
	func(s string) error {
		_, err := base64.StdEncoding.DecodeString(s)
		return err
	})

// encodedRule builds a string rule around decode. Pointers are dereferenced.
// Empty values are left to Required, NotNil or NotBlank.
func encodedRule(code, message string, decode func(string) error) validation.Rule {
	return validation.By(func(value any) error {
		value, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return validation.NewError(code+"_type", "must be a string")
		}
		if s == "" {
			return nil
		}
		if decode(s) != nil {
			return validation.NewError(code, message)
		}
		return nil
	})
}
