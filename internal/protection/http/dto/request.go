// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/base64"
	"fmt"

	validation "github.com/jellydator/validation"

	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
	customValidation "github.com/allisson/tokenguard/internal/validation"
)

var (
	ivTypeRule  = customValidation.OneOfFold("none", "random", "content-hash")
	purposeRule = customValidation.OneOfFold("content", "validation")
)

// EncodeTokenRequest contains the parameters for protecting a binary payload.
// Payload must be present but may encode zero bytes.
type EncodeTokenRequest struct {
	Payload  *string `json:"payload"`  // Base64-encoded payload
	Modifier string  `json:"modifier"` // Optional base64-encoded modifier
}

// Validate checks if the encode token request is valid.
func (r *EncodeTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Payload,
			validation.NotNil,
			customValidation.Base64,
		),
		validation.Field(&r.Modifier,
			customValidation.Base64,
		),
	)
}

// DecodeTokenRequest contains the parameters for verifying a token.
type DecodeTokenRequest struct {
	Token    string `json:"token"`    // URL-safe base64 token
	Modifier string `json:"modifier"` // Optional base64-encoded modifier
}

// Validate checks if the decode token request is valid. Token text is not
// checked here: a malformed token is rejected by the codec exactly like a forged one.
func (r *DecodeTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Modifier,
			customValidation.Base64,
		),
	)
}

// EncodeStringRequest contains a string value to protect. The empty string is a valid value.
type EncodeStringRequest struct {
	Value *string `json:"value"`
}

// Validate checks if the encode string request is valid.
func (r *EncodeStringRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value, validation.NotNil),
	)
}

// DecodeStringRequest contains a string token to verify.
type DecodeStringRequest struct {
	Token string `json:"token"`
}

// Validate checks if the decode string request is valid.
func (r *DecodeStringRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// EncryptRequest contains the parameters for a raw encryption.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"` // Base64-encoded plaintext
	Modifier  string `json:"modifier"`  // Optional base64-encoded modifier
	IVType    string `json:"iv_type"`   // "none", "random" (default) or "content-hash"
	Purpose   string `json:"purpose"`   // "content" (default) or "validation"
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.Modifier, customValidation.Base64),
		validation.Field(&r.IVType, ivTypeRule),
		validation.Field(&r.Purpose, purposeRule),
	)
}

// ToCipherInput decodes the request into a cipher input.
func (r *EncryptRequest) ToCipherInput() (*protectionDomain.CipherInput, error) {
	return toCipherInput(r.Plaintext, r.Modifier, r.IVType, r.Purpose)
}

// DecryptRequest contains the parameters for a raw decryption.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"` // Base64-encoded ciphertext
	Modifier   string `json:"modifier"`   // Optional base64-encoded modifier
	IVType     string `json:"iv_type"`
	Purpose    string `json:"purpose"`
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
		validation.Field(&r.Modifier, customValidation.Base64),
		validation.Field(&r.IVType, ivTypeRule),
		validation.Field(&r.Purpose, purposeRule),
	)
}

// ToCipherInput decodes the request into a cipher input.
func (r *DecryptRequest) ToCipherInput() (*protectionDomain.CipherInput, error) {
	return toCipherInput(r.Ciphertext, r.Modifier, r.IVType, r.Purpose)
}

// DecodeModifier decodes an optional base64 modifier. An empty string yields nil.
func DecodeModifier(modifier string) ([]byte, error) {
	if modifier == "" {
		return nil, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(modifier)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 modifier: %w", err)
	}
	return decoded, nil
}

func toCipherInput(data, modifier, ivType, purpose string) (*protectionDomain.CipherInput, error) {
	decodedData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}

	decodedModifier, err := DecodeModifier(modifier)
	if err != nil {
		return nil, err
	}

	parsedIVType, err := protectionDomain.ParseIVType(ivType)
	if err != nil {
		return nil, err
	}

	parsedPurpose, err := protectionDomain.ParsePurpose(purpose)
	if err != nil {
		return nil, err
	}

	return &protectionDomain.CipherInput{
		Data:     decodedData,
		Modifier: decodedModifier,
		IVType:   parsedIVType,
		Purpose:  parsedPurpose,
	}, nil
}
