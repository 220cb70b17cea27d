// Package domain defines the core types of the token protection subsystem:
// algorithm selections, key material, isolation hashing and domain errors.
package domain

import "strings"

// Token layout and key constraints.
const (
	// TagSize is the length in bytes of the integrity tag appended to every payload.
	// Keyed-MD5 digests (16 bytes) are right-padded with zeros to this size.
	TagSize = 20

	// HMACBlockSize is the SHA1 block size used to derive the HMAC inner and outer pads.
	HMACBlockSize = 64

	// PoolCapacity is the maximum number of idle cipher transforms kept per pool.
	PoolCapacity = 100

	// MinValidationKeySize and MaxValidationKeySize bound the validation key in bytes.
	MinValidationKeySize = 40
	MaxValidationKeySize = 128

	// AutoValidationKeySize is the length of a generated validation key.
	AutoValidationKeySize = 64

	// AutoGenerate asks for key material to be generated instead of supplied.
	AutoGenerate = "AutoGenerate"

	// IsolateApps binds generated key material to the application isolation identifier.
	IsolateApps = "IsolateApps"
)

// ValidationAlgorithm is the configured protection mode for tokens.
//
// MD5 and HMACSHA1 only provide integrity. TripleDES and AES add confidentiality
// by encrypting the tagged payload; their tag is always computed with HMAC-SHA1.
type ValidationAlgorithm string

const (
	ValidationMD5       ValidationAlgorithm = "MD5"
	ValidationHMACSHA1  ValidationAlgorithm = "HMACSHA1"
	ValidationTripleDES ValidationAlgorithm = "TripleDES"
	ValidationAES       ValidationAlgorithm = "AES"
)

// ParseValidationAlgorithm resolves a case-insensitive algorithm name.
func ParseValidationAlgorithm(name string) (ValidationAlgorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "MD5":
		return ValidationMD5, nil
	case "SHA1", "HMACSHA1":
		return ValidationHMACSHA1, nil
	case "3DES", "TRIPLEDES":
		return ValidationTripleDES, nil
	case "AES":
		return ValidationAES, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// HashAlgorithm returns the tag algorithm used by this validation mode.
func (v ValidationAlgorithm) HashAlgorithm() HashAlgorithm {
	if v == ValidationMD5 {
		return HashKeyedMD5
	}
	return HashHMACSHA1
}

// RequiresConfidentiality reports whether tokens are encrypted after tagging.
func (v ValidationAlgorithm) RequiresConfidentiality() bool {
	return v == ValidationTripleDES || v == ValidationAES
}

// CipherAlgorithm returns the validation-path cipher. The second result is false
// for integrity-only modes.
func (v ValidationAlgorithm) CipherAlgorithm() (CipherAlgorithm, bool) {
	switch v {
	case ValidationTripleDES:
		return CipherTripleDES, true
	case ValidationAES:
		return CipherAES, true
	default:
		return "", false
	}
}

// HashAlgorithm identifies the integrity tag construction.
type HashAlgorithm string

const (
	// HashKeyedMD5 computes MD5(payload || modifier || validationKey).
	HashKeyedMD5 HashAlgorithm = "keyed-md5"
	// HashHMACSHA1 computes HMAC-SHA1 keyed with the validation key.
	HashHMACSHA1 HashAlgorithm = "hmac-sha1"
)

// DecryptionAlgorithm is the configured content cipher choice.
type DecryptionAlgorithm string

const (
	// DecryptionAuto selects DES for 8-byte keys and AES otherwise.
	DecryptionAuto      DecryptionAlgorithm = "Auto"
	DecryptionDES       DecryptionAlgorithm = "DES"
	DecryptionTripleDES DecryptionAlgorithm = "3DES"
	DecryptionAES       DecryptionAlgorithm = "AES"
)

// ParseDecryptionAlgorithm resolves a case-insensitive decryption algorithm name.
// An empty name means DecryptionAuto.
func ParseDecryptionAlgorithm(name string) (DecryptionAlgorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "AUTO":
		return DecryptionAuto, nil
	case "DES":
		return DecryptionDES, nil
	case "3DES", "TRIPLEDES":
		return DecryptionTripleDES, nil
	case "AES":
		return DecryptionAES, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// CipherAlgorithm identifies a concrete CBC block cipher.
type CipherAlgorithm string

const (
	CipherDES       CipherAlgorithm = "des"
	CipherTripleDES CipherAlgorithm = "3des"
	CipherAES       CipherAlgorithm = "aes"
)

// ValidKeySize reports whether n bytes is an accepted key length for the cipher.
func (c CipherAlgorithm) ValidKeySize(n int) bool {
	switch c {
	case CipherDES:
		return n == 8
	case CipherTripleDES:
		return n == 16 || n == 24
	case CipherAES:
		return n == 16 || n == 24 || n == 32
	default:
		return false
	}
}

// GeneratedKeySize returns the key length used when the key is auto-generated.
func (a DecryptionAlgorithm) GeneratedKeySize() int {
	switch a {
	case DecryptionDES:
		return 8
	case DecryptionTripleDES:
		return 24
	default:
		return 32
	}
}

// IVType selects how the initialization vector prefix is produced.
type IVType string

const (
	// IVNone emits no IV prefix.
	IVNone IVType = "none"
	// IVRandom draws the IV from a cryptographically secure source.
	IVRandom IVType = "random"
	// IVContentHash derives the IV deterministically from the payload.
	IVContentHash IVType = "content-hash"
)

// ParseIVType resolves a case-insensitive IV type name.
func ParseIVType(name string) (IVType, error) {
	switch IVType(strings.ToLower(strings.TrimSpace(name))) {
	case IVNone:
		return IVNone, nil
	case "", IVRandom:
		return IVRandom, nil
	case IVContentHash, "contenthash", "hash":
		return IVContentHash, nil
	default:
		return "", ErrInvalidIVType
	}
}

// Direction is the cipher transform direction.
type Direction int

const (
	DirectionEncrypt Direction = iota
	DirectionDecrypt
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	if d == DirectionDecrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Purpose selects which cipher, content or validation, a transform uses.
type Purpose int

const (
	PurposeContent Purpose = iota
	PurposeValidation
)

// ParsePurpose resolves "content" or "validation". An empty name means PurposeContent.
func ParsePurpose(name string) (Purpose, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "content":
		return PurposeContent, nil
	case "validation":
		return PurposeValidation, nil
	default:
		return 0, ErrInvalidPurpose
	}
}

// String returns the lower-case purpose name.
func (p Purpose) String() string {
	if p == PurposeValidation {
		return "validation"
	}
	return "content"
}
