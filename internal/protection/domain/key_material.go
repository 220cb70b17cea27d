package domain

import (
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 pads are part of the token format.

	"github.com/allisson/tokenguard/internal/errors"
)

// KeyMaterial holds the raw validation and decryption keys.
//
// Key material never leaves the protection subsystem. Call Wipe once the keys
// have been handed to the hash and cipher engines.
type KeyMaterial struct {
	ValidationKey []byte
	DecryptionKey []byte
}

// NewKeyMaterial copies both keys and validates the validation key length.
// When isolationID is non-empty both copies are bound to it with IsolateKey.
// The caller keeps ownership of the input slices.
func NewKeyMaterial(validationKey, decryptionKey []byte, isolationID string) (*KeyMaterial, error) {
	if len(validationKey) < MinValidationKeySize || len(validationKey) > MaxValidationKeySize {
		return nil, errors.Wrapf(
			ErrInvalidKeySize,
			"validation key must be between %d and %d bytes, got %d",
			MinValidationKeySize,
			MaxValidationKeySize,
			len(validationKey),
		)
	}
	if len(decryptionKey) == 0 {
		return nil, errors.Wrap(ErrInvalidKeySize, "decryption key is empty")
	}

	km := &KeyMaterial{
		ValidationKey: append([]byte(nil), validationKey...),
		DecryptionKey: append([]byte(nil), decryptionKey...),
	}

	if isolationID != "" {
		IsolateKey(km.ValidationKey, isolationID)
		IsolateKey(km.DecryptionKey, isolationID)
	}

	return km, nil
}

// Wipe zeroes both keys.
func (k *KeyMaterial) Wipe() {
	if k == nil {
		return
	}
	Zero(k.ValidationKey)
	Zero(k.DecryptionKey)
}

// DeriveHMACPads derives the HMAC inner (0x36) and outer (0x5c) pads from key.
// Keys longer than the block size are SHA1-hashed first.
func DeriveHMACPads(key []byte) (inner, outer [HMACBlockSize]byte) {
	k := key
	if len(k) > HMACBlockSize {
		sum := sha1.Sum(k) //nolint:gosec
		k = sum[:]
		defer Zero(sum[:])
	}

	copy(inner[:], k)
	copy(outer[:], k)
	for i := range HMACBlockSize {
		inner[i] ^= 0x36
		outer[i] ^= 0x5c
	}
	return inner, outer
}
