// Package usecase exposes token protection operations to the HTTP and CLI layers.
package usecase

import (
	"context"

	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
)

// TokenProtector defines the token codec operations used by the use case.
type TokenProtector interface {
	EncodeToken(payload, modifier []byte) (string, error)
	DecodeToken(token string, modifier []byte) ([]byte, error)
	EncodeString(s string) (string, error)
	DecodeString(token string) (string, error)
	EncryptOrDecrypt(
		direction protectionDomain.Direction,
		buf, modifier []byte,
		ivType protectionDomain.IVType,
		purpose protectionDomain.Purpose,
	) ([]byte, error)
}

// ProtectionUseCase defines the token protection operations.
type ProtectionUseCase interface {
	// EncodeToken protects payload bound to modifier and returns a URL-safe token.
	EncodeToken(ctx context.Context, payload, modifier []byte) (string, error)

	// DecodeToken verifies a token against modifier and returns its payload.
	//
	// Security Note: callers should zero the returned payload once it is no longer needed.
	DecodeToken(ctx context.Context, token string, modifier []byte) ([]byte, error)

	EncodeString(ctx context.Context, value string) (string, error)
	DecodeString(ctx context.Context, token string) (string, error)

	// Encrypt runs the raw cipher pipeline and returns the ciphertext.
	Encrypt(ctx context.Context, input *protectionDomain.CipherInput) ([]byte, error)

	// Decrypt reverses Encrypt. Any failure is reported as tampering.
	Decrypt(ctx context.Context, input *protectionDomain.CipherInput) ([]byte, error)
}
