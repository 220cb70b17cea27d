package domain

import "context"

// KMSKeeper seals and unseals key material with an external key management service.
// *secrets.Keeper from gocloud.dev/secrets satisfies this interface.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
