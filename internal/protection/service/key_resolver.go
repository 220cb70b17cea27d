package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/allisson/tokenguard/internal/errors"
	"github.com/allisson/tokenguard/internal/protection/domain"
)

// KeyResolver turns configured key specs into KeyMaterial.
//
// Hex keys are used as-is, or unsealed through a KMS keeper when a key URI is set.
// AutoGenerate keys are drawn from crypto/rand, or derived with HKDF-SHA256 from
// a seed so that they survive restarts.
type KeyResolver struct {
	kmsService KMSService
	kmsKeyURI  string
	seed       []byte
}

// NewKeyResolver creates a resolver. kmsService may be nil when kmsKeyURI is empty.
func NewKeyResolver(kmsService KMSService, kmsKeyURI string, seed []byte) *KeyResolver {
	return &KeyResolver{
		kmsService: kmsService,
		kmsKeyURI:  kmsKeyURI,
		seed:       seed,
	}
}

// Resolve parses both key specs of cfg and returns isolated key material.
// Intermediate raw key bytes are wiped before returning.
func (r *KeyResolver) Resolve(ctx context.Context, cfg domain.ProtectorConfig) (*domain.KeyMaterial, error) {
	validationSpec, err := domain.ParseKeySpec(cfg.ValidationKey)
	if err != nil {
		return nil, errors.Wrap(err, "validation key")
	}
	decryptionSpec, err := domain.ParseKeySpec(cfg.DecryptionKey)
	if err != nil {
		return nil, errors.Wrap(err, "decryption key")
	}

	if (validationSpec.IsolateApps || decryptionSpec.IsolateApps) && cfg.AppIsolationID == "" {
		return nil, domain.ErrIsolationIDRequired
	}

	var keeper domain.KMSKeeper
	if r.kmsKeyURI != "" && (!validationSpec.AutoGenerate || !decryptionSpec.AutoGenerate) {
		if r.kmsService == nil {
			return nil, errors.Wrap(domain.ErrConfiguration, "kms service is required to unseal keys")
		}
		keeper, err = r.kmsService.OpenKeeper(ctx, r.kmsKeyURI)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = keeper.Close()
		}()
	}

	validationKey, err := r.materialize(ctx, keeper, validationSpec, "validation", domain.AutoValidationKeySize)
	if err != nil {
		return nil, err
	}
	defer domain.Zero(validationKey)

	decryptionKey, err := r.materialize(ctx, keeper, decryptionSpec, "decryption", cfg.GeneratedDecryptionKeySize())
	if err != nil {
		return nil, err
	}
	defer domain.Zero(decryptionKey)

	return domain.NewKeyMaterial(validationKey, decryptionKey, cfg.AppIsolationID)
}

func (r *KeyResolver) materialize(
	ctx context.Context,
	keeper domain.KMSKeeper,
	spec domain.KeySpec,
	label string,
	size int,
) ([]byte, error) {
	if spec.AutoGenerate {
		if len(r.seed) > 0 {
			return DeriveKey(r.seed, label, size)
		}
		return GenerateKey(size)
	}

	if keeper == nil {
		return spec.Key, nil
	}
	defer domain.Zero(spec.Key)

	key, err := keeper.Decrypt(ctx, spec.Key)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrConfiguration, "failed to unseal %s key: %v", label, err)
	}
	return key, nil
}

// GenerateKey returns size bytes from crypto/rand.
func GenerateKey(size int) ([]byte, error) {
	key := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// DeriveKey derives size bytes from seed with HKDF-SHA256. The label separates
// keys derived from the same seed.
func DeriveKey(seed []byte, label string, size int) ([]byte, error) {
	reader := hkdf.New(sha256.New, seed, nil, []byte("tokenguard "+label+" key"))

	key := make([]byte, size)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive %s key: %w", label, err)
	}
	return key, nil
}
