package service

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"gocloud.dev/secrets"

	"github.com/allisson/tokenguard/internal/errors"
	"github.com/allisson/tokenguard/internal/protection/domain"

	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSSchemes lists the key URI schemes whose drivers are linked in.
var KMSSchemes = []string{"awskms", "azurekeyvault", "base64key", "gcpkms", "hashivault"}

// KMSService opens the keeper that seals VALIDATION_KEY and DECRYPTION_KEY at
// rest. generate-keys seals with it and KeyResolver unseals with it.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (domain.KMSKeeper, error)
}

type kmsService struct{}

// NewKMSService creates a KMS service backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper fails with domain.ErrConfiguration for malformed URIs, schemes not
// in KMSSchemes and keepers the provider refuses to open.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (domain.KMSKeeper, error) {
	if err := ValidateKMSKeyURI(keyURI); err != nil {
		return nil, err
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrConfiguration, "failed to open KMS keeper: %v", err)
	}
	return keeper, nil
}

// ValidateKMSKeyURI checks that keyURI names a linked KMS provider. The URI is
// never echoed back since base64key URIs embed the key itself.
func ValidateKMSKeyURI(keyURI string) error {
	u, err := url.Parse(keyURI)
	if err != nil || u.Scheme == "" {
		return errors.Wrap(domain.ErrConfiguration, "malformed KMS key URI")
	}
	if !slices.Contains(KMSSchemes, u.Scheme) {
		return errors.Wrapf(domain.ErrConfiguration, "unsupported KMS scheme %q, expected one of: %s",
			u.Scheme, strings.Join(KMSSchemes, ", "))
	}
	return nil
}
