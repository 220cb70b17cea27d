package usecase

import (
	"context"

	"github.com/allisson/tokenguard/internal/errors"
	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
)

type protectionUseCase struct {
	protector TokenProtector
}

// NewProtectionUseCase creates a ProtectionUseCase backed by protector.
func NewProtectionUseCase(protector TokenProtector) ProtectionUseCase {
	return &protectionUseCase{protector: protector}
}

func (p *protectionUseCase) EncodeToken(ctx context.Context, payload, modifier []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.protector.EncodeToken(payload, modifier)
}

func (p *protectionUseCase) DecodeToken(ctx context.Context, token string, modifier []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, protectionDomain.ErrInvalidToken
	}
	return p.protector.DecodeToken(token, modifier)
}

func (p *protectionUseCase) EncodeString(ctx context.Context, value string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.protector.EncodeString(value)
}

func (p *protectionUseCase) DecodeString(ctx context.Context, token string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if token == "" {
		return "", protectionDomain.ErrInvalidToken
	}
	return p.protector.DecodeString(token)
}

func (p *protectionUseCase) Encrypt(ctx context.Context, input *protectionDomain.CipherInput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "cipher input is required")
	}
	return p.protector.EncryptOrDecrypt(
		protectionDomain.DirectionEncrypt,
		input.Data,
		input.Modifier,
		input.IVType,
		input.Purpose,
	)
}

func (p *protectionUseCase) Decrypt(ctx context.Context, input *protectionDomain.CipherInput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "cipher input is required")
	}
	return p.protector.EncryptOrDecrypt(
		protectionDomain.DirectionDecrypt,
		input.Data,
		input.Modifier,
		input.IVType,
		input.Purpose,
	)
}
