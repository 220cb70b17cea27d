package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/tokenguard/internal/errors"
	"github.com/allisson/tokenguard/internal/metrics"
	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
)

// protectionUseCaseWithMetrics decorates ProtectionUseCase with metrics instrumentation.
type protectionUseCaseWithMetrics struct {
	next    ProtectionUseCase
	metrics metrics.BusinessMetrics
}

// NewProtectionUseCaseWithMetrics wraps a ProtectionUseCase with metrics recording.
// Malformed or tampered input is recorded with status "rejected".
func NewProtectionUseCaseWithMetrics(useCase ProtectionUseCase, m metrics.BusinessMetrics) ProtectionUseCase {
	return &protectionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *protectionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	switch apperrors.KindOf(err) {
	case apperrors.KindNone:
	case apperrors.KindRejected:
		status = "rejected"
	default:
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "protection", operation, status)
	p.metrics.RecordDuration(ctx, "protection", operation, time.Since(start), status)
}

// EncodeToken records metrics for token encode operations.
func (p *protectionUseCaseWithMetrics) EncodeToken(ctx context.Context, payload, modifier []byte) (string, error) {
	start := time.Now()
	token, err := p.next.EncodeToken(ctx, payload, modifier)
	p.record(ctx, "token_encode", start, err)
	return token, err
}

// DecodeToken records metrics for token decode operations.
func (p *protectionUseCaseWithMetrics) DecodeToken(
	ctx context.Context,
	token string,
	modifier []byte,
) ([]byte, error) {
	start := time.Now()
	payload, err := p.next.DecodeToken(ctx, token, modifier)
	p.record(ctx, "token_decode", start, err)
	return payload, err
}

// EncodeString records metrics for string encode operations.
func (p *protectionUseCaseWithMetrics) EncodeString(ctx context.Context, value string) (string, error) {
	start := time.Now()
	token, err := p.next.EncodeString(ctx, value)
	p.record(ctx, "string_encode", start, err)
	return token, err
}

// DecodeString records metrics for string decode operations.
func (p *protectionUseCaseWithMetrics) DecodeString(ctx context.Context, token string) (string, error) {
	start := time.Now()
	value, err := p.next.DecodeString(ctx, token)
	p.record(ctx, "string_decode", start, err)
	return value, err
}

// Encrypt records metrics for raw encrypt operations.
func (p *protectionUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	input *protectionDomain.CipherInput,
) ([]byte, error) {
	start := time.Now()
	ciphertext, err := p.next.Encrypt(ctx, input)
	p.record(ctx, "data_encrypt", start, err)
	return ciphertext, err
}

// Decrypt records metrics for raw decrypt operations.
func (p *protectionUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	input *protectionDomain.CipherInput,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := p.next.Decrypt(ctx, input)
	p.record(ctx, "data_decrypt", start, err)
	return plaintext, err
}
