package service

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/allisson/tokenguard/internal/errors"
	"github.com/allisson/tokenguard/internal/protection/domain"
)

// TokenProtector turns payloads into tamper-evident, optionally encrypted tokens
// and reverses the process.
//
// Token layout before outer encoding is payload || tag(20). When the validation
// algorithm provides confidentiality the whole layout is encrypted together with
// an IV prefix: Enc(IV || payload || tag).
//
// A TokenProtector is immutable after construction and safe for concurrent use.
// Operations hold a read lock so Close waits for them before wiping keys.
type TokenProtector struct {
	validationAlgorithm domain.ValidationAlgorithm
	ivType              domain.IVType

	hash       *HashEngine
	content    *cipherEngine
	validation *cipherEngine

	mu     sync.RWMutex
	closed bool
}

// NewTokenProtector resolves the algorithm selection once and builds the hash and
// cipher engines from keys. The key material is wiped before returning, whether
// construction succeeds or not.
func NewTokenProtector(
	keys *domain.KeyMaterial,
	validationAlg domain.ValidationAlgorithm,
	decryptionAlg domain.DecryptionAlgorithm,
	ivType domain.IVType,
) (*TokenProtector, error) {
	defer keys.Wipe()

	if keys == nil {
		return nil, errors.Wrap(domain.ErrConfiguration, "key material is required")
	}

	switch validationAlg {
	case domain.ValidationMD5, domain.ValidationHMACSHA1, domain.ValidationTripleDES, domain.ValidationAES:
	default:
		return nil, errors.Wrapf(domain.ErrUnsupportedAlgorithm, "validation algorithm %q", validationAlg)
	}

	switch ivType {
	case domain.IVNone, domain.IVRandom, domain.IVContentHash:
	default:
		return nil, errors.Wrapf(domain.ErrConfiguration, "unsupported iv type %q", ivType)
	}

	contentAlg, err := SelectCipher(decryptionAlg, len(keys.DecryptionKey))
	if err != nil {
		return nil, err
	}
	content, err := newCipherEngine(contentAlg, keys.DecryptionKey)
	if err != nil {
		return nil, err
	}

	var validation *cipherEngine
	if validationCipher, ok := validationAlg.CipherAlgorithm(); ok {
		if validationCipher == contentAlg {
			validation = content
		} else {
			validation, err = newCipherEngine(validationCipher, keys.DecryptionKey)
			if err != nil {
				return nil, err
			}
		}
	}

	hash, err := NewHashEngine(validationAlg.HashAlgorithm(), keys.ValidationKey)
	if err != nil {
		return nil, err
	}

	return &TokenProtector{
		validationAlgorithm: validationAlg,
		ivType:              ivType,
		hash:                hash,
		content:             content,
		validation:          validation,
	}, nil
}

// ValidationAlgorithm returns the configured validation algorithm.
func (p *TokenProtector) ValidationAlgorithm() domain.ValidationAlgorithm {
	return p.validationAlgorithm
}

// Encode appends the integrity tag of payload (bound to modifier) and, when
// confidentiality is enabled, encrypts the result with the validation cipher.
func (p *TokenProtector) Encode(payload, modifier []byte) ([]byte, error) {
	release, err := p.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	return p.encode(payload, modifier)
}

func (p *TokenProtector) encode(payload, modifier []byte) ([]byte, error) {
	tag := p.hash.Hash(payload, modifier)

	buf := make([]byte, 0, len(payload)+len(tag))
	buf = append(buf, payload...)
	buf = append(buf, tag...)

	if p.validation == nil {
		return buf, nil
	}
	defer domain.Zero(buf)

	return p.encryptOrDecrypt(domain.DirectionEncrypt, buf, nil, p.ivType, domain.PurposeValidation)
}

// Decode reverses Encode and returns the original payload.
// Every failure is reported as domain.ErrTamperDetected.
func (p *TokenProtector) Decode(data, modifier []byte) ([]byte, error) {
	release, err := p.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	return p.decode(data, modifier)
}

func (p *TokenProtector) decode(data, modifier []byte) ([]byte, error) {
	buf := data
	if p.validation != nil {
		plain, err := p.encryptOrDecrypt(domain.DirectionDecrypt, data, nil, p.ivType, domain.PurposeValidation)
		if err != nil {
			return nil, domain.ErrTamperDetected
		}
		defer domain.Zero(plain)
		buf = plain
	}

	if len(buf) < domain.TagSize {
		return nil, domain.ErrTamperDetected
	}

	split := len(buf) - domain.TagSize
	payload, tag := buf[:split], buf[split:]

	if !tagsEqual(p.hash.Hash(payload, modifier), tag) {
		return nil, domain.ErrTamperDetected
	}

	return append([]byte{}, payload...), nil
}

// EncryptOrDecrypt runs the raw cipher pipeline with the cipher selected by purpose.
//
// Encrypt prefixes an IV generated by ivType, appends modifier, and encrypts.
// Decrypt reverses it: it strips the IV, then checks and strips the trailing
// modifier. Any mismatch is reported as domain.ErrTamperDetected.
func (p *TokenProtector) EncryptOrDecrypt(
	direction domain.Direction,
	buf, modifier []byte,
	ivType domain.IVType,
	purpose domain.Purpose,
) ([]byte, error) {
	release, err := p.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	return p.encryptOrDecrypt(direction, buf, modifier, ivType, purpose)
}

func (p *TokenProtector) encryptOrDecrypt(
	direction domain.Direction,
	buf, modifier []byte,
	ivType domain.IVType,
	purpose domain.Purpose,
) ([]byte, error) {
	engine, err := p.engine(purpose)
	if err != nil {
		return nil, err
	}

	ivSize := 0
	if ivType != domain.IVNone {
		ivSize = engine.ivSize()
	}

	if direction == domain.DirectionEncrypt {
		iv, err := generateIV(ivType, buf, ivSize)
		if err != nil {
			return nil, err
		}

		plain := make([]byte, 0, len(iv)+len(buf)+len(modifier))
		plain = append(plain, iv...)
		plain = append(plain, buf...)
		plain = append(plain, modifier...)
		defer domain.Zero(plain)

		return engine.encrypt(plain), nil
	}

	plain, err := engine.decrypt(buf)
	if err != nil {
		return nil, err
	}
	defer domain.Zero(plain)

	if len(plain) < ivSize+len(modifier) {
		return nil, domain.ErrTamperDetected
	}

	body := plain[ivSize:]
	if len(modifier) > 0 {
		split := len(body) - len(modifier)
		if !tagsEqual(body[split:], modifier) {
			return nil, domain.ErrTamperDetected
		}
		body = body[:split]
	}

	return append([]byte{}, body...), nil
}

// EncodeToken encodes payload bound to modifier as an unpadded URL-safe token.
func (p *TokenProtector) EncodeToken(payload, modifier []byte) (string, error) {
	release, err := p.guard()
	if err != nil {
		return "", err
	}
	defer release()

	data, err := p.encode(payload, modifier)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeToken decodes a token produced by EncodeToken with the same modifier.
// Failures wrap both domain.ErrInvalidToken and the underlying cause.
func (p *TokenProtector) DecodeToken(token string, modifier []byte) ([]byte, error) {
	release, err := p.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	payload, err := p.decode(data, modifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	return payload, nil
}

// EncodeString encodes the UTF-8 bytes of s as a token with no modifier.
func (p *TokenProtector) EncodeString(s string) (string, error) {
	return p.EncodeToken([]byte(s), nil)
}

// DecodeString decodes a token produced by EncodeString.
func (p *TokenProtector) DecodeString(token string) (string, error) {
	payload, err := p.DecodeToken(token, nil)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// PoolSize returns the number of idle transforms pooled for direction and purpose.
func (p *TokenProtector) PoolSize(direction domain.Direction, purpose domain.Purpose) int {
	engine, err := p.engine(purpose)
	if err != nil {
		return 0
	}
	return engine.pool(direction).size()
}

// Close waits for in-flight operations, then wipes the key material retained by
// the hash engine. Later calls fail with domain.ErrProtectorClosed.
func (p *TokenProtector) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.hash.Wipe()
	return nil
}

// guard holds the read lock until release is called. It fails once Close has run.
func (p *TokenProtector) guard() (release func(), err error) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, domain.ErrProtectorClosed
	}
	return p.mu.RUnlock, nil
}

func (p *TokenProtector) engine(purpose domain.Purpose) (*cipherEngine, error) {
	if purpose == domain.PurposeValidation {
		if p.validation == nil {
			return nil, domain.ErrValidationCipherNotConfigured
		}
		return p.validation, nil
	}
	return p.content, nil
}
