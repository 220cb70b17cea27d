package service

import (
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // IV derivation only, not an integrity check.
	"io"

	"github.com/allisson/tokenguard/internal/errors"
	"github.com/allisson/tokenguard/internal/protection/domain"
)

// ivLength returns the IV length in bytes for a key of keyBits bits,
// rounded up to a whole byte.
func ivLength(keyBits int) int {
	return (keyBits + 7) / 8
}

// generateIV produces size bytes of IV for payload according to ivType.
// IVNone and a zero size produce no IV.
func generateIV(ivType domain.IVType, payload []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}

	switch ivType {
	case domain.IVNone:
		return nil, nil
	case domain.IVRandom:
		iv := make([]byte, size)
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return nil, errors.Wrap(err, "failed to generate random iv")
		}
		return iv, nil
	case domain.IVContentHash:
		return contentHashIV(payload, size), nil
	default:
		return nil, domain.ErrInvalidIVType
	}
}

// contentHashIV hashes the payload with SHA1, then keeps hashing the previous
// digest, concatenating digests until size bytes are available.
func contentHashIV(payload []byte, size int) []byte {
	iv := make([]byte, 0, size)
	digest := sha1.Sum(payload) //nolint:gosec

	for {
		n := min(len(digest), size-len(iv))
		iv = append(iv, digest[:n]...)
		if len(iv) == size {
			return iv
		}
		digest = sha1.Sum(digest[:]) //nolint:gosec
	}
}
