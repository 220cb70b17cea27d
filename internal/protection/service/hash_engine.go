// Package service implements the token protection engines: keyed hashing,
// pooled CBC cipher transforms, IV strategies and the token codec built on them.
package service

import (
	"crypto/md5"  //nolint:gosec // keyed MD5 is a supported legacy tag format.
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is the default tag format.

	"github.com/allisson/tokenguard/internal/errors"
	"github.com/allisson/tokenguard/internal/protection/domain"
)

// HashEngine computes the 20-byte integrity tag of a payload.
//
// The engine is immutable after construction and safe for concurrent use.
type HashEngine struct {
	algorithm domain.HashAlgorithm

	// validationKey is only retained for keyed MD5.
	validationKey []byte

	innerPad [domain.HMACBlockSize]byte
	outerPad [domain.HMACBlockSize]byte
}

// NewHashEngine builds a hash engine for alg from the validation key.
// The key is copied; the caller may wipe it afterwards.
func NewHashEngine(alg domain.HashAlgorithm, validationKey []byte) (*HashEngine, error) {
	h := &HashEngine{algorithm: alg}

	switch alg {
	case domain.HashKeyedMD5:
		h.validationKey = append([]byte(nil), validationKey...)
	case domain.HashHMACSHA1:
		h.innerPad, h.outerPad = domain.DeriveHMACPads(validationKey)
	default:
		return nil, errors.Wrapf(domain.ErrUnsupportedAlgorithm, "hash algorithm %q", alg)
	}

	return h, nil
}

// Algorithm returns the tag construction in use.
func (h *HashEngine) Algorithm() domain.HashAlgorithm {
	return h.algorithm
}

// Hash returns the tag of payload bound to modifier. An empty modifier
// contributes nothing.
func (h *HashEngine) Hash(payload, modifier []byte) []byte {
	tag := make([]byte, domain.TagSize)

	if h.algorithm == domain.HashKeyedMD5 {
		d := md5.New() //nolint:gosec
		d.Write(payload)
		d.Write(modifier)
		d.Write(h.validationKey)
		copy(tag, d.Sum(nil))
		return tag
	}

	inner := sha1.New() //nolint:gosec
	inner.Write(h.innerPad[:])
	inner.Write(payload)
	inner.Write(modifier)
	innerSum := inner.Sum(nil)

	outer := sha1.New() //nolint:gosec
	outer.Write(h.outerPad[:])
	outer.Write(innerSum)
	copy(tag, outer.Sum(nil))

	return tag
}

// Wipe zeroes the key material held by the engine.
func (h *HashEngine) Wipe() {
	domain.Zero(h.validationKey)
	domain.Zero(h.innerPad[:])
	domain.Zero(h.outerPad[:])
}

// tagsEqual compares two tags over their full length without early exit.
func tagsEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
