package domain

import (
	"encoding/hex"
	"strings"

	"github.com/allisson/tokenguard/internal/errors"
)

// KeySpec is a parsed key configuration value.
//
// Accepted forms:
//   - a hex string with an even number of digits
//   - "AutoGenerate"
//   - "AutoGenerate,IsolateApps"
type KeySpec struct {
	// Key holds the decoded bytes of a hex spec. It is nil for AutoGenerate.
	Key []byte

	AutoGenerate bool
	IsolateApps  bool
}

// ParseKeySpec parses a key configuration value.
func ParseKeySpec(raw string) (KeySpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return KeySpec{}, errors.Wrap(ErrInvalidKeySpec, "empty key")
	}

	value, modifier, hasModifier := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)

	spec := KeySpec{}
	if hasModifier {
		if !strings.EqualFold(strings.TrimSpace(modifier), IsolateApps) {
			return KeySpec{}, errors.Wrapf(ErrInvalidKeySpec, "unknown key modifier %q", modifier)
		}
		spec.IsolateApps = true
	}

	if strings.EqualFold(value, AutoGenerate) {
		spec.AutoGenerate = true
		return spec, nil
	}

	if spec.IsolateApps {
		return KeySpec{}, errors.Wrap(ErrInvalidKeySpec, "IsolateApps requires AutoGenerate")
	}

	if len(value)%2 != 0 {
		return KeySpec{}, errors.Wrap(ErrInvalidKeySpec, "hex key must have an even number of digits")
	}

	key, err := hex.DecodeString(value)
	if err != nil {
		return KeySpec{}, errors.Wrap(ErrInvalidKeySpec, "key is not valid hex")
	}
	spec.Key = key

	return spec, nil
}
