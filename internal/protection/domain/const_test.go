package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidationAlgorithm(t *testing.T) {
	tests := []struct {
		input    string
		expected ValidationAlgorithm
	}{
		{"MD5", ValidationMD5},
		{"hmacsha1", ValidationHMACSHA1},
		{"SHA1", ValidationHMACSHA1},
		{"TripleDES", ValidationTripleDES},
		{"3des", ValidationTripleDES},
		{" AES ", ValidationAES},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			alg, err := ParseValidationAlgorithm(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}

	t.Run("Error_Unknown", func(t *testing.T) {
		_, err := ParseValidationAlgorithm("SHA256")
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestValidationAlgorithm_Selection(t *testing.T) {
	assert.Equal(t, HashKeyedMD5, ValidationMD5.HashAlgorithm())
	assert.Equal(t, HashHMACSHA1, ValidationHMACSHA1.HashAlgorithm())
	assert.Equal(t, HashHMACSHA1, ValidationTripleDES.HashAlgorithm())
	assert.Equal(t, HashHMACSHA1, ValidationAES.HashAlgorithm())

	assert.False(t, ValidationMD5.RequiresConfidentiality())
	assert.False(t, ValidationHMACSHA1.RequiresConfidentiality())
	assert.True(t, ValidationTripleDES.RequiresConfidentiality())
	assert.True(t, ValidationAES.RequiresConfidentiality())

	alg, ok := ValidationTripleDES.CipherAlgorithm()
	assert.True(t, ok)
	assert.Equal(t, CipherTripleDES, alg)

	alg, ok = ValidationAES.CipherAlgorithm()
	assert.True(t, ok)
	assert.Equal(t, CipherAES, alg)

	_, ok = ValidationHMACSHA1.CipherAlgorithm()
	assert.False(t, ok)
}

func TestParseDecryptionAlgorithm(t *testing.T) {
	alg, err := ParseDecryptionAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, DecryptionAuto, alg)

	alg, err = ParseDecryptionAlgorithm("tripledes")
	require.NoError(t, err)
	assert.Equal(t, DecryptionTripleDES, alg)

	_, err = ParseDecryptionAlgorithm("blowfish")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestCipherAlgorithm_ValidKeySize(t *testing.T) {
	assert.True(t, CipherDES.ValidKeySize(8))
	assert.False(t, CipherDES.ValidKeySize(16))
	assert.True(t, CipherTripleDES.ValidKeySize(16))
	assert.True(t, CipherTripleDES.ValidKeySize(24))
	assert.False(t, CipherTripleDES.ValidKeySize(32))
	assert.True(t, CipherAES.ValidKeySize(16))
	assert.True(t, CipherAES.ValidKeySize(24))
	assert.True(t, CipherAES.ValidKeySize(32))
	assert.False(t, CipherAES.ValidKeySize(8))
	assert.False(t, CipherAlgorithm("rc4").ValidKeySize(16))
}

func TestParseIVType(t *testing.T) {
	ivType, err := ParseIVType("")
	require.NoError(t, err)
	assert.Equal(t, IVRandom, ivType)

	ivType, err = ParseIVType("None")
	require.NoError(t, err)
	assert.Equal(t, IVNone, ivType)

	ivType, err = ParseIVType("content-hash")
	require.NoError(t, err)
	assert.Equal(t, IVContentHash, ivType)

	_, err = ParseIVType("counter")
	assert.ErrorIs(t, err, ErrInvalidIVType)
}

func TestParsePurpose(t *testing.T) {
	purpose, err := ParsePurpose("")
	require.NoError(t, err)
	assert.Equal(t, PurposeContent, purpose)

	purpose, err = ParsePurpose("Validation")
	require.NoError(t, err)
	assert.Equal(t, PurposeValidation, purpose)
	assert.Equal(t, "validation", purpose.String())

	_, err = ParsePurpose("signing")
	assert.ErrorIs(t, err, ErrInvalidPurpose)
}

func TestProtectorConfig_GeneratedDecryptionKeySize(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ProtectorConfig
		expected int
	}{
		{"AutoIntegrity", ProtectorConfig{ValidationAlgorithm: ValidationHMACSHA1, DecryptionAlgorithm: DecryptionAuto}, 32},
		{"DES", ProtectorConfig{ValidationAlgorithm: ValidationHMACSHA1, DecryptionAlgorithm: DecryptionDES}, 8},
		{"TripleDES", ProtectorConfig{ValidationAlgorithm: ValidationMD5, DecryptionAlgorithm: DecryptionTripleDES}, 24},
		{"AutoWithTripleDESValidation", ProtectorConfig{ValidationAlgorithm: ValidationTripleDES, DecryptionAlgorithm: DecryptionAuto}, 24},
		{"AESWithAESValidation", ProtectorConfig{ValidationAlgorithm: ValidationAES, DecryptionAlgorithm: DecryptionAES}, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.GeneratedDecryptionKeySize())
		})
	}
}
