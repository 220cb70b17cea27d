package commands

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
	protectionService "github.com/allisson/tokenguard/internal/protection/service"
)

type MockKMSService struct {
	mock.Mock
}

func (m *MockKMSService) OpenKeeper(ctx context.Context, uri string) (protectionDomain.KMSKeeper, error) {
	args := m.Called(ctx, uri)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(protectionDomain.KMSKeeper), args.Error(1)
}

type MockKMSKeeper struct {
	mock.Mock
}

func (m *MockKMSKeeper) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKMSKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKMSKeeper) Close() error {
	return m.Called().Error(0)
}

func localSecretsURI(t *testing.T) string {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestRunGenerateKeys(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-default-algorithms", func(t *testing.T) {
		var out bytes.Buffer
		err := RunGenerateKeys(ctx, nil, logger, &out, "HMACSHA1", "Auto", "", "text")
		require.NoError(t, err)

		assert.Contains(t, out.String(), `VALIDATION_ALGORITHM="HMACSHA1"`)
		assert.Contains(t, out.String(), `DECRYPTION_ALGORITHM="Auto"`)
		assert.Contains(t, out.String(), "VALIDATION_KEY=")
		assert.NotContains(t, out.String(), "KMS_KEY_URI")
	})

	sizes := []struct {
		name           string
		validationAlg  string
		decryptionAlg  string
		decryptionSize int
	}{
		{name: "aes", validationAlg: "AES", decryptionAlg: "AES", decryptionSize: 32},
		{name: "des", validationAlg: "HMACSHA1", decryptionAlg: "DES", decryptionSize: 8},
		{name: "3des", validationAlg: "MD5", decryptionAlg: "3DES", decryptionSize: 24},
		{name: "tripledes-validation-widens-auto", validationAlg: "TripleDES", decryptionAlg: "Auto", decryptionSize: 24},
	}

	for _, tt := range sizes {
		t.Run("json-"+tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := RunGenerateKeys(ctx, nil, logger, &out, tt.validationAlg, tt.decryptionAlg, "", "json")
			require.NoError(t, err)

			var result GenerateKeysResult
			require.NoError(t, json.Unmarshal(out.Bytes(), &result))

			validationKey, err := hex.DecodeString(result.ValidationKey)
			require.NoError(t, err)
			decryptionKey, err := hex.DecodeString(result.DecryptionKey)
			require.NoError(t, err)

			assert.Len(t, validationKey, protectionDomain.AutoValidationKeySize)
			assert.Len(t, decryptionKey, tt.decryptionSize)
		})
	}

	t.Run("sealed-keys-open-with-same-keeper", func(t *testing.T) {
		uri := localSecretsURI(t)

		var out bytes.Buffer
		err := RunGenerateKeys(ctx, protectionService.NewKMSService(), logger, &out, "AES", "AES", uri, "json")
		require.NoError(t, err)

		var result GenerateKeysResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, uri, result.KMSKeyURI)

		resolver := protectionService.NewKeyResolver(protectionService.NewKMSService(), uri, nil)
		keys, err := resolver.Resolve(ctx, protectionDomain.ProtectorConfig{
			ValidationKey:       result.ValidationKey,
			DecryptionKey:       result.DecryptionKey,
			ValidationAlgorithm: protectionDomain.ValidationAES,
			DecryptionAlgorithm: protectionDomain.DecryptionAES,
		})
		require.NoError(t, err)
		defer keys.Wipe()

		assert.Len(t, keys.ValidationKey, protectionDomain.AutoValidationKeySize)
		assert.Len(t, keys.DecryptionKey, 32)
	})

	t.Run("keeper-encrypt-error", func(t *testing.T) {
		mockService := &MockKMSService{}
		mockKeeper := &MockKMSKeeper{}

		mockService.On("OpenKeeper", ctx, "base64key://...").Return(mockKeeper, nil)
		mockKeeper.On("Encrypt", ctx, mock.AnythingOfType("[]uint8")).Return(nil, errors.New("kms down"))
		mockKeeper.On("Close").Return(nil)

		var out bytes.Buffer
		err := RunGenerateKeys(ctx, mockService, logger, &out, "HMACSHA1", "Auto", "base64key://...", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to seal validation key")
		assert.Empty(t, out.String())

		mockService.AssertExpectations(t)
		mockKeeper.AssertExpectations(t)
	})

	t.Run("open-keeper-error", func(t *testing.T) {
		mockService := &MockKMSService{}
		mockService.On("OpenKeeper", ctx, "gcpkms://missing").Return(nil, errors.New("not found"))

		err := RunGenerateKeys(ctx, mockService, logger, io.Discard, "HMACSHA1", "Auto", "gcpkms://missing", "text")
		require.Error(t, err)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid-algorithm", func(t *testing.T) {
		err := RunGenerateKeys(ctx, nil, logger, io.Discard, "SHA256", "Auto", "", "text")
		assert.ErrorIs(t, err, protectionDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunGenerateKeys(ctx, nil, logger, io.Discard, "HMACSHA1", "Auto", "", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}
