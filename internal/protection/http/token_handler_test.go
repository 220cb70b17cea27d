package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
	"github.com/allisson/tokenguard/internal/protection/http/dto"
	"github.com/allisson/tokenguard/internal/protection/usecase/mocks"
)

// setupTestTokenHandler creates a test token handler with mocked dependencies.
func setupTestTokenHandler(t *testing.T) (*TokenHandler, *mocks.MockProtectionUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := mocks.NewMockProtectionUseCase(t)
	handler := NewTokenHandler(mockUseCase, discardLogger())

	return handler, mockUseCase
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()

	var response map[string]any
	require.NoError(t, json.Unmarshal(body, &response))
	return fmt.Sprint(response["error"])
}

func TestTokenHandler_EncodeHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		request := dto.EncodeTokenRequest{
			Payload:  stringPtr(base64.StdEncoding.EncodeToString([]byte("user:42"))),
			Modifier: base64.StdEncoding.EncodeToString([]byte("session")),
		}

		mockUseCase.EXPECT().
			EncodeToken(mock.Anything, []byte("user:42"), []byte("session")).
			Return("protected-token", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokens/encode", request)

		handler.EncodeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "protected-token", response.Token)
	})

	t.Run("Success_NoModifier", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		request := dto.EncodeTokenRequest{Payload: stringPtr(base64.StdEncoding.EncodeToString([]byte("data")))}

		mockUseCase.EXPECT().
			EncodeToken(mock.Anything, []byte("data"), []byte(nil)).
			Return("protected-token", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokens/encode", request)

		handler.EncodeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestTokenHandler(t)

		c, w := createRawTestContext(http.MethodPost, "/v1/tokens/encode", []byte("invalid json"))

		handler.EncodeHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w.Body.Bytes()))
	})

	t.Run("Success_EmptyPayload", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		mockUseCase.EXPECT().
			EncodeToken(mock.Anything, []byte{}, []byte(nil)).
			Return("empty-token", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokens/encode", dto.EncodeTokenRequest{Payload: stringPtr("")})

		handler.EncodeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"empty-token"}`, w.Body.String())
	})

	t.Run("Error_ValidationFailed_MissingPayload", func(t *testing.T) {
		handler, _ := setupTestTokenHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/tokens/encode", dto.EncodeTokenRequest{})

		handler.EncodeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_error", decodeError(t, w.Body.Bytes()))
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		request := dto.EncodeTokenRequest{Payload: stringPtr(base64.StdEncoding.EncodeToString([]byte("data")))}

		mockUseCase.EXPECT().
			EncodeToken(mock.Anything, []byte("data"), []byte(nil)).
			Return("", errors.New("entropy source failed")).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokens/encode", request)

		handler.EncodeHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", decodeError(t, w.Body.Bytes()))
	})
}

func TestTokenHandler_DecodeHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		request := dto.DecodeTokenRequest{
			Token:    "cHJvdGVjdGVk",
			Modifier: base64.StdEncoding.EncodeToString([]byte("session")),
		}

		mockUseCase.EXPECT().
			DecodeToken(mock.Anything, "cHJvdGVjdGVk", []byte("session")).
			Return([]byte("user:42"), nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokens/decode", request)

		handler.DecodeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.PayloadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []byte("user:42"), response.Payload)
	})

	t.Run("Error_TamperDetected", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		mockUseCase.EXPECT().
			DecodeToken(mock.Anything, "cHJvdGVjdGVk", []byte(nil)).
			Return(nil, fmt.Errorf("%w: %w", protectionDomain.ErrInvalidToken, protectionDomain.ErrTamperDetected)).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokens/decode", dto.DecodeTokenRequest{Token: "cHJvdGVjdGVk"})

		handler.DecodeHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_token", decodeError(t, w.Body.Bytes()))
	})

	t.Run("Error_MalformedTokenMatchesForged", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		mockUseCase.EXPECT().
			DecodeToken(mock.Anything, "a+b/", []byte(nil)).
			Return(nil, fmt.Errorf("%w: %w", protectionDomain.ErrInvalidToken, errors.New("illegal base64 data at input byte 1"))).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokens/decode", dto.DecodeTokenRequest{Token: "a+b/"})

		handler.DecodeHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_token", decodeError(t, w.Body.Bytes()))
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestTokenHandler(t)

		c, w := createRawTestContext(http.MethodPost, "/v1/tokens/decode", []byte("{"))

		handler.DecodeHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w.Body.Bytes()))
	})
}

func TestTokenHandler_EncodeStringHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		mockUseCase.EXPECT().EncodeString(mock.Anything, "hello").Return("string-token", nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/strings/encode", dto.EncodeStringRequest{Value: stringPtr("hello")})

		handler.EncodeStringHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"string-token"}`, w.Body.String())
	})

	t.Run("Success_EmptyValue", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		mockUseCase.EXPECT().EncodeString(mock.Anything, "").Return("empty-token", nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/strings/encode", dto.EncodeStringRequest{Value: stringPtr("")})

		handler.EncodeStringHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"empty-token"}`, w.Body.String())
	})

	t.Run("Error_ValidationFailed_MissingValue", func(t *testing.T) {
		handler, _ := setupTestTokenHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/strings/encode", dto.EncodeStringRequest{})

		handler.EncodeStringHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestTokenHandler_DecodeStringHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		mockUseCase.EXPECT().DecodeString(mock.Anything, "c3RyaW5n").Return("hello", nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/strings/decode", dto.DecodeStringRequest{Token: "c3RyaW5n"})

		handler.DecodeStringHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"value":"hello"}`, w.Body.String())
	})

	t.Run("Error_InvalidToken", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		mockUseCase.EXPECT().
			DecodeString(mock.Anything, "c3RyaW5n").
			Return("", protectionDomain.ErrInvalidToken).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/strings/decode", dto.DecodeStringRequest{Token: "c3RyaW5n"})

		handler.DecodeStringHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_token", decodeError(t, w.Body.Bytes()))
	})

	t.Run("Error_MalformedTokenMatchesForged", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenHandler(t)

		mockUseCase.EXPECT().
			DecodeString(mock.Anything, "abc$def").
			Return("", fmt.Errorf("%w: %w", protectionDomain.ErrInvalidToken, errors.New("illegal base64 data at input byte 3"))).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/strings/decode", dto.DecodeStringRequest{Token: "abc$def"})

		handler.DecodeStringHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_token", decodeError(t, w.Body.Bytes()))
	})
}
