package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
	"github.com/allisson/tokenguard/internal/protection/usecase"
	usecaseMocks "github.com/allisson/tokenguard/internal/protection/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "protection", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "protection", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestProtectionUseCaseWithMetrics_EncodeToken(t *testing.T) {
	ctx := context.Background()

	t.Run("EncodeToken_Success", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockProtectionUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewProtectionUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.EXPECT().EncodeToken(ctx, []byte("p"), []byte("m")).Return("token", nil).Once()
		expectMetrics(ctx, mockMetrics, "token_encode", "success")

		token, err := uc.EncodeToken(ctx, []byte("p"), []byte("m"))

		assert.NoError(t, err)
		assert.Equal(t, "token", token)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("EncodeToken_Error", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockProtectionUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewProtectionUseCaseWithMetrics(mockNext, mockMetrics)

		expectedErr := errors.New("encode failed")
		mockNext.EXPECT().EncodeToken(ctx, []byte("p"), []byte(nil)).Return("", expectedErr).Once()
		expectMetrics(ctx, mockMetrics, "token_encode", "error")

		_, err := uc.EncodeToken(ctx, []byte("p"), nil)

		assert.ErrorIs(t, err, expectedErr)
		mockMetrics.AssertExpectations(t)
	})
}

func TestProtectionUseCaseWithMetrics_DecodeToken(t *testing.T) {
	ctx := context.Background()

	t.Run("DecodeToken_Tampered", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockProtectionUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewProtectionUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.EXPECT().DecodeToken(ctx, "token", []byte(nil)).Return(nil, protectionDomain.ErrTamperDetected).Once()
		expectMetrics(ctx, mockMetrics, "token_decode", "rejected")

		payload, err := uc.DecodeToken(ctx, "token", nil)

		assert.Nil(t, payload)
		assert.ErrorIs(t, err, protectionDomain.ErrTamperDetected)
		mockMetrics.AssertExpectations(t)
	})
}

func TestProtectionUseCaseWithMetrics_Strings(t *testing.T) {
	ctx := context.Background()
	mockNext := usecaseMocks.NewMockProtectionUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewProtectionUseCaseWithMetrics(mockNext, mockMetrics)

	mockNext.EXPECT().EncodeString(ctx, "value").Return("token", nil).Once()
	mockNext.EXPECT().DecodeString(ctx, "token").Return("value", nil).Once()
	expectMetrics(ctx, mockMetrics, "string_encode", "success")
	expectMetrics(ctx, mockMetrics, "string_decode", "success")

	token, err := uc.EncodeString(ctx, "value")
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	value, err := uc.DecodeString(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "value", value)

	mockMetrics.AssertExpectations(t)
}

func TestProtectionUseCaseWithMetrics_EncryptDecrypt(t *testing.T) {
	ctx := context.Background()
	mockNext := usecaseMocks.NewMockProtectionUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewProtectionUseCaseWithMetrics(mockNext, mockMetrics)

	input := &protectionDomain.CipherInput{Data: []byte("data"), IVType: protectionDomain.IVRandom}

	mockNext.EXPECT().Encrypt(ctx, input).Return([]byte("ciphertext"), nil).Once()
	mockNext.EXPECT().Decrypt(ctx, input).Return(nil, protectionDomain.ErrTamperDetected).Once()
	expectMetrics(ctx, mockMetrics, "data_encrypt", "success")
	expectMetrics(ctx, mockMetrics, "data_decrypt", "rejected")

	ciphertext, err := uc.Encrypt(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, []byte("ciphertext"), ciphertext)

	_, err = uc.Decrypt(ctx, input)
	assert.ErrorIs(t, err, protectionDomain.ErrTamperDetected)

	mockMetrics.AssertExpectations(t)
}
