package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokenguard/internal/httputil"
	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
	"github.com/allisson/tokenguard/internal/protection/http/dto"
	protectionUseCase "github.com/allisson/tokenguard/internal/protection/usecase"
	customValidation "github.com/allisson/tokenguard/internal/validation"
)

// CryptoHandler handles HTTP requests for the raw cipher pipeline.
type CryptoHandler struct {
	protectionUseCase protectionUseCase.ProtectionUseCase
	logger            *slog.Logger
}

// NewCryptoHandler creates a new crypto handler with required dependencies.
func NewCryptoHandler(
	protectionUseCase protectionUseCase.ProtectionUseCase,
	logger *slog.Logger,
) *CryptoHandler {
	return &CryptoHandler{
		protectionUseCase: protectionUseCase,
		logger:            logger,
	}
}

// EncryptHandler encrypts base64 plaintext with the content or validation cipher.
// POST /v1/data/encrypt - Returns 200 OK with base64 ciphertext.
func (h *CryptoHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToCipherInput()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	defer protectionDomain.Zero(input.Data)

	ciphertext, err := h.protectionUseCase.Encrypt(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{Ciphertext: ciphertext})
}

// DecryptHandler decrypts base64 ciphertext produced by EncryptHandler.
// POST /v1/data/decrypt - Returns 200 OK with base64 plaintext, 400 when the ciphertext
// was tampered with. SECURITY: Plaintext is zeroed after response.
func (h *CryptoHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToCipherInput()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	plaintext, err := h.protectionUseCase.Decrypt(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer protectionDomain.Zero(plaintext)

	c.JSON(http.StatusOK, dto.DecryptResponse{Plaintext: plaintext})
}
