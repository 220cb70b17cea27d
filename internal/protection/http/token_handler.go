// Package http provides HTTP handlers for token protection operations.
package http

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokenguard/internal/httputil"
	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
	"github.com/allisson/tokenguard/internal/protection/http/dto"
	protectionUseCase "github.com/allisson/tokenguard/internal/protection/usecase"
	customValidation "github.com/allisson/tokenguard/internal/validation"
)

// TokenHandler handles HTTP requests for token encode and decode operations.
type TokenHandler struct {
	protectionUseCase protectionUseCase.ProtectionUseCase
	logger            *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	protectionUseCase protectionUseCase.ProtectionUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		protectionUseCase: protectionUseCase,
		logger:            logger,
	}
}

// EncodeHandler protects a base64 payload, optionally bound to a modifier.
// POST /v1/tokens/encode - Returns 200 OK with a URL-safe token.
func (h *TokenHandler) EncodeHandler(c *gin.Context) {
	var req dto.EncodeTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	payload, err := base64.StdEncoding.DecodeString(*req.Payload)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 payload: %w", err), h.logger)
		return
	}
	defer protectionDomain.Zero(payload)

	modifier, err := dto.DecodeModifier(req.Modifier)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, err := h.protectionUseCase.EncodeToken(c.Request.Context(), payload, modifier)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// DecodeHandler verifies a token and returns its payload.
// POST /v1/tokens/decode - Returns 200 OK with the base64 payload, 400 if the token
// is malformed or was tampered with. SECURITY: Payload is zeroed after response.
func (h *TokenHandler) DecodeHandler(c *gin.Context) {
	var req dto.DecodeTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	modifier, err := dto.DecodeModifier(req.Modifier)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	payload, err := h.protectionUseCase.DecodeToken(c.Request.Context(), req.Token, modifier)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer protectionDomain.Zero(payload)

	c.JSON(http.StatusOK, dto.PayloadResponse{Payload: payload})
}

// EncodeStringHandler protects a string value.
// POST /v1/strings/encode - Returns 200 OK with a URL-safe token.
func (h *TokenHandler) EncodeStringHandler(c *gin.Context) {
	var req dto.EncodeStringRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.protectionUseCase.EncodeString(c.Request.Context(), *req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// DecodeStringHandler verifies a string token.
// POST /v1/strings/decode - Returns 200 OK with the value, 400 on invalid tokens.
func (h *TokenHandler) DecodeStringHandler(c *gin.Context) {
	var req dto.DecodeStringRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	value, err := h.protectionUseCase.DecodeString(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.StringResponse{Value: value})
}
