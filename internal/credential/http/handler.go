// Package http provides HTTP handlers for the credential transit API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/credseal/internal/credential/http/dto"
	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
	"github.com/allisson/credseal/internal/httputil"
	customValidation "github.com/allisson/credseal/internal/validation"
)

// CredentialHandler seals and opens credential envelopes over HTTP.
// Request bodies and responses carrying secrets are never logged.
type CredentialHandler struct {
	credentialUseCase credentialUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewCredentialHandler creates a new credential handler.
func NewCredentialHandler(
	credentialUseCase credentialUseCase.CredentialUseCase,
	logger *slog.Logger,
) *CredentialHandler {
	return &CredentialHandler{
		credentialUseCase: credentialUseCase,
		logger:            logger,
	}
}

// EncryptHandler seals a plaintext.
// POST /v1/credentials/encrypt - Returns 200 OK with the envelope.
func (h *CredentialHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	envelope, err := h.credentialUseCase.EncryptSecret(c.Request.Context(), req.Plaintext, req.Key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{Envelope: envelope})
}

// DecryptHandler opens an envelope and returns the plaintext.
// POST /v1/credentials/decrypt - Returns 200 OK with the plaintext.
func (h *CredentialHandler) DecryptHandler(c *gin.Context) {
	req, ok := h.bindEnvelope(c)
	if !ok {
		return
	}

	plaintext, err := h.credentialUseCase.DecryptSecret(c.Request.Context(), req.Envelope, req.Key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.DecryptResponse{Plaintext: plaintext})
}

// VerifyHandler checks that an envelope authenticates without returning the secret.
// POST /v1/credentials/verify - Returns 200 OK with {"valid": true}.
func (h *CredentialHandler) VerifyHandler(c *gin.Context) {
	req, ok := h.bindEnvelope(c)
	if !ok {
		return
	}

	if err := h.credentialUseCase.VerifySecret(c.Request.Context(), req.Envelope, req.Key); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: true})
}

func (h *CredentialHandler) bindEnvelope(c *gin.Context) (dto.EnvelopeRequest, bool) {
	var req dto.EnvelopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return req, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return req, false
	}
	return req, true
}
