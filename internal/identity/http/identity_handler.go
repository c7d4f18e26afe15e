// Package http provides HTTP handlers for the identity store.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/iga/internal/authz"
	"github.com/allisson/iga/internal/httputil"
	"github.com/allisson/iga/internal/identity/http/dto"
	identityUseCase "github.com/allisson/iga/internal/identity/usecase"
	customValidation "github.com/allisson/iga/internal/validation"
)

// IdentityHandler handles HTTP requests for identity operations.
type IdentityHandler struct {
	identityUseCase identityUseCase.UseCase
	logger          *slog.Logger
}

// NewIdentityHandler creates a new identity handler with required dependencies.
func NewIdentityHandler(identityUseCase identityUseCase.UseCase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		identityUseCase: identityUseCase,
		logger:          logger,
	}
}

// CreateHandler creates an identity, resolves its entitlements and provisions it.
// POST /v1/identities - Requires the admin role.
// Returns 201 Created with the stored record and the provisioning outcome.
func (h *IdentityHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.identityUseCase.Create(c.Request.Context(), req.ToInput(authz.Actor(c.Request.Context())))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapOutputToResponse(output))
}

// GetHandler retrieves an identity by id.
// GET /v1/identities/:id
func (h *IdentityHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	identity, err := h.identityUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIdentityToResponse(identity))
}

// ListByRoleHandler lists identities holding a business role.
// GET /v1/roles/:role/identities?offset=0&limit=50
func (h *IdentityHandler) ListByRoleHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	identities, err := h.identityUseCase.ListByRole(c.Request.Context(), c.Param("role"), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIdentitiesToListResponse(identities))
}

// UpdateHandler applies a partial update. A role change re-resolves the entitlements
// and provisions the identity again.
// PUT, PATCH /v1/identities/:id - Requires the admin role.
func (h *IdentityHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.identityUseCase.Update(c.Request.Context(), id, req.ToInput(authz.Actor(c.Request.Context())))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOutputToResponse(output))
}
