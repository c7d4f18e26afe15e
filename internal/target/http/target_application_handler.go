// Package http provides HTTP handlers for target application reference data.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/iga/internal/httputil"
	"github.com/allisson/iga/internal/target/http/dto"
	targetUseCase "github.com/allisson/iga/internal/target/usecase"
)

// TargetApplicationHandler handles HTTP requests for target applications.
type TargetApplicationHandler struct {
	useCase targetUseCase.UseCase
	logger  *slog.Logger
}

// NewTargetApplicationHandler creates a new target application handler.
func NewTargetApplicationHandler(useCase targetUseCase.UseCase, logger *slog.Logger) *TargetApplicationHandler {
	return &TargetApplicationHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// CreateHandler registers a target application.
// POST /v1/target-applications - Requires the admin role.
func (h *TargetApplicationHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateTargetApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	app, err := h.useCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTargetApplicationToResponse(app))
}

// GetHandler retrieves a target application by name.
// GET /v1/target-applications/:name
func (h *TargetApplicationHandler) GetHandler(c *gin.Context) {
	app, err := h.useCase.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTargetApplicationToResponse(app))
}

// ListHandler lists target applications ordered by name.
// GET /v1/target-applications?offset=0&limit=50
func (h *TargetApplicationHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	apps, err := h.useCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTargetApplicationsToListResponse(apps))
}
