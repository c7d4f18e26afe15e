// Package http exposes read-only previews of the role table.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	entitlementService "github.com/allisson/iga/internal/entitlement/service"
	"github.com/allisson/iga/internal/httputil"
)

// ResolveResponse is the body of GET /v1/entitlements/:role.
type ResolveResponse struct {
	BusinessRole string                      `json:"business_role"`
	Known        bool                        `json:"known"`
	Entitlements *entitlementDomain.Document `json:"entitlements"`
}

// ListRolesResponse is the body of GET /v1/entitlements.
type ListRolesResponse struct {
	Data []string `json:"data"`
}

// EntitlementHandler serves role table previews.
type EntitlementHandler struct {
	resolver entitlementService.Resolver
	logger   *slog.Logger
}

// NewEntitlementHandler creates a new entitlement handler.
func NewEntitlementHandler(resolver entitlementService.Resolver, logger *slog.Logger) *EntitlementHandler {
	return &EntitlementHandler{resolver: resolver, logger: logger}
}

// ResolveHandler shows what an identity with the given role would receive.
// GET /v1/entitlements/:role
func (h *EntitlementHandler) ResolveHandler(c *gin.Context) {
	role := c.Param("role")

	doc, err := h.resolver.Resolve(role)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, ResolveResponse{
		BusinessRole: entitlementDomain.NormalizeRole(role),
		Known:        h.resolver.IsKnown(role),
		Entitlements: doc,
	})
}

// ListRolesHandler lists the roles with their own table entry.
// GET /v1/entitlements
func (h *EntitlementHandler) ListRolesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ListRolesResponse{Data: h.resolver.Roles()})
}
