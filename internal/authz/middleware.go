package authz

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/iga/internal/errors"
	"github.com/allisson/iga/internal/httputil"
)

// DefaultRoleHeader carries the caller's role claim when no header is configured.
const DefaultRoleHeader = "X-User-Role"

// Config controls the role-claim gate.
type Config struct {
	Enabled   bool
	Header    string
	AdminRole string
}

// RequireAdminRole allows the request only when the role claim matches the admin role,
// compared case-insensitively.
//
// Error handling:
//   - Missing or blank role claim → 401 Unauthorized
//   - Any other role → 403 Forbidden
//
// When the gate is disabled the request always continues, and a role claim sent anyway
// is still recorded in the context so it can be used as the actor.
func RequireAdminRole(cfg Config, logger *slog.Logger) gin.HandlerFunc {
	header := cfg.Header
	if header == "" {
		header = DefaultRoleHeader
	}
	adminRole := strings.TrimSpace(cfg.AdminRole)

	return func(c *gin.Context) {
		role := strings.TrimSpace(c.GetHeader(header))

		if !cfg.Enabled {
			if role != "" {
				c.Request = c.Request.WithContext(WithRole(c.Request.Context(), role))
			}
			c.Next()
			return
		}

		if role == "" {
			logger.Debug("authorization failed: missing role claim", slog.String("header", header))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !strings.EqualFold(role, adminRole) {
			logger.Debug("authorization failed: role not allowed", slog.String("role", role))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithRole(c.Request.Context(), role))
		c.Next()
	}
}
