package service

import (
	"log/slog"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
)

type tableResolver struct {
	table  *entitlementDomain.RoleTable
	roles  []string
	logger *slog.Logger
}

// NewResolver builds a Resolver over table. The table is normalized and must not be
// modified by the caller afterwards.
func NewResolver(table *entitlementDomain.RoleTable, logger *slog.Logger) (Resolver, error) {
	if err := table.Normalize(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &tableResolver{
		table:  table,
		roles:  table.RoleNames(),
		logger: logger,
	}, nil
}

// Resolve implements Resolver.
func (r *tableResolver) Resolve(businessRole string) (*entitlementDomain.Document, error) {
	role := entitlementDomain.NormalizeRole(businessRole)
	if role == "" {
		return nil, entitlementDomain.ErrBusinessRoleRequired
	}

	if doc, ok := r.table.Roles[role]; ok {
		return doc.Clone(), nil
	}

	r.logger.Warn("unknown business role, applying default entitlements",
		slog.String("business_role", role))
	return r.table.Default.Clone(), nil
}

// IsKnown implements Resolver.
func (r *tableResolver) IsKnown(businessRole string) bool {
	_, ok := r.table.Roles[entitlementDomain.NormalizeRole(businessRole)]
	return ok
}

// Roles implements Resolver.
func (r *tableResolver) Roles() []string {
	out := make([]string, len(r.roles))
	copy(out, r.roles)
	return out
}
