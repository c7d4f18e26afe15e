package domain

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/allisson/iga/internal/errors"
)

var (
	// ErrBusinessRoleRequired is returned when resolving a blank business role.
	ErrBusinessRoleRequired = apperrors.Wrap(apperrors.ErrInvalidInput, "business role is required")

	// ErrInvalidRoleTable is returned when a role table fails validation at load time.
	ErrInvalidRoleTable = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid role table")
)

// NormalizeRole trims and lower-cases a business role. Every lookup and every stored
// role goes through it so "Developer " and "developer" are the same role.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// RoleTable maps normalized business roles to entitlement documents.
// Default applies to any role not present in Roles.
type RoleTable struct {
	Default Document            `json:"default"`
	Roles   map[string]Document `json:"roles"`
}

// Normalize validates the table and rewrites its keys in normalized form.
func (t *RoleTable) Normalize() error {
	if len(t.Default.Permissions) == 0 {
		return apperrors.Wrap(ErrInvalidRoleTable, "default entry must grant at least one permission")
	}

	roles := make(map[string]Document, len(t.Roles))
	for key, doc := range t.Roles {
		role := NormalizeRole(key)
		if role == "" {
			return apperrors.Wrap(ErrInvalidRoleTable, "role keys must not be blank")
		}
		if _, dup := roles[role]; dup {
			return apperrors.Wrap(ErrInvalidRoleTable, fmt.Sprintf("role %q is defined more than once", role))
		}
		if doc.Targets == nil {
			doc.Targets = map[string]Grant{}
		}
		roles[role] = doc
	}
	if t.Default.Targets == nil {
		t.Default.Targets = map[string]Grant{}
	}
	t.Roles = roles
	return nil
}

// RoleNames returns the known roles in sorted order.
func (t *RoleTable) RoleNames() []string {
	names := make([]string, 0, len(t.Roles))
	for name := range t.Roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
