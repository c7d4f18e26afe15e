// Package service resolves business roles into entitlement documents.
//
// The resolver is the single source of truth for entitlements: every document stored on
// an identity or sent to a downstream system comes out of Resolve. It performs no I/O and
// holds no mutable state after construction.
package service

import (
	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
)

// Resolver maps a business role to its entitlement document.
type Resolver interface {
	// Resolve returns a copy of the document for the normalized role, or of the
	// default document when the role is unknown. A blank role is ErrBusinessRoleRequired.
	Resolve(businessRole string) (*entitlementDomain.Document, error)

	// IsKnown reports whether the normalized role has its own table entry.
	IsKnown(businessRole string) bool

	// Roles returns the known roles in sorted order.
	Roles() []string
}
