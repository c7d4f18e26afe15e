// Package usecase implements the identity orchestrator: it validates input, resolves
// entitlements, persists identities and provisions them after the write commits.
package usecase

import (
	"context"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
)

// IdentityRepository defines the interface for Identity persistence operations.
type IdentityRepository interface {
	Create(ctx context.Context, identity *identityDomain.Identity) error
	GetByID(ctx context.Context, id int64) (*identityDomain.Identity, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*identityDomain.Identity, error)
	ListByBusinessRole(
		ctx context.Context,
		businessRole string,
		offset, limit int,
	) ([]*identityDomain.Identity, error)
	Update(ctx context.Context, identity *identityDomain.Identity) error
}

// UseCase defines the interface for identity lifecycle business logic.
type UseCase interface {
	// Create validates and stores a new identity with entitlements resolved from its
	// business role, then provisions it. A provisioning failure is reported in the
	// output and never undoes the stored identity.
	Create(ctx context.Context, input *identityDomain.CreateIdentityInput) (*identityDomain.IdentityOutput, error)
	Get(ctx context.Context, id int64) (*identityDomain.Identity, error)
	ListByRole(ctx context.Context, businessRole string, offset, limit int) ([]*identityDomain.Identity, error)
	// Update applies a partial update. Entitlements are re-resolved and provisioned
	// only when the normalized business role changes.
	Update(
		ctx context.Context,
		id int64,
		input *identityDomain.UpdateIdentityInput,
	) (*identityDomain.IdentityOutput, error)
	// Reprovision sends the stored entitlements of an identity to the downstream
	// target again without modifying the record.
	Reprovision(ctx context.Context, id int64) (*identityDomain.IdentityOutput, error)
}
