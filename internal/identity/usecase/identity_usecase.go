package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/iga/internal/database"
	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	entitlementService "github.com/allisson/iga/internal/entitlement/service"
	identityDomain "github.com/allisson/iga/internal/identity/domain"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
	provisioningService "github.com/allisson/iga/internal/provisioning/service"
	"github.com/allisson/iga/internal/validation"
)

// identityUseCase implements UseCase.
type identityUseCase struct {
	txManager database.TxManager
	repo      IdentityRepository
	resolver  entitlementService.Resolver
	gateway   provisioningService.Gateway
	logger    *slog.Logger
}

// NewIdentityUseCase creates a new identity use case.
func NewIdentityUseCase(
	txManager database.TxManager,
	repo IdentityRepository,
	resolver entitlementService.Resolver,
	gateway provisioningService.Gateway,
	logger *slog.Logger,
) UseCase {
	return &identityUseCase{
		txManager: txManager,
		repo:      repo,
		resolver:  resolver,
		gateway:   gateway,
		logger:    logger,
	}
}

// Create persists the identity first and provisions it after the transaction commits.
func (u *identityUseCase) Create(
	ctx context.Context,
	input *identityDomain.CreateIdentityInput,
) (*identityDomain.IdentityOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, validation.WrapValidationError(err)
	}

	identity := input.NewIdentity()

	entitlements, err := u.resolver.Resolve(identity.BusinessRole)
	if err != nil {
		return nil, err
	}
	identity.Entitlements = entitlements

	err = u.txManager.WithTx(ctx, func(ctx context.Context) error {
		return u.repo.Create(ctx, identity)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("identity created",
		slog.Int64("identity_id", identity.ID),
		slog.String("business_role", identity.BusinessRole),
		slog.String("actor", identity.CreatedBy),
	)

	return &identityDomain.IdentityOutput{
		Identity:     identity,
		Provisioning: u.provision(ctx, identity),
	}, nil
}

// Get retrieves an identity by its ID.
func (u *identityUseCase) Get(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	return u.repo.GetByID(ctx, id)
}

// ListByRole returns identities holding the business role. The role is matched after
// normalization, so lookups are case-insensitive.
func (u *identityUseCase) ListByRole(
	ctx context.Context,
	businessRole string,
	offset, limit int,
) ([]*identityDomain.Identity, error) {
	role := entitlementDomain.NormalizeRole(businessRole)
	if role == "" {
		return nil, entitlementDomain.ErrBusinessRoleRequired
	}
	return u.repo.ListByBusinessRole(ctx, role, offset, limit)
}

// Update applies the patch under a row lock. The gateway is called after commit and
// only when the business role changed.
func (u *identityUseCase) Update(
	ctx context.Context,
	id int64,
	input *identityDomain.UpdateIdentityInput,
) (*identityDomain.IdentityOutput, error) {
	if input.IsEmpty() {
		return nil, identityDomain.ErrEmptyPatch
	}
	if err := input.Validate(); err != nil {
		return nil, validation.WrapValidationError(err)
	}

	var (
		identity    *identityDomain.Identity
		roleChanged bool
	)

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		roleChanged = input.ApplyTo(current)
		if err := current.ValidateDates(); err != nil {
			return validation.WrapValidationError(err)
		}
		if roleChanged {
			entitlements, err := u.resolver.Resolve(current.BusinessRole)
			if err != nil {
				return err
			}
			current.Entitlements = entitlements
		}

		if err := u.repo.Update(ctx, current); err != nil {
			return err
		}

		identity = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("identity updated",
		slog.Int64("identity_id", identity.ID),
		slog.Bool("role_changed", roleChanged),
		slog.String("actor", identity.LastModifiedBy),
	)

	output := &identityDomain.IdentityOutput{Identity: identity}
	if roleChanged {
		output.Provisioning = u.provision(ctx, identity)
	}

	return output, nil
}

// Reprovision pushes the stored entitlements to the downstream target again.
func (u *identityUseCase) Reprovision(ctx context.Context, id int64) (*identityDomain.IdentityOutput, error) {
	identity, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &identityDomain.IdentityOutput{
		Identity:     identity,
		Provisioning: u.provision(ctx, identity),
	}, nil
}

// provision runs the gateway and logs, but never propagates, a failed attempt.
func (u *identityUseCase) provision(ctx context.Context, identity *identityDomain.Identity) *provisioningDomain.Result {
	result := u.gateway.Provision(ctx, identity)
	if result != nil && !result.Success {
		u.logger.Warn("identity stored but provisioning failed",
			slog.Int64("identity_id", identity.ID),
			slog.String("target", result.Target),
			slog.String("error", result.Error),
		)
	}
	return result
}
