package usecase

import (
	"context"
	"time"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
	"github.com/allisson/iga/internal/metrics"
)

// identityUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type identityUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewIdentityUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewIdentityUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &identityUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for identity creation.
func (i *identityUseCaseWithMetrics) Create(
	ctx context.Context,
	input *identityDomain.CreateIdentityInput,
) (*identityDomain.IdentityOutput, error) {
	start := time.Now()
	output, err := i.next.Create(ctx, input)
	i.record(ctx, "identity_create", start, err)
	return output, err
}

// Get records metrics for identity retrieval.
func (i *identityUseCaseWithMetrics) Get(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	start := time.Now()
	identity, err := i.next.Get(ctx, id)
	i.record(ctx, "identity_get", start, err)
	return identity, err
}

// ListByRole records metrics for listing identities by role.
func (i *identityUseCaseWithMetrics) ListByRole(
	ctx context.Context,
	businessRole string,
	offset, limit int,
) ([]*identityDomain.Identity, error) {
	start := time.Now()
	identities, err := i.next.ListByRole(ctx, businessRole, offset, limit)
	i.record(ctx, "identity_list_by_role", start, err)
	return identities, err
}

// Update records metrics for identity updates.
func (i *identityUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input *identityDomain.UpdateIdentityInput,
) (*identityDomain.IdentityOutput, error) {
	start := time.Now()
	output, err := i.next.Update(ctx, id, input)
	i.record(ctx, "identity_update", start, err)
	return output, err
}

// Reprovision records metrics for manual re-provisioning.
func (i *identityUseCaseWithMetrics) Reprovision(
	ctx context.Context,
	id int64,
) (*identityDomain.IdentityOutput, error) {
	start := time.Now()
	output, err := i.next.Reprovision(ctx, id)
	i.record(ctx, "identity_reprovision", start, err)
	return output, err
}

func (i *identityUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	i.metrics.RecordOperation(ctx, "identity", operation, status)
	i.metrics.RecordDuration(ctx, "identity", operation, time.Since(start), status)
}
