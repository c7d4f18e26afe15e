package usecase

import (
	"context"
	"time"

	"github.com/allisson/iga/internal/metrics"
	targetDomain "github.com/allisson/iga/internal/target/domain"
)

// targetApplicationUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type targetApplicationUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewTargetApplicationUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewTargetApplicationUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &targetApplicationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for target application creation.
func (t *targetApplicationUseCaseWithMetrics) Create(
	ctx context.Context,
	input *targetDomain.CreateTargetApplicationInput,
) (*targetDomain.TargetApplication, error) {
	start := time.Now()
	app, err := t.next.Create(ctx, input)
	status := metrics.Status(err)

	t.metrics.RecordOperation(ctx, "target", "target_application_create", status)
	t.metrics.RecordDuration(ctx, "target", "target_application_create", time.Since(start), status)

	return app, err
}

// GetByName records metrics for target application retrieval.
func (t *targetApplicationUseCaseWithMetrics) GetByName(
	ctx context.Context,
	name string,
) (*targetDomain.TargetApplication, error) {
	start := time.Now()
	app, err := t.next.GetByName(ctx, name)
	status := metrics.Status(err)

	t.metrics.RecordOperation(ctx, "target", "target_application_get", status)
	t.metrics.RecordDuration(ctx, "target", "target_application_get", time.Since(start), status)

	return app, err
}

// List records metrics for target application listing.
func (t *targetApplicationUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*targetDomain.TargetApplication, error) {
	start := time.Now()
	apps, err := t.next.List(ctx, offset, limit)
	status := metrics.Status(err)

	t.metrics.RecordOperation(ctx, "target", "target_application_list", status)
	t.metrics.RecordDuration(ctx, "target", "target_application_list", time.Since(start), status)

	return apps, err
}
