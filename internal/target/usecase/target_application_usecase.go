package usecase

import (
	"context"
	"log/slog"
	"strings"

	targetDomain "github.com/allisson/iga/internal/target/domain"
	customValidation "github.com/allisson/iga/internal/validation"
)

type targetApplicationUseCase struct {
	repo   TargetApplicationRepository
	logger *slog.Logger
}

// NewTargetApplicationUseCase creates a new target application use case.
func NewTargetApplicationUseCase(repo TargetApplicationRepository, logger *slog.Logger) UseCase {
	return &targetApplicationUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and stores a target application. A taken name returns a conflict.
func (t *targetApplicationUseCase) Create(
	ctx context.Context,
	input *targetDomain.CreateTargetApplicationInput,
) (*targetDomain.TargetApplication, error) {
	if err := input.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	app := input.NewTargetApplication()
	if err := t.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	t.logger.Info("target application created",
		slog.Int64("target_application_id", app.ID),
		slog.String("name", app.Name),
	)
	return app, nil
}

// GetByName retrieves a target application by name.
func (t *targetApplicationUseCase) GetByName(
	ctx context.Context,
	name string,
) (*targetDomain.TargetApplication, error) {
	return t.repo.GetByName(ctx, strings.TrimSpace(name))
}

// List retrieves target applications with pagination.
func (t *targetApplicationUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*targetDomain.TargetApplication, error) {
	return t.repo.List(ctx, offset, limit)
}
