// Package usecase manages the target application reference data.
package usecase

import (
	"context"

	targetDomain "github.com/allisson/iga/internal/target/domain"
)

// TargetApplicationRepository defines the interface for target application persistence.
type TargetApplicationRepository interface {
	Create(ctx context.Context, app *targetDomain.TargetApplication) error
	GetByName(ctx context.Context, name string) (*targetDomain.TargetApplication, error)
	List(ctx context.Context, offset, limit int) ([]*targetDomain.TargetApplication, error)
}

// UseCase defines the interface for target application business logic.
type UseCase interface {
	Create(
		ctx context.Context,
		input *targetDomain.CreateTargetApplicationInput,
	) (*targetDomain.TargetApplication, error)
	GetByName(ctx context.Context, name string) (*targetDomain.TargetApplication, error)
	List(ctx context.Context, offset, limit int) ([]*targetDomain.TargetApplication, error)
}
