package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/iga/internal/database"
	apperrors "github.com/allisson/iga/internal/errors"
	targetDomain "github.com/allisson/iga/internal/target/domain"
)

// PostgreSQLTargetApplicationRepository implements TargetApplication persistence for PostgreSQL.
type PostgreSQLTargetApplicationRepository struct {
	db *sql.DB
}

// NewPostgreSQLTargetApplicationRepository creates a new PostgreSQL TargetApplication repository.
func NewPostgreSQLTargetApplicationRepository(db *sql.DB) *PostgreSQLTargetApplicationRepository {
	return &PostgreSQLTargetApplicationRepository{db: db}
}

// Create inserts a new target application and assigns its ID and creation time.
func (p *PostgreSQLTargetApplicationRepository) Create(
	ctx context.Context,
	app *targetDomain.TargetApplication,
) error {
	querier := database.GetTx(ctx, p.db)

	now := time.Now().UTC()

	query := `INSERT INTO target_applications (name, protocol, auth_type, base_url, config, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	var id int64
	err := querier.QueryRowContext(
		ctx,
		query,
		app.Name,
		app.Protocol,
		app.AuthType,
		app.BaseURL,
		string(app.Config),
		app.IsActive,
		now,
	).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return targetDomain.ErrTargetApplicationAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create target application")
	}

	app.ID = id
	app.CreatedAt = now
	return nil
}

// GetByName retrieves a target application by its unique name.
func (p *PostgreSQLTargetApplicationRepository) GetByName(
	ctx context.Context,
	name string,
) (*targetDomain.TargetApplication, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + targetApplicationColumns + ` FROM target_applications WHERE name = $1`

	app, err := scanTargetApplication(querier.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, targetDomain.ErrTargetApplicationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get target application by name")
	}
	return app, nil
}

// List retrieves target applications ordered by name with pagination.
func (p *PostgreSQLTargetApplicationRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*targetDomain.TargetApplication, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + targetApplicationColumns + ` FROM target_applications
			  ORDER BY name ASC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list target applications")
	}
	defer func() {
		_ = rows.Close()
	}()

	apps := make([]*targetDomain.TargetApplication, 0)
	for rows.Next() {
		app, err := scanTargetApplication(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan target application")
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate target applications")
	}

	return apps, nil
}
