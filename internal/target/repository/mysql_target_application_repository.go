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

// MySQLTargetApplicationRepository implements TargetApplication persistence for MySQL.
type MySQLTargetApplicationRepository struct {
	db *sql.DB
}

// NewMySQLTargetApplicationRepository creates a new MySQL TargetApplication repository.
func NewMySQLTargetApplicationRepository(db *sql.DB) *MySQLTargetApplicationRepository {
	return &MySQLTargetApplicationRepository{db: db}
}

// Create inserts a new target application and assigns its ID and creation time.
func (p *MySQLTargetApplicationRepository) Create(
	ctx context.Context,
	app *targetDomain.TargetApplication,
) error {
	querier := database.GetTx(ctx, p.db)

	now := time.Now().UTC()

	query := `INSERT INTO target_applications (name, protocol, auth_type, base_url, config, is_active, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		app.Name,
		app.Protocol,
		app.AuthType,
		app.BaseURL,
		string(app.Config),
		app.IsActive,
		now,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return targetDomain.ErrTargetApplicationAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create target application")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get target application id")
	}

	app.ID = id
	app.CreatedAt = now
	return nil
}

// GetByName retrieves a target application by its unique name.
func (p *MySQLTargetApplicationRepository) GetByName(
	ctx context.Context,
	name string,
) (*targetDomain.TargetApplication, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + targetApplicationColumns + ` FROM target_applications WHERE name = ?`

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
func (p *MySQLTargetApplicationRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*targetDomain.TargetApplication, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + targetApplicationColumns + ` FROM target_applications
			  ORDER BY name ASC LIMIT ? OFFSET ?`

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
