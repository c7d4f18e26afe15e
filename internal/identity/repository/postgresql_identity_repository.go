package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/iga/internal/database"
	apperrors "github.com/allisson/iga/internal/errors"
	identityDomain "github.com/allisson/iga/internal/identity/domain"
)

// PostgreSQLIdentityRepository implements Identity persistence for PostgreSQL.
type PostgreSQLIdentityRepository struct {
	db *sql.DB
}

// NewPostgreSQLIdentityRepository creates a new PostgreSQL Identity repository instance.
func NewPostgreSQLIdentityRepository(db *sql.DB) *PostgreSQLIdentityRepository {
	return &PostgreSQLIdentityRepository{db: db}
}

// Create inserts a new identity and assigns its ID and timestamps.
func (p *PostgreSQLIdentityRepository) Create(ctx context.Context, identity *identityDomain.Identity) error {
	querier := database.GetTx(ctx, p.db)

	now := time.Now().UTC()

	query := `INSERT INTO identities (username, employee_id, external_id, first_name, last_name,
			  middle_name, display_name, primary_email, secondary_email, mobile_phone, work_phone,
			  employment_type, employment_status, hire_date, termination_date, last_working_day,
			  department, location, business_role, entitlements, is_active, created_at, created_by,
			  updated_at, last_modified_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			  $18, $19, $20, $21, $22, $23, $24, $25)
			  RETURNING id`

	var id int64
	err := querier.QueryRowContext(
		ctx,
		query,
		identity.Username,
		identity.EmployeeID,
		identity.ExternalID,
		identity.FirstName,
		identity.LastName,
		identity.MiddleName,
		identity.DisplayName,
		identity.PrimaryEmail,
		identity.SecondaryEmail,
		identity.MobilePhone,
		identity.WorkPhone,
		identity.EmploymentType,
		identity.EmploymentStatus,
		nullTime(identity.HireDate),
		nullTime(identity.TerminationDate),
		nullTime(identity.LastWorkingDay),
		identity.Department,
		identity.Location,
		identity.BusinessRole,
		identity.Entitlements,
		identity.IsActive,
		now,
		identity.CreatedBy,
		now,
		identity.LastModifiedBy,
	).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return identityDomain.ErrIdentityAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create identity")
	}

	identity.ID = id
	identity.CreatedAt = now
	identity.UpdatedAt = now
	return nil
}

// GetByID retrieves an identity by its ID.
func (p *PostgreSQLIdentityRepository) GetByID(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	return p.get(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = $1`, id)
}

// GetByIDForUpdate retrieves an identity and locks its row until the surrounding
// transaction ends.
func (p *PostgreSQLIdentityRepository) GetByIDForUpdate(
	ctx context.Context,
	id int64,
) (*identityDomain.Identity, error) {
	return p.get(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = $1 FOR UPDATE`, id)
}

func (p *PostgreSQLIdentityRepository) get(
	ctx context.Context,
	query string,
	id int64,
) (*identityDomain.Identity, error) {
	querier := database.GetTx(ctx, p.db)

	identity, err := scanIdentity(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identityDomain.ErrIdentityNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get identity by id")
	}
	return identity, nil
}

// ListByBusinessRole returns identities holding the normalized role, ordered by ID.
func (p *PostgreSQLIdentityRepository) ListByBusinessRole(
	ctx context.Context,
	businessRole string,
	offset, limit int,
) ([]*identityDomain.Identity, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + identityColumns + ` FROM identities
			  WHERE business_role = $1
			  ORDER BY id ASC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, businessRole, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list identities by business role")
	}
	defer func() {
		_ = rows.Close()
	}()

	identities := make([]*identityDomain.Identity, 0)
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan identity")
		}
		identities = append(identities, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate identities")
	}

	return identities, nil
}

// Update writes every mutable attribute of the identity and refreshes UpdatedAt.
func (p *PostgreSQLIdentityRepository) Update(ctx context.Context, identity *identityDomain.Identity) error {
	querier := database.GetTx(ctx, p.db)

	now := time.Now().UTC()

	query := `UPDATE identities SET username = $1, employee_id = $2, external_id = $3,
			  first_name = $4, last_name = $5, middle_name = $6, display_name = $7,
			  primary_email = $8, secondary_email = $9, mobile_phone = $10, work_phone = $11,
			  employment_type = $12, employment_status = $13, hire_date = $14,
			  termination_date = $15, last_working_day = $16, department = $17, location = $18,
			  business_role = $19, entitlements = $20, is_active = $21, updated_at = $22,
			  last_modified_by = $23
			  WHERE id = $24`

	result, err := querier.ExecContext(
		ctx,
		query,
		identity.Username,
		identity.EmployeeID,
		identity.ExternalID,
		identity.FirstName,
		identity.LastName,
		identity.MiddleName,
		identity.DisplayName,
		identity.PrimaryEmail,
		identity.SecondaryEmail,
		identity.MobilePhone,
		identity.WorkPhone,
		identity.EmploymentType,
		identity.EmploymentStatus,
		nullTime(identity.HireDate),
		nullTime(identity.TerminationDate),
		nullTime(identity.LastWorkingDay),
		identity.Department,
		identity.Location,
		identity.BusinessRole,
		identity.Entitlements,
		identity.IsActive,
		now,
		identity.LastModifiedBy,
		identity.ID,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return identityDomain.ErrIdentityAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update identity")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return identityDomain.ErrIdentityNotFound
	}

	identity.UpdatedAt = now
	return nil
}
