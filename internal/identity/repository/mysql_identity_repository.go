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

// MySQLIdentityRepository implements Identity persistence for MySQL.
type MySQLIdentityRepository struct {
	db *sql.DB
}

// NewMySQLIdentityRepository creates a new MySQL Identity repository instance.
func NewMySQLIdentityRepository(db *sql.DB) *MySQLIdentityRepository {
	return &MySQLIdentityRepository{db: db}
}

// Create inserts a new identity and assigns its ID and timestamps.
func (m *MySQLIdentityRepository) Create(ctx context.Context, identity *identityDomain.Identity) error {
	querier := database.GetTx(ctx, m.db)

	now := time.Now().UTC()

	query := `INSERT INTO identities (username, employee_id, external_id, first_name, last_name,
			  middle_name, display_name, primary_email, secondary_email, mobile_phone, work_phone,
			  employment_type, employment_status, hire_date, termination_date, last_working_day,
			  department, location, business_role, entitlements, is_active, created_at, created_by,
			  updated_at, last_modified_by)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

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
		identity.CreatedBy,
		now,
		identity.LastModifiedBy,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return identityDomain.ErrIdentityAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create identity")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get identity id")
	}

	identity.ID = id
	identity.CreatedAt = now
	identity.UpdatedAt = now
	return nil
}

// GetByID retrieves an identity by its ID.
func (m *MySQLIdentityRepository) GetByID(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	return m.get(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = ?`, id)
}

// GetByIDForUpdate retrieves an identity and locks its row until the surrounding
// transaction ends.
func (m *MySQLIdentityRepository) GetByIDForUpdate(
	ctx context.Context,
	id int64,
) (*identityDomain.Identity, error) {
	return m.get(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = ? FOR UPDATE`, id)
}

func (m *MySQLIdentityRepository) get(
	ctx context.Context,
	query string,
	id int64,
) (*identityDomain.Identity, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLIdentityRepository) ListByBusinessRole(
	ctx context.Context,
	businessRole string,
	offset, limit int,
) ([]*identityDomain.Identity, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + identityColumns + ` FROM identities
			  WHERE business_role = ?
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`

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
// MySQL reports zero affected rows when nothing changed, so a missing row is
// confirmed with a separate lookup.
func (m *MySQLIdentityRepository) Update(ctx context.Context, identity *identityDomain.Identity) error {
	querier := database.GetTx(ctx, m.db)

	now := time.Now().UTC()

	query := `UPDATE identities SET username = ?, employee_id = ?, external_id = ?,
			  first_name = ?, last_name = ?, middle_name = ?, display_name = ?,
			  primary_email = ?, secondary_email = ?, mobile_phone = ?, work_phone = ?,
			  employment_type = ?, employment_status = ?, hire_date = ?,
			  termination_date = ?, last_working_day = ?, department = ?, location = ?,
			  business_role = ?, entitlements = ?, is_active = ?, updated_at = ?,
			  last_modified_by = ?
			  WHERE id = ?`

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
		var exists int
		err := querier.QueryRowContext(ctx, `SELECT 1 FROM identities WHERE id = ?`, identity.ID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return identityDomain.ErrIdentityNotFound
		}
		if err != nil {
			return apperrors.Wrap(err, "failed to check identity existence")
		}
	}

	identity.UpdatedAt = now
	return nil
}
