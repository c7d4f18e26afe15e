// Package repository implements identity persistence for PostgreSQL and MySQL.
// Uniqueness of employee_id and primary_email is enforced by unique indexes and
// reported as domain.ErrIdentityAlreadyExists.
package repository

import (
	"database/sql"
	"time"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	identityDomain "github.com/allisson/iga/internal/identity/domain"
)

// identityColumns lists the columns in the order scanIdentity expects.
const identityColumns = `id, username, employee_id, external_id, first_name, last_name, middle_name,
	display_name, primary_email, secondary_email, mobile_phone, work_phone, employment_type,
	employment_status, hire_date, termination_date, last_working_day, department, location,
	business_role, entitlements, is_active, created_at, created_by, updated_at, last_modified_by`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdentity(row rowScanner) (*identityDomain.Identity, error) {
	var (
		identity                                  identityDomain.Identity
		hireDate, terminationDate, lastWorkingDay sql.NullTime
		entitlements                              entitlementDomain.Document
	)

	err := row.Scan(
		&identity.ID,
		&identity.Username,
		&identity.EmployeeID,
		&identity.ExternalID,
		&identity.FirstName,
		&identity.LastName,
		&identity.MiddleName,
		&identity.DisplayName,
		&identity.PrimaryEmail,
		&identity.SecondaryEmail,
		&identity.MobilePhone,
		&identity.WorkPhone,
		&identity.EmploymentType,
		&identity.EmploymentStatus,
		&hireDate,
		&terminationDate,
		&lastWorkingDay,
		&identity.Department,
		&identity.Location,
		&identity.BusinessRole,
		&entitlements,
		&identity.IsActive,
		&identity.CreatedAt,
		&identity.CreatedBy,
		&identity.UpdatedAt,
		&identity.LastModifiedBy,
	)
	if err != nil {
		return nil, err
	}

	identity.HireDate = timePtr(hireDate)
	identity.TerminationDate = timePtr(terminationDate)
	identity.LastWorkingDay = timePtr(lastWorkingDay)
	identity.Entitlements = &entitlements

	return &identity, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
