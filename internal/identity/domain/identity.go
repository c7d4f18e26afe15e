// Package domain defines the identity record, its create and patch inputs and the
// errors the identity store reports.
package domain

import (
	"strings"
	"time"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
)

// Defaults applied when a create request leaves the attribute out.
const (
	DefaultEmploymentType   = "Employee"
	DefaultEmploymentStatus = "ACTIVE"
	SystemActor             = "system"
)

// Identity is one employee record. BusinessRole is stored normalized and
// Entitlements always holds the resolver output for that role.
type Identity struct {
	ID               int64
	Username         string
	EmployeeID       string
	ExternalID       string
	FirstName        string
	LastName         string
	MiddleName       string
	DisplayName      string
	PrimaryEmail     string
	SecondaryEmail   string
	MobilePhone      string
	WorkPhone        string
	EmploymentType   string
	EmploymentStatus string
	HireDate         *time.Time
	TerminationDate  *time.Time
	LastWorkingDay   *time.Time
	Department       string
	Location         string
	BusinessRole     string
	Entitlements     *entitlementDomain.Document
	IsActive         bool
	CreatedAt        time.Time
	CreatedBy        string
	UpdatedAt        time.Time
	LastModifiedBy   string
}

// IdentityOutput is what the orchestrator returns for writes. Provisioning is nil
// when the write did not trigger a provisioning attempt.
type IdentityOutput struct {
	Identity     *Identity
	Provisioning *provisioningDomain.Result
}

// NormalizeEmail trims and lower-cases an email address so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
