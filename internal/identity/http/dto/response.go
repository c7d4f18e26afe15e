package dto

import (
	"time"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	identityDomain "github.com/allisson/iga/internal/identity/domain"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
	customValidation "github.com/allisson/iga/internal/validation"
)

// IdentityResponse represents an identity in API responses. Provisioning is only
// present when the request triggered a provisioning attempt.
type IdentityResponse struct {
	ID               int64                       `json:"id"`
	Username         string                      `json:"username"`
	EmployeeID       string                      `json:"employee_id"`
	ExternalID       string                      `json:"external_id"`
	FirstName        string                      `json:"first_name"`
	LastName         string                      `json:"last_name"`
	MiddleName       string                      `json:"middle_name"`
	DisplayName      string                      `json:"display_name"`
	PrimaryEmail     string                      `json:"primary_email"`
	SecondaryEmail   string                      `json:"secondary_email"`
	MobilePhone      string                      `json:"mobile_phone"`
	WorkPhone        string                      `json:"work_phone"`
	EmploymentType   string                      `json:"employment_type"`
	EmploymentStatus string                      `json:"employment_status"`
	HireDate         *string                     `json:"hire_date"`
	TerminationDate  *string                     `json:"termination_date"`
	LastWorkingDay   *string                     `json:"last_working_day"`
	Department       string                      `json:"department"`
	Location         string                      `json:"location"`
	BusinessRole     string                      `json:"business_role"`
	Entitlements     *entitlementDomain.Document `json:"entitlements"`
	IsActive         bool                        `json:"is_active"`
	CreatedAt        time.Time                   `json:"created_at"`
	CreatedBy        string                      `json:"created_by"`
	UpdatedAt        time.Time                   `json:"updated_at"`
	LastModifiedBy   string                      `json:"last_modified_by"`
	Provisioning     *provisioningDomain.Result  `json:"provisioning,omitempty"`
}

// ListIdentitiesResponse represents a paginated list of identities in API responses.
type ListIdentitiesResponse struct {
	Data []IdentityResponse `json:"data"`
}

// MapIdentityToResponse converts a domain identity to an API response.
func MapIdentityToResponse(identity *identityDomain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:               identity.ID,
		Username:         identity.Username,
		EmployeeID:       identity.EmployeeID,
		ExternalID:       identity.ExternalID,
		FirstName:        identity.FirstName,
		LastName:         identity.LastName,
		MiddleName:       identity.MiddleName,
		DisplayName:      identity.DisplayName,
		PrimaryEmail:     identity.PrimaryEmail,
		SecondaryEmail:   identity.SecondaryEmail,
		MobilePhone:      identity.MobilePhone,
		WorkPhone:        identity.WorkPhone,
		EmploymentType:   identity.EmploymentType,
		EmploymentStatus: identity.EmploymentStatus,
		HireDate:         formatDate(identity.HireDate),
		TerminationDate:  formatDate(identity.TerminationDate),
		LastWorkingDay:   formatDate(identity.LastWorkingDay),
		Department:       identity.Department,
		Location:         identity.Location,
		BusinessRole:     identity.BusinessRole,
		Entitlements:     identity.Entitlements,
		IsActive:         identity.IsActive,
		CreatedAt:        identity.CreatedAt,
		CreatedBy:        identity.CreatedBy,
		UpdatedAt:        identity.UpdatedAt,
		LastModifiedBy:   identity.LastModifiedBy,
	}
}

// MapOutputToResponse converts a write result, including its provisioning outcome.
func MapOutputToResponse(output *identityDomain.IdentityOutput) IdentityResponse {
	response := MapIdentityToResponse(output.Identity)
	response.Provisioning = output.Provisioning
	return response
}

// MapIdentitiesToListResponse converts a slice of domain identities to a list response.
func MapIdentitiesToListResponse(identities []*identityDomain.Identity) ListIdentitiesResponse {
	data := make([]IdentityResponse, 0, len(identities))
	for _, identity := range identities {
		data = append(data, MapIdentityToResponse(identity))
	}

	return ListIdentitiesResponse{
		Data: data,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(customValidation.DateLayout)
	return &s
}
