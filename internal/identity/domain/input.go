package domain

import (
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	customValidation "github.com/allisson/iga/internal/validation"
)

// CreateIdentityInput carries the attributes of a new identity. BusinessRole is
// checked by the entitlement resolver, not by Validate.
type CreateIdentityInput struct {
	Username         string     `json:"username"`
	EmployeeID       string     `json:"employee_id"`
	ExternalID       string     `json:"external_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	MiddleName       string     `json:"middle_name"`
	DisplayName      string     `json:"display_name"`
	PrimaryEmail     string     `json:"primary_email"`
	SecondaryEmail   string     `json:"secondary_email"`
	MobilePhone      string     `json:"mobile_phone"`
	WorkPhone        string     `json:"work_phone"`
	EmploymentType   string     `json:"employment_type"`
	EmploymentStatus string     `json:"employment_status"`
	HireDate         *time.Time `json:"hire_date"`
	TerminationDate  *time.Time `json:"termination_date"`
	LastWorkingDay   *time.Time `json:"last_working_day"`
	Department       string     `json:"department"`
	Location         string     `json:"location"`
	BusinessRole     string     `json:"business_role"`
	IsActive         *bool      `json:"is_active"`
	// Actor is recorded as created_by and last_modified_by.
	Actor string `json:"-"`
}

// Validate checks required attributes and formats.
func (i *CreateIdentityInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.EmployeeID, validation.Required, customValidation.NotBlank, customValidation.NoWhitespace),
		validation.Field(&i.FirstName, validation.Required, customValidation.NotBlank),
		validation.Field(&i.DisplayName, validation.Required, customValidation.NotBlank),
		validation.Field(&i.PrimaryEmail, validation.Required, customValidation.Email),
		validation.Field(&i.SecondaryEmail, customValidation.Email),
		validation.Field(&i.MobilePhone, customValidation.Phone),
		validation.Field(&i.WorkPhone, customValidation.Phone),
		validation.Field(&i.TerminationDate, validation.By(notBefore(i.HireDate, "hire date"))),
		validation.Field(&i.LastWorkingDay, validation.By(notBefore(i.HireDate, "hire date"))),
	)
}

// NewIdentity builds the record to persist, applying defaults and normalization.
// Entitlements are left for the caller to resolve.
func (i *CreateIdentityInput) NewIdentity() *Identity {
	actor := strings.TrimSpace(i.Actor)
	if actor == "" {
		actor = SystemActor
	}
	isActive := true
	if i.IsActive != nil {
		isActive = *i.IsActive
	}

	return &Identity{
		Username:         strings.TrimSpace(i.Username),
		EmployeeID:       strings.TrimSpace(i.EmployeeID),
		ExternalID:       strings.TrimSpace(i.ExternalID),
		FirstName:        strings.TrimSpace(i.FirstName),
		LastName:         strings.TrimSpace(i.LastName),
		MiddleName:       strings.TrimSpace(i.MiddleName),
		DisplayName:      strings.TrimSpace(i.DisplayName),
		PrimaryEmail:     NormalizeEmail(i.PrimaryEmail),
		SecondaryEmail:   NormalizeEmail(i.SecondaryEmail),
		MobilePhone:      strings.TrimSpace(i.MobilePhone),
		WorkPhone:        strings.TrimSpace(i.WorkPhone),
		EmploymentType:   valueOr(i.EmploymentType, DefaultEmploymentType),
		EmploymentStatus: valueOr(i.EmploymentStatus, DefaultEmploymentStatus),
		HireDate:         i.HireDate,
		TerminationDate:  i.TerminationDate,
		LastWorkingDay:   i.LastWorkingDay,
		Department:       strings.TrimSpace(i.Department),
		Location:         strings.TrimSpace(i.Location),
		BusinessRole:     entitlementDomain.NormalizeRole(i.BusinessRole),
		IsActive:         isActive,
		CreatedBy:        actor,
		LastModifiedBy:   actor,
	}
}

// UpdateIdentityInput is a partial update. Nil fields are left untouched.
type UpdateIdentityInput struct {
	Username         *string    `json:"username"`
	EmployeeID       *string    `json:"employee_id"`
	ExternalID       *string    `json:"external_id"`
	FirstName        *string    `json:"first_name"`
	LastName         *string    `json:"last_name"`
	MiddleName       *string    `json:"middle_name"`
	DisplayName      *string    `json:"display_name"`
	PrimaryEmail     *string    `json:"primary_email"`
	SecondaryEmail   *string    `json:"secondary_email"`
	MobilePhone      *string    `json:"mobile_phone"`
	WorkPhone        *string    `json:"work_phone"`
	EmploymentType   *string    `json:"employment_type"`
	EmploymentStatus *string    `json:"employment_status"`
	HireDate         *time.Time `json:"hire_date"`
	TerminationDate  *time.Time `json:"termination_date"`
	LastWorkingDay   *time.Time `json:"last_working_day"`
	Department       *string    `json:"department"`
	Location         *string    `json:"location"`
	BusinessRole     *string    `json:"business_role"`
	IsActive         *bool      `json:"is_active"`
	// Clear flags remove a stored date. They win over the matching date field.
	ClearHireDate        bool `json:"clear_hire_date"`
	ClearTerminationDate bool `json:"clear_termination_date"`
	ClearLastWorkingDay  bool `json:"clear_last_working_day"`
	// Actor is recorded as last_modified_by.
	Actor string `json:"-"`
}

// Validate checks that present attributes are well formed. Required attributes
// may be omitted but not cleared.
func (p *UpdateIdentityInput) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.EmployeeID, validation.NilOrNotEmpty, customValidation.NotBlank, customValidation.NoWhitespace),
		validation.Field(&p.FirstName, validation.NilOrNotEmpty, customValidation.NotBlank),
		validation.Field(&p.DisplayName, validation.NilOrNotEmpty, customValidation.NotBlank),
		validation.Field(&p.PrimaryEmail, validation.NilOrNotEmpty, customValidation.Email),
		validation.Field(&p.SecondaryEmail, customValidation.Email),
		validation.Field(&p.MobilePhone, customValidation.Phone),
		validation.Field(&p.WorkPhone, customValidation.Phone),
		validation.Field(&p.EmploymentType, validation.NilOrNotEmpty),
		validation.Field(&p.EmploymentStatus, validation.NilOrNotEmpty),
		validation.Field(&p.BusinessRole, validation.NilOrNotEmpty, customValidation.NotBlank),
	)
}

// IsEmpty reports whether the patch sets no attribute at all.
func (p *UpdateIdentityInput) IsEmpty() bool {
	return p.Username == nil && p.EmployeeID == nil && p.ExternalID == nil &&
		p.FirstName == nil && p.LastName == nil && p.MiddleName == nil &&
		p.DisplayName == nil && p.PrimaryEmail == nil && p.SecondaryEmail == nil &&
		p.MobilePhone == nil && p.WorkPhone == nil && p.EmploymentType == nil &&
		p.EmploymentStatus == nil && p.HireDate == nil && p.TerminationDate == nil &&
		p.LastWorkingDay == nil && p.Department == nil && p.Location == nil &&
		p.BusinessRole == nil && p.IsActive == nil &&
		!p.ClearHireDate && !p.ClearTerminationDate && !p.ClearLastWorkingDay
}

// ApplyTo copies the present attributes onto identity and reports whether the
// normalized business role changed. Entitlements are not touched and the merged
// dates are not checked; see Identity.ValidateDates.
func (p *UpdateIdentityInput) ApplyTo(identity *Identity) (roleChanged bool) {
	setTrimmed(&identity.Username, p.Username)
	setTrimmed(&identity.EmployeeID, p.EmployeeID)
	setTrimmed(&identity.ExternalID, p.ExternalID)
	setTrimmed(&identity.FirstName, p.FirstName)
	setTrimmed(&identity.LastName, p.LastName)
	setTrimmed(&identity.MiddleName, p.MiddleName)
	setTrimmed(&identity.DisplayName, p.DisplayName)
	setTrimmed(&identity.MobilePhone, p.MobilePhone)
	setTrimmed(&identity.WorkPhone, p.WorkPhone)
	setTrimmed(&identity.EmploymentType, p.EmploymentType)
	setTrimmed(&identity.EmploymentStatus, p.EmploymentStatus)
	setTrimmed(&identity.Department, p.Department)
	setTrimmed(&identity.Location, p.Location)

	if p.PrimaryEmail != nil {
		identity.PrimaryEmail = NormalizeEmail(*p.PrimaryEmail)
	}
	if p.SecondaryEmail != nil {
		identity.SecondaryEmail = NormalizeEmail(*p.SecondaryEmail)
	}
	if p.HireDate != nil {
		identity.HireDate = p.HireDate
	}
	if p.TerminationDate != nil {
		identity.TerminationDate = p.TerminationDate
	}
	if p.LastWorkingDay != nil {
		identity.LastWorkingDay = p.LastWorkingDay
	}
	if p.ClearHireDate {
		identity.HireDate = nil
	}
	if p.ClearTerminationDate {
		identity.TerminationDate = nil
	}
	if p.ClearLastWorkingDay {
		identity.LastWorkingDay = nil
	}
	if p.IsActive != nil {
		identity.IsActive = *p.IsActive
	}

	if p.BusinessRole != nil {
		role := entitlementDomain.NormalizeRole(*p.BusinessRole)
		roleChanged = role != identity.BusinessRole
		identity.BusinessRole = role
	}

	actor := strings.TrimSpace(p.Actor)
	if actor == "" {
		actor = SystemActor
	}
	identity.LastModifiedBy = actor

	return roleChanged
}

// ValidateDates rejects a termination date or last working day earlier than the
// hire date. Updates call it on the merged record.
func (i *Identity) ValidateDates() error {
	check := notBefore(i.HireDate, "hire date")
	return validation.Errors{
		"termination_date": check(i.TerminationDate),
		"last_working_day": check(i.LastWorkingDay),
	}.Filter()
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func valueOr(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// notBefore rejects a date earlier than start, when both are set.
func notBefore(start *time.Time, startName string) validation.RuleFunc {
	return func(value any) error {
		date, _ := value.(*time.Time)
		if date == nil || start == nil {
			return nil
		}
		if date.Before(*start) {
			return validation.NewError("validation_date_order", "must not be before the "+startName)
		}
		return nil
	}
}
