// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"bytes"
	"encoding/json"
	"time"

	validation "github.com/jellydator/validation"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
	customValidation "github.com/allisson/iga/internal/validation"
)

// CreateIdentityRequest is the body of POST /v1/identities. Dates use YYYY-MM-DD.
type CreateIdentityRequest struct {
	Username         string `json:"username"`
	EmployeeID       string `json:"employee_id"`
	ExternalID       string `json:"external_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	MiddleName       string `json:"middle_name"`
	DisplayName      string `json:"display_name"`
	PrimaryEmail     string `json:"primary_email"`
	SecondaryEmail   string `json:"secondary_email"`
	MobilePhone      string `json:"mobile_phone"`
	WorkPhone        string `json:"work_phone"`
	EmploymentType   string `json:"employment_type"`
	EmploymentStatus string `json:"employment_status"`
	HireDate         string `json:"hire_date"`
	TerminationDate  string `json:"termination_date"`
	LastWorkingDay   string `json:"last_working_day"`
	Department       string `json:"department"`
	Location         string `json:"location"`
	BusinessRole     string `json:"business_role"`
	IsActive         *bool  `json:"is_active"`
}

// Validate checks the date formats. Attribute rules are enforced by the use case.
func (r *CreateIdentityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.HireDate, customValidation.Date),
		validation.Field(&r.TerminationDate, customValidation.Date),
		validation.Field(&r.LastWorkingDay, customValidation.Date),
	)
}

// ToInput converts the request into the use case input. Call Validate first.
func (r *CreateIdentityRequest) ToInput(actor string) *identityDomain.CreateIdentityInput {
	return &identityDomain.CreateIdentityInput{
		Username:         r.Username,
		EmployeeID:       r.EmployeeID,
		ExternalID:       r.ExternalID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		MiddleName:       r.MiddleName,
		DisplayName:      r.DisplayName,
		PrimaryEmail:     r.PrimaryEmail,
		SecondaryEmail:   r.SecondaryEmail,
		MobilePhone:      r.MobilePhone,
		WorkPhone:        r.WorkPhone,
		EmploymentType:   r.EmploymentType,
		EmploymentStatus: r.EmploymentStatus,
		HireDate:         parseDate(r.HireDate),
		TerminationDate:  parseDate(r.TerminationDate),
		LastWorkingDay:   parseDate(r.LastWorkingDay),
		Department:       r.Department,
		Location:         r.Location,
		BusinessRole:     r.BusinessRole,
		IsActive:         r.IsActive,
		Actor:            actor,
	}
}

// OptionalDate is a patch date that tells an omitted key apart from an explicit
// null. A present null clears the stored date.
type OptionalDate struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the key was present.
func (d *OptionalDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	d.Value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	d.Value = &value
	return nil
}

// MarshalJSON writes the date or null.
func (d OptionalDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value)
}

// Date returns a date to set. Call Validate first.
func (d OptionalDate) Date() *time.Time {
	if d.Value == nil {
		return nil
	}
	return parseDate(*d.Value)
}

// Clear reports whether the request removes the stored date.
func (d OptionalDate) Clear() bool {
	return d.Set && d.Value == nil
}

// SetDate returns a present date value.
func SetDate(value string) OptionalDate {
	return OptionalDate{Set: true, Value: &value}
}

// ClearDate returns an explicit null.
func ClearDate() OptionalDate {
	return OptionalDate{Set: true}
}

// validateOptionalDate requires a well formed date when one is given.
func validateOptionalDate(value any) error {
	d, _ := value.(OptionalDate)
	if d.Value == nil {
		return nil
	}
	return validation.Validate(*d.Value, validation.Required, customValidation.Date)
}

// UpdateIdentityRequest is the body of PUT and PATCH /v1/identities/:id.
// Omitted attributes are left unchanged. A null date clears it.
type UpdateIdentityRequest struct {
	Username         *string      `json:"username"`
	EmployeeID       *string      `json:"employee_id"`
	ExternalID       *string      `json:"external_id"`
	FirstName        *string      `json:"first_name"`
	LastName         *string      `json:"last_name"`
	MiddleName       *string      `json:"middle_name"`
	DisplayName      *string      `json:"display_name"`
	PrimaryEmail     *string      `json:"primary_email"`
	SecondaryEmail   *string      `json:"secondary_email"`
	MobilePhone      *string      `json:"mobile_phone"`
	WorkPhone        *string      `json:"work_phone"`
	EmploymentType   *string      `json:"employment_type"`
	EmploymentStatus *string      `json:"employment_status"`
	HireDate         OptionalDate `json:"hire_date"`
	TerminationDate  OptionalDate `json:"termination_date"`
	LastWorkingDay   OptionalDate `json:"last_working_day"`
	Department       *string      `json:"department"`
	Location         *string      `json:"location"`
	BusinessRole     *string      `json:"business_role"`
	IsActive         *bool        `json:"is_active"`
}

// Validate checks the date formats of the present dates.
func (r *UpdateIdentityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.HireDate, validation.By(validateOptionalDate)),
		validation.Field(&r.TerminationDate, validation.By(validateOptionalDate)),
		validation.Field(&r.LastWorkingDay, validation.By(validateOptionalDate)),
	)
}

// ToInput converts the request into the use case input. Call Validate first.
func (r *UpdateIdentityRequest) ToInput(actor string) *identityDomain.UpdateIdentityInput {
	return &identityDomain.UpdateIdentityInput{
		Username:             r.Username,
		EmployeeID:           r.EmployeeID,
		ExternalID:           r.ExternalID,
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		MiddleName:           r.MiddleName,
		DisplayName:          r.DisplayName,
		PrimaryEmail:         r.PrimaryEmail,
		SecondaryEmail:       r.SecondaryEmail,
		MobilePhone:          r.MobilePhone,
		WorkPhone:            r.WorkPhone,
		EmploymentType:       r.EmploymentType,
		EmploymentStatus:     r.EmploymentStatus,
		Department:           r.Department,
		Location:             r.Location,
		BusinessRole:         r.BusinessRole,
		IsActive:             r.IsActive,
		HireDate:             r.HireDate.Date(),
		TerminationDate:      r.TerminationDate.Date(),
		LastWorkingDay:       r.LastWorkingDay.Date(),
		ClearHireDate:        r.HireDate.Clear(),
		ClearTerminationDate: r.TerminationDate.Clear(),
		ClearLastWorkingDay:  r.LastWorkingDay.Clear(),
		Actor:                actor,
	}
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(customValidation.DateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}
