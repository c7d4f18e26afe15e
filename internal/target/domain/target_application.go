// Package domain defines the target applications identities can be provisioned to.
// They are reference data: entitlement resolution does not read them.
package domain

import (
	"encoding/json"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/iga/internal/errors"
	customValidation "github.com/allisson/iga/internal/validation"
)

// TargetApplication describes a downstream system and how it is reached.
type TargetApplication struct {
	ID        int64
	Name      string
	Protocol  string
	AuthType  string
	BaseURL   string
	Config    json.RawMessage
	IsActive  bool
	CreatedAt time.Time
}

// CreateTargetApplicationInput carries the attributes of a new target application.
type CreateTargetApplicationInput struct {
	Name     string          `json:"name"`
	Protocol string          `json:"protocol"`
	AuthType string          `json:"auth_type"`
	BaseURL  string          `json:"base_url"`
	Config   json.RawMessage `json:"config"`
	IsActive *bool           `json:"is_active"`
}

// Validate checks required attributes and formats.
func (i *CreateTargetApplicationInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&i.Protocol, validation.Length(0, 50)),
		validation.Field(&i.AuthType, validation.Length(0, 50)),
		validation.Field(&i.BaseURL, customValidation.HTTPURL),
		validation.Field(&i.Config, validation.By(jsonObject)),
	)
}

// NewTargetApplication builds the record to persist. Config defaults to an empty object.
func (i *CreateTargetApplicationInput) NewTargetApplication() *TargetApplication {
	isActive := true
	if i.IsActive != nil {
		isActive = *i.IsActive
	}
	config := i.Config
	if len(config) == 0 || string(config) == "null" {
		config = json.RawMessage(`{}`)
	}

	return &TargetApplication{
		Name:     strings.TrimSpace(i.Name),
		Protocol: strings.TrimSpace(i.Protocol),
		AuthType: strings.TrimSpace(i.AuthType),
		BaseURL:  strings.TrimSpace(i.BaseURL),
		Config:   config,
		IsActive: isActive,
	}
}

func jsonObject(value any) error {
	raw, _ := value.(json.RawMessage)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return validation.NewError("validation_json_object", "must be a JSON object")
	}
	return nil
}

var (
	// ErrTargetApplicationNotFound indicates no target application exists with the requested name.
	ErrTargetApplicationNotFound = apperrors.Wrap(apperrors.ErrNotFound, "target application not found")

	// ErrTargetApplicationAlreadyExists indicates the name is taken.
	ErrTargetApplicationAlreadyExists = apperrors.Wrap(
		apperrors.ErrConflict,
		"target application with this name already exists",
	)
)
