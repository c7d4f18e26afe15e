// Package dto provides data transfer objects for target application requests and responses.
package dto

import (
	"encoding/json"
	"time"

	targetDomain "github.com/allisson/iga/internal/target/domain"
)

// CreateTargetApplicationRequest is the body of POST /v1/target-applications.
type CreateTargetApplicationRequest struct {
	Name     string          `json:"name"`
	Protocol string          `json:"protocol"`
	AuthType string          `json:"auth_type"`
	BaseURL  string          `json:"base_url"`
	Config   json.RawMessage `json:"config"`
	IsActive *bool           `json:"is_active"`
}

// ToInput converts the request into the use case input.
func (r *CreateTargetApplicationRequest) ToInput() *targetDomain.CreateTargetApplicationInput {
	return &targetDomain.CreateTargetApplicationInput{
		Name:     r.Name,
		Protocol: r.Protocol,
		AuthType: r.AuthType,
		BaseURL:  r.BaseURL,
		Config:   r.Config,
		IsActive: r.IsActive,
	}
}

// TargetApplicationResponse represents a target application in API responses.
type TargetApplicationResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Protocol  string          `json:"protocol"`
	AuthType  string          `json:"auth_type"`
	BaseURL   string          `json:"base_url"`
	Config    json.RawMessage `json:"config"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListTargetApplicationsResponse represents a paginated list of target applications.
type ListTargetApplicationsResponse struct {
	Data []TargetApplicationResponse `json:"data"`
}

// MapTargetApplicationToResponse converts a domain target application to an API response.
func MapTargetApplicationToResponse(app *targetDomain.TargetApplication) TargetApplicationResponse {
	config := app.Config
	if len(config) == 0 {
		config = json.RawMessage(`{}`)
	}
	return TargetApplicationResponse{
		ID:        app.ID,
		Name:      app.Name,
		Protocol:  app.Protocol,
		AuthType:  app.AuthType,
		BaseURL:   app.BaseURL,
		Config:    config,
		IsActive:  app.IsActive,
		CreatedAt: app.CreatedAt,
	}
}

// MapTargetApplicationsToListResponse converts domain target applications to a list response.
func MapTargetApplicationsToListResponse(apps []*targetDomain.TargetApplication) ListTargetApplicationsResponse {
	data := make([]TargetApplicationResponse, 0, len(apps))
	for _, app := range apps {
		data = append(data, MapTargetApplicationToResponse(app))
	}
	return ListTargetApplicationsResponse{Data: data}
}
