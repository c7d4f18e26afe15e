package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTargetApplicationInput_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		input := &CreateTargetApplicationInput{
			Name:     "slack",
			Protocol: "REST",
			AuthType: "OAuth",
			BaseURL:  "https://slack.com/api",
			Config:   json.RawMessage(`{"workspace":"acme"}`),
		}
		assert.NoError(t, input.Validate())
	})

	t.Run("Success_MinimalInput", func(t *testing.T) {
		assert.NoError(t, (&CreateTargetApplicationInput{Name: "github"}).Validate())
	})

	tests := []struct {
		name  string
		input *CreateTargetApplicationInput
		field string
	}{
		{"missing name", &CreateTargetApplicationInput{}, "name"},
		{"blank name", &CreateTargetApplicationInput{Name: "  "}, "name"},
		{"relative base url", &CreateTargetApplicationInput{Name: "jira", BaseURL: "jira/rest"}, "base_url"},
		{"config array", &CreateTargetApplicationInput{Name: "jira", Config: json.RawMessage(`[1,2]`)}, "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCreateTargetApplicationInput_NewTargetApplication(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		app := (&CreateTargetApplicationInput{Name: " slack "}).NewTargetApplication()

		assert.Equal(t, "slack", app.Name)
		assert.JSONEq(t, `{}`, string(app.Config))
		assert.True(t, app.IsActive)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		inactive := false
		app := (&CreateTargetApplicationInput{
			Name:     "github",
			Protocol: "SCIM",
			Config:   json.RawMessage(`{"org":"acme"}`),
			IsActive: &inactive,
		}).NewTargetApplication()

		assert.Equal(t, "SCIM", app.Protocol)
		assert.JSONEq(t, `{"org":"acme"}`, string(app.Config))
		assert.False(t, app.IsActive)
	})
}
