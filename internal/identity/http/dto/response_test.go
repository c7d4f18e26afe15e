package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
)

func TestMapIdentityToResponse(t *testing.T) {
	hire := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	identity := &identityDomain.Identity{
		ID:           1,
		EmployeeID:   "EMP-1",
		HireDate:     &hire,
		BusinessRole: "developer",
		IsActive:     true,
	}

	response := MapIdentityToResponse(identity)

	assert.Equal(t, int64(1), response.ID)
	require.NotNil(t, response.HireDate)
	assert.Equal(t, "2024-03-04", *response.HireDate)
	assert.Nil(t, response.LastWorkingDay)
	assert.Nil(t, response.Provisioning)
}

func TestMapOutputToResponse(t *testing.T) {
	output := &identityDomain.IdentityOutput{
		Identity:     &identityDomain.Identity{ID: 3},
		Provisioning: provisioningDomain.NewSkippedResult("slack"),
	}

	body, err := json.Marshal(MapOutputToResponse(output))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, map[string]any{"target": "slack", "success": true, "skipped": true}, decoded["provisioning"])
	assert.Nil(t, decoded["hire_date"])
}

func TestMapIdentitiesToListResponse(t *testing.T) {
	response := MapIdentitiesToListResponse(nil)
	assert.NotNil(t, response.Data)
	assert.Empty(t, response.Data)

	response = MapIdentitiesToListResponse([]*identityDomain.Identity{{ID: 1}, {ID: 2}})
	require.Len(t, response.Data, 2)
	assert.Equal(t, int64(2), response.Data[1].ID)
}
