// Package mocks provides mock implementations of the provisioning service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
)

// MockGateway is a mock implementation of service.Gateway.
type MockGateway struct {
	mock.Mock
}

// Provision mocks the Provision method of Gateway.
func (m *MockGateway) Provision(
	ctx context.Context,
	identity *identityDomain.Identity,
) *provisioningDomain.Result {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*provisioningDomain.Result)
}
