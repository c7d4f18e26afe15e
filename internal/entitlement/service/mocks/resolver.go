// Package mocks provides mock implementations of the entitlement service interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
)

// MockResolver is a mock implementation of service.Resolver.
type MockResolver struct {
	mock.Mock
}

// Resolve mocks the Resolve method of Resolver.
func (m *MockResolver) Resolve(businessRole string) (*entitlementDomain.Document, error) {
	args := m.Called(businessRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entitlementDomain.Document), args.Error(1)
}

// IsKnown mocks the IsKnown method of Resolver.
func (m *MockResolver) IsKnown(businessRole string) bool {
	args := m.Called(businessRole)
	return args.Bool(0)
}

// Roles mocks the Roles method of Resolver.
func (m *MockResolver) Roles() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
