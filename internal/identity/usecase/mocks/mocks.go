// Package mocks provides mock implementations of the identity use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
)

// MockIdentityRepository is a mock implementation of usecase.IdentityRepository.
type MockIdentityRepository struct {
	mock.Mock
}

// Create mocks the Create method of IdentityRepository.
func (m *MockIdentityRepository) Create(ctx context.Context, identity *identityDomain.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

// GetByID mocks the GetByID method of IdentityRepository.
func (m *MockIdentityRepository) GetByID(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.Identity), args.Error(1)
}

// GetByIDForUpdate mocks the GetByIDForUpdate method of IdentityRepository.
func (m *MockIdentityRepository) GetByIDForUpdate(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.Identity), args.Error(1)
}

// ListByBusinessRole mocks the ListByBusinessRole method of IdentityRepository.
func (m *MockIdentityRepository) ListByBusinessRole(
	ctx context.Context,
	businessRole string,
	offset, limit int,
) ([]*identityDomain.Identity, error) {
	args := m.Called(ctx, businessRole, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identityDomain.Identity), args.Error(1)
}

// Update mocks the Update method of IdentityRepository.
func (m *MockIdentityRepository) Update(ctx context.Context, identity *identityDomain.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// Create mocks the Create method of UseCase.
func (m *MockUseCase) Create(
	ctx context.Context,
	input *identityDomain.CreateIdentityInput,
) (*identityDomain.IdentityOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.IdentityOutput), args.Error(1)
}

// Get mocks the Get method of UseCase.
func (m *MockUseCase) Get(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.Identity), args.Error(1)
}

// ListByRole mocks the ListByRole method of UseCase.
func (m *MockUseCase) ListByRole(
	ctx context.Context,
	businessRole string,
	offset, limit int,
) ([]*identityDomain.Identity, error) {
	args := m.Called(ctx, businessRole, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identityDomain.Identity), args.Error(1)
}

// Update mocks the Update method of UseCase.
func (m *MockUseCase) Update(
	ctx context.Context,
	id int64,
	input *identityDomain.UpdateIdentityInput,
) (*identityDomain.IdentityOutput, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.IdentityOutput), args.Error(1)
}

// Reprovision mocks the Reprovision method of UseCase.
func (m *MockUseCase) Reprovision(ctx context.Context, id int64) (*identityDomain.IdentityOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.IdentityOutput), args.Error(1)
}
