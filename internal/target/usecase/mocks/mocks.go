// Package mocks provides mock implementations for the target application use case and repository.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	targetDomain "github.com/allisson/iga/internal/target/domain"
)

// MockTargetApplicationRepository is a mock implementation of usecase.TargetApplicationRepository.
type MockTargetApplicationRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockTargetApplicationRepository) Create(ctx context.Context, app *targetDomain.TargetApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

// GetByName mocks the GetByName method.
func (m *MockTargetApplicationRepository) GetByName(
	ctx context.Context,
	name string,
) (*targetDomain.TargetApplication, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*targetDomain.TargetApplication), args.Error(1)
}

// List mocks the List method.
func (m *MockTargetApplicationRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*targetDomain.TargetApplication, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*targetDomain.TargetApplication), args.Error(1)
}

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockUseCase) Create(
	ctx context.Context,
	input *targetDomain.CreateTargetApplicationInput,
) (*targetDomain.TargetApplication, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*targetDomain.TargetApplication), args.Error(1)
}

// GetByName mocks the GetByName method.
func (m *MockUseCase) GetByName(ctx context.Context, name string) (*targetDomain.TargetApplication, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*targetDomain.TargetApplication), args.Error(1)
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context, offset, limit int) ([]*targetDomain.TargetApplication, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*targetDomain.TargetApplication), args.Error(1)
}
