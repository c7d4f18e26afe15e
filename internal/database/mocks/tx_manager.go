// Package mocks provides mock implementations of the database package interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock implementation of database.TxManager.
// By default WithTx runs fn with the given context and returns fn's error,
// which is what most use case tests want. Tests asserting on the call
// register an expectation with On("WithTx", ...).
type MockTxManager struct {
	mock.Mock
	// Passthrough runs fn without consulting expectations.
	Passthrough bool
}

// NewMockTxManager returns a passthrough MockTxManager.
func NewMockTxManager() *MockTxManager {
	return &MockTxManager{Passthrough: true}
}

// WithTx mocks the WithTx method of TxManager.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.Passthrough {
		return fn(ctx)
	}
	args := m.Called(ctx, fn)
	return args.Error(0)
}
