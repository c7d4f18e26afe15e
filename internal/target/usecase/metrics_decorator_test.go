package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	targetDomain "github.com/allisson/iga/internal/target/domain"
	targetMocks "github.com/allisson/iga/internal/target/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestTargetApplicationMetricsDecorator(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		operation string
		err       error
		status    string
		call      func(UseCase) error
		setup     func(*targetMocks.MockUseCase, error)
	}{
		{
			name:      "Create_Success",
			operation: "target_application_create",
			status:    "success",
			setup: func(m *targetMocks.MockUseCase, err error) {
				m.On("Create", ctx, mock.Anything).Return(&targetDomain.TargetApplication{ID: 1}, err).Once()
			},
			call: func(u UseCase) error {
				_, err := u.Create(ctx, &targetDomain.CreateTargetApplicationInput{Name: "slack"})
				return err
			},
		},
		{
			name:      "GetByName_Error",
			operation: "target_application_get",
			err:       targetDomain.ErrTargetApplicationNotFound,
			status:    "error",
			setup: func(m *targetMocks.MockUseCase, err error) {
				m.On("GetByName", ctx, "jira").Return(nil, err).Once()
			},
			call: func(u UseCase) error {
				_, err := u.GetByName(ctx, "jira")
				return err
			},
		},
		{
			name:      "List_Error",
			operation: "target_application_list",
			err:       errors.New("db down"),
			status:    "error",
			setup: func(m *targetMocks.MockUseCase, err error) {
				m.On("List", ctx, 0, 10).Return(nil, err).Once()
			},
			call: func(u UseCase) error {
				_, err := u.List(ctx, 0, 10)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &targetMocks.MockUseCase{}
			m := &mockBusinessMetrics{}
			tt.setup(next, tt.err)
			m.On("RecordOperation", ctx, "target", tt.operation, tt.status).Return().Once()
			m.On("RecordDuration", ctx, "target", tt.operation, mock.AnythingOfType("time.Duration"), tt.status).
				Return().
				Once()

			err := tt.call(NewTargetApplicationUseCaseWithMetrics(next, m))
			if tt.err != nil {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			next.AssertExpectations(t)
			m.AssertExpectations(t)
		})
	}
}
