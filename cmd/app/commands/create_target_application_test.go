package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	targetDomain "github.com/allisson/iga/internal/target/domain"
	targetMocks "github.com/allisson/iga/internal/target/usecase/mocks"
)

func TestRunCreateTargetApplication(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	active := true

	created := &targetDomain.TargetApplication{
		ID:       3,
		Name:     "slack",
		Protocol: "REST",
		AuthType: "OAuth",
		BaseURL:  "https://slack.com/api",
		Config:   json.RawMessage(`{"workspace":"acme"}`),
		IsActive: true,
	}

	t.Run("text", func(t *testing.T) {
		useCase := &targetMocks.MockUseCase{}
		input := &targetDomain.CreateTargetApplicationInput{
			Name:     "slack",
			Protocol: "REST",
			AuthType: "OAuth",
			BaseURL:  "https://slack.com/api",
			Config:   json.RawMessage(`{"workspace":"acme"}`),
			IsActive: &active,
		}
		useCase.On("Create", ctx, input).Return(created, nil).Once()

		var out bytes.Buffer
		err := RunCreateTargetApplication(ctx, useCase, logger, &out,
			"slack", "REST", "OAuth", "https://slack.com/api", `{"workspace":"acme"}`, true, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "ID: 3\n")
		assert.Contains(t, out.String(), "Name: slack\n")
		useCase.AssertExpectations(t)
	})

	t.Run("json-without-config", func(t *testing.T) {
		useCase := &targetMocks.MockUseCase{}
		useCase.On("Create", ctx, mock.MatchedBy(func(input *targetDomain.CreateTargetApplicationInput) bool {
			return input.Name == "slack" && input.Config == nil
		})).Return(created, nil).Once()

		var out bytes.Buffer
		err := RunCreateTargetApplication(ctx, useCase, logger, &out, "slack", "", "", "", "", true, "json")

		require.NoError(t, err)
		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, float64(3), result["id"])
		assert.Equal(t, map[string]any{"workspace": "acme"}, result["config"])
		useCase.AssertExpectations(t)
	})

	t.Run("invalid-config-json", func(t *testing.T) {
		useCase := &targetMocks.MockUseCase{}

		err := RunCreateTargetApplication(ctx, useCase, logger, &bytes.Buffer{}, "slack", "", "", "", "{", true, "text")

		assert.ErrorContains(t, err, "failed to parse config JSON")
		useCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("already-exists", func(t *testing.T) {
		useCase := &targetMocks.MockUseCase{}
		useCase.On("Create", ctx, mock.Anything).Return(nil, targetDomain.ErrTargetApplicationAlreadyExists).Once()

		err := RunCreateTargetApplication(ctx, useCase, logger, &bytes.Buffer{}, "slack", "", "", "", "", true, "text")

		assert.ErrorIs(t, err, targetDomain.ErrTargetApplicationAlreadyExists)
	})
}
