package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	targetDomain "github.com/allisson/iga/internal/target/domain"
	targetUseCase "github.com/allisson/iga/internal/target/usecase"
)

// RunCreateTargetApplication registers a downstream system in the catalogue.
// configJSON may be empty, otherwise it must be a JSON object.
func RunCreateTargetApplication(
	ctx context.Context,
	useCase targetUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	name, protocol, authType, baseURL, configJSON string,
	isActive bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	input := &targetDomain.CreateTargetApplicationInput{
		Name:     name,
		Protocol: protocol,
		AuthType: authType,
		BaseURL:  baseURL,
		IsActive: &isActive,
	}
	if configJSON != "" {
		if !json.Valid([]byte(configJSON)) {
			return fmt.Errorf("failed to parse config JSON: invalid JSON")
		}
		input.Config = json.RawMessage(configJSON)
	}

	app, err := useCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create target application: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]any{
			"id":        app.ID,
			"name":      app.Name,
			"protocol":  app.Protocol,
			"auth_type": app.AuthType,
			"base_url":  app.BaseURL,
			"config":    app.Config,
			"is_active": app.IsActive,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(writer, "Target application created successfully!")
		_, _ = fmt.Fprintf(writer, "ID: %d\n", app.ID)
		_, _ = fmt.Fprintf(writer, "Name: %s\n", app.Name)
		_, _ = fmt.Fprintf(writer, "Active: %t\n", app.IsActive)
	}

	logger.Info("target application created",
		slog.Int64("target_application_id", app.ID),
		slog.String("name", app.Name),
	)

	return nil
}
