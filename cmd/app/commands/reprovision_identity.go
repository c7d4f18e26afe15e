package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	identityUseCase "github.com/allisson/iga/internal/identity/usecase"
)

// RunReprovisionIdentity sends the stored entitlements of an identity to the chat
// workspace again. The record is not modified. A failed attempt is printed and
// returned as an error so the process exits non-zero.
func RunReprovisionIdentity(
	ctx context.Context,
	useCase identityUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	id int64,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("reprovisioning identity", slog.Int64("identity_id", id))

	output, err := useCase.Reprovision(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to reprovision identity: %w", err)
	}

	result := output.Provisioning

	if format == "json" {
		if err := writeJSON(writer, map[string]any{
			"identity_id":   output.Identity.ID,
			"employee_id":   output.Identity.EmployeeID,
			"business_role": output.Identity.BusinessRole,
			"provisioning":  result,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Identity: %d (%s)\n", output.Identity.ID, output.Identity.EmployeeID)
		_, _ = fmt.Fprintf(writer, "Business role: %s\n", output.Identity.BusinessRole)
		if result != nil {
			_, _ = fmt.Fprintf(writer, "Target: %s\n", result.Target)
			_, _ = fmt.Fprintf(writer, "Status: %s\n", provisioningStatus(result.Success, result.Skipped))
			if result.DownstreamAccountID != "" {
				_, _ = fmt.Fprintf(writer, "Downstream account: %s\n", result.DownstreamAccountID)
			}
			if result.Error != "" {
				_, _ = fmt.Fprintf(writer, "Error: %s\n", result.Error)
			}
		}
	}

	if result != nil && !result.Success {
		return fmt.Errorf("provisioning of identity %d failed: %s", id, result.Error)
	}

	return nil
}

func provisioningStatus(success, skipped bool) string {
	switch {
	case skipped:
		return "skipped"
	case success:
		return "success"
	default:
		return "failed"
	}
}
