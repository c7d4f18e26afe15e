package service

import (
	"context"
	"log/slog"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	identityDomain "github.com/allisson/iga/internal/identity/domain"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
)

// noopGateway is used when no chat workspace is configured.
type noopGateway struct {
	logger *slog.Logger
}

// NewNoopGateway returns a gateway that reports every identity as skipped.
func NewNoopGateway(logger *slog.Logger) Gateway {
	return &noopGateway{logger: logger}
}

func (n *noopGateway) Provision(
	ctx context.Context,
	identity *identityDomain.Identity,
) *provisioningDomain.Result {
	n.logger.Debug("chat workspace not configured, skipping provisioning",
		slog.Int64("identity_id", identity.ID),
	)
	return provisioningDomain.NewSkippedResult(entitlementDomain.TargetChat)
}
