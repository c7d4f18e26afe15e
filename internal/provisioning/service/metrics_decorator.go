package service

import (
	"context"
	"time"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
	"github.com/allisson/iga/internal/metrics"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
)

// gatewayWithMetrics decorates Gateway with metrics instrumentation.
type gatewayWithMetrics struct {
	next    Gateway
	metrics metrics.BusinessMetrics
}

// NewGatewayWithMetrics wraps a Gateway with metrics recording. Skipped attempts
// are recorded with status "skipped".
func NewGatewayWithMetrics(gateway Gateway, m metrics.BusinessMetrics) Gateway {
	return &gatewayWithMetrics{
		next:    gateway,
		metrics: m,
	}
}

// Provision records metrics for provisioning attempts.
func (g *gatewayWithMetrics) Provision(
	ctx context.Context,
	identity *identityDomain.Identity,
) *provisioningDomain.Result {
	start := time.Now()
	result := g.next.Provision(ctx, identity)

	status := metrics.StatusSuccess
	switch {
	case result == nil || !result.Success:
		status = metrics.StatusError
	case result.Skipped:
		status = metrics.StatusSkipped
	}

	g.metrics.RecordOperation(ctx, "provisioning", "chat_provision", status)
	g.metrics.RecordDuration(ctx, "provisioning", "chat_provision", time.Since(start), status)

	return result
}
