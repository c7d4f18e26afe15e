// Package service implements the provisioning gateway that pushes an identity's
// resolved entitlements to the chat workspace.
package service

import (
	"context"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
)

// Gateway provisions an identity into one downstream target system.
//
// Provision never returns an error. Transport failures, timeouts and rejected
// requests are reported through Result.Success and Result.Error so that a
// provisioning failure can never undo a committed identity write.
type Gateway interface {
	Provision(ctx context.Context, identity *identityDomain.Identity) *provisioningDomain.Result
}
