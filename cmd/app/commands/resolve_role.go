package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	entitlementService "github.com/allisson/iga/internal/entitlement/service"
)

// RunResolveRole prints the entitlement document a business role resolves to, using
// the same role table the server loads. Unknown roles print the default document.
func RunResolveRole(
	resolver entitlementService.Resolver,
	logger *slog.Logger,
	writer io.Writer,
	businessRole string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	doc, err := resolver.Resolve(businessRole)
	if err != nil {
		return fmt.Errorf("failed to resolve business role: %w", err)
	}

	role := entitlementDomain.NormalizeRole(businessRole)
	known := resolver.IsKnown(businessRole)

	logger.Debug("business role resolved", slog.String("business_role", role), slog.Bool("known", known))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"business_role": role,
			"known":         known,
			"entitlements":  doc,
		})
	}

	_, _ = fmt.Fprintf(writer, "Business role: %s\n", role)
	if !known {
		_, _ = fmt.Fprintln(writer, "Role not in table, default entitlements apply")
	}
	for _, target := range doc.TargetNames() {
		grant, _ := doc.Grant(target)
		_, _ = fmt.Fprintf(writer, "%s channels: %s\n", target, strings.Join(grant.Channels, ", "))
	}
	_, _ = fmt.Fprintf(writer, "Permissions: %s\n", strings.Join(doc.Permissions, ", "))

	return nil
}
