package app

import (
	"context"
	"fmt"
	"log/slog"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	entitlementHTTP "github.com/allisson/iga/internal/entitlement/http"
	entitlementService "github.com/allisson/iga/internal/entitlement/service"
)

// Resolver returns the entitlement resolver backed by the configured role table.
func (c *Container) Resolver() (entitlementService.Resolver, error) {
	var err error
	c.resolverInit.Do(func() {
		c.resolver, err = c.initResolver()
		if err != nil {
			c.initErrors["resolver"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["resolver"]; exists {
		return nil, storedErr
	}
	return c.resolver, nil
}

// EntitlementHandler returns the entitlement HTTP handler.
func (c *Container) EntitlementHandler() (*entitlementHTTP.EntitlementHandler, error) {
	var err error
	c.entitlementHandlerInit.Do(func() {
		c.entitlementHandler, err = c.initEntitlementHandler()
		if err != nil {
			c.initErrors["entitlementHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entitlementHandler"]; exists {
		return nil, storedErr
	}
	return c.entitlementHandler, nil
}

// initResolver loads the role table from the configured bucket, falling back to the
// built-in table when no bucket is set.
func (c *Container) initResolver() (entitlementService.Resolver, error) {
	var (
		table *entitlementDomain.RoleTable
		err   error
	)

	if c.config.EntitlementsTableURL != "" {
		table, err = entitlementService.LoadRoleTable(
			context.Background(),
			c.config.EntitlementsTableURL,
			c.config.EntitlementsTableKey,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load role table for resolver: %w", err)
		}
		c.Logger().Info("role table loaded",
			slog.String("bucket_url", c.config.EntitlementsTableURL),
			slog.String("key", c.config.EntitlementsTableKey),
		)
	} else {
		table, err = entitlementService.BuiltinRoleTable()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in role table for resolver: %w", err)
		}
	}

	return entitlementService.NewResolver(table, c.Logger())
}

func (c *Container) initEntitlementHandler() (*entitlementHTTP.EntitlementHandler, error) {
	resolver, err := c.Resolver()
	if err != nil {
		return nil, fmt.Errorf("failed to get resolver for entitlement handler: %w", err)
	}
	return entitlementHTTP.NewEntitlementHandler(resolver, c.Logger()), nil
}
