package app

import (
	"context"
	"fmt"

	provisioningService "github.com/allisson/iga/internal/provisioning/service"
)

// ProvisioningGateway returns the gateway that pushes identities to the chat workspace.
func (c *Container) ProvisioningGateway() (provisioningService.Gateway, error) {
	var err error
	c.gatewayInit.Do(func() {
		c.gateway, err = c.initProvisioningGateway()
		if err != nil {
			c.initErrors["gateway"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["gateway"]; exists {
		return nil, storedErr
	}
	return c.gateway, nil
}

func (c *Container) initProvisioningGateway() (provisioningService.Gateway, error) {
	token, err := provisioningService.DecryptToken(
		context.Background(),
		c.config.ProvisioningChatTokenKeeperURI,
		c.config.ProvisioningChatToken,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token for provisioning gateway: %w", err)
	}

	gateway := provisioningService.NewChatGateway(provisioningService.ChatGatewayConfig{
		BaseURL: c.config.ProvisioningChatBaseURL,
		Token:   token,
		Timeout: c.config.ProvisioningTimeout,
	}, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for provisioning gateway: %w", err)
		}
		return provisioningService.NewGatewayWithMetrics(gateway, businessMetrics), nil
	}

	return gateway, nil
}
