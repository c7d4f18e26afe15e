package app

import (
	"fmt"

	identityHTTP "github.com/allisson/iga/internal/identity/http"
	identityRepository "github.com/allisson/iga/internal/identity/repository"
	identityUseCase "github.com/allisson/iga/internal/identity/usecase"
)

// IdentityRepository returns the identity repository for the configured driver.
func (c *Container) IdentityRepository() (identityUseCase.IdentityRepository, error) {
	var err error
	c.identityRepoInit.Do(func() {
		c.identityRepo, err = c.initIdentityRepository()
		if err != nil {
			c.initErrors["identityRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["identityRepo"]; exists {
		return nil, storedErr
	}
	return c.identityRepo, nil
}

// IdentityUseCase returns the identity orchestrator.
func (c *Container) IdentityUseCase() (identityUseCase.UseCase, error) {
	var err error
	c.identityUseCaseInit.Do(func() {
		c.identityUseCase, err = c.initIdentityUseCase()
		if err != nil {
			c.initErrors["identityUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["identityUseCase"]; exists {
		return nil, storedErr
	}
	return c.identityUseCase, nil
}

// IdentityHandler returns the identity HTTP handler.
func (c *Container) IdentityHandler() (*identityHTTP.IdentityHandler, error) {
	var err error
	c.identityHandlerInit.Do(func() {
		c.identityHandler, err = c.initIdentityHandler()
		if err != nil {
			c.initErrors["identityHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["identityHandler"]; exists {
		return nil, storedErr
	}
	return c.identityHandler, nil
}

func (c *Container) initIdentityRepository() (identityUseCase.IdentityRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for identity repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return identityRepository.NewPostgreSQLIdentityRepository(db), nil
	case "mysql":
		return identityRepository.NewMySQLIdentityRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initIdentityUseCase() (identityUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for identity use case: %w", err)
	}

	identityRepo, err := c.IdentityRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity repository for identity use case: %w", err)
	}

	resolver, err := c.Resolver()
	if err != nil {
		return nil, fmt.Errorf("failed to get resolver for identity use case: %w", err)
	}

	gateway, err := c.ProvisioningGateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get provisioning gateway for identity use case: %w", err)
	}

	baseUseCase := identityUseCase.NewIdentityUseCase(txManager, identityRepo, resolver, gateway, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for identity use case: %w", err)
		}
		return identityUseCase.NewIdentityUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initIdentityHandler() (*identityHTTP.IdentityHandler, error) {
	useCase, err := c.IdentityUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity use case for identity handler: %w", err)
	}
	return identityHTTP.NewIdentityHandler(useCase, c.Logger()), nil
}
