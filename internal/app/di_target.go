package app

import (
	"fmt"

	targetHTTP "github.com/allisson/iga/internal/target/http"
	targetRepository "github.com/allisson/iga/internal/target/repository"
	targetUseCase "github.com/allisson/iga/internal/target/usecase"
)

// TargetApplicationRepository returns the target application repository for the configured driver.
func (c *Container) TargetApplicationRepository() (targetUseCase.TargetApplicationRepository, error) {
	var err error
	c.targetRepoInit.Do(func() {
		c.targetRepo, err = c.initTargetApplicationRepository()
		if err != nil {
			c.initErrors["targetRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["targetRepo"]; exists {
		return nil, storedErr
	}
	return c.targetRepo, nil
}

// TargetApplicationUseCase returns the target application use case.
func (c *Container) TargetApplicationUseCase() (targetUseCase.UseCase, error) {
	var err error
	c.targetUseCaseInit.Do(func() {
		c.targetUseCase, err = c.initTargetApplicationUseCase()
		if err != nil {
			c.initErrors["targetUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["targetUseCase"]; exists {
		return nil, storedErr
	}
	return c.targetUseCase, nil
}

// TargetApplicationHandler returns the target application HTTP handler.
func (c *Container) TargetApplicationHandler() (*targetHTTP.TargetApplicationHandler, error) {
	var err error
	c.targetHandlerInit.Do(func() {
		c.targetHandler, err = c.initTargetApplicationHandler()
		if err != nil {
			c.initErrors["targetHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["targetHandler"]; exists {
		return nil, storedErr
	}
	return c.targetHandler, nil
}

func (c *Container) initTargetApplicationRepository() (targetUseCase.TargetApplicationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for target application repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return targetRepository.NewPostgreSQLTargetApplicationRepository(db), nil
	case "mysql":
		return targetRepository.NewMySQLTargetApplicationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initTargetApplicationUseCase() (targetUseCase.UseCase, error) {
	repo, err := c.TargetApplicationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get target application repository for target application use case: %w", err)
	}

	baseUseCase := targetUseCase.NewTargetApplicationUseCase(repo, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for target application use case: %w", err)
		}
		return targetUseCase.NewTargetApplicationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initTargetApplicationHandler() (*targetHTTP.TargetApplicationHandler, error) {
	useCase, err := c.TargetApplicationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get target application use case for target application handler: %w", err)
	}
	return targetHTTP.NewTargetApplicationHandler(useCase, c.Logger()), nil
}
