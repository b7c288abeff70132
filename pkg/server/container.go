package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"hockeystats-api/internal/adapters/storage"
	"hockeystats-api/internal/config"
	"hockeystats-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Store       storage.ItemStore
	ItemService services.ItemService

	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container. The table name
// is read from cfg here and stays fixed for the container's lifetime.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := config.NewLogger(cfg)

	store, err := storage.NewFactory(logger).Create(ctx, &storage.StorageConfig{
		Type:      cfg.Store.Type,
		TableName: cfg.Store.TableName,
		Region:    cfg.Store.Region,
		Endpoint:  cfg.Store.DynamoDBEndpoint,
		Path:      cfg.Store.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item store: %w", err)
	}

	return NewContainerWithStore(cfg, logger, store)
}

// NewContainerWithStore wires the services over an existing store
func NewContainerWithStore(cfg *config.Config, logger *logrus.Logger, store storage.ItemStore) (*Container, error) {
	serviceContainer, err := services.NewServiceContainer(store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Store:       store,
		ItemService: serviceContainer.ItemService,
		services:    serviceContainer,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}
	return nil
}
