package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"hockeystats-api/internal/adapters/storage"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	ItemService ItemService

	store storage.ItemStore
}

// NewServiceContainer creates a new service container over the given store
func NewServiceContainer(store storage.ItemStore, logger *logrus.Logger) (*ServiceContainer, error) {
	if store == nil {
		return nil, fmt.Errorf("item store cannot be nil")
	}

	return &ServiceContainer{
		ItemService: NewItemService(store, logger),
		store:       store,
	}, nil
}

// Close releases the underlying store
func (c *ServiceContainer) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
