package storage

import (
	"context"

	"hockeystats-api/internal/models"
)

// ItemStore is the key-value adapter behind the item handler.
//
// Put is an unconditional upsert keyed by item ID. Get is a point lookup by
// primary key and returns (nil, nil) when no item exists; "not found" is
// never reported as an error.
type ItemStore interface {
	// Put writes the item, replacing any item with the same ID
	Put(ctx context.Context, item *models.Item) error

	// Get returns the item stored under id, or nil if there is none
	Get(ctx context.Context, id string) (*models.Item, error)

	// Close releases any resources held by the implementation
	Close() error
}

// StorageConfig represents configuration for item store providers
type StorageConfig struct {
	Type      string `json:"type" yaml:"type"`             // "dynamodb", "sqlite" or "memory"
	TableName string `json:"table_name" yaml:"table_name"` // resolved once at startup
	Region    string `json:"region" yaml:"region"`
	Endpoint  string `json:"endpoint" yaml:"endpoint"` // DynamoDB Local or other compatible endpoint
	Path      string `json:"path" yaml:"path"`         // SQLite database file
}
