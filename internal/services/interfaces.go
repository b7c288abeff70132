package services

import (
	"context"

	"hockeystats-api/internal/models"
)

// ItemService defines the business operations behind the add and fetch routes
type ItemService interface {
	// AddItem validates the request and upserts the item
	AddItem(ctx context.Context, req *AddItemRequest) error

	// GetItem returns the item with the given id, or nil if it does not exist
	GetItem(ctx context.Context, id string) (*models.Item, error)
}

// AddItemRequest carries the add operation's input, from either the query
// string or a JSON body
type AddItemRequest struct {
	ID   string `json:"id" form:"id"`
	Name string `json:"name" form:"name"`
}
