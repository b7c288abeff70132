package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"hockeystats-api/internal/adapters/storage"
	"hockeystats-api/internal/models"
)

// itemService implements the ItemService interface
type itemService struct {
	store  storage.ItemStore
	logger *logrus.Logger
}

// NewItemService creates a new item service instance
func NewItemService(store storage.ItemStore, logger *logrus.Logger) ItemService {
	if logger == nil {
		logger = logrus.New()
	}
	return &itemService{
		store:  store,
		logger: logger,
	}
}

// AddItem validates and stores an item. Store errors are returned unwrapped
// so the handler can surface the backend's own message.
func (s *itemService) AddItem(ctx context.Context, req *AddItemRequest) error {
	if req == nil {
		return NewValidationError(MsgMissingIDOrName, models.ErrMissingFields)
	}

	item := models.NewItem(req.ID, req.Name)
	if err := item.Validate(); err != nil {
		return NewValidationError(MsgMissingIDOrName, err)
	}

	if err := s.store.Put(ctx, item); err != nil {
		s.logger.WithError(err).WithField("id", item.ID).Error("Failed to add item")
		return err
	}

	s.logger.WithField("id", item.ID).Debug("Item added")
	return nil
}

// GetItem retrieves an item by ID
func (s *itemService) GetItem(ctx context.Context, id string) (*models.Item, error) {
	if id == "" {
		return nil, NewValidationError(MsgMissingID, models.ErrMissingFields)
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to fetch item")
		return nil, err
	}

	return item, nil
}
