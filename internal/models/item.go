package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrMissingFields is returned when an item lacks its id or name
var ErrMissingFields = errors.New("missing id or name")

var validate = validator.New()

// Item is the only record kept by the service. ID is the table's partition key.
type Item struct {
	ID   string `json:"id" dynamodbav:"id" db:"id" validate:"required"`
	Name string `json:"name" dynamodbav:"name" db:"name" validate:"required"`
}

// NewItem creates an item from its two fields
func NewItem(id, name string) *Item {
	return &Item{ID: id, Name: name}
}

// Validate reports ErrMissingFields if either field is empty
func (i *Item) Validate() error {
	if i == nil {
		return ErrMissingFields
	}
	if err := validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ErrMissingFields
		}
		return err
	}
	return nil
}
