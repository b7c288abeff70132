package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    *Item
		wantErr bool
	}{
		{name: "valid item", item: NewItem("42", "Gretzky")},
		{name: "missing id", item: NewItem("", "Gretzky"), wantErr: true},
		{name: "missing name", item: NewItem("42", ""), wantErr: true},
		{name: "both missing", item: &Item{}, wantErr: true},
		{name: "nil item", item: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingFields)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewItem(t *testing.T) {
	item := NewItem("87", "Crosby")
	assert.Equal(t, "87", item.ID)
	assert.Equal(t, "Crosby", item.Name)
}
