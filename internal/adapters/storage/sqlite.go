package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"hockeystats-api/internal/database"
	"hockeystats-api/internal/models"
)

// SQLiteItemStore keeps items in a local SQLite file. It exists so the
// service can run on a laptop without AWS; the schema comes from the
// embedded migrations in the database package.
type SQLiteItemStore struct {
	conn *database.ConnectionManager
	db   *sql.DB
}

// NewSQLiteItemStore opens (and migrates) the database file at path
func NewSQLiteItemStore(path string, logger *logrus.Logger) (*SQLiteItemStore, error) {
	config := database.DefaultConnectionConfig()
	if path != "" {
		config.DatabasePath = path
	}
	if logger != nil {
		config.Logger = logger
	}

	conn := database.NewConnectionManager(config)
	if err := conn.Connect(); err != nil {
		return nil, err
	}

	return &SQLiteItemStore{conn: conn, db: conn.GetDB()}, nil
}

// Put implements ItemStore.Put
func (s *SQLiteItemStore) Put(ctx context.Context, item *models.Item) error {
	if item == nil || item.ID == "" {
		return NewStorageError("Put", "", ErrInvalidKey)
	}

	query := `
		INSERT INTO items (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`

	if _, err := s.db.ExecContext(ctx, query, item.ID, item.Name); err != nil {
		return NewStorageError("Put", item.ID, err)
	}
	return nil
}

// Get implements ItemStore.Get
func (s *SQLiteItemStore) Get(ctx context.Context, id string) (*models.Item, error) {
	if id == "" {
		return nil, NewStorageError("Get", id, ErrInvalidKey)
	}

	var item models.Item
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM items WHERE id = ?`, id).Scan(&item.ID, &item.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, NewStorageError("Get", id, err)
	}

	return &item, nil
}

// Close implements ItemStore.Close
func (s *SQLiteItemStore) Close() error {
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("failed to close sqlite store: %w", err)
	}
	return nil
}
