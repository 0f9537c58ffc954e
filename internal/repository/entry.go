package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"minitwit/internal/model"
)

type entryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *model.Entry) error {
	query := `
		INSERT INTO entries (title, body)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, entry.Title, entry.Body).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	return nil
}

// List returns all entries, newest first.
func (r *entryRepository) List(ctx context.Context) ([]model.Entry, error) {
	query := `SELECT id, title, body FROM entries ORDER BY id DESC`

	var entries []model.Entry
	err := r.db.SelectContext(ctx, &entries, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}
