package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"minitwit/internal/model"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts a follow edge. Returns false when the edge already existed;
// the caller decides whether that is an error.
func (r *followRepository) Create(ctx context.Context, who, whom int64) (bool, error) {
	query := `
		INSERT INTO followers (who, whom)
		VALUES ($1, $2)
		ON CONFLICT (who, whom) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, who, whom)
	if err != nil {
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Delete removes a follow edge. A missing edge is reported as
// model.ErrNotFollowing rather than failing hard.
func (r *followRepository) Delete(ctx context.Context, who, whom int64) error {
	query := `DELETE FROM followers WHERE who = $1 AND whom = $2`
	result, err := r.db.ExecContext(ctx, query, who, whom)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotFollowing
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, who, whom int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM followers WHERE who = $1 AND whom = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, who, whom)
	if err != nil {
		return false, fmt.Errorf("failed to check follow existence: %w", err)
	}
	return exists, nil
}

// GetFolloweeIDs returns every whom the given user follows.
func (r *followRepository) GetFolloweeIDs(ctx context.Context, who int64) ([]int64, error) {
	query := `SELECT whom FROM followers WHERE who = $1`
	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, who)
	if err != nil {
		return nil, fmt.Errorf("failed to get followee ids: %w", err)
	}
	return ids, nil
}
