package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"minitwit/internal/model"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new message. The caller sets Author, Text and PubDate;
// the generated id is written back.
func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	query := `
		INSERT INTO messages (author, text, pub_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, msg.Author, msg.Text, msg.PubDate).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// TimelineFor returns the newest messages authored by the user or by anyone
// in followeeIDs, joined with the author for display. Ordering is newest
// first with id as a tiebreaker so paging stays deterministic.
func (r *messageRepository) TimelineFor(ctx context.Context, userID int64, followeeIDs []int64, limit int) ([]model.Message, error) {
	query := `
		SELECT m.id, m.author, m.text, m.pub_date, u.username, u.email
		FROM messages m
		JOIN users u ON u.id = m.author
		WHERE m.author = $1 OR m.author = ANY($2)
		ORDER BY m.pub_date DESC, m.id DESC
		LIMIT $3
	`

	var messages []model.Message
	err := r.db.SelectContext(ctx, &messages, query, userID, pq.Array(followeeIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}

	return messages, nil
}

// PublicTimeline returns the newest messages across all users.
func (r *messageRepository) PublicTimeline(ctx context.Context, limit int) ([]model.Message, error) {
	query := `
		SELECT m.id, m.author, m.text, m.pub_date, u.username, u.email
		FROM messages m
		JOIN users u ON u.id = m.author
		ORDER BY m.pub_date DESC, m.id DESC
		LIMIT $1
	`

	var messages []model.Message
	err := r.db.SelectContext(ctx, &messages, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get public timeline: %w", err)
	}

	return messages, nil
}

// ByAuthor returns the newest messages of a single user.
func (r *messageRepository) ByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Message, error) {
	query := `
		SELECT m.id, m.author, m.text, m.pub_date, u.username, u.email
		FROM messages m
		JOIN users u ON u.id = m.author
		WHERE m.author = $1
		ORDER BY m.pub_date DESC, m.id DESC
		LIMIT $2
	`

	var messages []model.Message
	err := r.db.SelectContext(ctx, &messages, query, authorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages by author: %w", err)
	}

	return messages, nil
}
