package model

import "errors"

// Entry is a note board item. The board has no update or delete paths.
type Entry struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Body  string `db:"body" json:"body"`
}

// CreateEntryRequest is the request body for adding an entry.
type CreateEntryRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var (
	ErrEmptyEntryTitle = errors.New("entry title must not be empty")
)
