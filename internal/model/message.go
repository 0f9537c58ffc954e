package model

import "errors"

// Message is a single post. PubDate is seconds since epoch, set at creation;
// messages are immutable afterwards.
type Message struct {
	ID      int64  `db:"id" json:"id"`
	Author  int64  `db:"author" json:"author"`
	Text    string `db:"text" json:"text"`
	PubDate int64  `db:"pub_date" json:"pub_date"`

	// Joined author fields for display
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
}

// PostMessageRequest is the request body for posting a message.
type PostMessageRequest struct {
	Text string `json:"text"`
}

// TimelineResponse is the ordered, size-limited message view.
type TimelineResponse struct {
	Messages []Message `json:"messages"`
}

// ProfileResponse combines a user with their messages and the viewer's
// follow relationship.
type ProfileResponse struct {
	User     *User     `json:"user"`
	Messages []Message `json:"messages"`
	Followed bool      `json:"followed"`
}

var (
	// ErrEmptyMessage is returned when posting a message with no text
	ErrEmptyMessage = errors.New("message text must not be empty")
)
