package repository

import (
	"context"

	"minitwit/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetIDByUsername(ctx context.Context, username string) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type FollowRepository interface {
	Create(ctx context.Context, who, whom int64) (bool, error)
	Delete(ctx context.Context, who, whom int64) error
	Exists(ctx context.Context, who, whom int64) (bool, error)
	GetFolloweeIDs(ctx context.Context, who int64) ([]int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	TimelineFor(ctx context.Context, userID int64, followeeIDs []int64, limit int) ([]model.Message, error)
	PublicTimeline(ctx context.Context, limit int) ([]model.Message, error)
	ByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Message, error)
}

type EntryRepository interface {
	Create(ctx context.Context, entry *model.Entry) error
	List(ctx context.Context) ([]model.Entry, error)
}
