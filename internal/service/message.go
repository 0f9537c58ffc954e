package service

import (
	"context"
	"strings"
	"time"

	"minitwit/internal/model"
	"minitwit/internal/repository"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	followRepo  repository.FollowRepository
	perPage     int

	// now is swappable for tests
	now func() time.Time
}

func NewMessageService(messageRepo repository.MessageRepository, followRepo repository.FollowRepository, perPage int) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		followRepo:  followRepo,
		perPage:     perPage,
		now:         time.Now,
	}
}

// Post records a new message for the author, stamped with the current epoch
// second. Messages are immutable once created.
func (s *MessageService) Post(ctx context.Context, authorID int64, text string) (*model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.ErrEmptyMessage
	}

	msg := &model.Message{
		Author:  authorID,
		Text:    text,
		PubDate: s.now().Unix(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// TimelineFor returns the user's own messages plus those of everyone they
// follow, newest first, capped at one page.
func (s *MessageService) TimelineFor(ctx context.Context, userID int64) ([]model.Message, error) {
	followeeIDs, err := s.followRepo.GetFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.messageRepo.TimelineFor(ctx, userID, followeeIDs, s.perPage)
}

// PublicTimeline returns the newest messages across all users, capped at one
// page.
func (s *MessageService) PublicTimeline(ctx context.Context) ([]model.Message, error) {
	return s.messageRepo.PublicTimeline(ctx, s.perPage)
}

// UserTimeline returns a single user's newest messages, capped at one page.
func (s *MessageService) UserTimeline(ctx context.Context, authorID int64) ([]model.Message, error) {
	return s.messageRepo.ByAuthor(ctx, authorID, s.perPage)
}
