package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"minitwit/internal/model"
)

type mockMessageRepository struct {
	createFn         func(ctx context.Context, msg *model.Message) error
	timelineForFn    func(ctx context.Context, userID int64, followeeIDs []int64, limit int) ([]model.Message, error)
	publicTimelineFn func(ctx context.Context, limit int) ([]model.Message, error)
	byAuthorFn       func(ctx context.Context, authorID int64, limit int) ([]model.Message, error)
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	if m.createFn != nil {
		return m.createFn(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) TimelineFor(ctx context.Context, userID int64, followeeIDs []int64, limit int) ([]model.Message, error) {
	if m.timelineForFn != nil {
		return m.timelineForFn(ctx, userID, followeeIDs, limit)
	}
	return nil, nil
}

func (m *mockMessageRepository) PublicTimeline(ctx context.Context, limit int) ([]model.Message, error) {
	if m.publicTimelineFn != nil {
		return m.publicTimelineFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockMessageRepository) ByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Message, error) {
	if m.byAuthorFn != nil {
		return m.byAuthorFn(ctx, authorID, limit)
	}
	return nil, nil
}

func TestMessageService_Post(t *testing.T) {
	fixedNow := time.Unix(1700000000, 0)

	var created *model.Message
	msgRepo := &mockMessageRepository{
		createFn: func(ctx context.Context, msg *model.Message) error {
			msg.ID = 42
			created = msg
			return nil
		},
	}
	svc := NewMessageService(msgRepo, &mockFollowRepository{}, 30)
	svc.now = func() time.Time { return fixedNow }

	msg, err := svc.Post(context.Background(), 1, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Author != 1 {
		t.Errorf("author = %d, want 1", msg.Author)
	}
	if msg.Text != "hello" {
		t.Errorf("text = %q, want %q", msg.Text, "hello")
	}
	if msg.PubDate != fixedNow.Unix() {
		t.Errorf("pub_date = %d, want %d", msg.PubDate, fixedNow.Unix())
	}
	if created == nil || created.ID != 42 {
		t.Error("message should have been written through the repository")
	}
}

func TestMessageService_Post_EmptyText(t *testing.T) {
	createCalled := false
	msgRepo := &mockMessageRepository{
		createFn: func(ctx context.Context, msg *model.Message) error {
			createCalled = true
			return nil
		},
	}
	svc := NewMessageService(msgRepo, &mockFollowRepository{}, 30)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Post(context.Background(), 1, text); !errors.Is(err, model.ErrEmptyMessage) {
			t.Errorf("Post(%q) error = %v, want %v", text, err, model.ErrEmptyMessage)
		}
	}
	if createCalled {
		t.Error("Create should not be called for empty text")
	}
}

func TestMessageService_TimelineFor(t *testing.T) {
	bobHi := model.Message{ID: 1, Author: 2, Text: "hi", Username: "bob"}
	carolOwn := model.Message{ID: 2, Author: 1, Text: "mine", Username: "carol"}

	var gotUserID int64
	var gotFollowees []int64
	var gotLimit int

	followRepo := &mockFollowRepository{
		getFolloweeIDsFn: func(ctx context.Context, who int64) ([]int64, error) {
			return []int64{2}, nil
		},
	}
	msgRepo := &mockMessageRepository{
		timelineForFn: func(ctx context.Context, userID int64, followeeIDs []int64, limit int) ([]model.Message, error) {
			gotUserID = userID
			gotFollowees = followeeIDs
			gotLimit = limit
			return []model.Message{carolOwn, bobHi}, nil
		},
	}
	svc := NewMessageService(msgRepo, followRepo, 30)

	messages, err := svc.TimelineFor(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotUserID != 1 {
		t.Errorf("userID = %d, want 1", gotUserID)
	}
	if len(gotFollowees) != 1 || gotFollowees[0] != 2 {
		t.Errorf("followeeIDs = %v, want [2]", gotFollowees)
	}
	if gotLimit != 30 {
		t.Errorf("limit = %d, want 30", gotLimit)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[1].Text != "hi" || messages[1].Author != 2 {
		t.Errorf("expected bob's message in timeline, got %+v", messages[1])
	}
}

func TestMessageService_TimelineFor_FollowingNobody(t *testing.T) {
	// A user following nobody gets exactly their own messages: the repo is
	// still queried with an empty followee list and the user's own ID.
	var gotFollowees []int64
	msgRepo := &mockMessageRepository{
		timelineForFn: func(ctx context.Context, userID int64, followeeIDs []int64, limit int) ([]model.Message, error) {
			gotFollowees = followeeIDs
			return []model.Message{{ID: 1, Author: userID, Text: "own"}}, nil
		},
	}
	svc := NewMessageService(msgRepo, &mockFollowRepository{}, 30)

	messages, err := svc.TimelineFor(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotFollowees) != 0 {
		t.Errorf("followeeIDs = %v, want empty", gotFollowees)
	}
	if len(messages) != 1 || messages[0].Author != 7 {
		t.Errorf("messages = %+v, want only user 7's own", messages)
	}
}

func TestMessageService_PublicTimeline_PageSize(t *testing.T) {
	var gotLimit int
	msgRepo := &mockMessageRepository{
		publicTimelineFn: func(ctx context.Context, limit int) ([]model.Message, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewMessageService(msgRepo, &mockFollowRepository{}, 30)

	if _, err := svc.PublicTimeline(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 30 {
		t.Errorf("limit = %d, want 30", gotLimit)
	}
}
