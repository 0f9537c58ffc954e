package service

import (
	"context"
	"errors"
	"testing"

	"minitwit/internal/model"
)

type mockEntryRepository struct {
	createFn func(ctx context.Context, entry *model.Entry) error
	listFn   func(ctx context.Context) ([]model.Entry, error)
}

func (m *mockEntryRepository) Create(ctx context.Context, entry *model.Entry) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}

func (m *mockEntryRepository) List(ctx context.Context) ([]model.Entry, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestEntryService_Add(t *testing.T) {
	repo := &mockEntryRepository{
		createFn: func(ctx context.Context, entry *model.Entry) error {
			entry.ID = 1
			return nil
		},
	}
	svc := NewEntryService(repo)

	entry, err := svc.Add(context.Background(), &model.CreateEntryRequest{Title: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != 1 || entry.Title != "Hello" || entry.Body != "World" {
		t.Errorf("entry = %+v", entry)
	}
}

func TestEntryService_Add_EmptyTitle(t *testing.T) {
	svc := NewEntryService(&mockEntryRepository{})

	_, err := svc.Add(context.Background(), &model.CreateEntryRequest{Title: "  ", Body: "x"})
	if !errors.Is(err, model.ErrEmptyEntryTitle) {
		t.Errorf("error = %v, want %v", err, model.ErrEmptyEntryTitle)
	}
}
