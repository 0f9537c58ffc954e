package service

import (
	"context"
	"strings"

	"minitwit/internal/model"
	"minitwit/internal/repository"
)

type EntryService struct {
	repo repository.EntryRepository
}

func NewEntryService(repo repository.EntryRepository) *EntryService {
	return &EntryService{repo: repo}
}

// Add inserts a new board entry.
func (s *EntryService) Add(ctx context.Context, req *model.CreateEntryRequest) (*model.Entry, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, model.ErrEmptyEntryTitle
	}

	entry := &model.Entry{
		Title: req.Title,
		Body:  req.Body,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// List returns all entries, newest first.
func (s *EntryService) List(ctx context.Context) ([]model.Entry, error) {
	return s.repo.List(ctx)
}
