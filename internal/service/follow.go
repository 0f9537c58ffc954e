package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"minitwit/internal/model"
	"minitwit/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow adds who as a follower of whom. The followee must exist; following
// twice is reported as model.ErrAlreadyFollowing.
func (s *FollowService) Follow(ctx context.Context, who, whom int64) error {
	if who == whom {
		return model.ErrCannotFollowSelf
	}

	if _, err := s.userRepo.GetByID(ctx, whom); err != nil {
		return err
	}

	inserted, err := s.followRepo.Create(ctx, who, whom)
	if err != nil {
		return err
	}

	if !inserted {
		return model.ErrAlreadyFollowing
	}

	logrus.WithFields(logrus.Fields{"who": who, "whom": whom}).Info("follow created")
	return nil
}

// Unfollow removes the edge. A missing edge surfaces as
// model.ErrNotFollowing, a normal reported condition.
func (s *FollowService) Unfollow(ctx context.Context, who, whom int64) error {
	if err := s.followRepo.Delete(ctx, who, whom); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"who": who, "whom": whom}).Info("follow removed")
	return nil
}

// IsFollowing reports whether the edge exists. Absence is a normal result.
func (s *FollowService) IsFollowing(ctx context.Context, who, whom int64) (bool, error) {
	return s.followRepo.Exists(ctx, who, whom)
}

// FolloweeIDs returns the identifiers of everyone the user follows.
func (s *FollowService) FolloweeIDs(ctx context.Context, who int64) ([]int64, error) {
	return s.followRepo.GetFolloweeIDs(ctx, who)
}
