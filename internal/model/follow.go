package model

import "errors"

// Follower is a directed edge: who follows whom.
type Follower struct {
	Who  int64 `db:"who" json:"who"`
	Whom int64 `db:"whom" json:"whom"`
}

var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
)
