package usecase

import (
	"context"
	"errors"

	"movie-rating/internal/data/repository"
	"movie-rating/pkg/database"

	"go.uber.org/zap"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

type Service struct {
	Movie    MovieService
	Reviewer ReviewerService
	Rating   RatingService
}

// NewService builds every use case on top of one session. Writes are
// committed through that session.
func NewService(session database.Session, log *zap.Logger) *Service {
	repo := repository.NewRepository(session, log)

	return &Service{
		Movie:    NewMovieService(repo, session, log),
		Reviewer: NewReviewerService(repo, session, log),
		Rating:   NewRatingService(repo, session, log),
	}
}

// committer finishes a write: commit on success, rollback on failure so a
// non-autocommit session stays usable.
type committer struct {
	session database.Session
	log     *zap.Logger
}

func (c *committer) finish(ctx context.Context, err error) error {
	if err != nil {
		c.discard(ctx)
		return err
	}
	return c.session.Commit(ctx)
}

// discard rolls back after a failed statement, which aborts any pending
// transaction on the server.
func (c *committer) discard(ctx context.Context) {
	if rbErr := c.session.Rollback(ctx); rbErr != nil {
		c.log.Warn("Rollback failed", zap.Error(rbErr))
	}
}
