package repository

import (
	"movie-rating/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie    MovieRepository
	Reviewer ReviewerRepository
	Rating   RatingRepository
}

func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Reviewer: NewReviewerRepository(db, log),
		Rating:   NewRatingRepository(db, log),
	}
}
