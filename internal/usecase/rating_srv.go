package usecase

import (
	"context"
	"fmt"

	"movie-rating/internal/data/entity"
	"movie-rating/internal/data/repository"
	"movie-rating/internal/dto/request"
	"movie-rating/internal/dto/response"
	"movie-rating/pkg/database"
	"movie-rating/pkg/utils"

	"go.uber.org/zap"
)

type RatingService interface {
	CreateRating(ctx context.Context, req *request.RatingRequest) (*response.RatingResponse, error)
	GetMovieRatings(ctx context.Context, movieID int) ([]response.RatingResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	tx   *committer
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, session database.Session, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		tx:   &committer{session: session, log: log},
		log:  log.With(zap.String("service", "rating")),
	}
}

// CreateRating relies on the storage engine for referential integrity and
// uniqueness; violations come back as ErrNotFound and ErrConflict wrapping
// the *database.QueryError.
func (s *ratingService) CreateRating(ctx context.Context, req *request.RatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	rating := &entity.Rating{
		MovieID:    req.MovieID,
		ReviewerID: req.ReviewerID,
		Rating:     req.Rating,
	}

	err := s.tx.finish(ctx, s.repo.Rating.Create(ctx, rating))
	switch {
	case err == nil:
	case database.IsForeignKeyViolation(err):
		return nil, fmt.Errorf("movie %d or reviewer %d %w: %w", req.MovieID, req.ReviewerID, ErrNotFound, err)
	case database.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: reviewer %d already rated movie %d: %w", ErrConflict, req.ReviewerID, req.MovieID, err)
	default:
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("Rating created",
		zap.Int("movie_id", rating.MovieID),
		zap.Int("reviewer_id", rating.ReviewerID),
		zap.Float64("rating", rating.Rating),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) GetMovieRatings(ctx context.Context, movieID int) ([]response.RatingResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d %w", movieID, ErrNotFound)
	}

	ratings, err := s.repo.Rating.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie ratings: %w", err)
	}

	data := make([]response.RatingResponse, len(ratings))
	for i, rating := range ratings {
		data[i] = response.RatingDetailToResponse(rating)
	}

	s.log.Debug("Movie ratings retrieved",
		zap.Int("movie_id", movieID),
		zap.Int("count", len(data)),
	)

	return data, nil
}
