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

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	GetMovies(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, id int) (*response.MovieDetailResponse, error)

	// SelectAll streams every column of every movie for printing
	SelectAll(ctx context.Context) (*database.Cursor, error)
}

type movieService struct {
	repo *repository.Repository
	tx   *committer
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, session database.Session, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		tx:   &committer{session: session, log: log},
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie := &entity.Movie{
		Title:           req.Title,
		ReleaseYear:     req.ReleaseYear,
		Genre:           req.Genre,
		CollectionInMil: req.CollectionInMil,
	}

	err := s.tx.finish(ctx, s.repo.Movie.Create(ctx, movie))
	if err != nil {
		if database.IsCheckViolation(err) {
			return nil, fmt.Errorf("%w: release year out of range: %w", ErrValidation, err)
		}
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovies(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx, req.Offset(), req.PerPage)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	data := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		data[i] = response.MovieToResponse(movie)
	}

	return response.NewListResponse(data, req.Page, req.PerPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d %w", id, ErrNotFound)
	}

	avg, count, err := s.repo.Rating.GetMovieRatingStats(ctx, id)
	if err != nil {
		// the movie itself was found; stats are best effort
		s.log.Warn("Failed to get rating stats", zap.Error(err), zap.Int("movie_id", id))
		s.tx.discard(ctx)
	}

	return &response.MovieDetailResponse{
		MovieResponse: response.MovieToResponse(movie),
		AverageRating: avg,
		RatingCount:   count,
	}, nil
}

func (s *movieService) SelectAll(ctx context.Context) (*database.Cursor, error) {
	return s.repo.Movie.SelectAll(ctx)
}
