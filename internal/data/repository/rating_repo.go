package repository

import (
	"context"
	"fmt"

	"movie-rating/internal/data/entity"
	"movie-rating/pkg/database"

	"go.uber.org/zap"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByMovieID(ctx context.Context, movieID int) ([]*entity.RatingDetail, error)

	// Business queries
	GetMovieRatingStats(ctx context.Context, movieID int) (float64, int64, error) // average, count
}

type ratingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRatingRepository(db database.Querier, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

// Create fails with a *database.QueryError when the movie or reviewer does
// not exist, or when the pair already has a rating.
func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (movie_id, reviewer_id, rating)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		rating.MovieID,
		rating.ReviewerID,
		rating.Rating,
	)

	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.Int("movie_id", rating.MovieID),
			zap.Int("reviewer_id", rating.ReviewerID),
			zap.String("sqlstate", database.SQLState(err)),
		)
		return fmt.Errorf("create rating for movie %d by reviewer %d: %w",
			rating.MovieID, rating.ReviewerID, err)
	}

	return nil
}

func (r *ratingRepository) FindByMovieID(ctx context.Context, movieID int) ([]*entity.RatingDetail, error) {
	query := `
		SELECT ra.movie_id, ra.reviewer_id, COALESCE(ra.rating, 0),
		       COALESCE(m.title, ''),
		       CONCAT_WS(' ', rv.first_name, rv.last_name)
		FROM ratings ra
		JOIN movies m ON m.id = ra.movie_id
		JOIN reviewers rv ON rv.id = ra.reviewer_id
		WHERE ra.movie_id = $1
		ORDER BY ra.reviewer_id
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find ratings by movie ID",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("find ratings for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	var ratings []*entity.RatingDetail
	for rows.Next() {
		var rating entity.RatingDetail
		err := rows.Scan(
			&rating.MovieID,
			&rating.ReviewerID,
			&rating.Rating.Rating,
			&rating.MovieTitle,
			&rating.ReviewerName,
		)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}

	return ratings, nil
}

func (r *ratingRepository) GetMovieRatingStats(ctx context.Context, movieID int) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0)::float8 AS avg_rating,
			COUNT(*) AS rating_count
		FROM ratings
		WHERE movie_id = $1
	`

	var avgRating float64
	var ratingCount int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&avgRating, &ratingCount)
	if err != nil {
		r.log.Error("Failed to get movie rating stats",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return 0, 0, fmt.Errorf("get rating stats for movie %d: %w", movieID, err)
	}

	return avgRating, ratingCount, nil
}
