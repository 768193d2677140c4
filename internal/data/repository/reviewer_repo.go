package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-rating/internal/data/entity"
	"movie-rating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewerRepository interface {
	Create(ctx context.Context, reviewer *entity.Reviewer) error
	FindByID(ctx context.Context, id int) (*entity.Reviewer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Reviewer, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Reviewer, error)
	CountAll(ctx context.Context) (int64, error)
}

type reviewerRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReviewerRepository(db database.Querier, log *zap.Logger) ReviewerRepository {
	return &reviewerRepository{
		db:  db,
		log: log.With(zap.String("repository", "reviewer")),
	}
}

func (r *reviewerRepository) Create(ctx context.Context, reviewer *entity.Reviewer) error {
	query := `
		INSERT INTO reviewers (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		reviewer.FirstName,
		reviewer.LastName,
		reviewer.Email,
	).Scan(&reviewer.ID)

	if err != nil {
		r.log.Error("Failed to create reviewer", zap.Error(err))
		return fmt.Errorf("create reviewer: %w", err)
	}

	return nil
}

func (r *reviewerRepository) FindByID(ctx context.Context, id int) (*entity.Reviewer, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, '')
		FROM reviewers
		WHERE id = $1
	`

	var reviewer entity.Reviewer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reviewer.ID,
		&reviewer.FirstName,
		&reviewer.LastName,
		&reviewer.Email,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reviewer by ID",
			zap.Error(err),
			zap.Int("reviewer_id", id),
		)
		return nil, fmt.Errorf("find reviewer %d: %w", id, err)
	}

	return &reviewer, nil
}

// FindByEmail looks a reviewer up by the address they supplied. The address
// is untrusted input and only ever travels as a parameter.
func (r *reviewerRepository) FindByEmail(ctx context.Context, email string) (*entity.Reviewer, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, '')
		FROM reviewers
		WHERE email = $1
		ORDER BY id
		LIMIT 1
	`

	var reviewer entity.Reviewer
	err := r.db.QueryRow(ctx, query, email).Scan(
		&reviewer.ID,
		&reviewer.FirstName,
		&reviewer.LastName,
		&reviewer.Email,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reviewer by email", zap.Error(err))
		return nil, fmt.Errorf("find reviewer by email: %w", err)
	}

	return &reviewer, nil
}

func (r *reviewerRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Reviewer, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, '')
		FROM reviewers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all reviewers",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find reviewers: %w", err)
	}
	defer rows.Close()

	var reviewers []*entity.Reviewer
	for rows.Next() {
		var reviewer entity.Reviewer
		err := rows.Scan(
			&reviewer.ID,
			&reviewer.FirstName,
			&reviewer.LastName,
			&reviewer.Email,
		)
		if err != nil {
			r.log.Error("Failed to scan reviewer row", zap.Error(err))
			return nil, fmt.Errorf("scan reviewer: %w", err)
		}
		reviewers = append(reviewers, &reviewer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviewers: %w", err)
	}

	return reviewers, nil
}

func (r *reviewerRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM reviewers`

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count reviewers", zap.Error(err))
		return 0, fmt.Errorf("count reviewers: %w", err)
	}

	return total, nil
}
