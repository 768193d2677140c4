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

type ReviewerService interface {
	CreateReviewer(ctx context.Context, req *request.ReviewerRequest) (*response.ReviewerResponse, error)
	GetReviewers(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.ReviewerResponse], error)
}

type reviewerService struct {
	repo *repository.Repository
	tx   *committer
	log  *zap.Logger
}

func NewReviewerService(repo *repository.Repository, session database.Session, log *zap.Logger) ReviewerService {
	return &reviewerService{
		repo: repo,
		tx:   &committer{session: session, log: log},
		log:  log.With(zap.String("service", "reviewer")),
	}
}

func (s *reviewerService) CreateReviewer(ctx context.Context, req *request.ReviewerRequest) (*response.ReviewerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reviewer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	reviewer := &entity.Reviewer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := s.tx.finish(ctx, s.repo.Reviewer.Create(ctx, reviewer)); err != nil {
		return nil, fmt.Errorf("create reviewer: %w", err)
	}

	s.log.Info("Reviewer created", zap.Int("reviewer_id", reviewer.ID))

	resp := response.ReviewerToResponse(reviewer)
	return &resp, nil
}

func (s *reviewerService) GetReviewers(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.ReviewerResponse], error) {
	reviewers, err := s.repo.Reviewer.FindAll(ctx, req.Offset(), req.PerPage)
	if err != nil {
		return nil, fmt.Errorf("get reviewers: %w", err)
	}

	total, err := s.repo.Reviewer.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reviewers: %w", err)
	}

	data := make([]response.ReviewerResponse, len(reviewers))
	for i, reviewer := range reviewers {
		data[i] = response.ReviewerToResponse(reviewer)
	}

	return response.NewListResponse(data, req.Page, req.PerPage, total), nil
}
