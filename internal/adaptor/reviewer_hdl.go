package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-rating/internal/dto/request"
	"movie-rating/internal/usecase"
	"movie-rating/pkg/utils"

	"go.uber.org/zap"
)

type ReviewerHandler struct {
	service usecase.ReviewerService
	log     *zap.Logger
}

func NewReviewerHandler(service usecase.ReviewerService, log *zap.Logger) *ReviewerHandler {
	return &ReviewerHandler{
		service: service,
		log:     log.With(zap.String("handler", "reviewer")),
	}
}

// GetReviewers handles GET /api/reviewers
func (h *ReviewerHandler) GetReviewers(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r)

	reviewers, err := h.service.GetReviewers(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get reviewers")
		return
	}

	utils.ResponseSuccess(w, "success", reviewers)
}

// CreateReviewer handles POST /api/reviewers
func (h *ReviewerHandler) CreateReviewer(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reviewer, err := h.service.CreateReviewer(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create reviewer")
		return
	}

	utils.ResponseCreated(w, "success", reviewer)
}
