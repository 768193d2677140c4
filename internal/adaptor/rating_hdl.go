package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"movie-rating/internal/dto/request"
	"movie-rating/internal/usecase"
	"movie-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// CreateRating handles POST /api/ratings
func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req request.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rating, err := h.service.CreateRating(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create rating")
		return
	}

	utils.ResponseCreated(w, "success", rating)
}

// GetMovieRatings handles GET /api/movies/{id}/ratings
func (h *RatingHandler) GetMovieRatings(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || movieID < 1 {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	ratings, err := h.service.GetMovieRatings(r.Context(), movieID)
	if err != nil {
		handleServiceError(h.log, w, err, "get movie ratings")
		return
	}

	utils.ResponseSuccess(w, "success", ratings)
}
