package wire

import (
	"movie-rating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler) {
	r.Post("/api/ratings", ratingHandler.CreateRating)
}
