package wire

import (
	"movie-rating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReviewer(r chi.Router, reviewerHandler *adaptor.ReviewerHandler) {
	r.Route("/api/reviewers", func(r chi.Router) {
		r.Get("/", reviewerHandler.GetReviewers)
		r.Post("/", reviewerHandler.CreateReviewer)
	})
}
