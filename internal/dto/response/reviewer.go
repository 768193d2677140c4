package response

import "movie-rating/internal/data/entity"

type ReviewerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func ReviewerToResponse(reviewer *entity.Reviewer) ReviewerResponse {
	return ReviewerResponse{
		ID:        reviewer.ID,
		FirstName: reviewer.FirstName,
		LastName:  reviewer.LastName,
		Email:     reviewer.Email,
	}
}
