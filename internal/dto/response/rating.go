package response

import "movie-rating/internal/data/entity"

type RatingResponse struct {
	MovieID      int     `json:"movie_id"`
	ReviewerID   int     `json:"reviewer_id"`
	MovieTitle   string  `json:"movie_title,omitempty"`
	ReviewerName string  `json:"reviewer_name,omitempty"`
	Rating       float64 `json:"rating"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		MovieID:    rating.MovieID,
		ReviewerID: rating.ReviewerID,
		Rating:     rating.Rating,
	}
}

func RatingDetailToResponse(detail *entity.RatingDetail) RatingResponse {
	resp := RatingToResponse(&detail.Rating)
	resp.MovieTitle = detail.MovieTitle
	resp.ReviewerName = detail.ReviewerName
	return resp
}
