package request

// Rating fits DECIMAL(2,1): one fractional digit, below 10.
type RatingRequest struct {
	MovieID    int     `json:"movie_id" validate:"required,min=1"`
	ReviewerID int     `json:"reviewer_id" validate:"required,min=1"`
	Rating     float64 `json:"rating" validate:"min=0,max=9.9,onedecimal"`
}
