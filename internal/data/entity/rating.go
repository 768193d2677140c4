package entity

// Rating is identified by the (MovieID, ReviewerID) pair.
type Rating struct {
	MovieID    int     `db:"movie_id"`
	ReviewerID int     `db:"reviewer_id"`
	Rating     float64 `db:"rating"` // DECIMAL(2,1)
}

// RatingDetail is a rating joined with its movie title and reviewer name
type RatingDetail struct {
	Rating
	MovieTitle   string `db:"title"`
	ReviewerName string `db:"reviewer_name"`
}
