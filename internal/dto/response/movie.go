package response

import "movie-rating/internal/data/entity"

type MovieResponse struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	ReleaseYear     int    `json:"release_year"`
	Genre           string `json:"genre"`
	CollectionInMil int    `json:"collection_in_mil"`
}

type MovieDetailResponse struct {
	MovieResponse
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:              movie.ID,
		Title:           movie.Title,
		ReleaseYear:     movie.ReleaseYear,
		Genre:           movie.Genre,
		CollectionInMil: movie.CollectionInMil,
	}
}
