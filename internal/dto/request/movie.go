package request

// release_year follows the range of a YEAR column
type MovieRequest struct {
	Title           string `json:"title" validate:"required,max=100"`
	ReleaseYear     int    `json:"release_year" validate:"required,min=1901,max=2155"`
	Genre           string `json:"genre" validate:"omitempty,max=100"`
	CollectionInMil int    `json:"collection_in_mil" validate:"min=0"`
}
