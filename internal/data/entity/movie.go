package entity

type Movie struct {
	ID              int    `db:"id"`
	Title           string `db:"title"`
	ReleaseYear     int    `db:"release_year"`
	Genre           string `db:"genre"`
	CollectionInMil int    `db:"collection_in_mil"`
}
