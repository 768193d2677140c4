package schema

// DatabaseName is the database the provisioner creates by default.
const DatabaseName = "online_movie_rating"

// Table is one guarded CREATE TABLE statement.
type Table struct {
	Name string
	DDL  string
}

// release_year keeps the 1901-2155 range of a MySQL YEAR column.
var Movies = Table{
	Name: "movies",
	DDL: `
		CREATE TABLE IF NOT EXISTS movies (
			id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			title VARCHAR(100),
			release_year SMALLINT CHECK (release_year BETWEEN 1901 AND 2155),
			genre VARCHAR(100),
			collection_in_mil INTEGER
		)
	`,
}

var Reviewers = Table{
	Name: "reviewers",
	DDL: `
		CREATE TABLE IF NOT EXISTS reviewers (
			id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			first_name VARCHAR(100),
			last_name VARCHAR(100),
			email VARCHAR(255)
		)
	`,
}

var Ratings = Table{
	Name: "ratings",
	DDL: `
		CREATE TABLE IF NOT EXISTS ratings (
			movie_id INTEGER,
			reviewer_id INTEGER,
			rating DECIMAL(2,1),
			FOREIGN KEY (movie_id) REFERENCES movies (id),
			FOREIGN KEY (reviewer_id) REFERENCES reviewers (id),
			PRIMARY KEY (movie_id, reviewer_id)
		)
	`,
}

// Tables lists every table parents first; ratings references the other two.
func Tables() []Table {
	return []Table{Movies, Reviewers, Ratings}
}
