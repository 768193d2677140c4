package entity

type Reviewer struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
}

func (r Reviewer) FullName() string {
	return r.FirstName + " " + r.LastName
}
