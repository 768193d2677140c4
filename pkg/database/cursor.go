package database

import "github.com/jackc/pgx/v5"

// Cursor is a forward-only, single-pass sequence of result rows.
// Exhausting it releases the server-side resources; it cannot be restarted.
type Cursor struct {
	rows pgx.Rows
	done bool
}

func newCursor(rows pgx.Rows) *Cursor {
	return &Cursor{rows: rows}
}

// Next advances to the next row. It returns false once the rows are
// exhausted or an error occurred; check Err afterwards.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	if c.rows.Next() {
		return true
	}
	c.Close()
	return false
}

// Scan copies the current row into dest.
func (c *Cursor) Scan(dest ...any) error {
	return NewQueryError(c.rows.Scan(dest...))
}

// Values returns the decoded values of the current row.
func (c *Cursor) Values() ([]any, error) {
	values, err := c.rows.Values()
	if err != nil {
		return nil, NewQueryError(err)
	}
	return values, nil
}

// Columns returns the result column names.
func (c *Cursor) Columns() []string {
	fields := c.rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Err returns the error, if any, hit during iteration.
func (c *Cursor) Err() error {
	return NewQueryError(c.rows.Err())
}

// Close releases the cursor early. Safe to call more than once.
func (c *Cursor) Close() {
	if c.done {
		return
	}
	c.done = true
	c.rows.Close()
}
