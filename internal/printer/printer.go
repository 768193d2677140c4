// Package printer renders query results for the console.
package printer

import (
	"database/sql/driver"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Rows is a forward-only result set. *database.Cursor implements it.
type Rows interface {
	Next() bool
	Values() ([]any, error)
	Columns() []string
	Err() error
	Close()
}

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print drains rows into a table and returns how many rows were written.
// rows is closed on return.
func (p *Printer) Print(rows Rows) (int, error) {
	defer rows.Close()

	t := newTable().Headers(rows.Columns()...)

	count := 0
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return count, fmt.Errorf("read row: %w", err)
		}

		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = FormatValue(v)
		}
		t.Row(cells...)
		count++
	}
	if err := rows.Err(); err != nil {
		return count, err
	}

	if _, err := fmt.Fprintln(p.w, t.Render()); err != nil {
		return count, err
	}
	_, err := fmt.Fprintf(p.w, "%d row(s)\n", count)
	return count, err
}

// PrintList renders a single-column table.
func (p *Printer) PrintList(header string, items []string) error {
	t := newTable().Headers(header)
	for _, item := range items {
		t.Row(item)
	}
	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}

// Notice writes a one-line status message.
func (p *Printer) Notice(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// FormatValue renders one decoded column value.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case []byte:
		return string(val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	case driver.Valuer:
		// pgtype values such as Numeric
		dv, err := val.Value()
		if err != nil {
			return fmt.Sprint(v)
		}
		return FormatValue(dv)
	default:
		return fmt.Sprint(val)
	}
}
