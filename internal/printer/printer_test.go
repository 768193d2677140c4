package printer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type sliceRows struct {
	columns []string
	rows    [][]any
	pos     int
	err     error
	closed  bool
}

func (r *sliceRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *sliceRows) Values() ([]any, error) { return r.rows[r.pos-1], nil }
func (r *sliceRows) Columns() []string      { return r.columns }
func (r *sliceRows) Err() error             { return r.err }
func (r *sliceRows) Close()                 { r.closed = true }

func TestPrint(t *testing.T) {
	rows := &sliceRows{
		columns: []string{"id", "title", "release_year", "genre", "collection_in_mil"},
		rows: [][]any{
			{int32(1), "Inception", int16(2010), "Sci-Fi", int32(830)},
			{int32(2), "Memento", int16(2000), nil, int32(40)},
		},
	}

	var buf bytes.Buffer
	n, err := New(&buf).Print(rows)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	if !rows.closed {
		t.Errorf("rows should be closed after printing")
	}

	out := buf.String()
	for _, want := range []string{"title", "Inception", "2010", "Memento", "NULL", "2 row(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintReportsIterationError(t *testing.T) {
	boom := errors.New("connection reset")
	rows := &sliceRows{columns: []string{"id"}, err: boom}

	if _, err := New(&bytes.Buffer{}).Print(rows); !errors.Is(err, boom) {
		t.Fatalf("expected iteration error, got %v", err)
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).PrintList("Database", []string{"online_movie_rating", "postgres"}); err != nil {
		t.Fatalf("print list: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Database", "online_movie_rating", "postgres"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tt := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "NULL"},
		{name: "string", in: "Sci-Fi", want: "Sci-Fi"},
		{name: "bytes", in: []byte("raw"), want: "raw"},
		{name: "float", in: 8.5, want: "8.5"},
		{name: "int", in: int32(830), want: "830"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.in); got != tc.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNotice(t *testing.T) {
	var buf bytes.Buffer

	if err := New(&buf).Notice("Database %s is ready", "online_movie_rating"); err != nil {
		t.Fatalf("notice: %v", err)
	}
	if got := buf.String(); got != "Database online_movie_rating is ready\n" {
		t.Errorf("got %q", got)
	}
}
