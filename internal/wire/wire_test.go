package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"movie-rating/pkg/database"
	"movie-rating/pkg/middleware"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestApp(t *testing.T) (*App, pgxmock.PgxConnIface) {
	t.Helper()

	mock, err := pgxmock.NewConn()
	if err != nil {
		t.Fatalf("create mock: %v", err)
	}
	conn := database.NewConn(mock, true, zap.NewNop())
	return Wiring(conn, zap.NewNop()), mock
}

func serve(app *App, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	rec := serve(app, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestRequestValidation(t *testing.T) {
	tt := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "rating out of range", method: http.MethodPost, target: "/api/ratings", body: `{"movie_id":1,"reviewer_id":1,"rating":12.5}`},
		{name: "malformed body", method: http.MethodPost, target: "/api/ratings", body: `{"movie_id":`},
		{name: "movie without title", method: http.MethodPost, target: "/api/movies", body: `{"release_year":2010}`},
		{name: "non numeric movie id", method: http.MethodGet, target: "/api/movies/abc"},
		{name: "non numeric ratings id", method: http.MethodGet, target: "/api/movies/abc/ratings"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			app, mock := newTestApp(t)

			rec := serve(app, tc.method, tc.target, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if env := decode(t, rec); env.Status {
				t.Error("expected status false")
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestCreateMovie(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO movies")).
		WithArgs("Inception", 2010, "Sci-Fi", 830).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	rec := serve(app, http.MethodPost, "/api/movies",
		`{"title":"Inception","release_year":2010,"genre":"Sci-Fi","collection_in_mil":830}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var movie struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &movie); err != nil {
		t.Fatalf("decode movie: %v", err)
	}
	if movie.ID != 1 || movie.Title != "Inception" {
		t.Errorf("unexpected movie %+v", movie)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateRatingErrors(t *testing.T) {
	tt := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "missing parent", code: database.CodeForeignKeyViolation, wantStatus: http.StatusNotFound},
		{name: "duplicate", code: database.CodeUniqueViolation, wantStatus: http.StatusConflict},
		{name: "other server error", code: "53300", wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			app, mock := newTestApp(t)

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ratings")).
				WithArgs(1, 2, 8.5).
				WillReturnError(&pgconn.PgError{Code: tc.code, Message: "rejected"})

			rec := serve(app, http.MethodPost, "/api/ratings", `{"movie_id":1,"reviewer_id":2,"rating":8.5}`)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestGetMovieNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM movies")).
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "release_year", "genre", "collection_in_mil"}))

	rec := serve(app, http.MethodGet, "/api/movies/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListMoviesClampsPageSize(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM movies")).
		WithArgs(50, 50).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "release_year", "genre", "collection_in_mil"}).
			AddRow(51, "Inception", 2010, "Sci-Fi", 830))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM movies")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(120)))

	rec := serve(app, http.MethodGet, "/api/movies?page=2&per_page=500", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var page struct {
		Items   []json.RawMessage `json:"items"`
		PerPage int               `json:"per_page"`
		Total   int64             `json:"total"`
		HasMore bool              `json:"has_more"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page.Items) != 1 || page.PerPage != 50 || page.Total != 120 || !page.HasMore {
		t.Errorf("unexpected page %+v", page)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
