package wire

import (
	"net/http"

	"movie-rating/internal/adaptor"
	"movie-rating/internal/usecase"
	"movie-rating/pkg/database"
	"movie-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of session
func Wiring(session database.Session, logger *zap.Logger) *App {
	service := usecase.NewService(session, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireMovie(r, handler.Movie, handler.Rating)
	wireReviewer(r, handler.Reviewer)
	wireRating(r, handler.Rating)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
