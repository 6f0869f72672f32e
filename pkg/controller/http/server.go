package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/interfaces"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/errutil"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

// Server exposes a small operational API: liveness and the current
// reaction-role bindings. It has no auth; bind it to a private address.
type Server struct {
	router *chi.Mux
	repo   interfaces.BindingRepository
}

// New creates the status HTTP server
func New(repo interfaces.BindingRepository) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		repo:   repo,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/api/bindings", s.handleBindings)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleBindings(w http.ResponseWriter, r *http.Request) {
	bindings, err := s.repo.List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(bindings); err != nil {
		logging.From(r.Context()).Error("failed to encode bindings", "error", err)
	}
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logging.From(r.Context()).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
