package server

import (
	"net/http"
	"time"

	"github.com/alfagnish/usuarios/internal/config"
	"github.com/alfagnish/usuarios/internal/events"
	"github.com/alfagnish/usuarios/internal/handlers"
	appmw "github.com/alfagnish/usuarios/internal/middleware"
	"github.com/alfagnish/usuarios/internal/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// New creates a fully-configured chi router with all routes, middleware and
// handlers wired together.
func New(cfg *config.Config, store users.Store, hub *events.Hub) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", appmw.HeaderRequestID},
		ExposedHeaders: []string{appmw.HeaderRequestID},
		MaxAge:         300,
	}))
	r.Use(appmw.RequestID)
	r.Use(middleware.RealIP)
	if cfg.Development() {
		r.Use(requestLogger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	// ── Handlers ────────────────────────────────────────────
	usersH := handlers.NewUsersHandler(store, hub)
	eventsH := handlers.NewEventsHandler(hub)

	// ── Routes ──────────────────────────────────────────────
	r.Get("/", handlers.Home)
	r.Route("/api/usuarios", func(r chi.Router) {
		eventsH.Routes(r)
		usersH.Routes(r)
	})

	// Static assets live under their own prefix so "/" stays the greeting
	// and the directory index is reachable at /static/.
	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.Dir(cfg.StaticDir))))

	return r
}

// requestLogger logs each HTTP request with method, path, status code,
// response size and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Str("request_id", appmw.RequestIDFromContext(r.Context())).
			Dur("duration", time.Since(start).Round(time.Millisecond)).
			Msg("http request")
	})
}
