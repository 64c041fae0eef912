package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/healthcheck/internal/domain"
	apimw "github.com/hamed0406/healthcheck/internal/httpapi/middleware"
	"github.com/hamed0406/healthcheck/internal/report"
)

// HealthRunner runs one full health check pass.
type HealthRunner interface {
	Run(ctx context.Context) (domain.HealthReport, error)
}

type Server struct {
	Logger *zap.Logger
	Runner HealthRunner
}

func NewServer(l *zap.Logger, r HealthRunner) *Server {
	return &Server{Logger: l, Runner: r}
}

// Router serves the health check for any method on every path except
// /healthz. rpm <= 0 disables rate limiting.
func (s *Server) Router(rpm, burst int) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(rpm, burst))
		r.HandleFunc("/", s.handleHealth)
		r.HandleFunc("/*", s.handleHealth)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	mode := report.ModeFromQuery(r.URL.RawQuery)

	rep, err := s.Runner.Run(r.Context())
	if err != nil {
		s.Logger.Error("health_check_failed", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out, err := report.Render(mode, rep)
	if err != nil {
		s.Logger.Error("render_failed", zap.String("mode", mode.String()), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.Logger.Info("health_served",
		zap.String("mode", mode.String()),
		zap.String("health_status", string(rep.HealthStatus)),
		zap.Int("status", out.StatusCode),
	)

	w.Header().Set("Content-Type", out.ContentType)
	w.WriteHeader(out.StatusCode)
	_, _ = w.Write([]byte(out.Body))
}
