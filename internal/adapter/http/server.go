package http

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/service"
)

const maxReportBytes = 4 << 10

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// MetarService looks up and decodes reports for the web form and JSON API.
type MetarService interface {
	Lookup(ctx context.Context, input string) (service.Result, error)
	Decode(raw string) domain.DecodedReport
}

// Server exposes the METAR form, the JSON API, and health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	metar      MetarService
	logger     *slog.Logger
}

// NewServer creates an HTTP server with all routes registered.
func NewServer(addr string, metar MetarService, ready ReadinessChecker, logger *slog.Logger) *Server {
	r := chi.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		metar:  metar,
		logger: logger,
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/metar/{station}", s.handleLookup)
		r.Post("/decode", s.handleDecode)
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(ready))
	r.Handle("/metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type pageData struct {
	AirportCode    string
	Report         *domain.DecodedReport
	FlightCategory string
	Error          string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var page pageData

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		page.AirportCode = strings.ToUpper(strings.TrimSpace(r.PostForm.Get("airport_code")))

		res, err := s.metar.Lookup(r.Context(), page.AirportCode)
		if err != nil {
			page.Error = userMessage(err)
		} else {
			page.Report = &res.Report
			page.FlightCategory = res.FlightCategory
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	res, err := s.metar.Lookup(r.Context(), chi.URLParam(r, "station"))
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": userMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxReportBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "report too large"})
		return
	}
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "empty report"})
		return
	}
	writeJSON(w, http.StatusOK, service.Result{
		Report:         s.metar.Decode(raw),
		FlightCategory: domain.EstimateFlightCategory(raw),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func statusFor(err error) int {
	var fetchErr *service.FetchError
	switch {
	case errors.Is(err, domain.ErrStationRequired), errors.Is(err, domain.ErrStationFormat):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// userMessage renders an error as a sentence for display.
func userMessage(err error) string {
	var fetchErr *service.FetchError
	switch {
	case errors.Is(err, domain.ErrStationRequired), errors.Is(err, domain.ErrStationFormat):
		return sentence(err.Error())
	case errors.As(err, &fetchErr):
		return sentence(fetchErr.Err.Error())
	default:
		return "An unexpected error occurred: " + err.Error()
	}
}

func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
