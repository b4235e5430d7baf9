package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

const (
	summarizePath = "/api/summarize"
	healthPath    = "/health"
	metricsPath   = "/metrics"
	indexPath     = "/"

	requestIDHeader = "X-Request-ID"
)

type ctxKey int

const requestIDKey ctxKey = iota

type Server struct {
	router  *mux.Router
	allowed map[string]string
	metrics *Metrics
	logger  *slog.Logger
}

func NewServer(summarizer Summarizer, requestTimeout time.Duration, reg *prometheus.Registry, logger *slog.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		allowed: map[string]string{
			summarizePath: http.MethodPost,
			healthPath:    http.MethodGet,
			metricsPath:   http.MethodGet,
			indexPath:     http.MethodGet,
		},
		metrics: NewMetrics(reg),
		logger:  logger,
	}

	summarize := NewSummarizeAPI(summarizer, requestTimeout, s.metrics, logger)
	s.router.HandleFunc(summarizePath, summarize.Summarize).Methods(http.MethodPost)
	s.router.HandleFunc(healthPath, Health).Methods(http.MethodGet)
	s.router.Handle(metricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.router.HandleFunc(indexPath, Index).Methods(http.MethodGet)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)
	s.router.NotFoundHandler = http.HandlerFunc(notFound)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := r.URL.Path
	rec := httptest.NewRecorder() // records the response to be able to log the status

	requestID := uuid.New()
	w.Header().Set(requestIDHeader, requestID.String())
	r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

	s.router.ServeHTTP(rec, r)

	returnResponse(w, rec)

	route := path
	if _, ok := s.allowed[path]; !ok {
		route = "unmatched"
	}
	elapsed := time.Since(start)
	s.metrics.observeRequest(route, rec.Code, elapsed.Seconds())
	s.logger.Info("request served",
		slog.String("requestid", requestID.String()),
		slog.String("method", r.Method),
		slog.String("path", path),
		slog.Int("status", rec.Code),
		slog.Duration("duration", elapsed),
	)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if allow, ok := s.allowed[r.URL.Path]; ok {
		w.Header().Set("Allow", allow)
	}
	Error(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusNotFound, "not found")
}

func returnResponse(w http.ResponseWriter, rec *httptest.ResponseRecorder) {
	for k, v := range rec.Header() {
		w.Header()[k] = v
	}
	w.WriteHeader(rec.Code)
	w.Write(rec.Body.Bytes())
}

func requestIDFrom(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(requestIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.New()
}
