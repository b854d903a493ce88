package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"fastakit/internal/fasta"
	"fastakit/internal/jsonutil"
	"fastakit/internal/output"
	"fastakit/pkg/api"
)

const requestIDHeader = "X-Request-Id"

type Server struct {
	router   *chi.Mux
	addr     string
	logger   *log.Logger
	maxBody  int64
	defaults fasta.Options
}

// NewServer wires the routes. defaults apply to every parse request unless
// overridden by query parameters.
func NewServer(addr string, defaults fasta.Options, maxBody int64, logger *log.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))

	s := &Server{
		router:   router,
		addr:     addr,
		logger:   logger,
		maxBody:  maxBody,
		defaults: defaults,
	}

	router.Get("/health", s.health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", s.parse)
	})

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("API server starting", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parse handles POST /api/v1/parse. The body is FASTA text; query
// parameters type, keep, carry_comments and require_valid tune the parse.
func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	rid := uuid.NewString()
	w.Header().Set(requestIDHeader, rid)

	opts, requireValid, err := s.requestOptions(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, api.ErrorV1{RequestID: rid, Error: err.Error()})
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	res, err := fasta.ParseReader(body, fasta.WithOptions(opts))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge, api.ErrorV1{RequestID: rid, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, api.ErrorV1{RequestID: rid, Error: err.Error()})
		return
	}

	s.logger.Debug("parsed request", "request_id", rid, "valid", len(res.Valid), "invalid", len(res.Invalid))
	if requireValid && len(res.Valid) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, api.ErrorV1{RequestID: rid, Error: fasta.ErrNoValidRecords.Error()})
		return
	}

	out := output.ToAPIResult(output.EntriesFromResult("", res))
	out.RequestID = rid
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) requestOptions(r *http.Request) (fasta.Options, bool, error) {
	opts := s.defaults
	q := r.URL.Query()
	if v := q.Get("type"); v != "" {
		t, err := fasta.ParseSequenceType(v)
		if err != nil {
			return opts, false, err
		}
		opts.Type = t
	}
	if q.Has("keep") {
		opts.Keep = q.Get("keep")
	}
	if v := q.Get("carry_comments"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, false, fmt.Errorf("carry_comments: %w", err)
		}
		opts.CarryComments = b
	}
	requireValid := false
	if v := q.Get("require_valid"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, false, fmt.Errorf("require_valid: %w", err)
		}
		requireValid = b
	}
	if !opts.Type.Valid() {
		return opts, false, fmt.Errorf("%w: %d", fasta.ErrUnknownSequenceType, int(opts.Type))
	}
	return opts, requireValid, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = jsonutil.Encode(w, v)
}

// requestLogger logs one line per request on the application logger.
func requestLogger(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			l.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", ww.Header().Get(requestIDHeader),
				"duration", time.Since(start),
			)
		})
	}
}
