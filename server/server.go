// Package server exposes counter runs over HTTP so they can be triggered and
// inspected while a profiler is attached.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/marcodamonte/concurrency-practice/counter"
	"github.com/marcodamonte/concurrency-practice/worker"
)

const (
	defaultWorkers    = 2
	defaultIncrements = 10

	// Upper bounds for one /counter/run request.
	maxWorkers    = 1024
	maxIncrements = 1_000_000
)

// Config holds server construction parameters.
type Config struct {
	// ShutdownTimeout bounds how long in-flight requests may run after the
	// serve context is cancelled. Defaults to 5 s.
	ShutdownTimeout time.Duration

	// Logger is used for request and worker output. If nil, log.Default() is used.
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = 5 * time.Second
	}
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

// Server routes counter and worker requests.
type Server struct {
	cfg     Config
	router  *mux.Router
	handler http.Handler
}

// New builds the router. pprof handlers are not registered here; the binary
// mounts them on the same listener.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg.withDefaults(), router: mux.NewRouter()}

	// Wrapping the whole router, instead of Router.Use, also logs the 404 and
	// 405 responses mux writes when no route matches.
	s.handler = s.logging(s.recovery(s.router))

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/counter/run", s.handleCounterRun).Methods(http.MethodGet)
	s.router.HandleFunc("/workers/{name}/run", s.handleWorkerRun).Methods(http.MethodGet)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Mount attaches h under prefix, used for the pprof handlers.
func (s *Server) Mount(prefix string, h http.Handler) {
	s.router.PathPrefix(prefix).Handler(h)
}

// ListenAndServe serves on addr until ctx is cancelled, then drains in-flight
// requests for up to ShutdownTimeout. http.ErrServerClosed is not an error.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.cfg.Logger.Printf("[server] listening on %s", addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.cfg.Logger.Printf("[server] shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	s.cfg.Logger.Printf("[server] shutdown complete")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "ok")
}

// handleCounterRun runs GET /counter/run?workers=N&increments=M.
func (s *Server) handleCounterRun(w http.ResponseWriter, r *http.Request) {
	workers, err := intParam(r, "workers", defaultWorkers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	increments, err := intParam(r, "increments", defaultIncrements)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if workers > maxWorkers {
		http.Error(w, fmt.Sprintf("workers: %d exceeds limit %d", workers, maxWorkers), http.StatusBadRequest)
		return
	}
	if increments > maxIncrements {
		http.Error(w, fmt.Sprintf("increments: %d exceeds limit %d", increments, maxIncrements), http.StatusBadRequest)
		return
	}

	// The run stops when the client goes away.
	res, err := counter.RunContext(r.Context(), counter.Config{
		Workers:    workers,
		Increments: increments,
		Logger:     s.cfg.Logger,
	})
	switch {
	case errors.Is(err, counter.ErrInvalidConfig):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, res)
}

type workerReport struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Priority       string `json:"priority"`
	AliveAfterJoin bool   `json:"alive_after_join"`
	Count          int    `json:"count"`
}

// handleWorkerRun starts one named worker that increments a counter once,
// joins it and reports its identity.
func (s *Server) handleWorkerRun(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	c := counter.New()
	wk := worker.New(c.Increment, worker.Config{
		Name:     name,
		Priority: worker.MaxPriority,
		Logger:   s.cfg.Logger,
	})
	if err := wk.Start(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := wk.JoinContext(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, http.StatusOK, workerReport{
		ID:             wk.ID().String(),
		Name:           wk.Name(),
		Priority:       wk.Priority().String(),
		AliveAfterJoin: wk.Alive(),
		Count:          c.Get(),
	})
}

func intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, raw)
	}
	return n, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.cfg.Logger.Printf("[http] encode response: %v", err)
	}
}
