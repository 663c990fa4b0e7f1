package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/marcodamonte/concurrency-practice/counter"
	"github.com/marcodamonte/concurrency-practice/server"
)

// quietLogger returns a logger that discards output during tests unless -v is set.
func quietLogger() *log.Logger {
	if testing.Verbose() {
		return log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	}
	return log.New(io.Discard, "", 0)
}

func newServer() *server.Server {
	return server.New(server.Config{Logger: quietLogger()})
}

// get runs a request through the router with httptest.NewRecorder.
func get(t *testing.T, s *server.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// ── Routes ───────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := get(t, newServer(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "ok" {
		t.Errorf("body = %q; want ok", body)
	}
}

func TestCounterRunDefaults(t *testing.T) {
	t.Parallel()

	rec := get(t, newServer(), "/counter/run")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %q)", rec.Code, rec.Body.String())
	}

	var res counter.Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Workers != 2 || res.Increments != 10 {
		t.Errorf("got %d×%d; want 2×10", res.Workers, res.Increments)
	}
	if res.Final != 20 {
		t.Errorf("Final = %d; want 20", res.Final)
	}
}

func TestCounterRunParams(t *testing.T) {
	t.Parallel()

	rec := get(t, newServer(), "/counter/run?workers=8&increments=250")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var res counter.Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Final != 2000 || res.Expected != 2000 {
		t.Errorf("Final/Expected = %d/%d; want 2000/2000", res.Final, res.Expected)
	}
}

func TestCounterRunBadParams(t *testing.T) {
	t.Parallel()

	s := newServer()
	for _, target := range []string{
		"/counter/run?workers=two",
		"/counter/run?increments=1.5",
		"/counter/run?workers=-1",
		"/counter/run?increments=-3",
		"/counter/run?workers=1025",
		"/counter/run?increments=1000001",
		"/counter/run?workers=4&increments=2000000000",
		"/counter/run?workers=9223372036854775807&increments=2",
	} {
		if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s → %d; want 400", target, rec.Code)
		}
	}
}

// TestCounterRunClientGone sends a request whose context is already done.
// The run must stop instead of finishing the work for nobody.
func TestCounterRunClientGone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/counter/run?workers=1024&increments=1000000", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		newServer().Handler().ServeHTTP(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler kept running after the request context was cancelled")
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d; want 503", rec.Code)
	}
}

func TestWorkerRun(t *testing.T) {
	t.Parallel()

	rec := get(t, newServer(), "/workers/TASK1/run")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var got struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Priority       string `json:"priority"`
		AliveAfterJoin bool   `json:"alive_after_join"`
		Count          int    `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "TASK1" {
		t.Errorf("name = %q; want TASK1", got.Name)
	}
	if got.ID == "" {
		t.Error("empty worker id")
	}
	if got.Priority != "max" {
		t.Errorf("priority = %q; want max", got.Priority)
	}
	if got.AliveAfterJoin {
		t.Error("worker reported alive after join")
	}
	if got.Count != 1 {
		t.Errorf("count = %d; want 1", got.Count)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/counter/run", nil)
	rec := httptest.NewRecorder()
	newServer().Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /counter/run → %d; want 405", rec.Code)
	}
}

// ── Middleware ───────────────────────────────────────────────────────────────

func TestRecovery(t *testing.T) {
	t.Parallel()

	s := newServer()
	s.Mount("/boom", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	}))

	if rec := get(t, s, "/boom"); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want 500", rec.Code)
	}
}

// TestLoggingUnmatched checks that responses mux writes itself, with no route
// matched, still go through the request log.
func TestLoggingUnmatched(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := server.New(server.Config{Logger: log.New(&buf, "", 0)})

	if rec := get(t, s, "/nope"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
	if !strings.Contains(buf.String(), "GET /nope → 404") {
		t.Errorf("log = %q; want the 404 request logged", buf.String())
	}
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

// TestListenAndServeShutdown serves on a free port, makes one request and
// cancels the context; ListenAndServe must return nil.
func TestListenAndServeShutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	s := server.New(server.Config{ShutdownTimeout: time.Second, Logger: quietLogger()})

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr) }()

	client := &http.Client{Timeout: time.Second}
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = client.Get("http://" + addr + "/healthz")
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("server never came up: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d; want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v; want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}
