package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/marcodamonte/concurrency-practice/counter"
	"github.com/marcodamonte/concurrency-practice/server"
)

func main() {
	addr := flag.String("addr", "localhost:6060", "listen address for counter runs and pprof")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	// Ctrl+C or SIGTERM stops the server.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One warm-up run so the log shows a result before the first request.
	res, err := counter.Run(counter.Config{Workers: 2, Increments: 10, Logger: logger})
	if err != nil {
		logger.Fatalf("[main] warm-up run: %v", err)
	}
	logger.Printf("[main] Final count: %d (expected %d)", res.Final, res.Expected)

	srv := server.New(server.Config{ShutdownTimeout: 5 * time.Second, Logger: logger})
	// net/http/pprof registers on the default mux.
	srv.Mount("/debug/pprof/", http.DefaultServeMux)

	if err := srv.ListenAndServe(ctx, *addr); err != nil {
		logger.Fatalf("[main] %v", err)
	}
}
