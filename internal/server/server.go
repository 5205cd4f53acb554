// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package server exposes the name service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/davetashner/bizname/internal/namegen"
	"github.com/davetashner/bizname/internal/redact"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is told to stop.
const shutdownTimeout = 10 * time.Second

// Generator is the operation served at POST /generate.
type Generator interface {
	Generate(ctx context.Context, style, industry string) (string, error)
}

// Options configures the HTTP server.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// MaxBodyBytes caps the request body of POST /generate.
	MaxBodyBytes int64
}

// DefaultOptions returns the options used when nothing is configured. The
// write timeout leaves room for a slow provider round-trip.
func DefaultOptions() Options {
	return Options{
		Addr:         "127.0.0.1:8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
		MaxBodyBytes: 64 << 10,
	}
}

// Server serves the generate endpoint, a health check and metrics.
type Server struct {
	gen     Generator
	opts    Options
	metrics *metrics
	handler http.Handler
}

// New creates a server. Zero-valued options fall back to DefaultOptions.
func New(gen Generator, opts Options) *Server {
	def := DefaultOptions()
	if opts.Addr == "" {
		opts.Addr = def.Addr
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = def.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = def.WriteTimeout
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = def.IdleTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = def.MaxBodyBytes
	}

	s := &Server{gen: gen, opts: opts, metrics: newMetrics()}
	s.handler = s.routes()
	return s
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.opts.Addr }

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", s.metrics.handler())
	return withRequestID(withLogging(mux))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req namegen.Request
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.metrics.observe(statusBadRequest, start)
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	text, err := s.gen.Generate(r.Context(), req.Style, req.Industry)
	if err != nil {
		s.metrics.observe(statusError, start)
		msg := redact.String(err.Error())
		slog.Error("generate failed", "request_id", RequestID(r.Context()), "error", msg)
		http.Error(w, msg, http.StatusBadGateway)
		return
	}

	s.metrics.observe(statusOK, start)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		IdleTimeout:  s.opts.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting server", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
