// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// fakeServer blocks in ListenAndServe until Shutdown, unless listenErr is set.
type fakeServer struct {
	listenErr   error
	shutdownErr error
	started     chan struct{}
	stop        chan struct{}
	listens     atomic.Int32
	shutdowns   atomic.Int32
}

func newFakeServer() *fakeServer {
	return &fakeServer{started: make(chan struct{}, 1), stop: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	f.listens.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	if f.shutdowns.Add(1) == 1 {
		close(f.stop)
	}
	return f.shutdownErr
}

var _ suture.Service = (*HTTPServerService)(nil)

func TestNewHTTPServerService_DefaultTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{name: "explicit", in: 3 * time.Second, want: 3 * time.Second},
		{name: "zero", in: 0, want: 10 * time.Second},
		{name: "negative", in: -time.Second, want: 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServerService(newFakeServer(), ":8080", tt.in, zerolog.Nop())
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
		})
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	t.Parallel()

	t.Run("graceful shutdown on cancel", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer()
		svc := NewHTTPServerService(server, ":8080", time.Second, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		<-server.started
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return")
		}
		if server.shutdowns.Load() != 1 {
			t.Errorf("shutdowns = %d, want 1", server.shutdowns.Load())
		}
	})

	t.Run("listen failure is returned", func(t *testing.T) {
		t.Parallel()

		bindErr := errors.New("bind: address already in use")
		server := newFakeServer()
		server.listenErr = bindErr
		svc := NewHTTPServerService(server, ":8080", time.Second, zerolog.Nop())

		if err := svc.Serve(context.Background()); !errors.Is(err, bindErr) {
			t.Errorf("Serve() = %v, want %v", err, bindErr)
		}
	})

	t.Run("shutdown failure is returned", func(t *testing.T) {
		t.Parallel()

		drainErr := errors.New("drain timeout")
		server := newFakeServer()
		server.shutdownErr = drainErr
		svc := NewHTTPServerService(server, ":8080", time.Second, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		<-server.started
		cancel()

		if err := <-errCh; !errors.Is(err, drainErr) {
			t.Errorf("Serve() = %v, want %v", err, drainErr)
		}
	})
}

func TestHTTPServerService_String(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newFakeServer(), "127.0.0.1:8080", time.Second, zerolog.Nop())
	if got := svc.String(); got != "http-server(127.0.0.1:8080)" {
		t.Errorf("String() = %q", got)
	}
}
