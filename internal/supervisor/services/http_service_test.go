// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moodmatch/internal/logging"
)

// fakeServer blocks in ListenAndServe until Shutdown, unless startErr is set.
type fakeServer struct {
	startErr error
	stopErr  error

	starts  atomic.Int32
	stops   atomic.Int32
	started chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		started: make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

func (f *fakeServer) ListenAndServe() error {
	f.starts.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.stops.Add(1)
	f.once.Do(func() { close(f.stopped) })
	return f.stopErr
}

func (f *fakeServer) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
}

// readinessRecorder records readiness transitions.
type readinessRecorder struct {
	mu     sync.Mutex
	events []bool
}

func (r *readinessRecorder) set(ready bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ready)
}

func (r *readinessRecorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.events...)
}

func TestHTTPServerService_Interface(t *testing.T) {
	var _ suture.Service = (*HTTPServerService)(nil)
}

func TestNewHTTPServerService_Timeout(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{30 * time.Second, 30 * time.Second},
		{0, 10 * time.Second},
		{-5 * time.Second, 10 * time.Second},
	}
	for _, tt := range tests {
		svc := NewHTTPServerService(newFakeServer(), tt.in)
		if svc.shutdownTimeout != tt.want {
			t.Errorf("NewHTTPServerService(%v) timeout = %v, want %v", tt.in, svc.shutdownTimeout, tt.want)
		}
	}
	if got := NewHTTPServerService(newFakeServer(), 0).String(); got != "http-server" {
		t.Errorf("String() = %q, want http-server", got)
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	bindErr := errors.New("bind: address already in use")
	stopErr := errors.New("shutdown deadline exceeded")

	tests := []struct {
		name       string
		startErr   error
		stopErr    error
		cancel     bool
		wantErr    error
		wantStops  int32
		wantEvents []bool
	}{
		{
			name:       "graceful shutdown on cancel",
			cancel:     true,
			wantErr:    context.Canceled,
			wantStops:  1,
			wantEvents: []bool{true, false},
		},
		{
			name:       "startup failure",
			startErr:   bindErr,
			wantErr:    bindErr,
			wantEvents: []bool{true, false},
		},
		{
			name:       "shutdown failure",
			stopErr:    stopErr,
			cancel:     true,
			wantErr:    stopErr,
			wantStops:  1,
			wantEvents: []bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFakeServer()
			server.startErr = tt.startErr
			server.stopErr = tt.stopErr

			svc := NewHTTPServerService(server, time.Second)
			rec := &readinessRecorder{}
			svc.SetReadinessHook(rec.set)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			errCh := make(chan error, 1)
			go func() { errCh <- svc.Serve(ctx) }()

			server.waitStarted(t)
			if tt.cancel {
				cancel()
			}

			select {
			case err := <-errCh:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Serve() error = %v, want %v", err, tt.wantErr)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Serve did not return")
			}

			if got := server.stops.Load(); got != tt.wantStops {
				t.Errorf("Shutdown calls = %d, want %d", got, tt.wantStops)
			}
			events := rec.snapshot()
			if len(events) != len(tt.wantEvents) {
				t.Fatalf("readiness events = %v, want %v", events, tt.wantEvents)
			}
			for i := range events {
				if events[i] != tt.wantEvents[i] {
					t.Errorf("readiness events = %v, want %v", events, tt.wantEvents)
					break
				}
			}
		})
	}
}

func TestHTTPServerService_LogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	server := newFakeServer()
	svc := NewHTTPServerService(server, time.Second)
	svc.logger = logging.NewTestLogger(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	server.waitStarted(t)
	cancel()
	<-errCh

	out := buf.String()
	for _, msg := range []string{"HTTP server started", "HTTP server draining connections", "HTTP server stopped"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}

func TestHTTPServerService_WithSupervisor(t *testing.T) {
	server := newFakeServer()
	svc := NewHTTPServerService(server, time.Second)

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	server.waitStarted(t)
	cancel()
	<-errCh

	if got := server.starts.Load(); got != 1 {
		t.Errorf("ListenAndServe calls = %d, want 1", got)
	}
	if got := server.stops.Load(); got != 1 {
		t.Errorf("Shutdown calls = %d, want 1", got)
	}
}
