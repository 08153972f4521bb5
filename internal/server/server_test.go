package server

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/handler"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/service"
	"github.com/MKhiriev/viral-craft/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}

	srv, err := NewServer(testHandlers(t, cfg), nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, nil, config.Server{HTTPAddress: ":5000"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)

	srv, err = NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":5000"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

type blockingWorker struct {
	stopped atomic.Bool
}

func (w *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	w.stopped.Store(true)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	srv, err := NewServer(testHandlers(t, cfg), nil, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunStopsWorkers(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	worker := &blockingWorker{}

	s := &server{
		httpServer: newHTTPServer(testHandlers(t, cfg).HTTP.Init(), cfg, logger.Nop()),
		workers:    workers.NewWorkersOf(worker),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, s.run(ctx))
	assert.True(t, worker.stopped.Load())
}

func TestServer_RunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String(), ShutdownTimeout: time.Second}
	worker := &blockingWorker{}

	s := &server{
		httpServer: newHTTPServer(testHandlers(t, cfg).HTTP.Init(), cfg, logger.Nop()),
		workers:    workers.NewWorkersOf(worker),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAndServe")
	assert.True(t, worker.stopped.Load())
}
