package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(t *testing.T, addr string) *server {
	t.Helper()
	cfg := config.ServerHTTP{HTTPAddress: addr}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.ServerHTTP{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPServer)
	assert.Nil(t, srv)

	srv, err = NewServer(&handler.Handlers{}, config.ServerHTTP{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPServer)
	assert.Nil(t, srv)
}

func TestServer_RunAndGracefulShutdown(t *testing.T) {
	addr := freeAddress(t)
	srv := newTestServer(t, addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	// ждём, пока сервер начнёт принимать соединения
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/unknown")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	// адрес уже занят
	srv := newTestServer(t, l.Addr().String())

	err = srv.run(context.Background())
	assert.Error(t, err)
}
