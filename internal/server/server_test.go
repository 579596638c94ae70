package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/handler"
	handlerhttp "github.com/MKhiriev/go-llm-relay/internal/handler/http"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProviders []string

func (p staticProviders) Names() []string { return p }

func newTestServer(t *testing.T, address string) *server {
	t.Helper()

	cfg := config.Server{HTTPAddress: address}
	handlers := &handler.Handlers{HTTP: handlerhttp.NewHandler(
		handlerhttp.Services{Providers: staticProviders{"Groq"}},
		config.App{},
		cfg,
		logger.Nop(),
	)}

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return s.(*server)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.runWithListener(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/providers")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	s := newTestServer(t, occupied.Addr().String())

	err = s.Run(context.Background())
	assert.ErrorContains(t, err, "error listening on")
}
