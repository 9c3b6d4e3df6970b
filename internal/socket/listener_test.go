package socket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpilot/bankpilot/internal/backend"
	"github.com/bankpilot/bankpilot/internal/models"
)

func newSocketPair(t *testing.T) (*backend.Server, *Listener) {
	t.Helper()
	server := backend.NewServer(backend.Config{AllowedOrigin: "*"}, nil)
	srv := httptest.NewServer(server.Router())
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	listener := NewListener(wsURL, nil)
	t.Cleanup(listener.Close)
	return server, listener
}

func waitForStatus(t *testing.T, ch <-chan bool, want bool) {
	t.Helper()
	select {
	case got := <-ch:
		require.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for status %v", want)
	}
}

func TestConnectAndReceiveResultFrames(t *testing.T) {
	server, listener := newSocketPair(t)

	require.NoError(t, listener.Connect(context.Background()))
	waitForStatus(t, listener.Status(), true)
	assert.True(t, listener.Connected())

	// Registration happens server-side just after the handshake, so keep
	// pushing until the frame lands.
	push := models.ProcessResponse{
		Status:  "ok",
		Intent:  "accounts.balance.check",
		Message: "Pushed update.",
	}
	deadline := time.After(2 * time.Second)
	for {
		server.Broadcast(push)
		select {
		case resp := <-listener.Results():
			assert.Equal(t, "accounts.balance.check", resp.Intent)
			assert.Equal(t, "Pushed update.", resp.Message)
			return
		case <-deadline:
			t.Fatal("timed out waiting for pushed result")
		case <-time.After(25 * time.Millisecond):
		}
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	_, listener := newSocketPair(t)

	require.NoError(t, listener.Connect(context.Background()))
	waitForStatus(t, listener.Status(), true)
	require.NoError(t, listener.Connect(context.Background()))
	assert.True(t, listener.Connected())
}

func TestConnectFailureIsTerminal(t *testing.T) {
	listener := NewListener("ws://127.0.0.1:1", nil)
	err := listener.Connect(context.Background())
	require.Error(t, err)
	assert.False(t, listener.Connected())
}

func TestCloseFlipsConnectivity(t *testing.T) {
	_, listener := newSocketPair(t)

	require.NoError(t, listener.Connect(context.Background()))
	waitForStatus(t, listener.Status(), true)

	listener.Close()
	assert.False(t, listener.Connected())
}
