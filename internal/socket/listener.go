package socket

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/bankpilot/bankpilot/internal/models"
)

// Frame is one inbound socket message. Only "result" frames are acted on;
// every other type is ignored.
type Frame struct {
	Type string                 `json:"type"`
	Data models.ProcessResponse `json:"data"`
}

// Listener maintains the single long-lived push channel to the backend.
// Reconnection is manual: a read error just flips the connectivity flag and
// the read loop exits; callers reconnect on explicit user request.
type Listener struct {
	url    string
	logger *zap.Logger

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool

	results chan models.ProcessResponse
	status  chan bool
}

// NewListener builds a listener for ws://<host>/ws/{randomClientID}.
func NewListener(wsBaseURL string, logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{
		url:     strings.TrimRight(wsBaseURL, "/") + "/ws/" + uuid.NewString(),
		logger:  logger,
		results: make(chan models.ProcessResponse, 16),
		status:  make(chan bool, 4),
	}
}

func (l *Listener) Connect(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.connected {
		return nil
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", l.url, err)
	}
	l.conn = conn
	l.connected = true
	l.notifyStatus(true)
	go l.readLoop(conn)
	l.logger.Info("socket connected", zap.String("url", l.url))
	return nil
}

func (l *Listener) readLoop(conn *websocket.Conn) {
	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			l.logger.Warn("socket closed", zap.Error(err))
			l.markDisconnected()
			return
		}
		if frame.Type != "result" {
			continue
		}
		select {
		case l.results <- frame.Data:
		default:
			l.logger.Warn("dropping socket result: channel full")
		}
	}
}

func (l *Listener) markDisconnected() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.connected {
		return
	}
	l.connected = false
	l.conn = nil
	l.notifyStatus(false)
}

func (l *Listener) notifyStatus(connected bool) {
	select {
	case l.status <- connected:
	default:
	}
}

func (l *Listener) Close() {
	l.mu.Lock()
	conn := l.conn
	l.conn = nil
	l.connected = false
	l.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

func (l *Listener) Connected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.connected
}

// Results delivers pushed ProcessResponses from "result" frames.
func (l *Listener) Results() <-chan models.ProcessResponse {
	return l.results
}

// Status delivers connectivity flips.
func (l *Listener) Status() <-chan bool {
	return l.status
}
