package previewserver

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Keepalive parameters, matching the teacher's raw WebSocket handler.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wireUpdate is the JSON frame sent to each viewer: metadata plus the
// PNG inlined as base64, since a WebSocket text frame is the simplest
// transport a browser-side viewer can consume without a second
// round-trip for the image bytes.
type wireUpdate struct {
	RunID     string `json:"runId"`
	Step      int    `json:"step"`
	Label     string `json:"label,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"`
}

// Handler upgrades a viewer connection and streams every Update
// published for one run until the connection closes.
type Handler struct {
	hub *Hub
}

// NewHandler creates a Handler backed by hub.
func NewHandler(hub *Hub) *Handler { return &Handler{hub: hub} }

// ServeRun upgrades r to a WebSocket and streams updates for runID,
// following the teacher's ping/pong keepalive and buffered-send-
// channel-plus-writer-goroutine pattern.
func (h *Handler) ServeRun(w http.ResponseWriter, r *http.Request, runID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[previewserver] failed to upgrade connection: %v", err)
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("[previewserver] failed to close connection: %v", err)
		}
	}()

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("[previewserver] failed to set read deadline: %v", err)
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	updates, unsubscribe := h.hub.Subscribe(runID)
	defer unsubscribe()

	done := make(chan struct{})
	var closeOnce sync.Once
	closeDone := func() { closeOnce.Do(func() { close(done) }) }

	// Discard any client-sent frames (this is a push-only stream) but
	// still drive the read loop so pong handling and close detection
	// keep working.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				closeDone()
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return
			}
			if err := writeUpdate(conn, u); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func writeUpdate(conn *websocket.Conn, u Update) error {
	frame := wireUpdate{
		RunID:     u.RunID,
		Step:      u.Step,
		Label:     u.Label,
		Width:     u.Width,
		Height:    u.Height,
		ImageData: base64.StdEncoding.EncodeToString(u.PNG),
	}
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
