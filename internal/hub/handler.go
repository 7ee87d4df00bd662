package hub

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the surfaces are served from arbitrary origins in the venue LAN
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler returns the echo handler for GET /ws.  It upgrades the
// connection, registers a subscriber, greets it with a hello envelope
// and pumps broadcasts until the peer goes away.
func Handler(h *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			// Upgrade already wrote the error response
			return nil
		}
		sub := h.Subscribe()
		go writePump(conn, sub)
		go readPump(conn, h, sub)
		return nil
	}
}

// readPump discards inbound frames (observers only listen) and tears
// the subscriber down when the peer disconnects.
func readPump(conn *websocket.Conn, h *Hub, sub *Subscriber) {
	defer func() {
		h.Unsubscribe(sub)
		_ = conn.Close()
	}()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("hub: read: %v", err)
			}
			return
		}
	}
}

// writePump forwards queued envelopes to the peer and keeps the
// connection alive with pings.
func writePump(conn *websocket.Conn, sub *Subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	greeting := []byte(`{"type":"hello","payload":"connected"}`)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, greeting); err != nil {
		return
	}

	for {
		select {
		case msg, ok := <-sub.C():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
