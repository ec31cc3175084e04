package handler

import (
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"classroom_manager/database"
)

// updatesConn is the subset of *websocket.Conn the relay needs.
type updatesConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	wsClients = make(map[updatesConn]bool)
	wsMu      sync.Mutex
	wsOnce    sync.Once
)

// UpdatesConnection registers the client with the shared relay and holds the
// connection open until the peer goes away. A single subscriber goroutine
// fans each store event out once per client; messages are bare event names
// ("refresh") and clients re-fetch on receipt.
func UpdatesConnection(c *websocket.Conn) {
	wsOnce.Do(startUpdatesRelay)

	addUpdatesClient(c)
	defer removeUpdatesClient(c)

	// Inbound frames are ignored; the read loop only detects disconnect.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func addUpdatesClient(c updatesConn) {
	wsMu.Lock()
	wsClients[c] = true
	wsMu.Unlock()
}

func removeUpdatesClient(c updatesConn) {
	wsMu.Lock()
	delete(wsClients, c)
	wsMu.Unlock()
	c.Close()
}

func startUpdatesRelay() {
	if database.Client == nil {
		return
	}
	pubsub := database.Client.Subscribe(context.Background(), database.UpdatesChannel())
	go func() {
		for msg := range pubsub.Channel() {
			broadcastUpdate([]byte(msg.Payload))
		}
	}()
}

// broadcastUpdate writes one copy of the event to every connected client and
// drops clients whose writes fail.
func broadcastUpdate(payload []byte) {
	wsMu.Lock()
	defer wsMu.Unlock()
	for conn := range wsClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}
