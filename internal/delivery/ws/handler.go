package ws

import (
	"log"
	"net/http"
)

// Handler upgrades the connection and parks it in the hub until the
// client disconnects. The stream is one-way: the server pushes catalog
// events, client messages are drained and ignored.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client.
			log.Printf("[ws] upgrade failed: %v", err)
			return
		}

		hub.Register(conn)
		defer hub.Unregister(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
