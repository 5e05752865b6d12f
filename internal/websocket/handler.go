package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches a display connection to the hub for the given station.
func ServeWs(hub *Hub, c *websocket.Conn, station string) {
	client := &Client{Hub: hub, Conn: c, Station: station, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
