package socket

import (
	"log"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
)

// Server wraps the Socket.IO server. Clients join rooms named by their user
// id (for match and queue-invalidate pushes) or a conversation id (for live
// messages). Pushes are advisory only: clients treat them as "invalidate and
// reload", never as a source of truth.
type Server struct {
	IO *socketio.Server
}

// NewServer initializes the Socket.IO server and its event handlers
func NewServer() *Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, room string) {
		if room == "" {
			log.Println("⚠️ Join event without a room, ignoring")
			return
		}
		c.Join(room)
		log.Printf("✅ Socket %s joined room %s", c.ID(), room)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, room string) {
		c.Leave(room)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Printf("❌ Socket error: %v", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("👋 Socket disconnected:", reason)
	})

	return &Server{IO: server}
}

// NotifyUser pushes an event into the room named by id (a user id or a
// conversation id).
func (s *Server) NotifyUser(id, event string, payload interface{}) {
	s.IO.BroadcastToRoom("/", id, event, payload)
}

// Run starts the Socket.IO event loop.
func (s *Server) Run() {
	if err := s.IO.Serve(); err != nil {
		log.Printf("❌ Socket server stopped: %v", err)
	}
}

// Close shuts the event loop down.
func (s *Server) Close() {
	if err := s.IO.Close(); err != nil {
		log.Printf("❌ Socket server close: %v", err)
	}
}

// Handler exposes the server for mounting on the HTTP mux.
func (s *Server) Handler() http.Handler {
	return s.IO
}
