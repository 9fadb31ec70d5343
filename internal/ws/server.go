package ws

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Server exposes the model-update feed on its own listener, separate from the
// fiber API.
type Server struct {
	hub    *Hub
	logger *log.Logger
}

func NewServer(hub *Hub, logger *log.Logger) *Server {
	return &Server{hub: hub, logger: logger}
}

func (s *Server) Listen(port string) error {
	port = strings.TrimSpace(port)
	if port == "" {
		return nil
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/model", s.handleModelFeed)

	srv := &http.Server{
		Addr:              port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleModelFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("WS upgrade failed: %v", err)
		}
		return
	}
	NewClient(s.hub, conn, s.logger).Serve()
}
