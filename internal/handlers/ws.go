package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alfagnish/usuarios/internal/events"
	"github.com/alfagnish/usuarios/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const wsWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Allow all origins (CORS is handled at the middleware level).
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsHandler streams user mutation events over a WebSocket.
type EventsHandler struct {
	hub *events.Hub
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Routes registers the WebSocket endpoint. It must be registered before any
// {id} route on the same router.
func (h *EventsHandler) Routes(r chi.Router) {
	r.Get("/eventos", h.Stream)
}

// Stream upgrades the connection and writes every published event as a JSON
// text frame until the client goes away. Client frames are read and
// discarded so close frames are noticed.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		writeError(w, http.StatusBadRequest, "se requiere una conexión WebSocket")
		return
	}

	// Subscribe before the handshake completes so no event published right
	// after the client connects is missed.
	feed, cancel := h.hub.Subscribe()
	defer cancel()

	logger := log.With().Str("request_id", middleware.RequestIDFromContext(r.Context())).Logger()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger.Debug().Int("subscribers", h.hub.Len()).Msg("event stream opened")
	defer func() {
		cancel()
		logger.Debug().Int("subscribers", h.hub.Len()).Msg("event stream closed")
	}()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Warn().Err(err).Msg("websocket read error")
				}
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case e, ok := <-feed:
			if !ok {
				return
			}
			data, err := json.Marshal(e)
			if err != nil {
				logger.Error().Err(err).Msg("failed to encode event")
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Warn().Err(err).Msg("websocket write error")
				return
			}
		}
	}
}
