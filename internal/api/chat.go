package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"trailbuddy/pkg/dialogue"
)

// ChatHandler adapts the dialogue controller's turn function to HTTP.
type ChatHandler struct {
	controller *dialogue.Controller
	mu         sync.Mutex

	upgrader websocket.Upgrader
}

// NewChatHandler wraps a controller for HTTP access.
func NewChatHandler(c *dialogue.Controller) *ChatHandler {
	return &ChatHandler{
		controller: c,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	Stage string `json:"stage"`
}

// HandleChat processes one turn: {"message": "..."} in, the assistant
// reply and resulting stage out.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp := h.turn(r, req.Message)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to write chat response", "error", err)
	}
}

// HandleWebsocket runs the chat loop over a websocket: each text message
// is one user turn, each reply one assistant turn.
func (h *ChatHandler) HandleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		resp := h.turn(r, string(data))
		payload, err := json.Marshal(resp)
		if err != nil {
			slog.Error("Failed to marshal websocket reply", "error", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (h *ChatHandler) turn(r *http.Request, message string) chatResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	reply := h.controller.HandleMessage(r.Context(), message)
	return chatResponse{
		Reply: reply,
		Stage: h.controller.State().Stage.String(),
	}
}
