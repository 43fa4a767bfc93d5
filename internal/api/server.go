// Package api exposes the conversation over HTTP for a browser shell:
// a single-turn JSON endpoint and a websocket chat loop. One session per
// process; turns are serialized so the controller's state stays coherent.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"trailbuddy/pkg/version"
)

// NewServer creates and configures the HTTP server.
func NewServer(addr string, chat *ChatHandler) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /api/version", handleVersion)
	mux.HandleFunc("POST /api/chat", chat.HandleChat)
	mux.HandleFunc("GET /ws", chat.HandleWebsocket)

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}
