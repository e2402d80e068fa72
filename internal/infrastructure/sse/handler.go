// Package sse streams audit events to HTTP clients as Server-Sent Events.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

// Handler fans recorded audit events out to connected clients.
type Handler struct {
	mu      sync.RWMutex
	clients map[chan domain.Event]struct{}
}

func NewHandler() *Handler {
	return &Handler{clients: make(map[chan domain.Event]struct{})}
}

// Publish delivers e to every connected client. Slow clients miss events
// rather than blocking the caller.
func (h *Handler) Publish(e domain.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.clients {
		select {
		case ch <- e:
		default:
		}
	}
}

// Clients reports the number of open streams.
func (h *Handler) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP streams events until the client disconnects. The optional
// "actions" query parameter restricts the stream to a comma-separated list
// of actions, or action prefixes ending in ".", e.g. "time." or "project.created".
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	var filters []string
	if actions := r.URL.Query().Get("actions"); actions != "" {
		for _, a := range strings.Split(actions, ",") {
			if a = strings.TrimSpace(a); a != "" {
				filters = append(filters, a)
			}
		}
	}

	// Register before flushing headers so a client that sees the response
	// does not miss events published right after.
	ch := make(chan domain.Event, 64)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, ch)
		h.mu.Unlock()
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-ch:
			if !matches(filters, event.Action) {
				continue
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			_, _ = fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Action, data)
			flusher.Flush()
		}
	}
}

func matches(filters []string, action string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if f == action || (strings.HasSuffix(f, ".") && strings.HasPrefix(action, f)) {
			return true
		}
	}
	return false
}
