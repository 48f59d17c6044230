// Package app holds the hub: the single-owner event core that tracks
// live connections, fans out chat traffic, and routes call signals.
package app

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/telavir/huddle/internal/core"
	"github.com/telavir/huddle/internal/domain"
)

// Hub serializes every inbound event under one mutex, so handlers
// always observe a consistent registry/history snapshot and broadcasts
// are causally ordered after the mutation that triggered them.
// Delivery itself is fire-and-forget through each connection's
// buffered send channel; a slow consumer loses frames, never blocks
// the hub.
type Hub struct {
	mu       sync.Mutex
	registry *core.Registry
	history  *core.HistoryBuffer
	conns    map[core.SessionID]core.SignalConnection
}

func NewHub(historySize int) *Hub {
	return &Hub{
		registry: core.NewRegistry(),
		history:  core.NewHistoryBuffer(historySize),
		conns:    make(map[core.SessionID]core.SignalConnection),
	}
}

// Connect registers a live transport link. The connection is not yet a
// session; it becomes one on Join.
func (h *Hub) Connect(sid core.SessionID, conn core.SignalConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[sid] = conn
	log.Info().Str("module", "app.hub").Str("sid", string(sid)).Msg("connection added")
}

// Join moves the connection into the joined state: it gets the chat
// history replayed, everyone gets the fresh user list, and everyone
// else learns the new name. A rejoin overwrites the previous name and
// re-runs the same entry actions.
func (h *Hub) Join(sid core.SessionID, username string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.registry.Join(sid, username)

	h.sendTo(sid, struct {
		Type     string               `json:"type"`
		Messages []domain.ChatMessage `json:"messages"`
	}{domain.EvPreviousMessages, h.history.Snapshot()})

	h.broadcastAll(struct {
		Type  string   `json:"type"`
		Users []string `json:"users"`
	}{domain.EvUsersUpdate, h.registry.ListNames()})

	h.broadcastOthers(sid, struct {
		Type     string `json:"type"`
		Username string `json:"username"`
	}{domain.EvUserJoined, username})

	log.Info().Str("module", "app.hub").Str("username", username).Int("online", h.registry.Count()).Msg("user joined")
}

// Disconnect tears the connection down. Only connections that had
// joined trigger presence broadcasts; an anonymous socket just goes
// away.
func (h *Hub) Disconnect(sid core.SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, sid)
	username, ok := h.registry.Leave(sid)
	if !ok {
		return
	}

	h.broadcastAll(struct {
		Type  string   `json:"type"`
		Users []string `json:"users"`
	}{domain.EvUsersUpdate, h.registry.ListNames()})

	h.broadcastOthers(sid, struct {
		Type     string `json:"type"`
		Username string `json:"username"`
	}{domain.EvUserLeft, username})

	log.Info().Str("module", "app.hub").Str("username", username).Int("online", h.registry.Count()).Msg("user left")
}

// Stats reports the health surface: current session count and history
// length.
func (h *Hub) Stats() (online, messages int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.Count(), h.history.Len()
}

func (h *Hub) sendTo(sid core.SessionID, v any) {
	conn, ok := h.conns[sid]
	if !ok {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.hub").Msg("marshal outbound event")
		return
	}
	if err := conn.TrySend(b); err != nil {
		log.Debug().Err(err).Str("module", "app.hub").Str("sid", string(sid)).Msg("send dropped")
	}
}

// broadcastAll delivers to every live connection, joined or not,
// including the originator.
func (h *Hub) broadcastAll(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.hub").Msg("marshal broadcast")
		return
	}
	for sid, conn := range h.conns {
		if err := conn.TrySend(b); err != nil {
			log.Debug().Err(err).Str("module", "app.hub").Str("sid", string(sid)).Msg("broadcast dropped")
		}
	}
}

// broadcastOthers delivers to every live connection except the origin.
func (h *Hub) broadcastOthers(origin core.SessionID, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.hub").Msg("marshal broadcast")
		return
	}
	for sid, conn := range h.conns {
		if sid == origin {
			continue
		}
		if err := conn.TrySend(b); err != nil {
			log.Debug().Err(err).Str("module", "app.hub").Str("sid", string(sid)).Msg("broadcast dropped")
		}
	}
}
