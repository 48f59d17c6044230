package app

import (
	"github.com/rs/zerolog/log"

	"github.com/telavir/huddle/internal/core"
	"github.com/telavir/huddle/internal/domain"
)

// SendMessage stamps the message, records it in the history buffer and
// echoes it to every connection, the sender included. Messages without
// text are dropped.
func (h *Hub) SendMessage(sid core.SessionID, username, text string) {
	if text == "" {
		log.Warn().Str("module", "app.hub").Str("sid", string(sid)).Msg("empty message dropped")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	msg := domain.NewChatMessage(username, text)
	h.history.Append(msg)

	h.broadcastAll(struct {
		Type    string             `json:"type"`
		Message domain.ChatMessage `json:"message"`
	}{domain.EvReceiveMessage, msg})

	log.Debug().Str("module", "app.hub").Str("username", username).Str("id", msg.ID).Msg("message broadcast")
}

// Typing notifies everyone but the originator.
func (h *Hub) Typing(sid core.SessionID, username string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.broadcastOthers(sid, struct {
		Type     string `json:"type"`
		Username string `json:"username"`
	}{domain.EvUserTyping, username})
}

// StopTyping notifies everyone but the originator. The event carries
// no name; clients clear whatever indicator they were showing.
func (h *Hub) StopTyping(sid core.SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.broadcastOthers(sid, struct {
		Type string `json:"type"`
	}{domain.EvUserStopTyping})
}
