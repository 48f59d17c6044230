package core

import (
	"sync"

	"github.com/telavir/huddle/internal/domain"
)

// HistoryBuffer keeps the most recent chat messages in arrival order
// and replays them to new joiners. Oldest entries are evicted first
// once the cap is reached.
type HistoryBuffer struct {
	mu   sync.RWMutex
	msgs []domain.ChatMessage
	cap  int
}

func NewHistoryBuffer(capacity int) *HistoryBuffer {
	if capacity <= 0 {
		capacity = 100
	}
	return &HistoryBuffer{
		msgs: make([]domain.ChatMessage, 0, capacity),
		cap:  capacity,
	}
}

func (h *HistoryBuffer) Append(msg domain.ChatMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, msg)
	if len(h.msgs) > h.cap {
		over := len(h.msgs) - h.cap
		h.msgs = append(h.msgs[:0], h.msgs[over:]...)
	}
}

// Snapshot returns a copy of the buffer in store order. Callers may
// mutate the result freely.
func (h *HistoryBuffer) Snapshot() []domain.ChatMessage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.ChatMessage, len(h.msgs))
	copy(out, h.msgs)
	return out
}

func (h *HistoryBuffer) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.msgs)
}
