// Package domain contains entities without logic, just meta-data
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is immutable once created and survives the sender's
// disconnect, so it carries the display name rather than a connection.
type ChatMessage struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NewChatMessage stamps the message with its send time. The ID is the
// send time plus a random tiebreaker so clients can de-duplicate.
func NewChatMessage(username, text string) ChatMessage {
	now := time.Now().UTC()
	return ChatMessage{
		ID:        fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Username:  username,
		Text:      text,
		Timestamp: now.Format(time.RFC3339),
	}
}
