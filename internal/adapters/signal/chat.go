package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/telavir/huddle/internal/core"
)

func (ctl *SignalWSController) handleUserJoin(
	sid core.SessionID,
	data []byte,
) {
	type joinPayload struct {
		Type     string `json:"type"`
		Username string `json:"username"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		return
	}

	// The name is accepted as-is: empty or duplicate names are the
	// client's problem, matching the relay's permissive contract.
	ctl.Hub.Join(sid, p.Username)
}

func (ctl *SignalWSController) handleSendMessage(
	sid core.SessionID,
	data []byte,
) {
	type messagePayload struct {
		Type     string `json:"type"`
		Username string `json:"username"`
		Text     string `json:"text"`
	}
	var p messagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad message payload")
		return
	}

	ctl.Hub.SendMessage(sid, p.Username, p.Text)
}

func (ctl *SignalWSController) handleTyping(
	sid core.SessionID,
	data []byte,
) {
	type typingPayload struct {
		Type     string `json:"type"`
		Username string `json:"username"`
	}
	var p typingPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad typing payload")
		return
	}

	ctl.Hub.Typing(sid, p.Username)
}
