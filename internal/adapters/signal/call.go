package signal

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/telavir/huddle/internal/core"
)

// Call payloads cross the wire with pion's SDP/ICE shapes but are
// never inspected here; the hub relays them to the resolved target
// as-is.

func (ctl *SignalWSController) handleCallUser(
	sid core.SessionID,
	data []byte,
) {
	type callPayload struct {
		Type     string                     `json:"type"`
		From     string                     `json:"from"`
		To       string                     `json:"to"`
		Offer    *webrtc.SessionDescription `json:"offer"`
		CallType string                     `json:"callType"`
	}
	var p callPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad call_user payload")
		return
	}

	ctl.Hub.CallUser(sid, p.From, p.To, p.Offer, p.CallType)
}

func (ctl *SignalWSController) handleAnswerCall(
	sid core.SessionID,
	data []byte,
) {
	type answerPayload struct {
		Type   string                     `json:"type"`
		To     string                     `json:"to"`
		Answer *webrtc.SessionDescription `json:"answer"`
	}
	var p answerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad answer_call payload")
		return
	}

	ctl.Hub.AnswerCall(sid, p.To, p.Answer)
}

func (ctl *SignalWSController) handleIceCandidate(
	sid core.SessionID,
	data []byte,
) {
	type candidatePayload struct {
		Type      string                   `json:"type"`
		To        string                   `json:"to"`
		Candidate *webrtc.ICECandidateInit `json:"candidate"`
	}
	var p candidatePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad candidate payload")
		return
	}

	ctl.Hub.IceCandidate(sid, p.To, p.Candidate)
}

func (ctl *SignalWSController) handleRejectCall(
	sid core.SessionID,
	data []byte,
) {
	type rejectPayload struct {
		Type string `json:"type"`
		To   string `json:"to"`
	}
	var p rejectPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad reject_call payload")
		return
	}

	ctl.Hub.RejectCall(sid, p.To)
}

func (ctl *SignalWSController) handleEndCall(
	sid core.SessionID,
	data []byte,
) {
	type endPayload struct {
		Type string `json:"type"`
		To   string `json:"to"`
	}
	var p endPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad end_call payload")
		return
	}

	ctl.Hub.EndCall(sid, p.To)
}
