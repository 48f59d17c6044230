package app

import (
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/telavir/huddle/internal/core"
	"github.com/telavir/huddle/internal/domain"
)

// Call signals route to exactly one connection, resolved by display
// name at delivery time. An unresolved target is dropped without
// notifying the caller; delivery is at-most-once with no retry.
//
// CallUser forwards the caller-supplied from field verbatim. Every
// other signal kind stamps from with the sender's own registered name,
// so only the initial ring can claim a foreign identity.

func (h *Hub) CallUser(sid core.SessionID, from, to string, offer *webrtc.SessionDescription, callType string) {
	if to == "" {
		log.Warn().Str("module", "app.hub").Str("sid", string(sid)).Msg("call_user without target dropped")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	target, ok := h.registry.Resolve(to)
	if !ok {
		log.Debug().Str("module", "app.hub").Str("to", to).Msg("call target offline")
		return
	}

	h.sendTo(target, struct {
		Type string `json:"type"`
		domain.IncomingCall
	}{domain.EvIncomingCall, domain.IncomingCall{From: from, Offer: offer, CallType: callType}})

	log.Info().Str("module", "app.hub").Str("from", from).Str("to", to).Str("callType", callType).Msg("call relayed")
}

func (h *Hub) AnswerCall(sid core.SessionID, to string, answer *webrtc.SessionDescription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	target, ok := h.registry.Resolve(to)
	if !ok {
		log.Debug().Str("module", "app.hub").Str("to", to).Msg("answer target offline")
		return
	}
	from, _ := h.registry.NameOf(sid)

	h.sendTo(target, struct {
		Type string `json:"type"`
		domain.CallAnswered
	}{domain.EvCallAnswered, domain.CallAnswered{From: from, Answer: answer}})

	log.Info().Str("module", "app.hub").Str("from", from).Str("to", to).Msg("call answered")
}

func (h *Hub) IceCandidate(sid core.SessionID, to string, candidate *webrtc.ICECandidateInit) {
	h.mu.Lock()
	defer h.mu.Unlock()

	target, ok := h.registry.Resolve(to)
	if !ok {
		return
	}
	from, _ := h.registry.NameOf(sid)

	h.sendTo(target, struct {
		Type string `json:"type"`
		domain.IceCandidate
	}{domain.EvIceCandidate, domain.IceCandidate{From: from, Candidate: candidate}})
}

func (h *Hub) RejectCall(sid core.SessionID, to string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	target, ok := h.registry.Resolve(to)
	if !ok {
		log.Debug().Str("module", "app.hub").Str("to", to).Msg("reject target offline")
		return
	}
	from, _ := h.registry.NameOf(sid)

	h.sendTo(target, struct {
		Type string `json:"type"`
		domain.CallRejected
	}{domain.EvCallRejected, domain.CallRejected{From: from}})

	log.Info().Str("module", "app.hub").Str("from", from).Str("to", to).Msg("call rejected")
}

func (h *Hub) EndCall(sid core.SessionID, to string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	target, ok := h.registry.Resolve(to)
	if !ok {
		log.Debug().Str("module", "app.hub").Str("to", to).Msg("end target offline")
		return
	}
	from, _ := h.registry.NameOf(sid)

	h.sendTo(target, struct {
		Type string `json:"type"`
		domain.CallEnded
	}{domain.EvCallEnded, domain.CallEnded{From: from}})

	log.Info().Str("module", "app.hub").Str("from", from).Str("to", to).Msg("call ended")
}
