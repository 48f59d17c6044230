package domain

import "github.com/pion/webrtc/v4"

// Call signal payloads are relayed verbatim between two resolved
// connections. The pion types give the offer/answer/candidate fields
// their wire shape; the server never validates the SDP inside.

type IncomingCall struct {
	From     string                     `json:"from"`
	Offer    *webrtc.SessionDescription `json:"offer"`
	CallType string                     `json:"callType"`
}

type CallAnswered struct {
	From   string                     `json:"from"`
	Answer *webrtc.SessionDescription `json:"answer"`
}

type IceCandidate struct {
	From      string                   `json:"from"`
	Candidate *webrtc.ICECandidateInit `json:"candidate"`
}

type CallRejected struct {
	From string `json:"from"`
}

type CallEnded struct {
	From string `json:"from"`
}
