package domain

// Inbound event types, as sent by clients over the signal socket.
const (
	EvUserJoin     = "user_join"
	EvSendMessage  = "send_message"
	EvTyping       = "typing"
	EvStopTyping   = "stop_typing"
	EvCallUser     = "call_user"
	EvAnswerCall   = "answer_call"
	EvIceCandidate = "ice_candidate"
	EvRejectCall   = "reject_call"
	EvEndCall      = "end_call"
)

// Outbound event types, as produced by the hub.
const (
	EvPreviousMessages = "previous_messages"
	EvUsersUpdate      = "users_update"
	EvUserJoined       = "user_joined"
	EvUserLeft         = "user_left"
	EvReceiveMessage   = "receive_message"
	EvUserTyping       = "user_typing"
	EvUserStopTyping   = "user_stop_typing"
	EvIncomingCall     = "incoming_call"
	EvCallAnswered     = "call_answered"
	EvCallRejected     = "call_rejected"
	EvCallEnded        = "call_ended"
)
