package core

// Frame is a raw encoded payload handed to the transport.
type Frame []byte

// SessionID identifies one live client link. It is assigned by the
// transport layer and opaque to the core.
type SessionID string

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
