package core

// Frame is a raw wire payload, already JSON-encoded.
type Frame []byte

// ConnID identifies one live transport session. Assigned at upgrade time,
// stable only for that session's lifetime.
type ConnID string

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	ID() ConnID
	TrySend(Frame) error
	Close()
}
