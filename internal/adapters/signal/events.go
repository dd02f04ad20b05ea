package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/core"
	"github.com/dkrasov/huddle/internal/domain"
)

// Inbound payloads. One struct per event type; required fields are checked
// in the handlers and a miss drops the frame. The offer/answer/candidate
// blobs stay json.RawMessage end to end so they round-trip untouched.

type setupPayload struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type setStatusPayload struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
	Status string `json:"status"`
}

type callUserPayload struct {
	Type  string          `json:"type"`
	To    string          `json:"to"`
	Offer json.RawMessage `json:"offer"`
}

type answerCallPayload struct {
	Type       string          `json:"type"`
	ToSocketID string          `json:"toSocketId"`
	Answer     json.RawMessage `json:"answer"`
}

type iceCandidatePayload struct {
	Type       string          `json:"type"`
	ToSocketID string          `json:"toSocketId"`
	Candidate  json.RawMessage `json:"candidate"`
}

type endCallPayload struct {
	Type     string `json:"type"`
	ToUserID string `json:"toUserId"`
}

// Outbound events.

type onlineUsersEvent struct {
	Type  string          `json:"type"`
	Users []domain.UserID `json:"users"`
}

type allStatusEvent struct {
	Type     string               `json:"type"`
	Statuses []domain.StatusEntry `json:"statuses"`
}

type statusUpdatedEvent struct {
	Type   string        `json:"type"`
	UserID domain.UserID `json:"userId"`
	Status string        `json:"status"`
}

type incomingCallEvent struct {
	Type         string          `json:"type"`
	FromUserID   domain.UserID   `json:"fromUserId"`
	FromSocketID core.ConnID     `json:"fromSocketId"`
	Offer        json.RawMessage `json:"offer"`
}

type callAcceptedEvent struct {
	Type   string          `json:"type"`
	Answer json.RawMessage `json:"answer"`
}

type iceCandidateEvent struct {
	Type      string          `json:"type"`
	Candidate json.RawMessage `json:"candidate"`
}

type callEndedEvent struct {
	Type string `json:"type"`
}

type pongEvent struct {
	Type string `json:"type"`
}

type whoAmIEvent struct {
	Type     string        `json:"type"`
	SocketID core.ConnID   `json:"socketId"`
	UserID   domain.UserID `json:"userId,omitempty"`
}

// encodeEvent marshals an outbound event; a marshal failure is a programming
// error, logged and dropped like everything else.
func encodeEvent(v any) (core.Frame, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("encode event")
		return nil, false
	}
	return b, true
}
