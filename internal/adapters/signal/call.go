package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/core"
	"github.com/dkrasov/huddle/internal/domain"
)

// Call negotiation handlers. The relay holds no call state and enforces no
// ordering: offer, answer and candidates are forwarded as opaque blobs and
// any miss (peer gone, never arrived) is a silent drop.

func (ctl *SignalWSController) handleCallUser(conn core.SignalConnection, data []byte) {
	var p callUserPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad call-user payload")
		return
	}
	if p.To == "" || len(p.Offer) == 0 {
		log.Warn().Str("module", "signal").Str("conn", string(conn.ID())).Msg("call-user missing to/offer")
		return
	}

	from, ok := ctl.Registry.UserOf(conn.ID())
	if !ok {
		// No identity to stamp on the offer; caller skipped setup.
		log.Debug().Str("module", "signal").Str("conn", string(conn.ID())).Msg("call-user before setup")
		return
	}

	f, ok := encodeEvent(incomingCallEvent{
		Type:         "incoming-call",
		FromUserID:   from,
		FromSocketID: conn.ID(),
		Offer:        p.Offer,
	})
	if !ok {
		return
	}
	ctl.Relay.ToUser(domain.UserID(p.To), f)
}

func (ctl *SignalWSController) handleAnswerCall(conn core.SignalConnection, data []byte) {
	var p answerCallPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad answer-call payload")
		return
	}
	if p.ToSocketID == "" || len(p.Answer) == 0 {
		log.Warn().Str("module", "signal").Str("conn", string(conn.ID())).Msg("answer-call missing toSocketId/answer")
		return
	}

	f, ok := encodeEvent(callAcceptedEvent{Type: "call-accepted", Answer: p.Answer})
	if !ok {
		return
	}
	// toSocketId is already a connection id, learned from incoming-call.
	ctl.Relay.ToConn(core.ConnID(p.ToSocketID), f)
}

func (ctl *SignalWSController) handleCandidate(conn core.SignalConnection, data []byte) {
	var p iceCandidatePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad ice-candidate payload")
		return
	}
	if p.ToSocketID == "" || len(p.Candidate) == 0 {
		log.Warn().Str("module", "signal").Str("conn", string(conn.ID())).Msg("ice-candidate missing toSocketId/candidate")
		return
	}

	f, ok := encodeEvent(iceCandidateEvent{Type: "ice-candidate", Candidate: p.Candidate})
	if !ok {
		return
	}
	ctl.Relay.ToConn(core.ConnID(p.ToSocketID), f)
}

func (ctl *SignalWSController) handleEndCall(conn core.SignalConnection, data []byte) {
	var p endCallPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad end-call payload")
		return
	}
	if p.ToUserID == "" {
		log.Warn().Str("module", "signal").Str("conn", string(conn.ID())).Msg("end-call missing toUserId")
		return
	}

	f, ok := encodeEvent(callEndedEvent{Type: "call-ended"})
	if !ok {
		return
	}
	ctl.Relay.ToUser(domain.UserID(p.ToUserID), f)
}
