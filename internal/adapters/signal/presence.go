package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/core"
	"github.com/dkrasov/huddle/internal/domain"
)

func (ctl *SignalWSController) handleSetup(conn core.SignalConnection, data []byte) {
	var p setupPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad setup payload")
		return
	}
	uid, err := domain.ParseUserID(p.UserID)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("conn", string(conn.ID())).Msg("setup rejected")
		return
	}

	// A second setup for the same user supersedes the previous mapping,
	// last writer wins. The old connection is left open.
	ctl.Registry.Register(uid, conn.ID())
	log.Info().Str("module", "signal").Str("conn", string(conn.ID())).Str("user", string(uid)).Msg("setup")

	ctl.broadcastOnlineUsers()
	ctl.sendJSON(conn, allStatusEvent{Type: "all-status", Statuses: ctl.Presence.Snapshot()})
}

func (ctl *SignalWSController) handleSetStatus(conn core.SignalConnection, data []byte) {
	var p setStatusPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad set-status payload")
		return
	}
	uid, err := domain.ParseUserID(p.UserID)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("conn", string(conn.ID())).Msg("set-status rejected")
		return
	}

	ctl.Presence.SetStatus(uid, p.Status)

	// Every mutation broadcasts, including repeats of the same value.
	if f, ok := encodeEvent(statusUpdatedEvent{Type: "status-updated", UserID: uid, Status: p.Status}); ok {
		ctl.Relay.Broadcast(f)
	}
}

func (ctl *SignalWSController) broadcastOnlineUsers() {
	if f, ok := encodeEvent(onlineUsersEvent{Type: "online-users", Users: ctl.Registry.UserIDs()}); ok {
		ctl.Relay.Broadcast(f)
	}
}
