package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/core"
	"github.com/dkrasov/huddle/internal/domain"
)

// Relay routes signal frames between connections. It keeps no call state:
// every frame is fire-and-forget, and a missing target means the peer is
// gone or never arrived, which is normal churn, not a fault. The sender is
// never told about a drop.
//
// Call setup routes by user id (ToUser); once the callee has learned the
// caller's connection id from the forwarded offer, the reply path routes by
// raw connection id (ToConn) with no registry lookup.
type Relay struct {
	Registry *Registry
	Hub      *Hub
}

func NewRelay(reg *Registry, hub *Hub) *Relay {
	return &Relay{Registry: reg, Hub: hub}
}

// ToUser resolves uid through the registry and sends f to its connection.
// Reports whether the frame was handed to a connection.
func (r *Relay) ToUser(uid domain.UserID, f core.Frame) bool {
	cid, ok := r.Registry.Lookup(uid)
	if !ok {
		log.Debug().Str("module", "app.relay").Str("user", string(uid)).Msg("drop: no connection for user")
		return false
	}
	return r.ToConn(cid, f)
}

// ToConn sends f directly to a connection id.
func (r *Relay) ToConn(cid core.ConnID, f core.Frame) bool {
	conn, ok := r.Hub.Get(cid)
	if !ok {
		log.Debug().Str("module", "app.relay").Str("conn", string(cid)).Msg("drop: connection gone")
		return false
	}
	if err := conn.TrySend(f); err != nil {
		log.Debug().Err(err).Str("module", "app.relay").Str("conn", string(cid)).Msg("drop: send failed")
		return false
	}
	return true
}

// Broadcast fans f out to every live connection and returns the number of
// successful sends. A connection failing mid-iteration never stops delivery
// to the rest.
func (r *Relay) Broadcast(f core.Frame) int {
	sent := 0
	for _, conn := range r.Hub.Snapshot() {
		if err := conn.TrySend(f); err != nil {
			log.Debug().Err(err).Str("module", "app.relay").Str("conn", string(conn.ID())).Msg("broadcast: send failed")
			continue
		}
		sent++
	}
	return sent
}
