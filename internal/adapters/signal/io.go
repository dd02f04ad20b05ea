package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/core"
)

const writeWait = 5 * time.Second

func (ctl *SignalWSController) writePump(ctx context.Context, c *wsSignalConn) {
	ticker := time.NewTicker(ctl.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("conn", string(c.id)).Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Str("conn", string(c.id)).Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, cancel context.CancelFunc, c *wsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("conn", string(c.id)).Msg("readPump closing")
		cancel()
		ctl.handleDisconnect(c)
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("conn", string(c.id)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("conn", string(c.id)).Msg("readPump read error")
				return
			}
			ctl.handleSignal(c, data)
		}
	}
}

// handleSignal is the single dispatch point for inbound events. Every
// shared-state mutation happens through the handlers called here, so the
// serialization lives in the app layer instead of scattered callbacks.
// A malformed frame is dropped; the sender gets no error event and other
// connections are never affected.
func (ctl *SignalWSController) handleSignal(conn core.SignalConnection, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("conn", string(conn.ID())).Msg("bad json")
		return
	}

	switch env.Type {
	case "setup":
		ctl.handleSetup(conn, data)
	case "set-status":
		ctl.handleSetStatus(conn, data)
	case "call-user":
		ctl.handleCallUser(conn, data)
	case "answer-call":
		ctl.handleAnswerCall(conn, data)
	case "ice-candidate":
		ctl.handleCandidate(conn, data)
	case "end-call":
		ctl.handleEndCall(conn, data)
	case "ping":
		ctl.handlePing(conn)
	case "whoami":
		ctl.handleWhoAmI(conn)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown signal")
	}
}

// handleDisconnect runs exactly once per connection, from the readPump
// defer. It never synthesizes call-ended: a peer that vanishes mid-call is
// observed by the other side through its own transport, not through us.
func (ctl *SignalWSController) handleDisconnect(c core.SignalConnection) {
	ctl.Hub.Detach(c.ID())
	removed := ctl.Registry.Unregister(c.ID())
	if len(removed) > 0 {
		log.Info().Str("module", "signal").Str("conn", string(c.ID())).Msg("disconnect: user offline")
	}
	ctl.broadcastOnlineUsers()
}

func (ctl *SignalWSController) sendJSON(conn core.SignalConnection, v any) {
	f, ok := encodeEvent(v)
	if !ok {
		return
	}
	_ = conn.TrySend(f)
}
