package signal

import "github.com/dkrasov/huddle/internal/core"

func (ctl *SignalWSController) handlePing(conn core.SignalConnection) {
	ctl.sendJSON(conn, pongEvent{Type: "pong"})
}

func (ctl *SignalWSController) handleWhoAmI(conn core.SignalConnection) {
	resp := whoAmIEvent{
		Type:     "whoami",
		SocketID: conn.ID(),
	}
	if uid, ok := ctl.Registry.UserOf(conn.ID()); ok {
		resp.UserID = uid
	}
	ctl.sendJSON(conn, resp)
}
