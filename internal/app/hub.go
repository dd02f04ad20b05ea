package app

import (
	"sync"

	"github.com/dkrasov/huddle/internal/core"
)

// Hub tracks every live connection, including ones that never complete
// setup. It backs direct sends by connection id and roster broadcasts.
type Hub struct {
	mu    sync.RWMutex
	conns map[core.ConnID]core.SignalConnection
}

func NewHub() *Hub {
	return &Hub{conns: make(map[core.ConnID]core.SignalConnection)}
}

func (h *Hub) Attach(conn core.SignalConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn.ID()] = conn
}

func (h *Hub) Detach(cid core.ConnID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, cid)
}

func (h *Hub) Get(cid core.ConnID) (core.SignalConnection, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	conn, ok := h.conns[cid]
	return conn, ok
}

// Snapshot returns the current connections. Broadcast iterates this copy so
// connections closing mid-fanout never invalidate the iteration.
func (h *Hub) Snapshot() []core.SignalConnection {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]core.SignalConnection, 0, len(h.conns))
	for _, conn := range h.conns {
		out = append(out, conn)
	}
	return out
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
