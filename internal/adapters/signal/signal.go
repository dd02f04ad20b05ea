package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/app"
	"github.com/dkrasov/huddle/internal/config"
	"github.com/dkrasov/huddle/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

// SignalWSController owns the WebSocket side of the relay: it upgrades
// connections, runs their pumps and dispatches decoded events against the
// registry, presence store and relay.
type SignalWSController struct {
	Registry *app.Registry
	Presence *app.PresenceStore
	Hub      *app.Hub
	Relay    *app.Relay

	cfg *config.Config
}

func NewSignalWSController(cfg *config.Config, reg *app.Registry, pres *app.PresenceStore, hub *app.Hub, relay *app.Relay) *SignalWSController {
	return &SignalWSController{
		Registry: reg,
		Presence: pres,
		Hub:      hub,
		Relay:    relay,
		cfg:      cfg,
	}
}

type wsSignalConn struct {
	id   core.ConnID
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsSignalConn) ID() core.ConnID { return c.id }

func (c *wsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade")
		return
	}
	ws.SetReadLimit(ctl.cfg.ReadLimit)

	conn := &wsSignalConn{
		id:   core.ConnID(uuid.NewString()),
		conn: ws,
		send: make(chan core.Frame, ctl.cfg.SendBuffer),
	}
	log.Info().Str("module", "signal").Str("conn", string(conn.id)).Msg("new WS connection")

	ctl.Hub.Attach(conn)

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, conn)
}
