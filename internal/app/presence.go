package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/domain"
)

// PresenceStore maps a user to an opaque status string. Entries survive
// disconnects on purpose: status belongs to the user, not the connection,
// and a reconnecting client expects to find it untouched. Restart loses
// everything; clients re-establish on reconnect.
type PresenceStore struct {
	mu       sync.RWMutex
	statuses map[domain.UserID]string
}

func NewPresenceStore() *PresenceStore {
	return &PresenceStore{statuses: make(map[domain.UserID]string)}
}

// SetStatus inserts or overwrites when status is non-empty, deletes when
// empty. Status values are never validated beyond that; the vocabulary is
// the clients' business.
func (p *PresenceStore) SetStatus(uid domain.UserID, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if status == "" {
		delete(p.statuses, uid)
		log.Info().Str("module", "app.presence").Str("user", string(uid)).Msg("status cleared")
		return
	}
	p.statuses[uid] = status
	log.Info().Str("module", "app.presence").Str("user", string(uid)).Str("status", status).Msg("status set")
}

// Snapshot returns all current entries, used to seed a fresh connection.
func (p *PresenceStore) Snapshot() []domain.StatusEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]domain.StatusEntry, 0, len(p.statuses))
	for uid, s := range p.statuses {
		out = append(out, domain.StatusEntry{UserID: uid, Status: s})
	}
	return out
}
