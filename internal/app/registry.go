package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/core"
	"github.com/dkrasov/huddle/internal/domain"
)

// Registry maps a user identity to the connection currently serving it.
// At most one connection per user; a repeated Register overwrites (last
// writer wins). The superseded connection is not closed here, only its
// mapping is dropped.
type Registry struct {
	mu    sync.RWMutex
	users map[domain.UserID]core.ConnID
}

func NewRegistry() *Registry {
	return &Registry{users: make(map[domain.UserID]core.ConnID)}
}

func (r *Registry) Register(uid domain.UserID, cid core.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[uid] = cid
	log.Info().Str("module", "app.registry").Str("user", string(uid)).Str("conn", string(cid)).Msg("registered")
}

// Unregister removes every mapping whose value is cid and reports the users
// that got removed. Matching by connection id, not user id, keeps a late
// disconnect of a superseded connection from tearing down a newer mapping.
func (r *Registry) Unregister(cid core.ConnID) []domain.UserID {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed []domain.UserID
	for uid, c := range r.users {
		if c == cid {
			delete(r.users, uid)
			removed = append(removed, uid)
		}
	}
	if len(removed) > 0 {
		log.Info().Str("module", "app.registry").Str("conn", string(cid)).Int("users", len(removed)).Msg("unregistered")
	}
	return removed
}

func (r *Registry) Lookup(uid domain.UserID) (core.ConnID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cid, ok := r.users[uid]
	return cid, ok
}

// UserOf is the reverse lookup: which user a connection is bound to, if it
// completed setup and has not been superseded.
func (r *Registry) UserOf(cid core.ConnID) (domain.UserID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for uid, c := range r.users {
		if c == cid {
			return uid, true
		}
	}
	return "", false
}

// UserIDs returns a snapshot of everyone currently registered.
func (r *Registry) UserIDs() []domain.UserID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.UserID, 0, len(r.users))
	for uid := range r.users {
		out = append(out, uid)
	}
	return out
}
