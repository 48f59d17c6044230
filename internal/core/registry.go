package core

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Registry is the authoritative table of live sessions: which
// connection currently holds which display name. Names are
// caller-supplied and deliberately not validated or deduplicated;
// two sessions may share a name and Resolve then picks one of them.
type Registry struct {
	mu    sync.RWMutex
	names map[SessionID]string
}

func NewRegistry() *Registry {
	return &Registry{
		names: make(map[SessionID]string),
	}
}

// Join records the display name for sid, overwriting any previous one.
// A rejoin under a new name is the same operation.
func (r *Registry) Join(sid SessionID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[sid] = name
	log.Info().Str("module", "core.registry").Str("sid", string(sid)).Str("name", name).Msg("session joined")
}

// Leave removes the session and reports the name it held. A connection
// that never joined yields ok=false and no side effects.
func (r *Registry) Leave(sid SessionID) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.names[sid]
	if !ok {
		return "", false
	}
	delete(r.names, sid)
	log.Info().Str("module", "core.registry").Str("sid", string(sid)).Str("name", name).Msg("session left")
	return name, true
}

// NameOf returns the registered name for sid, if any.
func (r *Registry) NameOf(sid SessionID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[sid]
	return name, ok
}

// ListNames snapshots all registered display names. Iteration order is
// arbitrary; clients must not depend on it.
func (r *Registry) ListNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, name)
	}
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Resolve scans for the first session holding name (case-sensitive,
// exact match). With duplicate names the pick is whichever entry map
// iteration reaches first.
func (r *Registry) Resolve(name string) (SessionID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for sid, n := range r.names {
		if n == name {
			return sid, true
		}
	}
	return "", false
}
