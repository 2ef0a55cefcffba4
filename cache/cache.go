package cache

import "sync"

// SessionTable maps session tokens to owner ids. It keeps the reverse
// index so that issuing a new token for an owner evicts the old one.
type SessionTable struct {
	mu      sync.RWMutex
	byToken map[string]string // token -> ownerID
	byOwner map[string]string // ownerID -> token
}

func NewSessionTable() *SessionTable {
	return &SessionTable{
		byToken: make(map[string]string),
		byOwner: make(map[string]string),
	}
}

// Get returns the owner of token if it is cached.
func (t *SessionTable) Get(token string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ownerID, ok := t.byToken[token]
	return ownerID, ok
}

// Put associates token with ownerID, replacing any token the owner had.
func (t *SessionTable) Put(token, ownerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.byOwner[ownerID]; ok && old != token {
		delete(t.byToken, old)
	}
	if prevOwner, ok := t.byToken[token]; ok && prevOwner != ownerID {
		delete(t.byOwner, prevOwner)
	}
	t.byToken[token] = ownerID
	t.byOwner[ownerID] = token
}
