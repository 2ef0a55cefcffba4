package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"diet-server/cache"
	"diet-server/entities"
	"diet-server/repositories"
)

// sessionTokenBytes is the entropy of a session token before hex encoding.
const sessionTokenBytes = 32

// ErrUnknownOwner is returned when a token is issued for a user that does
// not exist.
var ErrUnknownOwner = errors.New("unknown owner")

// SessionProvider issues opaque session tokens and resolves them back to
// owner ids. A token is valid exactly as long as it is the one stored on the
// user record; there is no signature and no expiry.
//
// mu orders store writes and table updates, so the table never keeps a
// token the store has already replaced.
type SessionProvider struct {
	mu    sync.Mutex
	users repositories.UserRepository
	table *cache.SessionTable
}

func NewSessionProvider(users repositories.UserRepository, table *cache.SessionTable) *SessionProvider {
	return &SessionProvider{users: users, table: table}
}

// Issue generates a fresh token for userID and stores it on the user,
// replacing the previous one.
func (p *SessionProvider) Issue(ctx context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	n, err := p.users.SetSessionToken(ctx, userID, token)
	if err != nil {
		return "", fmt.Errorf("store session token: %w", err)
	}
	if n == 0 {
		return "", ErrUnknownOwner
	}

	p.table.Put(token, userID)
	return token, nil
}

// Register stores a new user together with its first token in one insert,
// so a user row never exists without a session.
func (p *SessionProvider) Register(ctx context.Context, user *entities.User) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	user.SessionToken = &token

	if err := p.users.Create(ctx, user); err != nil {
		user.SessionToken = nil
		return "", err
	}

	p.mu.Lock()
	p.table.Put(token, user.ID)
	p.mu.Unlock()
	return token, nil
}

// Resolve maps token to its owner. ok is false when nothing matches; err is
// reserved for store failures.
func (p *SessionProvider) Resolve(ctx context.Context, token string) (ownerID string, ok bool, err error) {
	if token == "" {
		return "", false, nil
	}
	if ownerID, ok := p.table.Get(token); ok {
		return ownerID, true, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	user, err := p.users.GetBySessionToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup session: %w", err)
	}

	p.table.Put(token, user.ID)
	return user.ID, true, nil
}

func newToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
