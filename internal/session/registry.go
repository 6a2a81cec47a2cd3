// Package session implements the in-memory registry mapping opaque
// session tokens to user ids. The registry is an explicit instance owned
// by the composition root, never a package-level singleton, so isolated
// instances (servers, tests) do not interfere. Nothing is persisted:
// restarting the process invalidates every session.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	byToken map[string]int64
}

func NewRegistry() *Registry {
	return &Registry{byToken: make(map[string]int64)}
}

// Create issues a fresh token bound to userID. Tokens are random 128-bit
// uuids, so a collision among live tokens is cryptographically
// negligible.
func (r *Registry) Create(userID int64) string {
	token := uuid.NewString()
	r.mu.Lock()
	r.byToken[token] = userID
	r.mu.Unlock()
	return token
}

// Resolve returns the user id bound to token, if any.
func (r *Registry) Resolve(token string) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byToken[token]
	return id, ok
}

// Destroy removes the token. Destroying an unknown token is a no-op.
func (r *Registry) Destroy(token string) {
	r.mu.Lock()
	delete(r.byToken, token)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byToken)
}
