// Package session owns the bearer-token credential and the logged-in
// identity for the lifetime of the process, mirroring the per-tab
// ephemeral session of the browser client it replaces.
package session

import (
	"encoding/json"
	"sync"
	"time"
)

// Storage entry names, kept identical to the browser session layout
const (
	tokenEntry = "Token"
	userEntry  = "user"
)

// freshnessThreshold is the credential age at which a refresh is attempted
// before attaching it to a request. Ages at or beyond the threshold are stale.
const freshnessThreshold = 1380 * time.Minute

// Credential is the bearer token plus its issuance timestamp
type Credential struct {
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"dateCreated"`
}

// Absent reports whether the credential is missing or unusable.
// A token without an issuance timestamp is treated as absent.
func (c Credential) Absent() bool {
	return c.Token == "" || c.IssuedAt.IsZero()
}

// StaleAt reports whether the credential needs a refresh at the given time.
// An age of exactly the threshold is already stale.
func (c Credential) StaleAt(now time.Time) bool {
	if c.Absent() {
		return false
	}
	return now.Sub(c.IssuedAt) >= freshnessThreshold
}

// Store is the ephemeral session store. It is the only mutation surface for
// the credential and identity entries; both are cleared together on logout.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{entries: make(map[string]string)}
}

// Credential returns the stored credential. A missing or corrupt Token entry
// yields the absent credential rather than a parse error.
func (s *Store) Credential() Credential {
	s.mu.RLock()
	raw, ok := s.entries[tokenEntry]
	s.mu.RUnlock()
	if !ok {
		return Credential{}
	}

	var cred Credential
	if err := json.Unmarshal([]byte(raw), &cred); err != nil {
		return Credential{}
	}
	if cred.IssuedAt.IsZero() {
		// A token without an issuance timestamp is invalid regardless of
		// its stored value
		return Credential{}
	}
	return cred
}

// SetCredential stores the credential as a serialized Token entry
func (s *Store) SetCredential(cred Credential) {
	raw, err := json.Marshal(cred)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.entries[tokenEntry] = string(raw)
	s.mu.Unlock()
}

// Identity returns the logged-in identity, or empty when no session exists
func (s *Store) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[userEntry]
}

// SetIdentity records the logged-in identity, establishing the session
func (s *Store) SetIdentity(identity string) {
	s.mu.Lock()
	s.entries[userEntry] = identity
	s.mu.Unlock()
}

// Authenticated reports whether a session exists. The session is independent
// of credential validity; a stale credential does not end it.
func (s *Store) Authenticated() bool {
	return s.Identity() != ""
}

// Clear removes the credential and the identity together
func (s *Store) Clear() {
	s.mu.Lock()
	delete(s.entries, tokenEntry)
	delete(s.entries, userEntry)
	s.mu.Unlock()
}
