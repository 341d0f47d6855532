package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenServer fakes the token endpoints, recording received payloads
type tokenServer struct {
	*httptest.Server
	generateCalls int
	refreshCalls  int
	lastPayload   map[string]string
	failRefresh   bool
}

func newTokenServer(t *testing.T) *tokenServer {
	ts := &tokenServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/JWTSecurity/GenerateToken", func(w http.ResponseWriter, r *http.Request) {
		ts.generateCalls++
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ts.lastPayload))
		_ = json.NewEncoder(w).Encode("generated-token")
	})
	mux.HandleFunc("/JWTSecurity/RefreshToken", func(w http.ResponseWriter, r *http.Request) {
		ts.refreshCalls++
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ts.lastPayload))
		if ts.failRefresh {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode("refreshed-token")
	})
	ts.Server = httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestManager_Issue(t *testing.T) {
	server := newTokenServer(t)
	store := NewStore()
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	m := NewManager(store, server.URL, "shh", server.Client(), nil).
		WithNowFunc(func() time.Time { return now })

	require.NoError(t, m.Issue(context.Background()))

	cred := store.Credential()
	assert.Equal(t, "generated-token", cred.Token)
	assert.True(t, cred.IssuedAt.Equal(now))
	assert.Equal(t, map[string]string{"secretKey": "shh"}, server.lastPayload)
}

func TestManager_RefreshRotatesCredential(t *testing.T) {
	server := newTokenServer(t)
	store := NewStore()
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	store.SetCredential(Credential{Token: "old-token", IssuedAt: now.Add(-24 * time.Hour)})

	m := NewManager(store, server.URL, "shh", server.Client(), nil).
		WithNowFunc(func() time.Time { return now })
	m.Refresh(context.Background())

	cred := store.Credential()
	assert.Equal(t, "refreshed-token", cred.Token)
	assert.True(t, cred.IssuedAt.Equal(now), "issuedAt resets to now")
	assert.Equal(t, map[string]string{"token": "old-token", "secretKey": "shh"}, server.lastPayload)
}

func TestManager_RefreshWithoutTokenIsNoop(t *testing.T) {
	server := newTokenServer(t)
	store := NewStore()
	m := NewManager(store, server.URL, "shh", server.Client(), nil)

	m.Refresh(context.Background())

	assert.Zero(t, server.refreshCalls)
	assert.True(t, store.Credential().Absent())
}

func TestManager_RefreshFailureKeepsPreviousCredential(t *testing.T) {
	server := newTokenServer(t)
	server.failRefresh = true
	store := NewStore()
	issued := time.Now().Add(-24 * time.Hour)
	store.SetCredential(Credential{Token: "old-token", IssuedAt: issued})

	m := NewManager(store, server.URL, "shh", server.Client(), nil)
	m.Refresh(context.Background())

	cred := store.Credential()
	assert.Equal(t, "old-token", cred.Token)
	assert.True(t, cred.IssuedAt.Equal(issued))
}

func TestManager_EnsureToken(t *testing.T) {
	t.Run("stale credential refreshes", func(t *testing.T) {
		server := newTokenServer(t)
		store := NewStore()
		now := time.Now()
		store.SetCredential(Credential{Token: "old", IssuedAt: now.Add(-freshnessThreshold)})

		m := NewManager(store, server.URL, "shh", server.Client(), nil).
			WithNowFunc(func() time.Time { return now })
		require.NoError(t, m.EnsureToken(context.Background()))

		assert.Equal(t, 1, server.refreshCalls)
		assert.Zero(t, server.generateCalls)
		assert.Equal(t, "refreshed-token", store.Credential().Token)
	})

	t.Run("fresh credential issues anew", func(t *testing.T) {
		server := newTokenServer(t)
		store := NewStore()
		store.SetCredential(Credential{Token: "old", IssuedAt: time.Now()})

		m := NewManager(store, server.URL, "shh", server.Client(), nil)
		require.NoError(t, m.EnsureToken(context.Background()))

		assert.Equal(t, 1, server.generateCalls)
		assert.Zero(t, server.refreshCalls)
	})

	t.Run("absent credential issues anew", func(t *testing.T) {
		server := newTokenServer(t)
		store := NewStore()

		m := NewManager(store, server.URL, "shh", server.Client(), nil)
		require.NoError(t, m.EnsureToken(context.Background()))

		assert.Equal(t, 1, server.generateCalls)
	})
}

func TestManager_IssueSurfacesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	store := NewStore()
	m := NewManager(store, server.URL, "shh", server.Client(), nil)

	assert.Error(t, m.Issue(context.Background()))
	assert.True(t, store.Credential().Absent())
}

func TestManager_PlainTextTokenResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("raw-token\n"))
	}))
	defer server.Close()

	store := NewStore()
	m := NewManager(store, server.URL, "shh", server.Client(), nil)

	require.NoError(t, m.Issue(context.Background()))
	assert.Equal(t, "raw-token", store.Credential().Token)
}

func TestManager_Clear(t *testing.T) {
	store := NewStore()
	store.SetCredential(Credential{Token: "tok", IssuedAt: time.Now()})
	store.SetIdentity("a@b.com")

	m := NewManager(store, "http://localhost", "shh", nil, nil)
	m.Clear()

	assert.True(t, store.Credential().Absent())
	assert.False(t, store.Authenticated())
}
