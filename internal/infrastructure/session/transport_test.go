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

func TestTransport_AbsentCredentialOmitsHeader(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
	}))
	defer api.Close()

	store := NewStore()
	m := NewManager(store, "http://localhost:1", "shh", nil, nil)
	client := &http.Client{Transport: NewTransport(nil, m)}

	resp, err := client.Get(api.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
	assert.False(t, hadHeader, "no malformed header is ever sent")
}

func TestTransport_FreshCredentialIsAttached(t *testing.T) {
	var gotAuth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer api.Close()

	store := NewStore()
	store.SetCredential(Credential{Token: "fresh-token", IssuedAt: time.Now()})
	m := NewManager(store, "http://localhost:1", "shh", nil, nil)
	client := &http.Client{Transport: NewTransport(nil, m)}

	resp, err := client.Get(api.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer fresh-token", gotAuth)
}

func TestTransport_StaleCredentialRefreshesBeforeAttach(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/JWTSecurity/RefreshToken", r.URL.Path)
		_ = json.NewEncoder(w).Encode("new-token")
	}))
	defer auth.Close()

	var gotAuth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer api.Close()

	now := time.Now()
	store := NewStore()
	// 23h1m old: one minute past the threshold
	store.SetCredential(Credential{Token: "stale-token", IssuedAt: now.Add(-(23*time.Hour + time.Minute))})

	m := NewManager(store, auth.URL, "shh", auth.Client(), nil).
		WithNowFunc(func() time.Time { return now })
	client := &http.Client{Transport: NewTransport(nil, m)}

	resp, err := client.Get(api.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer new-token", gotAuth, "the refreshed token rides the same call")
	cred := store.Credential()
	assert.Equal(t, "new-token", cred.Token)
	assert.True(t, cred.IssuedAt.Equal(now))
}

func TestTransport_RefreshFailureStillSendsOldToken(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer auth.Close()

	var gotAuth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer api.Close()

	store := NewStore()
	store.SetCredential(Credential{Token: "stale-token", IssuedAt: time.Now().Add(-48 * time.Hour)})
	m := NewManager(store, auth.URL, "shh", auth.Client(), nil)
	client := &http.Client{Transport: NewTransport(nil, m)}

	resp, err := client.Get(api.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer stale-token", gotAuth,
		"the request proceeds with the old token rather than blocking")
}

func TestTransport_DoesNotMutateOriginalRequest(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer api.Close()

	store := NewStore()
	store.SetCredential(Credential{Token: "tok", IssuedAt: time.Now()})
	m := NewManager(store, "http://localhost:1", "shh", nil, nil)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, api.URL, nil)
	require.NoError(t, err)

	resp, err := NewTransport(nil, m).RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
}
