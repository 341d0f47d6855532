package pages

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/console/internal/infrastructure/api"
	"github.com/erp/console/internal/infrastructure/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notices for assertions
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

// loginFixture wires a login page against a fake auth + API backend
func loginFixture(t *testing.T, loginStatus int) (*LoginPage, *session.Store, *recordingNotifier) {
	mux := http.NewServeMux()
	mux.HandleFunc("/JWTSecurity/GenerateToken", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode("tok")
	})
	mux.HandleFunc("/JWTSecurity/RefreshToken", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode("tok2")
	})
	mux.HandleFunc("/Auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(loginStatus)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := session.NewStore()
	manager := session.NewManager(store, server.URL, "shh", server.Client(), nil)
	client := api.NewClient(server.URL, session.NewTransport(nil, manager), nil, api.Options{})
	notifier := &recordingNotifier{}

	return NewLoginPage(client, manager, notifier, nil), store, notifier
}

func TestLoginPage_SuccessEstablishesSession(t *testing.T) {
	page, store, notifier := loginFixture(t, http.StatusOK)

	ok := page.Submit(context.Background(), "a@b.com", "x")

	require.True(t, ok)
	assert.Equal(t, "a@b.com", store.Identity())
	assert.False(t, store.Credential().Absent(), "a token was issued ahead of login")
	assert.Empty(t, notifier.errors)
}

func TestLoginPage_RejectionSurfacesNotice(t *testing.T) {
	page, store, notifier := loginFixture(t, http.StatusUnauthorized)

	ok := page.Submit(context.Background(), "a@b.com", "wrong")

	assert.False(t, ok)
	assert.False(t, store.Authenticated())
	assert.Equal(t, []string{"Wrong user or password."}, notifier.errors)
}

func TestLoginPage_InvalidEmailFailsFast(t *testing.T) {
	page, store, notifier := loginFixture(t, http.StatusOK)

	ok := page.Submit(context.Background(), "not-an-email", "x")

	assert.False(t, ok)
	assert.False(t, store.Authenticated())
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Enter a valid email and password.", notifier.errors[0])
}

func TestLoginPage_LogoutClearsEverything(t *testing.T) {
	page, store, _ := loginFixture(t, http.StatusOK)
	require.True(t, page.Submit(context.Background(), "a@b.com", "x"))

	page.Logout()

	assert.False(t, store.Authenticated())
	assert.True(t, store.Credential().Absent())
}
