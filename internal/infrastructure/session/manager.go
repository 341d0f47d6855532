package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Token endpoint paths, relative to the auth base URL
const (
	generateTokenPath = "/JWTSecurity/GenerateToken"
	refreshTokenPath  = "/JWTSecurity/RefreshToken"
)

// Manager drives the credential lifecycle: issuing a token with the shared
// handshake secret, refreshing it when stale, and tearing the session down.
// It talks to the token endpoints with its own bare HTTP client so that the
// request interceptor never recurses into itself.
type Manager struct {
	store   *Store
	authURL string
	secret  string
	client  *http.Client
	logger  *zap.Logger

	// nowFunc is a test seam for time-dependent staleness checks
	nowFunc func() time.Time
}

// NewManager creates a session manager against the given token endpoint root
func NewManager(store *Store, authURL, secret string, client *http.Client, logger *zap.Logger) *Manager {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:   store,
		authURL: strings.TrimRight(authURL, "/"),
		secret:  secret,
		client:  client,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// WithNowFunc sets a custom time function for testing.
// It must be called during initialization, before the manager is in use.
func (m *Manager) WithNowFunc(fn func() time.Time) *Manager {
	m.nowFunc = fn
	return m
}

// Store exposes the underlying session store
func (m *Manager) Store() *Store {
	return m.store
}

// Issue obtains a brand-new token using the shared secret alone and stores
// it as fresh. Used when no credential exists yet, at login time.
func (m *Manager) Issue(ctx context.Context) error {
	token, err := m.postToken(ctx, generateTokenPath, map[string]string{
		"secretKey": m.secret,
	})
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	m.store.SetCredential(Credential{Token: token, IssuedAt: m.nowFunc()})
	m.logTokenClaims("token issued", token)
	return nil
}

// Refresh exchanges the currently held token plus the shared secret for a
// fresh one. Failures are logged and the credential left unchanged; a refresh
// must never block the business request riding on it, so no error escapes.
func (m *Manager) Refresh(ctx context.Context) {
	cred := m.store.Credential()
	if cred.Token == "" {
		return
	}

	token, err := m.postToken(ctx, refreshTokenPath, map[string]string{
		"token":     cred.Token,
		"secretKey": m.secret,
	})
	if err != nil {
		m.logger.Warn("token refresh failed, keeping previous credential", zap.Error(err))
		return
	}

	m.store.SetCredential(Credential{Token: token, IssuedAt: m.nowFunc()})
	m.logTokenClaims("token refreshed", token)
}

// EnsureToken prepares a credential ahead of login: a stale credential is
// refreshed, anything else gets a newly issued token
func (m *Manager) EnsureToken(ctx context.Context) error {
	cred := m.store.Credential()
	if cred.StaleAt(m.nowFunc()) {
		m.Refresh(ctx)
		return nil
	}
	return m.Issue(ctx)
}

// Clear removes the credential and session entirely, used on logout
func (m *Manager) Clear() {
	m.store.Clear()
}

// postToken posts a JSON payload to a token endpoint and decodes the token
// from the response. The endpoints return the token value either as a JSON
// string or as plain text.
func (m *Manager) postToken(ctx context.Context, path string, payload map[string]string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.authURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("token endpoint %s returned status %d", path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return "", fmt.Errorf("token endpoint %s returned an empty token", path)
	}
	return token, nil
}

// logTokenClaims logs the expiry and subject of a received token when it is
// a parseable JWT. The signature is not verified; the server remains the
// authority, this is diagnostics only.
func (m *Manager) logTokenClaims(msg, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		m.logger.Info(msg)
		return
	}

	fields := make([]zap.Field, 0, 2)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fields = append(fields, zap.Time("expires_at", exp.Time))
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fields = append(fields, zap.String("subject", sub))
	}
	m.logger.Info(msg, fields...)
}
