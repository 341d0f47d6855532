package session

import "net/http"

// Transport is an http.RoundTripper that guarantees every outbound API call
// carries a non-expired bearer credential when one is obtainable. A stale
// credential triggers an inline refresh before the header is attached; the
// request proceeds either way, with whatever token is held afterwards.
//
// The check-then-attach sequence is deliberately not atomic across concurrent
// requests: two requests observing a stale credential in the same instant may
// both refresh. The duplicate work is benign since a refresh is an idempotent
// overwrite.
type Transport struct {
	Base    http.RoundTripper
	Manager *Manager
}

// NewTransport wraps base with credential attachment, defaulting base to
// http.DefaultTransport
func NewTransport(base http.RoundTripper, manager *Manager) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Manager: manager}
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	cred := t.Manager.Store().Credential()
	if cred.StaleAt(t.Manager.nowFunc()) {
		t.Manager.Refresh(req.Context())
		cred = t.Manager.Store().Credential()
	}

	// Requests must not be mutated per the RoundTripper contract
	out := req.Clone(req.Context())
	if cred.Token != "" {
		out.Header.Set("Authorization", "Bearer "+cred.Token)
	} else {
		// Never send a malformed header when no token exists
		out.Header.Del("Authorization")
	}

	return t.Base.RoundTrip(out)
}
