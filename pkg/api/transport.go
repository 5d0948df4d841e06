package api

import (
	"net/http"
	"strings"
	"sync"

	"github.com/obsbank/obsctl/pkg/auth"
	"github.com/obsbank/obsctl/pkg/session"
)

const (
	// TokenRefreshHeader carries a replacement bearer token on responses
	// under the server's sliding-expiration scheme.
	TokenRefreshHeader = "Token-Refresh"

	// retryMarkerHeader is set on requests re-issued by the retrying
	// client so the 401 handler does not fire for them a second time.
	retryMarkerHeader = "X-Obsctl-Retry"
)

// Transport is the response interceptor every request goes through. It
// attaches the Authorization header on the way out, promotes refreshed
// tokens back into the store on the way in, and on a 401 from any
// endpoint other than signin clears the session and fires the
// unauthorized hook exactly once per process. Responses and errors are
// always forwarded unchanged so the caller's own error handling runs.
type Transport struct {
	Base           http.RoundTripper
	Store          *session.Store
	OnUnauthorized func()

	unauthorizedOnce sync.Once
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if out.Header.Get("Authorization") == "" {
		if header := auth.AuthHeader(t.Store); header != "" {
			out.Header.Set("Authorization", header)
		}
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode < 400 {
		if newToken := resp.Header.Get(TokenRefreshHeader); newToken != "" {
			// best-effort: a failed storage write must not fail the request
			_ = t.Store.PatchToken(newToken)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized && !isSigninRequest(out) && !isRetriedRequest(out) {
		t.unauthorizedOnce.Do(func() {
			_ = t.Store.Clear()
			if t.OnUnauthorized != nil {
				t.OnUnauthorized()
			}
		})
	}

	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// The signin call itself answers 401 on bad credentials; that must not
// tear down an existing session.
func isSigninRequest(req *http.Request) bool {
	return strings.Contains(req.URL.Path, "/auth/signin")
}

func isRetriedRequest(req *http.Request) bool {
	return req.Header.Get(retryMarkerHeader) != ""
}
