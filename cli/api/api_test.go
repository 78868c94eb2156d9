package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/cli/requests"
)

const testToken = "test-token"

// recorded is what the fake backend saw for the last request.
type recorded struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
	Header http.Header
}

type fakeBackend struct {
	t      *testing.T
	server *httptest.Server
	last   recorded
	status int
	reply  any
}

// newFakeBackend starts a server that records each request and replies with
// the configured status and JSON body.
func newFakeBackend(t *testing.T) *fakeBackend {
	fb := &fakeBackend{t: t, status: http.StatusOK}
	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		fb.last = recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
			Header: r.Header.Clone(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fb.status)
		if fb.reply != nil {
			assert.NoError(t, json.NewEncoder(w).Encode(fb.reply))
		}
	}))

	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBackend) respond(status int, reply any) {
	fb.status = status
	fb.reply = reply
}

func (fb *fakeBackend) context(token string) *Context {
	return InitContext(fb.server.URL, token, requests.NewClient())
}

func ok(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func failure(status int, msg string) map[string]any {
	return map[string]any{
		"success": false,
		"error":   map[string]any{"message": msg, "statusCode": status},
	}
}

func jsonBody(t *testing.T, body []byte) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}
