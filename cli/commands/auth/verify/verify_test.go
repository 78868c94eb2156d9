package verify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/cli/api"
	"docvault/cli/config"
	"docvault/cli/requests"
	"docvault/shared"
	"docvault/shared/constants"
)

const (
	validOTP        = "123456"
	alphanumericOTP = "AB12CD"
	rejectedOTP     = "000001"
	tokenlessOTP    = "000002"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		var body shared.VerifyOTP
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		switch body.OTP {
		case rejectedOTP:
			_, _ = w.Write([]byte(`{"success":false}`))
			return
		case tokenlessOTP:
			_, _ = w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1"}}}`))
			return
		}

		if body.OTP != validOTP && body.OTP != alphanumericOTP {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":{"message":"Invalid OTP","statusCode":401}}`))
			return
		}

		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"jwt","user":` +
			`{"id":"u1","email":"a@b.co","role":"viewer"}}}`))
	})
	mux.HandleFunc("/auth/request-otp", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConfig(t *testing.T) *config.Config {
	t.Setenv(constants.ServerEnvVar, "")
	t.Setenv(constants.CLIKeyEnvVar, "")

	cfg, err := config.ReadConfig(afero.NewMemMapFs(), "/home/test/.config/docvault")
	require.NoError(t, err)
	return cfg
}

func TestVerifyStoresSession(t *testing.T) {
	server := newTestServer(t)
	ctx := api.InitContext(server.URL, "", requests.NewClient())
	cfg := testConfig(t)

	authResponse, err := Verify(ctx, cfg, "a@b.co", validOTP)
	require.NoError(t, err)
	assert.Equal(t, "jwt", authResponse.Token)
	assert.Equal(t, "jwt", ctx.Token)
	assert.Equal(t, "jwt", cfg.ReadToken())

	state := cfg.AuthState()
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "a@b.co", state.User.Email)
}

func TestVerifyInvalidCode(t *testing.T) {
	server := newTestServer(t)
	ctx := api.InitContext(server.URL, "", requests.NewClient())
	cfg := testConfig(t)

	_, err := Verify(ctx, cfg, "a@b.co", "000000")
	assert.ErrorContains(t, err, "Invalid OTP")
	assert.Empty(t, cfg.ReadToken())
	assert.False(t, cfg.AuthState().IsAuthenticated)
}

func TestResend(t *testing.T) {
	server := newTestServer(t)
	ctx := api.InitContext(server.URL, "", requests.NewClient())

	assert.NoError(t, Resend(ctx, "a@b.co"))
	assert.Error(t, Resend(ctx, "not-an-email"))
}

func TestVerifyAlphanumericCode(t *testing.T) {
	server := newTestServer(t)
	ctx := api.InitContext(server.URL, "", requests.NewClient())
	cfg := testConfig(t)

	_, err := Verify(ctx, cfg, "a@b.co", alphanumericOTP)
	require.NoError(t, err)
	assert.Equal(t, "jwt", cfg.ReadToken())
}

func TestVerifyUnsuccessfulEnvelope(t *testing.T) {
	server := newTestServer(t)
	ctx := api.InitContext(server.URL, "", requests.NewClient())
	cfg := testConfig(t)

	for _, otp := range []string{rejectedOTP, tokenlessOTP} {
		_, err := Verify(ctx, cfg, "a@b.co", otp)
		assert.Error(t, err, otp)
		assert.Empty(t, ctx.Token, otp)
		assert.Empty(t, cfg.ReadToken(), otp)
		assert.False(t, cfg.AuthState().IsAuthenticated, otp)
	}
}
