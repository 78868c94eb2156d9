package verify

import (
	"errors"

	"docvault/cli/api"
	"docvault/cli/config"
	"docvault/shared"
)

var errMissingToken = errors.New("server did not return an auth token")

// Verify submits the one-time code for email and, on success, stores the
// returned token and user so that later commands are authenticated.
func Verify(
	ctx *api.Context,
	cfg *config.Config,
	email,
	otp string,
) (shared.AuthResponse, error) {
	authResponse, err := ctx.VerifyOTP(shared.VerifyOTP{Email: email, OTP: otp})
	if err != nil {
		return shared.AuthResponse{}, err
	} else if len(authResponse.Token) == 0 {
		return shared.AuthResponse{}, errMissingToken
	}

	err = cfg.SetToken(authResponse.Token)
	if err != nil {
		return shared.AuthResponse{}, err
	}

	err = cfg.SetUser(authResponse.User)
	if err != nil {
		return shared.AuthResponse{}, err
	}

	return authResponse, nil
}

// Resend asks the server to send a fresh code to email.
func Resend(ctx *api.Context, email string) error {
	envelope, err := ctx.RequestOTP(email)
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}
