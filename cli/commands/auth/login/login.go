package login

import (
	"docvault/cli/api"
	"docvault/shared"
)

// LogIn submits the user's credentials. A successful login does not yet
// return a token: the server emails a one-time code, which is exchanged for
// a token via the verify step.
func LogIn(ctx *api.Context, email, password string) error {
	envelope, err := ctx.Login(shared.Login{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}
