package register

import (
	"docvault/cli/api"
	"docvault/shared"
)

// Register creates an account for email. The server sends a one-time code
// that must be verified before the account can be used.
func Register(ctx *api.Context, email, password string) error {
	envelope, err := ctx.Register(shared.Register{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}
