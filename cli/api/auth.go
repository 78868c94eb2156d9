package api

import (
	"docvault/shared"
	"docvault/shared/endpoints"
)

// Register creates a new account. The server replies with an envelope and
// emails a one-time code that must be passed to VerifyOTP.
func (ctx *Context) Register(register shared.Register) (shared.Envelope, error) {
	if err := register.Validate(); err != nil {
		return shared.Envelope{}, err
	}

	url := endpoints.Register.Format(ctx.Server)
	resp, err := ctx.postJSON(url, register)
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}

// Login submits a user's credentials. On success the server sends a one-time
// code; the session token is only issued by VerifyOTP.
func (ctx *Context) Login(login shared.Login) (shared.Envelope, error) {
	if err := login.Validate(); err != nil {
		return shared.Envelope{}, err
	}

	url := endpoints.Login.Format(ctx.Server)
	resp, err := ctx.postJSON(url, login)
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}

// VerifyOTP exchanges an email and one-time code for an auth token and the
// user's details. The token is also set on the Context for later calls.
func (ctx *Context) VerifyOTP(verify shared.VerifyOTP) (shared.AuthResponse, error) {
	if err := verify.Validate(); err != nil {
		return shared.AuthResponse{}, err
	}

	url := endpoints.VerifyOTP.Format(ctx.Server)
	resp, err := ctx.postJSON(url, verify)
	if err != nil {
		return shared.AuthResponse{}, err
	}

	authResponse, err := unwrap[shared.AuthResponse](resp)
	if err != nil {
		return shared.AuthResponse{}, err
	}

	if len(authResponse.Token) > 0 {
		ctx.Token = authResponse.Token
	}

	return authResponse, nil
}

// RequestOTP asks the server to send a new one-time code to email.
func (ctx *Context) RequestOTP(email string) (shared.Envelope, error) {
	request := shared.RequestOTP{Email: email}
	if err := request.Validate(); err != nil {
		return shared.Envelope{}, err
	}

	url := endpoints.RequestOTP.Format(ctx.Server)
	resp, err := ctx.postJSON(url, request)
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}
