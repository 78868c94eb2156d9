package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"docvault/cli/requests"
	"docvault/cli/utils"
	"docvault/shared"
)

type Context struct {
	Server string
	Token  string
	Client *requests.Client
}

func InitContext(server, token string, client *requests.Client) *Context {
	if client == nil {
		client = requests.NewClient()
	}

	return &Context{
		Server: server,
		Token:  token,
		Client: client,
	}
}

// decodeEnvelope closes the response and decodes its envelope. Non-2xx
// responses become an *utils.HTTPError.
func decodeEnvelope[T any](resp *http.Response) (shared.Response[T], error) {
	defer resp.Body.Close()

	var envelope shared.Response[T]
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return envelope, utils.ParseHTTPError(resp)
	}

	err := json.NewDecoder(resp.Body).Decode(&envelope)
	if errors.Is(err, io.EOF) {
		// Empty body on success
		envelope.Success = true
		return envelope, nil
	} else if err != nil {
		return envelope, err
	}

	return envelope, nil
}

func decodeRaw(resp *http.Response) (shared.Envelope, error) {
	return decodeEnvelope[json.RawMessage](resp)
}

// unwrap decodes the envelope and returns its data payload. A 2xx envelope
// without "success": true is returned as an *utils.HTTPError.
func unwrap[T any](resp *http.Response) (T, error) {
	var empty T
	envelope, err := decodeEnvelope[T](resp)
	if err != nil {
		return empty, err
	}

	if err = envelopeError(envelope.Success, envelope.Error, resp.StatusCode); err != nil {
		return empty, err
	}

	if envelope.Data == nil {
		return empty, nil
	}

	return *envelope.Data, nil
}

// EnvelopeError returns nil for a successful envelope, and otherwise an
// *utils.HTTPError carrying the envelope's error message.
func EnvelopeError(envelope shared.Envelope) error {
	return envelopeError(envelope.Success, envelope.Error, 0)
}

func envelopeError(success bool, respErr *shared.ResponseError, status int) error {
	if success {
		return nil
	}

	httpErr := &utils.HTTPError{StatusCode: status, Message: "request was not successful"}
	if respErr != nil {
		if len(respErr.Message) > 0 {
			httpErr.Message = respErr.Message
		}
		if respErr.StatusCode != 0 {
			httpErr.StatusCode = respErr.StatusCode
		}
	}

	return httpErr
}

func (ctx *Context) get(url string) (*http.Response, error) {
	return ctx.Client.GetRequest(ctx.Token, url)
}

func (ctx *Context) postJSON(url string, payload any) (*http.Response, error) {
	var reqData []byte
	if payload != nil {
		var err error
		reqData, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}

	return ctx.Client.PostRequest(ctx.Token, url, reqData)
}

func (ctx *Context) putJSON(url string, payload any) (*http.Response, error) {
	reqData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return ctx.Client.PutRequest(ctx.Token, url, reqData)
}

func (ctx *Context) delete(url string) (*http.Response, error) {
	return ctx.Client.DeleteRequest(ctx.Token, url, nil)
}

// resolveLink turns a server-relative link into an absolute URL.
func resolveLink(server, link string) string {
	if strings.HasPrefix(link, "/") {
		return strings.TrimSuffix(server, "/") + link
	}

	return link
}

func isSameHost(server, link string) bool {
	serverURL, err := url.Parse(server)
	if err != nil {
		return false
	}

	linkURL, err := url.Parse(link)
	if err != nil {
		return false
	}

	return serverURL.Host == linkURL.Host
}
