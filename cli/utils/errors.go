package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"docvault/cli/styles"
	"docvault/shared"
	"docvault/shared/constants"
)

// HTTPError is a non-2xx response from the API, or a 2xx one whose envelope
// is not successful. Message comes from the envelope when the server sent one.
type HTTPError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *HTTPError) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("server error %d", e.StatusCode)
	} else if e.StatusCode == 0 {
		return "server error: " + e.Message
	}

	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

// ParseHTTPError reads an error response into an *HTTPError. The response
// body is consumed but not closed.
func ParseHTTPError(response *http.Response) error {
	httpErr := &HTTPError{StatusCode: response.StatusCode}
	if response.Request != nil {
		httpErr.RequestID = response.Request.Header.Get(constants.RequestIDHeader)
	}

	body, err := io.ReadAll(response.Body)
	if err == nil && len(body) > 0 {
		var envelope shared.Envelope
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != nil {
			httpErr.Message = envelope.Error.Message
			if envelope.Error.StatusCode != 0 {
				httpErr.StatusCode = envelope.Error.StatusCode
			}
		} else if !strings.HasPrefix(strings.TrimSpace(string(body)), "<") {
			httpErr.Message = strings.TrimSpace(string(body))
		}
	}

	if len(httpErr.Message) == 0 {
		httpErr.Message = http.StatusText(response.StatusCode)
	}

	return httpErr
}

// IsStatus reports whether err is an *HTTPError with the given status code.
func IsStatus(err error, status int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == status
}

// IsConnectionError reports whether err came from failing to reach the server.
func IsConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func HandleCLIError(msg string, err error) {
	if err == nil {
		return
	} else if errors.Is(err, huh.ErrUserAborted) {
		os.Exit(0)
	}

	styles.PrintErrStr(fmt.Sprintf("ERROR: %s - %v", msg, err))
	os.Exit(1)
}
