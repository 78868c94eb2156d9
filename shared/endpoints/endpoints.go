package endpoints

import (
	"fmt"
	"net/url"
	"strings"
)

type Endpoint string

var (
	Register   = Endpoint("/auth/register")
	Login      = Endpoint("/auth/login")
	VerifyOTP  = Endpoint("/auth/verify-otp")
	RequestOTP = Endpoint("/auth/request-otp")

	Documents          = Endpoint("/documents")
	Document           = Endpoint("/documents/*")
	DocumentDownload   = Endpoint("/documents/*/download")
	DocumentRegenerate = Endpoint("/documents/*/regenerate")
	DocumentVisibility = Endpoint("/documents/*/visibility")
	DocumentMove       = Endpoint("/documents/*/move")

	Upload = Endpoint("/upload")

	Folders = Endpoint("/folders")
	Folder  = Endpoint("/folders/*")
)

// Format builds a full URL from the server base and the endpoint, replacing
// each "*" wildcard with the next arg. Args are path-escaped.
func (e Endpoint) Format(server string, args ...string) string {
	strEndpoint := string(e)
	for _, arg := range args {
		strEndpoint = strings.Replace(strEndpoint, "*", url.PathEscape(arg), 1)
	}

	// Remove remaining wildcards
	strEndpoint = strings.ReplaceAll(strEndpoint, "*", "")

	server = strings.TrimSuffix(server, "/")
	strEndpoint = strings.TrimPrefix(strEndpoint, "/")
	return fmt.Sprintf("%s/%s", server, strEndpoint)
}

// WithQuery appends non-empty query params to a formatted endpoint URL.
func WithQuery(endpointURL string, params map[string]string) string {
	query := url.Values{}
	for key, val := range params {
		if len(val) > 0 {
			query.Set(key, val)
		}
	}

	if len(query) == 0 {
		return endpointURL
	}

	return endpointURL + "?" + query.Encode()
}
