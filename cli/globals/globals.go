package globals

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"docvault/cli/api"
	"docvault/cli/config"
	"docvault/cli/requests"
)

var API *api.Context
var Config *config.Config
var Logger hclog.Logger

// Init loads the user's config and stored token and sets up the shared API
// context. It must run before any command.
func Init() {
	Config = config.LoadConfig()
	Logger = newLogger(os.Stderr)

	client := requests.NewClient(
		requests.WithTimeout(Config.Timeout),
		requests.WithRetries(Config.Retries),
		requests.WithRateLimit(Config.RateLimit, 1),
		requests.WithLogger(Logger.Named("requests")))

	API = api.InitContext(Config.Server, Config.ReadToken(), client)
	Logger.Debug("initialized", "server", Config.Server, "authenticated", len(API.Token) > 0)
}

// SetLogOutput redirects logging, used while a full-screen view owns the
// terminal.
func SetLogOutput(w io.Writer) {
	Logger = newLogger(w)
	if API != nil && API.Client != nil {
		API.Client.Logger = Logger.Named("requests")
	}
}

func newLogger(w io.Writer) hclog.Logger {
	level := hclog.Warn
	if Config != nil {
		if parsed := hclog.LevelFromString(Config.LogLevel); parsed != hclog.NoLevel {
			level = parsed
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "docvault",
		Level:  level,
		Output: w,
	})
}
