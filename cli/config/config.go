package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"docvault/cli/crypto"
	"docvault/shared"
	"docvault/shared/constants"
)

type Paths struct {
	config    string
	gitignore string
	token     string
	user      string
}

type Config struct {
	Server      string        `yaml:"server,omitempty"`
	DefaultView string        `yaml:"default_view,omitempty"`
	Retries     uint64        `yaml:"retries,omitempty"`
	RateLimit   float64       `yaml:"rate_limit,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	LogLevel    string        `yaml:"log_level,omitempty"`

	fs    afero.Fs
	paths Paths
}

var baseConfigPath = filepath.Join(".config", "docvault")

const configFileName = "config.yml"
const gitignoreName = ".gitignore"
const tokenName = "token"
const userName = "user.json"

// sealedPrefix marks a token file written with DOCVAULT_CLI_KEY set.
const sealedPrefix = "docvault-sealed-v1:"

//go:embed config.yml
var defaultConfig string

// LoadConfig reads (or creates) the config in $HOME/.config/docvault, then
// applies overrides from the environment and a local .env file.
func LoadConfig() *Config {
	// A missing .env is expected
	_ = godotenv.Load()

	dirname, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}

	config, err := ReadConfig(afero.NewOsFs(), filepath.Join(dirname, baseConfigPath))
	if err != nil {
		log.Fatal(err)
	}

	return config
}

// ReadConfig reads config.yml from dir on fs, writing the default config
// first if none exists.
func ReadConfig(fs afero.Fs, dir string) (*Config, error) {
	paths, err := setupConfigDir(fs, dir)
	if err != nil {
		return nil, err
	}

	if exists, _ := afero.Exists(fs, paths.config); !exists {
		err = setupDefaultConfig(fs, paths)
		if err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(fs, paths.config)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", paths.config, err)
	}

	config.fs = fs
	config.paths = paths
	config.applyEnv()

	return config, nil
}

func (c *Config) applyEnv() {
	if server := os.Getenv(constants.ServerEnvVar); len(server) > 0 {
		c.Server = server
	}

	if level := os.Getenv(constants.LogLevelEnvVar); len(level) > 0 {
		c.LogLevel = level
	}

	if len(c.Server) == 0 {
		c.Server = constants.DefaultServer
	}

	// Strip trailing slash
	c.Server = strings.TrimSuffix(c.Server, "/")
}

// setupConfigDir ensures that the directory for docvault's config exists
func setupConfigDir(fs afero.Fs, dir string) (Paths, error) {
	err := fs.MkdirAll(dir, 0700)
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		config:    filepath.Join(dir, configFileName),
		gitignore: filepath.Join(dir, gitignoreName),
		token:     filepath.Join(dir, tokenName),
		user:      filepath.Join(dir, userName),
	}, nil
}

// setupDefaultConfig copies the default config to the user's config directory
func setupDefaultConfig(fs afero.Fs, paths Paths) error {
	err := afero.WriteFile(fs, paths.config, []byte(defaultConfig), 0644)
	if err != nil {
		return err
	}

	defaultGitignore := fmt.Sprintf("%s\n%s\n", tokenName, userName)
	return afero.WriteFile(fs, paths.gitignore, []byte(defaultGitignore), 0644)
}

// SetToken stores the auth token returned after OTP verification. If
// DOCVAULT_CLI_KEY is set, the token is sealed with it before being written.
func (c *Config) SetToken(token string) error {
	data := []byte(token)
	if cliKey := crypto.ReadCLIKey(); len(cliKey) > 0 {
		sealed, err := crypto.SealToken(cliKey, token)
		if err != nil {
			return err
		}
		data = append([]byte(sealedPrefix), sealed...)
	}

	return afero.WriteFile(c.fs, c.paths.token, data, 0600)
}

// ReadToken returns the stored token, or an empty string if there is none or
// it cannot be unsealed with the current DOCVAULT_CLI_KEY.
func (c *Config) ReadToken() string {
	data, err := afero.ReadFile(c.fs, c.paths.token)
	if err != nil || len(data) == 0 {
		return ""
	}

	sealed, isSealed := bytes.CutPrefix(data, []byte(sealedPrefix))
	cliKey := crypto.ReadCLIKey()
	if isSealed && len(cliKey) == 0 {
		log.Printf("stored token is encrypted, set %s to use it or log in again",
			constants.CLIKeyEnvVar)
		return ""
	} else if isSealed {
		token, err := crypto.OpenToken(cliKey, sealed)
		if err != nil {
			log.Printf("failed to decrypt token with %s value", constants.CLIKeyEnvVar)
			return ""
		}
		return token
	}

	token := strings.TrimSpace(string(data))
	if !isPrintable(token) {
		log.Printf("ignoring unreadable token file, log in again")
		return ""
	}

	return token
}

// isPrintable reports whether token can be sent in an Authorization header.
func isPrintable(token string) bool {
	for _, r := range token {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}

	return true
}

func (c *Config) SetUser(user shared.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return afero.WriteFile(c.fs, c.paths.user, data, 0600)
}

func (c *Config) ReadUser() (*shared.User, error) {
	data, err := afero.ReadFile(c.fs, c.paths.user)
	if err != nil {
		return nil, err
	}

	var user shared.User
	err = json.Unmarshal(data, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// AuthState reports the stored login. A token alone is enough to count as
// authenticated; the user record is informational.
func (c *Config) AuthState() shared.AuthState {
	token := c.ReadToken()
	state := shared.AuthState{
		Token:           token,
		IsAuthenticated: len(token) > 0,
	}

	if user, err := c.ReadUser(); err == nil {
		state.User = user
	}

	return state
}

// Reset removes the stored token and user.
func (c *Config) Reset() error {
	for _, path := range []string{c.paths.token, c.paths.user} {
		err := c.fs.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("error removing %s", path)
			return err
		}
	}

	return nil
}
