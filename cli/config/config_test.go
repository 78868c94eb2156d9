package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/shared"
	"docvault/shared/constants"
)

const token = "test_token"
const dir = "/home/test/.config/docvault"

func testConfig(t *testing.T) *Config {
	t.Setenv(constants.ServerEnvVar, "")
	t.Setenv(constants.LogLevelEnvVar, "")
	t.Setenv(constants.CLIKeyEnvVar, "")

	config, err := ReadConfig(afero.NewMemMapFs(), dir)
	require.NoError(t, err)
	return config
}

func TestReadConfig(t *testing.T) {
	config := testConfig(t)

	assert.Equal(t, constants.DefaultServer, config.Server)
	assert.Equal(t, "dashboard", config.DefaultView)
	assert.Equal(t, 60*time.Second, config.Timeout)
	assert.Equal(t, uint64(0), config.Retries)

	exists, err := afero.Exists(config.fs, dir+"/.gitignore")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReadConfigExisting(t *testing.T) {
	t.Setenv(constants.ServerEnvVar, "")
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(dir, 0700))
	require.NoError(t, afero.WriteFile(fs, dir+"/config.yml",
		[]byte("server: https://docs.example.com/\nretries: 2\n"), 0644))

	config, err := ReadConfig(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com", config.Server)
	assert.Equal(t, uint64(2), config.Retries)
}

func TestServerEnvOverride(t *testing.T) {
	t.Setenv(constants.ServerEnvVar, "http://api.internal:9000/")

	config, err := ReadConfig(afero.NewMemMapFs(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:9000", config.Server)
}

func TestReadToken(t *testing.T) {
	config := testConfig(t)
	assert.Empty(t, config.ReadToken())
	assert.False(t, config.AuthState().IsAuthenticated)

	require.NoError(t, config.SetToken(token))
	assert.Equal(t, token, config.ReadToken())
	assert.True(t, config.AuthState().IsAuthenticated)
}

func TestSealedToken(t *testing.T) {
	config := testConfig(t)
	t.Setenv(constants.CLIKeyEnvVar, "cli-key")

	require.NoError(t, config.SetToken(token))
	raw, err := afero.ReadFile(config.fs, config.paths.token)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), token)
	assert.Equal(t, token, config.ReadToken())

	t.Setenv(constants.CLIKeyEnvVar, "other-key")
	assert.Empty(t, config.ReadToken())
}

func TestSealedTokenWithoutKey(t *testing.T) {
	config := testConfig(t)
	t.Setenv(constants.CLIKeyEnvVar, "cli-key")
	require.NoError(t, config.SetToken(token))

	t.Setenv(constants.CLIKeyEnvVar, "")
	assert.Empty(t, config.ReadToken())
	assert.False(t, config.AuthState().IsAuthenticated)
}

func TestPlainTokenWithKeySet(t *testing.T) {
	config := testConfig(t)
	require.NoError(t, config.SetToken(token))

	t.Setenv(constants.CLIKeyEnvVar, "cli-key")
	assert.Equal(t, token, config.ReadToken())
}

func TestUnreadableTokenFile(t *testing.T) {
	config := testConfig(t)
	require.NoError(t, afero.WriteFile(config.fs, config.paths.token,
		[]byte{0xb6, 0x2a, 0x28, 0x00, 0x31}, 0600))

	assert.Empty(t, config.ReadToken())
	assert.False(t, config.AuthState().IsAuthenticated)
}

func TestUserAndReset(t *testing.T) {
	config := testConfig(t)
	user := shared.User{ID: "u1", Email: "a@example.com", Role: shared.RoleViewer}

	require.NoError(t, config.SetToken(token))
	require.NoError(t, config.SetUser(user))

	state := config.AuthState()
	require.NotNil(t, state.User)
	assert.Equal(t, user, *state.User)

	require.NoError(t, config.Reset())
	assert.Empty(t, config.ReadToken())
	_, err := config.ReadUser()
	assert.Error(t, err)

	// Resetting twice is fine
	assert.NoError(t, config.Reset())
}
