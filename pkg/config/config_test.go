package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURI, cfg.Client.BaseURI)
	assert.Equal(t, DefaultVersion, cfg.Client.Version)
	assert.Equal(t, DefaultTimeout, cfg.Client.Timeout)
	assert.Equal(t, 8080, cfg.Stub.Port)
	assert.Equal(t, 10, cfg.Stub.Burst)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
client:
  login: demo
  password: secret
  base_uri: http://127.0.0.1:8080
  version: v2
  timeout: 5s
stub:
  port: 9090
  jwt_secret: stub-secret-value
  accounts:
    - login: demo
      password_hash: "$2a$10$abcdefghijklmnopqrstuv"
log:
  level: debug
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Client.Login)
	assert.Equal(t, "secret", cfg.Client.Password)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Client.BaseURI)
	assert.Equal(t, "v2", cfg.Client.Version)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 9090, cfg.Stub.Port)
	require.Len(t, cfg.Stub.Accounts, 1)
	assert.Equal(t, "demo", cfg.Stub.Accounts[0].Login)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "client:\n  login: from-file\n")
	t.Setenv("CALL2FA_LOGIN", "from-env")
	t.Setenv("CALL2FA_PASSWORD", "pw")
	t.Setenv("CALL2FA_VERSION", "v3")
	t.Setenv("CALL2FA_TIMEOUT", "750ms")
	t.Setenv("STUB_PORT", "7000")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Client.Login)
	assert.Equal(t, "pw", cfg.Client.Password)
	assert.Equal(t, "v3", cfg.Client.Version)
	assert.Equal(t, 750*time.Millisecond, cfg.Client.Timeout)
	assert.Equal(t, 7000, cfg.Stub.Port)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "client: [\n"},
		{name: "bad port", body: "stub:\n  port: 70000\n"},
		{name: "bad base uri", body: "client:\n  base_uri: not a url\n"},
		{name: "bad log level", body: "log:\n  level: chatty\n"},
		{name: "account without hash", body: "stub:\n  accounts:\n    - login: demo\n"},
		{name: "bad timeout env", body: "", env: map[string]string{"CALL2FA_TIMEOUT": "soon"}},
		{name: "bad port env", body: "", env: map[string]string{"STUB_PORT": "eighty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
