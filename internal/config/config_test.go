package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const minimalConfig = `
[google]
client_id = "id"
client_secret = "secret"
redirect_url = "http://localhost:8080/oauth/google/callback"
`

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "America/New_York", cfg.Business.Timezone)
	assert.Equal(t, "primary", cfg.Google.CalendarID)
	assert.Equal(t, "google_token.json", cfg.Credentials.File)
	assert.Nil(t, cfg.Database)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[server]
http_port = 9090

[business]
name = "Glow Salon"
timezone = "America/Chicago"
owner_phone = "+18135550000"

[database]
host = "localhost"
port = 5432
user = "svc"
password = "pw"
dbname = "scheduling"
sslmode = "disable"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "Glow Salon", cfg.Business.Name)
	assert.Equal(t, "America/Chicago", cfg.Business.Timezone)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "host=localhost port=5432 user=svc password=pw dbname=scheduling sslmode=disable", cfg.Database.DSN())
}

func TestLoad_MissingGoogleCredentials(t *testing.T) {
	_, err := Load(writeConfig(t, `
[google]
client_id = "id"
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "client_secret")
}

func TestLoad_InvalidPort(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
[server]
http_port = 70000
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http_port")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestChannelEnabledFlags(t *testing.T) {
	assert.False(t, TwilioConfig{}.Enabled())
	assert.False(t, TwilioConfig{AccountSID: "sid", AuthToken: "tok"}.Enabled())
	assert.True(t, TwilioConfig{AccountSID: "sid", AuthToken: "tok", FromNumber: "+18135550000"}.Enabled())

	assert.False(t, SendGridConfig{}.Enabled())
	assert.False(t, SendGridConfig{APIKey: "key"}.Enabled())
	assert.True(t, SendGridConfig{APIKey: "key", FromEmail: "no-reply@example.com"}.Enabled())
}
