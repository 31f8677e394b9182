package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"PORT", "DB_PATH", "SECRET_KEY", "TZ", "DEFAULT_LANGUAGE", "COOKIE_SECURE", "LOG_LEVEL"} {
		t.Setenv(name, "")
		t.Setenv(envPrefix+"_"+name, "")
	}
}

func TestResolveSecretKey(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{raw: "", want: ErrSecretKeyMissing},
		{raw: "change_me_in_production", want: ErrSecretKeyInsecure},
		{raw: "replace_with_at_least_32_random_characters", want: ErrSecretKeyInsecure},
		{raw: "too-short-secret", want: ErrSecretKeyTooShort},
	}
	for _, test := range tests {
		_, err := ResolveSecretKey(test.raw)
		assert.ErrorIs(t, err, test.want, "secret %q", test.raw)
	}

	secret, err := ResolveSecretKey("  " + validSecret + " ")
	require.NoError(t, err)
	assert.Equal(t, validSecret, secret)
}

func TestResolvePort(t *testing.T) {
	port, err := ResolvePort("")
	require.NoError(t, err)
	assert.Equal(t, "8080", port)

	port, err = ResolvePort(" 9090 ")
	require.NoError(t, err)
	assert.Equal(t, "9090", port)

	for _, raw := range []string{"0", "70000", "not-a-number"} {
		_, err := ResolvePort(raw)
		assert.ErrorIs(t, err, ErrInvalidPort, "port %q", raw)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(NewViper(), false)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, filepath.Join("data", "mlimi.db"), cfg.DBPath)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.CookieSecure)
	assert.Empty(t, cfg.SecretKey)
}

func TestLoadPrefersPrefixedEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("MLIMI_PORT", "9100")
	t.Setenv("SECRET_KEY", validSecret)
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("TZ", "Africa/Blantyre")

	cfg, err := Load(NewViper(), true)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, validSecret, cfg.SecretKey)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "Africa/Blantyre", cfg.Location.String())
}

func TestLoadRequiresSecretForServer(t *testing.T) {
	clearConfigEnv(t)

	_, err := Load(NewViper(), true)
	assert.ErrorIs(t, err, ErrSecretKeyMissing)
}

func TestResolveLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, ResolveLocation(""))
	assert.Equal(t, time.UTC, ResolveLocation("Mars/Olympus"))
}

func TestLoadDotEnv(t *testing.T) {
	clearConfigEnv(t)
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_PATH=/tmp/from-dotenv.db\n"), 0o600))
	t.Setenv("DB_PATH", "")
	require.NoError(t, os.Unsetenv("DB_PATH"))

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load(NewViper(), false)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.DBPath)
}
