package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyPort            = "port"
	KeyDBPath          = "db_path"
	KeySecretKey       = "secret_key"
	KeyTimezone        = "tz"
	KeyDefaultLanguage = "default_language"
	KeyCookieSecure    = "cookie_secure"
	KeyLogLevel        = "log_level"
	KeyLogDevelopment  = "log_development"
	KeyTemplatesDir    = "templates_dir"
	KeyLocalesDir      = "locales_dir"
	KeyStaticDir       = "static_dir"

	envPrefix          = "MLIMI"
	minSecretKeyLength = 32
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"secret": {},
}

var (
	ErrSecretKeyMissing  = errors.New("SECRET_KEY is required")
	ErrSecretKeyInsecure = errors.New("SECRET_KEY uses an insecure placeholder")
	ErrSecretKeyTooShort = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	ErrInvalidPort       = errors.New("PORT must be a number between 1 and 65535")
)

type Config struct {
	Port            string
	DBPath          string
	SecretKey       string
	Location        *time.Location
	DefaultLanguage string
	CookieSecure    bool
	LogLevel        string
	LogDevelopment  bool
	TemplatesDir    string
	LocalesDir      string
	StaticDir       string
}

// LoadDotEnv reads an optional .env file into the process environment.
// Variables already set in the environment win. A missing file is fine.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// NewViper returns a viper instance with defaults applied and every key bound
// to both MLIMI_<KEY> and the bare <KEY> environment variable, in that order.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyDBPath, filepath.Join("data", "mlimi.db"))
	v.SetDefault(KeyTimezone, "Africa/Blantyre")
	v.SetDefault(KeyDefaultLanguage, "en")
	v.SetDefault(KeyCookieSecure, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDevelopment, false)
	v.SetDefault(KeyTemplatesDir, filepath.Join("internal", "templates"))
	v.SetDefault(KeyLocalesDir, filepath.Join("internal", "i18n", "locales"))
	v.SetDefault(KeyStaticDir, filepath.Join("web", "static"))

	for _, key := range []string{
		KeyPort, KeyDBPath, KeySecretKey, KeyTimezone, KeyDefaultLanguage,
		KeyCookieSecure, KeyLogLevel, KeyLogDevelopment,
		KeyTemplatesDir, KeyLocalesDir, KeyStaticDir,
	} {
		envName := strings.ToUpper(key)
		_ = v.BindEnv(key, envPrefix+"_"+envName, envName)
	}
	return v
}

// Load resolves the server configuration. The secret key is only required
// when requireSecret is set; maintenance commands can run without it.
func Load(v *viper.Viper, requireSecret bool) (Config, error) {
	port, err := ResolvePort(v.GetString(KeyPort))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:            port,
		DBPath:          strings.TrimSpace(v.GetString(KeyDBPath)),
		Location:        ResolveLocation(v.GetString(KeyTimezone)),
		DefaultLanguage: strings.ToLower(strings.TrimSpace(v.GetString(KeyDefaultLanguage))),
		CookieSecure:    v.GetBool(KeyCookieSecure),
		LogLevel:        strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogDevelopment:  v.GetBool(KeyLogDevelopment),
		TemplatesDir:    v.GetString(KeyTemplatesDir),
		LocalesDir:      v.GetString(KeyLocalesDir),
		StaticDir:       v.GetString(KeyStaticDir),
	}
	if cfg.DBPath == "" {
		return Config{}, errors.New("DB_PATH must not be empty")
	}

	if requireSecret {
		secret, err := ResolveSecretKey(v.GetString(KeySecretKey))
		if err != nil {
			return Config{}, err
		}
		cfg.SecretKey = secret
	}
	return cfg, nil
}

func ResolveSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", ErrSecretKeyMissing
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", ErrSecretKeyInsecure
	}
	if len(secret) < minSecretKeyLength {
		return "", ErrSecretKeyTooShort
	}
	return secret, nil
}

func ResolvePort(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "8080", nil
	}
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return "", ErrInvalidPort
	}
	return strconv.Itoa(port), nil
}

// ResolveLocation falls back to UTC for an empty or unknown zone name.
func ResolveLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}
