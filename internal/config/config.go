package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"weathercli.app/pkg/errors"
)

const (
	appDirName          = "weather"
	preferencesFileName = "config.json"
	preferencesDBName   = "preferences.db"
)

// StoreType selects where preferences are persisted
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeFile
	StoreTypeSQLite
	StoreTypePostgres
)

// String returns the string representation of the store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeFile:
		return "file"
	case StoreTypeSQLite:
		return "sqlite"
	case StoreTypePostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeFile || s == StoreTypeSQLite || s == StoreTypePostgres
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(s) {
	case "file":
		return StoreTypeFile
	case "sqlite":
		return StoreTypeSQLite
	case "postgres":
		return StoreTypePostgres
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Config represents the application configuration structure
type Config struct {
	Providers   ProvidersConfig   `split_words:"true"`
	Preferences PreferencesConfig `split_words:"true"`
	Log         LogConfig         `split_words:"true"`
	Metrics     MetricsConfig     `split_words:"true"`
}

// ProvidersConfig holds the upstream API settings. Keys may be empty:
// a missing key only fails the query that needs it.
type ProvidersConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5" validate:"required,url"`
	WeatherAPIKey         string `envconfig:"WEATHER_API_KEY"`
	WeatherAPIBaseURL     string `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1" validate:"required,url"`
	TimeoutSeconds        int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10" validate:"min=1,max=300"`
}

// Timeout returns the HTTP timeout as a duration
func (p ProvidersConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

type PreferencesConfig struct {
	Store StoreType `envconfig:"WEATHER_PREFERENCES_STORE" default:"file"`
	Path  string    `envconfig:"WEATHER_PREFERENCES_PATH"`
	DSN   string    `envconfig:"WEATHER_PREFERENCES_DSN"`
}

type LogConfig struct {
	Level    string `envconfig:"WEATHER_LOG_LEVEL" default:"warn" validate:"oneof=debug info warn warning error"`
	Backend  string `envconfig:"WEATHER_LOG_BACKEND" default:"slog" validate:"oneof=slog zap"`
	FilePath string `envconfig:"WEATHER_LOG_FILE_PATH"`
}

type MetricsConfig struct {
	Textfile string `envconfig:"WEATHER_METRICS_TEXTFILE"`
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

var structValidator = validator.New()

func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if err := c.Preferences.Validate(); err != nil {
		return err
	}
	return nil
}

// validateStruct reports the first failing validator tag by its environment key
func validateStruct(c *Config) error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.NewConfigurationError("invalid configuration", err)
	}

	fe := fieldErrs[0]
	return errors.NewConfigurationError(
		fmt.Sprintf("%s is invalid: failed '%s' check", envKey(fe.StructField()), fe.Tag()), err)
}

func envKey(field string) string {
	keys := map[string]string{
		"OpenWeatherMapBaseURL": "OPENWEATHERMAP_API_BASE_URL",
		"WeatherAPIBaseURL":     "WEATHER_API_BASE_URL",
		"TimeoutSeconds":        "WEATHER_HTTP_TIMEOUT_SECONDS",
		"Level":                 "WEATHER_LOG_LEVEL",
		"Backend":               "WEATHER_LOG_BACKEND",
	}
	if key, ok := keys[field]; ok {
		return key
	}
	return field
}

func (p *PreferencesConfig) Validate() error {
	if !p.Store.IsValid() {
		return errors.NewConfigurationError("WEATHER_PREFERENCES_STORE must be one of: file, sqlite, postgres", nil)
	}
	if p.Store == StoreTypePostgres && p.DSN == "" {
		return errors.NewConfigurationError("WEATHER_PREFERENCES_DSN is required when WEATHER_PREFERENCES_STORE is postgres", nil)
	}
	return nil
}

// FilePath returns the JSON preferences file, defaulting to the user config directory
func (p *PreferencesConfig) FilePath() (string, error) {
	if p.Path != "" {
		return p.Path, nil
	}
	return defaultLocation(preferencesFileName)
}

// DatabaseDSN returns the connection string for the database stores.
// SQLite defaults to a file next to the JSON preferences.
func (p *PreferencesConfig) DatabaseDSN() (string, error) {
	if p.DSN != "" {
		return p.DSN, nil
	}
	if p.Store == StoreTypeSQLite {
		return defaultLocation(preferencesDBName)
	}
	return "", errors.NewConfigurationError("WEATHER_PREFERENCES_DSN is not set", nil)
}

func defaultLocation(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewConfigurationError("cannot determine the user config directory", err)
	}
	return filepath.Join(dir, appDirName, name), nil
}
