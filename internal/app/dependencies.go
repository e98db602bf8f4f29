package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"weathercli.app/internal/adapters/external"
	"weathercli.app/internal/adapters/infrastructure"
	"weathercli.app/internal/adapters/storage"
	"weathercli.app/internal/config"
	"weathercli.app/internal/ports"
)

// DependencyContainer builds and owns the adapters behind every port
type DependencyContainer struct {
	config *config.Config
	db     *gorm.DB
	zap    *infrastructure.ZapLoggerAdapter

	InvocationID string
	Logger       ports.Logger
	Clock        ports.Clock
	Metrics      ports.MetricsCollector
	Preferences  ports.PreferencesRepository
	Registry     ports.ProviderRegistry
}

// DependencyOverrides replaces adapters that tests need to control
type DependencyOverrides struct {
	Clock      ports.Clock
	HTTPClient external.HTTPClient
	LogOutput  io.Writer
}

func NewDependencyContainer(cfg *config.Config, overrides DependencyOverrides) (*DependencyContainer, error) {
	c := &DependencyContainer{
		config:       cfg,
		InvocationID: uuid.NewString(),
		Clock:        overrides.Clock,
	}
	if c.Clock == nil {
		c.Clock = infrastructure.SystemClock{}
	}

	if err := c.initializeLogger(overrides.LogOutput); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	c.initializeMetrics()

	if err := c.initializePreferences(); err != nil {
		_ = c.Cleanup()
		return nil, fmt.Errorf("initialize preferences store: %w", err)
	}

	c.initializeProviders(overrides.HTTPClient)
	return c, nil
}

func (c *DependencyContainer) initializeLogger(output io.Writer) error {
	level, err := infrastructure.ParseLogLevel(c.config.Log.Level)
	if err != nil {
		return err
	}

	var logger ports.Logger
	if c.config.Log.Backend == "zap" && output == nil {
		zapLogger, err := infrastructure.NewProductionZapLogger(level)
		if err != nil {
			return fmt.Errorf("create zap logger: %w", err)
		}
		c.zap = zapLogger
		logger = zapLogger
	} else {
		if output == nil {
			output = defaultLogOutput
		}
		logger = infrastructure.NewSlogLoggerAdapter(output, level)
	}

	if c.config.Log.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.FilePath, slog.LevelDebug)
		if err != nil {
			logger.Warn("Failed to create file logger, logging to stderr only", ports.F("error", err))
		} else {
			logger = infrastructure.Tee(logger, fileLogger)
		}
	}

	c.Logger = infrastructure.WithFields(logger, ports.F("invocation_id", c.InvocationID))
	return nil
}

func (c *DependencyContainer) initializeMetrics() {
	if c.config.Metrics.Textfile == "" {
		c.Metrics = infrastructure.NopMetricsCollector{}
		return
	}
	c.Metrics = infrastructure.NewPrometheusMetricsCollector(c.config.Metrics.Textfile)
	c.Logger.Debug("Metrics textfile enabled", ports.F("path", c.config.Metrics.Textfile))
}

func (c *DependencyContainer) initializePreferences() error {
	prefsConfig := c.config.Preferences

	switch prefsConfig.Store {
	case config.StoreTypeSQLite, config.StoreTypePostgres:
		dsn, err := prefsConfig.DatabaseDSN()
		if err != nil {
			return err
		}
		db, err := storage.OpenDatabase(prefsConfig.Store.String(), dsn)
		if err != nil {
			return err
		}
		c.db = db
		c.Preferences = storage.NewGormPreferencesRepositoryAdapter(db, c.Logger)
	default:
		path, err := prefsConfig.FilePath()
		if err != nil {
			return err
		}
		c.Preferences = storage.NewFilePreferencesRepositoryAdapter(path, c.Logger)
	}

	c.Logger.Debug("Preferences store initialized", ports.F("store", prefsConfig.Store.String()))
	return nil
}

func (c *DependencyContainer) initializeProviders(client external.HTTPClient) {
	c.Registry = external.NewProviderRegistryAdapter(external.ProviderRegistryConfig{
		OpenWeatherKey:    c.config.Providers.OpenWeatherMapKey,
		OpenWeatherURL:    c.config.Providers.OpenWeatherMapBaseURL,
		WeatherAPIKey:     c.config.Providers.WeatherAPIKey,
		WeatherAPIBaseURL: c.config.Providers.WeatherAPIBaseURL,
		Timeout:           c.config.Providers.Timeout(),
		Client:            client,
		Clock:             c.Clock,
		Logger:            c.Logger,
	})
}

// Cleanup flushes metrics and releases the database connection
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.Metrics != nil {
		keep(c.Metrics.Flush())
	}
	if c.db != nil {
		keep(storage.CloseDatabase(c.db))
		c.db = nil
	}
	if c.zap != nil {
		// stderr cannot be synced on some platforms, so the result is ignored
		_ = c.zap.Sync()
	}
	return firstErr
}
