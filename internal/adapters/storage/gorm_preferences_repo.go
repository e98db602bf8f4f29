package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

// profileID is the key of the single preferences row
const profileID = 1

// PreferencesModel represents the database model for saved preferences
type PreferencesModel struct {
	ID        uint   `gorm:"primaryKey"`
	Address   string `gorm:"not null;default:''"`
	TempUnit  string `gorm:"size:1"`
	SpeedUnit string `gorm:"size:16"`
	Provider  string `gorm:"size:32"`
	Date      string `gorm:"size:32"`
	UpdatedAt time.Time
}

func (PreferencesModel) TableName() string {
	return "preferences"
}

// OpenDatabase connects to the preferences database and migrates its schema.
// backend is "sqlite" (dsn is a file path) or "postgres" (dsn is a connection string).
func OpenDatabase(backend, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch backend {
	case "sqlite":
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, errors.NewStorageError("failed to create preferences directory", err)
			}
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported preferences database '%s'", backend), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, errors.NewStorageError("failed to connect to preferences database", err)
	}

	if backend == "sqlite" {
		// every sqlite connection to ":memory:" is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.NewStorageError("failed to access preferences database", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&PreferencesModel{}); err != nil {
		return nil, errors.NewStorageError("failed to migrate preferences database", err)
	}
	return db, nil
}

// CloseDatabase safely closes the database connection
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GormPreferencesRepositoryAdapter implements the PreferencesRepository port using GORM
type GormPreferencesRepositoryAdapter struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewGormPreferencesRepositoryAdapter creates a new preferences repository adapter
func NewGormPreferencesRepositoryAdapter(db *gorm.DB, logger ports.Logger) *GormPreferencesRepositoryAdapter {
	return &GormPreferencesRepositoryAdapter{db: db, logger: logger}
}

// Load reads the saved preferences row. A missing row yields the defaults.
func (r *GormPreferencesRepositoryAdapter) Load(ctx context.Context) (weather.Preferences, error) {
	var model PreferencesModel
	result := r.db.WithContext(ctx).Limit(1).Find(&model, profileID)
	if result.Error != nil {
		return weather.Preferences{}, errors.NewStorageError("failed to load saved preferences", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Debug("No saved preferences, using defaults")
		return weather.DefaultPreferences(), nil
	}

	return r.modelToRecord(&model).preferences(r.logger), nil
}

// Save upserts the preferences row
func (r *GormPreferencesRepositoryAdapter) Save(ctx context.Context, prefs weather.Preferences) error {
	model := r.recordToModel(recordFromPreferences(prefs))

	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return errors.NewStorageError("failed to save preferences", result.Error)
	}
	return nil
}

func (r *GormPreferencesRepositoryAdapter) recordToModel(record preferencesRecord) *PreferencesModel {
	return &PreferencesModel{
		ID:        profileID,
		Address:   record.Address,
		TempUnit:  record.TempUnit,
		SpeedUnit: record.SpeedUnit,
		Provider:  record.Provider,
		Date:      record.Date,
	}
}

func (r *GormPreferencesRepositoryAdapter) modelToRecord(model *PreferencesModel) preferencesRecord {
	return preferencesRecord{
		Address:   model.Address,
		TempUnit:  model.TempUnit,
		SpeedUnit: model.SpeedUnit,
		Provider:  model.Provider,
		Date:      model.Date,
	}
}
