package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

// FilePreferencesRepositoryAdapter implements the PreferencesRepository port with a JSON file
type FilePreferencesRepositoryAdapter struct {
	path   string
	logger ports.Logger
}

// NewFilePreferencesRepositoryAdapter creates a repository backed by the JSON file at path
func NewFilePreferencesRepositoryAdapter(path string, logger ports.Logger) *FilePreferencesRepositoryAdapter {
	return &FilePreferencesRepositoryAdapter{path: path, logger: logger}
}

// Load reads the saved preferences. A missing file yields the defaults.
func (r *FilePreferencesRepositoryAdapter) Load(ctx context.Context) (weather.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return weather.Preferences{}, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug("No saved preferences, using defaults", ports.F("path", r.path))
			return weather.DefaultPreferences(), nil
		}
		return weather.Preferences{}, errors.NewStorageError("failed to read saved preferences", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return weather.Preferences{}, errors.NewStorageError("saved preferences file is not valid JSON", err)
	}

	record, err := decodeRecord(raw, r.logger)
	if err != nil {
		return weather.Preferences{}, err
	}
	return record.preferences(r.logger), nil
}

// Save writes the preferences, replacing the file atomically
func (r *FilePreferencesRepositoryAdapter) Save(ctx context.Context, prefs weather.Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(recordFromPreferences(prefs), "", "  ")
	if err != nil {
		return errors.NewStorageError("failed to encode preferences", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewStorageError("failed to create preferences directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.json")
	if err != nil {
		return errors.NewStorageError("failed to create preferences file", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			if removeErr := os.Remove(tmpName); removeErr != nil {
				r.logger.Warn("Failed to remove temporary preferences file", ports.F("error", removeErr))
			}
		}
	}()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return errors.NewStorageError("failed to write preferences file", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewStorageError("failed to write preferences file", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return errors.NewStorageError("failed to replace preferences file", err)
	}

	r.logger.Debug("Preferences written", ports.F("path", r.path))
	return nil
}
