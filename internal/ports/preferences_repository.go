package ports

import (
	"context"

	"weathercli.app/internal/core/weather"
)

// PreferencesRepository persists the preferences remembered across invocations.
// Load never returns the persisted date: every invocation starts from "now".
type PreferencesRepository interface {
	Load(ctx context.Context) (weather.Preferences, error)
	Save(ctx context.Context, prefs weather.Preferences) error
}
