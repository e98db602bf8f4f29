// Package preferences merges persisted defaults with command-line overrides.
package preferences

import (
	"context"
	"fmt"

	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

// Resolution is the outcome of merging persisted preferences with overrides.
// Warnings hold every recovered problem, in the order it happened.
type Resolution struct {
	Preferences weather.Preferences
	Warnings    []error
}

type UseCase struct {
	repository ports.PreferencesRepository
	logger     ports.Logger
}

type UseCaseDependencies struct {
	Repository ports.PreferencesRepository
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("preferences repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		repository: deps.Repository,
		logger:     deps.Logger,
	}, nil
}

// Resolve loads the persisted preferences and applies the overrides key by key, in order.
// A failing override keeps the previous value and is reported as a warning.
func (uc *UseCase) Resolve(ctx context.Context, overrides []weather.Override) Resolution {
	var res Resolution

	prefs, err := uc.repository.Load(ctx)
	if err != nil {
		uc.logger.Warn("Failed to load saved preferences, using defaults", ports.F("error", err))
		res.Warnings = append(res.Warnings, fmt.Errorf("load saved preferences: %w", err))
		prefs = weather.DefaultPreferences()
	}
	prefs.Date = weather.Now()

	for _, o := range overrides {
		next, err := prefs.Apply(o)
		if err != nil {
			uc.logger.Debug("Override rejected",
				ports.F("key", o.Key),
				ports.F("value", o.Value),
				ports.F("error", err))
			res.Warnings = append(res.Warnings, err)
			continue
		}
		prefs = next
	}

	res.Preferences = prefs
	return res
}

// Save persists the preferences for later invocations
func (uc *UseCase) Save(ctx context.Context, prefs weather.Preferences) error {
	if err := uc.repository.Save(ctx, prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	uc.logger.Info("Preferences saved",
		ports.F("address", prefs.Address),
		ports.F("provider", prefs.Provider.String()),
		ports.F("temp_unit", prefs.TempUnit.Code()),
		ports.F("speed_unit", prefs.SpeedUnit.Code()))
	return nil
}
