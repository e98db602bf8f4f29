// Package lookup dispatches a resolved preference set to the provider it names.
package lookup

import (
	"context"
	"fmt"
	"time"

	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

type UseCase struct {
	registry ports.ProviderRegistry
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

type UseCaseDependencies struct {
	Registry ports.ProviderRegistry
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Registry == nil {
		return nil, errors.NewValidationError("provider registry is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		registry: deps.Registry,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// Dispatch sends the preferences to exactly one provider and returns its report.
// A blank address fails before any provider is consulted.
func (uc *UseCase) Dispatch(ctx context.Context, prefs weather.Preferences) (weather.Report, error) {
	if !prefs.HasAddress() {
		return nil, errors.NewPreconditionError("address is not set, use -address <text> or save one with 'weather save -address <text>'")
	}

	provider, err := uc.registry.Lookup(prefs.Provider)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Dispatching weather query",
		ports.F("provider", prefs.Provider.String()),
		ports.F("address", prefs.Address),
		ports.F("date", prefs.Date.String()))

	startTime := time.Now()
	report, err := provider.Query(ctx, prefs)
	uc.metrics.RecordWeatherAPIDuration(ctx, prefs.Provider.String(), time.Since(startTime))
	uc.metrics.RecordWeatherAPICall(ctx, prefs.Provider.String(), err == nil)

	if err != nil {
		return nil, fmt.Errorf("query %s: %w", prefs.Provider, err)
	}
	return report, nil
}

// Providers lists every registered provider in display order
func (uc *UseCase) Providers() []ports.ProviderInfo {
	return uc.registry.Providers()
}
