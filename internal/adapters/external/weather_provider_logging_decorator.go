package external

import (
	"context"
	"time"

	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Query wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) Query(ctx context.Context, prefs weather.Preferences) (weather.Report, error) {
	providerID := d.provider.ID().String()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerID),
		ports.F("address", prefs.Address),
		ports.F("date", prefs.Date.String()),
		ports.F("event", "request"))

	startTime := time.Now()
	report, err := d.provider.Query(ctx, prefs)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerID),
			ports.F("address", prefs.Address),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("provider", providerID),
		ports.F("address", prefs.Address),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if temp, err := report.Temp(); err == nil {
		fields = append(fields, ports.F("temperature", temp.String()))
	}
	if humidity, err := report.Humidity(); err == nil {
		fields = append(fields, ports.F("humidity", humidity))
	}
	d.logger.Info("Weather API request completed", fields...)

	return report, nil
}

// ID returns the identifier of the wrapped provider
func (d *WeatherProviderLoggingDecorator) ID() weather.ProviderID {
	return d.provider.ID()
}

// Bounds returns the horizons of the wrapped provider
func (d *WeatherProviderLoggingDecorator) Bounds() weather.TierBounds {
	return d.provider.Bounds()
}
