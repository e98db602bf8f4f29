package external

import (
	"fmt"
	"time"

	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

// ProviderRegistryAdapter maps provider identifiers to their adapters.
// Each query goes to exactly one provider; there is no failover between them.
type ProviderRegistryAdapter struct {
	providers []ports.WeatherProvider
	byID      map[weather.ProviderID]ports.WeatherProvider
	logger    ports.Logger
}

// ProviderRegistryConfig holds configuration for creating the provider registry
type ProviderRegistryConfig struct {
	OpenWeatherKey    string
	OpenWeatherURL    string
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	Timeout           time.Duration
	Client            HTTPClient
	Clock             ports.Clock
	Logger            ports.Logger
}

// NewProviderRegistryAdapter creates the registry with every known provider, each wrapped in logging
func NewProviderRegistryAdapter(config ProviderRegistryConfig) *ProviderRegistryAdapter {
	openWeather := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  config.OpenWeatherKey,
		BaseURL: config.OpenWeatherURL,
		Timeout: config.Timeout,
		Client:  config.Client,
		Clock:   config.Clock,
		Logger:  config.Logger,
	})
	weatherAPI := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
		APIKey:  config.WeatherAPIKey,
		BaseURL: config.WeatherAPIBaseURL,
		Timeout: config.Timeout,
		Client:  config.Client,
		Clock:   config.Clock,
		Logger:  config.Logger,
	})

	return NewProviderRegistryFromProviders(config.Logger,
		NewWeatherProviderLoggingDecorator(openWeather, config.Logger),
		NewWeatherProviderLoggingDecorator(weatherAPI, config.Logger),
	)
}

// NewProviderRegistryFromProviders registers the given providers in display order.
// A later provider with an already registered ID is ignored.
func NewProviderRegistryFromProviders(logger ports.Logger, providers ...ports.WeatherProvider) *ProviderRegistryAdapter {
	registry := &ProviderRegistryAdapter{
		byID:   make(map[weather.ProviderID]ports.WeatherProvider, len(providers)),
		logger: logger,
	}

	for _, provider := range providers {
		id := provider.ID()
		if _, exists := registry.byID[id]; exists {
			logger.Warn("Duplicate weather provider ignored", ports.F("provider", id.String()))
			continue
		}
		registry.byID[id] = provider
		registry.providers = append(registry.providers, provider)
		logger.Debug("Registered weather provider", ports.F("provider", id.String()))
	}

	return registry
}

// Lookup returns the adapter registered for id
func (r *ProviderRegistryAdapter) Lookup(id weather.ProviderID) (ports.WeatherProvider, error) {
	provider, ok := r.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("provider '%s' is not registered", id))
	}
	return provider, nil
}

// Providers returns information about registered providers in registration order
func (r *ProviderRegistryAdapter) Providers() []ports.ProviderInfo {
	infos := make([]ports.ProviderInfo, 0, len(r.providers))
	for _, provider := range r.providers {
		bounds := provider.Bounds()
		infos = append(infos, ports.ProviderInfo{
			ID:      provider.ID(),
			Bounds:  bounds,
			Tiers:   tiersFor(bounds),
			Primary: provider.ID() == weather.PrimaryProvider,
		})
	}
	return infos
}

func tiersFor(bounds weather.TierBounds) []weather.Tier {
	tiers := []weather.Tier{weather.TierCurrent}
	if bounds.ShortTerm > 0 {
		tiers = append(tiers, weather.TierHourly)
	}
	if bounds.Horizon > bounds.ShortTerm {
		tiers = append(tiers, weather.TierDaily)
	}
	return tiers
}
