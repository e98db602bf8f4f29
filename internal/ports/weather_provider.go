package ports

import (
	"context"

	"weathercli.app/internal/core/weather"
)

// WeatherProvider defines the contract for an upstream weather API adapter
type WeatherProvider interface {
	// Query resolves the preferences into a single upstream request and returns a validated report
	Query(ctx context.Context, prefs weather.Preferences) (weather.Report, error)
	ID() weather.ProviderID
	Bounds() weather.TierBounds
}

// ProviderInfo describes a registered provider for listing
type ProviderInfo struct {
	ID      weather.ProviderID
	Bounds  weather.TierBounds
	Tiers   []weather.Tier
	Primary bool
}

// ProviderRegistry maps provider identifiers to their adapters
type ProviderRegistry interface {
	Lookup(id weather.ProviderID) (WeatherProvider, error)
	Providers() []ProviderInfo
}
