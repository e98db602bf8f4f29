package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/mocks"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

func TestProviderRegistryAdapter_Lookup(t *testing.T) {
	registry := NewProviderRegistryAdapter(ProviderRegistryConfig{
		OpenWeatherKey: "owm-key",
		WeatherAPIKey:  "wapi-key",
		Clock:          setupClockMock(t),
		Logger:         setupLoggerMock(t),
	})

	tests := []struct {
		name    string
		id      weather.ProviderID
		wantErr bool
	}{
		{name: "OpenWeather", id: weather.ProviderOpenWeather},
		{name: "WeatherApi", id: weather.ProviderWeatherAPI},
		{name: "Unknown", id: weather.ProviderID("AccuWeather"), wantErr: true},
		{name: "CaseSensitive", id: weather.ProviderID("openweather"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := registry.Lookup(tt.id)
			if tt.wantErr {
				assert.Nil(t, provider)
				assert.True(t, errors.IsNotFoundError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, provider.ID())
		})
	}
}

func TestProviderRegistryAdapter_Providers(t *testing.T) {
	registry := NewProviderRegistryAdapter(ProviderRegistryConfig{
		Clock:  setupClockMock(t),
		Logger: setupLoggerMock(t),
	})

	infos := registry.Providers()

	require.Len(t, infos, 2)
	assert.Equal(t, ports.ProviderInfo{
		ID:      weather.ProviderOpenWeather,
		Bounds:  weather.TierBounds{Horizon: 15, ShortTerm: 5},
		Tiers:   []weather.Tier{weather.TierCurrent, weather.TierHourly, weather.TierDaily},
		Primary: true,
	}, infos[0])
	assert.Equal(t, ports.ProviderInfo{
		ID:     weather.ProviderWeatherAPI,
		Bounds: weather.TierBounds{Horizon: 9, ShortTerm: 10},
		Tiers:  []weather.Tier{weather.TierCurrent, weather.TierHourly},
	}, infos[1])
}

func TestProviderRegistryAdapter_DuplicateIgnored(t *testing.T) {
	first := mocks.NewWeatherProvider(t)
	first.EXPECT().ID().Return(weather.ProviderOpenWeather)
	second := mocks.NewWeatherProvider(t)
	second.EXPECT().ID().Return(weather.ProviderOpenWeather)

	registry := NewProviderRegistryFromProviders(setupLoggerMock(t), first, second)

	provider, err := registry.Lookup(weather.ProviderOpenWeather)
	require.NoError(t, err)
	assert.Same(t, first, provider)
}

func TestProviderRegistryAdapter_DispatchesToSelectedProviderOnly(t *testing.T) {
	openWeatherCalls := 0
	openWeatherServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		openWeatherCalls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer openWeatherServer.Close()

	weatherAPIServer := newMockWeatherAPIServer(t)

	registry := NewProviderRegistryAdapter(ProviderRegistryConfig{
		OpenWeatherKey:    "owm-key",
		OpenWeatherURL:    openWeatherServer.URL,
		WeatherAPIKey:     mockWeatherAPIKey,
		WeatherAPIBaseURL: weatherAPIServer.URL,
		Clock:             setupClockMock(t),
		Logger:            setupLoggerMock(t),
	})

	provider, err := registry.Lookup(weather.ProviderWeatherAPI)
	require.NoError(t, err)

	report, err := provider.Query(context.Background(), prefsFor("kyiv", weather.Now()))
	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, 0, openWeatherCalls)

	// a failing provider is not retried with another one
	provider, err = registry.Lookup(weather.ProviderOpenWeather)
	require.NoError(t, err)

	_, err = provider.Query(context.Background(), prefsFor("kyiv", weather.Now()))
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Equal(t, 1, openWeatherCalls)
}
