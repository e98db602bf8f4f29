package lookup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathercli.app/internal/core/weather"
	mocks "weathercli.app/internal/mocks"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

type fakeReport struct {
	weather.Report
	name string
}

func newUseCase(t *testing.T) (*UseCase, *mocks.ProviderRegistry, *mocks.Logger, *mocks.MetricsCollector) {
	registry := mocks.NewProviderRegistry(t)
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)

	uc, err := NewUseCase(UseCaseDependencies{
		Registry: registry,
		Logger:   logger,
		Metrics:  metrics,
	})
	require.NoError(t, err)
	return uc, registry, logger, metrics
}

func prefsFor(address string, provider weather.ProviderID) weather.Preferences {
	prefs := weather.DefaultPreferences()
	prefs.Address = address
	prefs.Provider = provider
	return prefs
}

func TestUseCase_Dispatch_Success(t *testing.T) {
	uc, registry, logger, metrics := newUseCase(t)
	provider := mocks.NewWeatherProvider(t)
	prefs := prefsFor("Kyiv", weather.ProviderWeatherAPI)
	expected := &fakeReport{name: "kyiv"}

	registry.EXPECT().Lookup(weather.ProviderWeatherAPI).Return(provider, nil)
	provider.EXPECT().Query(mock.Anything, prefs).Return(expected, nil)
	metrics.EXPECT().RecordWeatherAPIDuration(mock.Anything, "WeatherApi", mock.Anything).Return()
	metrics.EXPECT().RecordWeatherAPICall(mock.Anything, "WeatherApi", true).Return()
	logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	report, err := uc.Dispatch(context.Background(), prefs)

	require.NoError(t, err)
	assert.Same(t, expected, report)
}

func TestUseCase_Dispatch_BlankAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{"Empty", ""},
		{"Whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no registry expectations: the lookup must not happen
			uc, _, _, _ := newUseCase(t)

			report, err := uc.Dispatch(context.Background(), prefsFor(tt.address, weather.ProviderOpenWeather))

			assert.Nil(t, report)
			require.Error(t, err)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.PreconditionError, appErr.Type)
		})
	}
}

func TestUseCase_Dispatch_UnknownProvider(t *testing.T) {
	uc, registry, _, _ := newUseCase(t)
	registry.EXPECT().Lookup(weather.ProviderID("Nope")).
		Return(nil, errors.NewNotFoundError("provider 'Nope' is not registered"))

	report, err := uc.Dispatch(context.Background(), prefsFor("Kyiv", "Nope"))

	assert.Nil(t, report)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_Dispatch_ProviderFailureKeepsType(t *testing.T) {
	uc, registry, logger, metrics := newUseCase(t)
	provider := mocks.NewWeatherProvider(t)
	prefs := prefsFor("Kyiv", weather.ProviderOpenWeather)
	prefs.Date = weather.OnDay(16)

	registry.EXPECT().Lookup(weather.ProviderOpenWeather).Return(provider, nil)
	provider.EXPECT().Query(mock.Anything, prefs).
		Return(nil, errors.NewUnsupportedHorizonError("weather day must be less than 16 for this provider"))
	metrics.EXPECT().RecordWeatherAPIDuration(mock.Anything, "OpenWeather", mock.Anything).Return()
	metrics.EXPECT().RecordWeatherAPICall(mock.Anything, "OpenWeather", false).Return()
	logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	report, err := uc.Dispatch(context.Background(), prefs)

	assert.Nil(t, report)
	assert.True(t, errors.IsUnsupportedHorizonError(err))
	assert.Contains(t, err.Error(), "query OpenWeather")
}

func TestUseCase_Providers(t *testing.T) {
	uc, registry, _, _ := newUseCase(t)
	infos := []ports.ProviderInfo{
		{ID: weather.ProviderOpenWeather, Primary: true},
		{ID: weather.ProviderWeatherAPI},
	}
	registry.EXPECT().Providers().Return(infos)

	assert.Equal(t, infos, uc.Providers())
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	tests := []struct {
		name string
		deps UseCaseDependencies
	}{
		{
			name: "MissingRegistry",
			deps: UseCaseDependencies{Logger: mocks.NewLogger(t), Metrics: mocks.NewMetricsCollector(t)},
		},
		{
			name: "MissingLogger",
			deps: UseCaseDependencies{Registry: mocks.NewProviderRegistry(t), Metrics: mocks.NewMetricsCollector(t)},
		},
		{
			name: "MissingMetrics",
			deps: UseCaseDependencies{Registry: mocks.NewProviderRegistry(t), Logger: mocks.NewLogger(t)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
