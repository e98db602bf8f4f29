package preferences

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathercli.app/internal/core/weather"
	mocks "weathercli.app/internal/mocks"
	"weathercli.app/pkg/errors"
)

func saved() weather.Preferences {
	return weather.Preferences{
		Date:      weather.Now(),
		Address:   "Lviv",
		TempUnit:  weather.Kelvin,
		SpeedUnit: weather.MilesPerHour,
		Provider:  weather.ProviderWeatherAPI,
	}
}

func newUseCase(t *testing.T) (*UseCase, *mocks.PreferencesRepository, *mocks.Logger) {
	repo := mocks.NewPreferencesRepository(t)
	logger := mocks.NewLogger(t)

	uc, err := NewUseCase(UseCaseDependencies{Repository: repo, Logger: logger})
	require.NoError(t, err)
	return uc, repo, logger
}

func TestUseCase_Resolve_NoOverrides(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	repo.EXPECT().Load(mock.Anything).Return(saved(), nil)

	res := uc.Resolve(context.Background(), nil)

	assert.Empty(t, res.Warnings)
	assert.Equal(t, saved(), res.Preferences)
}

func TestUseCase_Resolve_OverridesAppliedInOrder(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	repo.EXPECT().Load(mock.Anything).Return(saved(), nil)

	res := uc.Resolve(context.Background(), []weather.Override{
		{Key: weather.KeyTemp, Value: "F"},
		{Key: weather.KeyDate, Value: "2, 6"},
		{Key: weather.KeyHour, Value: "9"},
		{Key: weather.KeyAddress, Value: "Odesa"},
		{Key: weather.KeyTemp, Value: "C"},
	})

	assert.Empty(t, res.Warnings)
	assert.Equal(t, weather.Celsius, res.Preferences.TempUnit)
	assert.Equal(t, weather.At(2, 9), res.Preferences.Date)
	assert.Equal(t, "Odesa", res.Preferences.Address)
	assert.Equal(t, weather.MilesPerHour, res.Preferences.SpeedUnit)
	assert.Equal(t, weather.ProviderWeatherAPI, res.Preferences.Provider)
}

func TestUseCase_Resolve_InvalidOverridesAreWarnings(t *testing.T) {
	uc, repo, logger := newUseCase(t)
	repo.EXPECT().Load(mock.Anything).Return(saved(), nil)
	logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	res := uc.Resolve(context.Background(), []weather.Override{
		{Key: weather.KeyDay, Value: "3"},
		{Key: weather.KeyHour, Value: "24"},
		{Key: "color", Value: "red"},
		{Key: weather.KeySpeed, Value: "meter"},
	})

	require.Len(t, res.Warnings, 2)
	assert.True(t, errors.IsParseError(res.Warnings[0]))
	assert.True(t, errors.IsUnknownFlagError(res.Warnings[1]))
	assert.Equal(t, weather.OnDay(3), res.Preferences.Date)
	assert.Equal(t, weather.MetersPerSecond, res.Preferences.SpeedUnit)
}

func TestUseCase_Resolve_PersistedDateIsIgnored(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	stored := saved()
	stored.Date = weather.At(4, 4)
	repo.EXPECT().Load(mock.Anything).Return(stored, nil)

	res := uc.Resolve(context.Background(), nil)

	assert.Equal(t, weather.Now(), res.Preferences.Date)
}

func TestUseCase_Resolve_LoadFailureFallsBackToDefaults(t *testing.T) {
	uc, repo, logger := newUseCase(t)
	repo.EXPECT().Load(mock.Anything).
		Return(weather.Preferences{}, errors.NewStorageError("failed to read preferences", stderrors.New("permission denied")))
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

	res := uc.Resolve(context.Background(), []weather.Override{{Key: weather.KeyAddress, Value: "Kyiv"}})

	require.Len(t, res.Warnings, 1)
	assert.True(t, errors.IsStorageError(res.Warnings[0]))

	expected := weather.DefaultPreferences()
	expected.Address = "Kyiv"
	assert.Equal(t, expected, res.Preferences)
}

func TestUseCase_Save(t *testing.T) {
	uc, repo, logger := newUseCase(t)
	prefs := saved()
	repo.EXPECT().Save(mock.Anything, prefs).Return(nil)
	logger.EXPECT().Info(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	assert.NoError(t, uc.Save(context.Background(), prefs))
}

func TestUseCase_Save_Failure(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	prefs := saved()
	repo.EXPECT().Save(mock.Anything, prefs).Return(errors.NewStorageError("failed to write preferences", nil))

	err := uc.Save(context.Background(), prefs)

	assert.True(t, errors.IsStorageError(err))
	assert.Contains(t, err.Error(), "save preferences")
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Logger: mocks.NewLogger(t)})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewUseCase(UseCaseDependencies{Repository: mocks.NewPreferencesRepository(t)})
	assert.True(t, errors.IsValidationError(err))
}
