package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathercli.app/pkg/errors"
)

var openWeatherBounds = TierBounds{Horizon: 15, ShortTerm: 5}

func TestSelectTier(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		bounds   TierBounds
		expected Tier
		wantErr  bool
	}{
		{name: "Now", date: Now(), bounds: openWeatherBounds, expected: TierCurrent},
		{name: "DayWithinShortTerm", date: OnDay(3), bounds: openWeatherBounds, expected: TierHourly},
		{name: "DayAtShortTermBound", date: OnDay(5), bounds: openWeatherBounds, expected: TierHourly},
		{name: "DayBeyondShortTerm", date: OnDay(7), bounds: openWeatherBounds, expected: TierDaily},
		{name: "DayAtHorizon", date: OnDay(15), bounds: openWeatherBounds, expected: TierDaily},
		{name: "DayBeyondHorizon", date: OnDay(16), bounds: openWeatherBounds, wantErr: true},
		{name: "HourToday", date: At(0, 12), bounds: openWeatherBounds, expected: TierHourly},
		{name: "HourWithinShortTerm", date: At(5, 23), bounds: openWeatherBounds, expected: TierHourly},
		{name: "HourBeyondShortTerm", date: At(6, 0), bounds: openWeatherBounds, expected: TierDaily},
		{name: "HourBeyondHorizon", date: At(16, 1), bounds: openWeatherBounds, wantErr: true},
		{name: "ForecastOnlyProvider", date: OnDay(9), bounds: TierBounds{Horizon: 9, ShortTerm: 10}, expected: TierHourly},
		{name: "ForecastOnlyProviderBeyondHorizon", date: OnDay(10), bounds: TierBounds{Horizon: 9, ShortTerm: 10}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectTier(tt.date, tt.bounds)
			if tt.wantErr {
				assert.True(t, errors.IsUnsupportedHorizonError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSelectTier_HorizonMessage(t *testing.T) {
	_, err := SelectTier(OnDay(16), openWeatherBounds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather day must be less than 16")
}

func TestTargetHour(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 37, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Unix() / 3600

	assert.Equal(t, midnight+14, TargetHour(now, Now()))
	assert.Equal(t, midnight+24+14, TargetHour(now, OnDay(1)))
	assert.Equal(t, midnight+2*24+6, TargetHour(now, At(2, 6)))
	assert.Equal(t, midnight, TargetHour(now, At(0, 0)))
}

func TestNearestRecord(t *testing.T) {
	base := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Unix()
	hour := int64(3600)
	threeHourly := []int64{base, base + 3*hour, base + 6*hour, base + 9*hour}

	tests := []struct {
		name     string
		stamps   []int64
		target   int64
		expected int
	}{
		{"ExactMatch", threeHourly, base/3600 + 6, 2},
		{"ClosestBelow", threeHourly, base/3600 + 7, 2},
		{"ClosestAbove", threeHourly, base/3600 + 8, 3},
		{"TieResolvesToFirst", []int64{base, base + 2*hour}, base/3600 + 1, 0},
		{"BeforeAllRecords", threeHourly, base/3600 - 5, 0},
		{"AfterAllRecords", threeHourly, base/3600 + 100, 3},
		{"SingleRecord", []int64{base}, base/3600 + 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NearestRecord(tt.stamps, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNearestRecord_Empty(t *testing.T) {
	_, err := NearestRecord(nil, 10)
	assert.True(t, errors.IsDecodeError(err))
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "current", TierCurrent.String())
	assert.Equal(t, "hourly", TierHourly.String())
	assert.Equal(t, "daily", TierDaily.String())
}
