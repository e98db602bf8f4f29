package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathercli.app/pkg/errors"
)

func TestParseTempType(t *testing.T) {
	tests := []struct {
		input    string
		expected TempType
		wantErr  bool
	}{
		{input: "C", expected: Celsius},
		{input: "F", expected: Fahrenheit},
		{input: "K", expected: Kelvin},
		{input: "bad", wantErr: true},
		{input: "c", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTempType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsParseError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTempType_String(t *testing.T) {
	assert.Equal(t, "°C", Celsius.String())
	assert.Equal(t, "°F", Fahrenheit.String())
	assert.Equal(t, "°K", Kelvin.String())
}

func TestTemp_Convert_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		from     TempType
		to       TempType
		expected float64
	}{
		{"CelsiusToCelsius", Celsius, Celsius, 1},
		{"CelsiusToFahrenheit", Celsius, Fahrenheit, 33.8},
		{"CelsiusToKelvin", Celsius, Kelvin, 274.15},
		{"FahrenheitToCelsius", Fahrenheit, Celsius, -17.22222222222222},
		{"FahrenheitToFahrenheit", Fahrenheit, Fahrenheit, 1},
		{"FahrenheitToKelvin", Fahrenheit, Kelvin, 255.92777777777775},
		{"KelvinToCelsius", Kelvin, Celsius, -272.15},
		{"KelvinToFahrenheit", Kelvin, Fahrenheit, -457.87},
		{"KelvinToKelvin", Kelvin, Kelvin, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointTemp(1, tt.from).Convert(tt.to)
			assert.Equal(t, tt.to, got.Unit)
			assert.InDelta(t, tt.expected, got.Max, 1e-9)
			assert.InDelta(t, tt.expected, got.Min, 1e-9)
		})
	}
}

func TestTemp_Convert_SameUnitIsIdentity(t *testing.T) {
	original := Temp{Min: 0.1 + 0.2, Max: 271.3333333333333, Unit: Kelvin}
	assert.Equal(t, original, original.Convert(Kelvin))
}

func TestTemp_Convert_RoundTrip(t *testing.T) {
	units := []TempType{Celsius, Fahrenheit, Kelvin}
	values := []float64{-273.15, -40, -17.5, 0, 1, 36.6, 100, 5778}

	for _, from := range units {
		for _, to := range units {
			for _, v := range values {
				back := PointTemp(v, from).Convert(to).Convert(from)
				assert.InDelta(t, v, back.Max, 1e-9, "%s -> %s -> %s for %v", from, to, from, v)
			}
		}
	}
}

func TestTemp_String(t *testing.T) {
	tests := []struct {
		name     string
		temp     Temp
		expected string
	}{
		{"Point", Temp{Min: 1.5, Max: 1.5, Unit: Celsius}, "1.5 °C"},
		{"Range", Temp{Min: 1.5, Max: 2.5, Unit: Celsius}, "[1.5 : 2.5] °C"},
		{"PointRounded", PointTemp(274.1549999, Kelvin), "274.15 °K"},
		{"RangeRounded", Temp{Min: -17.22222222222222, Max: 33.8, Unit: Fahrenheit}, "[-17.22 : 33.8] °F"},
		{"Integer", PointTemp(20, Celsius), "20 °C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.temp.String())
		})
	}
}

func TestParseSpeedType(t *testing.T) {
	got, err := ParseSpeedType("meter")
	require.NoError(t, err)
	assert.Equal(t, MetersPerSecond, got)

	got, err = ParseSpeedType("miles")
	require.NoError(t, err)
	assert.Equal(t, MilesPerHour, got)

	_, err = ParseSpeedType("bad")
	assert.True(t, errors.IsParseError(err))
}

func TestSpeedType_String(t *testing.T) {
	assert.Equal(t, "meter/sec", MetersPerSecond.String())
	assert.Equal(t, "miles/hour", MilesPerHour.String())
}

func TestSpeed_Convert(t *testing.T) {
	tests := []struct {
		name     string
		from     SpeedType
		to       SpeedType
		expected float64
	}{
		{"MeterToMeter", MetersPerSecond, MetersPerSecond, 1},
		{"MeterToMiles", MetersPerSecond, MilesPerHour, 2.2369418519393043},
		{"MilesToMeter", MilesPerHour, MetersPerSecond, 0.4470388888888889},
		{"MilesToMiles", MilesPerHour, MilesPerHour, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Speed{Value: 1, Unit: tt.from}.Convert(tt.to)
			assert.Equal(t, tt.to, got.Unit)
			assert.InDelta(t, tt.expected, got.Value, 1e-12)
		})
	}
}

func TestSpeed_Convert_SameUnitIsIdentity(t *testing.T) {
	original := Speed{Value: 0.1 + 0.2, Unit: MilesPerHour}
	assert.Equal(t, original, original.Convert(MilesPerHour))
}

func TestSpeed_String(t *testing.T) {
	assert.Equal(t, "1.5 meter/sec", Speed{Value: 1.5, Unit: MetersPerSecond}.String())
	assert.Equal(t, "2.23694 miles/hour", Speed{Value: 2.2369418519393043, Unit: MilesPerHour}.String())
}

func TestKilometersPerHourToMetersPerSecond(t *testing.T) {
	assert.InDelta(t, 10.0, KilometersPerHourToMetersPerSecond(36), 1e-12)
	assert.Equal(t, 0.0, KilometersPerHourToMetersPerSecond(0))
}
