package weather

import (
	"fmt"
	"math"
	"strconv"

	"weathercli.app/pkg/errors"
)

const (
	metersPerMile  = 1609.34
	secondsPerHour = 3600.0
	kelvinOffset   = 273.15

	tempPrecision  = 2
	speedPrecision = 5
)

// TempType is a temperature scale
type TempType int

const (
	Celsius TempType = iota
	Fahrenheit
	Kelvin
)

// ParseTempType parses the command-line form of a temperature scale (C, F or K)
func ParseTempType(s string) (TempType, error) {
	switch s {
	case "C":
		return Celsius, nil
	case "F":
		return Fahrenheit, nil
	case "K":
		return Kelvin, nil
	default:
		return Celsius, errors.NewParseError(fmt.Sprintf("invalid temperature type '%s', expected one of C, F, K", s))
	}
}

// Code returns the command-line form of the scale
func (t TempType) Code() string {
	switch t {
	case Fahrenheit:
		return "F"
	case Kelvin:
		return "K"
	default:
		return "C"
	}
}

// String returns the display symbol of the scale
func (t TempType) String() string {
	return "°" + t.Code()
}

// MarshalText implements encoding.TextMarshaler
func (t TempType) MarshalText() ([]byte, error) {
	return []byte(t.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TempType) UnmarshalText(text []byte) error {
	parsed, err := ParseTempType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Temp is a temperature reading. Min == Max is a point reading, Min < Max a forecast range.
type Temp struct {
	Min  float64
	Max  float64
	Unit TempType
}

// PointTemp builds a point reading
func PointTemp(v float64, unit TempType) Temp {
	return Temp{Min: v, Max: v, Unit: unit}
}

// IsPoint reports whether the reading is a single value
func (t Temp) IsPoint() bool {
	return t.Min == t.Max
}

// Convert returns the reading expressed in target. Same-unit conversion is the identity.
func (t Temp) Convert(target TempType) Temp {
	if t.Unit == target {
		return t
	}
	return Temp{
		Min:  convertTemp(t.Min, t.Unit, target),
		Max:  convertTemp(t.Max, t.Unit, target),
		Unit: target,
	}
}

func (t Temp) String() string {
	if t.IsPoint() {
		return fmt.Sprintf("%s %s", formatRounded(t.Max, tempPrecision), t.Unit)
	}
	return fmt.Sprintf("[%s : %s] %s",
		formatRounded(t.Min, tempPrecision), formatRounded(t.Max, tempPrecision), t.Unit)
}

func convertTemp(v float64, from, to TempType) float64 {
	return fromCelsius(toCelsius(v, from), to)
}

func toCelsius(v float64, from TempType) float64 {
	switch from {
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - kelvinOffset
	default:
		return v
	}
}

func fromCelsius(c float64, to TempType) float64 {
	switch to {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + kelvinOffset
	default:
		return c
	}
}

// SpeedType is a wind speed unit
type SpeedType int

const (
	MetersPerSecond SpeedType = iota
	MilesPerHour
)

// ParseSpeedType parses the command-line form of a speed unit (meter or miles)
func ParseSpeedType(s string) (SpeedType, error) {
	switch s {
	case "meter":
		return MetersPerSecond, nil
	case "miles":
		return MilesPerHour, nil
	default:
		return MetersPerSecond, errors.NewParseError(fmt.Sprintf("invalid speed type '%s', expected one of meter, miles", s))
	}
}

// Code returns the command-line form of the unit
func (s SpeedType) Code() string {
	if s == MilesPerHour {
		return "miles"
	}
	return "meter"
}

// String returns the display form of the unit
func (s SpeedType) String() string {
	if s == MilesPerHour {
		return "miles/hour"
	}
	return "meter/sec"
}

// MarshalText implements encoding.TextMarshaler
func (s SpeedType) MarshalText() ([]byte, error) {
	return []byte(s.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SpeedType) UnmarshalText(text []byte) error {
	parsed, err := ParseSpeedType(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Speed is a wind speed reading
type Speed struct {
	Value float64
	Unit  SpeedType
}

// Convert returns the speed expressed in target. Same-unit conversion is the identity.
func (s Speed) Convert(target SpeedType) Speed {
	if s.Unit == target {
		return s
	}
	if target == MilesPerHour {
		return Speed{Value: s.Value * secondsPerHour / metersPerMile, Unit: MilesPerHour}
	}
	return Speed{Value: s.Value * metersPerMile / secondsPerHour, Unit: MetersPerSecond}
}

func (s Speed) String() string {
	return fmt.Sprintf("%s %s", formatRounded(s.Value, speedPrecision), s.Unit)
}

// KilometersPerHourToMetersPerSecond converts a km/h reading into meters/sec
func KilometersPerHourToMetersPerSecond(kph float64) float64 {
	return kph * 1000 / secondsPerHour
}

func formatRounded(v float64, precision int) string {
	scale := math.Pow(10, float64(precision))
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', -1, 64)
}
