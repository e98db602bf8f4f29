package weather

import (
	"fmt"
	"strings"

	"weathercli.app/pkg/errors"
)

// ProviderID identifies an upstream weather API
type ProviderID string

const (
	ProviderOpenWeather ProviderID = "OpenWeather"
	ProviderWeatherAPI  ProviderID = "WeatherApi"

	// PrimaryProvider is used when no provider has been chosen
	PrimaryProvider = ProviderOpenWeather
)

// KnownProviders lists every provider in display order
var KnownProviders = []ProviderID{ProviderOpenWeather, ProviderWeatherAPI}

// ParseProviderID parses a provider identifier as typed by the user
func ParseProviderID(s string) (ProviderID, error) {
	for _, id := range KnownProviders {
		if string(id) == s {
			return id, nil
		}
	}
	return "", errors.NewParseError(fmt.Sprintf("unknown provider '%s'", s))
}

func (p ProviderID) String() string {
	return string(p)
}

// Preference keys accepted as overrides
const (
	KeyAddress  = "address"
	KeyDate     = "date"
	KeyDay      = "day"
	KeyHour     = "hour"
	KeyTemp     = "temp"
	KeySpeed    = "speed"
	KeyProvider = "provider"
)

// Preferences is the resolved configuration driving one query
type Preferences struct {
	Date      Date
	Address   string
	TempUnit  TempType
	SpeedUnit SpeedType
	Provider  ProviderID
}

// DefaultPreferences returns the preferences used when nothing has been persisted
func DefaultPreferences() Preferences {
	return Preferences{
		Date:      Now(),
		TempUnit:  Celsius,
		SpeedUnit: MetersPerSecond,
		Provider:  PrimaryProvider,
	}
}

// Override is a single key/value pair supplied on the command line
type Override struct {
	Key   string
	Value string
}

// HasAddress reports whether a non-blank address is set
func (p Preferences) HasAddress() bool {
	return strings.TrimSpace(p.Address) != ""
}

// Apply returns a copy of p with one override applied.
// On error the returned preferences equal p, so the previous value is retained.
func (p Preferences) Apply(o Override) (Preferences, error) {
	switch o.Key {
	case KeyAddress:
		p.Address = o.Value
	case KeyDate:
		date, err := ParseDate(o.Value)
		if err != nil {
			return p, err
		}
		p.Date = date
	case KeyDay:
		date, err := p.Date.WithDay(o.Value)
		if err != nil {
			return p, err
		}
		p.Date = date
	case KeyHour:
		date, err := p.Date.WithHour(o.Value)
		if err != nil {
			return p, err
		}
		p.Date = date
	case KeyTemp:
		unit, err := ParseTempType(o.Value)
		if err != nil {
			return p, err
		}
		p.TempUnit = unit
	case KeySpeed:
		unit, err := ParseSpeedType(o.Value)
		if err != nil {
			return p, err
		}
		p.SpeedUnit = unit
	case KeyProvider:
		id, err := ParseProviderID(o.Value)
		if err != nil {
			return p, err
		}
		p.Provider = id
	default:
		return p, errors.NewUnknownFlagError("-" + o.Key)
	}
	return p, nil
}
