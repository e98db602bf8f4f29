// Package storage persists the preferences remembered between invocations.
package storage

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

var recordValidator = validator.New()

// preferencesRecord is the persisted shape shared by every backend.
// All fields are text so a record written by a newer or older version still loads.
type preferencesRecord struct {
	Address   string `json:"address" mapstructure:"address" validate:"max=256"`
	TempUnit  string `json:"temp_unit" mapstructure:"temp_unit" validate:"omitempty,oneof=C F K"`
	SpeedUnit string `json:"speed_unit" mapstructure:"speed_unit" validate:"omitempty,oneof=meter miles"`
	Provider  string `json:"provider" mapstructure:"provider" validate:"omitempty,oneof=OpenWeather WeatherApi"`
	Date      string `json:"date" mapstructure:"date"`
}

func recordFromPreferences(prefs weather.Preferences) preferencesRecord {
	return preferencesRecord{
		Address:   prefs.Address,
		TempUnit:  prefs.TempUnit.Code(),
		SpeedUnit: prefs.SpeedUnit.Code(),
		Provider:  prefs.Provider.String(),
		Date:      dateText(prefs.Date),
	}
}

// decodeRecord maps a loosely typed document onto a record.
// Nulls become empty strings and scalars are converted to text.
func decodeRecord(raw map[string]interface{}, logger ports.Logger) (preferencesRecord, error) {
	var record preferencesRecord
	var metadata mapstructure.Metadata

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &record,
		WeaklyTypedInput: true,
		Metadata:         &metadata,
	})
	if err != nil {
		return record, errors.NewStorageError("failed to prepare preferences decoder", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return record, errors.NewStorageError("failed to decode saved preferences", err)
	}

	if len(metadata.Unused) > 0 {
		logger.Debug("Ignoring unknown saved preference keys", ports.F("keys", strings.Join(metadata.Unused, ",")))
	}
	return record, nil
}

// sanitized blanks every field that fails validation so it falls back to its default
func (r preferencesRecord) sanitized(logger ports.Logger) preferencesRecord {
	var fieldErrs validator.ValidationErrors
	if err := recordValidator.Struct(r); !stderrors.As(err, &fieldErrs) {
		return r
	}

	for _, fe := range fieldErrs {
		logger.Warn("Invalid saved preference, using default",
			ports.F("field", fe.Field()),
			ports.F("value", fe.Value()))

		switch fe.StructField() {
		case "Address":
			r.Address = ""
		case "TempUnit":
			r.TempUnit = ""
		case "SpeedUnit":
			r.SpeedUnit = ""
		case "Provider":
			r.Provider = ""
		}
	}
	return r
}

// preferences converts the record, falling back to the default for every blank field.
// The saved date is never restored: each invocation starts from "now".
func (r preferencesRecord) preferences(logger ports.Logger) weather.Preferences {
	r = r.sanitized(logger)

	prefs := weather.DefaultPreferences()
	prefs.Address = r.Address

	if unit, err := weather.ParseTempType(r.TempUnit); err == nil {
		prefs.TempUnit = unit
	}
	if unit, err := weather.ParseSpeedType(r.SpeedUnit); err == nil {
		prefs.SpeedUnit = unit
	}
	if id, err := weather.ParseProviderID(r.Provider); err == nil {
		prefs.Provider = id
	}

	return prefs
}

func dateText(d weather.Date) string {
	switch {
	case d.IsNow():
		return "now"
	case d.HasHour:
		return fmt.Sprintf("%d, %d", d.Day, d.Hour)
	default:
		return fmt.Sprintf("%d", d.Day)
	}
}
