package weather

import (
	"fmt"
	"strconv"
	"strings"

	"weathercli.app/pkg/errors"
)

const hoursPerDay = 24

// Date is a relative date: a day offset from today and an optional hour of that day.
// The zero value is "now".
type Date struct {
	Day     int
	Hour    int
	HasHour bool
}

// Now returns the date denoting the current moment
func Now() Date {
	return Date{}
}

// OnDay returns the date for a day offset without a specific hour
func OnDay(day int) Date {
	return Date{Day: day}
}

// At returns the date for a day offset and hour
func At(day, hour int) Date {
	return Date{Day: day, Hour: hour, HasHour: true}
}

// ParseDate parses "now" or "D, H"
func ParseDate(text string) (Date, error) {
	if text == "now" {
		return Now(), nil
	}

	dayText, hourText, found := strings.Cut(text, ",")
	if !found {
		return Date{}, errors.NewParseError(fmt.Sprintf("invalid date '%s', expected \"now\" or \"<day>, <hour>\"", text))
	}

	day, err := parseDay(strings.TrimSpace(dayText))
	if err != nil {
		return Date{}, err
	}
	hour, err := parseHour(strings.TrimSpace(hourText))
	if err != nil {
		return Date{}, err
	}

	return At(day, hour), nil
}

// WithDay returns a copy with the day replaced by the parsed value, keeping the hour
func (d Date) WithDay(text string) (Date, error) {
	day, err := parseDay(text)
	if err != nil {
		return d, err
	}
	d.Day = day
	return d, nil
}

// WithHour returns a copy with the hour replaced by the parsed value, keeping the day
func (d Date) WithHour(text string) (Date, error) {
	hour, err := parseHour(text)
	if err != nil {
		return d, err
	}
	d.Hour = hour
	d.HasHour = true
	return d, nil
}

// IsNow reports whether the date denotes the current moment
func (d Date) IsNow() bool {
	return d.Day == 0 && !d.HasHour
}

func (d Date) String() string {
	if !d.HasHour {
		return fmt.Sprintf("%d day", d.Day)
	}
	return fmt.Sprintf("%d day, %d hour", d.Day, d.Hour)
}

func parseDay(text string) (int, error) {
	day, err := strconv.Atoi(text)
	if err != nil || day < 0 {
		return 0, errors.NewParseError(fmt.Sprintf("invalid day '%s', expected a non-negative integer", text))
	}
	return day, nil
}

func parseHour(text string) (int, error) {
	hour, err := strconv.Atoi(text)
	if err != nil || hour < 0 || hour >= hoursPerDay {
		return 0, errors.NewParseError(fmt.Sprintf("invalid hour '%s', expected an integer between 0 and 23", text))
	}
	return hour, nil
}
