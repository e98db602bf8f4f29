package weather

import (
	stderrors "errors"
	"fmt"
	"strings"

	"weathercli.app/pkg/errors"
)

// ErrUnavailable is returned by a Report accessor when the chosen tier does not supply the field
var ErrUnavailable = stderrors.New("field not available for this forecast")

// Report is a weather reading for one address and date, expressed in the requested display units.
// Accessors return ErrUnavailable for fields the tier does not supply and a decode error
// for fields that are missing or mis-typed in the upstream document.
type Report interface {
	Temp() (Temp, error)
	FeelsLike() (Temp, error)
	Humidity() (float64, error)
	Pressure() (float64, error)
	WindSpeed() (Speed, error)
	WindDegree() (float64, error)
	WindGust() (Speed, error)
	Description() (string, error)
	DateLabel() (string, error)
	Address() (string, error)
	Render() string
}

// Validate reads every field of the report and returns the first decode failure.
// Unavailable fields are not failures.
func Validate(r Report) error {
	var errs []fieldError

	_, err := r.Temp()
	errs = append(errs, fieldError{"temp", err})
	_, err = r.FeelsLike()
	errs = append(errs, fieldError{"feels like", err})
	_, err = r.Humidity()
	errs = append(errs, fieldError{"humidity", err})
	_, err = r.Pressure()
	errs = append(errs, fieldError{"pressure", err})
	_, err = r.WindSpeed()
	errs = append(errs, fieldError{"wind speed", err})
	_, err = r.WindDegree()
	errs = append(errs, fieldError{"wind degree", err})
	_, err = r.WindGust()
	errs = append(errs, fieldError{"wind gust", err})
	_, err = r.Description()
	errs = append(errs, fieldError{"description", err})
	_, err = r.DateLabel()
	errs = append(errs, fieldError{"date", err})
	_, err = r.Address()
	errs = append(errs, fieldError{"address", err})

	for _, fe := range errs {
		if fe.err == nil || stderrors.Is(fe.err, ErrUnavailable) {
			continue
		}
		if errors.IsDecodeError(fe.err) {
			return fe.err
		}
		return errors.NewDecodeError(fmt.Sprintf("invalid %s field", fe.field), fe.err)
	}
	return nil
}

type fieldError struct {
	field string
	err   error
}

// RenderBody writes the report lines shared by every provider. Unavailable fields are skipped.
func RenderBody(b *strings.Builder, r Report) {
	if description, err := r.Description(); err == nil {
		fmt.Fprintf(b, "description: %s\n", description)
	}

	b.WriteString("main:\n")
	if temp, err := r.Temp(); err == nil {
		fmt.Fprintf(b, "  temp: %s\n", temp)
	}
	if feelsLike, err := r.FeelsLike(); err == nil {
		fmt.Fprintf(b, "  feels like temp: %s\n", feelsLike)
	}
	if humidity, err := r.Humidity(); err == nil {
		fmt.Fprintf(b, "  humidity: %s%%\n", formatRounded(humidity, tempPrecision))
	}
	if pressure, err := r.Pressure(); err == nil {
		fmt.Fprintf(b, "  pressure: %sp\n", formatRounded(pressure, tempPrecision))
	}

	b.WriteString("wind:\n")
	if speed, err := r.WindSpeed(); err == nil {
		fmt.Fprintf(b, "  speed: %s\n", speed)
	}
	if degree, err := r.WindDegree(); err == nil {
		fmt.Fprintf(b, "  degree: %s°\n", formatRounded(degree, tempPrecision))
	}
	if gust, err := r.WindGust(); err == nil {
		fmt.Fprintf(b, "  gust: %s\n", gust)
	}
}

// Heading returns the first line of a rendered report
func Heading(address string, label string) string {
	if label == "" {
		return fmt.Sprintf("weather in %s:", address)
	}
	return fmt.Sprintf("weather in %s, on %s:", address, label)
}
