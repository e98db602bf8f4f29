package weather

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathercli.app/pkg/errors"
)

type stubReport struct {
	temp        Temp
	feelsLike   Temp
	humidity    float64
	pressure    float64
	speed       Speed
	degree      float64
	gust        Speed
	description string
	label       string
	address     string

	errs map[string]error
}

func (r stubReport) Temp() (Temp, error)           { return r.temp, r.errs["temp"] }
func (r stubReport) FeelsLike() (Temp, error)      { return r.feelsLike, r.errs["feelsLike"] }
func (r stubReport) Humidity() (float64, error)    { return r.humidity, r.errs["humidity"] }
func (r stubReport) Pressure() (float64, error)    { return r.pressure, r.errs["pressure"] }
func (r stubReport) WindSpeed() (Speed, error)     { return r.speed, r.errs["speed"] }
func (r stubReport) WindDegree() (float64, error)  { return r.degree, r.errs["degree"] }
func (r stubReport) WindGust() (Speed, error)      { return r.gust, r.errs["gust"] }
func (r stubReport) Description() (string, error)  { return r.description, r.errs["description"] }
func (r stubReport) DateLabel() (string, error)    { return r.label, r.errs["label"] }
func (r stubReport) Address() (string, error)      { return r.address, r.errs["address"] }

func (r stubReport) Render() string {
	var b strings.Builder
	b.WriteString(Heading(r.address, r.label))
	b.WriteString("\n")
	RenderBody(&b, r)
	return b.String()
}

func fullReport() stubReport {
	return stubReport{
		temp:        PointTemp(1.5, Celsius),
		feelsLike:   Temp{Min: -1, Max: 0.25, Unit: Celsius},
		humidity:    81,
		pressure:    1012,
		speed:       Speed{Value: 3.6, Unit: MetersPerSecond},
		degree:      270,
		gust:        Speed{Value: 7.25, Unit: MetersPerSecond},
		description: "light rain",
		address:     "Kyiv",
	}
}

func TestValidate_AllFieldsPresent(t *testing.T) {
	assert.NoError(t, Validate(fullReport()))
}

func TestValidate_UnavailableFieldsAreNotFailures(t *testing.T) {
	r := fullReport()
	r.errs = map[string]error{"gust": ErrUnavailable, "description": ErrUnavailable}
	assert.NoError(t, Validate(r))
}

func TestValidate_DecodeErrorPassesThrough(t *testing.T) {
	r := fullReport()
	decodeErr := errors.NewDecodeError("missing field 'main.humidity'", nil)
	r.errs = map[string]error{"humidity": decodeErr}

	err := Validate(r)
	assert.Same(t, decodeErr, err)
}

func TestValidate_OtherErrorsAreWrapped(t *testing.T) {
	r := fullReport()
	cause := stderrors.New("boom")
	r.errs = map[string]error{"pressure": cause}

	err := Validate(r)
	require.Error(t, err)
	assert.True(t, errors.IsDecodeError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid pressure field")
}

func TestValidate_FirstFailureWins(t *testing.T) {
	r := fullReport()
	r.errs = map[string]error{
		"temp":    errors.NewDecodeError("bad temp", nil),
		"address": errors.NewDecodeError("bad address", nil),
	}

	err := Validate(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad temp")
}

func TestRender_AllFields(t *testing.T) {
	expected := "weather in Kyiv:\n" +
		"description: light rain\n" +
		"main:\n" +
		"  temp: 1.5 °C\n" +
		"  feels like temp: [-1 : 0.25] °C\n" +
		"  humidity: 81%\n" +
		"  pressure: 1012p\n" +
		"wind:\n" +
		"  speed: 3.6 meter/sec\n" +
		"  degree: 270°\n" +
		"  gust: 7.25 meter/sec\n"

	assert.Equal(t, expected, fullReport().Render())
}

func TestRender_SkipsUnavailableFields(t *testing.T) {
	r := fullReport()
	r.label = "1 day"
	r.errs = map[string]error{"gust": ErrUnavailable, "description": ErrUnavailable}

	out := r.Render()
	assert.True(t, strings.HasPrefix(out, "weather in Kyiv, on 1 day:\n"))
	assert.NotContains(t, out, "description:")
	assert.NotContains(t, out, "gust:")
	assert.Contains(t, out, "  speed: 3.6 meter/sec\n")
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "weather in Kyiv:", Heading("Kyiv", ""))
	assert.Equal(t, "weather in Kyiv, on day 3:", Heading("Kyiv", "day 3"))
}
