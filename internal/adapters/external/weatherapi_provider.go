package external

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

const defaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// WeatherAPI serves today through /current and up to nine days ahead through
// /forecast with hourly records, so there is no daily tier.
var weatherAPIBounds = weather.TierBounds{Horizon: 9, ShortTerm: 10}

// WeatherAPIProviderAdapter implements WeatherProvider port for WeatherAPI.com
type WeatherAPIProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	clock   ports.Clock
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider
type WeatherAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Clock   ports.Clock
	Logger  ports.Logger
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) *WeatherAPIProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultWeatherAPIBaseURL
	}

	client := params.Client
	if client == nil {
		client = newDefaultHTTPClient(params.Timeout)
	}

	return &WeatherAPIProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		clock:   params.Clock,
		logger:  params.Logger,
	}
}

// ID returns the identifier of this weather provider
func (p *WeatherAPIProviderAdapter) ID() weather.ProviderID {
	return weather.ProviderWeatherAPI
}

// Bounds returns the horizons WeatherAPI can answer for
func (p *WeatherAPIProviderAdapter) Bounds() weather.TierBounds {
	return weatherAPIBounds
}

// Query selects the endpoint for the requested date, performs one request and decodes the report
func (p *WeatherAPIProviderAdapter) Query(ctx context.Context, prefs weather.Preferences) (weather.Report, error) {
	if p.apiKey == "" {
		return nil, errors.NewPreconditionError("API key for WeatherApi is not configured")
	}

	tier, err := weather.SelectTier(prefs.Date, weatherAPIBounds)
	if err != nil {
		return nil, err
	}

	endpoint, err := p.endpoint(tier, prefs)
	if err != nil {
		return nil, err
	}

	resp, err := get(ctx, p.client, p.logger, p.ID().String(), endpoint)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("WeatherApi returned status %d", resp.StatusCode), nil)
	}

	var doc weatherAPIDocument
	if err := xml.Unmarshal(resp.Body, &doc); err != nil {
		return nil, errors.NewDecodeError("failed to decode WeatherApi response", err)
	}

	report, err := newWeatherAPIReport(&doc, tier, prefs, p.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := weather.Validate(report); err != nil {
		return nil, err
	}

	p.logger.Debug("WeatherApi report decoded",
		ports.F("tier", tier.String()),
		ports.F("address", prefs.Address))
	return report, nil
}

func (p *WeatherAPIProviderAdapter) endpoint(tier weather.Tier, prefs weather.Preferences) (*url.URL, error) {
	path := "/current.xml"
	query := url.Values{}
	query.Set("key", p.apiKey)
	query.Set("q", prefs.Address)
	query.Set("aqi", "no")

	if tier != weather.TierCurrent {
		path = "/forecast.xml"
		query.Set("days", strconv.Itoa(prefs.Date.Day+1))
		query.Set("alerts", "no")
	}

	endpoint, err := url.Parse(p.baseURL + path)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid WeatherApi base URL", err)
	}
	endpoint.RawQuery = query.Encode()
	return endpoint, nil
}

// weatherAPIDocument mirrors the XML served by WeatherAPI.com.
// Leaves are pointers so a missing element can be told apart from an empty one.
type weatherAPIDocument struct {
	XMLName  xml.Name            `xml:"root"`
	Location *weatherAPILocation `xml:"location"`
	Current  *weatherAPIRecord   `xml:"current"`
	Forecast *struct {
		Days []struct {
			Hours []weatherAPIRecord `xml:"hour"`
		} `xml:"forecastday"`
	} `xml:"forecast"`
}

type weatherAPILocation struct {
	Name      *string `xml:"name"`
	Region    *string `xml:"region"`
	Country   *string `xml:"country"`
	LocalTime *string `xml:"localtime"`
}

type weatherAPIRecord struct {
	TimeEpoch  *string `xml:"time_epoch"`
	Time       *string `xml:"time"`
	TempC      *string `xml:"temp_c"`
	FeelsLikeC *string `xml:"feelslike_c"`
	Humidity   *string `xml:"humidity"`
	PressureMB *string `xml:"pressure_mb"`
	WindKPH    *string `xml:"wind_kph"`
	WindDegree *string `xml:"wind_degree"`
	GustKPH    *string `xml:"gust_kph"`
	Condition  *struct {
		Text *string `xml:"text"`
	} `xml:"condition"`
}

// weatherAPIReport reads the <current> record or the forecast hour nearest to the requested one
type weatherAPIReport struct {
	tier     weather.Tier
	prefs    weather.Preferences
	location *weatherAPILocation
	record   *weatherAPIRecord
	prefix   string
}

func newWeatherAPIReport(doc *weatherAPIDocument, tier weather.Tier, prefs weather.Preferences, now time.Time) (*weatherAPIReport, error) {
	report := &weatherAPIReport{tier: tier, prefs: prefs, location: doc.Location}
	if doc.Location == nil {
		return nil, errors.NewDecodeError("missing field 'location'", nil)
	}

	if tier == weather.TierCurrent {
		if doc.Current == nil {
			return nil, errors.NewDecodeError("missing field 'current'", nil)
		}
		report.record = doc.Current
		report.prefix = "current"
		return report, nil
	}

	if doc.Forecast == nil {
		return nil, errors.NewDecodeError("missing field 'forecast'", nil)
	}

	var hours []*weatherAPIRecord
	var stamps []int64
	for d := range doc.Forecast.Days {
		for h := range doc.Forecast.Days[d].Hours {
			hour := &doc.Forecast.Days[d].Hours[h]
			epoch, err := xmlInt(fmt.Sprintf("forecast.forecastday.%d.hour.%d.time_epoch", d, h), hour.TimeEpoch)
			if err != nil {
				return nil, err
			}
			hours = append(hours, hour)
			stamps = append(stamps, epoch)
		}
	}

	idx, err := weather.NearestRecord(stamps, weather.TargetHour(now, prefs.Date))
	if err != nil {
		return nil, err
	}
	report.record = hours[idx]
	report.prefix = "forecast.hour"
	return report, nil
}

func (r *weatherAPIReport) field(name string) string {
	return r.prefix + "." + name
}

func (r *weatherAPIReport) celsius(name string, v *string) (weather.Temp, error) {
	c, err := xmlNumber(r.field(name), v)
	if err != nil {
		return weather.Temp{}, err
	}
	return weather.PointTemp(c, weather.Celsius).Convert(r.prefs.TempUnit), nil
}

func (r *weatherAPIReport) kph(name string, v *string) (weather.Speed, error) {
	kph, err := xmlNumber(r.field(name), v)
	if err != nil {
		return weather.Speed{}, err
	}
	mps := weather.KilometersPerHourToMetersPerSecond(kph)
	return weather.Speed{Value: mps, Unit: weather.MetersPerSecond}.Convert(r.prefs.SpeedUnit), nil
}

func (r *weatherAPIReport) Temp() (weather.Temp, error) {
	return r.celsius("temp_c", r.record.TempC)
}

func (r *weatherAPIReport) FeelsLike() (weather.Temp, error) {
	return r.celsius("feelslike_c", r.record.FeelsLikeC)
}

func (r *weatherAPIReport) Humidity() (float64, error) {
	return xmlNumber(r.field("humidity"), r.record.Humidity)
}

func (r *weatherAPIReport) Pressure() (float64, error) {
	return xmlNumber(r.field("pressure_mb"), r.record.PressureMB)
}

func (r *weatherAPIReport) WindSpeed() (weather.Speed, error) {
	return r.kph("wind_kph", r.record.WindKPH)
}

func (r *weatherAPIReport) WindDegree() (float64, error) {
	return xmlNumber(r.field("wind_degree"), r.record.WindDegree)
}

func (r *weatherAPIReport) WindGust() (weather.Speed, error) {
	if r.record.GustKPH == nil {
		return weather.Speed{}, weather.ErrUnavailable
	}
	return r.kph("gust_kph", r.record.GustKPH)
}

func (r *weatherAPIReport) Description() (string, error) {
	if r.record.Condition == nil || r.record.Condition.Text == nil {
		return "", weather.ErrUnavailable
	}
	return strings.TrimSpace(*r.record.Condition.Text), nil
}

func (r *weatherAPIReport) DateLabel() (string, error) {
	if r.tier == weather.TierCurrent {
		return xmlText("location.localtime", r.location.LocalTime)
	}
	return xmlText(r.field("time"), r.record.Time)
}

func (r *weatherAPIReport) Address() (string, error) {
	name, err := xmlText("location.name", r.location.Name)
	if err != nil {
		return "", err
	}
	region, err := xmlText("location.region", r.location.Region)
	if err != nil {
		return "", err
	}
	country, err := xmlText("location.country", r.location.Country)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, %s, %s", country, region, name), nil
}

func (r *weatherAPIReport) Render() string {
	var b strings.Builder

	address, _ := r.Address()
	label := ""
	if r.tier != weather.TierCurrent {
		label, _ = r.DateLabel()
	}
	b.WriteString(weather.Heading(address, label))
	b.WriteString("\n")

	weather.RenderBody(&b, r)
	return b.String()
}

func xmlText(path string, v *string) (string, error) {
	if v == nil {
		return "", errors.NewDecodeError(fmt.Sprintf("missing field '%s'", path), nil)
	}
	return strings.TrimSpace(*v), nil
}

func xmlNumber(path string, v *string) (float64, error) {
	s, err := xmlText(path, v)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewDecodeError(fmt.Sprintf("field '%s' is not a number", path), err)
	}
	return n, nil
}

func xmlInt(path string, v *string) (int64, error) {
	s, err := xmlText(path, v)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.NewDecodeError(fmt.Sprintf("field '%s' is not an integer", path), err)
	}
	return n, nil
}
