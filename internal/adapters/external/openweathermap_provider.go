package external

import (
	"context"
	"encoding/json"
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

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

	// forecast endpoint returns one record every three hours
	openWeatherRecordsPerDay = 8
)

var openWeatherBounds = weather.TierBounds{Horizon: 15, ShortTerm: 5}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	clock   ports.Clock
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Clock   ports.Clock
	Logger  ports.Logger
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.Client
	if client == nil {
		client = newDefaultHTTPClient(params.Timeout)
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		clock:   params.Clock,
		logger:  params.Logger,
	}
}

// ID returns the identifier of this weather provider
func (p *OpenWeatherMapProviderAdapter) ID() weather.ProviderID {
	return weather.ProviderOpenWeather
}

// Bounds returns the horizons OpenWeatherMap can answer for
func (p *OpenWeatherMapProviderAdapter) Bounds() weather.TierBounds {
	return openWeatherBounds
}

// Query selects the endpoint for the requested date, performs one request and decodes the report
func (p *OpenWeatherMapProviderAdapter) Query(ctx context.Context, prefs weather.Preferences) (weather.Report, error) {
	if p.apiKey == "" {
		return nil, errors.NewPreconditionError("API key for OpenWeather is not configured")
	}

	tier, err := weather.SelectTier(prefs.Date, openWeatherBounds)
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

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.NewExternalAPIError("OpenWeather rejected the request: API key invalid or requires a paid plan", nil)
	}
	if !isSuccess(resp.StatusCode) {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeather returned status %d", resp.StatusCode), nil)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return nil, errors.NewDecodeError("failed to decode OpenWeather response", err)
	}

	report, err := newOpenWeatherReport(doc, tier, prefs, p.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := weather.Validate(report); err != nil {
		return nil, err
	}

	p.logger.Debug("OpenWeather report decoded",
		ports.F("tier", tier.String()),
		ports.F("address", prefs.Address))
	return report, nil
}

func (p *OpenWeatherMapProviderAdapter) endpoint(tier weather.Tier, prefs weather.Preferences) (*url.URL, error) {
	var path string
	query := url.Values{}
	query.Set("q", prefs.Address)
	query.Set("appid", p.apiKey)

	switch tier {
	case weather.TierHourly:
		path = "/forecast"
		query.Set("cnt", strconv.Itoa((prefs.Date.Day+1)*openWeatherRecordsPerDay))
	case weather.TierDaily:
		path = "/forecast/daily"
		query.Set("cnt", strconv.Itoa(prefs.Date.Day+1))
	default:
		path = "/weather"
	}

	endpoint, err := url.Parse(p.baseURL + path)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid OpenWeather base URL", err)
	}
	endpoint.RawQuery = query.Encode()
	return endpoint, nil
}

// openWeatherReport reads one record of an OpenWeatherMap document.
// Current reads the document root, hourly the forecast entry nearest to the
// requested hour and daily the last entry of the daily forecast.
type openWeatherReport struct {
	tier   weather.Tier
	prefs  weather.Preferences
	record jsonObject
}

func newOpenWeatherReport(doc jsonObject, tier weather.Tier, prefs weather.Preferences, now time.Time) (*openWeatherReport, error) {
	report := &openWeatherReport{tier: tier, prefs: prefs, record: doc}

	switch tier {
	case weather.TierHourly:
		records, err := doc.list("list")
		if err != nil {
			return nil, err
		}
		stamps := make([]int64, len(records))
		for i, record := range records {
			dt, err := record.number("dt")
			if err != nil {
				return nil, err
			}
			stamps[i] = int64(dt)
		}
		idx, err := weather.NearestRecord(stamps, weather.TargetHour(now, prefs.Date))
		if err != nil {
			return nil, err
		}
		report.record = records[idx]
	case weather.TierDaily:
		records, err := doc.list("list")
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, errors.NewDecodeError("forecast contains no records", nil)
		}
		report.record = records[len(records)-1]
	}

	return report, nil
}

// path maps a field of the current/hourly layout onto the daily layout
func (r *openWeatherReport) path(standard, daily string) string {
	if r.tier == weather.TierDaily {
		return daily
	}
	return standard
}

func (r *openWeatherReport) Temp() (weather.Temp, error) {
	low, err := r.record.number(r.path("main.temp_min", "temp.min"))
	if err != nil {
		return weather.Temp{}, err
	}
	high, err := r.record.number(r.path("main.temp_max", "temp.max"))
	if err != nil {
		return weather.Temp{}, err
	}
	return weather.Temp{Min: low, Max: high, Unit: weather.Kelvin}.Convert(r.prefs.TempUnit), nil
}

func (r *openWeatherReport) FeelsLike() (weather.Temp, error) {
	v, err := r.record.number(r.path("main.feels_like", "feels_like.day"))
	if err != nil {
		return weather.Temp{}, err
	}
	return weather.PointTemp(v, weather.Kelvin).Convert(r.prefs.TempUnit), nil
}

func (r *openWeatherReport) Humidity() (float64, error) {
	return r.record.number(r.path("main.humidity", "humidity"))
}

func (r *openWeatherReport) Pressure() (float64, error) {
	return r.record.number(r.path("main.pressure", "pressure"))
}

func (r *openWeatherReport) WindSpeed() (weather.Speed, error) {
	v, err := r.record.number(r.path("wind.speed", "speed"))
	if err != nil {
		return weather.Speed{}, err
	}
	return weather.Speed{Value: v, Unit: weather.MetersPerSecond}.Convert(r.prefs.SpeedUnit), nil
}

func (r *openWeatherReport) WindDegree() (float64, error) {
	return r.record.number(r.path("wind.deg", "deg"))
}

func (r *openWeatherReport) WindGust() (weather.Speed, error) {
	v, err := r.record.optionalNumber(r.path("wind.gust", "gust"))
	if err != nil {
		return weather.Speed{}, err
	}
	return weather.Speed{Value: v, Unit: weather.MetersPerSecond}.Convert(r.prefs.SpeedUnit), nil
}

func (r *openWeatherReport) Description() (string, error) {
	return r.record.optionalText("weather.0.description")
}

func (r *openWeatherReport) DateLabel() (string, error) {
	if r.tier != weather.TierHourly {
		return "", weather.ErrUnavailable
	}
	return r.record.text("dt_txt")
}

// Address echoes the requested address; OpenWeatherMap has no formatted location
func (r *openWeatherReport) Address() (string, error) {
	return r.prefs.Address, nil
}

func (r *openWeatherReport) Render() string {
	var b strings.Builder

	switch r.tier {
	case weather.TierHourly:
		label, _ := r.DateLabel()
		b.WriteString(weather.Heading(r.prefs.Address, label))
	case weather.TierDaily:
		b.WriteString(weather.Heading(r.prefs.Address, fmt.Sprintf("day %d", r.prefs.Date.Day)))
	default:
		b.WriteString(weather.Heading(r.prefs.Address, ""))
	}
	b.WriteString("\n")

	weather.RenderBody(&b, r)
	return b.String()
}
