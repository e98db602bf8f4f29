package external

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

const mockWeatherAPIKey = "test-api-key"

// weatherAPIFixture is the XML the mock upstream serves for one city
type weatherAPIFixture struct {
	current  string
	forecast string
}

const weatherAPILocationXML = `<location>
	<name>Kyiv</name>
	<region>Kyiv City</region>
	<country>Ukraine</country>
	<lat>50.43</lat>
	<lon>30.52</lon>
	<tz_id>Europe/Kiev</tz_id>
	<localtime_epoch>1710081420</localtime_epoch>
	<localtime>2024-03-10 16:37</localtime>
</location>`

func weatherAPIHourXML(epoch int64, label string, tempC string) string {
	return fmt.Sprintf(`<hour>
	<time_epoch>%d</time_epoch>
	<time>%s</time>
	<temp_c>%s</temp_c>
	<condition><text>Clear </text><icon>//cdn.weatherapi.com/weather/64x64/night/113.png</icon><code>1000</code></condition>
	<wind_kph>18.0</wind_kph>
	<wind_degree>120</wind_degree>
	<pressure_mb>1020.0</pressure_mb>
	<humidity>70</humidity>
	<feelslike_c>-2.0</feelslike_c>
	<gust_kph>27.0</gust_kph>
</hour>`, epoch, label, tempC)
}

var weatherAPIFixtures = map[string]weatherAPIFixture{
	"kyiv": {
		current: `<?xml version="1.0" encoding="utf-8"?>
<root>` + weatherAPILocationXML + `
<current>
	<last_updated_epoch>1710081000</last_updated_epoch>
	<last_updated>2024-03-10 16:30</last_updated>
	<temp_c>5.0</temp_c>
	<is_day>1</is_day>
	<condition><text>Partly cloudy</text><icon>//cdn.weatherapi.com/weather/64x64/day/116.png</icon><code>1003</code></condition>
	<wind_kph>36.0</wind_kph>
	<wind_degree>270</wind_degree>
	<wind_dir>W</wind_dir>
	<pressure_mb>1012.0</pressure_mb>
	<humidity>81</humidity>
	<feelslike_c>1.5</feelslike_c>
	<gust_kph>54.0</gust_kph>
</current>
</root>`,
		forecast: `<?xml version="1.0" encoding="utf-8"?>
<root>` + weatherAPILocationXML + `
<current><temp_c>5.0</temp_c></current>
<forecast>
	<forecastday>
		<date>2024-03-10</date>
		<date_epoch>1710028800</date_epoch>
		<day><maxtemp_c>7.0</maxtemp_c></day>` +
			weatherAPIHourXML(1710028800, "2024-03-10 00:00", "0.0") +
			weatherAPIHourXML(1710050400, "2024-03-10 06:00", "1.0") + `
	</forecastday>
	<forecastday>
		<date>2024-03-11</date>
		<date_epoch>1710115200</date_epoch>` +
			weatherAPIHourXML(1710115200, "2024-03-11 00:00", "2.0") +
			weatherAPIHourXML(1710136800, "2024-03-11 06:00", "3.0") +
			weatherAPIHourXML(1710158400, "2024-03-11 12:00", "4.0") + `
	</forecastday>
</forecast>
</root>`,
	},
	"broken": {
		current: `<?xml version="1.0" encoding="utf-8"?>
<root>` + weatherAPILocationXML + `
<current>
	<temp_c>warm</temp_c>
	<wind_kph>36.0</wind_kph>
	<wind_degree>270</wind_degree>
	<pressure_mb>1012.0</pressure_mb>
	<humidity>81</humidity>
	<feelslike_c>1.5</feelslike_c>
</current>
</root>`,
		forecast: `<root><location><name>x</name></location></root>`,
	},
	"garbage": {
		current:  `<<<not xml`,
		forecast: `<html>not the api</html>`,
	},
}

// newMockWeatherAPIServer starts a gin server that imitates the WeatherAPI.com XML endpoints
func newMockWeatherAPIServer(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := func(forecast bool) gin.HandlerFunc {
		return func(c *gin.Context) {
			city := strings.ToLower(c.Query("q"))
			key := c.Query("key")

			if key != mockWeatherAPIKey {
				c.XML(http.StatusUnauthorized, gin.H{"error": "API key is invalid"})
				return
			}

			if city == "servererror" {
				c.Status(http.StatusInternalServerError)
				return
			}

			if forecast {
				days, err := strconv.Atoi(c.Query("days"))
				if err != nil || days < 1 || days > 10 {
					c.Status(http.StatusBadRequest)
					return
				}
			}

			fixture, exists := weatherAPIFixtures[city]
			if !exists {
				c.Status(http.StatusBadRequest)
				return
			}

			body := fixture.current
			if forecast {
				body = fixture.forecast
			}
			c.Data(http.StatusOK, "application/xml", []byte(body))
		}
	}

	r.GET("/current.xml", handler(false))
	r.GET("/forecast.xml", handler(true))

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}
