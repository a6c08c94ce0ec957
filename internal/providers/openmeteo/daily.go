package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"weatherwise/weather-service/internal/providers"
	"weatherwise/weather-service/internal/weather"
)

const dailyVariables = "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code"

type dailyResponse struct {
	Daily struct {
		Time          []string   `json:"time"`
		TempMax       []*float64 `json:"temperature_2m_max"`
		TempMin       []*float64 `json:"temperature_2m_min"`
		Precipitation []*float64 `json:"precipitation_sum"`
		WeatherCode   []*float64 `json:"weather_code"`
	} `json:"daily"`
}

// WeatherProvider serves daily series from the Open-Meteo archive and
// forecast APIs, which live on different hosts.
type WeatherProvider struct {
	archive  *providers.Client
	forecast *providers.Client
}

func NewWeatherProvider(archive, forecast *providers.Client) *WeatherProvider {
	return &WeatherProvider{archive: archive, forecast: forecast}
}

func (p *WeatherProvider) Archive(ctx context.Context, lat, lon float64, from, to weather.Date) ([]weather.DailyWeather, error) {
	return fetchDaily(ctx, p.archive, "/v1/archive", lat, lon, from, to)
}

func (p *WeatherProvider) Forecast(ctx context.Context, lat, lon float64, from, to weather.Date) ([]weather.DailyWeather, error) {
	return fetchDaily(ctx, p.forecast, "/v1/forecast", lat, lon, from, to)
}

func fetchDaily(
	ctx context.Context,
	client *providers.Client,
	path string,
	lat, lon float64,
	from, to weather.Date,
) ([]weather.DailyWeather, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("daily", dailyVariables)
	query.Set("timezone", "auto")
	query.Set("start_date", from.String())
	query.Set("end_date", to.String())

	var resp dailyResponse
	if err := client.GetJSON(ctx, path, query, &resp); err != nil {
		return nil, err
	}

	return resp.days(client.Name())
}

func (r dailyResponse) days(provider string) ([]weather.DailyWeather, error) {
	d := r.Daily
	n := len(d.Time)
	for name, l := range map[string]int{
		"temperature_2m_max": len(d.TempMax),
		"temperature_2m_min": len(d.TempMin),
		"precipitation_sum":  len(d.Precipitation),
		"weather_code":       len(d.WeatherCode),
	} {
		if l != n {
			return nil, fmt.Errorf("%s returned %d %s values for %d days", provider, l, name, n)
		}
	}

	out := make([]weather.DailyWeather, 0, n)
	for i, raw := range d.Time {
		date, err := weather.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%s returned invalid date %q: %w", provider, raw, err)
		}

		var code *int
		if c := d.WeatherCode[i]; c != nil {
			v := int(*c)
			code = &v
		}

		out = append(out, weather.DailyWeather{
			Date:          date,
			TempMax:       d.TempMax[i],
			TempMin:       d.TempMin[i],
			Precipitation: d.Precipitation[i],
			WeatherCode:   code,
		})
	}
	return out, nil
}
