package aggregator

import (
	"fmt"
	"math"

	"weatherwise/weather-service/internal/weather"
)

// Split is the archive/forecast partition of a requested range. Either side
// may be nil when the range lies entirely on the other side of today.
type Split struct {
	Archive  *weather.DateRange
	Forecast *weather.DateRange
}

// Partition sends days strictly before today to the archive and the rest to the forecast.
func Partition(rng weather.DateRange, today weather.Date) Split {
	var s Split
	if rng.From.Before(today) {
		end := rng.To
		if !end.Before(today) {
			end = today.AddDays(-1)
		}
		s.Archive = &weather.DateRange{From: rng.From, To: end}
	}
	if !rng.To.Before(today) {
		start := rng.From
		if start.Before(today) {
			start = today
		}
		s.Forecast = &weather.DateRange{From: start, To: rng.To}
	}
	return s
}

// Merge combines the archive and forecast series into one ascending series over
// rng. Days a provider returned outside its partition, duplicate dates and
// non-finite values are provider faults and fail the merge. Requested days
// that neither series covers are reported in Missing.
func Merge(rng weather.DateRange, today weather.Date, archive, forecast []weather.DailyWeather) (weather.Series, error) {
	byDate := make(map[weather.Date]weather.DailyWeather, rng.Days())

	add := func(provider string, days []weather.DailyWeather, isForecast bool) error {
		for _, day := range days {
			if !rng.Contains(day.Date) {
				return weather.UpstreamUnavailable(provider,
					fmt.Errorf("returned %s outside requested range %s..%s", day.Date, rng.From, rng.To))
			}
			if isForecast == day.Date.Before(today) {
				return weather.UpstreamUnavailable(provider,
					fmt.Errorf("returned %s on the wrong side of %s", day.Date, today))
			}
			if _, dup := byDate[day.Date]; dup {
				return weather.UpstreamUnavailable(provider, fmt.Errorf("returned %s more than once", day.Date))
			}
			if err := checkFinite(day); err != nil {
				return weather.UpstreamUnavailable(provider, err)
			}
			day.IsForecast = isForecast
			byDate[day.Date] = day
		}
		return nil
	}

	if err := add(weather.ProviderArchive, archive, false); err != nil {
		return weather.Series{}, err
	}
	if err := add(weather.ProviderForecast, forecast, true); err != nil {
		return weather.Series{}, err
	}

	series := weather.Series{Days: make([]weather.DailyWeather, 0, len(byDate))}
	for _, d := range rng.Dates() {
		if day, ok := byDate[d]; ok {
			series.Days = append(series.Days, day)
		} else {
			series.Missing = append(series.Missing, d)
		}
	}
	return series, nil
}

func checkFinite(day weather.DailyWeather) error {
	fields := []struct {
		name  string
		value *float64
	}{
		{"temp_max", day.TempMax},
		{"temp_min", day.TempMin},
		{"precipitation", day.Precipitation},
	}
	for _, f := range fields {
		if f.value != nil && (math.IsNaN(*f.value) || math.IsInf(*f.value, 0)) {
			return fmt.Errorf("non-finite %s on %s", f.name, day.Date)
		}
	}
	return nil
}
