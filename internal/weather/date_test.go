package weather_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherwise/weather-service/internal/weather"
)

func TestParseDate(t *testing.T) {
	d, err := weather.ParseDate("2025-08-10")
	require.NoError(t, err)
	assert.Equal(t, weather.Date{Year: 2025, Month: time.August, Day: 10}, d)
	assert.Equal(t, "2025-08-10", d.String())

	_, err = weather.ParseDate("10/08/2025")
	assert.Error(t, err)

	_, err = weather.ParseDate("2025-02-30")
	assert.Error(t, err)
}

func TestDateArithmetic(t *testing.T) {
	d := weather.NewDate(2024, time.February, 28)

	assert.Equal(t, weather.NewDate(2024, time.February, 29), d.AddDays(1))
	assert.Equal(t, weather.NewDate(2024, time.March, 1), d.AddDays(2))
	assert.Equal(t, 2, d.AddDays(2).DaysSince(d))
	assert.Equal(t, -2, d.DaysSince(d.AddDays(2)))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.Before(d))
}

func TestDateJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		D weather.Date `json:"d"`
	}{D: weather.NewDate(2025, time.January, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2025-01-05"}`, string(payload))

	var out struct {
		D weather.Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2025-12-31"}`), &out))
	assert.Equal(t, weather.NewDate(2025, time.December, 31), out.D)

	assert.Error(t, json.Unmarshal([]byte(`{"d":"yesterday"}`), &out))
}

func TestDateRangeDates(t *testing.T) {
	r := weather.DateRange{
		From: weather.NewDate(2025, time.January, 30),
		To:   weather.NewDate(2025, time.February, 2),
	}

	assert.Equal(t, 4, r.Days())
	assert.Equal(t, []weather.Date{
		weather.NewDate(2025, time.January, 30),
		weather.NewDate(2025, time.January, 31),
		weather.NewDate(2025, time.February, 1),
		weather.NewDate(2025, time.February, 2),
	}, r.Dates())
	assert.True(t, r.Contains(weather.NewDate(2025, time.February, 1)))
	assert.False(t, r.Contains(weather.NewDate(2025, time.February, 3)))
}
