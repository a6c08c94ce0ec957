package daterange

import (
	"fmt"
	"strings"

	"weatherwise/weather-service/internal/weather"
)

// MaxSpanDays is the largest allowed to-from difference, i.e. 31 calendar days inclusive.
const MaxSpanDays = 30

// Validate checks ordering and span. It says nothing about how far in the past
// or future the range lies; provider capability decides that downstream.
func Validate(from, to weather.Date) (weather.DateRange, error) {
	if from.IsZero() {
		return weather.DateRange{}, weather.InvalidDateRange("date_from", "date_from is required")
	}
	if to.IsZero() {
		return weather.DateRange{}, weather.InvalidDateRange("date_to", "date_to is required")
	}
	if to.Before(from) {
		return weather.DateRange{}, weather.InvalidDateRange("date_to",
			fmt.Sprintf("date_to %s cannot be earlier than date_from %s", to, from))
	}
	if span := to.DaysSince(from); span > MaxSpanDays {
		return weather.DateRange{}, weather.InvalidDateRange("date_range",
			fmt.Sprintf("range covers %d days, at most %d days are allowed", span+1, MaxSpanDays+1))
	}
	return weather.DateRange{From: from, To: to}, nil
}

// Parse reads two ISO dates and validates them.
func Parse(from, to string) (weather.DateRange, error) {
	fromDate, err := parseField("date_from", from)
	if err != nil {
		return weather.DateRange{}, err
	}
	toDate, err := parseField("date_to", to)
	if err != nil {
		return weather.DateRange{}, err
	}
	return Validate(fromDate, toDate)
}

func parseField(field, value string) (weather.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return weather.Date{}, weather.InvalidDateRange(field, field+" is required")
	}
	d, err := weather.ParseDate(value)
	if err != nil {
		return weather.Date{}, weather.InvalidDateRange(field, err.Error())
	}
	return d, nil
}
