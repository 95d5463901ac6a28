package table

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/weather/pkg/weatherapi"
)

func london() weatherapi.Location {
	return weatherapi.Location{
		ID:      2801268,
		Name:    "London",
		Region:  "City of London, Greater London",
		Country: "United Kingdom",
		Lat:     51.52,
		Lon:     -0.11,
	}
}

func dayResponse(date string, minC, maxC float64) *weatherapi.ForecastResponse {
	hours := make([]weatherapi.Hour, 0, 24)
	for h := 0; h < 24; h++ {
		hours = append(hours, weatherapi.Hour{
			Time:         fmt.Sprintf("%s %02d:00", date, h),
			TempC:        10 + float64(h)/2,
			Condition:    weatherapi.Condition{Text: "Cloudy"},
			Humidity:     70,
			ChanceOfRain: h,
		})
	}
	return &weatherapi.ForecastResponse{
		Location: london(),
		Forecast: weatherapi.Forecast{ForecastDay: []weatherapi.ForecastDay{{
			Date: date,
			Day: weatherapi.Day{
				MinTempC:          minC,
				MaxTempC:          maxC,
				AvgHumidity:       72,
				DailyChanceOfRain: 86,
				TotalPrecipMm:     1.25,
				Condition:         weatherapi.Condition{Text: "Patchy rain nearby"},
			},
			Astro: weatherapi.Astro{Sunrise: "05:33 AM", Sunset: "08:27 PM"},
			Hour:  hours,
		}}},
	}
}

func TestHourly(t *testing.T) {
	resp := dayResponse("2024-05-01", 9.8, 19.3)

	t.Run("drops hours before now", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
		data := Hourly(resp, now)

		assert.Equal(t, "Weather forecast for London (United Kingdom) for 2024-05-01", data.Title)
		require.Len(t, data.Rows, 9)
		for i, row := range data.Rows {
			assert.Equal(t, fmt.Sprintf("%02d:00", 15+i), row[0])
		}
		assert.Equal(t, []string{"15:00", "Cloudy", "17.5", "70", "15"}, data.Rows[0])
	})

	t.Run("includes the current hour on the boundary", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
		data := Hourly(resp, now)
		require.Len(t, data.Rows, 1)
		assert.Equal(t, "23:00", data.Rows[0][0])
	})

	t.Run("future date keeps every hour", func(t *testing.T) {
		now := time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC)
		assert.Len(t, Hourly(resp, now).Rows, 24)
	})

	t.Run("past date yields no rows", func(t *testing.T) {
		now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		data := Hourly(resp, now)
		assert.Empty(t, data.Rows)
		assert.Len(t, data.Headers, 5)
	})

	t.Run("no forecast days", func(t *testing.T) {
		data := Hourly(&weatherapi.ForecastResponse{Location: london()}, time.Now())
		assert.Empty(t, data.Rows)
		assert.Equal(t, "Weather forecast for London (United Kingdom)", data.Title)
	})
}

func TestDaily(t *testing.T) {
	resps := []*weatherapi.ForecastResponse{
		dayResponse("2024-05-01", 9.8, 19.3),
		dayResponse("2024-05-02", 8, 17.5),
		dayResponse("2024-05-03", 11.2, 21),
	}

	data := Daily(resps)

	assert.Equal(t, "Weather forecast for London (United Kingdom) for the next 3 days", data.Title)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, "2024-05-01", data.Rows[0][0])
	assert.Equal(t, "2024-05-02", data.Rows[1][0])
	assert.Equal(t, "2024-05-03", data.Rows[2][0])
	assert.Equal(t, []string{
		"2024-05-01",
		"Patchy rain nearby",
		"9.8 / 19.3",
		"72",
		"86",
		"1.25",
		"05:33 AM / 08:27 PM",
	}, data.Rows[0])
	assert.Equal(t, "8 / 17.5", data.Rows[1][2])
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestDailyMissingDay(t *testing.T) {
	resps := []*weatherapi.ForecastResponse{
		dayResponse("2024-05-01", 9.8, 19.3),
		{Location: london()},
	}
	data := Daily(resps)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "-", data.Rows[1][0])
}

func TestSearch(t *testing.T) {
	locs := []weatherapi.Location{
		london(),
		{ID: 315398, Name: "London", Region: "Ontario", Country: "Canada", Lat: 42.98, Lon: -81.25},
	}

	data := Search("london", locs)

	assert.Equal(t, []string{"Id", "Name", "Region", "Country", "Coordinates"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"2801268", "London", "City of London, Greater London", "United Kingdom", "51.52, -0.11"}, data.Rows[0])
	assert.Equal(t, "42.98, -81.25", data.Rows[1][4])
	assert.Contains(t, data.Title, `"london"`)
}

func TestSearchEmpty(t *testing.T) {
	data := Search("nowhere", nil)
	assert.Empty(t, data.Rows)
}

func TestDayDetailFrom(t *testing.T) {
	detail, ok := DayDetailFrom(dayResponse("2024-05-01", 9.8, 19.3))
	require.True(t, ok)
	assert.Equal(t, "London (United Kingdom)", detail.Location)
	assert.Equal(t, "2024-05-01", detail.Date)
	assert.Equal(t, 19.3, detail.MaxTempC)
	assert.Equal(t, 86, detail.ChanceOfRain)
	assert.Equal(t, "08:27 PM", detail.Sunset)

	_, ok = DayDetailFrom(&weatherapi.ForecastResponse{})
	assert.False(t, ok)
}
