package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/weather/pkg/constants"
	"github.com/agentstation/weather/pkg/weatherapi"
)

const degree = "°"

// Hourly converts the first forecast day of resp into an hourly table.
// Hours earlier than now are dropped. Hour timestamps are read as wall-clock
// times in now's location.
func Hourly(resp *weatherapi.ForecastResponse, now time.Time) Data {
	headers := []string{
		"Time",
		"Condition",
		"Temperature (" + degree + "C)",
		"Humidity (%)",
		"Chance of rain (%)",
	}

	data := Data{
		Headers:         headers,
		Rows:            [][]string{},
		ColumnAlignment: centered(len(headers)),
	}

	day := resp.FirstDay()
	if day == nil {
		data.Title = fmt.Sprintf("Weather forecast for %s (%s)", resp.Location.Name, resp.Location.Country)
		return data
	}
	data.Title = fmt.Sprintf("Weather forecast for %s (%s) for %s", resp.Location.Name, resp.Location.Country, day.Date)

	for _, hour := range day.Hour {
		at, err := time.ParseInLocation(constants.HourLayout, hour.Time, now.Location())
		if err != nil || at.Before(now) {
			continue
		}
		data.Rows = append(data.Rows, []string{
			clock(hour.Time),
			hour.Condition.Text,
			num(hour.TempC),
			strconv.Itoa(hour.Humidity),
			strconv.Itoa(hour.ChanceOfRain),
		})
	}

	return data
}

// Daily converts one forecast response per day into a single table, one row
// per response in the given order.
func Daily(resps []*weatherapi.ForecastResponse) Data {
	headers := []string{
		"Date",
		"Condition",
		"Temperature min/max (" + degree + "C)",
		"Humidity (%)",
		"Chance of rain (%)",
		"Total precipitation (mm)",
		"Sunrise/sunset",
	}

	data := Data{
		Headers:         headers,
		Rows:            make([][]string, 0, len(resps)),
		ColumnAlignment: centered(len(headers)),
	}

	if len(resps) > 0 && resps[0] != nil {
		loc := resps[0].Location
		data.Title = fmt.Sprintf("Weather forecast for %s (%s) for the next %d days", loc.Name, loc.Country, len(resps))
	}

	for _, resp := range resps {
		day := resp.FirstDay()
		if day == nil {
			data.Rows = append(data.Rows, []string{"-", "-", "-", "-", "-", "-", "-"})
			continue
		}
		data.Rows = append(data.Rows, []string{
			day.Date,
			day.Day.Condition.Text,
			num(day.Day.MinTempC) + " / " + num(day.Day.MaxTempC),
			num(day.Day.AvgHumidity),
			strconv.Itoa(day.Day.DailyChanceOfRain),
			num(day.Day.TotalPrecipMm),
			day.Astro.Sunrise + " / " + day.Astro.Sunset,
		})
	}

	return data
}

// Search converts location matches into a table.
func Search(query string, locations []weatherapi.Location) Data {
	headers := []string{"Id", "Name", "Region", "Country", "Coordinates"}

	rows := make([][]string, 0, len(locations))
	for _, loc := range locations {
		rows = append(rows, []string{
			strconv.Itoa(loc.ID),
			loc.Name,
			loc.Region,
			loc.Country,
			Coordinates(loc),
		})
	}

	return Data{
		Title:           fmt.Sprintf("Search results for %q", query),
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: centered(len(headers)),
	}
}

// Coordinates formats a location as "lat, lon".
func Coordinates(loc weatherapi.Location) string {
	return num(loc.Lat) + ", " + num(loc.Lon)
}

// DayDetail is the daily aggregate for a single forecast date.
type DayDetail struct {
	Location      string  `json:"location" yaml:"location"`
	Date          string  `json:"date" yaml:"date"`
	Condition     string  `json:"condition" yaml:"condition"`
	MinTempC      float64 `json:"min_temp_c" yaml:"min_temp_c"`
	MaxTempC      float64 `json:"max_temp_c" yaml:"max_temp_c"`
	AvgTempC      float64 `json:"avg_temp_c" yaml:"avg_temp_c"`
	AvgHumidity   float64 `json:"avg_humidity" yaml:"avg_humidity"`
	ChanceOfRain  int     `json:"chance_of_rain" yaml:"chance_of_rain"`
	ChanceOfSnow  int     `json:"chance_of_snow" yaml:"chance_of_snow"`
	TotalPrecipMm float64 `json:"total_precip_mm" yaml:"total_precip_mm"`
	MaxWindKph    float64 `json:"max_wind_kph" yaml:"max_wind_kph"`
	UV            float64 `json:"uv" yaml:"uv"`
	Sunrise       string  `json:"sunrise" yaml:"sunrise"`
	Sunset        string  `json:"sunset" yaml:"sunset"`
}

// DayDetailFrom extracts the first forecast day of resp. It returns false
// when the response carries no forecast days.
func DayDetailFrom(resp *weatherapi.ForecastResponse) (DayDetail, bool) {
	day := resp.FirstDay()
	if day == nil {
		return DayDetail{}, false
	}
	return DayDetail{
		Location:      resp.Location.Name + " (" + resp.Location.Country + ")",
		Date:          day.Date,
		Condition:     day.Day.Condition.Text,
		MinTempC:      day.Day.MinTempC,
		MaxTempC:      day.Day.MaxTempC,
		AvgTempC:      day.Day.AvgTempC,
		AvgHumidity:   day.Day.AvgHumidity,
		ChanceOfRain:  day.Day.DailyChanceOfRain,
		ChanceOfSnow:  day.Day.DailyChanceOfSnow,
		TotalPrecipMm: day.Day.TotalPrecipMm,
		MaxWindKph:    day.Day.MaxWindKph,
		UV:            day.Day.UV,
		Sunrise:       day.Astro.Sunrise,
		Sunset:        day.Astro.Sunset,
	}, true
}

// clock returns the "15:04" part of a provider hour timestamp.
func clock(ts string) string {
	if i := strings.IndexByte(ts, ' '); i >= 0 {
		return ts[i+1:]
	}
	return ts
}
