package weatherapi

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/agentstation/weather/pkg/constants"
	"github.com/agentstation/weather/pkg/errors"
)

// Params is the query parameter set of a single provider request.
type Params map[string]string

// Parameter names understood by the provider.
const (
	ParamKey   = "key"
	ParamQuery = "q"
	ParamDate  = "dt"
)

// Values converts p into url.Values.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for k, val := range p {
		v.Set(k, val)
	}
	return v
}

// Date returns the dt parameter, if any.
func (p Params) Date() string {
	return p[ParamDate]
}

// Query returns the q parameter.
func (p Params) Query() string {
	return p[ParamQuery]
}

func baseParams(key, location string) (Params, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.NewValidationError("location", location, "location must not be empty")
	}
	return Params{ParamKey: key, ParamQuery: location}, nil
}

// SearchParams builds the parameters of a /search.json request.
func SearchParams(key, location string) (Params, error) {
	return baseParams(key, location)
}

// CurrentParams builds the parameters of a /current.json request.
func CurrentParams(key, location string) (Params, error) {
	return baseParams(key, location)
}

// ForecastDateParams builds the parameters of a single-date /forecast.json
// request. date must be YYYY-MM-DD and no later than the forecast horizon
// counted from now's calendar date.
func ForecastDateParams(key, location, date string, now time.Time) (Params, error) {
	p, err := baseParams(key, location)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation(constants.DateLayout, date, now.Location())
	if err != nil {
		return nil, errors.NewValidationError("date", date, "date must be in YYYY-MM-DD format")
	}

	horizon := today(now).AddDate(0, 0, constants.ForecastHorizonDays)
	if day.After(horizon) {
		return nil, errors.NewValidationError("date", date,
			fmt.Sprintf("date out of range (max %d days forecast)", constants.ForecastHorizonDays))
	}

	p[ParamDate] = day.Format(constants.DateLayout)
	return p, nil
}

// ForecastDaysParams builds one single-date parameter set per day from today
// to today+days-1, in chronological order.
func ForecastDaysParams(key, location string, days int, now time.Time) ([]Params, error) {
	if days < 1 || days > constants.ForecastHorizonDays {
		return nil, errors.NewValidationError("days", days,
			fmt.Sprintf("days must be between 1 and %d", constants.ForecastHorizonDays))
	}
	if _, err := baseParams(key, location); err != nil {
		return nil, err
	}

	start := today(now)
	list := make([]Params, 0, days)
	for i := 0; i < days; i++ {
		p, _ := baseParams(key, location)
		p[ParamDate] = start.AddDate(0, 0, i).Format(constants.DateLayout)
		list = append(list, p)
	}
	return list, nil
}

// today truncates now to midnight in its own location.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
