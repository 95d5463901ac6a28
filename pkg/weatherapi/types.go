package weatherapi

// Location is a place as described by the provider. Search results carry ID,
// forecast and current responses carry TzID and Localtime.
type Location struct {
	ID        int     `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string  `json:"name" yaml:"name"`
	Region    string  `json:"region" yaml:"region"`
	Country   string  `json:"country" yaml:"country"`
	Lat       float64 `json:"lat" yaml:"lat"`
	Lon       float64 `json:"lon" yaml:"lon"`
	URL       string  `json:"url,omitempty" yaml:"url,omitempty"`
	TzID      string  `json:"tz_id,omitempty" yaml:"tz_id,omitempty"`
	Localtime string  `json:"localtime,omitempty" yaml:"localtime,omitempty"`
}

// Condition is a weather condition label.
type Condition struct {
	Text string `json:"text" yaml:"text"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Code int    `json:"code,omitempty" yaml:"code,omitempty"`
}

// Current holds real-time conditions.
type Current struct {
	LastUpdated string    `json:"last_updated" yaml:"last_updated"`
	TempC       float64   `json:"temp_c" yaml:"temp_c"`
	TempF       float64   `json:"temp_f" yaml:"temp_f"`
	IsDay       int       `json:"is_day" yaml:"is_day"`
	Condition   Condition `json:"condition" yaml:"condition"`
	WindKph     float64   `json:"wind_kph" yaml:"wind_kph"`
	WindDir     string    `json:"wind_dir" yaml:"wind_dir"`
	PressureMb  float64   `json:"pressure_mb" yaml:"pressure_mb"`
	PrecipMm    float64   `json:"precip_mm" yaml:"precip_mm"`
	Humidity    int       `json:"humidity" yaml:"humidity"`
	Cloud       int       `json:"cloud" yaml:"cloud"`
	FeelsLikeC  float64   `json:"feelslike_c" yaml:"feelslike_c"`
	UV          float64   `json:"uv" yaml:"uv"`
}

// CurrentResponse is the body of /current.json.
type CurrentResponse struct {
	Location Location `json:"location" yaml:"location"`
	Current  Current  `json:"current" yaml:"current"`
}

// Day holds the daily aggregate of a forecast day.
type Day struct {
	MaxTempC          float64   `json:"maxtemp_c" yaml:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c" yaml:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c" yaml:"avgtemp_c"`
	MaxWindKph        float64   `json:"maxwind_kph" yaml:"maxwind_kph"`
	TotalPrecipMm     float64   `json:"totalprecip_mm" yaml:"totalprecip_mm"`
	AvgHumidity       float64   `json:"avghumidity" yaml:"avghumidity"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain" yaml:"daily_chance_of_rain"`
	DailyChanceOfSnow int       `json:"daily_chance_of_snow" yaml:"daily_chance_of_snow"`
	Condition         Condition `json:"condition" yaml:"condition"`
	UV                float64   `json:"uv" yaml:"uv"`
}

// Astro holds sun and moon times in the location's local 12-hour clock.
type Astro struct {
	Sunrise   string `json:"sunrise" yaml:"sunrise"`
	Sunset    string `json:"sunset" yaml:"sunset"`
	Moonrise  string `json:"moonrise" yaml:"moonrise"`
	Moonset   string `json:"moonset" yaml:"moonset"`
	MoonPhase string `json:"moon_phase" yaml:"moon_phase"`
}

// Hour is a single hourly forecast entry. Time is local to the location,
// formatted as "2006-01-02 15:04".
type Hour struct {
	TimeEpoch    int64     `json:"time_epoch" yaml:"time_epoch"`
	Time         string    `json:"time" yaml:"time"`
	TempC        float64   `json:"temp_c" yaml:"temp_c"`
	Condition    Condition `json:"condition" yaml:"condition"`
	WindKph      float64   `json:"wind_kph" yaml:"wind_kph"`
	Humidity     int       `json:"humidity" yaml:"humidity"`
	FeelsLikeC   float64   `json:"feelslike_c" yaml:"feelslike_c"`
	ChanceOfRain int       `json:"chance_of_rain" yaml:"chance_of_rain"`
}

// ForecastDay is one day of a forecast.
type ForecastDay struct {
	Date      string `json:"date" yaml:"date"`
	DateEpoch int64  `json:"date_epoch" yaml:"date_epoch"`
	Day       Day    `json:"day" yaml:"day"`
	Astro     Astro  `json:"astro" yaml:"astro"`
	Hour      []Hour `json:"hour" yaml:"hour"`
}

// Forecast wraps the list of forecast days.
type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday" yaml:"forecastday"`
}

// ForecastResponse is the body of /forecast.json.
type ForecastResponse struct {
	Location Location `json:"location" yaml:"location"`
	Current  *Current `json:"current,omitempty" yaml:"current,omitempty"`
	Forecast Forecast `json:"forecast" yaml:"forecast"`
}

// FirstDay returns the first forecast day, or nil when the response has none.
func (r *ForecastResponse) FirstDay() *ForecastDay {
	if r == nil || len(r.Forecast.ForecastDay) == 0 {
		return nil
	}
	return &r.Forecast.ForecastDay[0]
}

// errorResponse is the body the provider sends with a non-success status.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
