// Package panel renders the current-conditions summary box.
package panel

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/weather/pkg/weatherapi"
)

// Data is the summary of a single location at a single time.
type Data struct {
	Place       string  `json:"place" yaml:"place"`
	Country     string  `json:"country" yaml:"country"`
	Condition   string  `json:"condition" yaml:"condition"`
	TempC       float64 `json:"temp_c" yaml:"temp_c"`
	Humidity    int     `json:"humidity" yaml:"humidity"`
	LastUpdated string  `json:"last_updated" yaml:"last_updated"`
}

// Summary extracts the panel fields from a current-conditions response.
func Summary(resp *weatherapi.CurrentResponse) Data {
	return Data{
		Place:       resp.Location.Name,
		Country:     resp.Location.Country,
		Condition:   resp.Current.Condition.Text,
		TempC:       resp.Current.TempC,
		Humidity:    resp.Current.Humidity,
		LastUpdated: resp.Current.LastUpdated,
	}
}

var (
	colorGreen  = lipgloss.Color("#50fa7b")
	colorYellow = lipgloss.Color("#f1fa8c")
	colorCyan   = lipgloss.Color("#8be9fd")
)

// Render draws data inside a rounded border.
func Render(data Data, noColor bool) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	conditionStyle := lipgloss.NewStyle()
	valueStyle := lipgloss.NewStyle()
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if !noColor {
		titleStyle = titleStyle.Foreground(colorGreen)
		conditionStyle = conditionStyle.Foreground(colorYellow)
		valueStyle = valueStyle.Foreground(colorCyan)
	}

	lines := []string{
		titleStyle.Render(data.Place + " (" + data.Country + ")"),
		conditionStyle.Render(data.Condition),
		"Temperature: " + valueStyle.Render(strconv.FormatFloat(data.TempC, 'f', -1, 64)+" °C"),
		"Humidity (%): " + valueStyle.Render(strconv.Itoa(data.Humidity)),
		"Time: " + valueStyle.Render(data.LastUpdated),
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}
