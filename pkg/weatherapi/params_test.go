package weatherapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/weather/pkg/errors"
)

var fixedNow = time.Date(2024, time.May, 1, 14, 30, 0, 0, time.UTC)

func TestSearchAndCurrentParams(t *testing.T) {
	p, err := SearchParams("k", "Paris")
	require.NoError(t, err)
	assert.Equal(t, Params{"key": "k", "q": "Paris"}, p)

	p, err = CurrentParams("k", "  48.85, 2.35 ")
	require.NoError(t, err)
	assert.Equal(t, "48.85, 2.35", p.Query())
	assert.Empty(t, p.Date())

	_, err = CurrentParams("k", "   ")
	assert.True(t, errors.IsValidationError(err))
}

func TestForecastDateParams_Horizon(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"today", "2024-05-01", false},
		{"fourteen days ahead", "2024-05-15", false},
		{"fifteen days ahead", "2024-05-16", true},
		{"past date", "2024-04-20", false},
		{"malformed", "01/05/2024", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ForecastDateParams("k", "Paris", tt.date, fixedNow)
			if tt.wantErr {
				require.Error(t, err)
				var ve *errors.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "date", ve.Field)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Params{"key": "k", "q": "Paris", "dt": tt.date}, p)
		})
	}
}

func TestForecastDateParams_LateInDay(t *testing.T) {
	// The horizon counts calendar days, not 24h periods.
	late := time.Date(2024, time.May, 1, 23, 59, 0, 0, time.UTC)
	_, err := ForecastDateParams("k", "Paris", "2024-05-15", late)
	assert.NoError(t, err)
}

func TestForecastDateParams_OutOfRangeMessage(t *testing.T) {
	_, err := ForecastDateParams("k", "Paris", "2024-06-01", fixedNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date out of range (max 14 days forecast)")
}

func TestForecastDaysParams(t *testing.T) {
	list, err := ForecastDaysParams("k", "Paris", 3, fixedNow)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "2024-05-01", list[0].Date())
	assert.Equal(t, "2024-05-02", list[1].Date())
	assert.Equal(t, "2024-05-03", list[2].Date())
	for _, p := range list {
		assert.Equal(t, "k", p[ParamKey])
		assert.Equal(t, "Paris", p.Query())
	}

	// sets are independent maps
	list[0][ParamQuery] = "changed"
	assert.Equal(t, "Paris", list[1].Query())
}

func TestForecastDaysParams_MonthBoundary(t *testing.T) {
	now := time.Date(2024, time.February, 28, 9, 0, 0, 0, time.UTC)
	list, err := ForecastDaysParams("k", "Paris", 3, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		[]string{list[0].Date(), list[1].Date(), list[2].Date()})
}

func TestForecastDaysParams_Invalid(t *testing.T) {
	for _, days := range []int{0, -1, 15} {
		_, err := ForecastDaysParams("k", "Paris", days, fixedNow)
		assert.True(t, errors.IsValidationError(err), "days=%d", days)
	}

	list, err := ForecastDaysParams("k", "Paris", 14, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-14", list[13].Date())
}

func TestParams_Values(t *testing.T) {
	v := Params{"key": "k", "q": "São Paulo", "dt": "2024-05-01"}.Values()
	assert.Equal(t, "São Paulo", v.Get("q"))
	assert.Equal(t, "2024-05-01", v.Get("dt"))
}
