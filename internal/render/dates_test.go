package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"month granularity", "2021-06", "Jun 2021"},
		{"full date", "2019-03-15", "Mar 2019"},
		{"already formatted", "Jun 2021", "Jun 2021"},
		{"year only", "2023", "2023"},
		{"unparseable rendered verbatim", "Summer of 99", "Summer of 99"},
		{"empty", "", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDate(tc.input))
		})
	}
}

func TestFormatDateRangeCurrentWins(t *testing.T) {
	// a stored end date is ignored whenever current is set
	assert.Equal(t, "Jun 2021 - Present", FormatDateRange("2021-06", "2023-01", true))
	assert.Equal(t, "Jun 2021 - Jan 2023", FormatDateRange("2021-06", "2023-01", false))
}

func TestDuration(t *testing.T) {
	testCases := []struct {
		name       string
		start, end string
		want       string
	}{
		{"single month", "2021-01", "2021-02", "1 month"},
		{"months", "2021-01", "2021-04", "3 months"},
		{"exact year", "2020-01", "2021-01", "1 year"},
		{"exact years", "2019-01", "2021-01", "2 years"},
		{"years and months", "2019-03", "2021-05", "2 yrs 2 mo"},
		{"one year and months", "2020-03", "2021-05", "1 yr 2 mo"},
		{"unparseable", "whenever", "2021-05", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Duration(tc.start, tc.end, false))
		})
	}
}
