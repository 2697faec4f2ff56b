package dataset

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected civil.Date
	}{
		{"iso", "2024-03-05", civil.Date{Year: 2024, Month: 3, Day: 5}},
		{"iso with time", "2024-03-05 14:30:00", civil.Date{Year: 2024, Month: 3, Day: 5}},
		{"rfc3339", "2024-03-05T23:59:59Z", civil.Date{Year: 2024, Month: 3, Day: 5}},
		{"day first slash", "02/01/2024", civil.Date{Year: 2024, Month: 1, Day: 2}},
		{"day first no padding", "2/1/2024", civil.Date{Year: 2024, Month: 1, Day: 2}},
		{"day first with time", "13/01/2024 08:15:00", civil.Date{Year: 2024, Month: 1, Day: 13}},
		{"day first dash", "29-02-2024", civil.Date{Year: 2024, Month: 2, Day: 29}},
		{"day first dotted", "31.12.2023", civil.Date{Year: 2023, Month: 12, Day: 31}},
		{"two digit year", "05/03/24", civil.Date{Year: 2024, Month: 3, Day: 5}},
		{"month first when day first is impossible", "01/13/2024", civil.Date{Year: 2024, Month: 1, Day: 13}},
		{"month first with time", "12/25/2023 18:00:00", civil.Date{Year: 2023, Month: 12, Day: 25}},
		{"month first dash", "02-29-2024", civil.Date{Year: 2024, Month: 2, Day: 29}},
		{"ambiguous stays day first", "02/01/2024", civil.Date{Year: 2024, Month: 1, Day: 2}},
		{"surrounding spaces", "  2024-03-05 ", civil.Date{Year: 2024, Month: 3, Day: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			day, err := ParseDay(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, day)
		})
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024-13-01", "31/02/2024", "13/13/2024"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDay(input)
			assert.ErrorIs(t, err, ErrUnparseableDate)
		})
	}
}
