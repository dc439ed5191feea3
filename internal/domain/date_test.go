package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", d.String())

	for _, bad := range []string{"", "06/01/2024", "2024-13-01", "2024-06-01T10:00:00Z", "not a date"} {
		_, err := ParseDate(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2024, time.June, 1)
	b := NewDate(2024, time.June, 5)

	require.True(t, a.Before(b))
	require.True(t, b.After(a))
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(NewDate(2024, time.June, 1)))
}

func TestDateArithmetic(t *testing.T) {
	a := NewDate(2024, time.June, 28)

	require.Equal(t, "2024-07-03", a.AddDays(5).String())
	require.Equal(t, 5, DaysBetween(a, a.AddDays(5)))
	require.Equal(t, -5, DaysBetween(a.AddDays(5), a))
	require.Equal(t, 0, DaysBetween(a, a))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.June, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2024-06-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.True(t, d.Equal(parsed))

	require.Error(t, json.Unmarshal([]byte(`"garbage"`), &parsed))
	require.Error(t, json.Unmarshal([]byte(`null`), &parsed))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.June, 1, 13, 45, 0, 0, time.Local)))
	// the time component must be discarded
	require.Equal(t, "2024-06-01", d.String())

	require.NoError(t, d.Scan("2024-07-04"))
	require.Equal(t, "2024-07-04", d.String())

	require.Error(t, d.Scan(42))
}
