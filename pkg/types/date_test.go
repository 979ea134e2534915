package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfDropsTimeOfDay(t *testing.T) {
	// A late-evening timestamp in a non-UTC zone must keep its local calendar day
	loc := time.FixedZone("ICT", 7*3600)
	ts := time.Date(2025, time.March, 31, 23, 45, 0, 0, loc)

	d := DateOf(ts)
	assert.Equal(t, NewDate(2025, time.March, 31), d)
	assert.Equal(t, "2025-03-31", d.String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.February, 28), d)

	_, err = ParseDate("28/02/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateComparison(t *testing.T) {
	a := NewDate(2025, time.June, 10)
	b := NewDate(2025, time.June, 11)
	c := NewDate(2025, time.July, 1)
	d := NewDate(2026, time.January, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, b.Before(c))
	assert.True(t, c.Before(d))
	assert.True(t, a.Equal(NewDate(2025, time.June, 10)))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	assert.Equal(t, NewDate(2024, time.February, 29), d.AddDays(1)) // leap year
	assert.Equal(t, NewDate(2024, time.March, 1), d.AddDays(2))
	assert.Equal(t, NewDate(2024, time.February, 27), d.AddDays(-1))
}

func TestDaysUntil(t *testing.T) {
	a := NewDate(2025, time.January, 1)
	b := NewDate(2025, time.January, 31)

	assert.Equal(t, 30, a.DaysUntil(b))
	assert.Equal(t, -30, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.September, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-09-05"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed))

	assert.Error(t, json.Unmarshal([]byte(`12345`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &parsed))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, time.April, 2, 13, 30, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2025, time.April, 2), d)

	require.NoError(t, d.Scan([]byte("2025-04-03")))
	assert.Equal(t, NewDate(2025, time.April, 3), d)

	require.NoError(t, d.Scan("2025-04-04"))
	assert.Equal(t, NewDate(2025, time.April, 4), d)

	assert.Error(t, d.Scan(42))
}
