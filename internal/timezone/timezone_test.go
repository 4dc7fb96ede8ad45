package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestDayKey_UsesLocation(t *testing.T) {
	loc := Location("America/Sao_Paulo")
	// 01:30 UTC is still the previous evening in São Paulo.
	ts := time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-09", DayKey(ts, loc))
	assert.Equal(t, "2024-03-10", DayKey(ts, time.UTC))
}

func TestParseDateTime(t *testing.T) {
	loc := time.UTC

	got, err := ParseDateTime("2024-03-10", "09:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 9, 0, 0, 0, loc), got)

	got, err = ParseDateTime("2024-03-10", "09:00:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 9, 0, 30, 0, loc), got)

	_, err = ParseDateTime("2024-03-10", "9h", loc)
	assert.Error(t, err)

	_, err = ParseDateTime("10/03/2024", "09:00", loc)
	assert.Error(t, err)
}
