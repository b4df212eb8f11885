package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekOfYear(t *testing.T) {
	t.Parallel()
	tests := []struct {
		date string
		week int
	}{
		{"2022-01-01", 0},  // Saturday before the first Sunday
		{"2022-01-02", 1},  // first Sunday
		{"2023-01-01", 1},  // year starts on Sunday
		{"2023-12-31", 53}, // Sunday
		{"2024-01-01", 0},  // Monday
		{"2024-01-06", 0},  // Saturday
		{"2024-01-07", 1},
		{"2024-03-02", 8},
		{"2024-03-03", 9},
		{"2024-03-09", 9},
		{"2024-03-10", 10},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.week, WeekOfYear(day(tt.date)))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "orders_2024_week09.json", Resolve(day("2024-03-05")))
	assert.Equal(t, Resolve(day("2024-03-05")), Resolve(day("2024-03-05")))

	// Sunday through Saturday share a ledger.
	assert.Equal(t, Resolve(day("2024-03-03")), Resolve(day("2024-03-09")))
	assert.NotEqual(t, Resolve(day("2024-03-02")), Resolve(day("2024-03-03")))
	assert.NotEqual(t, Resolve(day("2024-03-09")), Resolve(day("2024-03-10")))

	// The year boundary splits a calendar week into two ledgers.
	assert.Equal(t, "orders_2023_week53.json", Resolve(day("2023-12-31")))
	assert.Equal(t, "orders_2024_week00.json", Resolve(day("2024-01-01")))
}

func TestResolveUsesDateInItsOwnZone(t *testing.T) {
	t.Parallel()
	myt := time.FixedZone("MYT", 8*60*60)
	// Saturday 23:30 UTC is already Sunday in Kuala Lumpur.
	instant := time.Date(2024, 3, 2, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "orders_2024_week08.json", Resolve(instant))
	assert.Equal(t, "orders_2024_week09.json", Resolve(instant.In(myt)))
}

func TestParseKey(t *testing.T) {
	t.Parallel()
	year, week, ok := ParseKey("orders_2024_week09.json")
	assert.True(t, ok)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 9, week)

	for _, key := range []string{"menu.json", "config.json", "orders_2024_week9.json", "orders_2024_week60.json", "orders_2024_week09.json.bak"} {
		assert.False(t, IsLedgerKey(key), key)
	}
}

func TestSortNewestFirst(t *testing.T) {
	t.Parallel()
	keys := []string{"orders_2023_week52.json", "orders_2024_week01.json", "orders_2024_week10.json", "orders_2024_week00.json"}
	sortNewestFirst(keys)
	assert.Equal(t, []string{"orders_2024_week10.json", "orders_2024_week01.json", "orders_2024_week00.json", "orders_2023_week52.json"}, keys)
}

func TestWeekLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2024_wk09", WeekLabel(day("2024-03-05")))
}
