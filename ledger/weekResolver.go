package ledger

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

var keyPattern = regexp.MustCompile(`^orders_(\d{4})_week(\d{2})\.json$`)

// WeekOfYear numbers weeks starting on Sunday. Days before the first Sunday
// of the year fall in week 0, so a year spans weeks 00 to 53.
func WeekOfYear(t time.Time) int {
	return (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
}

// Resolve maps the shop's active date to its weekly ledger key.
func Resolve(activeDate time.Time) string {
	return fmt.Sprintf("orders_%d_week%02d.json", activeDate.Year(), WeekOfYear(activeDate))
}

// ParseKey is the inverse of Resolve for listing historical ledgers.
func ParseKey(key string) (year, week int, ok bool) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	week, _ = strconv.Atoi(m[2])
	if week > 53 {
		return 0, 0, false
	}
	return year, week, true
}

func IsLedgerKey(key string) bool {
	_, _, ok := ParseKey(key)
	return ok
}

// WeekLabel renders the report suffix used in export file names, e.g. 2024_wk09.
func WeekLabel(day time.Time) string {
	return fmt.Sprintf("%d_wk%02d", day.Year(), WeekOfYear(day))
}

// sortNewestFirst orders ledger keys by year then week, descending.
func sortNewestFirst(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		yi, wi, _ := ParseKey(keys[i])
		yj, wj, _ := ParseKey(keys[j])
		if yi != yj {
			return yi > yj
		}
		return wi > wj
	})
}
