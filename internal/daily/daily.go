// internal/daily/daily.go
//
// Deterministic "creature of the day" selection.
//
// The pick for a day is a pure function of (calendar day, salt, pool):
//
//	hash  = rolling31(DateKey(day) + salt + itoa(len(pool)))   // int32 wraparound
//	index = |hash| mod len(pool)
//
// Different salts give independent picks for the same day, so game modes
// (classic, silhouette) never share an answer by construction.
package daily

import (
	"strconv"
	"time"
)

// DateKey returns the calendar day of t as YYYY-MM-DD in t's own location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Hash is the 31-multiplier rolling string hash with 32-bit signed
// wraparound: h = h*31 + codepoint for every rune in s.
func Hash(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}

// Index returns a deterministic index in [0, poolSize) for a date.
func Index(date time.Time, salt string, poolSize int) int {
	if poolSize <= 0 {
		return 0
	}
	h := int64(Hash(DateKey(date) + salt + strconv.Itoa(poolSize)))
	if h < 0 {
		h = -h // in int64 so MinInt32 stays positive
	}
	return int(h % int64(poolSize))
}

// SelectName picks the day's name from names. It returns "" for an empty pool.
func SelectName(names []string, date time.Time, salt string) string {
	if len(names) == 0 {
		return ""
	}
	return names[Index(date, salt, len(names))]
}

// PreviousDay shifts date back exactly one calendar day.
func PreviousDay(date time.Time) time.Time {
	return date.AddDate(0, 0, -1)
}

// SelectPreviousDayName is SelectName for the day before date.
func SelectPreviousDayName(names []string, date time.Time, salt string) string {
	return SelectName(names, PreviousDay(date), salt)
}
