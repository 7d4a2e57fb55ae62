package daily_test

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokedle/internal/daily"
)

// referenceHash recomputes the rolling hash in 64-bit and folds it to int32
// at every step, mirroring two's-complement wraparound explicitly.
func referenceHash(s string) int32 {
	var h int64
	for _, r := range s {
		h = h*31 + int64(r)
		h = int64(int32(uint32(uint64(h))))
	}
	return int32(h)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 4, 5, 0, time.UTC)
}

func TestHash(t *testing.T) {
	assert.Equal(t, int32(0), daily.Hash(""))
	assert.Equal(t, int32(97), daily.Hash("a"))
	assert.Equal(t, int32(97*31+98), daily.Hash("ab"))

	for _, s := range []string{
		"2024-07-29",
		"2024-07-29silhouette3",
		"a fairly long string that certainly overflows thirty two bits many times over",
	} {
		assert.Equal(t, referenceHash(s), daily.Hash(s), s)
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-07-29", daily.DateKey(date(2024, time.July, 29)))

	// Same instant, different zones: the day is taken in the value's own zone.
	tokyo := time.FixedZone("JST", 9*60*60)
	late := time.Date(2024, time.July, 29, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-07-29", daily.DateKey(late))
	assert.Equal(t, "2024-07-30", daily.DateKey(late.In(tokyo)))
}

func TestIndexMatchesFormula(t *testing.T) {
	d := date(2024, time.July, 29)
	for _, tc := range []struct {
		salt string
		pool int
	}{
		{"", 151}, {"", 251}, {"", 386}, {"silhouette", 386}, {"silhouette", 70},
	} {
		h := int64(referenceHash("2024-07-29" + tc.salt + strconv.Itoa(tc.pool)))
		want := int(int64(math.Abs(float64(h))) % int64(tc.pool))
		assert.Equal(t, want, daily.Index(d, tc.salt, tc.pool), "%q/%d", tc.salt, tc.pool)
	}
}

func TestIndexIsStableWithinADay(t *testing.T) {
	morning := time.Date(2024, time.March, 3, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, time.March, 3, 23, 59, 59, 0, time.UTC)
	for i := 0; i < 5; i++ {
		assert.Equal(t, daily.Index(morning, "", 386), daily.Index(night, "", 386))
	}
}

func TestIndexSpreadsAcrossDays(t *testing.T) {
	seen := map[int]bool{}
	start := date(2024, time.January, 1)
	for i := 0; i < 30; i++ {
		idx := daily.Index(start.AddDate(0, 0, i), "", 386)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 386)
		seen[idx] = true
	}
	assert.GreaterOrEqual(t, len(seen), 10)
}

func TestIndexEdgeCases(t *testing.T) {
	d := date(2024, time.July, 29)
	assert.Equal(t, 0, daily.Index(d, "", 0))
	assert.Equal(t, 0, daily.Index(d, "", -3))
	assert.Equal(t, 0, daily.Index(d, "", 1))
}

func TestSelectName(t *testing.T) {
	names := []string{"Bulbasaur", "Ivysaur", "Venusaur", "Charmander", "Charmeleon", "Charizard", "Squirtle"}
	d := date(2025, time.May, 17)

	first := daily.SelectName(names, d, "")
	assert.Contains(t, names, first)
	assert.Equal(t, first, daily.SelectName(names, d, ""), "same inputs, same pick")
	assert.Equal(t, names[daily.Index(d, "", len(names))], first)

	assert.Equal(t, "", daily.SelectName(nil, d, ""))
}

func TestSaltSeparatesModes(t *testing.T) {
	d := date(2025, time.May, 17)
	differ := 0
	for i := 0; i < 30; i++ {
		day := d.AddDate(0, 0, i)
		if daily.Index(day, "", 386) != daily.Index(day, "silhouette", 386) {
			differ++
		}
	}
	assert.GreaterOrEqual(t, differ, 20)
}

func TestSelectPreviousDayName(t *testing.T) {
	names := make([]string, 386)
	for i := range names {
		names[i] = "mon-" + strconv.Itoa(i)
	}
	today := date(2024, time.March, 1)
	yesterday := date(2024, time.February, 29)

	assert.Equal(t, daily.SelectName(names, yesterday, "x"), daily.SelectPreviousDayName(names, today, "x"))
	assert.Equal(t, "2024-02-29", daily.DateKey(daily.PreviousDay(today)))
}

func TestCalendar(t *testing.T) {
	instant := time.Date(2024, time.July, 29, 23, 30, 0, 0, time.UTC)
	cal := daily.NewCalendar(daily.FixedClock(instant), nil)
	assert.Equal(t, "2024-07-29", cal.TodayKey())
	assert.Equal(t, time.UTC, cal.Location())

	tokyo := time.FixedZone("JST", 9*60*60)
	cal = daily.NewCalendar(daily.FixedClock(instant), tokyo)
	assert.Equal(t, "2024-07-30", cal.TodayKey())

	assert.NotNil(t, daily.NewCalendar(nil, nil).Today())
}
