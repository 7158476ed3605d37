package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateBucket(t *testing.T) {
	assert.Equal(t, DateToday, ParseDateBucket("today"))
	assert.Equal(t, DateWeekend, ParseDateBucket("weekend"))
	assert.Equal(t, DateWeek, ParseDateBucket("week"))
	assert.Equal(t, DateMonth, ParseDateBucket("month"))

	// Sentinels and garbage degrade to "no filter", never to an error.
	assert.Equal(t, DateAny, ParseDateBucket(""))
	assert.Equal(t, DateAny, ParseDateBucket("any"))
	assert.Equal(t, DateAny, ParseDateBucket("next-year"))
}

func TestDateWindowToday(t *testing.T) {
	now := time.Date(2026, 1, 7, 18, 30, 0, 0, time.UTC) // Wednesday evening

	start, end, ok := DateToday.Window(now)

	assert.True(t, ok)
	assert.Equal(t, now, start)
	assert.Equal(t, time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC), end)
}

func TestDateWindowWeekend(t *testing.T) {
	saturday := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		now   time.Time
		start time.Time
	}{
		{"midweek points at the upcoming saturday", time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC), saturday},
		{"saturday starts today", time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC), saturday},
		{"sunday starts today", time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC), time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := DateWeekend.Window(tt.now)
			assert.True(t, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, monday, end)
		})
	}
}

func TestDateWindowWeek(t *testing.T) {
	now := time.Date(2026, 1, 7, 18, 30, 0, 0, time.UTC)

	start, end, ok := DateWeek.Window(now)

	assert.True(t, ok)
	assert.Equal(t, now, start)
	assert.Equal(t, now.AddDate(0, 0, 7), end)
}

func TestDateWindowMonth(t *testing.T) {
	start, end, ok := DateMonth.Window(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls over into the next year.
	_, end, ok = DateMonth.Window(time.Date(2026, 12, 20, 10, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDateWindowAny(t *testing.T) {
	_, _, ok := DateAny.Window(time.Now())
	assert.False(t, ok)
}

func TestEventFilterClausesEmpty(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

	assert.Empty(t, EventFilter{}.clauses(now))
}

func TestEventFilterClausesComposition(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	maxPrice := 50.0

	// Each added option contributes exactly one more AND clause, so a
	// narrower filter can never match more rows than a wider one.
	f := EventFilter{}
	assert.Len(t, f.clauses(now), 0)

	f.Query = "jazz"
	assert.Len(t, f.clauses(now), 1)

	f.Category = "music"
	assert.Len(t, f.clauses(now), 2)

	f.Location = "berlin"
	assert.Len(t, f.clauses(now), 3)

	f.MaxPrice = &maxPrice
	assert.Len(t, f.clauses(now), 4)

	f.Date = DateWeek
	assert.Len(t, f.clauses(now), 5)
}

func TestEventFilterQueryMatchesTitleOrDescription(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

	cs := EventFilter{Query: "jazz"}.clauses(now)

	assert.Len(t, cs, 1)
	assert.Equal(t, "(title ILIKE ? OR description ILIKE ?)", cs[0].expr)
	assert.Equal(t, []any{"%jazz%", "%jazz%"}, cs[0].args)
}

func TestEventFilterMaxPriceUsesMinPriceColumn(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	maxPrice := 50.0

	cs := EventFilter{MaxPrice: &maxPrice}.clauses(now)

	assert.Len(t, cs, 1)
	assert.Equal(t, "min_price < ?", cs[0].expr)
	assert.Equal(t, []any{50.0}, cs[0].args)
}

func TestEventFilterDateClauseUsesWindow(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

	cs := EventFilter{Date: DateWeek}.clauses(now)

	assert.Len(t, cs, 1)
	assert.Equal(t, "start_date >= ? AND start_date < ?", cs[0].expr)
	assert.Equal(t, []any{now, now.AddDate(0, 0, 7)}, cs[0].args)
}

func TestParsePostSort(t *testing.T) {
	assert.Equal(t, SortPopular, ParsePostSort("popular"))
	assert.Equal(t, SortComments, ParsePostSort("comments"))
	assert.Equal(t, SortRecent, ParsePostSort("recent"))
	assert.Equal(t, SortRecent, ParsePostSort(""))
	assert.Equal(t, SortRecent, ParsePostSort("trending"))
}

func TestPostSortOrderCarriesTieBreak(t *testing.T) {
	assert.Equal(t, "created_at DESC, id DESC", SortRecent.orderBy())
	assert.Equal(t, "likes DESC, id DESC", SortPopular.orderBy())
	assert.Equal(t, "comments DESC, id DESC", SortComments.orderBy())
}

func TestPostFilterClauses(t *testing.T) {
	assert.Empty(t, PostFilter{}.clauses())

	eventID := uint(7)
	cs := PostFilter{Query: "great", EventID: &eventID}.clauses()

	assert.Len(t, cs, 2)
	assert.Equal(t, "content ILIKE ?", cs[0].expr)
	assert.Equal(t, "event_id = ?", cs[1].expr)
	assert.Equal(t, []any{uint(7)}, cs[1].args)
}
