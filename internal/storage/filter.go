package storage

import "time"

// A predicate is one typed filter fragment. Filters produce an immutable
// slice of predicates that gets AND-combined onto the query; an absent
// option contributes no predicate at all.
type predicate struct {
	expr string
	args []any
}

// DateBucket narrows events to a relative time window against start_date.
type DateBucket string

const (
	DateAny     DateBucket = ""
	DateToday   DateBucket = "today"
	DateWeekend DateBucket = "weekend"
	DateWeek    DateBucket = "week"
	DateMonth   DateBucket = "month"
)

// ParseDateBucket decodes the query-string value. Unknown values and the
// "any" sentinel degrade to no filter rather than erroring.
func ParseDateBucket(s string) DateBucket {
	switch DateBucket(s) {
	case DateToday, DateWeekend, DateWeek, DateMonth:
		return DateBucket(s)
	default:
		return DateAny
	}
}

// Window resolves the bucket to a half-open [start, end) interval relative
// to now, in now's location. ok is false for DateAny.
func (d DateBucket) Window(now time.Time) (start, end time.Time, ok bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch d {
	case DateToday:
		return now, midnight.AddDate(0, 0, 1), true
	case DateWeekend:
		wd := int(now.Weekday()) // Sunday = 0
		saturday := midnight
		if wd != 0 && wd != 6 {
			saturday = midnight.AddDate(0, 0, 6-wd)
		}
		daysToMonday := (int(time.Monday) - int(saturday.Weekday()) + 7) % 7
		return saturday, saturday.AddDate(0, 0, daysToMonday), true
	case DateWeek:
		return now, now.AddDate(0, 0, 7), true
	case DateMonth:
		return now, time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// EventFilter carries the decoded search options for event listings. Zero
// values mean "no filter"; sentinel strings ("all", "any") are decoded to
// zero values at the handler boundary and never reach this layer.
type EventFilter struct {
	Query    string
	Category string
	Location string
	MaxPrice *float64
	Date     DateBucket

	// Now anchors the date window; the zero value means time.Now().
	// Tests inject fixed instants through it.
	Now time.Time
}

func (f EventFilter) clauses(now time.Time) []predicate {
	var cs []predicate
	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		cs = append(cs, predicate{"(title ILIKE ? OR description ILIKE ?)", []any{pattern, pattern}})
	}
	if f.Category != "" {
		cs = append(cs, predicate{"category = ?", []any{f.Category}})
	}
	if f.Location != "" {
		cs = append(cs, predicate{"location ILIKE ?", []any{"%" + f.Location + "%"}})
	}
	if f.MaxPrice != nil {
		// Compares against the lowest tier price, not a range overlap.
		cs = append(cs, predicate{"min_price < ?", []any{*f.MaxPrice}})
	}
	if start, end, ok := f.Date.Window(now); ok {
		cs = append(cs, predicate{"start_date >= ? AND start_date < ?", []any{start, end}})
	}
	return cs
}

// PostSort selects the ordering for social post listings.
type PostSort string

const (
	SortRecent   PostSort = "recent"
	SortPopular  PostSort = "popular"
	SortComments PostSort = "comments"
)

// ParsePostSort decodes the query-string value; unknown values fall back
// to recent.
func ParsePostSort(s string) PostSort {
	switch PostSort(s) {
	case SortPopular, SortComments:
		return PostSort(s)
	default:
		return SortRecent
	}
}

// orderBy always carries an id tie-break so pages stay stable when the
// primary sort column collides.
func (s PostSort) orderBy() string {
	switch s {
	case SortPopular:
		return "likes DESC, id DESC"
	case SortComments:
		return "comments DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}

// PostFilter carries the decoded search options for social post listings.
type PostFilter struct {
	Query   string
	EventID *uint
	Sort    PostSort
}

func (f PostFilter) clauses() []predicate {
	var cs []predicate
	if f.Query != "" {
		cs = append(cs, predicate{"content ILIKE ?", []any{"%" + f.Query + "%"}})
	}
	if f.EventID != nil {
		cs = append(cs, predicate{"event_id = ?", []any{*f.EventID}})
	}
	return cs
}
