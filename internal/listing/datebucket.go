package listing

import (
	"fmt"
	"time"
)

// DateBucket is a calendar-aligned modification-date window
type DateBucket string

const (
	DateToday     DateBucket = "today"
	DateYesterday DateBucket = "yesterday"
	DateThisMonth DateBucket = "this_month"
	DateLastMonth DateBucket = "last_month"
	DateThisYear  DateBucket = "this_year"
	DateLastYear  DateBucket = "last_year"
)

// DateBuckets lists every bucket in facet order
var DateBuckets = []DateBucket{
	DateToday,
	DateYesterday,
	DateThisMonth,
	DateLastMonth,
	DateThisYear,
	DateLastYear,
}

// ParseDateBucket parses a bucket id. Empty input means no constraint.
func ParseDateBucket(s string) (DateBucket, error) {
	if s == "" {
		return "", nil
	}
	for _, b := range DateBuckets {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown date filter %q", s)
}

// Contains reports whether t falls into the bucket relative to now.
// Both instants are compared in now's location.
func (b DateBucket) Contains(t, now time.Time) bool {
	t = t.In(now.Location())
	y, m, d := now.Date()

	switch b {
	case DateToday:
		return sameDay(t, now)
	case DateYesterday:
		// noon avoids DST edges when stepping back a day
		return sameDay(t, time.Date(y, m, d-1, 12, 0, 0, 0, now.Location()))
	case DateThisMonth:
		return sameMonth(t, now)
	case DateLastMonth:
		return sameMonth(t, time.Date(y, m-1, 1, 12, 0, 0, 0, now.Location()))
	case DateThisYear:
		return t.Year() == y
	case DateLastYear:
		return t.Year() == y-1
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
