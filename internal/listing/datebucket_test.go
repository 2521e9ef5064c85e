package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateBucket(t *testing.T) {
	for _, b := range DateBuckets {
		got, err := ParseDateBucket(string(b))
		assert.NoError(t, err)
		assert.Equal(t, b, got)
	}

	got, err := ParseDateBucket("")
	assert.NoError(t, err)
	assert.Equal(t, DateBucket(""), got)

	_, err = ParseDateBucket("last_week")
	assert.Error(t, err)
}

func TestDateBucket_Contains(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		bucket DateBucket
		t      time.Time
		want   bool
	}{
		{"today same day", DateToday, time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC), true},
		{"today previous day", DateToday, time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC), false},
		{"yesterday morning", DateYesterday, time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC), true},
		{"two days ago late", DateYesterday, time.Date(2024, 3, 13, 23, 0, 0, 0, time.UTC), false},
		{"yesterday excludes today", DateYesterday, now, false},
		{"this month", DateThisMonth, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"this month other year", DateThisMonth, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"last month", DateLastMonth, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), true},
		{"last month excludes this month", DateLastMonth, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), false},
		{"this year", DateThisYear, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"last year", DateLastYear, time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), true},
		{"last year excludes older", DateLastYear, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"unknown bucket", DateBucket("someday"), now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bucket.Contains(tt.t, now))
		})
	}
}

func TestDateBucket_LastMonthUsesCalendarMonths(t *testing.T) {
	// March 31 minus one month must land in February, not March 2/3
	now := time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC)

	assert.True(t, DateLastMonth.Contains(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, DateLastMonth.Contains(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), now))

	january := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	assert.True(t, DateLastMonth.Contains(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), january))
}

func TestDateBucket_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 3, 15, 1, 0, 0, 0, loc)

	// 23:30 UTC on the 14th is 01:30 on the 15th in UTC+2
	assert.True(t, DateToday.Contains(time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC), now))
	assert.False(t, DateYesterday.Contains(time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC), now))
}
