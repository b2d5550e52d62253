// Package expiry derives urgency categories from item expiry dates.
// All functions are pure: malformed input degrades to unknown instead of
// returning an error, so one bad record never breaks a whole listing.
package expiry

import "time"

// Category describes how urgently an item needs to be used.
type Category string

// Expiry categories, from most to least urgent.
const (
	CategoryExpired Category = "expired"
	CategoryUrgent  Category = "urgent"
	CategorySoon    Category = "soon"
	CategoryLater   Category = "later"
	CategoryUnknown Category = "unknown"
)

// dateLayout is the only textual date format accepted at this boundary.
const dateLayout = "2006-01-02"

// unknownSortKey sorts items without a computable expiry after every real
// horizon. No stored expiry date is anywhere near 9999 days out.
const unknownSortKey = 9999

// ParseDate parses a strict YYYY-MM-DD date. The second return value is
// false for an empty or malformed string.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DaysUntil returns the number of calendar days from today until the given
// expiry date, which may be negative. The second return value is false when
// the date is absent or unparseable. Comparison is at day granularity in the
// caller's local calendar; the time-of-day component of today is ignored.
func DaysUntil(expiryDate string, today time.Time) (int, bool) {
	d, ok := ParseDate(expiryDate)
	if !ok {
		return 0, false
	}

	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24), true
}

// Categorize maps days-until-expiry onto a category. ok reports whether days
// was computable; when false the result is always CategoryUnknown.
func Categorize(days int, ok bool) Category {
	switch {
	case !ok:
		return CategoryUnknown
	case days < 0:
		return CategoryExpired
	case days <= 3:
		return CategoryUrgent
	case days <= 14:
		return CategorySoon
	default:
		return CategoryLater
	}
}

// SortKey returns a sort value for ascending days-until-expiry ordering.
// Items with no computable expiry sort after everything else.
func SortKey(days int, ok bool) int {
	if !ok {
		return unknownSortKey
	}
	return days
}
