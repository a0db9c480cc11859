package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// TruncateDate drops the time of day and normalizes to UTC.
func TruncateDate(t time.Time) time.Time {
	t = t.UTC()
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func DateKey(t time.Time) string {
	return t.UTC().Format(layout)
}
