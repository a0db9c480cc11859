package domain

import "time"

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FiscalYear maps a statement as-of date to the year of the nearest
// Dec-31. Ties resolve to the later year.
func FiscalYear(asOf time.Time) int {
	d := dateOnly(asOf)
	prevEnd := time.Date(d.Year()-1, 12, 31, 0, 0, 0, 0, time.UTC)
	currEnd := time.Date(d.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	if d.Sub(prevEnd) < currEnd.Sub(d) {
		return d.Year() - 1
	}
	return d.Year()
}

// CurrentFiscalYear is the year of the latest Dec-31 on or before now,
// i.e. the most recent fiscal year that has closed.
func CurrentFiscalYear(now time.Time) int {
	d := dateOnly(now)
	if d.Month() == time.December && d.Day() == 31 {
		return d.Year()
	}
	return d.Year() - 1
}

// FiscalYearEnd returns Dec-31 of the given fiscal year.
func FiscalYearEnd(year int) time.Time {
	return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
}
