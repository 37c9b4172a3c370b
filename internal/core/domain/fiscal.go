package domain

import "time"

// FiscalPeriodFor derives the fiscal year and period (1..12) of date for a
// fiscal year that begins in startMonth. The fiscal year is labelled by the
// calendar year in which it starts.
func FiscalPeriodFor(date time.Time, startMonth time.Month) (year int, period int) {
	if startMonth < time.January || startMonth > time.December {
		startMonth = time.January
	}
	month := date.Month()
	year = date.Year()
	if month < startMonth {
		year--
	}
	period = int((month-startMonth+12)%12) + 1
	return year, period
}
