package solar

import (
	"time"
)

const (
	// EpochOffset shifts the day count so that day 0 falls on
	// 31 December 1999, 00:00 UT. This is not a true Julian date.
	EpochOffset = 730515

	MinutesPerHour = 60
	HoursPerDay    = 24
	SecondsPerDay  = 86400 // not including leap seconds
)

// Timescale returns the number of days, including the time of day
// fraction, between 31 December 1999 and the given date.
//
// This formula is only valid from March 1900 to February 2100. Dates
// outside of that window are not rejected, they are just wrong.
// http://www.stjarnhimlen.se/comp/ppcomp.html#3
func Timescale(year, month, day, hour, minute int) float64 {
	d := 367*year -
		7*(year+(month+9)/12)/4 -
		3*((year+(month-9)/7)/100+1)/4 +
		275*month/9 +
		day - EpochOffset

	ut := (float64(hour) + float64(minute)/MinutesPerHour) / HoursPerDay
	return float64(d) + ut
}

// TimescaleOf is Timescale for a time.Time. The time is converted to UTC
// and seconds are folded into the day fraction.
func TimescaleOf(t time.Time) float64 {
	t = t.UTC()
	seconds := float64(t.Second()) + float64(t.Nanosecond())/1e9
	return Timescale(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute()) + seconds/SecondsPerDay
}

// InWindow reports whether the given year and month fall inside the range
// for which Timescale is accurate, March 1900 through February 2100.
func InWindow(year, month int) bool {
	ym := year*100 + month
	return ym >= 190003 && ym <= 210002
}
