package tables

import "fmt"

// GRIB forecast time units (GRIB1 Table 4 / GRIB2 Table 4.4 share the
// codes used here).
const (
	UnitMinute = 0
	UnitHour   = 1
	UnitDay    = 2
	UnitMonth  = 3
	UnitYear   = 4
)

// monthDays[m] is the length of month m in a non-leap year; index 0 is
// unused so months number 1-12.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(yr int) bool {
	return yr%4 == 0 && (yr%100 != 0 || yr%400 == 0)
}

func daysIn(yr, mo int) int {
	if mo == 2 && isLeap(yr) {
		return 29
	}
	return monthDays[mo]
}

// AddTime advances a (year, month, day, HHMM) reference time by a
// duration expressed in GRIB time units, with Gregorian leap-year
// rules. Only minutes, hours, and days are addable; other units return
// an error.
//
// The statistical-process templates of GRIB2 carry an overall end time
// rather than a period, so converting a GRIB1 period (P2) requires this
// arithmetic.
func AddTime(amount, unit, yr, mo, dy, hhmm int) (int, int, int, int, error) {
	hr := hhmm / 100
	min := hhmm % 100

	switch unit {
	case UnitMinute:
		min += amount
	case UnitHour:
		min += amount * 60
	case UnitDay:
		min += amount * 1440
	default:
		return 0, 0, 0, 0, fmt.Errorf("cannot add time with unit %d", unit)
	}

	if min >= 60 {
		hr += min / 60
		min %= 60
		if hr >= 24 {
			dy += hr / 24
			hr %= 24
			for dy > daysIn(yr, mo) {
				dy -= daysIn(yr, mo)
				mo++
				if mo > 12 {
					yr++
					mo = 1
				}
			}
		}
	}
	return yr, mo, dy, hr*100 + min, nil
}
