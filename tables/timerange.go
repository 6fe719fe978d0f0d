package tables

import "fmt"

// Time-range translation.
//
// GRIB1 describes statistical processing with a time-range indicator
// plus the P1/P2 period octets; GRIB2 moves the same information into
// the product definition template number and a statistical-process
// block. The maps below carry codes between the two schemes.

// GRIB2 statistical process codes (Code Table 4.10).
const (
	StatAverage      = 0
	StatAccumulation = 1
	StatMaximum      = 2
	StatMinimum      = 3
	StatDifference   = 4
)

// GRIB1 time-range indicators used by the translation.
const (
	TimeRangeForecast     = 0
	TimeRangeInitialized  = 1
	TimeRangeValidPeriod  = 2
	TimeRangeAverage      = 3
	TimeRangeAccumulation = 4
	TimeRangeDifference   = 5
	TimeRangeMinuteFcst   = 10
)

// PDSTemplateForTimeRange selects the GRIB2 product definition template
// for a GRIB1 time-range indicator: instantaneous products use template
// 4.0, statistically processed ones 4.8.
func PDSTemplateForTimeRange(tRange int) (int, error) {
	switch tRange {
	case TimeRangeForecast, TimeRangeInitialized, TimeRangeMinuteFcst:
		return 0, nil
	case TimeRangeValidPeriod, TimeRangeAverage, TimeRangeAccumulation:
		return 8, nil
	default:
		return 0, fmt.Errorf("cannot convert time range indicator %d", tRange)
	}
}

// StatProcessForGRIB1 picks the GRIB2 statistical process code for a
// template-4.8 product. The time-range indicator decides where it can;
// otherwise the parameter itself does (GRIB1 codes 15 and 16 are
// maximum and minimum temperature). Returns the process code and the
// time-increment type.
func StatProcessForGRIB1(tRange, param int) (int, int, error) {
	switch tRange {
	case TimeRangeAverage:
		return StatAverage, 2, nil
	case TimeRangeAccumulation:
		return StatAccumulation, 2, nil
	}
	switch param {
	case 15:
		return StatMaximum, 2, nil
	case 16:
		return StatMinimum, 2, nil
	}
	return 0, 0, fmt.Errorf("cannot determine statistical process for time range %d, parameter %d", tRange, param)
}

// TimeRangeForProcess maps a GRIB2 statistical process code to the
// GRIB1 time-range indicator.
var timeRangeForProcess = map[int]int{
	StatAverage:      TimeRangeAverage,
	StatAccumulation: TimeRangeAccumulation,
	StatDifference:   TimeRangeDifference,
	StatMaximum:      TimeRangeValidPeriod,
	StatMinimum:      TimeRangeValidPeriod,
}

// TimeRangeForProcess returns the GRIB1 time-range indicator for a
// statistical process code.
func TimeRangeForProcess(proc int) (int, bool) {
	tr, ok := timeRangeForProcess[proc]
	return tr, ok
}

// cfsrTimeRange maps the NCEP-local statistical process codes used by
// the CFSR monthly products onto their GRIB1 time-range indicators.
var cfsrTimeRange = map[int]int{
	193: 113,
	194: 123,
	195: 128,
	196: 129,
	197: 130,
	198: 131,
	199: 132,
	200: 133,
	201: 134,
	202: 135,
	203: 136,
	204: 137,
	205: 138,
	206: 139,
	207: 140,
}

// CFSRTimeRange returns the GRIB1 time-range indicator for an NCEP
// CFSR monthly statistical process code.
func CFSRTimeRange(proc int) (int, bool) {
	tr, ok := cfsrTimeRange[proc]
	return tr, ok
}

// StatEndTimeDiff returns the span between a reference time and a
// statistical overall end time, in the given GRIB time unit. Both times
// are HHMMSS integers. It is used to recover P2 from a template-4.8 end
// time. Each unit compares only its own field of the two times (minute
// of hour, hour of day, day of month, month, year), so the span does not
// carry across larger units: 48 hours from 06:00 on the 10th to 06:00 on
// the 12th comes out as 0 in hours and 2 in days.
func StatEndTimeDiff(unit, eyr, emo, edy, etime, yr, mo, dy, t int) (int, error) {
	switch unit {
	case UnitMinute:
		return (etime/100)%100 - (t/100)%100, nil
	case UnitHour:
		return etime/10000 - t/10000, nil
	case UnitDay:
		return edy - dy, nil
	case UnitMonth:
		return emo - mo, nil
	case UnitYear:
		return eyr - yr, nil
	default:
		return 0, fmt.Errorf("cannot map statistical end time with unit %d", unit)
	}
}

// navgTimeRanges lists the GRIB1 time-range indicators whose PDS
// carries a number-included-in-average field.
var navgTimeRanges = map[int]bool{
	3: true, 4: true, 51: true,
	113: true, 114: true, 115: true, 116: true, 117: true,
	123: true, 124: true,
}

// HasNumInAverage reports whether a GRIB1 time-range indicator carries
// the number-included-in-average octets.
func HasNumInAverage(tRange int) bool {
	return navgTimeRanges[tRange]
}
