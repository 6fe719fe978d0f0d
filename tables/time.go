package tables

// Reference-time code tables.
//
// The Identification Section of GRIB2 qualifies its reference time
// with three codes (Tables 1.2-1.4) that GRIB1 has no octets for; the
// edition-1 decoder synthesizes fixed values (start-of-forecast,
// missing status, missing type) and the edition-2 encoder writes them
// back out. The time-unit table is shared by both editions (GRIB1
// Table 4 and GRIB2 Table 4.4 use the same codes) and by the calendar
// arithmetic in calendar.go.

// TimeSignificanceTable is WMO Code Table 1.2, the significance of the
// reference time.
var TimeSignificanceTable = newCodeTable("time significance", map[int]string{
	0: "Analysis",
	1: "Start of forecast",
	2: "Verifying time of forecast",
	3: "Observation time",
}, localUse(192, 254), missing255())

// GetTimeSignificanceName returns the name for a time significance code.
func GetTimeSignificanceName(code int) string {
	return TimeSignificanceTable.Name(code)
}

// ProductionStatusTable is WMO Code Table 1.3.
var ProductionStatusTable = newCodeTable("production status", map[int]string{
	0: "Operational",
	1: "Operational test",
	2: "Research",
	3: "Re-analysis",
}, localUse(192, 254), missing255())

// GetProductionStatusName returns the name for a production status code.
func GetProductionStatusName(code int) string {
	return ProductionStatusTable.Name(code)
}

// DataTypeTable is WMO Code Table 1.4, the type of processed data.
var DataTypeTable = newCodeTable("data type", map[int]string{
	0: "Analysis",
	1: "Forecast",
	2: "Analysis and forecast",
	3: "Control forecast",
	4: "Perturbed forecast",
	5: "Control and perturbed forecast",
	6: "Processed satellite observations",
	7: "Processed radar observations",
}, localUse(192, 254), missing255())

// GetDataTypeName returns the name for a data type code.
func GetDataTypeName(code int) string {
	return DataTypeTable.Name(code)
}

// TimeUnitTable names the forecast time units shared by GRIB1 Table 4
// and GRIB2 Table 4.4. Only minutes, hours, and days are addable by
// the calendar (AddTime); the longer units appear in statistical
// end-time differencing.
var TimeUnitTable = newCodeTable("time unit", map[int]string{
	UnitMinute: "minutes",
	UnitHour:   "hours",
	UnitDay:    "days",
	UnitMonth:  "months",
	UnitYear:   "years",
	10:         "3-hour periods",
	11:         "6-hour periods",
	12:         "12-hour periods",
	13:         "seconds",
}, localUse(192, 254), missing255())

// TimeUnitName returns the name for a forecast time unit code.
func TimeUnitName(code int) string {
	return TimeUnitTable.Name(code)
}
