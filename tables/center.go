package tables

// WMO Common Code Table C-1: originating/generating centers.
//
// Both editions share this namespace, so one table serves GRIB1 and
// GRIB2 messages. The entries cover the centers whose local parameter
// tables the translation maps know about (NCEP 7, UK Met 74, DWD 78,
// ECMWF 98) plus the producers commonly seen alongside them; everything
// else falls back to the numeric label.

// Centers with local parameter tables in the translation maps.
const (
	CenterNCEP  = 7
	CenterUKMO  = 74
	CenterDWD   = 78
	CenterECMWF = 98
)

// CenterTable names the originating centers.
var CenterTable = newCodeTable("center", map[int]string{
	CenterNCEP:  "NCEP",
	8:           "NWS-NWSTG",
	34:          "JMA",
	54:          "CMC",
	57:          "USAF-GWC",
	58:          "FNMOC",
	59:          "NOAA-FSL",
	60:          "NCAR",
	CenterUKMO:  "UK Met Office",
	CenterDWD:   "DWD",
	80:          "CNMCA",
	84:          "Meteo-France",
	86:          "FMI",
	CenterECMWF: "ECMWF",
	161:         "NCMRWF",
}, localUse(241, 254), missing255())

// GetCenterName returns the name for a center code.
func GetCenterName(code int) string {
	return CenterTable.Name(code)
}

// HasLocalParamTables reports whether the parameter translation knows
// center-specific table overrides for this center. Messages from other
// centers translate through the WMO-standard mappings only.
func HasLocalParamTables(center int) bool {
	switch center {
	case CenterNCEP, CenterUKMO, CenterDWD, CenterECMWF:
		return true
	}
	return false
}
