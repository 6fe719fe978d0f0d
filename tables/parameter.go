package tables

import "fmt"

// Parameter names.
//
// The translation tables pivot on the GRIB1 table-3 namespace: every
// WMO-standard GRIB2 (discipline, category, number) triple this module
// handles corresponds to a table-3 code, so names are stored once,
// keyed by that code, and GRIB2 identifiers resolve through
// ParamToGRIB1 rather than through a second name table that could
// drift from the mappings.

// paramInfo names a GRIB1 table-3 parameter and its unit.
type paramInfo struct {
	name string
	unit string
}

// g1Params is WMO GRIB1 Table 2/3 (the international parameter codes,
// 1-126). Center-local codes (128-254) have no fixed meaning and fall
// back to the numeric label.
var g1Params = map[int]paramInfo{
	1:   {"Pressure", "Pa"},
	2:   {"Pressure reduced to MSL", "Pa"},
	3:   {"Pressure tendency", "Pa/s"},
	4:   {"Potential vorticity", "K m2/(kg s)"},
	5:   {"ICAO standard atmosphere reference height", "m"},
	6:   {"Geopotential", "m2/s2"},
	7:   {"Geopotential height", "gpm"},
	8:   {"Geometric height", "m"},
	9:   {"Standard deviation of height", "m"},
	10:  {"Total ozone", "Dobson"},
	11:  {"Temperature", "K"},
	12:  {"Virtual temperature", "K"},
	13:  {"Potential temperature", "K"},
	14:  {"Pseudo-adiabatic potential temperature", "K"},
	15:  {"Maximum temperature", "K"},
	16:  {"Minimum temperature", "K"},
	17:  {"Dew point temperature", "K"},
	18:  {"Dew point depression", "K"},
	19:  {"Lapse rate", "K/m"},
	20:  {"Visibility", "m"},
	21:  {"Radar spectra (1)", ""},
	22:  {"Radar spectra (2)", ""},
	23:  {"Radar spectra (3)", ""},
	24:  {"Parcel lifted index (to 500 hPa)", "K"},
	25:  {"Temperature anomaly", "K"},
	26:  {"Pressure anomaly", "Pa"},
	27:  {"Geopotential height anomaly", "gpm"},
	28:  {"Wave spectra (1)", ""},
	29:  {"Wave spectra (2)", ""},
	30:  {"Wave spectra (3)", ""},
	31:  {"Wind direction", "deg"},
	32:  {"Wind speed", "m/s"},
	33:  {"u-component of wind", "m/s"},
	34:  {"v-component of wind", "m/s"},
	35:  {"Stream function", "m2/s"},
	36:  {"Velocity potential", "m2/s"},
	37:  {"Montgomery stream function", "m2/s2"},
	38:  {"Sigma coordinate vertical velocity", "1/s"},
	39:  {"Vertical velocity (pressure)", "Pa/s"},
	40:  {"Vertical velocity (geometric)", "m/s"},
	41:  {"Absolute vorticity", "1/s"},
	42:  {"Absolute divergence", "1/s"},
	43:  {"Relative vorticity", "1/s"},
	44:  {"Relative divergence", "1/s"},
	45:  {"Vertical u-component shear", "1/s"},
	46:  {"Vertical v-component shear", "1/s"},
	47:  {"Direction of current", "deg"},
	48:  {"Speed of current", "m/s"},
	49:  {"u-component of current", "m/s"},
	50:  {"v-component of current", "m/s"},
	51:  {"Specific humidity", "kg/kg"},
	52:  {"Relative humidity", "%"},
	53:  {"Humidity mixing ratio", "kg/kg"},
	54:  {"Precipitable water", "kg/m2"},
	55:  {"Vapour pressure", "Pa"},
	56:  {"Saturation deficit", "Pa"},
	57:  {"Evaporation", "kg/m2"},
	58:  {"Cloud ice", "kg/m2"},
	59:  {"Precipitation rate", "kg/(m2 s)"},
	60:  {"Thunderstorm probability", "%"},
	61:  {"Total precipitation", "kg/m2"},
	62:  {"Large scale precipitation", "kg/m2"},
	63:  {"Convective precipitation", "kg/m2"},
	64:  {"Snowfall rate water equivalent", "kg/(m2 s)"},
	65:  {"Water equivalent of accumulated snow depth", "kg/m2"},
	66:  {"Snow depth", "m"},
	67:  {"Mixed layer depth", "m"},
	68:  {"Transient thermocline depth", "m"},
	69:  {"Main thermocline depth", "m"},
	70:  {"Main thermocline anomaly", "m"},
	71:  {"Total cloud cover", "%"},
	72:  {"Convective cloud cover", "%"},
	73:  {"Low cloud cover", "%"},
	74:  {"Medium cloud cover", "%"},
	75:  {"High cloud cover", "%"},
	76:  {"Cloud water", "kg/m2"},
	77:  {"Best lifted index (to 500 hPa)", "K"},
	78:  {"Convective snow", "kg/m2"},
	79:  {"Large scale snow", "kg/m2"},
	80:  {"Water temperature", "K"},
	81:  {"Land cover", "fraction"},
	82:  {"Deviation of sea level from mean", "m"},
	83:  {"Surface roughness", "m"},
	84:  {"Albedo", "%"},
	85:  {"Soil temperature", "K"},
	86:  {"Soil moisture content", "kg/m2"},
	87:  {"Vegetation", "%"},
	88:  {"Salinity", "kg/kg"},
	89:  {"Density", "kg/m3"},
	90:  {"Water runoff", "kg/m2"},
	91:  {"Ice cover", "fraction"},
	92:  {"Ice thickness", "m"},
	93:  {"Direction of ice drift", "deg"},
	94:  {"Speed of ice drift", "m/s"},
	95:  {"u-component of ice drift", "m/s"},
	96:  {"v-component of ice drift", "m/s"},
	97:  {"Ice growth rate", "m/s"},
	98:  {"Ice divergence", "1/s"},
	99:  {"Snow melt", "kg/m2"},
	100: {"Significant height of combined waves", "m"},
	101: {"Direction of wind waves", "deg"},
	102: {"Significant height of wind waves", "m"},
	103: {"Mean period of wind waves", "s"},
	104: {"Direction of swell waves", "deg"},
	105: {"Significant height of swell waves", "m"},
	106: {"Mean period of swell waves", "s"},
	107: {"Primary wave direction", "deg"},
	108: {"Primary wave mean period", "s"},
	109: {"Secondary wave direction", "deg"},
	110: {"Secondary wave mean period", "s"},
	111: {"Net short-wave radiation flux (surface)", "W/m2"},
	112: {"Net long-wave radiation flux (surface)", "W/m2"},
	113: {"Net short-wave radiation flux (top)", "W/m2"},
	114: {"Net long-wave radiation flux (top)", "W/m2"},
	115: {"Long-wave radiation flux", "W/m2"},
	116: {"Short-wave radiation flux", "W/m2"},
	117: {"Global radiation flux", "W/m2"},
	118: {"Brightness temperature", "K"},
	119: {"Radiance (wave number)", "W/(m sr)"},
	120: {"Radiance (wave length)", "W/(m3 sr)"},
	121: {"Latent heat net flux", "W/m2"},
	122: {"Sensible heat net flux", "W/m2"},
	123: {"Boundary layer dissipation", "W/m2"},
	124: {"Momentum flux, u component", "N/m2"},
	125: {"Momentum flux, v component", "N/m2"},
	126: {"Wind mixing energy", "J"},
}

// G1ParamName returns the name of a GRIB1 table-3 parameter code.
func G1ParamName(code int) string {
	if info, ok := g1Params[code]; ok {
		return info.name
	}
	if code >= 128 && code <= 254 {
		return fmt.Sprintf("Local parameter %d", code)
	}
	return fmt.Sprintf("Parameter %d", code)
}

// G1ParamUnit returns the unit of a GRIB1 table-3 parameter code, or
// an empty string when unknown.
func G1ParamUnit(code int) string {
	return g1Params[code].unit
}

// ParamName names a GRIB2 parameter by translating it back to the
// table-3 namespace. With center 0 only the WMO-standard mappings
// apply; passing the originating center also resolves the local codes
// the reverse table knows.
func ParamName(center, discipline, category, number int) string {
	if g1, ok := ParamToGRIB1(center, discipline, category, number, -1); ok && g1.Table == 3 {
		return G1ParamName(g1.Code)
	}
	return fmt.Sprintf("Parameter %d.%d.%d", discipline, category, number)
}

// ParamUnit returns the unit for a GRIB2 parameter, resolved the same
// way as ParamName.
func ParamUnit(center, discipline, category, number int) string {
	if g1, ok := ParamToGRIB1(center, discipline, category, number, -1); ok && g1.Table == 3 {
		return G1ParamUnit(g1.Code)
	}
	return ""
}
