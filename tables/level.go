package tables

import "fmt"

// Surface and level-type names.
//
// Each edition has its own level namespace: GRIB2 fixed surface types
// (Code Table 4.5) and GRIB1 level types (Table 3). The name tables
// below cover exactly the types the translation in levelmap.go handles
// plus the untranslated pass-through codes both editions share; a
// consistency check in the tests keeps them aligned with the
// translation entries.

// surfaceNames is the GRIB2 side (Code Table 4.5 subset).
var surfaceNames = map[int]string{
	1:   "Ground or water surface",
	2:   "Cloud base",
	3:   "Cloud top",
	4:   "0 C isotherm",
	5:   "Level of adiabatic condensation",
	6:   "Maximum wind level",
	7:   "Tropopause",
	8:   "Nominal top of the atmosphere",
	9:   "Sea bottom",
	20:  "Isothermal level",
	100: "Isobaric surface",
	101: "Mean sea level",
	102: "Altitude above mean sea level",
	103: "Height above ground",
	104: "Sigma level",
	105: "Hybrid level",
	106: "Depth below land surface",
	107: "Isentropic level",
	108: "Level at pressure difference from ground",
	109: "Potential vorticity surface",
	111: "Eta level",
	117: "Mixed layer depth",
	160: "Depth below sea level",
	200: "Entire atmosphere",
	201: "Entire ocean",
}

// LevelTable names the GRIB2 fixed surface types.
var LevelTable = newCodeTable("surface type", surfaceNames,
	localUse(192, 199), localUse(204, 254), missing255())

// GetLevelName returns the name for a GRIB2 fixed surface type.
func GetLevelName(code int) string {
	return LevelTable.Name(code)
}

// g1LevelNames is the GRIB1 side (Table 3), with the layer forms the
// translation folds into pairs of GRIB2 surfaces.
var g1LevelNames = map[int]string{
	1:   "Surface",
	2:   "Cloud base",
	3:   "Cloud top",
	4:   "0 C isotherm",
	5:   "Adiabatic condensation level",
	6:   "Maximum wind level",
	7:   "Tropopause",
	8:   "Nominal top of atmosphere",
	9:   "Sea bottom",
	20:  "Isothermal level",
	100: "Isobaric level (hPa)",
	101: "Layer between isobaric levels",
	102: "Mean sea level",
	103: "Altitude above MSL (m)",
	104: "Layer between altitudes above MSL",
	105: "Height above ground (m)",
	106: "Layer between heights above ground",
	107: "Sigma level",
	108: "Layer between sigma levels",
	109: "Hybrid level",
	110: "Layer between hybrid levels",
	111: "Depth below land surface (cm)",
	112: "Layer below land surface",
	113: "Isentropic level (K)",
	114: "Layer between isentropic levels",
	115: "Level at pressure difference from ground (hPa)",
	116: "Layer at pressure differences from ground",
	117: "Potential vorticity surface",
	119: "Eta level",
	120: "Layer between eta levels",
	121: "Layer between high-precision isobaric levels",
	125: "Height above ground, high precision (cm)",
	128: "Layer between high-precision sigma levels",
	141: "Layer between isobaric levels (mixed units)",
	160: "Depth below sea level (m)",
	200: "Entire atmosphere",
	201: "Entire ocean",
}

// G1LevelName returns the name for a GRIB1 level type.
func G1LevelName(code int) string {
	if name, ok := g1LevelNames[code]; ok {
		return name
	}
	return fmt.Sprintf("level type %d", code)
}

// LevelName names the level of a product whichever edition it came
// from: the GRIB1 level type when known (set by Decoder1), otherwise
// the GRIB2 surface type.
func LevelName(g1Type, surfaceType int) string {
	if g1Type != 0 {
		return G1LevelName(g1Type)
	}
	return GetLevelName(surfaceType)
}
