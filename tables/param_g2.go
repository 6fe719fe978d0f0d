package tables

// GRIB2-to-GRIB1 parameter translation.
//
// Most GRIB2 parameters map back to GRIB1 table version 3; a few land
// in NCEP or UK Met Office local tables. Parameter numbers 192 and
// above are local to the originating center, so those entries are
// keyed by center. Three UK Met Office physical-atmosphere parameters
// additionally depend on the spatial processing type of PDS template
// 4.15.

// G1Param is a GRIB1 parameter identifier: a table version plus the
// parameter code within it.
type G1Param struct {
	Table int
	Code  int
}

// G1ParamUnknown is the fallback for unmapped parameters: table
// version 3, code 255.
var G1ParamUnknown = G1Param{Table: 3, Code: 255}

type revEntry struct {
	std      G1Param
	hasStd   bool
	byCenter map[int]G1Param
}

func key(d, c, n uint8) uint32 { return uint32(d)<<16 | uint32(c)<<8 | uint32(n) }

// paramToGRIB1 is built in the var initializer, not an init function,
// so tables derived from it (the discipline coverage set) can be
// computed during package initialization.
var paramToGRIB1 = buildParamToGRIB1()

type revSpec struct {
	k uint32
	e revEntry
}

// s registers a WMO-standard mapping valid for any center.
func s(d, c, n uint8, tbl, code int) revSpec {
	return revSpec{key(d, c, n), revEntry{std: G1Param{tbl, code}, hasStd: true}}
}

// n7 registers an NCEP-local mapping.
func n7(d, c, n uint8, tbl, code int) revSpec {
	return revSpec{key(d, c, n), revEntry{byCenter: map[int]G1Param{7: {tbl, code}}}}
}

// u74 registers a UK Met Office-local mapping.
func u74(d, c, n uint8, tbl, code int) revSpec {
	return revSpec{key(d, c, n), revEntry{byCenter: map[int]G1Param{74: {tbl, code}}}}
}

func buildParamToGRIB1() map[uint32]revEntry {
	specs := []revSpec{
		// Discipline 0: meteorological products.
		// Temperature.
		s(0, 0, 0, 3, 11), s(0, 0, 1, 3, 12), s(0, 0, 2, 3, 13),
		s(0, 0, 3, 3, 14), s(0, 0, 4, 3, 15), s(0, 0, 5, 3, 16),
		s(0, 0, 6, 3, 17), s(0, 0, 7, 3, 18), s(0, 0, 8, 3, 19),
		s(0, 0, 9, 3, 25), s(0, 0, 10, 3, 121), s(0, 0, 11, 3, 122),
		n7(0, 0, 21, 131, 193), n7(0, 0, 192, 3, 229),
		// Moisture.
		s(0, 1, 0, 3, 51), s(0, 1, 1, 3, 52), s(0, 1, 2, 3, 53),
		s(0, 1, 3, 3, 54), s(0, 1, 4, 3, 55), s(0, 1, 5, 3, 56),
		s(0, 1, 6, 3, 57), s(0, 1, 7, 3, 59), s(0, 1, 8, 3, 61),
		s(0, 1, 9, 3, 62), s(0, 1, 10, 3, 63), s(0, 1, 11, 3, 66),
		s(0, 1, 12, 3, 64), s(0, 1, 13, 3, 65), s(0, 1, 14, 3, 78),
		s(0, 1, 15, 3, 79), s(0, 1, 16, 3, 99),
		n7(0, 1, 22, 3, 153), n7(0, 1, 39, 3, 194),
		n7(0, 1, 192, 3, 140), n7(0, 1, 193, 3, 141), n7(0, 1, 194, 3, 142),
		n7(0, 1, 195, 3, 143), n7(0, 1, 196, 3, 214), n7(0, 1, 197, 3, 135),
		n7(0, 1, 199, 3, 228), n7(0, 1, 200, 3, 145), n7(0, 1, 201, 3, 238),
		n7(0, 1, 206, 3, 186), n7(0, 1, 207, 3, 198), n7(0, 1, 208, 3, 239),
		n7(0, 1, 213, 3, 243), n7(0, 1, 214, 3, 245), n7(0, 1, 215, 3, 249),
		n7(0, 1, 216, 3, 159),
		// Momentum.
		s(0, 2, 0, 3, 31), s(0, 2, 1, 3, 32), s(0, 2, 2, 3, 33),
		s(0, 2, 3, 3, 34), s(0, 2, 4, 3, 35), s(0, 2, 5, 3, 36),
		s(0, 2, 6, 3, 37), s(0, 2, 7, 3, 38), s(0, 2, 8, 3, 39),
		s(0, 2, 9, 3, 40), s(0, 2, 10, 3, 41), s(0, 2, 11, 3, 42),
		s(0, 2, 12, 3, 43), s(0, 2, 13, 3, 44), s(0, 2, 14, 3, 4),
		s(0, 2, 15, 3, 45), s(0, 2, 16, 3, 46), s(0, 2, 17, 3, 124),
		s(0, 2, 18, 3, 125), s(0, 2, 19, 3, 126), s(0, 2, 20, 3, 123),
		n7(0, 2, 22, 3, 180),
		n7(0, 2, 192, 3, 136), n7(0, 2, 193, 3, 172), n7(0, 2, 194, 3, 196),
		n7(0, 2, 195, 3, 197), n7(0, 2, 196, 3, 252), n7(0, 2, 197, 3, 253),
		n7(0, 2, 224, 129, 241),
		// Mass.
		s(0, 3, 0, 3, 1), s(0, 3, 1, 3, 2), s(0, 3, 2, 3, 3),
		s(0, 3, 3, 3, 5), s(0, 3, 4, 3, 6), s(0, 3, 5, 3, 7),
		s(0, 3, 6, 3, 8), s(0, 3, 7, 3, 9), s(0, 3, 8, 3, 26),
		s(0, 3, 9, 3, 27), s(0, 3, 10, 3, 89),
		n7(0, 3, 192, 3, 130), n7(0, 3, 193, 3, 222), n7(0, 3, 194, 3, 147),
		n7(0, 3, 195, 3, 148), n7(0, 3, 196, 3, 221), n7(0, 3, 197, 3, 230),
		n7(0, 3, 198, 3, 129), n7(0, 3, 199, 3, 137), n7(0, 3, 200, 129, 141),
		// Short-wave radiation.
		s(0, 4, 0, 3, 111), s(0, 4, 1, 3, 113), s(0, 4, 2, 3, 116),
		s(0, 4, 3, 3, 117), s(0, 4, 4, 3, 118), s(0, 4, 5, 3, 119),
		s(0, 4, 6, 3, 120),
		n7(0, 4, 192, 3, 204), n7(0, 4, 193, 3, 211), n7(0, 4, 196, 3, 161),
		// Long-wave radiation.
		s(0, 5, 0, 3, 112), s(0, 5, 1, 3, 114), s(0, 5, 2, 3, 115),
		n7(0, 5, 192, 3, 205), n7(0, 5, 193, 3, 212),
		// Cloud.
		s(0, 6, 0, 3, 58), s(0, 6, 1, 3, 71), s(0, 6, 2, 3, 72),
		s(0, 6, 3, 3, 73), s(0, 6, 4, 3, 74), s(0, 6, 5, 3, 75),
		s(0, 6, 6, 3, 76),
		u74(0, 6, 25, 140, 174),
		n7(0, 6, 192, 3, 213), n7(0, 6, 193, 3, 146), n7(0, 6, 201, 133, 191),
		// Thermodynamic stability indices.
		s(0, 7, 0, 3, 24), s(0, 7, 1, 3, 77),
		n7(0, 7, 6, 3, 157), n7(0, 7, 7, 3, 156), n7(0, 7, 8, 3, 190),
		n7(0, 7, 192, 3, 131), n7(0, 7, 193, 3, 132), n7(0, 7, 194, 3, 254),
		// Trace gases.
		s(0, 14, 0, 3, 10),
		n7(0, 14, 192, 3, 154),
		// Radar.
		s(0, 15, 6, 3, 21), s(0, 15, 7, 3, 22), s(0, 15, 8, 3, 23),
		// Forecast radar imagery.
		n7(0, 16, 195, 129, 211), n7(0, 16, 196, 129, 212),
		// Physical atmospheric properties.
		s(0, 19, 0, 3, 20), s(0, 19, 1, 3, 84), s(0, 19, 2, 3, 60),
		s(0, 19, 3, 3, 67),
		n7(0, 19, 204, 3, 209),

		// Discipline 1: hydrologic products.
		n7(1, 0, 192, 3, 234), n7(1, 0, 193, 3, 235),
		n7(1, 1, 192, 3, 195), n7(1, 1, 193, 3, 194),

		// Discipline 2: land surface products.
		s(2, 0, 0, 3, 81), s(2, 0, 1, 3, 83), s(2, 0, 2, 3, 85),
		s(2, 0, 3, 3, 86), s(2, 0, 4, 3, 87), s(2, 0, 5, 3, 90),
		n7(2, 0, 192, 3, 144), n7(2, 0, 193, 3, 155), n7(2, 0, 194, 3, 207),
		n7(2, 0, 195, 3, 208), n7(2, 0, 196, 3, 223), n7(2, 0, 197, 3, 226),
		n7(2, 0, 198, 3, 225), n7(2, 0, 201, 130, 219), n7(2, 0, 207, 3, 201),
		n7(2, 3, 203, 130, 220),
		n7(2, 4, 2, 129, 250),

		// Discipline 10: oceanographic products.
		s(10, 0, 0, 3, 28), s(10, 0, 1, 3, 29), s(10, 0, 2, 3, 30),
		s(10, 0, 3, 3, 100), s(10, 0, 4, 3, 101), s(10, 0, 5, 3, 102),
		s(10, 0, 6, 3, 103), s(10, 0, 7, 3, 104), s(10, 0, 8, 3, 105),
		s(10, 0, 9, 3, 106), s(10, 0, 10, 3, 107), s(10, 0, 11, 3, 108),
		s(10, 0, 12, 3, 109), s(10, 0, 13, 3, 110),
		s(10, 1, 0, 3, 47), s(10, 1, 1, 3, 48), s(10, 1, 2, 3, 49),
		s(10, 1, 3, 3, 50),
		s(10, 2, 0, 3, 91), s(10, 2, 1, 3, 92), s(10, 2, 2, 3, 93),
		s(10, 2, 3, 3, 94), s(10, 2, 4, 3, 95), s(10, 2, 5, 3, 96),
		s(10, 2, 6, 3, 97), s(10, 2, 7, 3, 98),
		s(10, 3, 0, 3, 80), s(10, 3, 1, 3, 82),
		s(10, 4, 0, 3, 69), s(10, 4, 1, 3, 70), s(10, 4, 2, 3, 68),
		s(10, 4, 3, 3, 88),
	}

	m := make(map[uint32]revEntry, len(specs))
	for _, sp := range specs {
		m[sp.k] = sp.e
	}
	return m
}

// ukmoSpatialParams maps the UK Met Office physical-atmosphere
// parameters whose GRIB1 code depends on the spatial processing type of
// PDS template 4.15 (0 = as-is, 2 = neighborhood maximum).
var ukmoSpatialParams = map[uint32]map[int]G1Param{
	key(0, 19, 20): {0: {3, 168}, 2: {3, 169}},
	key(0, 19, 21): {0: {3, 170}, 2: {3, 171}},
	key(0, 19, 22): {0: {3, 172}, 2: {3, 173}},
}

// ParamToGRIB1 translates a GRIB2 (discipline, category, number)
// parameter back to a GRIB1 (table version, code) pair for the given
// originating center. spatialType is the spatial processing type for
// template-4.15 products (pass -1 otherwise).
//
// The fallback for unmapped parameters is G1ParamUnknown (table 3,
// code 255); callers are expected to warn.
func ParamToGRIB1(center, discipline, category, number, spatialType int) (G1Param, bool) {
	k := key(uint8(discipline), uint8(category), uint8(number))
	if center == 74 && spatialType >= 0 {
		if bySpatial, ok := ukmoSpatialParams[k]; ok {
			if g1, ok := bySpatial[spatialType]; ok {
				return g1, true
			}
		}
	}
	e, ok := paramToGRIB1[k]
	if !ok {
		return G1ParamUnknown, false
	}
	if g1, ok := e.byCenter[center]; ok {
		return g1, true
	}
	if e.hasStd {
		return e.std, true
	}
	return G1ParamUnknown, false
}
