package tables

import (
	"fmt"
	"math"
)

// Level-type translation between the editions.
//
// GRIB1 encodes one level-type octet plus one or two raw level values
// whose unit depends on the type. GRIB2 encodes two fixed surfaces,
// each a (type, scale factor, scaled value) triple. The table below
// drives both directions; a handful of types additionally transform the
// raw value (isentropic and high-precision layers store offsets from a
// fixed base).

// SecondSurfaceMissing is the GRIB2 surface type meaning "no second
// surface": the level is a single surface, not a layer.
const SecondSurfaceMissing = 255

// LevelMapping describes how one GRIB1 level type becomes a pair of
// GRIB2 fixed surfaces.
type LevelMapping struct {
	Type1  uint8 // GRIB2 type of first surface
	Type2  uint8 // GRIB2 type of second surface (255 = none)
	Scale1 int8
	Scale2 int8
	// Base, when non-zero, replaces each value v with Base-v in the
	// GRIB1-to-GRIB2 direction. LevelToGRIB1 re-applies a base only for
	// type 114; the types with base 1100 are not produced on the way out.
	Base int32
	// BaseSecondOnly restricts the Base transform to the second value
	// (the mixed-unit hPa/mb layer type 141).
	BaseSecondOnly bool
}

// levelToGRIB2 maps a GRIB1 level type to its GRIB2 surfaces. Types not
// present pass through unchanged as a single surface with scale 0.
var levelToGRIB2 = map[int]LevelMapping{
	20:  {Type1: 20, Type2: 255, Scale1: -2},
	100: {Type1: 100, Type2: 255, Scale1: -2},
	101: {Type1: 100, Type2: 100, Scale1: -3, Scale2: -3},
	102: {Type1: 101, Type2: 255},
	103: {Type1: 102, Type2: 255},
	104: {Type1: 102, Type2: 102, Scale1: -2, Scale2: -2},
	105: {Type1: 103, Type2: 255},
	106: {Type1: 103, Type2: 103, Scale1: -2, Scale2: -2},
	107: {Type1: 104, Type2: 255, Scale1: 4},
	108: {Type1: 104, Type2: 104, Scale1: 2, Scale2: 2},
	109: {Type1: 105, Type2: 255},
	110: {Type1: 105, Type2: 105},
	111: {Type1: 106, Type2: 255, Scale1: 2},
	112: {Type1: 106, Type2: 106, Scale1: 2, Scale2: 2},
	113: {Type1: 107, Type2: 255},
	114: {Type1: 107, Type2: 107, Base: 475},
	115: {Type1: 108, Type2: 255, Scale1: -2},
	116: {Type1: 108, Type2: 108, Scale1: -2, Scale2: -2},
	117: {Type1: 109, Type2: 255, Scale1: 9},
	119: {Type1: 111, Type2: 255, Scale1: 4},
	120: {Type1: 111, Type2: 111, Scale1: 2, Scale2: 2},
	121: {Type1: 100, Type2: 100, Scale1: -2, Scale2: -2, Base: 1100},
	125: {Type1: 103, Type2: 255, Scale1: 2},
	128: {Type1: 104, Type2: 104, Scale1: 3, Scale2: 3, Base: 1100},
	141: {Type1: 100, Type2: 100, Scale1: -3, Scale2: -2, Base: 1100, BaseSecondOnly: true},
}

// LevelToGRIB2 converts a GRIB1 level (type plus raw value or values)
// into the two GRIB2 fixed-surface triples.
func LevelToGRIB2(g1Type, v1, v2 int) (t1, t2 uint8, s1, s2 int8, sv1, sv2 int32) {
	m, ok := levelToGRIB2[g1Type]
	if !ok {
		// Single surface with the type code carried across unchanged.
		return uint8(g1Type), SecondSurfaceMissing, 0, 0, int32(v1), int32(v2)
	}
	sv1, sv2 = int32(v1), int32(v2)
	if m.Base != 0 {
		if !m.BaseSecondOnly {
			sv1 = m.Base - sv1
		}
		sv2 = m.Base - sv2
	}
	return m.Type1, m.Type2, m.Scale1, m.Scale2, sv1, sv2
}

// LevelToGRIB1 converts a pair of GRIB2 fixed surfaces back into a
// GRIB1 level type and value(s). lvl1 and lvl2 are the surfaces' values
// in physical units (scaled value / 10^scale).
//
// A layer bounded by two different surface types has no GRIB1
// representation.
func LevelToGRIB1(t1, t2 int, lvl1, lvl2 float64) (g1Type, v1, v2 int, err error) {
	if t2 != SecondSurfaceMissing && t1 != t2 {
		return 0, 0, 0, fmt.Errorf("layer bounded by different surface types %d and %d", t1, t2)
	}
	layer := t2 != SecondSurfaceMissing

	round := func(v float64) int { return int(math.Floor(v + 0.5)) }

	switch t1 {
	case 1, 2, 3, 4, 5, 6, 7, 8, 9, 20:
		return t1, 0, 0, nil
	case 100:
		if !layer {
			return 100, round(lvl1 / 100), 0, nil
		}
		return 101, round(lvl1 / 1000), round(lvl2 / 1000), nil
	case 101:
		return 102, 0, 0, nil
	case 102:
		if !layer {
			return 103, round(lvl1), 0, nil
		}
		return 104, round(lvl1 / 100), round(lvl2 / 100), nil
	case 103:
		if !layer {
			return 105, round(lvl1), 0, nil
		}
		return 106, round(lvl1 / 100), round(lvl2 / 100), nil
	case 104:
		if !layer {
			return 107, round(lvl1 * 10000), 0, nil
		}
		return 108, round(lvl1 * 100), round(lvl2 * 100), nil
	case 105:
		if !layer {
			return 109, round(lvl1), 0, nil
		}
		return 110, round(lvl1), round(lvl2), nil
	case 106:
		if !layer {
			return 111, round(lvl1 * 100), 0, nil
		}
		return 112, round(lvl1 * 100), round(lvl2 * 100), nil
	case 107:
		if !layer {
			return 113, round(lvl1), 0, nil
		}
		return 114, round(475 - lvl1), round(475 - lvl2), nil
	case 108:
		if !layer {
			return 115, round(lvl1 / 100), 0, nil
		}
		return 116, round(lvl1 / 100), round(lvl2 / 100), nil
	case 109:
		return 117, round(lvl1 * 1e9), 0, nil
	case 111:
		if !layer {
			return 119, round(lvl1 * 10000), 0, nil
		}
		return 120, round(lvl1 * 100), round(lvl2 * 100), nil
	case 160:
		return 160, round(lvl1), 0, nil
	case 200:
		return 200, 0, 0, nil
	default:
		if !layer {
			// Carry unknown single surfaces across unchanged.
			return t1, round(lvl1), 0, nil
		}
		return 0, 0, 0, fmt.Errorf("no GRIB1 level code for surface type %d", t1)
	}
}
