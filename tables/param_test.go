package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamToGRIB2Standard(t *testing.T) {
	// Temperature: WMO code 11 in any standard table.
	assert.Equal(t, ParamID{0, 0, 0}, ParamToGRIB2(7, 3, 11))
	// Geopotential height.
	assert.Equal(t, ParamID{0, 3, 5}, ParamToGRIB2(7, 3, 7))
	// Significant wave height (oceanographic discipline).
	assert.Equal(t, ParamID{10, 0, 3}, ParamToGRIB2(7, 3, 100))
}

func TestParamToGRIB2CenterOverride(t *testing.T) {
	// ECMWF table 228 redefines code 1 as convective inhibition.
	assert.Equal(t, ParamID{0, 7, 7}, ParamToGRIB2(98, 228, 1))
	// The same code from any other table keeps the WMO meaning.
	assert.Equal(t, ParamID{0, 3, 0}, ParamToGRIB2(98, 2, 1))
	// DWD table 174 redefines albedo.
	assert.Equal(t, ParamID{2, 0, 34}, ParamToGRIB2(78, 174, 8))
}

func TestParamToGRIB2LocalOnly(t *testing.T) {
	// NCEP-local code 131 exists only for NCEP tables 2 and 129.
	assert.Equal(t, ParamID{0, 1, 70}, ParamToGRIB2(7, 2, 131))
	assert.Equal(t, ParamID{0, 1, 43}, ParamToGRIB2(7, 129, 131))
	assert.Equal(t, ParamUnknown, ParamToGRIB2(98, 128, 131))
	assert.Equal(t, ParamUnknown, ParamToGRIB2(7, 3, 131))
}

func TestParamToGRIB2GatedCenter(t *testing.T) {
	// Code 33 (u wind) has ECMWF-specific overrides; an unlisted
	// ECMWF table does not fall back to the WMO meaning.
	assert.Equal(t, ParamID{0, 1, 82}, ParamToGRIB2(98, 201, 33))
	assert.Equal(t, ParamUnknown, ParamToGRIB2(98, 100, 33))
	assert.Equal(t, ParamID{0, 2, 2}, ParamToGRIB2(7, 3, 33))
}

func TestParamToGRIB2Unknown(t *testing.T) {
	assert.Equal(t, ParamUnknown, ParamToGRIB2(7, 3, 127))
}

func TestParamToGRIB1Standard(t *testing.T) {
	g1, ok := ParamToGRIB1(7, 0, 0, 0, -1)
	require.True(t, ok)
	assert.Equal(t, G1Param{3, 11}, g1)

	g1, ok = ParamToGRIB1(98, 0, 3, 5, -1)
	require.True(t, ok)
	assert.Equal(t, G1Param{3, 7}, g1)
}

func TestParamToGRIB1NCEPLocal(t *testing.T) {
	g1, ok := ParamToGRIB1(7, 0, 1, 192, -1)
	require.True(t, ok)
	assert.Equal(t, G1Param{3, 140}, g1)

	// The same local number is unknown from another center.
	_, ok = ParamToGRIB1(98, 0, 1, 192, -1)
	assert.False(t, ok)
}

func TestParamToGRIB1UKMOSpatial(t *testing.T) {
	g1, ok := ParamToGRIB1(74, 0, 19, 20, 0)
	require.True(t, ok)
	assert.Equal(t, G1Param{3, 168}, g1)

	g1, ok = ParamToGRIB1(74, 0, 19, 20, 2)
	require.True(t, ok)
	assert.Equal(t, G1Param{3, 169}, g1)
}

func TestParamToGRIB1Unknown(t *testing.T) {
	g1, ok := ParamToGRIB1(7, 0, 20, 0, -1)
	assert.False(t, ok)
	assert.Equal(t, G1ParamUnknown, g1)
}

func TestParamRoundTripWMOSubset(t *testing.T) {
	// The WMO-standard subset of table 3 is bijective: GRIB1 -> GRIB2
	// -> GRIB1 is the identity for codes whose default mapping has a
	// reverse entry.
	for code := 1; code <= 126; code++ {
		id := ParamToGRIB2(9999, 3, code)
		if id == ParamUnknown {
			continue
		}
		g1, ok := ParamToGRIB1(9999, int(id.Discipline), int(id.Category), int(id.Number), -1)
		if !ok {
			continue
		}
		require.Equalf(t, 3, g1.Table, "code %d", code)
		require.Equalf(t, code, g1.Code, "code %d", code)
	}
}
