package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeTableLookup(t *testing.T) {
	ct := newCodeTable("thing", map[int]string{0: "Zero", 1: "One"},
		localUse(192, 254), missing255())

	assert.Equal(t, "Zero", ct.Name(0))
	assert.Equal(t, "One", ct.Name(1))
	assert.Equal(t, "Local (200)", ct.Name(200))
	assert.Equal(t, "Missing (255)", ct.Name(255))
	assert.Equal(t, "thing 97", ct.Name(97))

	assert.True(t, ct.Known(0))
	assert.False(t, ct.Known(97))
	assert.False(t, ct.Known(255))
}

func TestCenterNames(t *testing.T) {
	assert.Equal(t, "NCEP", GetCenterName(CenterNCEP))
	assert.Equal(t, "ECMWF", GetCenterName(CenterECMWF))
	assert.Equal(t, "center 99", GetCenterName(99))

	// The centers with translation-table overrides are exactly the
	// four the parameter maps were transcribed for.
	for _, c := range []int{CenterNCEP, CenterUKMO, CenterDWD, CenterECMWF} {
		assert.Truef(t, HasLocalParamTables(c), "center %d", c)
		assert.Truef(t, CenterTable.Known(c), "center %d should be named", c)
	}
	assert.False(t, HasLocalParamTables(54))
}

func TestDisciplineCoverage(t *testing.T) {
	assert.Equal(t, "Meteorological", GetDisciplineName(0))
	assert.Equal(t, "Oceanographic", GetDisciplineName(10))

	// The reverse parameter map covers the GRIB1-expressible
	// disciplines and nothing else.
	for _, d := range []int{0, 1, 2, 10} {
		assert.Truef(t, HasGRIB1Mapping(d), "discipline %d", d)
	}
	assert.False(t, HasGRIB1Mapping(3))
	assert.False(t, HasGRIB1Mapping(4))
}

func TestG1ParamNames(t *testing.T) {
	assert.Equal(t, "Temperature", G1ParamName(11))
	assert.Equal(t, "Total precipitation", G1ParamName(61))
	assert.Equal(t, "K", G1ParamUnit(11))
	assert.Equal(t, "Local parameter 228", G1ParamName(228))
	assert.Equal(t, "Parameter 127", G1ParamName(127))
}

func TestParamNamePivotsThroughTranslation(t *testing.T) {
	// GRIB2 identifiers resolve to the same names as their GRIB1
	// counterparts because both go through the table-3 pivot.
	assert.Equal(t, "Temperature", ParamName(0, 0, 0, 0))
	assert.Equal(t, "Geopotential height", ParamName(0, 0, 3, 5))
	assert.Equal(t, "Significant height of combined waves", ParamName(0, 10, 0, 3))
	assert.Equal(t, "K", ParamUnit(0, 0, 0, 0))

	// Unmapped triples keep their numeric identity.
	assert.Equal(t, "Parameter 3.1.0", ParamName(0, 3, 1, 0))
	assert.Equal(t, "", ParamUnit(0, 3, 1, 0))
}

func TestEveryMappedParamHasAName(t *testing.T) {
	// Each WMO-standard code in the forward map names cleanly: the
	// name table and the translation tables cannot drift apart.
	for code := 1; code <= 126; code++ {
		if ParamToGRIB2(0, 3, code) == ParamUnknown {
			continue
		}
		_, ok := g1Params[code]
		assert.Truef(t, ok, "code %d is mapped but unnamed", code)
	}
}

func TestLevelNames(t *testing.T) {
	assert.Equal(t, "Isobaric surface", GetLevelName(100))
	assert.Equal(t, "Isobaric level (hPa)", G1LevelName(100))
	assert.Equal(t, "Layer between isobaric levels", G1LevelName(101))
	assert.Equal(t, "level type 42", G1LevelName(42))

	// LevelName prefers the GRIB1 side when the decoder recorded one.
	assert.Equal(t, "Surface", LevelName(1, 0))
	assert.Equal(t, "Mean sea level", LevelName(0, 101))
}

func TestLevelTranslationEntriesAreNamed(t *testing.T) {
	// Every GRIB1 level type the translation handles has a name, and
	// so does every GRIB2 surface it produces.
	for g1Type, m := range levelToGRIB2 {
		_, ok := g1LevelNames[g1Type]
		require.Truef(t, ok, "GRIB1 level type %d is translated but unnamed", g1Type)
		_, ok = surfaceNames[int(m.Type1)]
		require.Truef(t, ok, "surface type %d is produced but unnamed", m.Type1)
	}
}

func TestReferenceTimeCodeNames(t *testing.T) {
	assert.Equal(t, "Start of forecast", GetTimeSignificanceName(1))
	assert.Equal(t, "Operational", GetProductionStatusName(0))
	assert.Equal(t, "Forecast", GetDataTypeName(1))
	// Decoder1 synthesizes 255 for the codes GRIB1 does not carry.
	assert.Equal(t, "Missing (255)", GetProductionStatusName(255))
	assert.Equal(t, "Missing (255)", GetDataTypeName(255))
}

func TestTimeUnitNames(t *testing.T) {
	assert.Equal(t, "hours", TimeUnitName(UnitHour))
	assert.Equal(t, "minutes", TimeUnitName(UnitMinute))
	assert.Equal(t, "seconds", TimeUnitName(13))
	assert.Equal(t, "time unit 50", TimeUnitName(50))
}
