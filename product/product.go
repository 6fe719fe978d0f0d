// Package product provides the unified product definition shared by
// both GRIB editions, and the wire codecs for the GRIB1 Product
// Definition Section and the GRIB2 product definition templates.
package product

import (
	"fmt"
	"math"

	"github.com/mmp/regrib/tables"
)

// Level is one GRIB2 fixed surface: a type code plus a scaled value.
// The physical value is Value / 10^Scale.
type Level struct {
	Type  uint8
	Scale int8
	Value int32
}

// Float returns the level value in physical units.
func (l Level) Float() float64 {
	return float64(l.Value) / math.Pow(10, float64(l.Scale))
}

// IsLayer reports whether a second surface is present (type 255 means
// the level is a single surface).
func (l Level) IsLayer() bool {
	return l.Type != tables.SecondSurfaceMissing
}

// TimeRangeSpec is one statistical-process time range of GRIB2 PDS
// templates 4.8/4.11/4.12.
type TimeRangeSpec struct {
	Process    uint8
	IncrType   uint8
	TimeUnit   uint8
	Length     uint32
	IncrUnit   uint8
	IncrLength uint32
}

// Statistical is the statistical-process block: the overall end time
// and the list of time-range specifications.
type Statistical struct {
	EndYear    int
	EndMonth   int
	EndDay     int
	EndTime    int // HHMMSS
	NumMissing uint32
	Ranges     []TimeRangeSpec
}

// Ensemble carries the ensemble-forecast fields of templates 4.1/4.11.
type Ensemble struct {
	Type        uint8
	PerturbNum  uint8
	NumForecast uint8
}

// Derived carries the derived-forecast fields of templates 4.2/4.12.
type Derived struct {
	Code        uint8
	NumForecast uint8
}

// Spatial carries the spatial-processing fields of template 4.15.
type Spatial struct {
	StatProcess uint8
	Type        uint8
	NumPoints   uint8
}

// GRIB1Meta is the edition-1 identity of a product: everything the
// GRIB1 PDS says about it beyond what the unified fields carry. A
// GRIB1 decode preserves these verbatim; a GRIB2 decode leaves them
// for the encoder-side translation to synthesize.
type GRIB1Meta struct {
	// Valid is set when the product was decoded from edition 1 and the
	// fields below are authoritative.
	Valid        bool
	TableVersion int
	Param        int
	GridID       int // grid identification (PDS octet 7)
	LevelType    int
	Level1       int
	Level2       int
	TimeRange    int
	P1           int
	P2           int
	NumInAverage int
	NumMissing   int
	Extension    []byte // opaque PDS extension payload
}

// Product is the edition-agnostic product definition.
type Product struct {
	// GRIB2 identity; synthesized through the translation tables when
	// the source was edition 1.
	TemplateNumber int
	Discipline     uint8
	Category       uint8
	Number         uint8

	GenProcess   uint8
	TimeUnit     uint8
	ForecastTime int

	Level1 Level
	Level2 Level

	Stat    *Statistical
	Ens     *Ensemble
	Derived *Derived
	Spatial *Spatial

	G1 GRIB1Meta
}

// ParamID returns the GRIB2 parameter identifier.
func (p *Product) ParamID() tables.ParamID {
	return tables.ParamID{Discipline: p.Discipline, Category: p.Category, Number: p.Number}
}

// Describe returns a one-line human-readable summary of the product.
// Products decoded from edition 1 are named through their native
// identifiers; edition-2 products resolve through the translation
// tables' WMO-standard mappings.
func (p *Product) Describe() string {
	var name string
	g1Level := 0
	if p.G1.Valid {
		name = tables.G1ParamName(p.G1.Param)
		g1Level = p.G1.LevelType
	} else {
		name = tables.ParamName(0, int(p.Discipline), int(p.Category), int(p.Number))
	}
	lvl := tables.LevelName(g1Level, int(p.Level1.Type))
	when := fmt.Sprintf("+%d %s", p.ForecastTime, tables.TimeUnitName(int(p.TimeUnit)))

	if p.Level1.IsLayer() && p.Level2.IsLayer() {
		return fmt.Sprintf("%s, layer %g-%g (%s), %s",
			name, p.Level1.Float(), p.Level2.Float(), lvl, when)
	}
	return fmt.Sprintf("%s at %g (%s), %s", name, p.Level1.Float(), lvl, when)
}
