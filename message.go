// Package regrib is a bidirectional codec for gridded meteorological
// fields in WMO GRIB editions 1 and 2.
//
// Both decoders produce the same unified Message, and both encoders
// consume it, so a stream can be converted losslessly (up to the
// documented translation tables and packing quantization) in either
// direction:
//
//	in, _ := os.Open("forecast.grib")
//	out, _ := os.Create("forecast.grib2")
//	n, err := regrib.Transcode1To2(in, out)
//
// Messages can also be decoded directly:
//
//	dec := regrib.NewDecoder1(in)
//	for {
//	    msg, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
package regrib

import (
	"fmt"

	"github.com/mmp/regrib/data"
	"github.com/mmp/regrib/grid"
	"github.com/mmp/regrib/product"
	"github.com/mmp/regrib/tables"
)

// MissingValue is the sentinel stored in Field.Values for grid points
// masked out by the bitmap. Comparisons use exact equality; the value
// is exactly representable.
const MissingValue = data.MissingValue

// RefTime is the reference time of a message.
type RefTime struct {
	Year  int // four digits
	Month int
	Day   int
	Time  int // HHMMSS

	Significance     uint8 // significance of reference time (Table 1.2)
	ProductionStatus uint8
	DataType         uint8
}

// HHMM returns the reference time without seconds, the precision GRIB1
// carries.
func (t RefTime) HHMM() int {
	return t.Time / 100
}

// String formats the reference time.
func (t RefTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		t.Year, t.Month, t.Day, t.Time/10000, t.Time/100%100, t.Time%100)
}

// Field is one decoded grid: geometry, product definition, packing
// metadata, optional bitmap, and the gridpoint values in scan order.
type Field struct {
	Grid    grid.Grid
	Product *product.Product
	Packing *data.Packing

	// Bitmap, when non-nil, has one entry per grid point; false marks
	// a missing point whose value is MissingValue.
	Bitmap []bool

	// Values holds Grid.NumPoints() gridpoints.
	Values []float64
}

// Message is the unified, edition-agnostic form of a GRIB message. A
// GRIB1 message carries exactly one field; a GRIB2 message carries one
// per Data Section.
//
// Decoders reuse internal buffers: a Message is valid until the next
// call to the decoder that produced it.
type Message struct {
	Edition int // edition of the source wire format (0, 1 or 2)

	Center      int
	SubCenter   int
	TableVer    int // master table version (edition 2)
	LocalTables int

	RefTime RefTime

	Discipline uint8

	Fields []*Field
}

// Describe returns a short multi-line summary of the message, one line
// per field.
func (m *Message) Describe() string {
	s := fmt.Sprintf("%s, %s, %s, %s, %d field(s)\n",
		tables.GetCenterName(m.Center),
		tables.GetDisciplineName(int(m.Discipline)),
		m.RefTime,
		tables.GetDataTypeName(int(m.RefTime.DataType)),
		len(m.Fields))
	for _, f := range m.Fields {
		s += fmt.Sprintf("  %s; %s; %s\n", f.Product.Describe(), f.Grid, f.Packing)
	}
	return s
}
