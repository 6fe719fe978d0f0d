package section

import (
	"fmt"

	"github.com/mmp/regrib/grid"
	"github.com/mmp/regrib/internal"
)

// Section3 is the GRIB2 Grid Definition Section.
//
// Structure:
//
//	Bytes 1-4:   Length of section
//	Byte 5:      Section number (must be 3)
//	Byte 6:      Source of grid definition (must be 0)
//	Bytes 7-10:  Number of data points
//	Byte 11:     Number of octets for the optional point list (must be 0)
//	Byte 12:     Interpretation of the optional list
//	Bytes 13-14: Grid definition template number (Table 3.1)
//	Bytes 15-n:  Template
type Section3 struct {
	Length         uint32
	NumDataPoints  uint32
	TemplateNumber uint16
	Grid           grid.Grid
}

// ParseSection3 parses the GRIB2 Grid Definition Section.
func ParseSection3(data []byte) (*Section3, error) {
	if len(data) < 14 {
		return nil, fmt.Errorf("section 3 must be at least 14 bytes, got %d", len(data))
	}
	r := internal.NewReader(data)
	length, _ := r.Uint32()
	num, _ := r.Uint8()
	if num != 3 {
		return nil, fmt.Errorf("expected section 3, got section %d", num)
	}
	source, _ := r.Uint8()
	if source != 0 {
		return nil, fmt.Errorf("predetermined grid definitions (source %d) are not supported", source)
	}
	numPoints, _ := r.Uint32()
	numOctetsList, _ := r.Uint8()
	if numOctetsList != 0 {
		return nil, fmt.Errorf("quasi-regular grids are not supported")
	}
	r.Skip(1) // interpretation of optional list
	templ, _ := r.Uint16()
	body, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}

	g, err := grid.ParseTemplate(int(templ), body)
	if err != nil {
		return nil, err
	}
	return &Section3{
		Length:         length,
		NumDataPoints:  numPoints,
		TemplateNumber: templ,
		Grid:           g,
	}, nil
}

// AppendSection3 writes the GRIB2 Grid Definition Section for g.
func AppendSection3(w *internal.BitWriter, g grid.Grid) error {
	start := w.Offset()
	length := g.Section3Length()
	w.WriteBits(uint32(length), 32)
	w.WriteBits(3, 8)
	w.WriteBits(0, 8) // source of grid definition
	w.WriteBits(uint32(g.NumPoints()), 32)
	w.WriteBits(0, 16) // no optional point list
	w.WriteBits(uint32(g.TemplateNumber()), 16)
	if err := g.AppendTemplate(w); err != nil {
		return err
	}
	w.SetOffset(start + length*8)
	return nil
}
