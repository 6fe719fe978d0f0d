package section

import (
	"fmt"

	"github.com/mmp/regrib/data"
	"github.com/mmp/regrib/internal"
)

// Section7 is the GRIB2 Data Section.
//
// Structure:
//
//	Bytes 1-4: Length of section
//	Byte 5:    Section number (must be 7)
//	Bytes 6-n: Packed data (or a JPEG-2000 code stream)
type Section7 struct {
	Length uint32
	Body   []byte // packed bytes after the 5-byte header
}

// ParseSection7 frames the GRIB2 Data Section; the packing engine in
// the data package consumes the body.
func ParseSection7(sec []byte) (*Section7, error) {
	if len(sec) < 5 {
		return nil, fmt.Errorf("section 7 must be at least 5 bytes, got %d", len(sec))
	}
	r := internal.NewReader(sec)
	length, _ := r.Uint32()
	num, _ := r.Uint8()
	if num != 7 {
		return nil, fmt.Errorf("expected section 7, got section %d", num)
	}
	if int(length) > len(sec) {
		return nil, fmt.Errorf("section 7 declares %d bytes, have %d", length, len(sec))
	}
	return &Section7{Length: length, Body: sec[5:length]}, nil
}

// Section7Length returns the Data Section length for simple packing of
// numPacked values at the given width.
func Section7Length(numPacked int, width uint8) int {
	return 5 + (numPacked*int(width)+7)/8
}

// AppendSection7 writes a simple-packed Data Section from the field
// values; points equal to the missing sentinel are skipped.
func AppendSection7(w *internal.BitWriter, p *data.Packing, values []float64, numPacked int) error {
	start := w.Offset()
	length := Section7Length(numPacked, p.Width)
	w.WriteBits(uint32(length), 32)
	w.WriteBits(7, 8)
	if err := p.PackSimple(values, w); err != nil {
		return err
	}
	w.SetOffset(start + length*8)
	return nil
}
