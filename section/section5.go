package section

import (
	"fmt"
	"math"

	"github.com/mmp/regrib/data"
	"github.com/mmp/regrib/internal"
)

// Section5 is the GRIB2 Data Representation Section.
//
// Structure:
//
//	Bytes 1-4:   Length of section
//	Byte 5:      Section number (must be 5)
//	Bytes 6-9:   Number of packed data values
//	Bytes 10-11: Data representation template number (Table 5.0)
//	Bytes 12-n:  Template
//
// Supported templates: 5.0 (simple), 5.3 (complex with spatial
// differencing), 5.40/40000 (JPEG-2000).
type Section5 struct {
	Length  uint32
	Packing *data.Packing
}

// ParseSection5 parses the GRIB2 Data Representation Section.
func ParseSection5(sec []byte) (*Section5, error) {
	if len(sec) < 11 {
		return nil, fmt.Errorf("section 5 must be at least 11 bytes, got %d", len(sec))
	}
	r := internal.NewReader(sec)
	length, _ := r.Uint32()
	num, _ := r.Uint8()
	if num != 5 {
		return nil, fmt.Errorf("expected section 5, got section %d", num)
	}

	p := &data.Packing{}
	numPacked, _ := r.Uint32()
	templ, _ := r.Uint16()
	p.NumPacked = numPacked
	p.Template = templ

	switch templ {
	case data.TemplateSimple, data.TemplateComplexDiff,
		data.TemplateJPEG2000, data.TemplateJPEG2000Alt:
	default:
		return nil, fmt.Errorf("data representation template %d is not supported", templ)
	}

	ref, _ := r.Float32()
	e, _ := r.Int16()
	d, _ := r.Int16()
	p.E, p.D = e, d
	p.R = float64(ref) / math.Pow(10, float64(d))
	p.Width, _ = r.Uint8()
	var err error
	if p.OriginalType, err = r.Uint8(); err != nil {
		return nil, err
	}

	if templ == data.TemplateComplexDiff {
		cp := &data.ComplexPacking{}
		cp.SplitMethod, _ = r.Uint8()
		cp.MissingMgmt, _ = r.Uint8()
		switch p.OriginalType {
		case 0:
			pm, _ := r.Float32()
			sm, _ := r.Float32()
			cp.PrimarySub, cp.SecondarySub = float64(pm), float64(sm)
		case 1:
			pm, _ := r.Uint32()
			sm, _ := r.Uint32()
			cp.PrimarySub, cp.SecondarySub = float64(pm), float64(sm)
		default:
			return nil, fmt.Errorf("missing value substitutes for original value type %d are not supported", p.OriginalType)
		}
		cp.NumGroups, _ = r.Uint32()
		cp.WidthRef, _ = r.Uint8()
		cp.WidthBits, _ = r.Uint8()
		cp.LengthRef, _ = r.Uint32()
		cp.LengthIncr, _ = r.Uint8()
		cp.LastLength, _ = r.Uint32()
		cp.LengthBits, _ = r.Uint8()
		cp.SpatialOrder, _ = r.Uint8()
		if cp.SpatialValOcts, err = r.Uint8(); err != nil {
			return nil, err
		}
		p.Complex = cp
	}
	return &Section5{Length: length, Packing: p}, nil
}

// Section5Length is the length of a simple-packing Data Representation
// Section, the only template written.
const Section5Length = 21

// AppendSection5 writes a simple-packing Data Representation Section.
// The reference value is re-multiplied by 10^D for the wire.
func AppendSection5(w *internal.BitWriter, p *data.Packing, numPoints int) error {
	w.WriteBits(Section5Length, 32)
	w.WriteBits(5, 8)
	w.WriteBits(uint32(numPoints), 32)
	w.WriteBits(data.TemplateSimple, 16)
	ref := float32(p.R * p.DecimalFactor())
	w.WriteBits(math.Float32bits(ref), 32)
	w.WriteSignMagnitude(int32(p.E), 16)
	w.WriteSignMagnitude(int32(p.D), 16)
	w.WriteBits(uint32(p.Width), 8)
	return w.WriteBits(0, 8) // original values are floating point
}
