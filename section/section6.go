package section

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// Bit-map indicator values (Table 6.0).
const (
	BitmapPresent  = 0   // a bitmap follows
	BitmapPrevious = 254 // reuse the previously defined bitmap
	BitmapNone     = 255 // no bitmap applies
)

// Section6 is the GRIB2 Bit-Map Section.
//
// Structure:
//
//	Bytes 1-4: Length of section
//	Byte 5:    Section number (must be 6)
//	Byte 6:    Bit-map indicator
//	Bytes 7-n: Bit map, one bit per grid point (indicator 0 only)
type Section6 struct {
	Length    uint32
	Indicator uint8
	// Bitmap is the decoded per-point presence array; nil unless the
	// indicator is 0. Its length is the full bit count of the section
	// and is truncated to the grid size by the caller.
	Bitmap []bool
}

// ParseSection6 parses the GRIB2 Bit-Map Section. scratch, when
// non-nil, supplies the bitmap storage.
func ParseSection6(sec []byte, scratch *internal.Scratch) (*Section6, error) {
	if len(sec) < 6 {
		return nil, fmt.Errorf("section 6 must be at least 6 bytes, got %d", len(sec))
	}
	r := internal.NewReader(sec)
	length, _ := r.Uint32()
	num, _ := r.Uint8()
	if num != 6 {
		return nil, fmt.Errorf("expected section 6, got section %d", num)
	}
	ind, _ := r.Uint8()

	s := &Section6{Length: length, Indicator: ind}
	switch ind {
	case BitmapPresent:
		nbits := (int(length) - 6) * 8
		var bm []bool
		if scratch != nil {
			bm = scratch.Bitmap(nbits)
		} else {
			bm = make([]bool, nbits)
		}
		br := internal.NewBitReaderAt(sec, 48)
		for i := range bm {
			b, err := br.ReadBits(1)
			if err != nil {
				return nil, err
			}
			bm[i] = b == 1
		}
		s.Bitmap = bm
	case BitmapPrevious, BitmapNone:
	default:
		return nil, fmt.Errorf("predefined bit map %d is not supported", ind)
	}
	return s, nil
}

// Section6Length returns the section length for a bitmap over
// numPoints grid points, or the minimal length when absent.
func Section6Length(bitmap []bool) int {
	if bitmap == nil {
		return 6
	}
	return 6 + (len(bitmap)+7)/8
}

// AppendSection6 writes the GRIB2 Bit-Map Section.
func AppendSection6(w *internal.BitWriter, bitmap []bool) error {
	start := w.Offset()
	length := Section6Length(bitmap)
	w.WriteBits(uint32(length), 32)
	w.WriteBits(6, 8)
	if bitmap == nil {
		if err := w.WriteBits(BitmapNone, 8); err != nil {
			return err
		}
		return nil
	}
	w.WriteBits(BitmapPresent, 8)
	for _, present := range bitmap {
		b := uint32(0)
		if present {
			b = 1
		}
		if err := w.WriteBits(b, 1); err != nil {
			return err
		}
	}
	w.SetOffset(start + length*8)
	return nil
}
