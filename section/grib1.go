package section

import (
	"fmt"

	"github.com/mmp/regrib/data"
	"github.com/mmp/regrib/internal"
)

// GRIB1 section codecs. The edition-1 Indicator Section is 8 octets;
// the Bit-Map and Binary Data Sections carry their own 24-bit lengths.

// Indicator1 is the GRIB1 Indicator Section. A declared length of
// exactly 24 marks an edition-0 message whose length covers only the
// PDS; the decoder extends the total as the following sections
// announce themselves.
type Indicator1 struct {
	TotalLength int
	Edition     int
}

// ParseIndicator1 parses the 8-byte GRIB1 Indicator Section.
func ParseIndicator1(head []byte) (*Indicator1, error) {
	if len(head) < 8 {
		return nil, fmt.Errorf("indicator section must be 8 bytes, got %d", len(head))
	}
	if string(head[0:4]) != Magic {
		return nil, fmt.Errorf("expected GRIB magic number, found %q", string(head[0:4]))
	}
	length := int(head[4])<<16 | int(head[5])<<8 | int(head[6])
	ind := &Indicator1{TotalLength: length, Edition: int(head[7])}
	if length == 24 {
		// Edition 0: the length covers the PDS alone; account for the
		// magic and the three length octets of the section after it.
		ind.Edition = 0
		ind.TotalLength += 7
	}
	return ind, nil
}

// AppendIndicator1 writes the GRIB1 Indicator Section.
func AppendIndicator1(w *internal.BitWriter, totalLen int) error {
	for _, c := range []byte(Magic) {
		w.WriteBits(uint32(c), 8)
	}
	w.WriteBits(uint32(totalLen), 24)
	return w.WriteBits(1, 8)
}

// ParseBMS1 parses the GRIB1 Bit-Map Section at bit offset off.
// Returns the bitmap and the bit offset of the next section. scratch,
// when non-nil, supplies the bitmap storage.
func ParseBMS1(buf []byte, off int, scratch *internal.Scratch) ([]bool, int, error) {
	br := internal.NewBitReaderAt(buf, off)
	length, err := br.ReadBits(24)
	if err != nil {
		return nil, 0, err
	}
	unused, _ := br.ReadBits(8)
	tref, err := br.ReadBits(16)
	if err != nil {
		return nil, 0, err
	}
	if tref != 0 {
		return nil, 0, fmt.Errorf("predefined bit map %d is not supported", tref)
	}

	nbits := (int(length)-6)*8 - int(unused)
	var bm []bool
	if scratch != nil {
		bm = scratch.Bitmap(nbits)
	} else {
		bm = make([]bool, nbits)
	}
	for i := range bm {
		b, err := br.ReadBits(1)
		if err != nil {
			return nil, 0, err
		}
		bm[i] = b == 1
	}
	return bm, off + int(length)*8, nil
}

// BMS1Length returns the GRIB1 Bit-Map Section length for numPoints
// grid points.
func BMS1Length(numPoints int) int {
	return 6 + (numPoints+7)/8
}

// AppendBMS1 writes the GRIB1 Bit-Map Section.
func AppendBMS1(w *internal.BitWriter, bitmap []bool) error {
	start := w.Offset()
	length := BMS1Length(len(bitmap))
	unused := (8 - len(bitmap)%8) % 8
	w.WriteBits(uint32(length), 24)
	w.WriteBits(uint32(unused), 8)
	w.WriteBits(0, 16) // table reference: bitmap follows
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

// BDS1 is the header of the GRIB1 Binary Data Section.
type BDS1 struct {
	Length     int
	Flag       uint8 // high nibble of octet 4
	UnusedBits int
	Packing    *data.Packing // R already divided by 10^D
}

// ParseBDS1 parses the Binary Data Section header at bit offset off.
// The decimal scale factor d comes from the PDS. Second-order packing
// (flag bit 0x40) is not supported.
func ParseBDS1(buf []byte, off, d int) (*BDS1, error) {
	br := internal.NewBitReaderAt(buf, off)
	length, err := br.ReadBits(24)
	if err != nil {
		return nil, err
	}
	flag, _ := br.ReadBits(4)
	unused, _ := br.ReadBits(4)
	if flag&0x4 == 0x4 {
		return nil, fmt.Errorf("second-order packing is not supported")
	}
	e, _ := br.ReadSignMagnitude(16)
	ibm, _ := br.ReadBits(32)
	width, err := br.ReadBits(8)
	if err != nil {
		return nil, err
	}

	p := &data.Packing{
		Template: data.TemplateSimple,
		E:        int16(e),
		D:        int16(d),
		Width:    uint8(width),
	}
	p.R = data.IBMToFloat(ibm) / p.DecimalFactor()
	if width > 0 {
		p.NumPacked = uint32((int(length)*8 - 88 - int(unused)) / int(width))
	}
	return &BDS1{
		Length:     int(length),
		Flag:       uint8(flag),
		UnusedBits: int(unused),
		Packing:    p,
	}, nil
}

// BDS1Length returns the Binary Data Section length for numPacked
// values at the given width.
func BDS1Length(numPacked int, width uint8) int {
	return 11 + (numPacked*int(width)+7)/8
}

// AppendBDS1 writes the Binary Data Section: header, the IBM-format
// reference value, and the packed values.
func AppendBDS1(w *internal.BitWriter, p *data.Packing, values []float64, numPacked int) error {
	start := w.Offset()
	length := BDS1Length(numPacked, p.Width)
	unused := (length-11)*8 - numPacked*int(p.Width)
	w.WriteBits(uint32(length), 24)
	w.WriteBits(0, 4) // grid point data, simple packing
	w.WriteBits(uint32(unused), 4)
	w.WriteSignMagnitude(int32(p.E), 16)
	w.WriteBits(data.FloatToIBM(p.R*p.DecimalFactor()), 32)
	if err := w.WriteBits(uint32(p.Width), 8); err != nil {
		return err
	}
	if err := p.PackSimple(values, w); err != nil {
		return err
	}
	w.SetOffset(start + length*8)
	return nil
}
