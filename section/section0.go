// Package section implements the wire codecs for the GRIB sections of
// both editions: parsers for decoding and emitters for encoding.
package section

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// Magic is the four-octet sequence opening every GRIB message.
const Magic = "GRIB"

// Section0 is the GRIB2 Indicator Section.
//
// Structure (16 bytes):
//
//	Bytes 1-4:   "GRIB" magic
//	Bytes 5-6:   Reserved
//	Byte 7:      Discipline (Table 0.0)
//	Byte 8:      Edition number (must be 2)
//	Bytes 9-16:  Total message length (uint64)
type Section0 struct {
	Discipline    uint8
	Edition       uint8
	MessageLength uint64
}

// ParseSection0 parses the GRIB2 Indicator Section.
func ParseSection0(data []byte) (*Section0, error) {
	if len(data) < 16 {
		return nil, fmt.Errorf("section 0 must be 16 bytes, got %d", len(data))
	}
	if string(data[0:4]) != Magic {
		return nil, fmt.Errorf("expected GRIB magic number, found %q", string(data[0:4]))
	}
	r := internal.NewReader(data)
	r.Skip(6)
	disc, _ := r.Uint8()
	ed, _ := r.Uint8()
	length, err := r.Uint64()
	if err != nil {
		return nil, err
	}
	return &Section0{Discipline: disc, Edition: ed, MessageLength: length}, nil
}

// AppendSection0 writes the GRIB2 Indicator Section. The 64-bit total
// length is split across octets 9-12 (high word) and 13-16 (low word).
func AppendSection0(w *internal.BitWriter, discipline uint8, totalLen uint64) error {
	for _, c := range []byte(Magic) {
		w.WriteBits(uint32(c), 8)
	}
	w.WriteBits(0, 16) // reserved
	w.WriteBits(uint32(discipline), 8)
	w.WriteBits(2, 8)
	w.WriteBits(uint32(totalLen>>32), 32)
	return w.WriteBits(uint32(totalLen&0xffffffff), 32)
}
