package section

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// Section1 is the GRIB2 Identification Section: the origin of the data
// and its reference time.
//
// Structure (normally 21 bytes):
//
//	Bytes 1-4:   Length of section
//	Byte 5:      Section number (must be 1)
//	Bytes 6-7:   Originating center
//	Bytes 8-9:   Originating sub-center
//	Byte 10:     Master tables version
//	Byte 11:     Local tables version
//	Byte 12:     Significance of reference time (Table 1.2)
//	Bytes 13-14: Year
//	Byte 15:     Month
//	Byte 16:     Day
//	Bytes 17-19: Hour, minute, second
//	Byte 20:     Production status (Table 1.3)
//	Byte 21:     Type of data (Table 1.4)
type Section1 struct {
	Length           uint32
	Center           uint16
	SubCenter        uint16
	MasterTables     uint8
	LocalTables      uint8
	RefTimeType      uint8
	Year             int
	Month            int
	Day              int
	Time             int // HHMMSS
	ProductionStatus uint8
	DataType         uint8
}

// ParseSection1 parses the GRIB2 Identification Section.
func ParseSection1(data []byte) (*Section1, error) {
	if len(data) < 21 {
		return nil, fmt.Errorf("section 1 must be at least 21 bytes, got %d", len(data))
	}
	r := internal.NewReader(data)
	length, _ := r.Uint32()
	num, _ := r.Uint8()
	if num != 1 {
		return nil, fmt.Errorf("expected section 1, got section %d", num)
	}

	s := &Section1{Length: length}
	s.Center, _ = r.Uint16()
	s.SubCenter, _ = r.Uint16()
	s.MasterTables, _ = r.Uint8()
	s.LocalTables, _ = r.Uint8()
	s.RefTimeType, _ = r.Uint8()
	yr, _ := r.Uint16()
	mo, _ := r.Uint8()
	dy, _ := r.Uint8()
	hh, _ := r.Uint8()
	mm, _ := r.Uint8()
	ss, _ := r.Uint8()
	s.Year, s.Month, s.Day = int(yr), int(mo), int(dy)
	s.Time = int(hh)*10000 + int(mm)*100 + int(ss)
	s.ProductionStatus, _ = r.Uint8()
	var err error
	if s.DataType, err = r.Uint8(); err != nil {
		return nil, err
	}
	return s, nil
}

// Section1Length is the length of an Identification Section without
// reserved extras.
const Section1Length = 21

// AppendSection1 writes the GRIB2 Identification Section.
func AppendSection1(w *internal.BitWriter, s *Section1) error {
	w.WriteBits(Section1Length, 32)
	w.WriteBits(1, 8)
	w.WriteBits(uint32(s.Center), 16)
	w.WriteBits(uint32(s.SubCenter), 16)
	w.WriteBits(uint32(s.MasterTables), 8)
	w.WriteBits(uint32(s.LocalTables), 8)
	w.WriteBits(uint32(s.RefTimeType), 8)
	w.WriteBits(uint32(s.Year), 16)
	w.WriteBits(uint32(s.Month), 8)
	w.WriteBits(uint32(s.Day), 8)
	w.WriteBits(uint32(s.Time/10000), 8)
	w.WriteBits(uint32(s.Time/100%100), 8)
	w.WriteBits(uint32(s.Time%100), 8)
	w.WriteBits(uint32(s.ProductionStatus), 8)
	return w.WriteBits(uint32(s.DataType), 8)
}
