package product

import (
	"github.com/mmp/regrib/internal"
	"github.com/mmp/regrib/tables"
)

// GRIB1 Product Definition Section codec.
//
// The PDS is at least 28 octets; producers may append local extension
// octets, which are preserved verbatim. Octet 8 flags whether the GDS
// and BMS sections follow.

// singleLevelValue lists the GRIB1 level types whose PDS carries one
// 16-bit level value; all other types carry two 8-bit values.
var singleLevelValue = map[int]bool{
	100: true, 103: true, 105: true, 107: true, 109: true, 111: true,
	113: true, 115: true, 125: true, 160: true, 200: true, 201: true,
}

// PDS1 is the decoded GRIB1 Product Definition Section. The year is
// the raw year of century until the century octet is applied.
type PDS1 struct {
	Length       int
	TableVersion int
	Center       int
	GenProcess   int
	GridID       int
	HasGDS       bool
	HasBMS       bool
	Param        int
	LevelType    int
	Level1       int
	Level2       int
	Year         int // four-digit after century adjustment (edition 1)
	Month        int
	Day          int
	Time         int // HHMM
	TimeUnit     int
	P1           int
	P2           int
	TimeRange    int
	NumInAverage int
	NumMissing   int
	SubCenter    int
	D            int // decimal scale factor
	Extension    []byte
}

// ParsePDS1 unpacks the Product Definition Section from the message
// buffer at bit offset off. Edition 0 messages lack the length,
// table-version, century, sub-center, and decimal-scale octets.
// Returns the decoded section and the bit offset of the next section.
func ParsePDS1(buf []byte, off int, edition int, warn func(format string, args ...interface{})) (*PDS1, int, error) {
	p := &PDS1{Length: 28, TableVersion: 3}
	br := internal.NewBitReaderAt(buf, off)

	if edition != 0 {
		length, err := br.ReadBits(24)
		if err != nil {
			return nil, 0, err
		}
		p.Length = int(length)
		tv, _ := br.ReadBits(8)
		p.TableVersion = int(tv)
	} else {
		// Edition 0 carries the same leading octets but declares the
		// section length in the Indicator Section instead.
		p.Length = 24
		if err := br.Skip(32); err != nil {
			return nil, 0, err
		}
	}

	center, _ := br.ReadBits(8)
	genProc, _ := br.ReadBits(8)
	gridID, _ := br.ReadBits(8)
	flag, _ := br.ReadBits(8)
	p.Center = int(center)
	p.GenProcess = int(genProc)
	p.GridID = int(gridID)
	p.HasGDS = flag&0x80 == 0x80
	p.HasBMS = flag&0x40 == 0x40

	param, _ := br.ReadBits(8)
	lvlType, _ := br.ReadBits(8)
	p.Param = int(param)
	p.LevelType = int(lvlType)
	if singleLevelValue[p.LevelType] {
		v, _ := br.ReadBits(16)
		p.Level1 = int(v)
	} else {
		v1, _ := br.ReadBits(8)
		v2, _ := br.ReadBits(8)
		p.Level1, p.Level2 = int(v1), int(v2)
	}

	yr, _ := br.ReadBits(8)
	mo, _ := br.ReadBits(8)
	dy, _ := br.ReadBits(8)
	hr, _ := br.ReadBits(8)
	min, _ := br.ReadBits(8)
	p.Year, p.Month, p.Day = int(yr), int(mo), int(dy)
	p.Time = int(hr)*100 + int(min)

	unit, _ := br.ReadBits(8)
	p1, _ := br.ReadBits(8)
	p2, _ := br.ReadBits(8)
	tr, _ := br.ReadBits(8)
	p.TimeUnit = int(unit)
	p.P1, p.P2, p.TimeRange = int(p1), int(p2), int(tr)

	if tables.HasNumInAverage(p.TimeRange) {
		navg, _ := br.ReadBits(16)
		p.NumInAverage = int(navg)
	} else {
		br.Skip(16)
	}
	nmiss, err := br.ReadBits(8)
	if err != nil {
		return nil, 0, err
	}
	p.NumMissing = int(nmiss)

	if edition == 0 {
		return p, off + 24*8, nil
	}

	cent, _ := br.ReadBits(8)
	p.Year += (int(cent) - 1) * 100
	sub, _ := br.ReadBits(8)
	p.SubCenter = int(sub)
	d, err := br.ReadSignMagnitude(16)
	if err != nil {
		return nil, 0, err
	}
	p.D = int(d)

	next := off + 28*8
	if p.Length > 28 {
		// Extension octets follow the reserved block at octet 41; some
		// producers start them immediately after octet 28 instead.
		byteOff := off / 8
		if p.Length < 40 {
			warn("PDS extension is in wrong location")
			p.Extension = append([]byte(nil), buf[byteOff+28:byteOff+p.Length]...)
			next += len(p.Extension) * 8
		} else {
			p.Extension = append([]byte(nil), buf[byteOff+40:byteOff+p.Length]...)
			next += (len(p.Extension) + 12) * 8
		}
	}
	return p, next, nil
}

// AppendPDS1 writes the 28-octet Product Definition Section base. The
// section length octets carry p.Length, which exceeds 28 when the
// caller appends extension octets afterwards.
func (p *PDS1) AppendPDS1(w *internal.BitWriter) error {
	start := w.Offset()
	w.WriteBits(uint32(p.Length), 24)
	w.WriteBits(uint32(p.TableVersion), 8)
	w.WriteBits(uint32(p.Center), 8)
	w.WriteBits(uint32(p.GenProcess), 8)
	w.WriteBits(uint32(p.GridID), 8)
	flag := uint32(0)
	if p.HasGDS {
		flag |= 0x80
	}
	if p.HasBMS {
		flag |= 0x40
	}
	w.WriteBits(flag, 8)
	w.WriteBits(uint32(p.Param), 8)
	w.WriteBits(uint32(p.LevelType), 8)
	if singleLevelValue[p.LevelType] {
		w.WriteBits(uint32(p.Level1), 16)
	} else {
		w.WriteBits(uint32(p.Level1), 8)
		w.WriteBits(uint32(p.Level2), 8)
	}
	w.WriteBits(uint32(p.Year%100), 8)
	w.WriteBits(uint32(p.Month), 8)
	w.WriteBits(uint32(p.Day), 8)
	w.WriteBits(uint32(p.Time/100), 8)
	w.WriteBits(uint32(p.Time%100), 8)
	w.WriteBits(uint32(p.TimeUnit), 8)
	if p.TimeRange == 10 {
		w.WriteBits(uint32(p.P1), 16)
	} else {
		w.WriteBits(uint32(p.P1), 8)
		w.WriteBits(uint32(p.P2), 8)
	}
	w.WriteBits(uint32(p.TimeRange), 8)
	w.WriteBits(uint32(p.NumInAverage), 16)
	w.WriteBits(uint32(p.NumMissing), 8)
	w.WriteBits(uint32((p.Year/100)+1), 8)
	w.WriteBits(uint32(p.SubCenter), 8)
	if err := w.WriteSignMagnitude(int32(p.D), 16); err != nil {
		return err
	}
	w.SetOffset(start + 28*8)
	return nil
}
