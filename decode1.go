package regrib

import (
	"bufio"
	"io"

	"github.com/golang/glog"
	"github.com/mmp/regrib/grid"
	"github.com/mmp/regrib/internal"
	"github.com/mmp/regrib/product"
	"github.com/mmp/regrib/section"
	"github.com/mmp/regrib/tables"
)

// gridTypeSkipsField lists the GRIB1 grid identification codes whose
// Binary Data Section carries one extra leading field before the
// gridpoints (the pole value of certain NCEP grids).
var gridTypeSkipsField = map[int]bool{
	23: true, 24: true, 26: true, 63: true, 64: true,
}

// Decoder1 reads GRIB edition-0 and edition-1 messages from a stream.
//
// The decoder reuses its internal buffers across messages: a returned
// Message is valid only until the next call to Next.
type Decoder1 struct {
	r       *bufio.Reader
	scratch internal.Scratch
}

// NewDecoder1 creates a GRIB1 decoder reading from r.
func NewDecoder1(r io.Reader, opts ...Option) *Decoder1 {
	makeConfig(opts) // no options apply to edition 1 yet
	return &Decoder1{r: bufio.NewReader(r)}
}

// findMagic scans the stream for the "GRIB" magic, sliding one byte at
// a time. Garbage before the magic is skipped with a warning. Returns
// io.EOF when the stream ends without another message.
func findMagic(r *bufio.Reader) error {
	window := make([]byte, 4)
	if _, err := io.ReadFull(r, window); err != nil {
		if err == io.ErrUnexpectedEOF {
			return io.EOF
		}
		return err
	}
	skipped := 0
	for string(window) != section.Magic {
		b, err := r.ReadByte()
		if err != nil {
			return io.EOF
		}
		copy(window, window[1:])
		window[3] = b
		skipped++
	}
	if skipped > 0 {
		glog.Warningf("skipped %d bytes before GRIB message", skipped)
	}
	return nil
}

// ensure grows the message buffer to n bytes, reading the tail from
// the stream.
func (d *Decoder1) ensure(buf []byte, n int) ([]byte, error) {
	have := len(buf)
	if n <= have {
		return buf, nil
	}
	buf = d.scratch.Message(n)
	got, err := io.ReadFull(d.r, buf[have:])
	if err != nil {
		return nil, &TruncatedError{Declared: n, Got: have + got}
	}
	return buf, nil
}

// Next decodes the next message from the stream. It returns io.EOF at
// a clean end of input.
func (d *Decoder1) Next() (*Message, error) {
	if err := findMagic(d.r); err != nil {
		return nil, err
	}

	head := d.scratch.Message(8)
	copy(head, section.Magic)
	if _, err := io.ReadFull(d.r, head[4:]); err != nil {
		return nil, &TruncatedError{Declared: 8, Got: 4}
	}
	ind, err := section.ParseIndicator1(head)
	if err != nil {
		return nil, err
	}

	buf := head
	totalLen := ind.TotalLength
	if ind.Edition != 0 {
		if buf, err = d.ensure(buf, totalLen); err != nil {
			return nil, err
		}
		if !section.IsSentinel(buf[totalLen-4:]) {
			glog.Warningf("no end section found")
		}
	} else if buf, err = d.ensure(buf, totalLen); err != nil {
		return nil, err
	}

	// Product Definition Section.
	pdsOff := 32
	if ind.Edition != 0 {
		pdsOff = 64
	}
	pds, off, err := product.ParsePDS1(buf, pdsOff, ind.Edition, glog.Warningf)
	if err != nil {
		return nil, &ParseError{Section: 1, Offset: pdsOff / 8, Message: "unpacking PDS", Underlying: err}
	}

	// A section running past the declared message length is corrupt;
	// edition 0 instead grows the total as each section announces
	// itself.
	checkLen := func(section, end int) error {
		if ind.Edition != 0 && end > totalLen {
			return &LengthMismatchError{Section: section, Declared: end, Have: totalLen}
		}
		return nil
	}

	// Grid Description Section.
	var g grid.Grid
	if pds.HasGDS {
		if buf, err = d.ensure(buf, off/8+3); err != nil {
			return nil, err
		}
		gdsLen := int(buf[off/8])<<16 | int(buf[off/8+1])<<8 | int(buf[off/8+2])
		if err = checkLen(2, off/8+gdsLen); err != nil {
			return nil, err
		}
		if buf, err = d.ensure(buf, off/8+gdsLen); err != nil {
			return nil, err
		}
		if ind.Edition == 0 {
			totalLen += gdsLen
		}
		if g, err = grid.ParseGDS1(buf[off/8 : off/8+gdsLen]); err != nil {
			return nil, &ParseError{Section: 2, Offset: off / 8, Message: "unpacking GDS", Underlying: err}
		}
		off += gdsLen * 8
	}

	// Bit-Map Section.
	var bitmap []bool
	if pds.HasBMS {
		if buf, err = d.ensure(buf, off/8+6); err != nil {
			return nil, err
		}
		bmsLen := int(buf[off/8])<<16 | int(buf[off/8+1])<<8 | int(buf[off/8+2])
		if err = checkLen(3, off/8+bmsLen); err != nil {
			return nil, err
		}
		if buf, err = d.ensure(buf, off/8+bmsLen); err != nil {
			return nil, err
		}
		if ind.Edition == 0 {
			totalLen += bmsLen
		}
		if bitmap, off, err = section.ParseBMS1(buf, off, &d.scratch); err != nil {
			return nil, &ParseError{Section: 3, Offset: off / 8, Message: "unpacking BMS", Underlying: err}
		}
	}

	// Binary Data Section.
	if buf, err = d.ensure(buf, off/8+11); err != nil {
		return nil, err
	}
	bdsStart := off / 8
	bdsLen := int(buf[bdsStart])<<16 | int(buf[bdsStart+1])<<8 | int(buf[bdsStart+2])
	if err = checkLen(4, bdsStart+bdsLen); err != nil {
		return nil, err
	}
	if buf, err = d.ensure(buf, bdsStart+bdsLen); err != nil {
		return nil, err
	}
	if ind.Edition == 0 {
		totalLen += bdsLen + 1
	}
	bds, err := section.ParseBDS1(buf, off, pds.D)
	if err != nil {
		if _, ok := err.(*internal.FieldTooWideError); ok {
			return nil, err
		}
		return nil, &UnsupportedPackingError{Reason: err.Error()}
	}

	values, err := d.unpackBDS1(buf, off, bds, g, pds, bitmap)
	if err != nil {
		return nil, err
	}

	msg := &Message{
		Edition:   ind.Edition,
		Center:    pds.Center,
		SubCenter: pds.SubCenter,
		RefTime: RefTime{
			Year: pds.Year, Month: pds.Month, Day: pds.Day,
			Time:             pds.Time * 100,
			Significance:     1,
			ProductionStatus: 255,
			DataType:         255,
		},
	}

	f := &Field{
		Grid:    g,
		Product: translatePDS1(pds),
		Packing: bds.Packing,
		Bitmap:  bitmap,
		Values:  values,
	}
	msg.Discipline = f.Product.Discipline
	msg.Fields = []*Field{f}
	return msg, nil
}

// unpackBDS1 decodes the packed gridpoints of the Binary Data Section.
// With a grid the output covers nx*ny points; when the message has no
// GDS the stream of packed values is unpacked as-is.
func (d *Decoder1) unpackBDS1(buf []byte, off int, bds *section.BDS1, g grid.Grid, pds *product.PDS1, bitmap []bool) ([]float64, error) {
	p := bds.Packing
	dataOff := off + 88

	numPoints := 0
	if g != nil {
		numPoints = g.NumPoints()
		// A few NCEP grid identifications pack the pole value once,
		// ahead of the regular gridpoints.
		switch g.DataRepresentation() {
		case grid.Rep1LatLon, grid.Rep1Gaussian, grid.Rep1RotatedLatLon:
			if gridTypeSkipsField[pds.GridID] {
				dataOff += int(p.Width)
			}
		}
	} else {
		// No GDS: unpack the bare stream of gridpoints.
		numPoints = int(p.NumPacked)
		if len(bitmap) > numPoints {
			numPoints = len(bitmap)
		}
	}

	values := d.scratch.Gridpoints(numPoints)
	br := internal.NewBitReaderAt(buf, dataOff)
	e := p.BinaryFactor()
	dd := p.DecimalFactor()
	bcnt := 0
	for i := 0; i < numPoints; i++ {
		if bitmap != nil {
			present := bcnt < len(bitmap) && bitmap[bcnt]
			bcnt++
			if !present {
				values[i] = MissingValue
				continue
			}
		}
		if p.Width == 0 {
			values[i] = p.R
			continue
		}
		pval, err := br.ReadBits(int(p.Width))
		if err != nil {
			return nil, &ParseError{Section: 4, Offset: dataOff / 8, Message: "packed data ends early", Underlying: err}
		}
		values[i] = p.R + float64(pval)*e/dd
	}
	return values, nil
}

// translatePDS1 lifts the GRIB1 product identity into the unified,
// GRIB2-shaped product definition, translating the parameter and level
// namespaces.
func translatePDS1(pds *product.PDS1) *product.Product {
	id := tables.ParamToGRIB2(pds.Center, pds.TableVersion, pds.Param)
	if id == tables.ParamUnknown {
		glog.Warningf("no GRIB2 parameter mapping for center %d, table %d, code %d",
			pds.Center, pds.TableVersion, pds.Param)
	}

	t1, t2, s1, s2, sv1, sv2 := tables.LevelToGRIB2(pds.LevelType, pds.Level1, pds.Level2)

	p := &product.Product{
		Discipline:   id.Discipline,
		Category:     id.Category,
		Number:       id.Number,
		GenProcess:   uint8(pds.GenProcess),
		TimeUnit:     uint8(pds.TimeUnit),
		ForecastTime: pds.P1,
		Level1:       product.Level{Type: t1, Scale: s1, Value: sv1},
		Level2:       product.Level{Type: t2, Scale: s2, Value: sv2},
		G1: product.GRIB1Meta{
			Valid:        true,
			TableVersion: pds.TableVersion,
			Param:        pds.Param,
			GridID:       pds.GridID,
			LevelType:    pds.LevelType,
			Level1:       pds.Level1,
			Level2:       pds.Level2,
			TimeRange:    pds.TimeRange,
			P1:           pds.P1,
			P2:           pds.P2,
			NumInAverage: pds.NumInAverage,
			NumMissing:   pds.NumMissing,
			Extension:    pds.Extension,
		},
	}
	if pds.TimeRange == tables.TimeRangeInitialized {
		p.ForecastTime = 0
	}
	if templ, err := tables.PDSTemplateForTimeRange(pds.TimeRange); err == nil {
		p.TemplateNumber = templ
	} else {
		p.TemplateNumber = -1
	}
	return p
}
