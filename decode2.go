package regrib

import (
	"bufio"
	"io"

	"github.com/golang/glog"
	"github.com/mmp/regrib/data"
	"github.com/mmp/regrib/internal"
	"github.com/mmp/regrib/section"
)

// Decoder2 reads GRIB edition-2 messages from a stream. A message may
// carry several grids; the shared Identification, Grid Definition,
// Data Representation, and Bit-Map sections apply to every grid that
// follows them until replaced.
//
// The decoder reuses internal buffers across messages: a returned
// Message is valid only until the next call to Next.
type Decoder2 struct {
	r       *bufio.Reader
	scratch internal.Scratch
	cfg     config
	vals    [][]float64
}

// NewDecoder2 creates a GRIB2 decoder reading from r.
func NewDecoder2(r io.Reader, opts ...Option) *Decoder2 {
	return &Decoder2{r: bufio.NewReader(r), cfg: makeConfig(opts)}
}

// gridpoints returns the reusable value buffer for grid slot i.
func (d *Decoder2) gridpoints(i, n int) []float64 {
	for len(d.vals) <= i {
		d.vals = append(d.vals, nil)
	}
	if cap(d.vals[i]) < n {
		d.vals[i] = make([]float64, n)
	}
	d.vals[i] = d.vals[i][:n]
	return d.vals[i]
}

// Next decodes the next message from the stream. It returns io.EOF at
// a clean end of input.
func (d *Decoder2) Next() (*Message, error) {
	if err := findMagic(d.r); err != nil {
		return nil, err
	}

	buf := d.scratch.Message(16)
	copy(buf, section.Magic)
	if _, err := io.ReadFull(d.r, buf[4:]); err != nil {
		return nil, &TruncatedError{Declared: 16, Got: 4}
	}
	sec0, err := section.ParseSection0(buf)
	if err != nil {
		return nil, err
	}
	if sec0.Edition != 2 {
		return nil, &ParseError{Section: 0, Offset: 7,
			Message: "not a GRIB edition 2 message"}
	}

	total := int(sec0.MessageLength)
	have := len(buf)
	buf = d.scratch.Message(total)
	if got, err := io.ReadFull(d.r, buf[have:]); err != nil {
		return nil, &TruncatedError{Declared: total, Got: have + got}
	}
	if !section.IsSentinel(buf[total-4:]) {
		glog.Warningf("no end section found")
	}

	// First pass: count the Data Sections so the grid slots can be
	// sized up front.
	numGrids := 0
	for off := 16; off+4 <= total && !section.IsSentinel(buf[off:]); {
		secLen, secNum, err := sectionHeader(buf, off, total)
		if err != nil {
			return nil, err
		}
		if secNum == 7 {
			numGrids++
		}
		off += secLen
	}

	msg := &Message{Edition: 2, Discipline: sec0.Discipline}
	msg.Fields = make([]*Field, 0, numGrids)

	// Second pass: decode. The current grid, product, representation,
	// and bitmap accumulate as sections arrive; each Data Section
	// binds them to a new field.
	var cur Field
	gridIndex := 0
	for off := 16; off+4 <= total && !section.IsSentinel(buf[off:]); {
		secLen, secNum, err := sectionHeader(buf, off, total)
		if err != nil {
			return nil, err
		}
		sec := buf[off : off+secLen]

		switch secNum {
		case 1:
			ids, err := section.ParseSection1(sec)
			if err != nil {
				return nil, &ParseError{Section: 1, Offset: off, Message: "unpacking IDS", Underlying: err}
			}
			msg.Center = int(ids.Center)
			msg.SubCenter = int(ids.SubCenter)
			msg.TableVer = int(ids.MasterTables)
			msg.LocalTables = int(ids.LocalTables)
			msg.RefTime = RefTime{
				Year: ids.Year, Month: ids.Month, Day: ids.Day, Time: ids.Time,
				Significance:     ids.RefTimeType,
				ProductionStatus: ids.ProductionStatus,
				DataType:         ids.DataType,
			}
		case 2:
			// Local Use Section: opaque, skipped.
		case 3:
			s3, err := section.ParseSection3(sec)
			if err != nil {
				return nil, &ParseError{Section: 3, Offset: off, Message: "unpacking GDS", Underlying: err}
			}
			cur.Grid = s3.Grid
		case 4:
			s4, err := section.ParseSection4(sec)
			if err != nil {
				return nil, &ParseError{Section: 4, Offset: off, Message: "unpacking PDS", Underlying: err}
			}
			cur.Product = s4.Product
			cur.Product.Discipline = sec0.Discipline
		case 5:
			s5, err := section.ParseSection5(sec)
			if err != nil {
				return nil, &ParseError{Section: 5, Offset: off, Message: "unpacking DRS", Underlying: err}
			}
			cur.Packing = s5.Packing
		case 6:
			s6, err := section.ParseSection6(sec, nil)
			if err != nil {
				return nil, &ParseError{Section: 6, Offset: off, Message: "unpacking BMS", Underlying: err}
			}
			switch s6.Indicator {
			case section.BitmapPresent:
				cur.Bitmap = s6.Bitmap
			case section.BitmapNone:
				cur.Bitmap = nil
			case section.BitmapPrevious:
				// Keep the previously decoded bitmap.
			}
		case 7:
			s7, err := section.ParseSection7(sec)
			if err != nil {
				return nil, &ParseError{Section: 7, Offset: off, Message: "unpacking DS", Underlying: err}
			}
			f, err := d.bindField(&cur, s7.Body, gridIndex)
			if err != nil {
				return nil, err
			}
			msg.Fields = append(msg.Fields, f)
			gridIndex++
		default:
			return nil, &ParseError{Section: int(secNum), Offset: off,
				Message: "unexpected section number"}
		}
		off += secLen
	}

	return msg, nil
}

// sectionHeader reads a section's length and number, validating the
// framing against the message bounds.
func sectionHeader(buf []byte, off, total int) (int, uint8, error) {
	if off+5 > total {
		return 0, 0, &ParseError{Section: -1, Offset: off, Message: "section header past message end"}
	}
	secLen := int(buf[off])<<24 | int(buf[off+1])<<16 | int(buf[off+2])<<8 | int(buf[off+3])
	secNum := buf[off+4]
	if secLen < 5 || off+secLen > total {
		return 0, 0, &LengthMismatchError{Section: int(secNum), Declared: secLen, Have: total - off}
	}
	return secLen, secNum, nil
}

// bindField attaches the accumulated metadata to a new field and
// unpacks its Data Section body.
func (d *Decoder2) bindField(cur *Field, body []byte, slot int) (*Field, error) {
	if cur.Grid == nil || cur.Product == nil || cur.Packing == nil {
		return nil, &ParseError{Section: 7, Offset: 0,
			Message: "data section before grid, product, and representation sections"}
	}

	numPoints := cur.Grid.NumPoints()
	bitmap := cur.Bitmap
	if bitmap != nil && len(bitmap) > numPoints {
		bitmap = bitmap[:numPoints]
	}

	values := d.gridpoints(slot, numPoints)
	p := cur.Packing
	var err error
	switch p.Template {
	case data.TemplateSimple:
		err = p.UnpackSimple(body, bitmap, values)
	case data.TemplateComplexDiff:
		err = p.UnpackComplex(body, bitmap, values)
	case data.TemplateJPEG2000, data.TemplateJPEG2000Alt:
		if d.cfg.jpeg2000 == nil {
			return nil, &UnsupportedPackingError{
				Reason: "JPEG-2000 data requires a decoder wired with WithJPEG2000"}
		}
		err = p.UnpackJPEG2000(body, d.cfg.jpeg2000, bitmap, values)
	default:
		return nil, &UnsupportedPackingError{Reason: p.String()}
	}
	if err != nil {
		return nil, &ParseError{Section: 7, Offset: 0, Message: "unpacking gridpoints", Underlying: err}
	}

	return &Field{
		Grid:    cur.Grid,
		Product: cur.Product,
		Packing: p,
		Bitmap:  bitmap,
		Values:  values,
	}, nil
}
