package regrib

import (
	"fmt"
	"io"

	"github.com/mmp/regrib/internal"
	"github.com/mmp/regrib/product"
	"github.com/mmp/regrib/section"
	"github.com/mmp/regrib/tables"
)

// Encoder2 writes GRIB edition-2 messages. Each field of a unified
// message is emitted as its own complete message with simple packing.
type Encoder2 struct {
	w   io.Writer
	buf []byte
}

// NewEncoder2 creates a GRIB2 encoder writing to w.
func NewEncoder2(w io.Writer) *Encoder2 {
	return &Encoder2{w: w}
}

// Encode emits every field of msg as a GRIB2 message.
func (e *Encoder2) Encode(msg *Message) error {
	for _, f := range msg.Fields {
		if err := e.encodeField(msg, f); err != nil {
			return err
		}
	}
	return nil
}

// buffer returns a zeroed message buffer of n bytes.
func (e *Encoder2) buffer(n int) []byte {
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	}
	e.buf = e.buf[:n]
	clear(e.buf)
	return e.buf
}

func (e *Encoder2) encodeField(msg *Message, f *Field) error {
	p, err := resolvePDS2(msg, f)
	if err != nil {
		return err
	}
	pdsLen, err := p.PDS2Length()
	if err != nil {
		return err
	}

	gdsLen := f.Grid.Section3Length()
	if gdsLen == 0 {
		return &UnsupportedTemplateError{Section: 3, TemplateNumber: f.Grid.TemplateNumber()}
	}

	numPoints := f.Grid.NumPoints()
	bmsLen := section.Section6Length(f.Bitmap)
	dsLen := section.Section7Length(numPoints, f.Packing.Width)
	total := 16 + section.Section1Length + gdsLen + pdsLen +
		section.Section5Length + bmsLen + dsLen + 4

	w := internal.NewBitWriter(e.buffer(total))
	section.AppendSection0(w, f.Product.Discipline, uint64(total))
	ids := &section.Section1{
		Center:           uint16(msg.Center),
		SubCenter:        uint16(msg.SubCenter),
		MasterTables:     18,
		RefTimeType:      msg.RefTime.Significance,
		Year:             msg.RefTime.Year,
		Month:            msg.RefTime.Month,
		Day:              msg.RefTime.Day,
		Time:             msg.RefTime.Time,
		ProductionStatus: msg.RefTime.ProductionStatus,
		DataType:         msg.RefTime.DataType,
	}
	if err := section.AppendSection1(w, ids); err != nil {
		return err
	}
	if err := section.AppendSection3(w, f.Grid); err != nil {
		return err
	}
	if err := p.AppendPDS2(w); err != nil {
		return err
	}
	if err := section.AppendSection5(w, f.Packing, numPoints); err != nil {
		return err
	}
	if err := section.AppendSection6(w, f.Bitmap); err != nil {
		return err
	}
	if err := section.AppendSection7(w, f.Packing, f.Values, numPoints); err != nil {
		return err
	}
	if err := section.AppendSentinel(w); err != nil {
		return err
	}

	if w.Offset() != total*8 {
		return fmt.Errorf("encoded %d bits, expected %d", w.Offset(), total*8)
	}
	_, err = e.w.Write(w.Bytes())
	return err
}

// resolvePDS2 prepares the product definition for emission. A product
// that originated in GRIB1 has its statistical-process block derived
// from the time-range indicator and P1/P2 period.
func resolvePDS2(msg *Message, f *Field) (*product.Product, error) {
	p := *f.Product

	if p.G1.Valid {
		templ, err := tables.PDSTemplateForTimeRange(p.G1.TimeRange)
		if err != nil {
			return nil, &UnmappedError{Kind: UnmappedTimeRange, Detail: err.Error()}
		}
		p.TemplateNumber = templ
	}

	switch p.TemplateNumber {
	case 0:
		return &p, nil
	case 8:
		if p.Stat == nil {
			st, err := deriveStatBlock(msg, &p)
			if err != nil {
				return nil, err
			}
			p.Stat = st
		}
		return &p, nil
	default:
		return nil, &UnsupportedTemplateError{Section: 4, TemplateNumber: p.TemplateNumber}
	}
}

// deriveStatBlock builds the template-4.8 statistical block for a
// product decoded from GRIB1: the overall end time is the reference
// time advanced by P2, and the process code follows from the
// time-range indicator or, for max/min temperature, the parameter.
func deriveStatBlock(msg *Message, p *product.Product) (*product.Statistical, error) {
	yr, mo, dy, hhmm, err := tables.AddTime(p.G1.P2, int(p.TimeUnit),
		msg.RefTime.Year, msg.RefTime.Month, msg.RefTime.Day, msg.RefTime.HHMM())
	if err != nil {
		return nil, &UnmappedError{Kind: UnmappedTimeRange, Detail: err.Error()}
	}
	proc, incrType, err := tables.StatProcessForGRIB1(p.G1.TimeRange, p.G1.Param)
	if err != nil {
		return nil, &UnmappedError{Kind: UnmappedProcess, Detail: err.Error()}
	}
	return &product.Statistical{
		EndYear:  yr,
		EndMonth: mo,
		EndDay:   dy,
		EndTime:  hhmm * 100,
		Ranges: []product.TimeRangeSpec{{
			Process:  uint8(proc),
			IncrType: uint8(incrType),
			TimeUnit: p.TimeUnit,
			Length:   uint32(p.G1.P2 - p.G1.P1),
			IncrUnit: p.TimeUnit,
		}},
	}, nil
}
