package regrib

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/mmp/regrib/data"
	"github.com/mmp/regrib/internal"
	"github.com/mmp/regrib/product"
	"github.com/mmp/regrib/section"
	"github.com/mmp/regrib/tables"
)

// Encoder1 writes GRIB edition-1 messages. Each field of a unified
// message is emitted as its own message; the parameter, level, and
// time-range namespaces are translated back through the reverse
// tables unless the product originated in edition 1.
type Encoder1 struct {
	w      io.Writer
	buf    []byte
	warned bool
}

// NewEncoder1 creates a GRIB1 encoder writing to w.
func NewEncoder1(w io.Writer) *Encoder1 {
	return &Encoder1{w: w}
}

// Encode emits every field of msg as a GRIB1 message.
func (e *Encoder1) Encode(msg *Message) error {
	for _, f := range msg.Fields {
		if err := e.encodeField(msg, f); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder1) buffer(n int) []byte {
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	}
	e.buf = e.buf[:n]
	clear(e.buf)
	return e.buf
}

// timeRange1 is the GRIB1 rendering of a product's time coordinates.
type timeRange1 struct {
	p1, p2    int
	indicator int
	numAvg    int
	numMiss   int
}

func (e *Encoder1) encodeField(msg *Message, f *Field) error {
	p := f.Product

	// Parameter.
	g1p := tables.G1Param{Table: p.G1.TableVersion, Code: p.G1.Param}
	if !p.G1.Valid {
		spatialType := -1
		if p.Spatial != nil {
			spatialType = int(p.Spatial.Type)
		}
		var ok bool
		g1p, ok = tables.ParamToGRIB1(msg.Center, int(p.Discipline), int(p.Category),
			int(p.Number), spatialType)
		if !ok {
			if !tables.HasGRIB1Mapping(int(p.Discipline)) {
				glog.Warningf("discipline %d (%s) has no GRIB1 parameter table; setting code to 255",
					p.Discipline, tables.GetDisciplineName(int(p.Discipline)))
			} else {
				glog.Warningf("no GRIB1 parameter code for discipline %d, category %d, number %d, center %d; setting to 255",
					p.Discipline, p.Category, p.Number, msg.Center)
			}
		}
	}

	// Level.
	lvlType, lvl1, lvl2 := p.G1.LevelType, p.G1.Level1, p.G1.Level2
	if !p.G1.Valid {
		var err error
		lvlType, lvl1, lvl2, err = tables.LevelToGRIB1(int(p.Level1.Type), int(p.Level2.Type),
			p.Level1.Float(), p.Level2.Float())
		if err != nil {
			return &UnmappedError{Kind: UnmappedLevel, Detail: err.Error()}
		}
	}

	// Time range.
	tr := timeRange1{
		p1: p.G1.P1, p2: p.G1.P2, indicator: p.G1.TimeRange,
		numAvg: p.G1.NumInAverage, numMiss: p.G1.NumMissing,
	}
	if !p.G1.Valid {
		var err error
		if tr, err = mapTimeRange1(msg, p); err != nil {
			return err
		}
	}

	timeUnit := int(p.TimeUnit)
	if timeUnit == 13 {
		glog.Warningf("cannot indicate 'second' time unit in GRIB1")
		timeUnit = 0
	}

	pds := &product.PDS1{
		Length:       28,
		TableVersion: g1p.Table,
		Center:       msg.Center,
		GenProcess:   int(p.GenProcess),
		GridID:       255,
		HasGDS:       true,
		HasBMS:       f.Bitmap != nil,
		Param:        g1p.Code,
		LevelType:    lvlType,
		Level1:       lvl1,
		Level2:       lvl2,
		Year:         msg.RefTime.Year,
		Month:        msg.RefTime.Month,
		Day:          msg.RefTime.Day,
		Time:         msg.RefTime.HHMM(),
		TimeUnit:     timeUnit,
		P1:           tr.p1,
		P2:           tr.p2,
		TimeRange:    tr.indicator,
		NumInAverage: tr.numAvg,
		NumMissing:   tr.numMiss,
		SubCenter:    msg.SubCenter,
		D:            int(f.Packing.D),
	}
	if p.G1.Valid {
		pds.GridID = p.G1.GridID
	}

	// The ensemble, derived-forecast, and spatial-processing blocks of
	// the GRIB2 templates have no GRIB1 octets of their own; they ride
	// in PDS octets 41 onward.
	switch {
	case p.Ens != nil:
		pds.Length = 43
		e.noticeOnce("the ensemble type, perturbation number, and number of forecasts " +
			"in ensemble have been packed in octets 41-43 of the GRIB1 PDS")
	case p.Derived != nil:
		pds.Length = 42
		e.noticeOnce("the derived forecast code and number of forecasts in ensemble " +
			"have been packed in octets 41-42 of the GRIB1 PDS")
	case p.Spatial != nil:
		pds.Length = 43
		e.noticeOnce("the spatial processing statistical process, type, and number of " +
			"data points have been packed in octets 41-43 of the GRIB1 PDS")
	}

	// Packing: re-scan the gridpoints for the minimal bit width.
	numPoints := f.Grid.NumPoints()
	numToPack := 0
	maxPacked := uint32(0)
	pk := &data.Packing{
		Template: data.TemplateSimple,
		R:        f.Packing.R,
		E:        f.Packing.E,
		D:        f.Packing.D,
	}
	for _, v := range f.Values {
		if v == MissingValue {
			continue
		}
		numToPack++
		if pv := pk.ScaleValue(v); pv > int64(maxPacked) {
			maxPacked = uint32(pv)
		}
	}
	pk.Width = data.MinWidth(maxPacked)

	gdsLen := f.Grid.GDS1Length()
	bmsLen := 0
	if f.Bitmap != nil {
		bmsLen = section.BMS1Length(numPoints)
	}
	bdsLen := section.BDS1Length(numToPack, pk.Width)
	total := 8 + pds.Length + gdsLen + bmsLen + bdsLen + 4

	w := internal.NewBitWriter(e.buffer(total))
	section.AppendIndicator1(w, total)
	if err := pds.AppendPDS1(w); err != nil {
		return err
	}
	switch {
	case p.Ens != nil:
		w.Skip(96) // octets 29-40 reserved
		w.WriteBits(uint32(p.Ens.Type), 8)
		w.WriteBits(uint32(p.Ens.PerturbNum), 8)
		w.WriteBits(uint32(p.Ens.NumForecast), 8)
	case p.Derived != nil:
		w.Skip(96)
		w.WriteBits(uint32(p.Derived.Code), 8)
		w.WriteBits(uint32(p.Derived.NumForecast), 8)
	case p.Spatial != nil:
		w.Skip(96)
		w.WriteBits(uint32(p.Spatial.StatProcess), 8)
		w.WriteBits(uint32(p.Spatial.Type), 8)
		w.WriteBits(uint32(p.Spatial.NumPoints), 8)
	}
	if err := f.Grid.AppendGDS1(w); err != nil {
		return err
	}
	if f.Bitmap != nil {
		if err := section.AppendBMS1(w, f.Bitmap); err != nil {
			return err
		}
	}
	if err := section.AppendBDS1(w, pk, f.Values, numToPack); err != nil {
		return err
	}
	if err := section.AppendSentinel(w); err != nil {
		return err
	}

	if w.Offset() != total*8 {
		return fmt.Errorf("encoded %d bits, expected %d", w.Offset(), total*8)
	}
	_, err := e.w.Write(w.Bytes())
	return err
}

// noticeOnce emits an informational warning a single time per encoder.
func (e *Encoder1) noticeOnce(msg string) {
	if !e.warned {
		glog.Warningf("notice: %s", msg)
		e.warned = true
	}
}

// mapTimeRange1 converts a GRIB2 product's time coordinates to the
// GRIB1 time-range form.
func mapTimeRange1(msg *Message, p *product.Product) (timeRange1, error) {
	var tr timeRange1

	switch p.TemplateNumber {
	case 0, 1, 2, 15:
		tr.indicator = tables.TimeRangeForecast
		if p.TimeUnit == tables.UnitMinute {
			tr.indicator = tables.TimeRangeMinuteFcst
		}
		tr.p1 = p.ForecastTime
		return tr, nil
	case 8, 11, 12:
		st := p.Stat
		if st == nil || len(st.Ranges) == 0 {
			return tr, &UnmappedError{Kind: UnmappedTimeRange, Detail: "statistical block missing"}
		}
		tr.numMiss = int(st.NumMissing)

		if len(st.Ranges) > 1 {
			// NCEP CFSR monthly grids describe their processing with a
			// pair of nested time ranges.
			if msg.Center != 7 || len(st.Ranges) != 2 {
				return tr, &UnmappedError{Kind: UnmappedTimeRange,
					Detail: "multiple statistical processes"}
			}
			ind, ok := tables.CFSRTimeRange(int(st.Ranges[0].Process))
			if !ok {
				return tr, &UnmappedError{Kind: UnmappedProcess,
					Detail: fmt.Sprintf("NCEP statistical process code %d", st.Ranges[0].Process)}
			}
			tr.indicator = ind
			tr.p2 = int(st.Ranges[0].IncrLength)
			tr.p1 = tr.p2 - int(st.Ranges[1].Length)
			tr.numAvg = int(st.Ranges[0].Length)
			return tr, nil
		}

		r := st.Ranges[0]
		proc := int(r.Process)
		ind, ok := tables.TimeRangeForProcess(proc)
		if !ok {
			// NCEP writes process 255 on some max/min temperature grids.
			if proc == 255 && msg.Center == 7 && p.Discipline == 0 && p.Category == 0 &&
				(p.Number == 4 || p.Number == 5) {
				ind = tables.TimeRangeValidPeriod
			} else {
				return tr, &UnmappedError{Kind: UnmappedProcess,
					Detail: fmt.Sprintf("statistical process %d", proc)}
			}
		}
		if r.IncrLength != 0 {
			return tr, &UnmappedError{Kind: UnmappedTimeRange, Detail: "discrete processing"}
		}
		tr.indicator = ind
		tr.p1 = p.ForecastTime
		p2, err := tables.StatEndTimeDiff(int(p.TimeUnit),
			st.EndYear, st.EndMonth, st.EndDay, st.EndTime,
			msg.RefTime.Year, msg.RefTime.Month, msg.RefTime.Day, msg.RefTime.Time)
		if err != nil {
			return tr, &UnmappedError{Kind: UnmappedTimeRange, Detail: err.Error()}
		}
		tr.p2 = p2
		return tr, nil
	default:
		return tr, &UnmappedError{Kind: UnmappedTimeRange,
			Detail: fmt.Sprintf("product definition template %d", p.TemplateNumber)}
	}
}
