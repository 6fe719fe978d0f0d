package product

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// GRIB2 Product Definition Section codec.
//
// Section 4 structure:
//
//	Bytes 1-4:  Length of section (uint32)
//	Byte 5:     Section number (must be 4)
//	Bytes 6-7:  Number of coordinate values after template
//	Bytes 8-9:  Product definition template number (Table 4.0)
//	Bytes 10-n: Template
//
// Supported templates: 4.0 (analysis/forecast), 4.1 (ensemble), 4.2
// (derived), 4.8 (statistical), 4.11 (statistical ensemble), 4.12
// (statistical derived), 4.15 (spatial processing).

// ParsePDS2 parses a GRIB2 Product Definition Section into a Product.
// The discipline is carried in the Indicator Section and is filled in
// by the caller.
func ParsePDS2(sec []byte) (*Product, error) {
	if len(sec) < 9 {
		return nil, fmt.Errorf("section 4 must be at least 9 bytes, got %d", len(sec))
	}
	r := internal.NewReader(sec)
	r.Skip(5)
	numCoords, _ := r.Uint16()
	if numCoords != 0 {
		return nil, fmt.Errorf("hybrid coordinate values are not supported")
	}
	templ, _ := r.Uint16()

	switch templ {
	case 0, 1, 2, 8, 11, 12, 15:
	default:
		return nil, fmt.Errorf("product definition template %d is not supported", templ)
	}

	p := &Product{TemplateNumber: int(templ)}
	p.Category, _ = r.Uint8()
	p.Number, _ = r.Uint8()
	p.GenProcess, _ = r.Uint8()
	r.Skip(5) // background process, analysis process, cutoff hours and minutes
	p.TimeUnit, _ = r.Uint8()
	fcst, _ := r.Uint32()
	p.ForecastTime = int(fcst)

	var err error
	if p.Level1, err = parseLevel(r); err != nil {
		return nil, err
	}
	if p.Level2, err = parseLevel(r); err != nil {
		return nil, err
	}

	switch templ {
	case 1, 11:
		ens := &Ensemble{}
		ens.Type, _ = r.Uint8()
		ens.PerturbNum, _ = r.Uint8()
		if ens.NumForecast, err = r.Uint8(); err != nil {
			return nil, err
		}
		p.Ens = ens
		if templ == 11 {
			if p.Stat, err = parseStatistical(r); err != nil {
				return nil, err
			}
		}
	case 2, 12:
		der := &Derived{}
		der.Code, _ = r.Uint8()
		if der.NumForecast, err = r.Uint8(); err != nil {
			return nil, err
		}
		p.Derived = der
		if templ == 12 {
			if p.Stat, err = parseStatistical(r); err != nil {
				return nil, err
			}
		}
	case 8:
		if p.Stat, err = parseStatistical(r); err != nil {
			return nil, err
		}
	case 15:
		sp := &Spatial{}
		sp.StatProcess, _ = r.Uint8()
		sp.Type, _ = r.Uint8()
		if sp.NumPoints, err = r.Uint8(); err != nil {
			return nil, err
		}
		p.Spatial = sp
	}
	return p, nil
}

func parseLevel(r *internal.Reader) (Level, error) {
	var l Level
	var err error
	l.Type, _ = r.Uint8()
	// Scale factors are sign-magnitude, like every signed GRIB field.
	scale, _ := r.Uint8()
	if scale&0x80 != 0 {
		l.Scale = -int8(scale & 0x7F)
	} else {
		l.Scale = int8(scale)
	}
	l.Value, err = r.Int32()
	return l, err
}

func parseStatistical(r *internal.Reader) (*Statistical, error) {
	st := &Statistical{}
	eyr, _ := r.Uint16()
	emo, _ := r.Uint8()
	edy, _ := r.Uint8()
	hh, _ := r.Uint8()
	mm, _ := r.Uint8()
	ss, _ := r.Uint8()
	st.EndYear = int(eyr)
	st.EndMonth = int(emo)
	st.EndDay = int(edy)
	st.EndTime = int(hh)*10000 + int(mm)*100 + int(ss)
	nr, _ := r.Uint8()
	nmiss, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	st.NumMissing = nmiss
	st.Ranges = make([]TimeRangeSpec, nr)
	for i := range st.Ranges {
		tr := &st.Ranges[i]
		tr.Process, _ = r.Uint8()
		tr.IncrType, _ = r.Uint8()
		tr.TimeUnit, _ = r.Uint8()
		tr.Length, _ = r.Uint32()
		tr.IncrUnit, _ = r.Uint8()
		if tr.IncrLength, err = r.Uint32(); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// PDS2Length returns the section length for the product's template.
// Only templates 4.0 and 4.8 (with a single time range) are written.
func (p *Product) PDS2Length() (int, error) {
	switch p.TemplateNumber {
	case 0:
		return 34, nil
	case 8:
		return 58, nil
	default:
		return 0, fmt.Errorf("product definition template %d has no writer", p.TemplateNumber)
	}
}

// AppendPDS2 writes the Product Definition Section for template 4.0 or
// 4.8. The statistical block of template 4.8 must already be resolved
// (single time range).
func (p *Product) AppendPDS2(w *internal.BitWriter) error {
	length, err := p.PDS2Length()
	if err != nil {
		return err
	}
	start := w.Offset()
	w.WriteBits(uint32(length), 32)
	w.WriteBits(4, 8)
	w.WriteBits(0, 16) // no coordinate values
	w.WriteBits(uint32(p.TemplateNumber), 16)
	w.WriteBits(uint32(p.Category), 8)
	w.WriteBits(uint32(p.Number), 8)
	// type of generating process
	w.WriteBits(uint32(p.GenProcess), 8)
	w.WriteBits(255, 8)    // background generating process
	w.WriteBits(255, 8)    // analysis/forecast generating process
	w.WriteBits(65535, 16) // hours of observational data cutoff
	w.WriteBits(255, 8)    // minutes of cutoff
	w.WriteBits(uint32(p.TimeUnit), 8)
	w.WriteBits(uint32(p.ForecastTime), 32)
	appendLevel(w, p.Level1)
	appendLevel(w, p.Level2)

	if p.TemplateNumber == 8 {
		st := p.Stat
		if st == nil || len(st.Ranges) != 1 {
			return fmt.Errorf("template 4.8 requires a single statistical time range")
		}
		w.WriteBits(uint32(st.EndYear), 16)
		w.WriteBits(uint32(st.EndMonth), 8)
		w.WriteBits(uint32(st.EndDay), 8)
		w.WriteBits(uint32(st.EndTime/10000), 8)
		w.WriteBits(uint32(st.EndTime/100%100), 8)
		w.WriteBits(uint32(st.EndTime%100), 8)
		w.WriteBits(1, 8) // number of time range specifications
		w.WriteBits(st.NumMissing, 32)
		tr := st.Ranges[0]
		w.WriteBits(uint32(tr.Process), 8)
		w.WriteBits(uint32(tr.IncrType), 8)
		w.WriteBits(uint32(tr.TimeUnit), 8)
		w.WriteBits(tr.Length, 32)
		w.WriteBits(uint32(tr.IncrUnit), 8)
		if err := w.WriteBits(tr.IncrLength, 32); err != nil {
			return err
		}
	}

	w.SetOffset(start + length*8)
	return nil
}

func appendLevel(w *internal.BitWriter, l Level) {
	w.WriteBits(uint32(l.Type), 8)
	w.WriteSignMagnitude(int32(l.Scale), 8)
	w.WriteSignMagnitude(l.Value, 32)
}
