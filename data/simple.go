package data

import (
	"fmt"
	"math"

	"github.com/mmp/regrib/internal"
)

// UnpackSimple decodes simple-packed gridpoints (Template 5.0, and the
// GRIB1 Binary Data Section, which uses the same arithmetic).
//
// packed is the raw bit stream of packed values. dst receives one value
// per grid point; points with bitmap[i] false get MissingValue. With a
// zero bit width the field is constant and every present point equals
// the reference value.
func (p *Packing) UnpackSimple(packed []byte, bitmap []bool, dst []float64) error {
	e := p.BinaryFactor()
	d := p.DecimalFactor()
	br := internal.NewBitReader(packed)

	for i := range dst {
		if bitmap != nil && !bitmap[i] {
			dst[i] = MissingValue
			continue
		}
		if p.Width == 0 {
			dst[i] = p.R
			continue
		}
		pval, err := br.ReadBits(int(p.Width))
		if err != nil {
			return fmt.Errorf("packed data ends at gridpoint %d: %w", i, err)
		}
		dst[i] = p.R + float64(pval)*e/d
	}
	return nil
}

// PackSimple bit-packs the present values of values, in scan order, at the
// packing's width. Values equal to MissingValue contribute nothing to the
// output (they are represented only by the bitmap).
func (p *Packing) PackSimple(values []float64, out *internal.BitWriter) error {
	d := p.DecimalFactor()
	e := p.BinaryFactor()
	for i, v := range values {
		if v == MissingValue {
			continue
		}
		pval := int64(math.Round((v - p.R) * d / e))
		if err := out.WriteBits(uint32(pval), int(p.Width)); err != nil {
			return fmt.Errorf("packing gridpoint %d: %w", i, err)
		}
	}
	return nil
}
