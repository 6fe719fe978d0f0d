package data

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// UnpackComplex decodes gridpoints packed with Data Representation
// Template 5.3: group-wise packing of spatially differenced values.
//
// The packed stream carries, in order: the `order` first values and the
// overall minimum (each SpatialValOcts octets, the minimum in
// sign-magnitude form), then the group references, group widths, and
// group lengths, each vector padded to an octet boundary, then the
// grouped differences themselves.
func (p *Packing) UnpackComplex(packed []byte, bitmap []bool, dst []float64) error {
	cp := p.Complex
	if cp == nil {
		return fmt.Errorf("complex packing metadata missing")
	}
	if cp.NumGroups == 0 {
		for i := range dst {
			dst[i] = MissingValue
		}
		return nil
	}

	e := p.BinaryFactor()
	d := p.DecimalFactor()
	br := internal.NewBitReader(packed)

	// Section-wide missing code: all ones at the reference width. Only
	// meaningful when missing-value management is active.
	var missVal int64 = -1
	if cp.MissingMgmt > 0 {
		missVal = int64(1)<<p.Width - 1
	}

	order := int(cp.SpatialOrder)
	valBits := int(cp.SpatialValOcts) * 8
	firstVals := make([]int32, order)
	for n := range firstVals {
		v, err := br.ReadBits(valBits)
		if err != nil {
			return fmt.Errorf("reading spatial difference value %d: %w", n, err)
		}
		firstVals[n] = int32(v)
	}
	omin, err := br.ReadSignMagnitude(valBits)
	if err != nil {
		return fmt.Errorf("reading overall minimum: %w", err)
	}

	refs := make([]uint32, cp.NumGroups)
	for n := range refs {
		if refs[n], err = br.ReadBits(int(p.Width)); err != nil {
			return fmt.Errorf("reading group reference %d: %w", n, err)
		}
	}
	br.Align()

	widths := make([]uint32, cp.NumGroups)
	for n := range widths {
		if widths[n], err = br.ReadBits(int(cp.WidthBits)); err != nil {
			return fmt.Errorf("reading group width %d: %w", n, err)
		}
	}
	br.Align()

	lengths := make([]uint32, cp.NumGroups)
	for n := range lengths {
		if lengths[n], err = br.ReadBits(int(cp.LengthBits)); err != nil {
			return fmt.Errorf("reading group length %d: %w", n, err)
		}
	}
	br.Align()

	last := len(lengths) - 1
	for n := 0; n < last; n++ {
		lengths[n] = cp.LengthRef + lengths[n]*uint32(cp.LengthIncr)
	}
	lengths[last] = cp.LastLength

	// Unpack the field of differences group by group. A zero-width group
	// is constant at its reference; the reference itself is checked
	// against the section-wide missing code.
	gp := 0
	for n := range refs {
		if gp+int(lengths[n]) > len(dst) {
			return fmt.Errorf("groups cover %d points, grid has %d", gp+int(lengths[n]), len(dst))
		}
		if widths[n] > 0 {
			var groupMiss int64 = -1
			if cp.MissingMgmt > 0 {
				groupMiss = int64(1)<<widths[n] - 1
			}
			for m := uint32(0); m < lengths[n]; m++ {
				pval, err := br.ReadBits(int(widths[n]))
				if err != nil {
					return fmt.Errorf("reading gridpoint %d: %w", gp, err)
				}
				if (bitmap != nil && !bitmap[gp]) || int64(pval) == groupMiss {
					dst[gp] = MissingValue
				} else {
					dst[gp] = float64(int64(pval) + int64(refs[n]) + int64(omin))
				}
				gp++
			}
		} else {
			for m := uint32(0); m < lengths[n]; m++ {
				if (bitmap != nil && !bitmap[gp]) || int64(refs[n]) == missVal {
					dst[gp] = MissingValue
				} else {
					dst[gp] = float64(int64(refs[n]) + int64(omin))
				}
				gp++
			}
		}
	}
	for ; gp < len(dst); gp++ {
		dst[gp] = MissingValue
	}

	// Undo the spatial differencing, highest order first. Each pass
	// reconstitutes a running sum over the non-missing points, skipping
	// the `order` seed values at the front.
	for n := order - 1; n > 0; n-- {
		lastgp := float64(firstVals[n] - firstVals[n-1])
		notMissing := 0
		for l := range dst {
			if dst[l] == MissingValue {
				continue
			}
			if notMissing >= order {
				dst[l] += lastgp
				lastgp = dst[l]
			}
			notMissing++
		}
	}

	// Final pass: seed the first `order` points from the first values and
	// integrate the remainder, tracking the running total in packed
	// integer space before scaling back to physical units.
	lastgp := 0.0
	notMissing := 0
	for l := range dst {
		if dst[l] == MissingValue {
			continue
		}
		if notMissing < order {
			dst[l] = p.R + float64(firstVals[notMissing])*e/d
			lastgp = p.R*d/e + float64(firstVals[notMissing])
		} else {
			lastgp += dst[l]
			dst[l] = lastgp * e / d
		}
		notMissing++
	}
	return nil
}
