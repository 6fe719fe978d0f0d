// Package data implements the gridpoint packing engine: simple packing,
// complex packing with spatial differencing, and the JPEG-2000 hook.
package data

import (
	"fmt"
	"math"
)

// MissingValue is the sentinel stored in decoded gridpoint arrays for
// points masked out by a bitmap or a group-local missing code. The
// literal is part of the decoder contract; comparisons use exact
// equality (the value is exactly representable).
const MissingValue = 1e30

// Data representation template numbers (Code Table 5.0).
const (
	TemplateSimple      = 0
	TemplateComplexDiff = 3
	TemplateJPEG2000    = 40
	// Pre-standard number some producers used for JPEG-2000.
	TemplateJPEG2000Alt = 40000
)

// Packing holds the data-representation metadata shared by all grids of a
// message: the scaling triple and the per-point bit width, plus the
// complex-packing block when template 5.3 is in use.
//
// Decoded values are R + packed*2^E/10^D. The reference value held here
// has already been divided by 10^D.
type Packing struct {
	Template     uint16
	R            float64 // reference value (divided by 10^D)
	E            int16   // binary scale factor
	D            int16   // decimal scale factor
	NumPacked    uint32  // number of packed values in the Data Section
	Width        uint8   // bits per packed value
	OriginalType uint8   // type of original field values (Table 5.1)

	Complex *ComplexPacking // template 5.3 only
}

// ComplexPacking carries the group descriptors of Data Representation
// Template 5.3 (complex packing with spatial differencing).
type ComplexPacking struct {
	SplitMethod    uint8
	MissingMgmt    uint8
	PrimarySub     float64
	SecondarySub   float64
	NumGroups      uint32
	WidthRef       uint8
	WidthBits      uint8
	LengthRef      uint32
	LengthIncr     uint8
	LastLength     uint32
	LengthBits     uint8
	SpatialOrder   uint8
	SpatialValOcts uint8 // octets per extra descriptor (order values, omin)
}

// BinaryFactor returns 2^E.
func (p *Packing) BinaryFactor() float64 {
	return math.Pow(2, float64(p.E))
}

// DecimalFactor returns 10^D.
func (p *Packing) DecimalFactor() float64 {
	return math.Pow(10, float64(p.D))
}

// MinWidth returns the smallest bit width w with 2^w - 1 >= max. A
// constant field (max of zero) packs with width zero.
func MinWidth(max uint32) uint8 {
	w := 0
	for uint64(1)<<w-1 < uint64(max) {
		w++
	}
	return uint8(w)
}

// ScaleValue converts a physical value to its packed integer,
// round((v - R) * 10^D / 2^E).
func (p *Packing) ScaleValue(v float64) int64 {
	return int64(math.Round((v - p.R) * p.DecimalFactor() / p.BinaryFactor()))
}

// String returns a short description of the representation.
func (p *Packing) String() string {
	switch p.Template {
	case TemplateSimple:
		return fmt.Sprintf("simple packing, %d bits/value, R=%g E=%d D=%d",
			p.Width, p.R, p.E, p.D)
	case TemplateComplexDiff:
		order := uint8(0)
		if p.Complex != nil {
			order = p.Complex.SpatialOrder
		}
		return fmt.Sprintf("complex packing, order-%d spatial differencing, %d bits/value",
			order, p.Width)
	case TemplateJPEG2000, TemplateJPEG2000Alt:
		return fmt.Sprintf("JPEG-2000 code stream, %d bits/value", p.Width)
	default:
		return fmt.Sprintf("data representation template %d", p.Template)
	}
}
