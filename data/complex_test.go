package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmp/regrib/internal"
)

// buildComplexStream assembles a template-5.3 packed body: first
// values, overall minimum, group references, widths, lengths (each
// vector octet-aligned), then the grouped differences.
func buildComplexStream(t *testing.T, p *Packing, firstVals []uint32, omin int32,
	refs, widths, lengths []uint32, diffs [][]uint32) []byte {
	t.Helper()
	cp := p.Complex
	buf := make([]byte, 256)
	w := internal.NewBitWriter(buf)

	valBits := int(cp.SpatialValOcts) * 8
	for _, fv := range firstVals {
		require.NoError(t, w.WriteBits(fv, valBits))
	}
	require.NoError(t, w.WriteSignMagnitude(omin, valBits))
	for _, r := range refs {
		require.NoError(t, w.WriteBits(r, int(p.Width)))
	}
	w.Align()
	for _, g := range widths {
		require.NoError(t, w.WriteBits(g, int(cp.WidthBits)))
	}
	w.Align()
	for _, l := range lengths {
		require.NoError(t, w.WriteBits(l, int(cp.LengthBits)))
	}
	w.Align()
	for i, g := range widths {
		if g == 0 {
			continue
		}
		for _, pv := range diffs[i] {
			require.NoError(t, w.WriteBits(pv, int(g)))
		}
	}
	return buf[:(w.Offset()+7)/8]
}

func TestComplexFirstOrderDifferencing(t *testing.T) {
	// Gridpoints 10, 12, 11, 13 with first-order differencing:
	// differences 2, -1, 2; overall minimum -1; one 4-bit group.
	p := &Packing{
		Template: TemplateComplexDiff,
		R:        0, E: 0, D: 0,
		Width: 4,
		Complex: &ComplexPacking{
			NumGroups:      1,
			WidthBits:      4,
			LengthIncr:     1,
			LastLength:     4,
			LengthBits:     8,
			SpatialOrder:   1,
			SpatialValOcts: 1,
		},
	}
	// Stored values are difference - omin; the first point's slot is
	// overwritten by the first value, so its contents are arbitrary.
	body := buildComplexStream(t, p, []uint32{10}, -1,
		[]uint32{0}, []uint32{4}, []uint32{0}, [][]uint32{{0, 3, 0, 3}})

	got := make([]float64, 4)
	require.NoError(t, p.UnpackComplex(body, nil, got))
	assert.Equal(t, []float64{10, 12, 11, 13}, got)
}

func TestComplexConstantGroup(t *testing.T) {
	// A zero-width group is constant at reference + overall minimum.
	p := &Packing{
		Template: TemplateComplexDiff,
		R:        0, E: 0, D: 0,
		Width: 6,
		Complex: &ComplexPacking{
			NumGroups:      1,
			WidthBits:      4,
			LengthIncr:     1,
			LastLength:     4,
			LengthBits:     8,
			SpatialOrder:   1,
			SpatialValOcts: 1,
		},
	}
	// Every difference is ref+omin = 5-5 = 0: a constant field of 20.
	body := buildComplexStream(t, p, []uint32{20}, -5,
		[]uint32{5}, []uint32{0}, []uint32{0}, [][]uint32{nil})

	got := make([]float64, 4)
	require.NoError(t, p.UnpackComplex(body, nil, got))
	assert.Equal(t, []float64{20, 20, 20, 20}, got)
}

func TestComplexPointsBeyondGroupsAreMissing(t *testing.T) {
	p := &Packing{
		Template: TemplateComplexDiff,
		R:        0, E: 0, D: 0,
		Width: 4,
		Complex: &ComplexPacking{
			NumGroups:      1,
			WidthBits:      4,
			LengthIncr:     1,
			LastLength:     2,
			LengthBits:     8,
			SpatialOrder:   1,
			SpatialValOcts: 1,
		},
	}
	body := buildComplexStream(t, p, []uint32{7}, 0,
		[]uint32{0}, []uint32{4}, []uint32{0}, [][]uint32{{0, 1}})

	got := make([]float64, 4)
	require.NoError(t, p.UnpackComplex(body, nil, got))
	assert.Equal(t, []float64{7, 8, MissingValue, MissingValue}, got)
}

func TestComplexNoGroupsAllMissing(t *testing.T) {
	p := &Packing{
		Template: TemplateComplexDiff,
		Complex:  &ComplexPacking{},
	}
	got := make([]float64, 3)
	require.NoError(t, p.UnpackComplex(nil, nil, got))
	assert.Equal(t, []float64{MissingValue, MissingValue, MissingValue}, got)
}
