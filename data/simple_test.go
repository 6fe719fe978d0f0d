package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmp/regrib/internal"
)

func TestMinWidth(t *testing.T) {
	assert.Equal(t, uint8(0), MinWidth(0))
	assert.Equal(t, uint8(1), MinWidth(1))
	assert.Equal(t, uint8(2), MinWidth(2))
	assert.Equal(t, uint8(2), MinWidth(3))
	assert.Equal(t, uint8(3), MinWidth(4))
	assert.Equal(t, uint8(8), MinWidth(255))
	assert.Equal(t, uint8(9), MinWidth(256))
	assert.Equal(t, uint8(32), MinWidth(0xFFFFFFFF))
}

func TestSimplePackUnpackRoundTrip(t *testing.T) {
	p := &Packing{Template: TemplateSimple, R: 100.0, E: 0, D: 0, Width: 8}
	values := []float64{100, 101, 150, 355, 255.0 + 100}

	buf := make([]byte, 8)
	w := internal.NewBitWriter(buf)
	require.NoError(t, p.PackSimple(values, w))

	got := make([]float64, len(values))
	require.NoError(t, p.UnpackSimple(buf, nil, got))
	assert.Equal(t, values, got)
}

func TestSimpleUnpackConstantField(t *testing.T) {
	p := &Packing{Template: TemplateSimple, R: 273.15, Width: 0}
	got := make([]float64, 4)
	require.NoError(t, p.UnpackSimple(nil, nil, got))
	for _, v := range got {
		assert.Equal(t, 273.15, v)
	}
}

func TestSimpleUnpackBitmap(t *testing.T) {
	p := &Packing{Template: TemplateSimple, R: 0, E: 0, D: 0, Width: 4}
	// Three packed values for the three present points.
	buf := make([]byte, 2)
	w := internal.NewBitWriter(buf)
	for _, v := range []uint32{1, 2, 3} {
		require.NoError(t, w.WriteBits(v, 4))
	}

	bitmap := []bool{true, false, true, true}
	got := make([]float64, 4)
	require.NoError(t, p.UnpackSimple(buf, bitmap, got))
	assert.Equal(t, []float64{1, MissingValue, 2, 3}, got)
}

func TestSimpleScalingFactors(t *testing.T) {
	// value = R + packed * 2^E / 10^D
	p := &Packing{Template: TemplateSimple, R: 10, E: 2, D: 1, Width: 8}
	buf := make([]byte, 1)
	w := internal.NewBitWriter(buf)
	require.NoError(t, w.WriteBits(5, 8))

	got := make([]float64, 1)
	require.NoError(t, p.UnpackSimple(buf, nil, got))
	assert.InDelta(t, 10+5*4.0/10.0, got[0], 1e-12)
}
