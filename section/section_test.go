package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmp/regrib/data"
	"github.com/mmp/regrib/internal"
)

func TestSection0RoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	w := internal.NewBitWriter(buf)
	require.NoError(t, AppendSection0(w, 10, 0x1_2345_6789))

	s, err := ParseSection0(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(10), s.Discipline)
	assert.Equal(t, uint8(2), s.Edition)
	assert.Equal(t, uint64(0x1_2345_6789), s.MessageLength)
}

func TestSection0BadMagic(t *testing.T) {
	_, err := ParseSection0([]byte("NOPE012345678901"))
	assert.Error(t, err)
}

func TestSection1RoundTrip(t *testing.T) {
	s := &Section1{
		Center:           7,
		SubCenter:        4,
		MasterTables:     18,
		RefTimeType:      1,
		Year:             2017,
		Month:            7,
		Day:              10,
		Time:             60102,
		ProductionStatus: 255,
		DataType:         255,
	}
	buf := make([]byte, Section1Length)
	w := internal.NewBitWriter(buf)
	require.NoError(t, AppendSection1(w, s))

	got, err := ParseSection1(buf)
	require.NoError(t, err)
	want := *s
	want.Length = Section1Length
	assert.Equal(t, &want, got)
}

func TestSection6RoundTrip(t *testing.T) {
	bitmap := []bool{true, false, true, true, false, true, true, true, false, true}
	buf := make([]byte, Section6Length(bitmap))
	w := internal.NewBitWriter(buf)
	require.NoError(t, AppendSection6(w, bitmap))

	s, err := ParseSection6(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(BitmapPresent), s.Indicator)
	// The decoded bitmap includes the padding bits; the leading entries
	// match what was written.
	require.GreaterOrEqual(t, len(s.Bitmap), len(bitmap))
	assert.Equal(t, bitmap, s.Bitmap[:len(bitmap)])
}

func TestSection6Absent(t *testing.T) {
	buf := make([]byte, 6)
	w := internal.NewBitWriter(buf)
	require.NoError(t, AppendSection6(w, nil))

	s, err := ParseSection6(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(BitmapNone), s.Indicator)
	assert.Nil(t, s.Bitmap)
}

func TestIndicator1Editions(t *testing.T) {
	ind, err := ParseIndicator1([]byte{'G', 'R', 'I', 'B', 0, 0, 83, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, ind.Edition)
	assert.Equal(t, 83, ind.TotalLength)

	// A declared length of 24 marks edition 0.
	ind, err = ParseIndicator1([]byte{'G', 'R', 'I', 'B', 0, 0, 24, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, ind.Edition)
	assert.Equal(t, 31, ind.TotalLength)
}

func TestBMS1RoundTrip(t *testing.T) {
	bitmap := []bool{true, true, false, true, false}
	buf := make([]byte, BMS1Length(len(bitmap)))
	w := internal.NewBitWriter(buf)
	require.NoError(t, AppendBMS1(w, bitmap))

	got, next, err := ParseBMS1(buf, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, bitmap, got)
	assert.Equal(t, BMS1Length(len(bitmap))*8, next)
}

func TestBDS1RoundTrip(t *testing.T) {
	p := &data.Packing{
		Template: data.TemplateSimple,
		R:        100.5,
		E:        1,
		D:        0,
		Width:    6,
	}
	values := []float64{100.5, 102.5, 110.5, 120.5}
	buf := make([]byte, BDS1Length(len(values), p.Width))
	w := internal.NewBitWriter(buf)
	require.NoError(t, AppendBDS1(w, p, values, len(values)))

	bds, err := ParseBDS1(buf, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), bds.Packing.Width)
	assert.Equal(t, int16(1), bds.Packing.E)
	assert.InDelta(t, 100.5, bds.Packing.R, 1e-4)
	assert.Equal(t, uint32(4), bds.Packing.NumPacked)
}

func TestBDS1RejectsSecondOrderPacking(t *testing.T) {
	buf := make([]byte, 16)
	w := internal.NewBitWriter(buf)
	w.WriteBits(16, 24)
	w.WriteBits(0x4, 4) // second-order packing flag
	_, err := ParseBDS1(buf, 0, 0)
	assert.Error(t, err)
}

func TestSentinel(t *testing.T) {
	buf := make([]byte, 4)
	w := internal.NewBitWriter(buf)
	require.NoError(t, AppendSentinel(w))
	assert.Equal(t, "7777", string(buf))
	assert.True(t, IsSentinel(buf))
	assert.False(t, IsSentinel([]byte("7778")))
}
