package regrib

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmp/regrib/data"
	"github.com/mmp/regrib/grid"
	"github.com/mmp/regrib/product"
)

// buildGRIB1Constant hand-assembles a GRIB1 message: a 2x2 lat/lon
// grid, constant field of 273.15 (pack width zero). tRange and p2
// parameterize the time coordinates.
func buildGRIB1Constant(t *testing.T, tRange, p2 int) []byte {
	t.Helper()

	pds := []byte{
		0, 0, 28, // length
		3,    // table version
		7,    // center (NCEP)
		96,   // generating process
		255,  // grid identification
		0x80, // GDS included, no BMS
		11,   // parameter: temperature
		1,    // level type: surface
		0, 0, // level value
		17, 7, 10, // year of century, month, day
		6, 0, // hour, minute
		1,           // forecast units: hours
		0, byte(p2), // P1, P2
		byte(tRange), // time range indicator
		0, 0,         // number in average
		0,    // missing grids
		21,   // century
		0,    // sub-center
		0, 0, // decimal scale factor
	}
	gds := []byte{
		0, 0, 32, // length
		255, 255, // NV, PV
		0,    // data representation: lat/lon
		0, 2, // Ni
		0, 2, // Nj
		0, 0, 0, // first latitude (millidegrees)
		0, 0, 0, // first longitude
		0,                // resolution and component flags
		0x00, 0x03, 0xE8, // last latitude: 1.000 degrees
		0x00, 0x03, 0xE8, // last longitude
		0x03, 0xE8, // Di: 1.000 degrees
		0x03, 0xE8, // Dj
		0,          // scanning mode
		0, 0, 0, 0, // reserved
	}
	bds := []byte{
		0, 0, 11, // length
		0,    // flag and unused bits
		0, 0, // binary scale factor
		0, 0, 0, 0, // reference value, filled below
		0, // pack width: constant field
	}
	binary.BigEndian.PutUint32(bds[6:], data.FloatToIBM(273.15))

	total := 8 + len(pds) + len(gds) + len(bds) + 4
	msg := make([]byte, 0, total)
	msg = append(msg, 'G', 'R', 'I', 'B',
		byte(total>>16), byte(total>>8), byte(total), 1)
	msg = append(msg, pds...)
	msg = append(msg, gds...)
	msg = append(msg, bds...)
	msg = append(msg, '7', '7', '7', '7')
	return msg
}

func TestDecoder1EmptyInput(t *testing.T) {
	dec := NewDecoder1(bytes.NewReader(nil))
	_, err := dec.Next()
	assert.Equal(t, io.EOF, err)
}

func TestDecoder2EmptyInput(t *testing.T) {
	dec := NewDecoder2(bytes.NewReader(nil))
	_, err := dec.Next()
	assert.Equal(t, io.EOF, err)
}

func TestDecoder1ConstantField(t *testing.T) {
	raw := buildGRIB1Constant(t, 0, 0)
	dec := NewDecoder1(bytes.NewReader(raw))

	msg, err := dec.Next()
	require.NoError(t, err)
	require.Len(t, msg.Fields, 1)

	f := msg.Fields[0]
	assert.Equal(t, 2, f.Grid.Nx())
	assert.Equal(t, 2, f.Grid.Ny())
	require.Len(t, f.Values, 4)
	for _, v := range f.Values {
		assert.InDelta(t, 273.15, v, 1e-3)
	}

	ll, ok := f.Grid.(*grid.LatLonGrid)
	require.True(t, ok)
	assert.Equal(t, int32(1000000), ll.La2)
	assert.Equal(t, uint32(1000000), ll.Di)

	// Temperature translates to discipline 0, category 0, number 0.
	assert.Equal(t, uint8(0), f.Product.Discipline)
	assert.Equal(t, uint8(0), f.Product.Category)
	assert.Equal(t, uint8(0), f.Product.Number)
	assert.Equal(t, 2017, msg.RefTime.Year)
	assert.Equal(t, 60000, msg.RefTime.Time)

	_, err = dec.Next()
	assert.Equal(t, io.EOF, err)
}

func TestDecoder1Resync(t *testing.T) {
	raw := append([]byte("some leading junk"), buildGRIB1Constant(t, 0, 0)...)
	dec := NewDecoder1(bytes.NewReader(raw))
	msg, err := dec.Next()
	require.NoError(t, err)
	assert.Len(t, msg.Fields, 1)
}

func TestDecoder1MissingSentinel(t *testing.T) {
	raw := buildGRIB1Constant(t, 0, 0)
	copy(raw[len(raw)-4:], "xxxx")
	dec := NewDecoder1(bytes.NewReader(raw))
	msg, err := dec.Next()
	require.NoError(t, err)
	require.Len(t, msg.Fields, 1)
	assert.InDelta(t, 273.15, msg.Fields[0].Values[0], 1e-3)
}

func TestTranscode1To2ConstantField(t *testing.T) {
	raw := buildGRIB1Constant(t, 0, 0)
	var out bytes.Buffer
	n, err := Transcode1To2(bytes.NewReader(raw), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The emitted GRIB2 message decodes back to the same field.
	dec := NewDecoder2(bytes.NewReader(out.Bytes()))
	msg, err := dec.Next()
	require.NoError(t, err)
	require.Len(t, msg.Fields, 1)

	f := msg.Fields[0]
	assert.Equal(t, 4, len(f.Values))
	for _, v := range f.Values {
		assert.InDelta(t, 273.15, v, 1e-3)
	}
	assert.Equal(t, 7, msg.Center)
	assert.Equal(t, 2017, msg.RefTime.Year)
	assert.Equal(t, uint8(0), f.Product.Category)
	assert.Equal(t, 0, f.Product.TemplateNumber)
	assert.Equal(t, uint8(1), f.Product.Level1.Type)

	// The last four bytes of the emitted message are the sentinel.
	assert.Equal(t, "7777", string(out.Bytes()[out.Len()-4:]))

	_, err = dec.Next()
	assert.Equal(t, io.EOF, err)
}

func TestTranscode1To2StatisticalEndTime(t *testing.T) {
	// Time range 3 (average) over P1=0..P2=48 hours from 2017-07-10
	// 06:00 must carry an overall end time of 2017-07-12 06:00:00 in
	// product definition template 4.8.
	raw := buildGRIB1Constant(t, 3, 48)
	var out bytes.Buffer
	_, err := Transcode1To2(bytes.NewReader(raw), &out)
	require.NoError(t, err)

	dec := NewDecoder2(bytes.NewReader(out.Bytes()))
	msg, err := dec.Next()
	require.NoError(t, err)
	f := msg.Fields[0]

	assert.Equal(t, 8, f.Product.TemplateNumber)
	st := f.Product.Stat
	require.NotNil(t, st)
	assert.Equal(t, 2017, st.EndYear)
	assert.Equal(t, 7, st.EndMonth)
	assert.Equal(t, 12, st.EndDay)
	assert.Equal(t, 60000, st.EndTime)
	require.Len(t, st.Ranges, 1)
	assert.Equal(t, uint8(0), st.Ranges[0].Process) // average
	assert.Equal(t, uint32(48), st.Ranges[0].Length)
}

func TestCrossEditionRoundTrip(t *testing.T) {
	// 1 -> 2 -> 1: the final GRIB1 message decodes to the original
	// field up to packing quantization.
	raw := buildGRIB1Constant(t, 0, 0)
	var g2 bytes.Buffer
	_, err := Transcode1To2(bytes.NewReader(raw), &g2)
	require.NoError(t, err)

	var g1 bytes.Buffer
	n, err := Transcode2To1(bytes.NewReader(g2.Bytes()), &g1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	dec := NewDecoder1(bytes.NewReader(g1.Bytes()))
	msg, err := dec.Next()
	require.NoError(t, err)
	f := msg.Fields[0]
	require.Len(t, f.Values, 4)
	for _, v := range f.Values {
		assert.InDelta(t, 273.15, v, 1e-2)
	}
	assert.Equal(t, 11, f.Product.G1.Param)
	assert.Equal(t, 1, f.Product.G1.LevelType)
	assert.Equal(t, 2017, msg.RefTime.Year)
}

// buildUnifiedField constructs a GRIB2-shaped message directly, the
// form Decoder2 would produce.
func buildUnifiedField(values []float64, bitmap []bool) *Message {
	g := &grid.LatLonGrid{
		Ni: 2, Nj: 2,
		La1: 0, Lo1: 0,
		La2: 1000000, Lo2: 1000000,
		Di: 1000000, Dj: 1000000,
		EarthShape: 6,
	}
	p := &product.Product{
		TemplateNumber: 0,
		Discipline:     0,
		Category:       0,
		Number:         0,
		GenProcess:     96,
		TimeUnit:       1,
		ForecastTime:   6,
		Level1:         product.Level{Type: 100, Scale: -2, Value: 500},
		Level2:         product.Level{Type: 255},
	}
	pk := &data.Packing{
		Template: data.TemplateSimple,
		R:        250, E: 0, D: 0,
		Width: 8,
	}
	return &Message{
		Edition:   2,
		Center:    7,
		SubCenter: 0,
		RefTime:   RefTime{Year: 2020, Month: 2, Day: 28, Time: 120000, Significance: 1},
		Fields: []*Field{{
			Grid: g, Product: p, Packing: pk,
			Bitmap: bitmap, Values: values,
		}},
	}
}

func TestEncoder1FromGRIB2Product(t *testing.T) {
	values := []float64{250, 251.5, MissingValue, 253}
	bitmap := []bool{true, true, false, true}
	msg := buildUnifiedField(values, bitmap)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder1(&buf).Encode(msg))

	dec := NewDecoder1(&buf)
	got, err := dec.Next()
	require.NoError(t, err)
	f := got.Fields[0]

	// The 500 hPa isobaric level maps back to GRIB1 type 100.
	assert.Equal(t, 100, f.Product.G1.LevelType)
	assert.Equal(t, 500, f.Product.G1.Level1)
	assert.Equal(t, 11, f.Product.G1.Param)
	assert.Equal(t, 0, f.Product.G1.TimeRange)
	assert.Equal(t, 6, f.Product.G1.P1)

	require.Len(t, f.Values, 4)
	assert.InDelta(t, 250.0, f.Values[0], 0.51)
	assert.InDelta(t, 251.5, f.Values[1], 0.51)
	assert.Equal(t, MissingValue, f.Values[2])
	assert.InDelta(t, 253.0, f.Values[3], 0.51)
	require.Len(t, f.Bitmap, 4)
	assert.Equal(t, bitmap, f.Bitmap)
}

func TestEncoder2FromGRIB2Product(t *testing.T) {
	values := []float64{250, 251, 252, 253}
	msg := buildUnifiedField(values, nil)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder2(&buf).Encode(msg))

	dec := NewDecoder2(&buf)
	got, err := dec.Next()
	require.NoError(t, err)
	f := got.Fields[0]

	assert.Equal(t, values, f.Values)
	assert.Equal(t, uint8(100), f.Product.Level1.Type)
	assert.Equal(t, int8(-2), f.Product.Level1.Scale)
	assert.Equal(t, int32(500), f.Product.Level1.Value)
	assert.Equal(t, 6, f.Product.ForecastTime)
	assert.Equal(t, 120000, got.RefTime.Time)
}

func TestEncoder1PackWidthMinimality(t *testing.T) {
	// A field spanning 0..3 in packed space needs exactly 2 bits.
	values := []float64{250, 251, 252, 253}
	msg := buildUnifiedField(values, nil)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder1(&buf).Encode(msg))

	dec := NewDecoder1(&buf)
	got, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, uint8(2), got.Fields[0].Packing.Width)
	assert.Equal(t, values, got.Fields[0].Values)
}

func TestEncoder1ConstantFieldZeroWidth(t *testing.T) {
	values := []float64{250, 250, 250, 250}
	msg := buildUnifiedField(values, nil)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder1(&buf).Encode(msg))

	dec := NewDecoder1(&buf)
	got, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), got.Fields[0].Packing.Width)
	for _, v := range got.Fields[0].Values {
		assert.InDelta(t, 250.0, v, 1e-3)
	}
}

func TestBitmapLaw(t *testing.T) {
	// Encoded GRIB1 output contains no packed value for masked points:
	// the BDS carries exactly three 2-bit values plus its header.
	values := []float64{250, 251, MissingValue, 253}
	bitmap := []bool{true, true, false, true}
	msg := buildUnifiedField(values, bitmap)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder1(&buf).Encode(msg))
	raw := buf.Bytes()

	// Locate the BDS: IS(8) + PDS(28) + GDS(32) + BMS(7).
	bdsOff := 8 + 28 + 32 + 7
	bdsLen := int(raw[bdsOff])<<16 | int(raw[bdsOff+1])<<8 | int(raw[bdsOff+2])
	// 11 header bytes + ceil(3 values * 2 bits / 8) = 12.
	assert.Equal(t, 12, bdsLen)
}

func TestTranscode2To1MultipleMessages(t *testing.T) {
	var g2 bytes.Buffer
	enc := NewEncoder2(&g2)
	require.NoError(t, enc.Encode(buildUnifiedField([]float64{251, 252, 253, 254}, nil)))
	require.NoError(t, enc.Encode(buildUnifiedField([]float64{255, 256, 257, 258}, nil)))

	var g1 bytes.Buffer
	n, err := Transcode2To1(&g2, &g1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dec := NewDecoder1(&g1)
	for i := 0; i < 2; i++ {
		_, err := dec.Next()
		require.NoError(t, err)
	}
	_, err = dec.Next()
	assert.Equal(t, io.EOF, err)
}
