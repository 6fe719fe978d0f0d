package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmp/regrib/internal"
)

func emitPDS2(t *testing.T, p *Product) []byte {
	t.Helper()
	length, err := p.PDS2Length()
	require.NoError(t, err)
	buf := make([]byte, length)
	w := internal.NewBitWriter(buf)
	require.NoError(t, p.AppendPDS2(w))
	require.Equal(t, length*8, w.Offset())
	return buf
}

func TestPDS2Template0RoundTrip(t *testing.T) {
	p := &Product{
		TemplateNumber: 0,
		Category:       0,
		Number:         0,
		GenProcess:     96,
		TimeUnit:       1,
		ForecastTime:   6,
		Level1:         Level{Type: 100, Scale: -2, Value: 500},
		Level2:         Level{Type: 255, Scale: -1, Value: 0},
	}
	got, err := ParsePDS2(emitPDS2(t, p))
	require.NoError(t, err)

	assert.Equal(t, 0, got.TemplateNumber)
	assert.Equal(t, p.Category, got.Category)
	assert.Equal(t, p.Number, got.Number)
	assert.Equal(t, p.TimeUnit, got.TimeUnit)
	assert.Equal(t, p.ForecastTime, got.ForecastTime)
	assert.Equal(t, p.Level1, got.Level1)
	assert.Equal(t, p.Level2.Type, got.Level2.Type)
}

func TestPDS2Template8RoundTrip(t *testing.T) {
	p := &Product{
		TemplateNumber: 8,
		Category:       1,
		Number:         8,
		TimeUnit:       1,
		ForecastTime:   0,
		Level1:         Level{Type: 1},
		Level2:         Level{Type: 255},
		Stat: &Statistical{
			EndYear: 2017, EndMonth: 7, EndDay: 12, EndTime: 60000,
			Ranges: []TimeRangeSpec{{
				Process: 1, IncrType: 2, TimeUnit: 1, Length: 48, IncrUnit: 1,
			}},
		},
	}
	got, err := ParsePDS2(emitPDS2(t, p))
	require.NoError(t, err)

	assert.Equal(t, 8, got.TemplateNumber)
	require.NotNil(t, got.Stat)
	assert.Equal(t, 2017, got.Stat.EndYear)
	assert.Equal(t, 7, got.Stat.EndMonth)
	assert.Equal(t, 12, got.Stat.EndDay)
	assert.Equal(t, 60000, got.Stat.EndTime)
	require.Len(t, got.Stat.Ranges, 1)
	assert.Equal(t, p.Stat.Ranges[0], got.Stat.Ranges[0])
}

func TestPDS2NegativeLevelValue(t *testing.T) {
	p := &Product{
		TemplateNumber: 0,
		Level1:         Level{Type: 102, Scale: 0, Value: -350},
		Level2:         Level{Type: 255},
	}
	got, err := ParsePDS2(emitPDS2(t, p))
	require.NoError(t, err)
	assert.Equal(t, int32(-350), got.Level1.Value)
}

func TestPDS2UnsupportedTemplate(t *testing.T) {
	buf := make([]byte, 12)
	w := internal.NewBitWriter(buf)
	w.WriteBits(12, 32)
	w.WriteBits(4, 8)
	w.WriteBits(0, 16)
	w.WriteBits(7, 16) // probability forecast
	_, err := ParsePDS2(buf)
	assert.Error(t, err)
}

func TestPDS2HybridCoordinatesRejected(t *testing.T) {
	buf := make([]byte, 12)
	w := internal.NewBitWriter(buf)
	w.WriteBits(12, 32)
	w.WriteBits(4, 8)
	w.WriteBits(3, 16) // coordinate values present
	w.WriteBits(0, 16)
	_, err := ParsePDS2(buf)
	assert.Error(t, err)
}

func TestPDS1RoundTrip(t *testing.T) {
	p := &PDS1{
		Length:       28,
		TableVersion: 3,
		Center:       7,
		GenProcess:   96,
		GridID:       255,
		HasGDS:       true,
		HasBMS:       true,
		Param:        11,
		LevelType:    100,
		Level1:       500,
		Year:         2017, Month: 7, Day: 10,
		Time:     600,
		TimeUnit: 1,
		P1:       0, P2: 48,
		TimeRange:    4,
		NumInAverage: 0,
		NumMissing:   0,
		SubCenter:    0,
		D:            -1,
	}
	buf := make([]byte, 28)
	w := internal.NewBitWriter(buf)
	require.NoError(t, p.AppendPDS1(w))

	got, next, err := ParsePDS1(buf, 0, 1, func(string, ...interface{}) {})
	require.NoError(t, err)
	assert.Equal(t, 28*8, next)
	assert.Equal(t, p, got)
}

func TestPDS1TwoLevelValues(t *testing.T) {
	p := &PDS1{
		Length:       28,
		TableVersion: 3,
		Center:       7,
		HasGDS:       true,
		Param:        61,
		LevelType:    112, // layer below ground: two 8-bit values
		Level1:       0,
		Level2:       10,
		Year:         2000, Month: 1, Day: 1,
		TimeRange: 4,
	}
	buf := make([]byte, 28)
	w := internal.NewBitWriter(buf)
	require.NoError(t, p.AppendPDS1(w))

	got, _, err := ParsePDS1(buf, 0, 1, func(string, ...interface{}) {})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Level1)
	assert.Equal(t, 10, got.Level2)
}

func TestPDS1Extension(t *testing.T) {
	p := &PDS1{
		Length:       43,
		TableVersion: 3,
		Center:       7,
		HasGDS:       true,
		Param:        11,
		LevelType:    1,
		Year:         2010, Month: 6, Day: 15,
	}
	buf := make([]byte, 43)
	w := internal.NewBitWriter(buf)
	require.NoError(t, p.AppendPDS1(w))
	// Extension octets 41-43.
	buf[40], buf[41], buf[42] = 1, 2, 30

	got, next, err := ParsePDS1(buf, 0, 1, func(string, ...interface{}) {})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 30}, got.Extension)
	assert.Equal(t, 43*8, next)
}
