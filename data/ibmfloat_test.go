package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIBMToFloatKnownValues(t *testing.T) {
	// 0x42640000 is 100.0: exponent 0x42 (66), fraction 0x640000.
	assert.InDelta(t, 100.0, IBMToFloat(0x42640000), 1e-9)
	// Sign bit flips it.
	assert.InDelta(t, -100.0, IBMToFloat(0xC2640000), 1e-9)
	assert.Equal(t, 0.0, IBMToFloat(0))
	// 0x41100000 is 1.0.
	assert.InDelta(t, 1.0, IBMToFloat(0x41100000), 1e-9)
}

func TestFloatToIBMZero(t *testing.T) {
	assert.Equal(t, uint32(0), FloatToIBM(0))
}

func TestIBMBitPatternRoundTrip(t *testing.T) {
	// Encoding a decoded pattern reproduces the pattern for normalized
	// values.
	patterns := []uint32{
		0x41100000, // 1.0
		0x42640000, // 100.0
		0xC2640000, // -100.0
		0x3F100000, // small positive
		0x46FFFFFF, // large fraction
	}
	for _, bits := range patterns {
		f := IBMToFloat(bits)
		got := FloatToIBM(f)
		assert.Equalf(t, bits, got, "pattern %08x decoded to %g", bits, f)
	}
}

func TestFloatRoundTripError(t *testing.T) {
	// ieee -> ibm -> ieee is accurate to a relative 2^-20.
	for _, v := range []float64{273.15, -1013.25, 0.00001, 99999.0, 2.5e-3} {
		bits := FloatToIBM(v)
		back := IBMToFloat(bits)
		require.InEpsilon(t, v, back, math.Pow(2, -20))
	}
}
