package data

import "fmt"

// JPEG2000Decoder decodes a JPEG-2000 grayscale code stream into dst,
// which is sized to exactly nx*ny samples. The codec itself is external
// to this module; wire one up with regrib.WithJPEG2000. Implementations
// must be safe for concurrent use or externally serialized.
type JPEG2000Decoder func(codestream []byte, dst []int32) error

// UnpackJPEG2000 decodes gridpoints packed with Data Representation
// Template 5.40 (or the pre-standard 40000): the Data Section body is a
// JPEG-2000 code stream whose grayscale samples are the packed values.
//
// An empty code stream is a constant field: every present point unpacks
// as the reference value.
func (p *Packing) UnpackJPEG2000(codestream []byte, dec JPEG2000Decoder, bitmap []bool, dst []float64) error {
	if dec == nil {
		return fmt.Errorf("no JPEG-2000 decoder configured")
	}

	jvals := make([]int32, len(dst))
	if len(codestream) > 0 {
		if err := dec(codestream, jvals); err != nil {
			return fmt.Errorf("JPEG-2000 decode: %w", err)
		}
	}

	e := p.BinaryFactor()
	d := p.DecimalFactor()
	cnt := 0
	for i := range dst {
		if bitmap != nil && !bitmap[i] {
			dst[i] = MissingValue
			continue
		}
		dst[i] = p.R + float64(jvals[cnt])*e/d
		cnt++
	}
	return nil
}
