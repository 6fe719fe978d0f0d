package section

import (
	"fmt"

	"github.com/mmp/regrib/internal"
	"github.com/mmp/regrib/product"
)

// Section4 is the GRIB2 Product Definition Section. The template
// decoding lives in the product package; this file handles the
// framing.
type Section4 struct {
	Length         uint32
	TemplateNumber uint16
	Product        *product.Product
}

// ParseSection4 parses the GRIB2 Product Definition Section.
func ParseSection4(sec []byte) (*Section4, error) {
	if len(sec) < 9 {
		return nil, fmt.Errorf("section 4 must be at least 9 bytes, got %d", len(sec))
	}
	r := internal.NewReader(sec)
	length, _ := r.Uint32()
	num, _ := r.Uint8()
	if num != 4 {
		return nil, fmt.Errorf("expected section 4, got section %d", num)
	}
	if int(length) > len(sec) {
		return nil, fmt.Errorf("section 4 declares %d bytes, have %d", length, len(sec))
	}
	p, err := product.ParsePDS2(sec[:length])
	if err != nil {
		return nil, err
	}
	return &Section4{
		Length:         length,
		TemplateNumber: uint16(p.TemplateNumber),
		Product:        p,
	}, nil
}
