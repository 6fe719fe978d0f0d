package section

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// Section2 is the GRIB2 Local Use Section. Its contents are opaque and
// skipped; only the framing is checked.
type Section2 struct {
	Length uint32
	Data   []byte
}

// ParseSection2 parses the Local Use Section.
func ParseSection2(sec []byte) (*Section2, error) {
	if len(sec) < 5 {
		return nil, fmt.Errorf("section 2 must be at least 5 bytes, got %d", len(sec))
	}
	r := internal.NewReader(sec)
	length, _ := r.Uint32()
	num, _ := r.Uint8()
	if num != 2 {
		return nil, fmt.Errorf("expected section 2, got section %d", num)
	}
	if int(length) > len(sec) {
		return nil, fmt.Errorf("section 2 declares %d bytes, have %d", length, len(sec))
	}
	return &Section2{Length: length, Data: sec[5:length]}, nil
}
