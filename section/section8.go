package section

import "github.com/mmp/regrib/internal"

// Sentinel is the four-octet End Section closing every GRIB message
// in both editions.
const Sentinel = "7777"

// IsSentinel reports whether b starts with the End Section.
func IsSentinel(b []byte) bool {
	return len(b) >= 4 && string(b[0:4]) == Sentinel
}

// AppendSentinel writes the End Section.
func AppendSentinel(w *internal.BitWriter) error {
	var err error
	for _, c := range []byte(Sentinel) {
		err = w.WriteBits(uint32(c), 8)
	}
	return err
}
