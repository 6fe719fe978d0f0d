package regrib

import (
	"io"

	"github.com/pkg/errors"
)

// Transcode1To2 reads GRIB edition-1 messages from r and writes their
// GRIB edition-2 form to w. Returns the number of messages converted.
//
// Decode warnings (resync, missing end section, unmapped parameters)
// do not stop the stream; any encoder error does.
func Transcode1To2(r io.Reader, w io.Writer, opts ...Option) (int, error) {
	dec := NewDecoder1(r, opts...)
	enc := NewEncoder2(w)
	return transcode(func() (*Message, error) { return dec.Next() }, enc.Encode)
}

// Transcode2To1 reads GRIB edition-2 messages from r and writes their
// GRIB edition-1 form to w. Each grid of a multi-grid message becomes
// its own GRIB1 message. Returns the number of messages converted.
func Transcode2To1(r io.Reader, w io.Writer, opts ...Option) (int, error) {
	dec := NewDecoder2(r, opts...)
	enc := NewEncoder1(w)
	return transcode(func() (*Message, error) { return dec.Next() }, enc.Encode)
}

func transcode(next func() (*Message, error), encode func(*Message) error) (int, error) {
	n := 0
	for {
		msg, err := next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrapf(err, "reading message %d", n+1)
		}
		if err := encode(msg); err != nil {
			return n, errors.Wrapf(err, "converting message %d", n+1)
		}
		n++
	}
}
