package regrib

import "github.com/mmp/regrib/data"

// Option configures a decoder or transcoder.
type Option func(*config)

// config holds decoder configuration.
type config struct {
	jpeg2000 data.JPEG2000Decoder
}

func makeConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithJPEG2000 wires an external JPEG-2000 decoder into the GRIB2
// decoder, enabling data representation templates 5.40 and 40000.
// Without one, messages using those templates fail to decode.
//
// Example:
//
//	dec := regrib.NewDecoder2(r, regrib.WithJPEG2000(openjpeg.Decode))
func WithJPEG2000(dec data.JPEG2000Decoder) Option {
	return func(c *config) {
		c.jpeg2000 = dec
	}
}
