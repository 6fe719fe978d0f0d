// Package grid provides the grid geometry variants shared by both GRIB
// editions. Each variant knows its GRIB1 Grid Description Section layout
// and its GRIB2 grid definition template, in both directions.
//
// Angles are stored in signed microdegrees (the GRIB2 resolution; GRIB1
// millidegrees convert exactly on read). Projection grid lengths are
// stored in millimetres for the same reason.
package grid

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// GRIB1 data representation types (Code Table 6).
const (
	Rep1LatLon        = 0
	Rep1Mercator      = 1
	Rep1Lambert       = 3
	Rep1Gaussian      = 4
	Rep1PolarStereo   = 5
	Rep1RotatedLatLon = 10
)

// GRIB2 grid definition template numbers (Code Table 3.1).
const (
	Template2LatLon        = 0
	Template2RotatedLatLon = 1
	Template2Mercator      = 10
	Template2PolarStereo   = 20
	Template2Lambert       = 30
	Template2Gaussian      = 40
)

// Grid is a grid geometry variant. Implementations carry the template
// fields of both wire formats and can emit either.
type Grid interface {
	// TemplateNumber returns the GRIB2 grid definition template number.
	TemplateNumber() int

	// DataRepresentation returns the GRIB1 data representation type.
	DataRepresentation() int

	// Nx and Ny return the point counts in the i and j directions.
	Nx() int
	Ny() int

	// NumPoints returns Nx*Ny.
	NumPoints() int

	// Section3Length returns the byte length of the GRIB2 Grid
	// Definition Section for this variant.
	Section3Length() int

	// AppendTemplate writes the GRIB2 template octets (section octet 15
	// onward) to w.
	AppendTemplate(w *internal.BitWriter) error

	// GDS1Length returns the byte length of the GRIB1 Grid Description
	// Section for this variant.
	GDS1Length() int

	// AppendGDS1 writes the complete GRIB1 Grid Description Section
	// to w.
	AppendGDS1(w *internal.BitWriter) error

	// String returns a human-readable description of the grid.
	String() string
}

// ParseGDS1 parses a GRIB1 Grid Description Section (the full section
// bytes, starting at its 24-bit length) into a grid variant.
func ParseGDS1(gds []byte) (Grid, error) {
	br := internal.NewBitReaderAt(gds, 40)
	rep, err := br.ReadBits(8)
	if err != nil {
		return nil, err
	}

	switch rep {
	case Rep1LatLon, Rep1Gaussian, Rep1RotatedLatLon:
		return parseLatLonGDS1(gds, int(rep))
	case Rep1Mercator:
		return parseMercatorGDS1(gds)
	case Rep1Lambert, Rep1PolarStereo:
		return parseConicGDS1(gds, int(rep))
	default:
		return nil, fmt.Errorf("grid data representation type %d is not supported", rep)
	}
}

// ParseTemplate parses a GRIB2 grid definition template body (section
// octet 15 onward) into a grid variant.
func ParseTemplate(templateNumber int, body []byte) (Grid, error) {
	switch templateNumber {
	case Template2LatLon:
		return parseLatLonTemplate(body, false)
	case Template2Gaussian:
		return parseLatLonTemplate(body, true)
	case Template2Mercator:
		return parseMercatorTemplate(body)
	case Template2PolarStereo:
		return parsePolarStereoTemplate(body)
	case Template2Lambert:
		return parseLambertTemplate(body)
	default:
		return nil, fmt.Errorf("grid template %d is not supported", templateNumber)
	}
}

// Resolution-and-component flag translation between the editions. GRIB1
// packs direction-increments-given in bit 0x80 and the uv-relative flag
// in 0x08; GRIB2 splits the former across bits 0x20 and 0x10.

// resFlagsFromGRIB1 converts a GRIB1 resolution/component octet to the
// GRIB2 flag layout.
func resFlagsFromGRIB1(rc uint8) uint8 {
	return ((rc & 0x80) >> 2) | ((rc & 0x80) >> 3) | (rc & 0x0f)
}

// resFlagsToGRIB1 converts GRIB2 resolution flags plus the earth shape
// back to the GRIB1 octet.
func resFlagsToGRIB1(rc uint8, earthShape uint8) uint8 {
	var out uint8
	if rc&0x20 == 0x20 {
		out |= 0x80
	}
	if earthShape == 2 {
		out |= 0x40
	}
	if rc&0x08 == 0x08 {
		out |= 0x08
	}
	return out
}

// earthShapeFromGRIB1 derives the GRIB2 earth shape code from the GRIB1
// resolution/component octet: oblate spheroid when flagged, otherwise
// the standard sphere.
func earthShapeFromGRIB1(rc uint8) uint8 {
	if rc&0x40 == 0x40 {
		return 2
	}
	return 6
}

// appendEarthShape writes the earth shape octet and the six unused
// scale/value fields that follow it in every GRIB2 grid template.
func appendEarthShape(w *internal.BitWriter, shape uint8) error {
	if err := w.WriteBits(uint32(shape), 8); err != nil {
		return err
	}
	// Radius and axis scale factors and values are not used; a standard
	// shape code carries the geometry.
	w.Skip(8 + 32 + 8 + 32 + 8 + 32)
	return nil
}

// readAngle1 reads a GRIB1 sign+23-bit millidegree angle and returns
// microdegrees.
func readAngle1(br *internal.BitReader) (int32, error) {
	v, err := br.ReadSignMagnitude(24)
	if err != nil {
		return 0, err
	}
	return v * 1000, nil
}

// writeAngle1 writes a microdegree angle as a GRIB1 sign+23-bit
// millidegree field, truncating toward zero.
func writeAngle1(w *internal.BitWriter, microdeg int32) error {
	return w.WriteSignMagnitude(microdeg/1000, 24)
}

// readAngle2 reads a GRIB2 sign+31-bit microdegree angle.
func readAngle2(r *internal.Reader) (int32, error) {
	return r.Int32()
}

// writeAngle2 writes a microdegree angle as a GRIB2 sign+31-bit field.
func writeAngle2(w *internal.BitWriter, microdeg int32) error {
	return w.WriteSignMagnitude(microdeg, 32)
}

func degrees(microdeg int32) float64 {
	return float64(microdeg) / 1e6
}
