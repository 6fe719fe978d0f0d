package grid

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// LambertConformalGrid is a Lambert conformal projection grid (GRIB1
// data representation 3, GRIB2 template 3.30). The GRIB1 layout shares
// its leading fields with the polar stereographic section and appends
// the two standard parallels.
type LambertConformalGrid struct {
	PolarStereoGrid
	Latin1 int32 // first standard parallel (microdegrees)
	Latin2 int32 // second standard parallel (microdegrees)
	SPLat  int32 // latitude of the southern pole of projection (microdegrees)
	SPLon  int32 // longitude of the southern pole of projection (microdegrees)
}

func parseLambertTemplate(body []byte) (Grid, error) {
	if len(body) < 67 {
		return nil, fmt.Errorf("Lambert conformal template requires 67 bytes, got %d", len(body))
	}
	r := internal.NewReader(body)

	var g LambertConformalGrid
	g.EarthShape, _ = r.Uint8()
	r.Skip(15)
	g.NxPoints, _ = r.Uint32()
	g.NyPoints, _ = r.Uint32()
	g.La1, _ = readAngle2(r)
	g.Lo1, _ = readAngle2(r)
	g.ResFlags, _ = r.Uint8()
	g.LaD, _ = readAngle2(r)
	g.LoV, _ = readAngle2(r)
	g.Dx, _ = r.Uint32()
	g.Dy, _ = r.Uint32()
	g.Proj, _ = r.Uint8()
	g.ScanningMode, _ = r.Uint8()
	g.Latin1, _ = readAngle2(r)
	g.Latin2, _ = readAngle2(r)
	g.SPLat, _ = readAngle2(r)
	splon, err := readAngle2(r)
	if err != nil {
		return nil, err
	}
	g.SPLon = splon
	return &g, nil
}

// TemplateNumber returns 30 for Lambert conformal grids.
func (g *LambertConformalGrid) TemplateNumber() int { return Template2Lambert }

// DataRepresentation returns 3 for Lambert conformal grids.
func (g *LambertConformalGrid) DataRepresentation() int { return Rep1Lambert }

// Section3Length returns the GRIB2 section length for template 3.30.
func (g *LambertConformalGrid) Section3Length() int { return 81 }

// AppendTemplate writes the template 3.30 octets.
func (g *LambertConformalGrid) AppendTemplate(w *internal.BitWriter) error {
	if err := appendEarthShape(w, g.EarthShape); err != nil {
		return err
	}
	w.WriteBits(g.NxPoints, 32)
	w.WriteBits(g.NyPoints, 32)
	writeAngle2(w, g.La1)
	writeAngle2(w, g.Lo1)
	w.WriteBits(uint32(g.ResFlags), 8)
	writeAngle2(w, g.LaD)
	writeAngle2(w, g.LoV)
	w.WriteBits(g.Dx, 32)
	w.WriteBits(g.Dy, 32)
	w.WriteBits(uint32(g.Proj), 8)
	w.WriteBits(uint32(g.ScanningMode), 8)
	writeAngle2(w, g.Latin1)
	writeAngle2(w, g.Latin2)
	writeAngle2(w, g.SPLat)
	return writeAngle2(w, g.SPLon)
}

// GDS1Length returns the GRIB1 section length for a Lambert conformal
// grid.
func (g *LambertConformalGrid) GDS1Length() int { return 42 }

// AppendGDS1 writes the GRIB1 Grid Description Section for the grid.
func (g *LambertConformalGrid) AppendGDS1(w *internal.BitWriter) error {
	start := w.Offset()
	w.WriteBits(uint32(g.GDS1Length()), 24)
	w.WriteBits(255, 8) // NV
	w.WriteBits(255, 8) // PV
	w.WriteBits(Rep1Lambert, 8)
	g.appendConicGDS1(w)
	writeAngle1(w, g.Latin1)
	writeAngle1(w, g.Latin2)
	writeAngle1(w, g.SPLat)
	writeAngle1(w, g.SPLon)
	w.WriteBits(0, 16) // reserved
	w.SetOffset(start + g.GDS1Length()*8)
	return nil
}

// String returns a human-readable description of the grid.
func (g *LambertConformalGrid) String() string {
	return fmt.Sprintf("Lambert conformal grid: %d x %d points, parallels %.3f/%.3f",
		g.NxPoints, g.NyPoints, degrees(g.Latin1), degrees(g.Latin2))
}
