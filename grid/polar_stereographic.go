package grid

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// PolarStereoGrid is a polar stereographic projection grid (GRIB1 data
// representation 5, GRIB2 template 3.20).
type PolarStereoGrid struct {
	NxPoints     uint32
	NyPoints     uint32
	La1          int32 // latitude of first grid point (microdegrees)
	Lo1          int32 // longitude of first grid point (microdegrees)
	ResFlags     uint8
	LaD          int32  // latitude where Dx and Dy are valid (microdegrees)
	LoV          int32  // orientation longitude (microdegrees)
	Dx           uint32 // i direction grid length (millimetres)
	Dy           uint32 // j direction grid length (millimetres)
	Proj         uint8  // projection center flag
	ScanningMode uint8
	EarthShape   uint8
}

// parseConicGDS1 handles the shared GRIB1 layout of the polar
// stereographic and Lambert conformal sections; the Lambert form adds
// its two standard parallels at the end.
func parseConicGDS1(gds []byte, rep int) (Grid, error) {
	br := internal.NewBitReaderAt(gds, 48)

	var g PolarStereoGrid
	var err error
	g.NxPoints, _ = br.ReadBits(16)
	g.NyPoints, _ = br.ReadBits(16)
	if g.La1, err = readAngle1(br); err != nil {
		return nil, err
	}
	g.Lo1, _ = readAngle1(br)
	rc, _ := br.ReadBits(8)
	g.LoV, _ = readAngle1(br)
	dx, _ := br.ReadBits(24)
	dy, _ := br.ReadBits(24)
	proj, _ := br.ReadBits(8)
	scan, err := br.ReadBits(8)
	if err != nil {
		return nil, err
	}

	g.ResFlags = resFlagsFromGRIB1(uint8(rc))
	g.EarthShape = earthShapeFromGRIB1(uint8(rc))
	g.Dx = dx * 1000
	g.Dy = dy * 1000
	g.Proj = uint8(proj)
	g.ScanningMode = uint8(scan)
	g.LaD = 40000000
	if g.Proj == 1 {
		g.LaD = -g.LaD
	}

	if rep == Rep1PolarStereo {
		return &g, nil
	}

	lg := &LambertConformalGrid{PolarStereoGrid: g}
	if lg.Latin1, err = readAngle1(br); err != nil {
		return nil, err
	}
	if lg.Latin2, err = readAngle1(br); err != nil {
		return nil, err
	}
	return lg, nil
}

func parsePolarStereoTemplate(body []byte) (Grid, error) {
	if len(body) < 51 {
		return nil, fmt.Errorf("polar stereographic template requires 51 bytes, got %d", len(body))
	}
	r := internal.NewReader(body)

	var g PolarStereoGrid
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
	scan, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	g.ScanningMode = scan
	return &g, nil
}

// TemplateNumber returns 20 for polar stereographic grids.
func (g *PolarStereoGrid) TemplateNumber() int { return Template2PolarStereo }

// DataRepresentation returns 5 for polar stereographic grids.
func (g *PolarStereoGrid) DataRepresentation() int { return Rep1PolarStereo }

// Nx returns the number of points in the x direction.
func (g *PolarStereoGrid) Nx() int { return int(g.NxPoints) }

// Ny returns the number of points in the y direction.
func (g *PolarStereoGrid) Ny() int { return int(g.NyPoints) }

// NumPoints returns the total number of grid points.
func (g *PolarStereoGrid) NumPoints() int { return int(g.NxPoints) * int(g.NyPoints) }

// Section3Length returns the GRIB2 section length for template 3.20.
func (g *PolarStereoGrid) Section3Length() int { return 65 }

// AppendTemplate writes the template 3.20 octets.
func (g *PolarStereoGrid) AppendTemplate(w *internal.BitWriter) error {
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
	return w.WriteBits(uint32(g.ScanningMode|0x10), 8)
}

// GDS1Length returns the GRIB1 section length for a polar
// stereographic grid.
func (g *PolarStereoGrid) GDS1Length() int { return 32 }

// AppendGDS1 writes the GRIB1 Grid Description Section for the grid.
func (g *PolarStereoGrid) AppendGDS1(w *internal.BitWriter) error {
	start := w.Offset()
	w.WriteBits(uint32(g.GDS1Length()), 24)
	w.WriteBits(255, 8) // NV
	w.WriteBits(255, 8) // PV
	w.WriteBits(Rep1PolarStereo, 8)
	g.appendConicGDS1(w)
	w.SetOffset(start + g.GDS1Length()*8)
	return nil
}

func (g *PolarStereoGrid) appendConicGDS1(w *internal.BitWriter) {
	w.WriteBits(g.NxPoints, 16)
	w.WriteBits(g.NyPoints, 16)
	writeAngle1(w, g.La1)
	writeAngle1(w, g.Lo1)
	w.WriteBits(uint32(resFlagsToGRIB1(g.ResFlags, g.EarthShape)), 8)
	writeAngle1(w, g.LoV)
	w.WriteBits(g.Dx/1000, 24)
	w.WriteBits(g.Dy/1000, 24)
	w.WriteBits(uint32(g.Proj), 8)
	w.WriteBits(uint32(g.ScanningMode), 8)
}

// String returns a human-readable description of the grid.
func (g *PolarStereoGrid) String() string {
	return fmt.Sprintf("Polar stereographic grid: %d x %d points, orientation %.3f",
		g.NxPoints, g.NyPoints, degrees(g.LoV))
}
