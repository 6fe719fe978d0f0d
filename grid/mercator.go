package grid

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// MercatorGrid is a Mercator projection grid (GRIB1 data representation
// 1, GRIB2 template 3.10).
type MercatorGrid struct {
	Ni           uint32
	Nj           uint32
	La1          int32 // latitude of first grid point (microdegrees)
	Lo1          int32 // longitude of first grid point (microdegrees)
	ResFlags     uint8
	La2          int32 // latitude of last grid point (microdegrees)
	Lo2          int32 // longitude of last grid point (microdegrees)
	LaD          int32 // latitude where the projection intersects the earth (microdegrees)
	ScanningMode uint8
	Dx           uint32 // i direction grid length (millimetres)
	Dy           uint32 // j direction grid length (millimetres)
	EarthShape   uint8
}

func parseMercatorGDS1(gds []byte) (Grid, error) {
	br := internal.NewBitReaderAt(gds, 48)

	var g MercatorGrid
	var err error
	g.Ni, _ = br.ReadBits(16)
	g.Nj, _ = br.ReadBits(16)
	if g.La1, err = readAngle1(br); err != nil {
		return nil, err
	}
	g.Lo1, _ = readAngle1(br)
	rc, _ := br.ReadBits(8)
	g.La2, _ = readAngle1(br)
	g.Lo2, _ = readAngle1(br)
	g.LaD, _ = readAngle1(br)
	br.Skip(8) // reserved
	scan, _ := br.ReadBits(8)
	dx, _ := br.ReadBits(24)
	dy, err := br.ReadBits(24)
	if err != nil {
		return nil, err
	}

	g.ResFlags = resFlagsFromGRIB1(uint8(rc))
	g.EarthShape = earthShapeFromGRIB1(uint8(rc))
	g.ScanningMode = uint8(scan)
	g.Dx = dx * 1000 // metres to millimetres
	g.Dy = dy * 1000
	return &g, nil
}

func parseMercatorTemplate(body []byte) (Grid, error) {
	if len(body) < 58 {
		return nil, fmt.Errorf("Mercator template requires 58 bytes, got %d", len(body))
	}
	r := internal.NewReader(body)

	var g MercatorGrid
	g.EarthShape, _ = r.Uint8()
	r.Skip(15)
	g.Ni, _ = r.Uint32()
	g.Nj, _ = r.Uint32()
	g.La1, _ = readAngle2(r)
	g.Lo1, _ = readAngle2(r)
	g.ResFlags, _ = r.Uint8()
	g.LaD, _ = readAngle2(r)
	g.La2, _ = readAngle2(r)
	g.Lo2, _ = readAngle2(r)
	g.ScanningMode, _ = r.Uint8()
	r.Skip(4) // orientation of the grid
	g.Dx, _ = r.Uint32()
	dy, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	g.Dy = dy
	return &g, nil
}

// TemplateNumber returns 10 for Mercator grids.
func (g *MercatorGrid) TemplateNumber() int { return Template2Mercator }

// DataRepresentation returns 1 for Mercator grids.
func (g *MercatorGrid) DataRepresentation() int { return Rep1Mercator }

// Nx returns the number of points along a parallel.
func (g *MercatorGrid) Nx() int { return int(g.Ni) }

// Ny returns the number of points along a meridian.
func (g *MercatorGrid) Ny() int { return int(g.Nj) }

// NumPoints returns the total number of grid points.
func (g *MercatorGrid) NumPoints() int { return int(g.Ni) * int(g.Nj) }

// Section3Length returns the GRIB2 section length for template 3.10.
func (g *MercatorGrid) Section3Length() int { return 72 }

// AppendTemplate writes the template 3.10 octets.
func (g *MercatorGrid) AppendTemplate(w *internal.BitWriter) error {
	if err := appendEarthShape(w, g.EarthShape); err != nil {
		return err
	}
	w.WriteBits(g.Ni, 32)
	w.WriteBits(g.Nj, 32)
	writeAngle2(w, g.La1)
	writeAngle2(w, g.Lo1)
	w.WriteBits(uint32(g.ResFlags), 8)
	writeAngle2(w, g.LaD)
	writeAngle2(w, g.La2)
	writeAngle2(w, g.Lo2)
	w.WriteBits(uint32(g.ScanningMode), 8)
	w.WriteBits(0, 32) // orientation of the grid
	w.WriteBits(g.Dx, 32)
	return w.WriteBits(g.Dy, 32)
}

// GDS1Length returns the GRIB1 section length for a Mercator grid.
func (g *MercatorGrid) GDS1Length() int { return 42 }

// AppendGDS1 writes the GRIB1 Grid Description Section for the grid.
func (g *MercatorGrid) AppendGDS1(w *internal.BitWriter) error {
	start := w.Offset()
	w.WriteBits(uint32(g.GDS1Length()), 24)
	w.WriteBits(255, 8) // NV
	w.WriteBits(255, 8) // PV
	w.WriteBits(Rep1Mercator, 8)
	w.WriteBits(g.Ni, 16)
	w.WriteBits(g.Nj, 16)
	writeAngle1(w, g.La1)
	writeAngle1(w, g.Lo1)
	w.WriteBits(uint32(resFlagsToGRIB1(g.ResFlags, g.EarthShape)), 8)
	writeAngle1(w, g.La2)
	writeAngle1(w, g.Lo2)
	writeAngle1(w, g.LaD)
	w.WriteBits(0, 8) // reserved
	w.WriteBits(uint32(g.ScanningMode), 8)
	w.WriteBits(g.Dx/1000, 24)
	w.WriteBits(g.Dy/1000, 24)
	// Pad the remainder of the section with zeros.
	w.SetOffset(start + g.GDS1Length()*8)
	return nil
}

// String returns a human-readable description of the grid.
func (g *MercatorGrid) String() string {
	return fmt.Sprintf("Mercator grid: %d x %d points (%.3f, %.3f) to (%.3f, %.3f)",
		g.Ni, g.Nj, degrees(g.La1), degrees(g.Lo1), degrees(g.La2), degrees(g.Lo2))
}
