package grid

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// LatLonGrid is a regular latitude/longitude grid (GRIB1 data
// representation 0, GRIB2 template 3.0): constant spacing in latitude
// and longitude between the two corner points.
type LatLonGrid struct {
	Ni           uint32 // points along a parallel
	Nj           uint32 // points along a meridian
	La1          int32  // latitude of first grid point (microdegrees)
	Lo1          int32  // longitude of first grid point (microdegrees)
	ResFlags     uint8  // resolution and component flags (Table 3.3 layout)
	La2          int32  // latitude of last grid point (microdegrees)
	Lo2          int32  // longitude of last grid point (microdegrees)
	Di           uint32 // i direction increment (microdegrees)
	Dj           uint32 // j direction increment (microdegrees)
	ScanningMode uint8  // scanning mode flags (Table 3.4)
	EarthShape   uint8  // shape of the earth (Table 3.2)
}

// GaussianGrid is a Gaussian latitude/longitude grid (GRIB1 type 4,
// GRIB2 template 3.40). The j direction is described by the number of
// parallels between a pole and the equator instead of an increment.
type GaussianGrid struct {
	LatLonGrid
	NumParallels uint32
}

// RotatedLatLonGrid is a rotated latitude/longitude grid (GRIB1 type
// 10). Its GRIB1 section layout matches the regular lat/lon grid; there
// is no GRIB2 writer for it here.
type RotatedLatLonGrid struct {
	LatLonGrid
}

func parseLatLonGDS1(gds []byte, rep int) (Grid, error) {
	br := internal.NewBitReaderAt(gds, 48)

	var g LatLonGrid
	ni, err := br.ReadBits(16)
	if err != nil {
		return nil, err
	}
	nj, _ := br.ReadBits(16)
	g.Ni, g.Nj = ni, nj
	if g.La1, err = readAngle1(br); err != nil {
		return nil, err
	}
	if g.Lo1, err = readAngle1(br); err != nil {
		return nil, err
	}
	rc, _ := br.ReadBits(8)
	if g.La2, err = readAngle1(br); err != nil {
		return nil, err
	}
	if g.Lo2, err = readAngle1(br); err != nil {
		return nil, err
	}
	di, _ := br.ReadBits(16)
	dj, _ := br.ReadBits(16)
	scan, err := br.ReadBits(8)
	if err != nil {
		return nil, err
	}

	g.ResFlags = resFlagsFromGRIB1(uint8(rc))
	g.EarthShape = earthShapeFromGRIB1(uint8(rc))
	g.Di = di * 1000
	g.ScanningMode = uint8(scan)

	switch rep {
	case Rep1Gaussian:
		return &GaussianGrid{LatLonGrid: g, NumParallels: dj}, nil
	case Rep1RotatedLatLon:
		g.Dj = dj * 1000
		return &RotatedLatLonGrid{LatLonGrid: g}, nil
	default:
		g.Dj = dj * 1000
		return &g, nil
	}
}

func parseLatLonTemplate(body []byte, gaussian bool) (Grid, error) {
	if len(body) < 58 {
		return nil, fmt.Errorf("lat/lon template requires 58 bytes, got %d", len(body))
	}
	r := internal.NewReader(body)

	var g LatLonGrid
	shape, _ := r.Uint8()
	g.EarthShape = shape
	r.Skip(15) // earth radius and axis scale factors/values
	g.Ni, _ = r.Uint32()
	g.Nj, _ = r.Uint32()
	r.Skip(8) // basic angle and subdivisions
	g.La1, _ = readAngle2(r)
	g.Lo1, _ = readAngle2(r)
	g.ResFlags, _ = r.Uint8()
	g.La2, _ = readAngle2(r)
	g.Lo2, _ = readAngle2(r)
	g.Di, _ = r.Uint32()
	dj, _ := r.Uint32()
	scan, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	g.ScanningMode = scan

	if gaussian {
		return &GaussianGrid{LatLonGrid: g, NumParallels: dj}, nil
	}
	g.Dj = dj
	return &g, nil
}

// TemplateNumber returns 0 for regular lat/lon grids.
func (g *LatLonGrid) TemplateNumber() int { return Template2LatLon }

// DataRepresentation returns 0 for regular lat/lon grids.
func (g *LatLonGrid) DataRepresentation() int { return Rep1LatLon }

// Nx returns the number of points along a parallel.
func (g *LatLonGrid) Nx() int { return int(g.Ni) }

// Ny returns the number of points along a meridian.
func (g *LatLonGrid) Ny() int { return int(g.Nj) }

// NumPoints returns the total number of grid points.
func (g *LatLonGrid) NumPoints() int { return int(g.Ni) * int(g.Nj) }

// Section3Length returns the GRIB2 section length for template 3.0.
func (g *LatLonGrid) Section3Length() int { return 72 }

// AppendTemplate writes the template 3.0 octets.
func (g *LatLonGrid) AppendTemplate(w *internal.BitWriter) error {
	return g.appendLatLonTemplate(w, g.Dj, g.ScanningMode)
}

func (g *LatLonGrid) appendLatLonTemplate(w *internal.BitWriter, dj uint32, scan uint8) error {
	if err := appendEarthShape(w, g.EarthShape); err != nil {
		return err
	}
	w.WriteBits(g.Ni, 32)
	w.WriteBits(g.Nj, 32)
	w.Skip(64) // basic angle and subdivisions
	writeAngle2(w, g.La1)
	writeAngle2(w, g.Lo1)
	w.WriteBits(uint32(g.ResFlags), 8)
	writeAngle2(w, g.La2)
	writeAngle2(w, g.Lo2)
	w.WriteBits(g.Di, 32)
	w.WriteBits(dj, 32)
	return w.WriteBits(uint32(scan), 8)
}

// GDS1Length returns the GRIB1 section length for a lat/lon grid.
func (g *LatLonGrid) GDS1Length() int { return 32 }

// AppendGDS1 writes the GRIB1 Grid Description Section for the grid.
func (g *LatLonGrid) AppendGDS1(w *internal.BitWriter) error {
	return g.appendGDS1(w, Rep1LatLon, g.Dj/1000)
}

func (g *LatLonGrid) appendGDS1(w *internal.BitWriter, rep int, dj uint32) error {
	w.WriteBits(uint32(g.GDS1Length()), 24)
	w.WriteBits(255, 8) // NV
	w.WriteBits(255, 8) // PV
	w.WriteBits(uint32(rep), 8)
	w.WriteBits(g.Ni, 16)
	w.WriteBits(g.Nj, 16)
	writeAngle1(w, g.La1)
	writeAngle1(w, g.Lo1)
	w.WriteBits(uint32(resFlagsToGRIB1(g.ResFlags, g.EarthShape)), 8)
	writeAngle1(w, g.La2)
	writeAngle1(w, g.Lo2)
	w.WriteBits(g.Di/1000, 16)
	w.WriteBits(dj, 16)
	w.WriteBits(uint32(g.ScanningMode), 8)
	return w.WriteBits(0, 32) // reserved
}

// String returns a human-readable description of the grid.
func (g *LatLonGrid) String() string {
	return fmt.Sprintf("Lat/Lon grid: %d x %d points (%.3f, %.3f) to (%.3f, %.3f)",
		g.Ni, g.Nj, degrees(g.La1), degrees(g.Lo1), degrees(g.La2), degrees(g.Lo2))
}

// TemplateNumber returns 40 for Gaussian grids.
func (g *GaussianGrid) TemplateNumber() int { return Template2Gaussian }

// DataRepresentation returns 4 for Gaussian grids.
func (g *GaussianGrid) DataRepresentation() int { return Rep1Gaussian }

// Section3Length returns the GRIB2 section length for template 3.40.
func (g *GaussianGrid) Section3Length() int { return 72 }

// AppendTemplate writes the template 3.40 octets. The scanning mode is
// flagged for same-direction rows the way the reference converter
// always marks Gaussian output.
func (g *GaussianGrid) AppendTemplate(w *internal.BitWriter) error {
	return g.appendLatLonTemplate(w, g.NumParallels, g.ScanningMode|0x10)
}

// AppendGDS1 writes the GRIB1 Grid Description Section for the grid.
func (g *GaussianGrid) AppendGDS1(w *internal.BitWriter) error {
	return g.appendGDS1(w, Rep1Gaussian, g.NumParallels)
}

// String returns a human-readable description of the grid.
func (g *GaussianGrid) String() string {
	return fmt.Sprintf("Gaussian grid: %d x %d points, N=%d", g.Ni, g.Nj, g.NumParallels)
}

// TemplateNumber returns 1 for rotated lat/lon grids.
func (g *RotatedLatLonGrid) TemplateNumber() int { return Template2RotatedLatLon }

// DataRepresentation returns 10 for rotated lat/lon grids.
func (g *RotatedLatLonGrid) DataRepresentation() int { return Rep1RotatedLatLon }

// Section3Length returns 0; there is no GRIB2 writer for rotated grids.
func (g *RotatedLatLonGrid) Section3Length() int { return 0 }

// AppendTemplate always fails: rotated lat/lon grids are read from
// GRIB1 but cannot be written as GRIB2 here.
func (g *RotatedLatLonGrid) AppendTemplate(w *internal.BitWriter) error {
	return fmt.Errorf("rotated lat/lon grids have no GRIB2 writer")
}

// AppendGDS1 writes the GRIB1 Grid Description Section for the grid.
func (g *RotatedLatLonGrid) AppendGDS1(w *internal.BitWriter) error {
	return g.appendGDS1(w, Rep1RotatedLatLon, g.Dj/1000)
}

// String returns a human-readable description of the grid.
func (g *RotatedLatLonGrid) String() string {
	return fmt.Sprintf("Rotated lat/lon grid: %d x %d points", g.Ni, g.Nj)
}
