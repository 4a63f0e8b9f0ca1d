// Package grid provides the geometry collaborator for the property
// registry: the three cell-count extents of a corner-point grid and the
// flat cell indexing derived from them, plus the Box type describing a
// sub-volume of the cell index space.
package grid

import "fmt"

// Geometry holds the cell-count extents of a simulation grid along the
// three axes. It is read-only after construction; property registries
// borrow a reference to it and must not outlive it.
type Geometry struct {
	nx int
	ny int
	nz int
}

// NewGeometry creates a Geometry from the three axis extents. All extents
// must be positive.
func NewGeometry(nx, ny, nz int) (*Geometry, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("grid extents must be positive, got %dx%dx%d", nx, ny, nz)
	}
	return &Geometry{nx: nx, ny: ny, nz: nz}, nil
}

// NX returns the cell count along the first axis.
func (g *Geometry) NX() int { return g.nx }

// NY returns the cell count along the second axis.
func (g *Geometry) NY() int { return g.ny }

// NZ returns the cell count along the third axis.
func (g *Geometry) NZ() int { return g.nz }

// CellCount returns the total number of cells, the product of the three
// extents. Every property array is sized to this value.
func (g *Geometry) CellCount() int {
	return g.nx * g.ny * g.nz
}

// Index maps an (i, j, k) cell coordinate to the flat cell index used by
// property arrays. The first axis varies fastest.
func (g *Geometry) Index(i, j, k int) int {
	return i + g.nx*(j+g.ny*k)
}

func (g *Geometry) String() string {
	return fmt.Sprintf("%dx%dx%d", g.nx, g.ny, g.nz)
}
