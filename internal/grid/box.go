package grid

import "fmt"

// Box describes a sub-volume of a grid's cell index space using inclusive
// per-axis bounds. Boxes scope region copies between property arrays.
type Box struct {
	geom                   *Geometry
	i1, i2, j1, j2, k1, k2 int
}

// NewBox creates a Box over the given geometry with inclusive bounds on
// every axis. Inverted or out-of-extent bounds are rejected.
func NewBox(geom *Geometry, i1, i2, j1, j2, k1, k2 int) (*Box, error) {
	if err := checkAxis("i", i1, i2, geom.NX()); err != nil {
		return nil, err
	}
	if err := checkAxis("j", j1, j2, geom.NY()); err != nil {
		return nil, err
	}
	if err := checkAxis("k", k1, k2, geom.NZ()); err != nil {
		return nil, err
	}
	return &Box{geom: geom, i1: i1, i2: i2, j1: j1, j2: j2, k1: k1, k2: k2}, nil
}

// FullBox returns a Box covering every cell of the geometry.
func FullBox(geom *Geometry) *Box {
	return &Box{
		geom: geom,
		i1:   0, i2: geom.NX() - 1,
		j1: 0, j2: geom.NY() - 1,
		k1: 0, k2: geom.NZ() - 1,
	}
}

func checkAxis(axis string, lo, hi, extent int) error {
	if lo < 0 || hi >= extent || lo > hi {
		return fmt.Errorf("invalid %s bounds [%d, %d] for extent %d", axis, lo, hi, extent)
	}
	return nil
}

// Size returns the number of cells covered by the box.
func (b *Box) Size() int {
	return (b.i2 - b.i1 + 1) * (b.j2 - b.j1 + 1) * (b.k2 - b.k1 + 1)
}

// CellIndexes returns the flat cell indexes covered by the box, in
// ascending order.
func (b *Box) CellIndexes() []int {
	indexes := make([]int, 0, b.Size())
	for k := b.k1; k <= b.k2; k++ {
		for j := b.j1; j <= b.j2; j++ {
			for i := b.i1; i <= b.i2; i++ {
				indexes = append(indexes, b.geom.Index(i, j, k))
			}
		}
	}
	return indexes
}
