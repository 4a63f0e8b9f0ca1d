package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometry(t *testing.T) {
	g, err := NewGeometry(4, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NX())
	assert.Equal(t, 3, g.NY())
	assert.Equal(t, 2, g.NZ())
	assert.Equal(t, 24, g.CellCount())
}

func TestNewGeometry_RejectsNonPositiveExtents(t *testing.T) {
	for _, dims := range [][3]int{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}} {
		_, err := NewGeometry(dims[0], dims[1], dims[2])
		assert.Error(t, err, "extents %v", dims)
	}
}

func TestIndex_FirstAxisVariesFastest(t *testing.T) {
	g, err := NewGeometry(2, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Index(0, 0, 0))
	assert.Equal(t, 1, g.Index(1, 0, 0))
	assert.Equal(t, 2, g.Index(0, 1, 0))
	assert.Equal(t, 4, g.Index(0, 0, 1))
	assert.Equal(t, 7, g.Index(1, 1, 1))
}

func TestNewBox_Validation(t *testing.T) {
	g, err := NewGeometry(2, 2, 1)
	require.NoError(t, err)

	// Inverted bounds
	_, err = NewBox(g, 1, 0, 0, 1, 0, 0)
	assert.Error(t, err)

	// Out of extent
	_, err = NewBox(g, 0, 2, 0, 1, 0, 0)
	assert.Error(t, err)
	_, err = NewBox(g, 0, 1, 0, 1, 0, 1)
	assert.Error(t, err)

	// Negative lower bound
	_, err = NewBox(g, -1, 1, 0, 1, 0, 0)
	assert.Error(t, err)
}

func TestBox_CellIndexes(t *testing.T) {
	g, err := NewGeometry(2, 2, 1)
	require.NoError(t, err)

	// First row of the 2x2x1 grid: cells 0 and 1.
	b, err := NewBox(g, 0, 1, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, []int{0, 1}, b.CellIndexes())

	full := FullBox(g)
	assert.Equal(t, g.CellCount(), full.Size())
	assert.Equal(t, []int{0, 1, 2, 3}, full.CellIndexes())
}
