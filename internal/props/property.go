package props

import (
	"fmt"

	"github.com/vk/deckgridgo/internal/grid"
)

// Property is a dense per-cell value array for one keyword, indexed by the
// grid's flat cell index. Instances are created by a Registry and live for
// the registry's full lifetime.
type Property[T Value] struct {
	info   SupportedKeywordInfo[T]
	values []T
}

// newProperty materializes a property sized to the geometry: every cell is
// filled with the keyword's default, then the post-processor (if any) runs
// over the array.
func newProperty[T Value](geom *grid.Geometry, info SupportedKeywordInfo[T]) *Property[T] {
	values := make([]T, geom.CellCount())
	for i := range values {
		values[i] = info.defaultValue
	}
	if info.postProcessor != nil {
		info.postProcessor(values)
	}
	return &Property[T]{info: info, values: values}
}

// Name returns the keyword name this property belongs to.
func (p *Property[T]) Name() string { return p.info.name }

// Info returns the keyword descriptor the property was materialized from.
func (p *Property[T]) Info() SupportedKeywordInfo[T] { return p.info }

// Len returns the cell count of the property array.
func (p *Property[T]) Len() int { return len(p.values) }

// Values returns the live backing array. Callers mutate it directly; this
// is the registry's writable handle for the deck driver.
func (p *Property[T]) Values() []T { return p.values }

// At returns the value at a flat cell index.
func (p *Property[T]) At(index int) T { return p.values[index] }

// Set overwrites the value at a flat cell index.
func (p *Property[T]) Set(index int, v T) { p.values[index] = v }

// SetValues overwrites the whole array from an explicit value list. The
// list length must equal the cell count.
func (p *Property[T]) SetValues(values []T) error {
	if len(values) != len(p.values) {
		return fmt.Errorf("keyword %s: got %d values for %d cells", p.info.name, len(values), len(p.values))
	}
	copy(p.values, values)
	return nil
}

// CopyFrom copies values from a same-shaped source property into this one,
// restricted to the cells covered by box. Cells outside the box are left
// untouched.
func (p *Property[T]) CopyFrom(src *Property[T], box *grid.Box) {
	for _, idx := range box.CellIndexes() {
		p.values[idx] = src.values[idx]
	}
}
