package simprops

import (
	"github.com/vk/deckgridgo/internal/grid"
	"github.com/vk/deckgridgo/internal/props"
)

// DefaultPostProcessors returns the named post-processors catalog
// manifests may reference for double properties. Each runs once, right
// after a property is default-filled.
func DefaultPostProcessors(geom *grid.Geometry) map[string]props.PostProcessor[float64] {
	return map[string]props.PostProcessor[float64]{
		"clamp_non_negative":   clampNonNegative,
		"distribute_top_layer": distributeTopLayer(geom),
	}
}

func clampNonNegative(values []float64) {
	for i, v := range values {
		if v < 0 {
			values[i] = 0
		}
	}
}

// distributeTopLayer propagates each column's top-layer value down through
// the deeper layers, for keywords whose defaults are specified at the top
// of the reservoir only.
func distributeTopLayer(geom *grid.Geometry) props.PostProcessor[float64] {
	return func(values []float64) {
		for k := 1; k < geom.NZ(); k++ {
			for j := 0; j < geom.NY(); j++ {
				for i := 0; i < geom.NX(); i++ {
					values[geom.Index(i, j, k)] = values[geom.Index(i, j, 0)]
				}
			}
		}
	}
}
