package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_LastWins(t *testing.T) {
	catalog := NewCatalog([]SupportedKeywordInfo[float64]{
		NewSupportedKeyword("PORO", 0.1, nil, "1"),
		NewSupportedKeyword("PORO", 0.25, nil, "1"),
	})

	require.Equal(t, 1, catalog.Len())
	kw, ok := catalog.Get("PORO")
	require.True(t, ok)
	assert.Equal(t, 0.25, kw.Default())
}

func TestCatalog_Lookup(t *testing.T) {
	catalog := NewCatalog([]SupportedKeywordInfo[float64]{
		NewSupportedKeyword("PERMX", 100.0, nil, "Permeability"),
	})

	assert.True(t, catalog.IsSupported("PERMX"))
	assert.False(t, catalog.IsSupported("PERMZ"))

	kw, ok := catalog.Get("PERMX")
	require.True(t, ok)
	assert.Equal(t, "PERMX", kw.Name())
	assert.Equal(t, "Permeability", kw.Dimension())

	_, ok = catalog.Get("PERMZ")
	assert.False(t, ok)
}
