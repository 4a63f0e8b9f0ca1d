package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deckgridgo/internal/testutil"
)

const testCatalog = `
keyword "PORO" {
  default   = 0.2
  dimension = "1"
}

keyword "PERMX" {
  default   = 100.0
  dimension = "Permeability"
}

keyword "PERMY" {
  default   = 100.0
  dimension = "Permeability"
}

keyword "SATNUM" {
  family  = "int"
  default = 1
}
`

func TestRun_SimpleDeck(t *testing.T) {
	result := testutil.RunDeckTest(t, map[string]string{
		"catalogs/eclipse.hcl": testCatalog,
		"case.hcl": `
grid {
  nx = 2
  ny = 1
  nz = 1
}

add "PORO" {}

set "PERMX" {
  values = [50, 150]
}

copy {
  source = "PERMX"
  target = "PERMY"
}
`,
	})
	require.NoError(t, result.Err)

	doubles := result.App.Assembler().Doubles()
	poro, err := doubles.GetInitializedKeyword("PORO")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.2}, poro.Values())

	permy, err := doubles.GetInitializedKeyword("PERMY")
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 150}, permy.Values())

	assert.Contains(t, result.Output, "double properties:")
	assert.Contains(t, result.Output, "explicit")
	assert.NotContains(t, result.Output, "diagnostics:")
}

func TestRun_OrderingMistakeReportsWarning(t *testing.T) {
	result := testutil.RunDeckTest(t, map[string]string{
		"catalogs/eclipse.hcl": testCatalog,
		"case.hcl": `
grid {
  nx = 2
  ny = 1
  nz = 1
}

default "PORO" {}

add "PORO" {}
`,
	})
	require.NoError(t, result.Err)

	// Lazily defaulted then explicitly mentioned: values kept, one warning.
	poro, err := result.App.Assembler().Doubles().GetInitializedKeyword("PORO")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.2}, poro.Values())

	assert.Contains(t, result.Output, "diagnostics:")
	assert.Contains(t, result.Output, "warning: The keyword PORO")
}

func TestRun_UnsupportedKeywordFails(t *testing.T) {
	result := testutil.RunDeckTest(t, map[string]string{
		"catalogs/eclipse.hcl": testCatalog,
		"case.hcl": `
grid {
  nx = 2
  ny = 1
  nz = 1
}

add "SWAT" {}
`,
	})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "SWAT")
}

func TestRun_BadDeckFailsAtStartup(t *testing.T) {
	result := testutil.RunDeckTest(t, map[string]string{
		"case.hcl": `
add "PORO" {}
`,
	})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "grid")
}

func TestRun_IntPropertiesInReport(t *testing.T) {
	result := testutil.RunDeckTest(t, map[string]string{
		"catalogs/eclipse.hcl": testCatalog,
		"case.hcl": `
grid {
  nx = 2
  ny = 1
  nz = 1
}

set "SATNUM" {
  values = [1, 2]
}
`,
	})
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "int properties:")

	satnum, err := result.App.Assembler().Ints().GetInitializedKeyword("SATNUM")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, satnum.Values())
}
