package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deckgridgo/internal/config"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestLoad_CatalogAndDeck(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"catalogs/eclipse.hcl": `
keyword "PORO" {
  default   = 0.2
  dimension = "1"
}

keyword "SATNUM" {
  family  = "int"
  default = 1
}
`,
		"case.hcl": `
grid {
  nx = 2
  ny = 2
  nz = 1
}

add "PORO" {}

set "PORO" {
  values = [0.1, 0.2, 0.3, 0.4]
}

default "SATNUM" {}

copy {
  source = "PORO"
  target = "PORO"
  box    = [0, 1, 0, 0, 0, 0]
}
`,
	})

	loader := NewLoader()
	model, err := loader.Load(context.Background(), filepath.Join(dir, "case.hcl"), filepath.Join(dir, "catalogs"))
	require.NoError(t, err)

	wantKeywords := map[string]*config.KeywordDefinition{
		"PORO":   {Name: "PORO", Family: config.FamilyDouble, Default: 0.2, Dimension: "1"},
		"SATNUM": {Name: "SATNUM", Family: config.FamilyInt, Default: 1},
	}
	if diff := cmp.Diff(wantKeywords, model.Keywords); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}

	require.NotNil(t, model.Deck)
	assert.Equal(t, &config.GridDefinition{NX: 2, NY: 2, NZ: 1}, model.Deck.Grid)

	wantOps := []*config.Operation{
		{Kind: config.OpAdd, Keyword: "PORO"},
		{Kind: config.OpSet, Keyword: "PORO", Values: []float64{0.1, 0.2, 0.3, 0.4}},
		{Kind: config.OpDefault, Keyword: "SATNUM"},
		{Kind: config.OpCopy, Source: "PORO", Target: "PORO", Box: []int{0, 1, 0, 0, 0, 0}},
	}
	if diff := cmp.Diff(wantOps, model.Deck.Operations, cmpopts.IgnoreTypes(hcl.Range{})); diff != "" {
		t.Errorf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_CatalogLastWins(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"catalogs/a_base.hcl": `
keyword "PORO" {
  default = 0.1
}
`,
		"catalogs/b_override.hcl": `
keyword "PORO" {
  default = 0.3
}
`,
		"case.hcl": `
grid {
  nx = 1
  ny = 1
  nz = 1
}
`,
	})

	loader := NewLoader()
	model, err := loader.Load(context.Background(), filepath.Join(dir, "case.hcl"), filepath.Join(dir, "catalogs"))
	require.NoError(t, err)
	require.Contains(t, model.Keywords, "PORO")
	assert.Equal(t, 0.3, model.Keywords["PORO"].Default)
}

func TestLoad_DeckErrors(t *testing.T) {
	cases := map[string]string{
		"missing grid": `
add "PORO" {}
`,
		"duplicate grid": `
grid {
  nx = 1
  ny = 1
  nz = 1
}
grid {
  nx = 2
  ny = 1
  nz = 1
}
`,
		"short box": `
grid {
  nx = 1
  ny = 1
  nz = 1
}
copy {
  source = "A"
  target = "B"
  box    = [0, 0]
}
`,
		"non-integer box": `
grid {
  nx = 1
  ny = 1
  nz = 1
}
copy {
  source = "A"
  target = "B"
  box    = [0, 0.5, 0, 0, 0, 0]
}
`,
		"attribute in add block": `
grid {
  nx = 1
  ny = 1
  nz = 1
}
add "PORO" {
  values = [1]
}
`,
	}

	for name, deck := range cases {
		t.Run(name, func(t *testing.T) {
			dir := writeFiles(t, map[string]string{"case.hcl": deck})
			loader := NewLoader()
			_, err := loader.Load(context.Background(), filepath.Join(dir, "case.hcl"))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadFamily(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"catalogs/bad.hcl": `
keyword "PORO" {
  family  = "complex"
  default = 0.2
}
`,
		"case.hcl": `
grid {
  nx = 1
  ny = 1
  nz = 1
}
`,
	})

	loader := NewLoader()
	_, err := loader.Load(context.Background(), filepath.Join(dir, "case.hcl"), filepath.Join(dir, "catalogs"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "family")
}
