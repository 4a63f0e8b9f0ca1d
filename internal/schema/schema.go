// Package schema defines the HCL shapes of the two input kinds the loader
// understands: keyword catalog manifests and user deck files.
package schema

import "github.com/hashicorp/hcl/v2"

// --- Catalog Manifest Schemas ---

// CatalogFile represents the top-level structure of a keyword catalog
// manifest, a list of `keyword` blocks.
type CatalogFile struct {
	Keywords []*KeywordManifest `hcl:"keyword,block"`
}

// KeywordManifest declares one supportable keyword: its property family,
// default value, physical-dimension tag, and an optional named
// post-processor resolved against the assembler's Go registrations.
type KeywordManifest struct {
	Name        string         `hcl:"name,label"`
	Family      string         `hcl:"family,optional"`
	Default     hcl.Expression `hcl:"default"`
	Dimension   string         `hcl:"dimension,optional"`
	PostProcess string         `hcl:"post_process,optional"`
}

// --- Deck Schemas ---

// GridBlock carries the cell-count extents from a deck's `grid` block.
type GridBlock struct {
	NX int `hcl:"nx"`
	NY int `hcl:"ny"`
	NZ int `hcl:"nz"`
}

// SetBlock is the body of a `set "KEYWORD"` block: the explicit per-cell
// values for the keyword.
type SetBlock struct {
	Values hcl.Expression `hcl:"values"`
}

// CopyBlock is the body of a `copy` block: copy source values into target,
// optionally restricted to a box of inclusive cell-range bounds.
type CopyBlock struct {
	Source string         `hcl:"source"`
	Target string         `hcl:"target"`
	Box    hcl.Expression `hcl:"box,optional"`
}

// DeckBodySchema describes a deck file's block structure for the HCL
// content API. The loader walks the returned blocks in source order, since
// deck semantics depend on operation ordering.
var DeckBodySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "grid"},
		{Type: "add", LabelNames: []string{"keyword"}},
		{Type: "set", LabelNames: []string{"keyword"}},
		{Type: "default", LabelNames: []string{"keyword"}},
		{Type: "copy"},
	},
}
