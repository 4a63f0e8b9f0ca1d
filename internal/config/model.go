package config

import "github.com/hashicorp/hcl/v2"

// Family selects which element type a keyword's property array holds.
type Family string

const (
	FamilyDouble Family = "double"
	FamilyInt    Family = "int"
)

// KeywordDefinition is the format-agnostic representation of one catalog
// manifest entry.
type KeywordDefinition struct {
	Name        string
	Family      Family
	Default     float64
	Dimension   string
	PostProcess string // named post-processor, resolved by the assembler
}

// Model is the unified representation of everything loaded for one case:
// the supportable keyword catalog and the deck to process.
type Model struct {
	Keywords map[string]*KeywordDefinition
	Deck     *Deck
}

// Deck is the ordered list of operations from a user's deck file, plus the
// grid extents the case is sized to.
type Deck struct {
	Grid       *GridDefinition
	Operations []*Operation
}

// GridDefinition carries the three cell-count extents from the deck's grid
// block.
type GridDefinition struct {
	NX int
	NY int
	NZ int
}

// OpKind discriminates deck operations.
type OpKind string

const (
	// OpAdd explicitly materializes a keyword with catalog defaults.
	OpAdd OpKind = "add"
	// OpSet materializes a keyword and overwrites its values.
	OpSet OpKind = "set"
	// OpDefault reads a keyword, letting the registry default it lazily.
	OpDefault OpKind = "default"
	// OpCopy copies one keyword's values into another over a region.
	OpCopy OpKind = "copy"
)

// Operation is one deck operation in source order. Keyword and Values
// apply to add/set/default; Source, Target and Box apply to copy. A nil
// Box means the full grid. DeclRange points back at the deck source for
// error reporting.
type Operation struct {
	Kind      OpKind
	Keyword   string
	Values    []float64
	Source    string
	Target    string
	Box       []int // i1, i2, j1, j2, k1, k2 (inclusive)
	DeclRange hcl.Range
}
