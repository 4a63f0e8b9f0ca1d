// Package simprops assembles the property registries for a single
// simulation case: it translates loaded keyword definitions into typed
// catalogs, owns the double and int registries, and is the one component
// holding the privileged catalog-extension capability, which it uses to
// register the pore-volume keyword whose default it computes from grid
// geometry outside the normal catalog build.
package simprops

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/vk/deckgridgo/internal/config"
	"github.com/vk/deckgridgo/internal/ctxlog"
	"github.com/vk/deckgridgo/internal/grid"
	"github.com/vk/deckgridgo/internal/props"
)

// poreVolumeKeyword is registered through the catalog extension rather
// than the manifests; its default derives from the geometry's unit cell
// volume and the declared porosity default.
const poreVolumeKeyword = "PORV"

// unitCellVolume is the bulk volume of one cell for geometries that carry
// extents only.
const unitCellVolume = 1.0

// Assembler owns the per-case registries and the keyword family routing
// table. It is scoped to one case and single-threaded like the registries
// it holds.
type Assembler struct {
	caseID   uuid.UUID
	geom     *grid.Geometry
	doubles  *props.Registry[float64]
	ints     *props.Registry[int]
	families map[string]config.Family
}

// NewAssembler builds the typed catalogs from the loaded keyword
// definitions and creates the registries over the case geometry. Named
// post-processors in the definitions are resolved against
// DefaultPostProcessors; an unresolved name is a fatal input error.
func NewAssembler(ctx context.Context, geom *grid.Geometry, keywords map[string]*config.KeywordDefinition) (*Assembler, error) {
	caseID := uuid.New()
	logger := ctxlog.FromContext(ctx).With("case_id", caseID)

	postProcessors := DefaultPostProcessors(geom)

	var doubleKeywords []props.SupportedKeywordInfo[float64]
	var intKeywords []props.SupportedKeywordInfo[int]
	families := make(map[string]config.Family, len(keywords))

	// Definitions are keyed by name; iterate sorted so catalog assembly is
	// deterministic.
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := keywords[name]
		families[name] = def.Family

		switch def.Family {
		case config.FamilyInt:
			if def.PostProcess != "" {
				return nil, fmt.Errorf("keyword %q: post-processors are only supported for double properties", name)
			}
			if def.Default != float64(int(def.Default)) {
				return nil, fmt.Errorf("keyword %q: int property default %v is not an integer", name, def.Default)
			}
			intKeywords = append(intKeywords, props.NewSupportedKeyword(name, int(def.Default), nil, def.Dimension))

		default:
			var post props.PostProcessor[float64]
			if def.PostProcess != "" {
				resolved, ok := postProcessors[def.PostProcess]
				if !ok {
					return nil, fmt.Errorf("keyword %q: unknown post-processor %q", name, def.PostProcess)
				}
				post = resolved
			}
			doubleKeywords = append(doubleKeywords, props.NewSupportedKeyword(name, def.Default, post, def.Dimension))
		}
	}

	doubles, extension := props.NewExtendable(geom, props.NewCatalog(doubleKeywords), logger)
	ints := props.New(geom, props.NewCatalog(intKeywords), logger)

	asm := &Assembler{
		caseID:   caseID,
		geom:     geom,
		doubles:  doubles,
		ints:     ints,
		families: families,
	}
	asm.registerPoreVolume(logger, keywords, extension)

	logger.Debug("Case assembled.",
		"grid", geom.String(),
		"double_keywords", len(doubleKeywords),
		"int_keywords", len(intKeywords))
	return asm, nil
}

// registerPoreVolume inserts the pore-volume keyword through the catalog
// extension. Its per-cell default is the unit cell volume scaled by the
// declared porosity default, a value the manifests cannot express because
// it is derived from the geometry here.
func (a *Assembler) registerPoreVolume(logger *slog.Logger, keywords map[string]*config.KeywordDefinition, extension *props.CatalogExtension[float64]) {
	if _, declared := keywords[poreVolumeKeyword]; declared {
		return
	}
	poro, ok := keywords["PORO"]
	if !ok || poro.Family != config.FamilyDouble {
		return
	}

	porvDefault := unitCellVolume * poro.Default
	extension.Insert(props.NewSupportedKeyword(poreVolumeKeyword, porvDefault, nil, "ReservoirVolume"))
	a.families[poreVolumeKeyword] = config.FamilyDouble
	logger.Debug("Registered derived pore-volume keyword.", "keyword", poreVolumeKeyword, "default", porvDefault)
}

// CaseID returns the unique identifier of this case assembly.
func (a *Assembler) CaseID() uuid.UUID { return a.caseID }

// Geometry returns the borrowed case geometry.
func (a *Assembler) Geometry() *grid.Geometry { return a.geom }

// Doubles returns the double-property registry.
func (a *Assembler) Doubles() *props.Registry[float64] { return a.doubles }

// Ints returns the int-property registry.
func (a *Assembler) Ints() *props.Registry[int] { return a.ints }

// FamilyOf reports which property family a keyword belongs to.
func (a *Assembler) FamilyOf(name string) (config.Family, bool) {
	family, ok := a.families[name]
	return family, ok
}

// Diagnostics returns a snapshot of the diagnostics accumulated by both
// registries, double-property messages first.
func (a *Assembler) Diagnostics() []props.Message {
	out := a.doubles.Diagnostics().Messages()
	return append(out, a.ints.Diagnostics().Messages()...)
}

// DrainDiagnostics empties both sinks and returns their messages,
// double-property messages first.
func (a *Assembler) DrainDiagnostics() []props.Message {
	out := a.doubles.Diagnostics().Drain()
	return append(out, a.ints.Diagnostics().Drain()...)
}
