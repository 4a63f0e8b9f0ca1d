package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/deckgridgo/internal/config"
	"github.com/vk/deckgridgo/internal/ctxlog"
	"github.com/vk/deckgridgo/internal/fsutil"
	"github.com/vk/deckgridgo/internal/schema"
)

// Loader reads HCL catalog manifests and deck files. It implements
// config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a Loader with a fresh HCL parser.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads the keyword catalogs from catalogPaths and the deck from
// deckPath, returning the unified model. Catalog duplicates resolve
// last-wins in discovery order.
func (l *Loader) Load(ctx context.Context, deckPath string, catalogPaths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := &config.Model{Keywords: make(map[string]*config.KeywordDefinition)}

	for _, path := range catalogPaths {
		filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk catalog path %s: %w", path, err)
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl catalog manifests found in path.", "path", path)
			continue
		}
		for _, filePath := range filePaths {
			if err := l.loadCatalogFile(model, filePath); err != nil {
				return nil, err
			}
			logger.Debug("Loaded catalog manifest.", "file", filePath)
		}
	}

	deck, err := l.loadDeckFile(deckPath)
	if err != nil {
		return nil, err
	}
	model.Deck = deck

	logger.Info("Input loaded successfully.",
		"keywords", len(model.Keywords), "operations", len(deck.Operations))
	return model, nil
}

func (l *Loader) loadCatalogFile(model *config.Model, filePath string) error {
	hclFile, diags := l.parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse catalog manifest %s: %w", filePath, diags)
	}

	var catalogFile schema.CatalogFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &catalogFile); diags.HasErrors() {
		return fmt.Errorf("failed to decode catalog manifest %s: %w", filePath, diags)
	}

	for _, manifest := range catalogFile.Keywords {
		def, err := translateKeyword(manifest)
		if err != nil {
			return fmt.Errorf("catalog manifest %s: %w", filePath, err)
		}
		model.Keywords[def.Name] = def
	}
	return nil
}

func (l *Loader) loadDeckFile(deckPath string) (*config.Deck, error) {
	hclFile, diags := l.parser.ParseHCLFile(deckPath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse deck %s: %w", deckPath, diags)
	}

	// The content API keeps blocks in source order across block types,
	// which deck semantics depend on.
	content, diags := hclFile.Body.Content(schema.DeckBodySchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read deck %s: %w", deckPath, diags)
	}

	deck := &config.Deck{}
	for _, block := range content.Blocks {
		if block.Type == "grid" {
			if deck.Grid != nil {
				return nil, fmt.Errorf("deck %s: duplicate grid block at %s", deckPath, block.DefRange)
			}
			gridDef, err := translateGrid(block)
			if err != nil {
				return nil, fmt.Errorf("deck %s: %w", deckPath, err)
			}
			deck.Grid = gridDef
			continue
		}

		op, err := translateOperation(block)
		if err != nil {
			return nil, fmt.Errorf("deck %s: %w", deckPath, err)
		}
		deck.Operations = append(deck.Operations, op)
	}

	if deck.Grid == nil {
		return nil, fmt.Errorf("deck %s: missing grid block", deckPath)
	}
	return deck, nil
}
