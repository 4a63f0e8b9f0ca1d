package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/deckgridgo/internal/config"
	"github.com/vk/deckgridgo/internal/ctxlog"
	"github.com/vk/deckgridgo/internal/grid"
	"github.com/vk/deckgridgo/internal/simprops"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	model     *config.Model
	geom      *grid.Geometry
	assembler *simprops.Assembler
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, loaded input
// model, and assembled case registries. Input failures are fatal startup
// errors and panic; the caller recovers for a clean exit message.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var catalogPaths []string
	if appConfig.CatalogPath != "" {
		catalogPaths = append(catalogPaths, appConfig.CatalogPath)
	}

	model, err := loader.Load(ctx, appConfig.DeckPath, catalogPaths...)
	if err != nil {
		panic(fmt.Errorf("failed to load input: %w", err))
	}
	logger.Debug("Input loaded and translated into unified model.")

	geom, err := grid.NewGeometry(model.Deck.Grid.NX, model.Deck.Grid.NY, model.Deck.Grid.NZ)
	if err != nil {
		panic(fmt.Errorf("invalid grid definition: %w", err))
	}
	logger.Debug("Grid geometry constructed.", "grid", geom.String())

	assembler, err := simprops.NewAssembler(ctx, geom, model.Keywords)
	if err != nil {
		panic(fmt.Errorf("failed to assemble case: %w", err))
	}
	logger.Debug("Case registries assembled.", "case_id", assembler.CaseID())

	return &App{
		outW:      outW,
		logger:    logger,
		model:     model,
		geom:      geom,
		assembler: assembler,
	}
}

// Assembler returns the app's case assembly. This is primarily for testing.
func (a *App) Assembler() *simprops.Assembler {
	return a.assembler
}
