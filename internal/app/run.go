package app

import (
	"context"
	"fmt"

	"github.com/vk/deckgridgo/internal/ctxlog"
	"github.com/vk/deckgridgo/internal/processor"
)

// Run processes the loaded deck against the assembled registries and
// writes the case report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	proc := processor.New(a.assembler)
	if err := proc.Apply(ctx, a.model.Deck); err != nil {
		return fmt.Errorf("deck processing failed: %w", err)
	}

	if err := a.writeReport(); err != nil {
		return fmt.Errorf("failed to write case report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
