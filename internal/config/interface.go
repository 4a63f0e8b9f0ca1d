package config

import "context"

// Loader is the interface for a format-specific input loader. It reads the
// keyword catalog manifests and the deck file, translating both into the
// format-agnostic model.
type Loader interface {
	Load(ctx context.Context, deckPath string, catalogPaths ...string) (*Model, error)
}
