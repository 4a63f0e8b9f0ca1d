// Package testutil provides helpers for end-to-end deck-processing tests:
// a thread-safe output buffer and a temp-dir harness that writes input
// files, builds the app, and runs the deck.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/deckgridgo/internal/app"
	"github.com/vk/deckgridgo/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an end-to-end deck run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunDeckTest writes the given files into a temporary directory, builds an
// app over "case.hcl" (and "catalogs/" if present), and runs the deck.
// Startup panics are converted into the result's Err.
func RunDeckTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		DeckPath:  filepath.Join(tmpDir, "case.hcl"),
		LogLevel:  "debug",
		LogFormat: "text",
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "catalogs")); err == nil {
		appConfig.CatalogPath = filepath.Join(tmpDir, "catalogs")
	}

	output := &SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("startup panic: %v", r)
			}
		}()
		result.App = app.NewApp(output, appConfig, hcl.NewLoader())
	}()

	if result.App != nil {
		result.Err = result.App.Run(context.Background())
	}

	result.Output = output.String()
	return result
}
