package app

import (
	"fmt"
	"io"

	"github.com/vk/deckgridgo/internal/props"
)

// writeReport prints the materialized properties in creation order with
// their provenance, then drains the diagnostic sinks.
func (a *App) writeReport() error {
	w := a.outW

	if _, err := fmt.Fprintf(w, "case %s, grid %s\n", a.assembler.CaseID(), a.geom); err != nil {
		return err
	}

	if err := writeRegistry(w, "double", a.assembler.Doubles()); err != nil {
		return err
	}
	if err := writeRegistry(w, "int", a.assembler.Ints()); err != nil {
		return err
	}

	diagnostics := a.assembler.DrainDiagnostics()
	if len(diagnostics) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "diagnostics:"); err != nil {
		return err
	}
	for _, msg := range diagnostics {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", msg.Severity, msg.Text); err != nil {
			return err
		}
	}
	return nil
}

func writeRegistry[T props.Value](w io.Writer, family string, reg *props.Registry[T]) error {
	if reg.Size() == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s properties:\n", family); err != nil {
		return err
	}
	for i := 0; i < reg.Size(); i++ {
		prop, err := reg.KeywordAt(i)
		if err != nil {
			return err
		}
		provenance := "auto-generated"
		if reg.HasKeyword(prop.Name()) {
			provenance = "explicit"
		}
		if _, err := fmt.Fprintf(w, "  %-10s %s\n", prop.Name(), provenance); err != nil {
			return err
		}
	}
	return nil
}
