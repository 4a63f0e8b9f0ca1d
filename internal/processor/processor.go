// Package processor drives the property registries from a parsed deck: it
// applies the deck's operations in source order, routing each keyword to
// the double or int registry by family.
package processor

import (
	"context"
	"fmt"

	"github.com/vk/deckgridgo/internal/config"
	"github.com/vk/deckgridgo/internal/ctxlog"
	"github.com/vk/deckgridgo/internal/grid"
	"github.com/vk/deckgridgo/internal/simprops"
)

// Processor applies deck operations to one case assembly.
type Processor struct {
	asm *simprops.Assembler
}

// New creates a Processor over the given case assembly.
func New(asm *simprops.Assembler) *Processor {
	return &Processor{asm: asm}
}

// Apply executes the deck's operations in order. The first failing
// operation aborts the run; its source position is included in the error.
func (p *Processor) Apply(ctx context.Context, deck *config.Deck) error {
	logger := ctxlog.FromContext(ctx)

	for _, op := range deck.Operations {
		logger.Debug("Applying deck operation.", "kind", op.Kind, "at", op.DeclRange.String())
		if err := p.apply(op); err != nil {
			return fmt.Errorf("%s at %s: %w", op.Kind, op.DeclRange, err)
		}
	}

	logger.Info("Deck processed.",
		"operations", len(deck.Operations),
		"double_properties", p.asm.Doubles().Size(),
		"int_properties", p.asm.Ints().Size())
	return nil
}

func (p *Processor) apply(op *config.Operation) error {
	switch op.Kind {
	case config.OpAdd:
		return p.applyAdd(op.Keyword)
	case config.OpSet:
		return p.applySet(op.Keyword, op.Values)
	case config.OpDefault:
		return p.applyDefault(op.Keyword)
	case config.OpCopy:
		return p.applyCopy(op)
	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}

func (p *Processor) applyAdd(keyword string) error {
	if p.familyOf(keyword) == config.FamilyInt {
		_, err := p.asm.Ints().AddKeyword(keyword)
		return err
	}
	_, err := p.asm.Doubles().AddKeyword(keyword)
	return err
}

func (p *Processor) applyDefault(keyword string) error {
	if p.familyOf(keyword) == config.FamilyInt {
		_, err := p.asm.Ints().GetKeyword(keyword)
		return err
	}
	_, err := p.asm.Doubles().GetKeyword(keyword)
	return err
}

func (p *Processor) applySet(keyword string, values []float64) error {
	if p.familyOf(keyword) == config.FamilyInt {
		intValues, err := toIntValues(keyword, values)
		if err != nil {
			return err
		}
		prop, err := p.asm.Ints().GetOrCreateProperty(keyword)
		if err != nil {
			return err
		}
		return prop.SetValues(intValues)
	}

	prop, err := p.asm.Doubles().GetOrCreateProperty(keyword)
	if err != nil {
		return err
	}
	return prop.SetValues(values)
}

func (p *Processor) applyCopy(op *config.Operation) error {
	srcFamily := p.familyOf(op.Source)
	if dstFamily, ok := p.asm.FamilyOf(op.Target); ok && dstFamily != srcFamily {
		return fmt.Errorf("cannot copy %s property %q into %s property %q",
			srcFamily, op.Source, dstFamily, op.Target)
	}

	box, err := p.boxFor(op.Box)
	if err != nil {
		return err
	}

	if srcFamily == config.FamilyInt {
		return p.asm.Ints().CopyKeyword(op.Source, op.Target, box)
	}
	return p.asm.Doubles().CopyKeyword(op.Source, op.Target, box)
}

// familyOf routes a keyword to its property family. Unknown names default
// to the double registry, which rejects them with the proper
// unsupported-keyword failure.
func (p *Processor) familyOf(keyword string) config.Family {
	if family, ok := p.asm.FamilyOf(keyword); ok {
		return family
	}
	return config.FamilyDouble
}

func (p *Processor) boxFor(bounds []int) (*grid.Box, error) {
	if bounds == nil {
		return grid.FullBox(p.asm.Geometry()), nil
	}
	return grid.NewBox(p.asm.Geometry(),
		bounds[0], bounds[1], bounds[2], bounds[3], bounds[4], bounds[5])
}

func toIntValues(keyword string, values []float64) ([]int, error) {
	out := make([]int, len(values))
	for i, f := range values {
		n := int(f)
		if float64(n) != f {
			return nil, fmt.Errorf("keyword %q: value %v is not an integer", keyword, f)
		}
		out[i] = n
	}
	return out, nil
}
