package hcl

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/deckgridgo/internal/config"
	"github.com/vk/deckgridgo/internal/schema"
)

// translateKeyword converts an HCL keyword manifest into the agnostic model.
func translateKeyword(manifest *schema.KeywordManifest) (*config.KeywordDefinition, error) {
	family, err := translateFamily(manifest.Family)
	if err != nil {
		return nil, fmt.Errorf("keyword %q: %w", manifest.Name, err)
	}

	defaultValue, err := evalNumber(manifest.Default)
	if err != nil {
		return nil, fmt.Errorf("keyword %q default: %w", manifest.Name, err)
	}

	return &config.KeywordDefinition{
		Name:        manifest.Name,
		Family:      family,
		Default:     defaultValue,
		Dimension:   manifest.Dimension,
		PostProcess: manifest.PostProcess,
	}, nil
}

func translateFamily(family string) (config.Family, error) {
	switch family {
	case "", string(config.FamilyDouble):
		return config.FamilyDouble, nil
	case string(config.FamilyInt):
		return config.FamilyInt, nil
	default:
		return "", fmt.Errorf("unknown property family %q (want 'double' or 'int')", family)
	}
}

// translateGrid converts a deck's grid block into the agnostic model.
func translateGrid(block *hcl.Block) (*config.GridDefinition, error) {
	var gridBlock schema.GridBlock
	if diags := gohcl.DecodeBody(block.Body, nil, &gridBlock); diags.HasErrors() {
		return nil, fmt.Errorf("grid block at %s: %w", block.DefRange, diags)
	}
	return &config.GridDefinition{NX: gridBlock.NX, NY: gridBlock.NY, NZ: gridBlock.NZ}, nil
}

// translateOperation converts one deck operation block into the agnostic
// model.
func translateOperation(block *hcl.Block) (*config.Operation, error) {
	op := &config.Operation{DeclRange: block.DefRange}

	switch block.Type {
	case "add", "default":
		// Bare blocks: the body must be empty.
		if _, diags := block.Body.Content(&hcl.BodySchema{}); diags.HasErrors() {
			return nil, fmt.Errorf("%s block at %s: %w", block.Type, block.DefRange, diags)
		}
		op.Kind = config.OpKind(block.Type)
		op.Keyword = block.Labels[0]

	case "set":
		var setBlock schema.SetBlock
		if diags := gohcl.DecodeBody(block.Body, nil, &setBlock); diags.HasErrors() {
			return nil, fmt.Errorf("set block at %s: %w", block.DefRange, diags)
		}
		values, err := evalNumberList(setBlock.Values)
		if err != nil {
			return nil, fmt.Errorf("set block at %s: %w", block.DefRange, err)
		}
		op.Kind = config.OpSet
		op.Keyword = block.Labels[0]
		op.Values = values

	case "copy":
		var copyBlock schema.CopyBlock
		if diags := gohcl.DecodeBody(block.Body, nil, &copyBlock); diags.HasErrors() {
			return nil, fmt.Errorf("copy block at %s: %w", block.DefRange, diags)
		}
		op.Kind = config.OpCopy
		op.Source = copyBlock.Source
		op.Target = copyBlock.Target
		if copyBlock.Box != nil {
			box, err := evalBox(copyBlock.Box)
			if err != nil {
				return nil, fmt.Errorf("copy block at %s: %w", block.DefRange, err)
			}
			op.Box = box
		}

	default:
		return nil, fmt.Errorf("unexpected block type %q at %s", block.Type, block.DefRange)
	}

	return op, nil
}

func evalNumber(expr hcl.Expression) (float64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	val, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, err
	}
	f, _ := val.AsBigFloat().Float64()
	return f, nil
}

func evalNumberList(expr hcl.Expression) ([]float64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("expected a list of numbers, got %s", val.Type().FriendlyName())
	}

	var out []float64
	for it := val.ElementIterator(); it.Next(); {
		_, element := it.Element()
		element, err := convert.Convert(element, cty.Number)
		if err != nil {
			return nil, err
		}
		f, _ := element.AsBigFloat().Float64()
		out = append(out, f)
	}
	return out, nil
}

// evalBox evaluates a box expression into the six inclusive cell-range
// bounds i1, i2, j1, j2, k1, k2.
func evalBox(expr hcl.Expression) ([]int, error) {
	values, err := evalNumberList(expr)
	if err != nil {
		return nil, err
	}
	if len(values) != 6 {
		return nil, fmt.Errorf("box needs 6 bounds (i1, i2, j1, j2, k1, k2), got %d", len(values))
	}
	bounds := make([]int, 6)
	for i, f := range values {
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("box bound %v is not an integer", f)
		}
		bounds[i] = int(f)
	}
	return bounds, nil
}
