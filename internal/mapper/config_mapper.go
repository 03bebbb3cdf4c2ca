package mapper

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"
)

// BuildConfig reshapes a stored product definition into the flow-ready
// structure the engine and the storefront consume: step types
// lower-cased, options expanded in order, show_steps parsed from its
// stored JSON string into an ordered key list with null kept distinct
// from an empty list.
//
// Parsing or range problems come back as a DefinitionError; a product
// with a broken definition never reaches a shopper.
func BuildConfig(p *entity.Product, pricePerSqM float64) (*configurator.Config, error) {
	cfg := &configurator.Config{
		Product: configurator.ProductInfo{
			ID:               p.Id.String(),
			ShopifyProductID: p.ShopifyProductId,
			Name:             p.Name,
			BasePrice:        p.BasePrice,
		},
		PricePerSqM: pricePerSqM,
	}

	steps := append([]*entity.Step(nil), p.Steps...)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })

	var problems []string
	for _, s := range steps {
		step := configurator.Step{
			Key:         s.Key,
			Title:       s.Title,
			Subtitle:    s.Subtitle,
			Description: s.Description,
			Image:       s.Image,
		}

		switch s.Type {
		case entity.StepTypeOptions:
			step.Type = configurator.StepTypeOptions

			options := append([]*entity.Option(nil), s.Options...)
			sort.SliceStable(options, func(i, j int) bool { return options[i].Order < options[j].Order })

			for _, o := range options {
				opt := configurator.Option{
					Value:       o.Value,
					Label:       o.Label,
					Description: o.Description,
					Image:       o.Image,
					Price:       o.Price,
				}
				if o.ShowSteps != nil {
					var keys []string
					if err := json.Unmarshal([]byte(*o.ShowSteps), &keys); err != nil {
						problems = append(problems, fmt.Sprintf("step %q option %q: malformed show_steps: %v", s.Key, o.Value, err))
						continue
					}
					if keys == nil {
						keys = []string{}
					}
					opt.NextStepKeys = keys
				}
				step.Options = append(step.Options, opt)
			}
		case entity.StepTypeMeasurement:
			step.Type = configurator.StepTypeMeasurement
			if s.WidthMin != nil && s.WidthMax != nil {
				step.Width = configurator.Range{Min: *s.WidthMin, Max: *s.WidthMax}
			}
			if s.HeightMin != nil && s.HeightMax != nil {
				step.Height = configurator.Range{Min: *s.HeightMin, Max: *s.HeightMax}
			}
		default:
			problems = append(problems, fmt.Sprintf("step %q: unknown type %q", s.Key, s.Type))
			continue
		}

		cfg.Steps = append(cfg.Steps, step)
	}

	for _, pm := range p.PriceMatrices {
		cfg.Matrix = append(cfg.Matrix, configurator.MatrixEntry{
			WidthMin:  pm.WidthMin,
			WidthMax:  pm.WidthMax,
			HeightMin: pm.HeightMin,
			HeightMax: pm.HeightMax,
			Price:     pm.Price,
		})
	}

	if len(problems) > 0 {
		return nil, &configurator.DefinitionError{ProductID: p.Id.String(), Problems: problems}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
