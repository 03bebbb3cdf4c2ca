// Package configurator holds the flow, validation, pricing and session
// logic of the product configurator. Everything in here is pure: the
// HTTP layer and the stores live elsewhere and feed data in.
package configurator

import "fmt"

// StepType is the flow-ready (lower-cased) step kind.
type StepType string

const (
	StepTypeOptions     StepType = "options"
	StepTypeMeasurement StepType = "measurement"
)

// Measurement field names as they appear on the wire and in the
// storefront inputs.
const (
	FieldWidth  = "breite"
	FieldHeight = "hoehe"
)

// Range is an inclusive [Min, Max] bound in millimeters.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Option is one selectable alternative of an options step.
type Option struct {
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`

	// NextStepKeys replaces the remaining flow when this option is
	// selected. nil means "no branching effect"; an empty list means
	// "this is the last step".
	NextStepKeys []string `json:"showSteps"`
}

// Step is one screen of the configuration flow.
type Step struct {
	Key         string   `json:"key"`
	Type        StepType `json:"type"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`

	// Options steps only.
	Options []Option `json:"options,omitempty"`

	// Measurement steps only.
	Width  Range `json:"width,omitempty"`
	Height Range `json:"height,omitempty"`
}

// ProductInfo is the display/pricing header of a configuration.
type ProductInfo struct {
	ID               string  `json:"id"`
	ShopifyProductID string  `json:"shopifyProductId,omitempty"`
	Name             string  `json:"name"`
	BasePrice        float64 `json:"basePrice"`
}

// MatrixEntry maps a width/height bracket pair to a fixed price.
// Entries may overlap; lookup order resolves ambiguity (first wins).
type MatrixEntry struct {
	WidthMin  int     `json:"widthMin"`
	WidthMax  int     `json:"widthMax"`
	HeightMin int     `json:"heightMin"`
	HeightMax int     `json:"heightMax"`
	Price     float64 `json:"price"`
}

// Config is the flow-ready configuration of a single product, as served
// to the storefront and consumed by the evaluators.
type Config struct {
	Product ProductInfo   `json:"product"`
	Steps   []Step        `json:"steps"`
	Matrix  []MatrixEntry `json:"-"`

	// PricePerSqM is the fallback rate applied when no matrix entry
	// matches a measurement. Zero by default: an unmatched measurement
	// contributes nothing.
	PricePerSqM float64 `json:"-"`
}

// StepByKey returns the step with the given key, or nil.
func (c *Config) StepByKey(key string) *Step {
	for i := range c.Steps {
		if c.Steps[i].Key == key {
			return &c.Steps[i]
		}
	}
	return nil
}

// OptionByValue returns the option with the given value, or nil.
func (s *Step) OptionByValue(value string) *Option {
	for i := range s.Options {
		if s.Options[i].Value == value {
			return &s.Options[i]
		}
	}
	return nil
}

// Validate runs the load-time well-formedness check: step keys unique,
// option values unique within their step, measurement ranges ordered,
// every NextStepKeys entry referencing an existing step. A violation is
// an authoring mistake and is reported as a DefinitionError for the
// admin side; shoppers never see it.
func (c *Config) Validate() error {
	var problems []string

	keys := make(map[string]bool, len(c.Steps))
	for _, step := range c.Steps {
		if step.Key == "" {
			problems = append(problems, "step with empty key")
			continue
		}
		if keys[step.Key] {
			problems = append(problems, fmt.Sprintf("duplicate step key %q", step.Key))
		}
		keys[step.Key] = true
	}

	for _, step := range c.Steps {
		switch step.Type {
		case StepTypeOptions:
			values := make(map[string]bool, len(step.Options))
			for _, opt := range step.Options {
				if values[opt.Value] {
					problems = append(problems, fmt.Sprintf("step %q: duplicate option value %q", step.Key, opt.Value))
				}
				values[opt.Value] = true

				for _, next := range opt.NextStepKeys {
					if !keys[next] {
						problems = append(problems, fmt.Sprintf("step %q option %q: unknown next step %q", step.Key, opt.Value, next))
					}
				}
			}
		case StepTypeMeasurement:
			if step.Width.Min <= 0 || step.Width.Min > step.Width.Max {
				problems = append(problems, fmt.Sprintf("step %q: invalid width range [%d,%d]", step.Key, step.Width.Min, step.Width.Max))
			}
			if step.Height.Min <= 0 || step.Height.Min > step.Height.Max {
				problems = append(problems, fmt.Sprintf("step %q: invalid height range [%d,%d]", step.Key, step.Height.Min, step.Height.Max))
			}
		default:
			problems = append(problems, fmt.Sprintf("step %q: unknown type %q", step.Key, step.Type))
		}
	}

	if len(problems) > 0 {
		return &DefinitionError{ProductID: c.Product.ID, Problems: problems}
	}
	return nil
}
