package configurator

import "github.com/shopspring/decimal"

// Breakdown itemizes a price calculation for display at checkout.
// OptionsPrice is derived by subtraction (subtotal minus base minus
// measurement), not accumulated directly; callers observe this exact
// derivation, so it must not be replaced with a direct sum even though
// the two disagree when unknown selection pairs were skipped.
type Breakdown struct {
	BasePrice        float64 `json:"basePrice"`
	OptionsPrice     float64 `json:"optionsPrice"`
	MeasurementPrice float64 `json:"measurementPrice"`
	Subtotal         float64 `json:"subtotal"`
	Quantity         int     `json:"quantity"`
	Total            float64 `json:"total"`
}

// CalculatePrice computes the total price of a configuration:
// base price, plus the add-ons of every recognized selection, plus the
// measurement price, applied to quantity and rounded to 2 places.
//
// Selection pairs that reference an unknown step or option are skipped
// silently; definitions may change underneath a stored session.
// A negative result is returned as-is, never clamped.
func CalculatePrice(cfg *Config, selections map[string]string, measurements map[string]int, quantity int) (float64, Breakdown) {
	total := decimal.NewFromFloat(cfg.Product.BasePrice)

	for stepKey, value := range selections {
		step := cfg.StepByKey(stepKey)
		if step == nil {
			continue
		}
		opt := step.OptionByValue(value)
		if opt == nil {
			continue
		}
		total = total.Add(decimal.NewFromFloat(opt.Price))
	}

	measurementPrice := decimal.Zero
	width, height := measurements[FieldWidth], measurements[FieldHeight]
	if width > 0 && height > 0 {
		measurementPrice = lookupMeasurementPrice(cfg, width, height)
		total = total.Add(measurementPrice)
	}

	if quantity < 1 {
		quantity = 1
	}

	subtotal := total
	final := subtotal.Mul(decimal.NewFromInt(int64(quantity))).Round(2)

	breakdown := Breakdown{
		BasePrice:        cfg.Product.BasePrice,
		OptionsPrice:     subtotal.Sub(decimal.NewFromFloat(cfg.Product.BasePrice)).Sub(measurementPrice).InexactFloat64(),
		MeasurementPrice: measurementPrice.InexactFloat64(),
		Subtotal:         subtotal.InexactFloat64(),
		Quantity:         quantity,
		Total:            final.InexactFloat64(),
	}

	return final.InexactFloat64(), breakdown
}

// lookupMeasurementPrice finds the matrix entry covering the entered
// width/height. The +1 shift disambiguates touching brackets: a value
// sitting exactly on the shared boundary of two adjacent rows resolves
// to the upper one. The first matching entry wins, in matrix order.
//
// Without a match the price falls back to area times the configured
// per-square-meter rate; with the default rate of 0 an unmatched
// measurement simply contributes nothing.
func lookupMeasurementPrice(cfg *Config, width, height int) decimal.Decimal {
	w, h := width+1, height+1
	for _, entry := range cfg.Matrix {
		if w >= entry.WidthMin && w <= entry.WidthMax &&
			h >= entry.HeightMin && h <= entry.HeightMax {
			return decimal.NewFromFloat(entry.Price)
		}
	}

	area := decimal.NewFromInt(int64(width)).
		Mul(decimal.NewFromInt(int64(height))).
		Div(decimal.NewFromInt(1_000_000))
	return area.Mul(decimal.NewFromFloat(cfg.PricePerSqM))
}
