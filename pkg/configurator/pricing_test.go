package configurator

import "testing"

func TestCalculatePriceMatrixLookup(t *testing.T) {
	cfg := testConfig()

	// 599+1=600 falls into [500,600], 499+1=500 into [400,500].
	_, breakdown := CalculatePrice(cfg, nil, map[string]int{
		FieldWidth:  599,
		FieldHeight: 499,
	}, 1)

	if breakdown.MeasurementPrice != 31.57 {
		t.Errorf("MeasurementPrice = %v, want 31.57", breakdown.MeasurementPrice)
	}
	if want := 81.57; breakdown.Total != want {
		t.Errorf("Total = %v, want %v", breakdown.Total, want)
	}
}

func TestCalculatePriceNoMatrixMatchIsSoft(t *testing.T) {
	cfg := testConfig()

	// 1400x1700 is outside every matrix bracket; with the default
	// rate of 0 the measurement contributes nothing and no error is
	// involved.
	price, breakdown := CalculatePrice(cfg, nil, map[string]int{
		FieldWidth:  1400,
		FieldHeight: 1700,
	}, 1)

	if breakdown.MeasurementPrice != 0 {
		t.Errorf("MeasurementPrice = %v, want 0", breakdown.MeasurementPrice)
	}
	if price != 50 {
		t.Errorf("price = %v, want 50", price)
	}
}

func TestCalculatePriceAreaFallback(t *testing.T) {
	cfg := testConfig()
	cfg.PricePerSqM = 10

	// 1000mm x 1000mm = 1 m².
	_, breakdown := CalculatePrice(cfg, nil, map[string]int{
		FieldWidth:  1000,
		FieldHeight: 1000,
	}, 1)

	if breakdown.MeasurementPrice != 10 {
		t.Errorf("MeasurementPrice = %v, want 10", breakdown.MeasurementPrice)
	}
}

func TestCalculatePriceOptionsAndQuantity(t *testing.T) {
	cfg := testConfig()

	price, breakdown := CalculatePrice(cfg, map[string]string{
		"fenstertyp": "dachfenster",
	}, nil, 2)

	if breakdown.Subtotal != 75 {
		t.Errorf("Subtotal = %v, want 75", breakdown.Subtotal)
	}
	if price != 150.00 {
		t.Errorf("price = %v, want 150.00", price)
	}
	if breakdown.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", breakdown.Quantity)
	}
}

func TestCalculatePriceSkipsUnknownPairs(t *testing.T) {
	cfg := testConfig()

	price, breakdown := CalculatePrice(cfg, map[string]string{
		"fenstertyp":  "dachfenster",
		"ghost-step":  "whatever",
		"befestigung": "no-such-option",
	}, nil, 1)

	if price != 75 {
		t.Errorf("price = %v, want 75", price)
	}
	// OptionsPrice is derived by subtraction, so skipped pairs leave
	// it consistent with the subtotal rather than with a literal sum.
	if breakdown.OptionsPrice != 25 {
		t.Errorf("OptionsPrice = %v, want 25", breakdown.OptionsPrice)
	}
}

func TestCalculatePriceDeterministic(t *testing.T) {
	cfg := testConfig()
	selections := map[string]string{"fenstertyp": "normal", "befestigung": "verstaerkt"}
	measurements := map[string]int{FieldWidth: 599, FieldHeight: 499}

	p1, b1 := CalculatePrice(cfg, selections, measurements, 3)
	p2, b2 := CalculatePrice(cfg, selections, measurements, 3)

	if p1 != p2 {
		t.Errorf("price not stable: %v vs %v", p1, p2)
	}
	if b1 != b2 {
		t.Errorf("breakdown not stable: %+v vs %+v", b1, b2)
	}
}

func TestCalculatePriceNegativeNotClamped(t *testing.T) {
	cfg := testConfig()
	cfg.Steps[1].Options = append(cfg.Steps[1].Options, Option{
		Value: "rabatt", Label: "Rabatt", Price: -100,
	})

	price, _ := CalculatePrice(cfg, map[string]string{"befestigung": "rabatt"}, nil, 1)

	if price != -50 {
		t.Errorf("price = %v, want -50 (unclamped)", price)
	}
}

func TestCalculatePriceMeasurementNeedsBothFields(t *testing.T) {
	cfg := testConfig()

	_, breakdown := CalculatePrice(cfg, nil, map[string]int{FieldWidth: 599}, 1)

	if breakdown.MeasurementPrice != 0 {
		t.Errorf("MeasurementPrice = %v, want 0 with height missing", breakdown.MeasurementPrice)
	}
}

func TestCalculatePriceFirstMatrixMatchWins(t *testing.T) {
	cfg := testConfig()
	// Overlapping entry appended after the canonical one must lose.
	cfg.Matrix = append(cfg.Matrix, MatrixEntry{
		WidthMin: 500, WidthMax: 600, HeightMin: 400, HeightMax: 500, Price: 99.99,
	})

	_, breakdown := CalculatePrice(cfg, nil, map[string]int{
		FieldWidth:  599,
		FieldHeight: 499,
	}, 1)

	if breakdown.MeasurementPrice != 31.57 {
		t.Errorf("MeasurementPrice = %v, want 31.57 (first match)", breakdown.MeasurementPrice)
	}
}
