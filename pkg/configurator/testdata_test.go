package configurator

// testConfig returns the demo basement-window product used across the
// package tests: a branching type step, a fixation step only reachable
// on the "normal" branch and a measurement step with a price matrix.
func testConfig() *Config {
	return &Config{
		Product: ProductInfo{
			ID:        "prod-1",
			Name:      "Kellerfenster",
			BasePrice: 50,
		},
		Steps: []Step{
			{
				Key:   "fenstertyp",
				Type:  StepTypeOptions,
				Title: "Fenstertyp",
				Options: []Option{
					{Value: "normal", Label: "Normal", Price: 0, NextStepKeys: []string{"befestigung", "masse"}},
					{Value: "dachfenster", Label: "Dachfenster", Price: 25, NextStepKeys: []string{"masse"}},
				},
			},
			{
				Key:   "befestigung",
				Type:  StepTypeOptions,
				Title: "Befestigung",
				Options: []Option{
					{Value: "standard", Label: "Standard", Price: 10},
					{Value: "verstaerkt", Label: "Verstärkt", Price: 25},
				},
			},
			{
				Key:    "masse",
				Type:   StepTypeMeasurement,
				Title:  "Maße",
				Width:  Range{Min: 300, Max: 1500},
				Height: Range{Min: 400, Max: 1800},
			},
		},
		Matrix: []MatrixEntry{
			{WidthMin: 400, WidthMax: 500, HeightMin: 400, HeightMax: 500, Price: 24.90},
			{WidthMin: 500, WidthMax: 600, HeightMin: 400, HeightMax: 500, Price: 31.57},
			{WidthMin: 500, WidthMax: 600, HeightMin: 500, HeightMax: 600, Price: 38.20},
		},
	}
}
