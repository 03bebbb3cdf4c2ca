package configurator

import (
	"strings"
	"testing"
)

func TestValidateMeasurementField(t *testing.T) {
	cfg := testConfig()
	step := cfg.StepByKey("masse")

	tests := []struct {
		name         string
		field        string
		value        int
		wantErr      bool
		wantContains []string
	}{
		{
			name:    "width in range",
			field:   FieldWidth,
			value:   500,
			wantErr: false,
		},
		{
			name:    "width at lower bound",
			field:   FieldWidth,
			value:   300,
			wantErr: false,
		},
		{
			name:    "width at upper bound",
			field:   FieldWidth,
			value:   1500,
			wantErr: false,
		},
		{
			name:    "width below range",
			field:   FieldWidth,
			value:   200,
			wantErr: true,
			wantContains: []string{
				"200 mm", "20 cm", "300", "1500", "150 cm", "Breite",
			},
		},
		{
			name:    "height above range",
			field:   FieldHeight,
			value:   2000,
			wantErr: true,
			wantContains: []string{
				"2000 mm", "200 cm", "400", "1800", "Höhe",
			},
		},
		{
			name:    "missing value is unanswered, not invalid",
			field:   FieldWidth,
			value:   0,
			wantErr: false,
		},
		{
			name:    "half centimeter rendered without padding",
			field:   FieldWidth,
			value:   205,
			wantErr: true,
			wantContains: []string{
				"205 mm", "20.5 cm",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := ValidateMeasurementField(step, tt.field, tt.value)

			if (fe != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", fe, tt.wantErr)
			}
			if fe == nil {
				return
			}
			if fe.Field != tt.field {
				t.Errorf("Field = %q, want %q", fe.Field, tt.field)
			}
			for _, part := range tt.wantContains {
				if !strings.Contains(fe.Message, part) {
					t.Errorf("message %q does not contain %q", fe.Message, part)
				}
			}
		})
	}
}

func TestStepValid(t *testing.T) {
	cfg := testConfig()

	choice := cfg.StepByKey("fenstertyp")
	measure := cfg.StepByKey("masse")

	empty := NewSession(cfg)
	if StepValid(choice, empty) {
		t.Error("choice step without selection must be invalid")
	}

	answered := Apply(cfg, empty, SelectOption{StepKey: "fenstertyp", Value: "normal"})
	if !StepValid(choice, answered) {
		t.Error("choice step with selection must be valid")
	}

	halfMeasured := Apply(cfg, answered, SetMeasurement{Field: FieldWidth, Value: 500})
	if StepValid(measure, halfMeasured) {
		t.Error("measurement step with one field must be invalid")
	}

	outOfRange := Apply(cfg, halfMeasured, SetMeasurement{Field: FieldHeight, Value: 9999})
	if StepValid(measure, outOfRange) {
		t.Error("out-of-range measurement must be invalid")
	}

	measured := Apply(cfg, halfMeasured, SetMeasurement{Field: FieldHeight, Value: 600})
	if !StepValid(measure, measured) {
		t.Error("complete in-range measurement must be valid")
	}
}

func TestStepErrorsRetainValue(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg)
	s = Apply(cfg, s, SetMeasurement{Field: FieldWidth, Value: 200})

	errs := StepErrors(cfg.StepByKey("masse"), s)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Value != 200 {
		t.Errorf("Value = %d, want the entered 200", errs[0].Value)
	}
	// The bad input stays in the session for correction.
	if s.Measurements[FieldWidth] != 200 {
		t.Errorf("entered value was dropped from the session")
	}
}
