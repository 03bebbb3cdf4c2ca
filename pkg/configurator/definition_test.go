package configurator

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateWellFormed(t *testing.T) {
	if err := testConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantMsg string
	}{
		{
			name: "unknown next step key",
			mutate: func(cfg *Config) {
				cfg.Steps[0].Options[0].NextStepKeys = []string{"montage"}
			},
			wantMsg: `unknown next step "montage"`,
		},
		{
			name: "duplicate step key",
			mutate: func(cfg *Config) {
				cfg.Steps[1].Key = "fenstertyp"
			},
			wantMsg: `duplicate step key "fenstertyp"`,
		},
		{
			name: "duplicate option value",
			mutate: func(cfg *Config) {
				cfg.Steps[1].Options[1].Value = "standard"
			},
			wantMsg: `duplicate option value "standard"`,
		},
		{
			name: "inverted width range",
			mutate: func(cfg *Config) {
				cfg.Steps[2].Width = Range{Min: 1500, Max: 300}
			},
			wantMsg: "invalid width range",
		},
		{
			name: "non-positive height minimum",
			mutate: func(cfg *Config) {
				cfg.Steps[2].Height = Range{Min: 0, Max: 1800}
			},
			wantMsg: "invalid height range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a DefinitionError")
			}

			var defErr *DefinitionError
			if !errors.As(err, &defErr) {
				t.Fatalf("error type = %T, want *DefinitionError", err)
			}
			if defErr.ProductID != "prod-1" {
				t.Errorf("ProductID = %q, want prod-1", defErr.ProductID)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := testConfig()
	cfg.Steps[0].Options[0].NextStepKeys = []string{"montage"}
	cfg.Steps[2].Width = Range{Min: 500, Max: 400}

	err := cfg.Validate()
	var defErr *DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("error type = %T", err)
	}
	if len(defErr.Problems) != 2 {
		t.Errorf("Problems = %v, want 2 entries", defErr.Problems)
	}
}
