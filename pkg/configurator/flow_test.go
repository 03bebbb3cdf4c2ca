package configurator

import (
	"reflect"
	"testing"
)

func TestInitialFlow(t *testing.T) {
	cfg := testConfig()

	want := []string{"fenstertyp", "befestigung", "masse"}
	if got := InitialFlow(cfg); !reflect.DeepEqual(got, want) {
		t.Errorf("InitialFlow = %v, want %v", got, want)
	}
}

func TestNextStepKey(t *testing.T) {
	flow := []string{"fenstertyp", "befestigung", "masse"}

	tests := []struct {
		name     string
		current  string
		wantNext string
		wantOK   bool
	}{
		{"first step", "fenstertyp", "befestigung", true},
		{"middle step", "befestigung", "masse", true},
		{"last step signals completion", "masse", "", false},
		{"step outside flow signals completion", "ghost", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextStepKey(flow, tt.current)
			if next != tt.wantNext || ok != tt.wantOK {
				t.Errorf("NextStepKey(%q) = (%q, %v), want (%q, %v)",
					tt.current, next, ok, tt.wantNext, tt.wantOK)
			}
		})
	}
}

func TestBranchFlowOrder(t *testing.T) {
	got := branchFlow("fenstertyp", []string{"masse", "befestigung"})

	// The selecting step comes first, then exactly the option's next
	// step keys in their given order.
	want := []string{"fenstertyp", "masse", "befestigung"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("branchFlow = %v, want %v", got, want)
	}
}

func TestInFlowAndIsLastStep(t *testing.T) {
	flow := []string{"fenstertyp", "masse"}

	if InFlow(flow, "befestigung") {
		t.Error("befestigung must be inert outside the active flow")
	}
	if !IsLastStep(flow, "masse") {
		t.Error("masse is the last step")
	}
	if !IsLastStep(flow, "befestigung") {
		t.Error("a step outside the flow counts as last")
	}
	if IsLastStep(flow, "fenstertyp") {
		t.Error("fenstertyp is not the last step")
	}
}
