package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors uint8
		want      bool
		outcome   Outcome
	}{
		{"lonely live cell", true, 0, false, Underpopulation},
		{"live cell one neighbor", true, 1, false, Underpopulation},
		{"live cell two neighbors", true, 2, true, Survival},
		{"live cell three neighbors", true, 3, true, Survival},
		{"live cell four neighbors", true, 4, false, Overpopulation},
		{"live cell eight neighbors", true, 8, false, Overpopulation},
		{"dead cell three neighbors", false, 3, true, Reproduction},
		{"dead cell two neighbors", false, 2, false, Unchanged},
		{"dead cell four neighbors", false, 4, false, Unchanged},
		{"dead cell no neighbors", false, 0, false, Unchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := ApplyConwayRules(tt.alive, tt.neighbors)
			if got != tt.want {
				t.Errorf("ApplyConwayRules(%v, %d) = %v, want %v", tt.alive, tt.neighbors, got, tt.want)
			}
			if outcome != tt.outcome {
				t.Errorf("ApplyConwayRules(%v, %d) outcome = %v, want %v", tt.alive, tt.neighbors, outcome, tt.outcome)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if got := Reproduction.String(); got != "reproduction" {
		t.Errorf("Reproduction.String() = %q", got)
	}
	if got := Outcome(42).String(); got != "unknown" {
		t.Errorf("Outcome(42).String() = %q", got)
	}
}
