package sim

import (
	"errors"
	"testing"
)

func validConfig() RunConfig {
	return RunConfig{
		L:           10,
		Density:     0.5,
		Sweeps:      100,
		Checkpoints: 10,
		Samples:     20,
		SeedState:   12345,
		SeedSeq:     67890,
	}
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr bool
	}{
		{"valid", func(c *RunConfig) {}, false},
		{"zero side", func(c *RunConfig) { c.L = 0 }, true},
		{"negative side", func(c *RunConfig) { c.L = -5 }, true},
		{"oversized side", func(c *RunConfig) { c.L = maxSide + 1 }, true},
		{"zero density", func(c *RunConfig) { c.Density = 0 }, true},
		{"density one", func(c *RunConfig) { c.Density = 1 }, true},
		{"density above one", func(c *RunConfig) { c.Density = 1.5 }, true},
		{"zero sweeps", func(c *RunConfig) { c.Sweeps = 0 }, true},
		{"zero checkpoints", func(c *RunConfig) { c.Checkpoints = 0 }, true},
		{"non-dividing checkpoints", func(c *RunConfig) { c.Checkpoints = 7 }, true},
		{"zero samples", func(c *RunConfig) { c.Samples = 0 }, true},
		{"checkpoints equal sweeps", func(c *RunConfig) { c.Checkpoints = 100 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrConfig) {
					t.Errorf("error %v does not wrap ErrConfig", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRunConfig_Period(t *testing.T) {
	cfg := validConfig()
	if got := cfg.Period(); got != 10 {
		t.Errorf("Period() = %d, want 10", got)
	}
}
