package sim

import "fmt"

// RunConfig holds every parameter of one diffusion run. A RunConfig is
// validated in full before any simulation work starts; there are no
// partial runs.
type RunConfig struct {
	L           int     // lattice side length (sites per axis)
	Density     float64 // target occupation probability per site, in (0,1)
	Sweeps      int     // Monte Carlo time units per sample
	Checkpoints int     // measurements per sample; must divide Sweeps
	Samples     int     // independent samples to average over
	SeedState   uint64  // master seed pair for the seed generator
	SeedSeq     uint64
}

// Validate reports the first configuration error, wrapped in ErrConfig.
func (c RunConfig) Validate() error {
	if c.L <= 0 {
		return fmt.Errorf("%w: lattice side must be positive, got %d", ErrConfig, c.L)
	}
	if c.L > maxSide {
		return fmt.Errorf("%w: lattice side %d exceeds maximum %d", ErrConfig, c.L, maxSide)
	}
	if c.Density <= 0 || c.Density >= 1 {
		return fmt.Errorf("%w: density must be in (0,1), got %g", ErrConfig, c.Density)
	}
	if c.Sweeps <= 0 {
		return fmt.Errorf("%w: sweep count must be positive, got %d", ErrConfig, c.Sweeps)
	}
	if c.Checkpoints <= 0 {
		return fmt.Errorf("%w: checkpoint count must be positive, got %d", ErrConfig, c.Checkpoints)
	}
	if c.Sweeps%c.Checkpoints != 0 {
		return fmt.Errorf("%w: sweep count %d is not a multiple of checkpoint count %d",
			ErrConfig, c.Sweeps, c.Checkpoints)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: sample count must be positive, got %d", ErrConfig, c.Samples)
	}
	return nil
}

// Period returns the sweeps between measurements. Only meaningful after
// Validate has passed.
func (c RunConfig) Period() int {
	return c.Sweeps / c.Checkpoints
}
