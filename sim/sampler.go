package sim

import (
	"github.com/sirupsen/logrus"
)

// Sampler runs the full estimation loop: Samples independent realizations
// of the lattice gas, each swept for Sweeps time units with mean-squared
// displacement recorded at every checkpoint, aggregated into per-checkpoint
// diffusion estimates with error bars.
//
// Each sample draws a fresh seed pair from the sampler's seed sequence and
// owns its lattice and registry for the duration of that sample, so samples
// are statistically independent and share no mutable state.
type Sampler struct {
	cfg   RunConfig
	seeds *SeedSequence
}

// NewSampler validates cfg and builds a sampler whose seed sequence is
// derived from the config's master seed pair.
func NewSampler(cfg RunConfig) (*Sampler, error) {
	return NewSamplerWithSeeds(cfg, NewSeedSequence(cfg.SeedState, cfg.SeedSeq))
}

// NewSamplerWithSeeds is NewSampler with a caller-supplied seed sequence,
// used by batch experiments that thread one sequence through several runs.
func NewSamplerWithSeeds(cfg RunConfig, seeds *SeedSequence) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sampler{cfg: cfg, seeds: seeds}, nil
}

// Run executes all samples sequentially and finalizes the measurement
// series into a Result. One sweep fully completes before the next begins;
// a checkpoint always observes a settled lattice.
func (s *Sampler) Run() (*Result, error) {
	cfg := s.cfg
	period := cfg.Period()

	nb := NewNeighbors(cfg.L)
	series, err := NewSeries(cfg.Checkpoints, period)
	if err != nil {
		return nil, err
	}

	// Per-sample partial measurements, merged into the series after each
	// sample completes.
	partial := make([]float64, cfg.Checkpoints)

	for sample := 0; sample < cfg.Samples; sample++ {
		state, seq := s.seeds.NextPair()
		rng := NewPCG32(state, seq)

		lat, err := NewLattice(cfg.L)
		if err != nil {
			return nil, err
		}
		reg, err := NewRegistry(lat.Volume())
		if err != nil {
			return nil, err
		}

		n := Populate(lat, reg, rng, cfg.Density)
		logrus.Debugf("[sample %03d] N=%d realized density=%.4f seeds=(%d,%d)",
			sample, n, float64(n)/float64(lat.Volume()), state, seq)

		for sweep := 1; sweep <= cfg.Sweeps; sweep++ {
			Sweep(lat, reg, nb, rng)
			if sweep%period == 0 {
				m := sweep/period - 1
				partial[m] = reg.MeanSquaredDisplacement()
			}
		}
		series.Accumulate(partial)
		logrus.Infof("[sample %03d] complete, N=%d", sample, n)
	}

	return &Result{
		Config:      cfg,
		Checkpoints: series.Finalize(cfg.Samples),
	}, nil
}
