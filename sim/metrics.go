package sim

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
)

// Series accumulates mean-squared-displacement measurements across samples.
// For each checkpoint it keeps a running sum and sum of squares; both are
// zeroed at construction, fed once per sample per checkpoint, and
// normalized exactly once by Finalize.
type Series struct {
	period int
	sumR2  []float64
	sumR4  []float64
}

// NewSeries allocates accumulators for the given number of checkpoints,
// spaced period sweeps apart.
func NewSeries(checkpoints, period int) (*Series, error) {
	if checkpoints <= 0 {
		return nil, fmt.Errorf("%w: measurement arrays for %d checkpoints", ErrAlloc, checkpoints)
	}
	return &Series{
		period: period,
		sumR2:  make([]float64, checkpoints),
		sumR4:  make([]float64, checkpoints),
	}, nil
}

// Checkpoints returns the number of measurement checkpoints.
func (s *Series) Checkpoints() int { return len(s.sumR2) }

// Accumulate merges one sample's per-checkpoint measurements into the
// running sums. values must have exactly Checkpoints() entries.
func (s *Series) Accumulate(values []float64) {
	for m, v := range values {
		s.sumR2[m] += v
		s.sumR4[m] += v * v
	}
}

// Checkpoint is one finalized measurement row.
type Checkpoint struct {
	Sweep  int     // Monte Carlo time t of this checkpoint
	MeanR2 float64 // <Δr²(t)> across samples
	D      float64 // diffusion coefficient estimate MeanR2 / 4t
	ErrR2  float64 // standard error of MeanR2
	ErrD   float64 // standard error of D
}

// Finalize normalizes the accumulated sums over the given sample count.
// Variance is population-style (S2/n - mean²), clamped at zero when the
// estimate goes negative from floating-point noise; the standard error of
// D propagates linearly through the 1/4t normalization.
func (s *Series) Finalize(samples int) []Checkpoint {
	out := make([]Checkpoint, len(s.sumR2))
	for m := range s.sumR2 {
		mean := s.sumR2[m] / float64(samples)
		meanSq := s.sumR4[m] / float64(samples)
		variance := meanSq - mean*mean
		errR2 := 0.0
		if variance > 0 {
			errR2 = math.Sqrt(variance / float64(samples))
		}
		sweep := (m + 1) * s.period
		t := float64(sweep)
		out[m] = Checkpoint{
			Sweep:  sweep,
			MeanR2: mean,
			D:      mean / (4 * t),
			ErrR2:  errR2,
			ErrD:   errR2 / (4 * t),
		}
	}
	return out
}

// Result is one finalized diffusion run.
type Result struct {
	Config      RunConfig
	Checkpoints []Checkpoint
}

// WriteTable writes the run as a text table: a commented header with the
// run parameters, then one row per checkpoint with sweep count, mean
// squared displacement, diffusion coefficient, and both standard errors at
// fixed precision.
func (r *Result) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	c := r.Config
	fmt.Fprintf(bw, "# L = %d  rho_input = %.3f  num_sweeps = %d  num_samples = %d\n",
		c.L, c.Density, c.Sweeps, c.Samples)
	fmt.Fprintf(bw, "# sweep  deltaR2_mean  D_t_mean  err_deltaR2  err_D\n")
	for _, cp := range r.Checkpoints {
		fmt.Fprintf(bw, "%d %.12f %.12f %.12f %.12f\n",
			cp.Sweep, cp.MeanR2, cp.D, cp.ErrR2, cp.ErrD)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing result table: %w", err)
	}
	return nil
}

// WriteFile writes the table to path, or to stdout when path is "-".
func (r *Result) WriteFile(path string) error {
	if path == "" || path == "-" {
		return r.WriteTable(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logrus.Errorf("Error closing file %s: %v", path, closeErr)
		}
	}()
	if err := r.WriteTable(f); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote result table to '%s'", path)
	return nil
}
