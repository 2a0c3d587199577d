// Package walk implements free (non-interacting) random walkers on the
// integer lattice: the 1D and 2D ensemble generators that bracket the
// exclusion-process simulator. Every run is an independent walker with its
// own PCG32 stream derived from a shared seed sequence; ensemble statistics
// are computed across runs per time step.
package walk

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lattice-sim/lattice-sim/sim"
)

// Config1D parameterizes a 1D ensemble walk.
type Config1D struct {
	Runs      int // independent walkers
	Steps     int // steps per walker
	SeedState uint64
	SeedSeq   uint64
}

// Validate reports the first configuration error, wrapped in sim.ErrConfig.
func (c Config1D) Validate() error {
	if c.Runs <= 0 {
		return fmt.Errorf("%w: run count must be positive, got %d", sim.ErrConfig, c.Runs)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: step count must be positive, got %d", sim.ErrConfig, c.Steps)
	}
	return nil
}

// Point1D is the ensemble estimate of <x²(t)> at one time step.
type Point1D struct {
	Step   int
	MeanX2 float64
	StdErr float64
}

// Run1D walks Runs independent 1D walkers for Steps steps each. A walker
// starts at the origin and moves +1 when the deviate exceeds 0.5, else -1.
// Returns per-step ensemble mean of x² with its standard error.
func Run1D(cfg Config1D) ([]Point1D, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// x² samples per step across runs; x2[t][run].
	x2 := make([][]float64, cfg.Steps)
	for t := range x2 {
		x2[t] = make([]float64, cfg.Runs)
	}

	seeds := sim.NewSeedSequence(cfg.SeedState, cfg.SeedSeq)
	for run := 0; run < cfg.Runs; run++ {
		state, seq := seeds.NextPair()
		rng := sim.NewPCG32(state, seq)
		pos := 0
		for t := 0; t < cfg.Steps; t++ {
			if rng.Float64() > 0.5 {
				pos++
			} else {
				pos--
			}
			x2[t][run] = float64(pos * pos)
		}
	}

	points := make([]Point1D, cfg.Steps)
	for t := range points {
		points[t] = Point1D{
			Step:   t + 1,
			MeanX2: stat.Mean(x2[t], nil),
			StdErr: stdErr(x2[t]),
		}
	}
	return points, nil
}

// stdErr is the standard error of the mean; zero for a single-run ensemble
// where the sample standard deviation is undefined.
func stdErr(samples []float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	return stat.StdDev(samples, nil) / math.Sqrt(float64(n))
}

// WriteTable1D writes the ensemble as a text table: step, <x²>, stderr.
func WriteTable1D(w io.Writer, points []Point1D) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# step  x2_mean  x2_err\n")
	for _, p := range points {
		fmt.Fprintf(bw, "%d %.6f %.6f\n", p.Step, p.MeanX2, p.StdErr)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing walk table: %w", err)
	}
	return nil
}
