package walk

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-sim/lattice-sim/sim"
)

func TestRun1D_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config1D
	}{
		{"zero runs", Config1D{Runs: 0, Steps: 10}},
		{"zero steps", Config1D{Runs: 10, Steps: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run1D(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sim.ErrConfig))
		})
	}
}

func TestRun1D_Deterministic(t *testing.T) {
	cfg := Config1D{Runs: 20, Steps: 50, SeedState: 12345, SeedSeq: 67890}
	a, err := Run1D(cfg)
	require.NoError(t, err)
	b, err := Run1D(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun1D_DiffusiveScaling(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	// For the free 1D walk <x²(t)> = t.
	cfg := Config1D{Runs: 2000, Steps: 50, SeedState: 12345, SeedSeq: 67890}
	points, err := Run1D(cfg)
	require.NoError(t, err)
	require.Len(t, points, 50)

	last := points[49]
	assert.Equal(t, 50, last.Step)
	assert.InDelta(t, 50.0, last.MeanX2, 6.0)
	assert.Greater(t, last.StdErr, 0.0)

	// Every step's x² has the parity of the step count, so the first step
	// is exactly 1 for every walker.
	assert.Equal(t, 1.0, points[0].MeanX2)
	assert.Zero(t, points[0].StdErr)
}

func TestRun2D_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config2D
	}{
		{"zero runs", Config2D{Runs: 0, Steps: 10, TargetTime: 5}},
		{"zero steps", Config2D{Runs: 10, Steps: 0, TargetTime: 5}},
		{"target beyond steps", Config2D{Runs: 10, Steps: 10, TargetTime: 11}},
		{"zero target", Config2D{Runs: 10, Steps: 10, TargetTime: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run2D(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sim.ErrConfig))
		})
	}
}

func TestRun2D_SamplesEveryRunAtTargetTime(t *testing.T) {
	cfg := Config2D{Runs: 30, Steps: 40, TargetTime: 40, SeedState: 1, SeedSeq: 2}
	s, err := Run2D(cfg)
	require.NoError(t, err)
	assert.Len(t, s.Positions, 30)
	assert.Equal(t, 40, s.TargetTime)
	assert.Empty(t, s.Trajectory)
}

func TestRun2D_IsotropicStatistics(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	// Free 2D walk at time t: zero-mean displacement per axis, total
	// variance Var(x)+Var(y) ≈ t.
	cfg := Config2D{Runs: 2000, Steps: 64, TargetTime: 64, SeedState: 12345, SeedSeq: 67890}
	s, err := Run2D(cfg)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, s.MeanX, 0.5)
	assert.InDelta(t, 0.0, s.MeanY, 0.5)
	assert.InDelta(t, 64.0, s.VarX+s.VarY, 10.0)
}

func TestRun2D_Trajectory(t *testing.T) {
	cfg := Config2D{
		Runs: 3, Steps: 25, TargetTime: 10,
		SeedState: 7, SeedSeq: 9, RecordTrajectory: true,
	}
	s, err := Run2D(cfg)
	require.NoError(t, err)
	require.Len(t, s.Trajectory, 25)

	// Consecutive positions differ by exactly one unit step on one axis.
	prev := sim.Vec{}
	for i, p := range s.Trajectory {
		dx, dy := p.X-prev.X, p.Y-prev.Y
		assert.Equal(t, 1, dx*dx+dy*dy, "step %d is not a unit hop", i)
		prev = p
	}
	// The sampled position for run 0 lies on its trajectory.
	assert.Equal(t, s.Trajectory[cfg.TargetTime-1], s.Positions[0])
}

func TestWriteTables(t *testing.T) {
	points := []Point1D{{Step: 1, MeanX2: 1, StdErr: 0}}
	var buf bytes.Buffer
	require.NoError(t, WriteTable1D(&buf, points))
	assert.Contains(t, buf.String(), "1 1.000000 0.000000")

	s := &Summary2D{TargetTime: 5, Positions: []sim.Vec{{X: 2, Y: -1}}, MeanX: 2, MeanY: -1}
	buf.Reset()
	require.NoError(t, WriteTable2D(&buf, s))
	assert.Contains(t, buf.String(), "0 5 2 -1")
	assert.Contains(t, buf.String(), "# mean_x = 2.000000")
}
