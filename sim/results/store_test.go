package results

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-sim/lattice-sim/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Config: sim.RunConfig{
			L: 10, Density: 0.5, Sweeps: 100, Checkpoints: 2, Samples: 20,
			SeedState: 12345, SeedSeq: 67890,
		},
		Checkpoints: []sim.Checkpoint{
			{Sweep: 50, MeanR2: 12.5, D: 0.0625, ErrR2: 0.4, ErrD: 0.002},
			{Sweep: 100, MeanR2: 24.1, D: 0.06025, ErrR2: 0.7, ErrD: 0.00175},
		},
	}
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer store.Close()

	res := testResult()
	runID, err := store.SaveRun(res)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	got, err := store.Measurements(runID)
	require.NoError(t, err)
	if diff := cmp.Diff(res.Checkpoints, got); diff != "" {
		t.Errorf("round-trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestStore_RunsAreIsolated(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer store.Close()

	idA, err := store.SaveRun(testResult())
	require.NoError(t, err)
	idB, err := store.SaveRun(testResult())
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)

	a, err := store.Measurements(idA)
	require.NoError(t, err)
	assert.Len(t, a, 2)
}

func TestStore_UnknownRunHasNoMeasurements(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Measurements("missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")

	store, err := Open(path)
	require.NoError(t, err)
	runID, err := store.SaveRun(testResult())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.Measurements(runID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
