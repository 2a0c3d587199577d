// Package sim provides the core Monte Carlo engine for lattice-gas
// diffusion simulations.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - lattice.go: the periodic occupancy map and precomputed neighbor tables
//   - dynamics.go: one sweep of the exclusion process (N hop attempts)
//   - sampler.go: the sample loop, checkpoint measurements, and final estimates
//
// # Architecture
//
// The sim package owns the exclusion-process state and statistics;
// sub-packages build on it:
//   - sim/walk: free (non-interacting) 1D and 2D random walkers
//   - sim/results: optional SQLite persistence for finished runs
//
// A simulation run is a fixed number of independent samples. Each sample
// owns a fresh Lattice and Registry plus its own PCG32 stream derived from
// the run's master seed pair, so samples never share mutable state. One
// sweep advances Monte Carlo time by one unit regardless of how many hop
// attempts are rejected; mean-squared displacement is measured at evenly
// spaced checkpoint sweeps and aggregated across samples into the
// diffusion-coefficient estimate D(t) = <Δr²(t)> / 4t.
//
// # Determinism
//
// Two runs with the same RunConfig MUST produce bit-for-bit identical
// output tables. Every attempt draws the particle index first and the hop
// direction second, and placement draws exactly one deviate per site in
// row-major order; nothing else consumes randomness.
package sim
