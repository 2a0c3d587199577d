package sim

import "fmt"

// Vec is an integer lattice coordinate pair.
type Vec struct {
	X, Y int
}

// Registry tracks per-particle coordinates for one sample. Each particle
// carries three coordinate pairs:
//   - current: wrapped position in [0,L)², kept in sync with the Lattice
//   - origin: position at placement time, never mutated afterwards
//   - abs: unwrapped position accumulating ±1 per accepted hop, no wrap
//
// Invariant: abs ≡ current (mod L) componentwise at all times. All mutation
// after placement goes through Move, which preserves it.
type Registry struct {
	current []Vec
	origin  []Vec
	abs     []Vec
}

// NewRegistry allocates a registry with capacity for up to maxParticles
// particles (the lattice volume: placement can at most fill every site).
func NewRegistry(maxParticles int) (*Registry, error) {
	if maxParticles <= 0 || maxParticles > maxSide*maxSide {
		return nil, fmt.Errorf("%w: position arrays for %d particles", ErrAlloc, maxParticles)
	}
	return &Registry{
		current: make([]Vec, 0, maxParticles),
		origin:  make([]Vec, 0, maxParticles),
		abs:     make([]Vec, 0, maxParticles),
	}, nil
}

// Len returns the number of registered particles.
func (r *Registry) Len() int { return len(r.current) }

// Add registers a new particle at (x,y) and returns its index. Current,
// origin, and unwrapped positions all start at the placement site.
func (r *Registry) Add(x, y int) int {
	p := len(r.current)
	v := Vec{x, y}
	r.current = append(r.current, v)
	r.origin = append(r.origin, v)
	r.abs = append(r.abs, v)
	return p
}

// Current returns particle p's wrapped position.
func (r *Registry) Current(p int) Vec { return r.current[p] }

// Origin returns particle p's placement position.
func (r *Registry) Origin(p int) Vec { return r.origin[p] }

// Abs returns particle p's unwrapped position.
func (r *Registry) Abs(p int) Vec { return r.abs[p] }

// Move records an accepted hop: the wrapped position becomes to, and the
// unwrapped position shifts by (dx,dy) without wraparound.
func (r *Registry) Move(p int, to Vec, dx, dy int) {
	r.current[p] = to
	r.abs[p].X += dx
	r.abs[p].Y += dy
}

// MeanSquaredDisplacement averages the squared Euclidean distance between
// unwrapped and origin positions over all particles. Returns 0 for an
// empty registry (nothing has displaced).
func (r *Registry) MeanSquaredDisplacement() float64 {
	n := len(r.current)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for p := 0; p < n; p++ {
		dx := float64(r.abs[p].X - r.origin[p].X)
		dy := float64(r.abs[p].Y - r.origin[p].Y)
		sum += dx*dx + dy*dy
	}
	return sum / float64(n)
}

// Populate fills the lattice with particles at target density rho: one
// uniform deviate per site in row-major order, a particle placed wherever
// the deviate falls below rho. Returns the realized particle count, a
// random variable that is generally not exactly rho·L²; all downstream
// normalization divides by this realized count.
func Populate(lat *Lattice, reg *Registry, rng *PCG32, rho float64) int {
	side := lat.Side()
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			if rng.Float64() < rho {
				p := reg.Add(x, y)
				lat.Place(x, y, p)
			}
		}
	}
	return reg.Len()
}
