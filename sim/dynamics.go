package sim

// Hop directions, in the order the direction deviate selects them.
const (
	dirPlusX = iota
	dirMinusX
	dirPlusY
	dirMinusY
)

// Sweep advances the exclusion dynamics by one Monte Carlo time unit:
// exactly N hop attempts, N = current particle count. Each attempt draws
// the particle index first and the direction second (the draw order is part
// of the reproducibility contract), resolves the target site through the
// neighbor tables, and either rejects (target occupied: no state change,
// attempt consumed) or accepts (occupancy, wrapped, and unwrapped positions
// all updated). A rejected attempt is an expected Monte Carlo outcome, not
// an error; no fairness across particles is guaranteed within a sweep.
func Sweep(lat *Lattice, reg *Registry, nb *Neighbors, rng *PCG32) {
	n := reg.Len()
	for attempt := 0; attempt < n; attempt++ {
		p := int(rng.Float64() * float64(n))
		pos := reg.Current(p)

		dir := int(4.0 * rng.Float64())
		nx, ny := pos.X, pos.Y
		dx, dy := 0, 0
		switch dir {
		case dirPlusX:
			nx = nb.Next(pos.X)
			dx = 1
		case dirMinusX:
			nx = nb.Prev(pos.X)
			dx = -1
		case dirPlusY:
			ny = nb.Next(pos.Y)
			dy = 1
		case dirMinusY:
			ny = nb.Prev(pos.Y)
			dy = -1
		}

		if lat.Occupant(nx, ny) != Empty {
			continue
		}

		lat.Vacate(pos.X, pos.Y)
		lat.Place(nx, ny, p)
		reg.Move(p, Vec{nx, ny}, dx, dy)
	}
}
