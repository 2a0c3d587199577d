package sim

import "fmt"

// Empty marks an unoccupied lattice site.
const Empty = -1

// maxSide bounds the lattice side length so the flattened occupancy map
// never overflows int indexing on 32-bit platforms.
const maxSide = 1 << 15

// Lattice is a periodic L×L occupancy map. Each site holds Empty or the
// index of the particle occupying it; at most one particle per site. Sites
// are only mutated through Place and Vacate.
type Lattice struct {
	side  int
	sites []int // row-major, len = side*side
}

// NewLattice allocates an all-empty L×L lattice.
func NewLattice(side int) (*Lattice, error) {
	if side <= 0 || side > maxSide {
		return nil, fmt.Errorf("%w: occupancy map for side length %d", ErrAlloc, side)
	}
	sites := make([]int, side*side)
	for i := range sites {
		sites[i] = Empty
	}
	return &Lattice{side: side, sites: sites}, nil
}

// Side returns the lattice side length L.
func (l *Lattice) Side() int { return l.side }

// Volume returns the site count L².
func (l *Lattice) Volume() int { return len(l.sites) }

// Occupant returns the particle index at (x,y), or Empty.
func (l *Lattice) Occupant(x, y int) int {
	return l.sites[x*l.side+y]
}

// Place marks (x,y) occupied by particle p. The site must be empty; a
// violation is a bug in the caller, not a runtime input.
func (l *Lattice) Place(x, y, p int) {
	l.sites[x*l.side+y] = p
}

// Vacate clears site (x,y).
func (l *Lattice) Vacate(x, y int) {
	l.sites[x*l.side+y] = Empty
}

// Occupied counts occupied sites. O(L²), used by invariant checks only.
func (l *Lattice) Occupied() int {
	n := 0
	for _, s := range l.sites {
		if s != Empty {
			n++
		}
	}
	return n
}

// Neighbors holds precomputed periodic successor/predecessor coordinates,
// so the hot loop resolves hop targets without modulo arithmetic. Read-only
// after construction.
type Neighbors struct {
	next []int
	prev []int
}

// NewNeighbors builds the lookup tables for side length L.
func NewNeighbors(side int) *Neighbors {
	n := &Neighbors{
		next: make([]int, side),
		prev: make([]int, side),
	}
	for i := 0; i < side; i++ {
		n.next[i] = i + 1
		n.prev[i] = i - 1
	}
	n.next[side-1] = 0
	n.prev[0] = side - 1
	return n
}

// Next returns (i+1) mod L.
func (n *Neighbors) Next(i int) int { return n.next[i] }

// Prev returns (i-1) mod L.
func (n *Neighbors) Prev(i int) int { return n.prev[i] }
