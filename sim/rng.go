package sim

// === PCG32 ===

// PCG32 is the uniform deviate source for all simulation randomness:
// M.E. O'Neill's 32-bit permuted congruential generator (XSH-RR output,
// period 2^64). A (state, sequence) seed pair selects one of 2^63
// independent streams; identical seed pairs and call sequences produce
// identical deviates.
//
// Thread-safety: NOT thread-safe. Each sample owns its own stream.
type PCG32 struct {
	state uint64
	inc   uint64
}

const pcg32Mult = 6364136223846793005

// NewPCG32 returns a generator seeded with the given pair.
func NewPCG32(initState, initSeq uint64) *PCG32 {
	r := &PCG32{}
	r.Seed(initState, initSeq)
	return r
}

// Seed resets the generator to the stream selected by (initState, initSeq).
// The increment is forced odd and the state is advanced through two warm-up
// steps, matching the reference seeding procedure.
func (r *PCG32) Seed(initState, initSeq uint64) {
	r.state = 0
	r.inc = (initSeq << 1) | 1
	r.Uint32()
	r.state += initState
	r.Uint32()
}

// Uint32 returns the next uniformly distributed 32-bit value.
func (r *PCG32) Uint32() uint32 {
	old := r.state
	r.state = old*pcg32Mult + r.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Float64 returns the next uniform deviate in [0,1). The divisor 2^32 keeps
// the interval half-open.
func (r *PCG32) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// === SeedSequence ===

// SeedSequence hands out fresh 32-bit seeds from a dedicated PCG32 stream,
// so every sample (or run in a batch) gets an independent seed pair derived
// deterministically from one master pair.
type SeedSequence struct {
	src PCG32
}

// NewSeedSequence creates a seed generator from a master seed pair.
func NewSeedSequence(state, seq uint64) *SeedSequence {
	s := &SeedSequence{}
	s.src.Seed(state, seq)
	return s
}

// Next returns the next 32-bit seed.
func (s *SeedSequence) Next() uint32 {
	return s.src.Uint32()
}

// NextPair returns the next two seeds widened for PCG32 seeding, drawn as
// (state, sequence) in that order.
func (s *SeedSequence) NextPair() (uint64, uint64) {
	a := uint64(s.Next())
	b := uint64(s.Next())
	return a, b
}
