package seed

import "math/rand/v2"

// Stream is a deterministic pseudo-random sequence keyed by a seed value.
// It is not safe for concurrent use.
type Stream struct {
	rng   *rand.Rand
	pcg   *rand.PCG
	draws int
}

// NewStream returns a stream positioned at the first output for s.
func NewStream(s Seed) *Stream {
	st := &Stream{pcg: rand.NewPCG(0, 0)}
	st.rng = rand.New(st.pcg)
	st.Reset(s.Value())
	return st
}

// Reset re-seeds the stream. Resetting with the same value always yields
// the same first output.
func (st *Stream) Reset(v uint64) {
	st.pcg.Seed(v, v^0xdeadbeef)
	st.draws = 0
}

// Float64 returns the next value in [0, 1).
func (st *Stream) Float64() float64 {
	st.draws++
	return st.rng.Float64()
}

// Range returns a value in [lo, hi). If hi <= lo it returns lo and still
// advances the stream, so call counts stay independent of arguments.
func (st *Stream) Range(lo, hi float64) float64 {
	f := st.Float64()
	if hi <= lo {
		return lo
	}
	return lo + f*(hi-lo)
}

// Intn returns an index in [0, n). It panics if n <= 0.
func (st *Stream) Intn(n int) int {
	if n <= 0 {
		panic("seed: Intn called with non-positive n")
	}
	return int(st.Float64() * float64(n))
}

// Draws reports how many values the stream has produced since the last reset.
func (st *Stream) Draws() int { return st.draws }

// Pick returns a uniformly chosen element of items. It panics on an empty
// slice; callers check length first.
func Pick[T any](st *Stream, items []T) T {
	return items[st.Intn(len(items))]
}
