package sim

import (
	"math"
	"math/rand/v2"
	"sync"
)

// snapEpsilon is the threshold within which a measurement probability is
// snapped to exactly 0 or 1. Chosen so that syndrome extraction from a
// computational-basis state yields deterministic outcomes even after many
// floating-point operations; a smaller threshold breaks surface-code
// determinism, a larger one would mask real superpositions.
const snapEpsilon = 1e-6

var (
	rngOnce sync.Once
	rng     *rand.Rand
	rngMu   sync.Mutex
)

// defaultRNG returns the package's lazily-initialized singleton RNG,
// seeded from an OS entropy source on first use. The engine itself is not
// thread-safe, so the RNG need not be either; rngMu only guards the
// lazy-init/SetSeed race, not per-call sampling.
func defaultRNG() *rand.Rand {
	rngOnce.Do(func() {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	})
	return rng
}

// SetSeed reseeds the package-level RNG deterministically. Intended for
// collaborators (e.g. the CLI's --seed flag) that need reproducible runs;
// the core engine's own observable contract — outcomes weighted by
// |amplitude|^2 — is unaffected by which RNG implementation or seed is in
// use.
func SetSeed(seed uint64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	// Consume the lazy init so a later defaultRNG call keeps this seed.
	rngOnce.Do(func() {})
	rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func urand() float64 {
	rngMu.Lock()
	r := defaultRNG()
	rngMu.Unlock()
	return r.Float64()
}

// MeasureAll renormalizes s, samples a basis index weighted by
// |amplitude|^2, and collapses s to the one-hot vector at that index.
// Returns the sampled index.
//
// A zero-norm input (degenerate state) returns 0 without modifying s.
func (s *State) MeasureAll() uint64 {
	s.Renormalize()

	var total float64
	for _, a := range s.Amps {
		total += real(a)*real(a) + imag(a)*imag(a)
	}
	if total <= 0 {
		return 0
	}

	r := urand()
	var cum float64
	idx := uint64(len(s.Amps) - 1)
	for i, a := range s.Amps {
		cum += real(a)*real(a) + imag(a)*imag(a)
		if r < cum {
			idx = uint64(i)
			break
		}
	}

	for i := range s.Amps {
		s.Amps[i] = 0
	}
	s.Amps[idx] = 1
	return idx
}

// MeasureQubitZ measures qubit t of s in the Z basis, collapsing s onto
// the outcome's eigenspace and rescaling the surviving amplitudes to unit
// norm. Returns the outcome bit (0 or 1).
//
// An out-of-range target (t < 0, t >= s.N, or 2^t >= 2^N) returns 0
// without modifying s. A zero-norm input (degenerate state) also returns 0
// without modifying s.
func (s *State) MeasureQubitZ(t int) int {
	n := len(s.Amps)
	if t < 0 || t >= s.N {
		return 0
	}
	step := 1 << t
	if step >= n {
		return 0
	}
	block := step << 1

	var n0, n1 float64
	for base := 0; base < n; base += block {
		for off := 0; off < step; off++ {
			a0 := s.Amps[base+off]
			a1 := s.Amps[base+off+step]
			n0 += real(a0)*real(a0) + imag(a0)*imag(a0)
			n1 += real(a1)*real(a1) + imag(a1)*imag(a1)
		}
	}

	denom := n0 + n1
	if denom <= 0 {
		return 0
	}
	p0 := n0 / denom
	switch {
	case p0 <= snapEpsilon:
		p0 = 0
	case p0 >= 1-snapEpsilon:
		p0 = 1
	}

	var outcome int
	switch p0 {
	case 0:
		outcome = 1
	case 1:
		outcome = 0
	default:
		if urand() < p0 {
			outcome = 0
		} else {
			outcome = 1
		}
	}

	keepNorm := n1
	if outcome == 0 {
		keepNorm = n0
	}
	var inv complex128
	if keepNorm > 0 {
		inv = complex(1/math.Sqrt(keepNorm), 0)
	}

	for base := 0; base < n; base += block {
		for off := 0; off < step; off++ {
			i0 := base + off
			i1 := i0 + step
			if outcome == 0 {
				s.Amps[i0] *= inv
				s.Amps[i1] = 0
			} else {
				s.Amps[i0] = 0
				s.Amps[i1] *= inv
			}
		}
	}
	return outcome
}
