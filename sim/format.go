package sim

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"
)

// FormatOptions controls FormatState's output.
type FormatOptions struct {
	MaxTerms  int     // 0 means unlimited
	Cutoff    float64 // terms with probability below this are omitted
	Precision int
	ShowProb  bool
	ShowPhase bool
}

// DefaultFormatOptions mirrors the defaults used by the reference
// pretty-printer this is grounded on.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{MaxTerms: 8, Cutoff: 1e-9, Precision: 6, ShowProb: true, ShowPhase: false}
}

type formatTerm struct {
	idx  uint64
	amp  complex128
	prob float64
}

// FormatState renders s as a human-readable list of ket terms, sorted by
// probability descending, truncated to opts.MaxTerms and opts.Cutoff. Kets
// are printed MSB-first (the highest-numbered qubit appears leftmost).
func FormatState(s *State, opts FormatOptions) string {
	var sumSq float64
	for _, a := range s.Amps {
		sumSq += real(a)*real(a) + imag(a)*imag(a)
	}
	if sumSq == 0 {
		return "|psi> = (all zero)"
	}
	norm := math.Sqrt(sumSq)

	terms := make([]formatTerm, 0, len(s.Amps))
	for i, a := range s.Amps {
		amp := a / complex(norm, 0)
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		if p >= opts.Cutoff {
			terms = append(terms, formatTerm{idx: uint64(i), amp: amp, prob: p})
		}
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].prob > terms[j].prob })
	if opts.MaxTerms > 0 && len(terms) > opts.MaxTerms {
		terms = terms[:opts.MaxTerms]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "|psi> (n=%d qubits)  nonzero terms: %d  (cutoff=%g)\n", s.N, len(terms), opts.Cutoff)
	for _, t := range terms {
		fmt.Fprintf(&sb, "  |%s>  amp=%s", bitstring(t.idx, s.N), formatComplex(t.amp, opts.Precision))
		if opts.ShowProb {
			fmt.Fprintf(&sb, "  P=%.*f", opts.Precision, t.prob)
		}
		if opts.ShowPhase {
			fmt.Fprintf(&sb, "  phase=%.*f", opts.Precision, cmplx.Phase(t.amp))
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// bitstring renders index x as an n-bit binary string, most-significant
// bit first.
func bitstring(x uint64, n int) string {
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		if x&(1<<uint(i)) != 0 {
			b[n-1-i] = '1'
		} else {
			b[n-1-i] = '0'
		}
	}
	return string(b)
}

func formatComplex(z complex128, prec int) string {
	re, im := real(z), imag(z)
	sign := "+"
	if im < 0 {
		sign = ""
	}
	return fmt.Sprintf("(%.*f%s%.*fi)", prec, re, sign, prec, im)
}
