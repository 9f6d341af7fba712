// Command qcore is the command-line collaborator described in spec.md §6:
// it parses the flag surface, orchestrates repeated syndrome-extraction
// rounds over a rotated surface code, and formats the results. It is a
// thin layer over the sim/surface/noise/trace packages — argument parsing,
// usage text, and output formatting live here, not in the core.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"

	"qcore/noise"
	"qcore/sim"
	"qcore/surface"
	"qcore/trace"
	"qcore/tui"
)

// intList accumulates repeated occurrences of a flag (e.g. "--x 2 --x 5")
// into a slice, the way flag.Var is meant to be used for repeatable flags.
type intList struct {
	vals *[]int
}

func (l intList) String() string {
	if l.vals == nil {
		return ""
	}
	return fmt.Sprint(*l.vals)
}

func (l intList) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", s, err)
	}
	*l.vals = append(*l.vals, v)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr *os.File) error {
	fs := flag.NewFlagSet("qcore", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		d        = fs.Int("d", 3, "rotated-surface-code distance (odd, >= 3)")
		rounds   = fs.Int("rounds", 1, "number of independent syndrome-extraction rounds")
		noiseP   = fs.Float64("noise-p", 0, "per-data-qubit depolarizing error probability in [0,1]")
		seed     = fs.Uint64("seed", 0, "RNG seed (0 = seed from OS entropy)")
		useTUI   = fs.Bool("tui", false, "launch the interactive round viewer instead of printing")
		verbose  = fs.Bool("verbose", false, "log run-level diagnostics to stderr")
		xs, zs, ys []int
	)
	fs.Var(intList{&xs}, "x", "inject a Pauli-X error on data qubit i (repeatable)")
	fs.Var(intList{&zs}, "z", "inject a Pauli-Z error on data qubit i (repeatable)")
	fs.Var(intList{&ys}, "y", "inject a Pauli-Y error on data qubit i (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: qcore [options]\n")
		fmt.Fprintf(stderr, "  --d <odd>=3        rotated surface-code distance\n")
		fmt.Fprintf(stderr, "  --x <i>            inject X on data qubit i (0..d*d-1), repeatable\n")
		fmt.Fprintf(stderr, "  --z <i>            inject Z on data qubit i, repeatable\n")
		fmt.Fprintf(stderr, "  --y <i>            inject Y on data qubit i, repeatable\n")
		fmt.Fprintf(stderr, "  --rounds <N>=1     number of syndrome-extraction rounds\n")
		fmt.Fprintf(stderr, "  --noise-p <p>=0    per-data-qubit depolarizing probability\n")
		fmt.Fprintf(stderr, "  --seed <u64>       RNG seed\n")
		fmt.Fprintf(stderr, "  --tui              launch the interactive viewer\n")
		fmt.Fprintf(stderr, "  --verbose          log run diagnostics\n")
		fmt.Fprintf(stderr, "  --help             show this help\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: levelFor(*verbose),
	}))

	if *d < 3 || *d%2 == 0 {
		return fmt.Errorf("--d must be an odd integer >= 3, got %d", *d)
	}
	if *rounds < 1 {
		return fmt.Errorf("--rounds must be a positive integer, got %d", *rounds)
	}
	if *noiseP < 0 || *noiseP > 1 {
		return fmt.Errorf("--noise-p must be in [0,1], got %v", *noiseP)
	}

	sc := surface.Build(*d)
	for name, list := range map[string][]int{"x": xs, "y": ys, "z": zs} {
		for _, q := range list {
			if q < 0 || q >= sc.NData {
				return fmt.Errorf("--%s %d out of range 0..%d", name, q, sc.NData-1)
			}
		}
	}

	if *seed != 0 {
		sim.SetSeed(*seed)
	}
	logger.Debug("run starting", "d", *d, "rounds", *rounds, "noise_p", *noiseP, "seed", *seed)

	var injections []trace.Injection
	for _, q := range xs {
		injections = append(injections, trace.Injection{Qubit: q, Pauli: noise.PauliX})
	}
	for _, q := range ys {
		injections = append(injections, trace.Injection{Qubit: q, Pauli: noise.PauliY})
	}
	for _, q := range zs {
		injections = append(injections, trace.Injection{Qubit: q, Pauli: noise.PauliZ})
	}

	var rnd *rand.Rand
	if *noiseP > 0 {
		if *seed != 0 {
			rnd = rand.New(rand.NewPCG(*seed, *seed^0xabc))
		} else {
			rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}

	results := trace.Run(trace.Config{
		Code:       sc,
		Rounds:     *rounds,
		Injections: injections,
		NoiseP:     *noiseP,
		Rand:       rnd,
	})
	logger.Debug("run complete", "rounds_executed", len(results))

	if *useTUI {
		return tui.Run(sc, results)
	}

	fmt.Fprintf(stdout, "rotated surface code d=%d  n_qubits=%d  z_checks=%d  x_checks=%d\n",
		sc.D, sc.NQubits, len(sc.ZCheck), len(sc.XCheck))
	for i, r := range results {
		fmt.Fprintf(stdout, "round %d  Z syndrome: %s  X syndrome: %s\n", i, formatBits(r.ZSyndrome), formatBits(r.XSyndrome))
	}
	return nil
}

func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func formatBits(bits []int) string {
	s := ""
	for i, b := range bits {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(b)
	}
	return s
}
