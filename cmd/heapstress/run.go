package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/heapkit/heapkit/heap"
	"github.com/spf13/cobra"
)

var (
	runOps      int
	runMaxSize  int
	runCapacity int
	runSeed     uint64
	runTrack    bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVar(&runOps, "ops", 100, "Number of random operations")
	cmd.Flags().IntVar(&runMaxSize, "max-size", 64<<10, "Maximum allocation size in bytes")
	cmd.Flags().IntVar(&runCapacity, "capacity", 1<<20, "Arena capacity in bytes")
	cmd.Flags().Uint64Var(&runSeed, "seed", 0, "RNG seed (0 = derive from current time)")
	cmd.Flags().BoolVar(&runTrack, "track", false, "Enable live-ref tracking (catches driver bugs)")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a random allocate/free workload",
		Long: `The run command performs a sequence of random operations against a fresh
heap: each step either allocates a block of random size or frees a randomly
chosen outstanding block. All blocks still outstanding at the end are freed
before the stats report is printed.

Example:
  heapstress run
  heapstress run --ops 10000 --max-size 4096 --capacity 8388608
  heapstress run --seed 42 --track -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(os.Stdout)
		},
	}
}

// opLogger returns the per-operation trace logger: stderr when verbose,
// discarded otherwise.
func opLogger() *slog.Logger {
	if verbose && !quiet {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runStress(out io.Writer) error {
	seed := runSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	log := opLogger()
	printInfo("running %d random operations (seed %d, max size %d, capacity %d)\n",
		runOps, seed, runMaxSize, runCapacity)

	opts := []heap.Option{heap.WithCapacity(runCapacity)}
	if runTrack {
		opts = append(opts, heap.WithLiveTracking())
	}
	h, err := heap.New(opts...)
	if err != nil {
		return err
	}
	defer h.Close()

	// One slot per operation, as outstanding-block bookkeeping. A slot holds
	// NilRef until its operation allocates, and again after a free.
	slots := make([]heap.Ref, runOps)
	for i := range slots {
		slots[i] = heap.NilRef
	}

	failures := 0
	for i := 0; i < runOps; i++ {
		if rng.IntN(2) == 0 {
			size := rng.IntN(runMaxSize) + 1
			ref, _, err := h.Alloc(size)
			if err != nil {
				failures++
				log.Info("alloc failed", "op", i, "size", size, "err", err)
				continue
			}
			slots[i] = ref
			log.Info("alloc", "op", i, "size", size, "ref", ref)
		} else {
			idx := rng.IntN(runOps)
			if slots[idx] == heap.NilRef {
				continue
			}
			if err := h.Free(slots[idx]); err != nil {
				return fmt.Errorf("free ref %#x: %w", slots[idx], err)
			}
			log.Info("free", "op", i, "ref", slots[idx])
			slots[idx] = heap.NilRef
		}
	}

	// Drain everything still outstanding.
	drained := 0
	for i, ref := range slots {
		if ref == heap.NilRef {
			continue
		}
		if err := h.Free(ref); err != nil {
			return fmt.Errorf("drain ref %#x: %w", ref, err)
		}
		log.Info("free remaining", "op", i, "ref", ref)
		drained++
	}

	printReport(out, h.Stats(), seed, failures, drained)
	return nil
}

func printReport(out io.Writer, s heap.Stats, seed uint64, failures, drained int) {
	fmt.Fprintf(out, "seed:          %d\n", seed)
	fmt.Fprintf(out, "allocs:        %d (%d failed)\n", s.Allocs, failures)
	fmt.Fprintf(out, "frees:         %d (%d drained at exit)\n", s.Frees, drained)
	fmt.Fprintf(out, "grows:         %d\n", s.Grows)
	fmt.Fprintf(out, "splits:        %d\n", s.Splits)
	fmt.Fprintf(out, "merges:        %d\n", s.Merges)
	fmt.Fprintf(out, "break offset:  %d / %d bytes\n", s.BreakOffset, s.Capacity)
	fmt.Fprintf(out, "free blocks:   %d (%d bytes, largest %d)\n",
		s.FreeBlocks, s.FreeBytes, s.LargestFree)
}
