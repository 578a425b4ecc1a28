package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRunFlags(ops, maxSize, capacity int, seed uint64, track bool) {
	runOps = ops
	runMaxSize = maxSize
	runCapacity = capacity
	runSeed = seed
	runTrack = track
	quiet = true
	verbose = false
}

func TestRunStressDeterministic(t *testing.T) {
	setRunFlags(200, 4096, 1<<20, 1234, false)

	var out bytes.Buffer
	require.NoError(t, runStress(&out))

	report := out.String()
	assert.Contains(t, report, "seed:          1234")
	assert.Contains(t, report, "allocs:")
	assert.Contains(t, report, "frees:")
	assert.Contains(t, report, "break offset:")

	// Same seed, same report.
	var out2 bytes.Buffer
	require.NoError(t, runStress(&out2))
	assert.Equal(t, report, out2.String())
}

func TestRunStressWithTracking(t *testing.T) {
	// Tracking turns any double or foreign free by the driver into an error,
	// so a clean run proves the bookkeeping frees each block exactly once.
	setRunFlags(500, 8192, 1<<20, 99, true)

	var out bytes.Buffer
	require.NoError(t, runStress(&out))
	assert.Contains(t, out.String(), "frees:")
}

func TestRunStressTinyArena(t *testing.T) {
	// An arena smaller than one growth chunk: every allocation fails, and
	// the run still completes with a report.
	setRunFlags(50, 1024, 8<<10, 7, false)

	var out bytes.Buffer
	require.NoError(t, runStress(&out))
	assert.Contains(t, out.String(), "allocs:        0")
}
