// Package bb84 simulates rounds of BB84 quantum key distribution: random
// bit/basis generation, optional eavesdropper interception, receiver
// measurement, public basis sifting, and sample-based verification with a
// binary accept/abort decision.
//
// The simulation is single-threaded and fully deterministic given a seed.
// Presentation layers consume the Result returned by Run; the core never
// depends on how (or whether) its state transitions are rendered.
package bb84

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/pkg/errors"

	"bb84sim/bb84/bitmap"
)

// Stats packages together a collection of potentially interesting metrics
// pertaining to one simulated round.
type Stats struct {
	// QubitCount is the number of qubits Alice sent.
	QubitCount int
	// SiftedBits counts positions where Alice's and Bob's bases agreed.
	SiftedBits int
	// SampledBits counts sifted positions revealed during verification.
	SampledBits int
	// KeyBits is the length of the final key; zero when the round aborted.
	KeyBits int
	// QBER is the error rate observed over the revealed sample.
	QBER float64
	// Intercepted records whether the eavesdropping stage was active.
	Intercepted bool
}

// SimulationOpts packages together the arguments necessary to construct a new
// Simulation.
type SimulationOpts struct {
	// QubitCount is the number of qubits to exchange. Must not be negative.
	QubitCount int

	// Intercept activates the eavesdropping stage: every qubit is measured
	// in transit in an independently drawn basis before reaching Bob.
	Intercept bool

	// SampleSize is the number of sifted bits to reveal and compare during
	// verification. Must not be negative. A round whose sifted key is
	// shorter than SampleSize fails with ErrInsufficientKeyMaterial.
	SampleSize int

	// Seed determines every random draw in the round, making it replayable.
	// Ignored when Rand is non-nil.
	Seed int64

	// Rand overrides Seed with an explicit randomness source.
	Rand *rand.Rand

	// Logger receives per-stage debug records. Defaults to a silent logger.
	Logger *slog.Logger
}

// A Simulation executes BB84 rounds for one fixed parameterization.
type Simulation struct {
	opts   SimulationOpts
	logger *slog.Logger

	// Test hooks for forcing degenerate basis choices.
	aliceBasisFunc func(n int, rng *rand.Rand) bitmap.Dense
	bobBasisFunc   func(n int, rng *rand.Rand) bitmap.Dense
}

// NewSimulation returns a new Simulation, configured in accordance with opts,
// or an error wrapping ErrInvalidArgument if the options are nonsensical.
func NewSimulation(opts SimulationOpts) (*Simulation, error) {
	if opts.QubitCount < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "qubit count %d", opts.QubitCount)
	}
	if opts.SampleSize < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "sample size %d", opts.SampleSize)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Simulation{opts: opts, logger: logger}, nil
}
