package bb84

import (
	"math/rand"

	"bb84sim/bb84/bitmap"
)

// A Transcript records every publicly interesting sequence produced during a
// round, aligned by qubit index. Presentation layers read it to drive
// visuals; nothing in the core depends on it being consumed.
type Transcript struct {
	// AliceBits and AliceBases are the sender's ground-truth record.
	AliceBits  bitmap.Dense
	AliceBases bitmap.Dense

	// EveBases and EveBits record the eavesdropper's choices and
	// observations. Both are empty when interception was inactive.
	EveBases bitmap.Dense
	EveBits  bitmap.Dense

	// BobBases and BobBits are the receiver's choices and observations,
	// made on the qubit sequence as received.
	BobBases bitmap.Dense
	BobBits  bitmap.Dense
}

// A Result is the terminal outcome of one round. Aborting is a valid,
// expected outcome signaling detected tampering, not an error.
type Result struct {
	// Accepted reports whether every sampled comparison matched.
	Accepted bool

	// FinalKey holds the sifted bits minus the revealed sample, ascending
	// by qubit index. Empty when the round aborted.
	FinalKey bitmap.Dense

	// SiftedIndices lists the positions where both bases agreed.
	SiftedIndices []int

	// SampleIndices lists the positions revealed during verification.
	SampleIndices []int

	// MismatchIndices lists the sampled positions where the bits
	// disagreed. Non-empty iff the round aborted.
	MismatchIndices []int

	Stats      Stats
	Transcript Transcript
}

// Run executes one protocol round: generate, optionally intercept, measure,
// sift, verify. Rounds are independent and replayable; calling Run again with
// the same seeded options produces an identical Result.
func (s *Simulation) Run() (Result, error) {
	root := s.opts.Rand
	if root == nil {
		root = rand.New(rand.NewSource(s.opts.Seed))
	}
	// Each party gets an independent stream derived from the root so that
	// toggling interception never perturbs Bob's basis choices.
	aliceRand := rand.New(rand.NewSource(root.Int63()))
	eveRand := rand.New(rand.NewSource(root.Int63()))
	bobRand := rand.New(rand.NewSource(root.Int63()))
	verifyRand := rand.New(rand.NewSource(root.Int63()))

	n := s.opts.QubitCount
	aliceBits := randomBits(n, aliceRand)
	aliceBases := s.chooseAliceBases(n, aliceRand)
	qubits := prepare(aliceBits, aliceBases)
	s.logger.Debug("prepared qubits", "count", n)

	tr := Transcript{AliceBits: aliceBits, AliceBases: aliceBases}
	if s.opts.Intercept {
		eve := &eavesdropper{rand: eveRand}
		eve.intercept(qubits)
		tr.EveBases, tr.EveBits = eve.bases, eve.results
		s.logger.Debug("intercepted qubits", "disturbed", bitmap.CountOnes(eve.disturbed))
	}

	bob := &receiver{rand: bobRand, basisFunc: s.bobBasisFunc}
	tr.BobBases, tr.BobBits = bob.measure(qubits)

	sifted := siftIndices(aliceBases, tr.BobBases)
	s.logger.Debug("sifted bases", "kept", len(sifted), "dropped", n-len(sifted))

	v, err := verifySample(sifted, aliceBits, tr.BobBits, s.opts.SampleSize, verifyRand)
	if err != nil {
		return Result{}, err
	}

	stats := Stats{
		QubitCount:  n,
		SiftedBits:  len(sifted),
		SampledBits: len(v.sample),
		KeyBits:     v.key.Size(),
		Intercepted: s.opts.Intercept,
	}
	if len(v.sample) > 0 {
		stats.QBER = float64(len(v.mismatches)) / float64(len(v.sample))
	}
	s.logger.Info("round finished",
		"accepted", v.accepted, "keyBits", stats.KeyBits, "qber", stats.QBER)

	return Result{
		Accepted:        v.accepted,
		FinalKey:        v.key,
		SiftedIndices:   sifted,
		SampleIndices:   v.sample,
		MismatchIndices: v.mismatches,
		Stats:           stats,
		Transcript:      tr,
	}, nil
}

func (s *Simulation) chooseAliceBases(n int, rng *rand.Rand) bitmap.Dense {
	if s.aliceBasisFunc != nil {
		return s.aliceBasisFunc(n, rng)
	}
	return randomBits(n, rng)
}
