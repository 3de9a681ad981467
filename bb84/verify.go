package bb84

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"bb84sim/bb84/bitmap"
)

// A verdict captures the outcome of the public verification step.
type verdict struct {
	accepted   bool
	sample     []int
	mismatches []int
	key        bitmap.Dense
}

// verifySample draws sampleSize distinct sifted positions without
// replacement, publicly compares Alice's and Bob's bits there, and either
// accepts the round with the unrevealed remainder as the final key or aborts
// it outright. Any sampled mismatch is treated as conclusive evidence of
// tampering; there is no partial-success state.
func verifySample(sifted []int, aliceBits, bobBits bitmap.Dense, sampleSize int, rng *rand.Rand) (verdict, error) {
	if sampleSize > len(sifted) {
		return verdict{}, errors.Wrapf(ErrInsufficientKeyMaterial,
			"sampling %d of %d sifted bits", sampleSize, len(sifted))
	}
	sample := sampleIndices(sifted, sampleSize, rng)

	var mismatches []int
	for _, i := range sample {
		if aliceBits.Get(i) != bobBits.Get(i) {
			mismatches = append(mismatches, i)
		}
	}
	if len(mismatches) > 0 {
		// The whole sifted key is discarded on abort.
		return verdict{sample: sample, mismatches: mismatches}, nil
	}

	revealed := make(map[int]bool, len(sample))
	for _, i := range sample {
		revealed[i] = true
	}
	var key bitmap.Dense
	for _, i := range sifted {
		if revealed[i] {
			continue
		}
		key.AppendBit(aliceBits.Get(i))
	}
	return verdict{accepted: true, sample: sample, key: key}, nil
}

// sampleIndices picks k distinct entries of sifted uniformly at random,
// returned in ascending order. Once revealed, those positions never enter the
// final key.
func sampleIndices(sifted []int, k int, rng *rand.Rand) []int {
	perm := rng.Perm(len(sifted))
	sample := make([]int, 0, k)
	for _, j := range perm[:k] {
		sample = append(sample, sifted[j])
	}
	sort.Ints(sample)
	return sample
}
