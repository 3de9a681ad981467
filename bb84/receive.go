package bb84

import (
	"math/rand"

	"bb84sim/bb84/bitmap"
	"bb84sim/bb84/qubit"
)

// A receiver measures the qubit sequence as it arrives. It has no knowledge
// of whether interception occurred upstream.
type receiver struct {
	rand *rand.Rand

	// basisFunc overrides uniform basis choice; tests use it to force
	// degenerate rounds.
	basisFunc func(n int, rng *rand.Rand) bitmap.Dense
}

// measure draws a basis for every qubit and observes each one, returning the
// chosen bases and the observed bits.
func (r *receiver) measure(qubits []*qubit.Qubit) (bases, bits bitmap.Dense) {
	bases = r.chooseBases(len(qubits))
	for i, q := range qubits {
		bits.AppendBit(q.Measure(basisAt(bases, i), r.rand))
	}
	return bases, bits
}

func (r *receiver) chooseBases(n int) bitmap.Dense {
	if r.basisFunc != nil {
		return r.basisFunc(n, r.rand)
	}
	return randomBits(n, r.rand)
}
