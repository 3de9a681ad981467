package bb84

import (
	"math/rand"

	"bb84sim/bb84/bitmap"
	"bb84sim/bb84/qubit"
)

// randomBits returns n bits, each independently and uniformly drawn from rng.
// Basis sequences share this representation: 0 encodes Z and 1 encodes X.
func randomBits(n int, rng *rand.Rand) bitmap.Dense {
	var d bitmap.Dense
	for i := 0; i < n; i++ {
		d.AppendBit(rng.Intn(2) == 1)
	}
	return d
}

// basisAt decodes the i-th entry of a basis sequence.
func basisAt(bases bitmap.Dense, i int) qubit.Basis {
	if bases.Get(i) {
		return qubit.X
	}
	return qubit.Z
}

// prepare encodes each (bit, basis) pair into a freshly prepared qubit. The
// returned qubits are conceptually handed off to whichever party measures
// them next; the bit/basis sequences remain Alice's ground-truth record.
func prepare(bits, bases bitmap.Dense) []*qubit.Qubit {
	qs := make([]*qubit.Qubit, 0, bits.Size())
	for i := 0; i < bits.Size(); i++ {
		qs = append(qs, qubit.New(bits.Get(i), basisAt(bases, i)))
	}
	return qs
}
