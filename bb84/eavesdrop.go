package bb84

import (
	"math/rand"

	"bb84sim/bb84/bitmap"
	"bb84sim/bb84/qubit"
)

// An eavesdropper measures every qubit in transit in an independently drawn
// basis. Interception leaves no explicit mark on the qubits; the disturbed
// mask records which ones collapsed so tests can assert on the expected
// downstream error statistics.
type eavesdropper struct {
	rand *rand.Rand

	bases     bitmap.Dense
	results   bitmap.Dense
	disturbed bitmap.Dense
}

// intercept measures each qubit in a uniformly drawn basis, mutating the
// sequence in place before it travels onward to the receiver.
func (e *eavesdropper) intercept(qubits []*qubit.Qubit) {
	for _, q := range qubits {
		b := qubit.RandomBasis(e.rand)
		e.bases.AppendBit(b == qubit.X)
		e.disturbed.AppendBit(b != q.Basis())
		e.results.AppendBit(q.Measure(b, e.rand))
	}
}
