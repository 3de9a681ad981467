// Package qubit models individual bit-carrying quantum units and the
// measurement rule that disturbs them.
package qubit

import "math/rand"

// A Basis identifies one of the two encoding/measurement schemes for a qubit.
// Bit values are only meaningfully comparable between parties that used the
// same basis.
type Basis byte

const (
	// Z is the rectilinear basis.
	Z Basis = iota
	// X is the diagonal basis.
	X
)

// String implements fmt.Stringer.
func (b Basis) String() string {
	if b == X {
		return "X"
	}
	return "Z"
}

// RandomBasis returns a uniformly drawn basis.
func RandomBasis(rng *rand.Rand) Basis {
	return Basis(rng.Intn(2))
}

// A Qubit is a single transmitted bit-carrying unit. Its bit value is
// meaningful only relative to its current preparation basis.
type Qubit struct {
	bit      bool
	basis    Basis
	measured bool
}

// New returns a qubit prepared with the given logical bit in the given basis.
func New(bit bool, basis Basis) *Qubit {
	return &Qubit{bit: bit, basis: basis}
}

// Bit returns the logical value currently encoded in q, relative to Basis.
func (q *Qubit) Bit() bool {
	return q.bit
}

// Basis returns the basis q is currently encoded in.
func (q *Qubit) Basis() Basis {
	return q.basis
}

// Measured reports whether any party has observed q since it was prepared.
func (q *Qubit) Measured() bool {
	return q.measured
}

// Measure observes q in basis b. Measuring in the preparation basis returns
// the encoded bit and leaves the state undisturbed. Measuring in the other
// basis redraws the bit uniformly and collapses q into b; the previous state
// is unrecoverable. Either way q is marked as measured.
//
// This is the single place encoding the collapse rule, applied identically
// whether the measuring party is an eavesdropper or the legitimate receiver.
func (q *Qubit) Measure(b Basis, rng *rand.Rand) bool {
	q.measured = true
	if b != q.basis {
		q.bit = rng.Intn(2) == 1
		q.basis = b
	}
	return q.bit
}
