// Package bitmap provides utilities for operating on densely-packed arrays of
// booleans.
package bitmap

import (
	"fmt"
	"math/bits"
)

// TODO: this could be more efficient on many architectures if we used larger
//   blocks than 8-bit bytes.
const byteSize = 8

// And returns the bitwise AND of two bitmaps. If one of the two is shorter
// than the other, trailing zeros are implied to make the sizes match.
func And(a, b Dense) Dense {
	long := a
	if b.len > a.len {
		long = b
	}
	r := Dense{
		bits: make([]byte, BytesFor(long.len)),
		len:  long.len,
	}
	for i := range r.bits {
		r.bits[i] = byteAt(a, i) & byteAt(b, i)
	}
	return r
}

// XOr returns the bitwise XOR of two bitmaps. If one of the two is shorter
// than the other, trailing zeros are implied to make the sizes match.
func XOr(a, b Dense) Dense {
	long := a
	if b.len > a.len {
		long = b
	}
	r := Dense{
		bits: make([]byte, BytesFor(long.len)),
		len:  long.len,
	}
	for i := range r.bits {
		r.bits[i] = byteAt(a, i) ^ byteAt(b, i)
	}
	return r
}

// XNor returns the bitwise equality of two bitmaps. If one of the two is
// shorter than the other, trailing zeros are implied to make the sizes match.
func XNor(a, b Dense) Dense {
	long := a
	if b.len > a.len {
		long = b
	}
	r := Dense{
		bits: make([]byte, BytesFor(long.len)),
		len:  long.len,
	}
	for i := range r.bits {
		r.bits[i] = ^(byteAt(a, i) ^ byteAt(b, i))
	}
	r.clipTail()
	return r
}

// Select selects a subset of bits from data, according to which bits are set
// in mask.
func Select(data, mask Dense) Dense {
	var d Dense
	for i := 0; i < data.Size(); i++ {
		if !mask.Get(i) {
			continue
		}
		d.AppendBit(data.Get(i))
	}
	return d
}

// CountOnes returns the total number of bits set in d.
func CountOnes(d Dense) int {
	var sum int
	for _, b := range d.bits {
		sum += bits.OnesCount8(b)
	}
	return sum
}

// Equal returns true iff a and b have the same length and contain the same
// bits.
func Equal(a, b Dense) bool {
	return a.len == b.len && CountOnes(XOr(a, b)) == 0
}

// FromString converts a string of '1's and '0's to a Dense. Spaces are
// ignored, which allows grouping bits for readability.
func FromString(s string) (Dense, error) {
	d := Dense{}
	for _, c := range s {
		switch c {
		case '1':
			d.AppendBit(true)
		case '0':
			d.AppendBit(false)
		case ' ':
			continue
		default:
			return Dense{}, fmt.Errorf("invalid bitmap string rep: %s", s)
		}
	}
	return d, nil
}

// BytesFor returns the number of bytes necessary to hold the provided number
// of bits.
func BytesFor(bits int) int {
	return (bits + byteSize - 1) / byteSize
}

func byteAt(d Dense, i int) byte {
	if i >= len(d.bits) {
		return 0
	}
	return d.bits[i]
}
