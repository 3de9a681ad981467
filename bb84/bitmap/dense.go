package bitmap

// A Dense is a bitmap where every bit is explicitly represented.
type Dense struct {
	bits []byte
	len  int
}

// NewDense returns a new dense bitmap whose contents are a copy of data, and
// whose length is bitLen. If bitLen is longer than data, then trailing zeros
// are added. If bitLen is negative, then it is inferred from data.
func NewDense(data []byte, bitLen int) Dense {
	if bitLen < 0 {
		bitLen = len(data) * byteSize
	}
	bits := make([]byte, BytesFor(bitLen))
	copy(bits, data)
	r := Dense{
		bits: bits,
		len:  bitLen,
	}
	r.clipTail()
	return r
}

// Empty returns an empty, dense bitmap.
func Empty() Dense {
	return Dense{}
}

// Get returns the i-th bit in this bitmap. Positions at or beyond Size are
// implicit trailing zeros.
func (d Dense) Get(i int) bool {
	if i < 0 || i >= d.len {
		return false
	}
	j, pos := i/byteSize, i%byteSize
	return 0 < d.bits[j]&(1<<pos)
}

// Size returns the number of bits in this bitmap.
func (d Dense) Size() int {
	return d.len
}

// SizeBytes returns the number of bytes needed to hold this bitmap.
func (d Dense) SizeBytes() int {
	return BytesFor(d.len)
}

// Data returns a copy of the bytes underlying this bitmap.
func (d Dense) Data() []byte {
	data := make([]byte, len(d.bits))
	copy(data, d.bits)
	return data
}

// AppendBit adds a single bit to the end of d.
func (d *Dense) AppendBit(bit bool) {
	i, pos := d.len/byteSize, d.len%byteSize
	d.len += 1
	if pos == 0 {
		d.bits = append(d.bits, 0)
	}
	if bit {
		d.bits[i] |= 1 << pos
	}
}

// Flip inverts the i-th bit in d.
func (d *Dense) Flip(i int) {
	j, pos := i/byteSize, i%byteSize
	d.bits[j] ^= 1 << pos
}

// String renders d as a string of '0's and '1's, lowest index first.
func (d Dense) String() string {
	r := make([]byte, 0, d.len)
	for i := 0; i < d.len; i++ {
		if d.Get(i) {
			r = append(r, '1')
		} else {
			r = append(r, '0')
		}
	}
	return string(r)
}

// clipTail zeroes the unused high bits of the final byte, so that bytewise
// operations never observe garbage past Size.
func (d *Dense) clipTail() {
	off := d.len % byteSize
	if off == 0 || len(d.bits) == 0 {
		return
	}
	d.bits[len(d.bits)-1] &= 0xFF >> (byteSize - off)
}
