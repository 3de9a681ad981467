package bitmap

import (
	"bytes"
	"reflect"
	"testing"
)

func mustDense(t *testing.T, s string) Dense {
	t.Helper()
	d, err := FromString(s)
	if err != nil {
		t.Fatalf("building bitmap from %q: %v", s, err)
	}
	return d
}

func TestDenseGet(t *testing.T) {
	tcs := []struct {
		name  string
		data  Dense
		edata []bool
	}{
		{"implicit zeros", NewDense(nil, 3), []bool{false, false, false}},
		{"aligned", mustDense(t, "10101010"), []bool{true, false, true, false, true, false, true, false}},
		{"multibyte",
			mustDense(t, "00000000 101"),
			[]bool{false, false, false, false, false, false, false, false, true, false, true}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var d []bool
			for i := 0; i < tc.data.Size(); i++ {
				d = append(d, tc.data.Get(i))
			}
			if !reflect.DeepEqual(d, tc.edata) {
				t.Errorf("t.Get() == %v, want %v", d, tc.edata)
			}
		})
	}
}

func TestDenseAppendBit(t *testing.T) {
	var d Dense
	for _, b := range []bool{true, false, true, true, false, false, false, true, true} {
		d.AppendBit(b)
	}
	want := mustDense(t, "10110001 1")
	if !bytes.Equal(d.Data(), want.Data()) {
		t.Errorf("got %08b, want %08b", d.Data(), want.Data())
	}
	if d.Size() != 9 {
		t.Errorf("got bitmap of len %d, want 9", d.Size())
	}
}

func TestDenseFlip(t *testing.T) {
	d := mustDense(t, "0110")
	d.Flip(0)
	d.Flip(1)
	want := mustDense(t, "1010")
	if !bytes.Equal(d.Data(), want.Data()) {
		t.Errorf("got %04b, want %04b", d.Data(), want.Data())
	}
}

func TestDenseString(t *testing.T) {
	tcs := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"10101010 011", "10101010011"},
	}
	for _, tc := range tcs {
		d := mustDense(t, tc.in)
		if got := d.String(); got != tc.want {
			t.Errorf("String() == %q, want %q", got, tc.want)
		}
	}
}

func TestNewDenseClipsTail(t *testing.T) {
	// Bits past the declared length must read as zero even when the backing
	// bytes had them set.
	d := NewDense([]byte{0xFF}, 3)
	if got := CountOnes(d); got != 3 {
		t.Errorf("CountOnes == %d, want 3", got)
	}
	for i := 3; i < 8; i++ {
		if d.Get(i) {
			t.Errorf("Get(%d) == true past end of bitmap", i)
		}
	}
}
