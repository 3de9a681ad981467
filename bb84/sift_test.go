package bb84

import (
	"reflect"
	"testing"

	"bb84sim/bb84/bitmap"
)

func mustBits(t *testing.T, s string) bitmap.Dense {
	t.Helper()
	d, err := bitmap.FromString(s)
	if err != nil {
		t.Fatalf("building bitmap from %q: %v", s, err)
	}
	return d
}

func TestSiftIndices(t *testing.T) {
	tcs := []struct {
		name         string
		alice, bob   string
		eout         []int
	}{{
		name:  "all agree",
		alice: "01010101",
		bob:   "01010101",
		eout:  []int{0, 1, 2, 3, 4, 5, 6, 7},
	}, {
		name:  "none agree",
		alice: "0101",
		bob:   "1010",
		eout:  nil,
	}, {
		name:  "storyboard example",
		alice: "01011001", // Z X Z X X Z Z X
		bob:   "00010011", // Z Z Z X Z Z X X
		eout:  []int{0, 2, 3, 5, 7},
	}, {
		name:  "empty",
		alice: "",
		bob:   "",
		eout:  nil,
	}}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := siftIndices(mustBits(t, tc.alice), mustBits(t, tc.bob))
			if !reflect.DeepEqual(got, tc.eout) {
				t.Errorf("siftIndices() == %v, want %v", got, tc.eout)
			}
		})
	}
}

func TestSiftIsOrderPreserving(t *testing.T) {
	alice := mustBits(t, "0110100110010110")
	bob := mustBits(t, "0101010101010101")
	idx := siftIndices(alice, bob)
	for i := 1; i < len(idx); i++ {
		if idx[i] <= idx[i-1] {
			t.Fatalf("sifted indices not strictly ascending: %v", idx)
		}
	}
	mask := siftMask(alice, bob)
	if len(idx) != bitmap.CountOnes(mask) {
		t.Errorf("got %d sifted indices, want %d matching positions", len(idx), bitmap.CountOnes(mask))
	}
}
