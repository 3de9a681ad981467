package bb84

import "bb84sim/bb84/bitmap"

// siftMask marks the positions where the two basis sequences agree.
func siftMask(aliceBases, bobBases bitmap.Dense) bitmap.Dense {
	return bitmap.XNor(aliceBases, bobBases)
}

// siftIndices lists, in ascending order, the positions retained by sifting.
// An empty result is valid; downstream verification must cope with it.
func siftIndices(aliceBases, bobBases bitmap.Dense) []int {
	mask := siftMask(aliceBases, bobBases)
	var idx []int
	for i := 0; i < mask.Size(); i++ {
		if mask.Get(i) {
			idx = append(idx, i)
		}
	}
	return idx
}
