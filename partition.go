package fastpane

import (
	"fmt"
	"math"
)

// Partition divides total cells between children in proportion to weights.
//
// Each child first gets floor(weight * total / sum). The cells left over are
// then handed out one at a time to the children in list order, so the first
// children absorb the rounding. The result always sums to total and never
// holds a negative extent.
//
// Every weight must be positive and finite. NewWindow and NewContainer reject
// anything else, so callers building weights by hand validate them first;
// Partition panics on an invalid weight.
func Partition(weights []float64, total int) []int {
	extents := make([]int, len(weights))
	var peak float64
	for _, w := range weights {
		if !validRelativeSize(w) {
			panic(fmt.Sprintf("fastpane: invalid partition weight %v", w))
		}
		peak = max(peak, w)
	}
	if total <= 0 || len(weights) == 0 {
		return extents
	}

	// scaled by the largest weight so the sum stays finite
	usable := make([]float64, len(weights))
	var sum float64
	for i, w := range weights {
		usable[i] = w / peak
		sum += usable[i]
	}

	unit := float64(total) / sum
	used := 0
	for i, w := range usable {
		extents[i] = max(0, int(math.Floor(w*unit)))
		used += extents[i]
	}

	// float error can push the floors past total; take it back from the end
	for i := len(extents) - 1; i >= 0 && used > total; i-- {
		take := min(extents[i], used-total)
		extents[i] -= take
		used -= take
	}

	for i := 0; used < total; i = (i + 1) % len(extents) {
		extents[i]++
		used++
	}
	return extents
}
