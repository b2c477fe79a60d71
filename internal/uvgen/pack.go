package uvgen

import (
	"math"
	"slices"

	"github.com/mrDIMAS/uvgen/internal/rectpack"
)

// packAttempts bounds the scale search. Packing is guaranteed to terminate
// even for island sets that never fit.
const packAttempts = 100

// packIslands arranges the islands inside the unit square. Islands are
// stable-sorted by descending area (ties keep segmentation order), then a
// uniform scale is searched iteratively: starting from an empirical estimate
// of the required square side, each failed attempt shrinks the islands by
// growing the empirical factor 1.33x until the packer fits all of them.
//
// Returns the chosen scale and one placement rectangle per island in the
// sorted order. If the attempt budget runs out, the rectangles of the last
// attempt are returned and trailing islands stay unplaced.
func packIslands(islands []*island, spacing float32, packer *rectpack.Packer) (float32, []rectpack.Rect) {
	total := float32(0)
	for _, isl := range islands {
		total += isl.area()
	}
	squareSide := float32(math.Sqrt(float64(total))) + spacing*float32(len(islands))

	slices.SortStableFunc(islands, func(a, b *island) int {
		switch {
		case b.area() < a.area():
			return -1
		case b.area() > a.area():
			return 1
		default:
			return 0
		}
	})

	twiceSpacing := spacing * 2

	// Empirical factor large enough to leave the packer room, small enough
	// not to waste atlas space. Grown after every failed attempt.
	empiric := float32(1.1)
	scale := float32(1)
	rects := make([]rectpack.Rect, 0, len(islands))

attemptLoop:
	for attempt := 0; attempt < packAttempts; attempt++ {
		rects = rects[:0]
		scale = 1 / (squareSide * empiric)

		// UVs must land in [0;1] with no wrapping, so the canvas is the
		// unit square.
		packer.Reset(1, 1)
		for _, isl := range islands {
			rect, ok := packer.FindFree(
				isl.width()*scale+twiceSpacing,
				isl.height()*scale+twiceSpacing,
			)
			if !ok {
				empiric *= 1.33
				continue attemptLoop
			}
			rects = append(rects, rect)
		}
		break
	}

	return scale, rects
}
