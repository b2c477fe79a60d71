// Package rectpack is a small best-effort 2D rectangle packer over a float
// canvas. Placement is first-fit: free space is kept as an ordered list of
// disjoint rectangles, a request takes the first free rectangle it fits in,
// and the remainder is split guillotine-style back into the list. Disjoint
// free rectangles mean placements can never overlap each other or leave the
// canvas.
package rectpack

// Rect is an axis-aligned rectangle, position at the top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Packer packs rectangles into a fixed canvas. The zero value is unusable;
// construct with New.
type Packer struct {
	width, height float32
	free          []Rect
	usedArea      float32
}

// New returns a packer with an empty canvas of the given size.
func New(width, height float32) *Packer {
	p := &Packer{}
	p.Reset(width, height)
	return p
}

// Reset discards all placed rectangles and starts over with a canvas of the
// given size.
func (p *Packer) Reset(width, height float32) {
	p.width = width
	p.height = height
	p.usedArea = 0
	p.free = p.free[:0]
	if width > 0 && height > 0 {
		p.free = append(p.free, Rect{0, 0, width, height})
	}
}

// FindFree places a new width x height rectangle and returns its position,
// or false if no free region is large enough. Identical call sequences
// produce identical placements.
//
// Zero-sized requests are valid: a degenerate island still needs a
// position, and its empty interior cannot overlap anything. Negative or NaN
// sizes never fit.
func (p *Packer) FindFree(width, height float32) (Rect, bool) {
	if !(width >= 0) || !(height >= 0) {
		return Rect{}, false
	}

	for i, f := range p.free {
		if width > f.Width || height > f.Height {
			continue
		}

		placed := Rect{f.X, f.Y, width, height}

		// A zero-area placement occupies nothing, so the free rectangle
		// stays available as-is.
		if width == 0 || height == 0 {
			return placed, true
		}

		// Split the leftover into two disjoint pieces: a strip to the right
		// of the placement and a strip below spanning the full width.
		right := Rect{f.X + width, f.Y, f.Width - width, height}
		bottom := Rect{f.X, f.Y + height, f.Width, f.Height - height}

		p.free = append(p.free[:i], p.free[i+1:]...)
		if right.Width > 0 && right.Height > 0 {
			p.free = append(p.free, right)
		}
		if bottom.Width > 0 && bottom.Height > 0 {
			p.free = append(p.free, bottom)
		}

		p.usedArea += width * height
		return placed, true
	}

	return Rect{}, false
}

// Used reports the ratio of placed area to canvas area, in [0;1].
func (p *Packer) Used() float32 {
	canvas := p.width * p.height
	if canvas <= 0 {
		return 0
	}
	return p.usedArea / canvas
}
