package rectpack

import "testing"

func TestFindFreeContainmentAndDisjointness(t *testing.T) {
	p := New(1, 1)

	sizes := [][2]float32{
		{0.5, 0.25}, {0.25, 0.5}, {0.3, 0.3}, {0.2, 0.2},
		{0.1, 0.4}, {0.15, 0.15}, {0.05, 0.05}, {0.2, 0.1},
	}
	var placed []Rect
	for _, s := range sizes {
		r, ok := p.FindFree(s[0], s[1])
		if !ok {
			continue
		}
		if r.Width != s[0] || r.Height != s[1] {
			t.Errorf("placed size (%g, %g), requested (%g, %g)", r.Width, r.Height, s[0], s[1])
		}
		placed = append(placed, r)
	}
	if len(placed) < 6 {
		t.Fatalf("only %d of %d rectangles placed", len(placed), len(sizes))
	}

	const eps = 1e-6
	for _, r := range placed {
		if r.X < -eps || r.Y < -eps || r.X+r.Width > 1+eps || r.Y+r.Height > 1+eps {
			t.Errorf("rectangle %+v exceeds the canvas", r)
		}
	}
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if a.X < b.X+b.Width-eps && b.X < a.X+a.Width-eps &&
				a.Y < b.Y+b.Height-eps && b.Y < a.Y+a.Height-eps {
				t.Errorf("rectangles %+v and %+v overlap", a, b)
			}
		}
	}
}

func TestFindFreeRejectsOversized(t *testing.T) {
	p := New(1, 1)
	if _, ok := p.FindFree(2, 0.5); ok {
		t.Error("placed a rectangle wider than the canvas")
	}
	if _, ok := p.FindFree(0.5, 1.5); ok {
		t.Error("placed a rectangle taller than the canvas")
	}
	if _, ok := p.FindFree(1, 1); !ok {
		t.Error("exact-fit rectangle rejected")
	}
	if _, ok := p.FindFree(0.01, 0.01); ok {
		t.Error("placed into a full canvas")
	}
}

func TestFindFreeRejectsDegenerate(t *testing.T) {
	p := New(1, 1)
	if _, ok := p.FindFree(-0.1, 0.5); ok {
		t.Error("placed a negative-width rectangle")
	}
	if _, ok := p.FindFree(0.5, -0.1); ok {
		t.Error("placed a negative-height rectangle")
	}
	nan := float32(0)
	nan /= nan
	if _, ok := p.FindFree(nan, 0.5); ok {
		t.Error("placed a NaN-sized rectangle")
	}
	if _, ok := p.FindFree(0.5, nan); ok {
		t.Error("placed a NaN-sized rectangle")
	}
}

func TestFindFreeZeroSize(t *testing.T) {
	p := New(1, 1)

	r, ok := p.FindFree(0, 0.5)
	if !ok {
		t.Fatal("zero-width rectangle rejected")
	}
	if r.X < 0 || r.Y < 0 || r.X > 1 || r.Y+r.Height > 1 {
		t.Errorf("zero-width rectangle %+v exceeds the canvas", r)
	}
	if got := p.Used(); got != 0 {
		t.Errorf("Used() = %g after zero-area placements, want 0", got)
	}

	if _, ok := p.FindFree(0, 0); !ok {
		t.Error("zero-sized rectangle rejected")
	}

	// Zero-area placements must not shrink the free space.
	if _, ok := p.FindFree(1, 1); !ok {
		t.Error("exact-fit rectangle rejected after zero-area placements")
	}
}

func TestReset(t *testing.T) {
	p := New(1, 1)
	if _, ok := p.FindFree(1, 1); !ok {
		t.Fatal("initial placement failed")
	}
	if _, ok := p.FindFree(0.1, 0.1); ok {
		t.Fatal("canvas should be full")
	}

	p.Reset(2, 2)
	r, ok := p.FindFree(1.5, 1.5)
	if !ok {
		t.Fatal("placement after Reset failed")
	}
	if r.X != 0 || r.Y != 0 {
		t.Errorf("first placement after Reset at (%g, %g), want origin", r.X, r.Y)
	}
	if got := p.Used(); got <= 0.5 || got > 1 {
		t.Errorf("Used() = %g after a 1.5x1.5 placement on a 2x2 canvas", got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []Rect {
		p := New(1, 1)
		var out []Rect
		for _, s := range [][2]float32{{0.4, 0.4}, {0.4, 0.4}, {0.3, 0.2}, {0.5, 0.1}, {0.2, 0.6}} {
			if r, ok := p.FindFree(s[0], s[1]); ok {
				out = append(out, r)
			}
		}
		return out
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("placement counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("placement %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
