// Package preview renders the UV layout of a generated patch into an image,
// one flat color per island, so packing quality can be inspected without a
// baking pass.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/mrDIMAS/uvgen/internal/uvgen"
)

// Options controls the output image.
type Options struct {
	// Size is the final edge length in pixels.
	Size int
	// Supersample renders at Size*Supersample and downsamples, to keep thin
	// islands visible. 1 disables it.
	Supersample int
}

var background = color.NRGBA{24, 24, 28, 255}

// palette cycles per island, in island discovery order.
var palette = []color.NRGBA{
	{231, 76, 60, 255},
	{46, 204, 113, 255},
	{52, 152, 219, 255},
	{241, 196, 15, 255},
	{155, 89, 182, 255},
	{26, 188, 156, 255},
	{230, 126, 34, 255},
	{236, 240, 241, 255},
	{127, 140, 141, 255},
	{192, 57, 43, 255},
	{39, 174, 96, 255},
	{142, 68, 173, 255},
}

// Render rasterizes every triangle of the patch in UV space. V grows upward,
// so the image is flipped vertically relative to raw coordinates.
func Render(patch *uvgen.SurfaceDataPatch, opts Options) *image.NRGBA {
	size := opts.Size
	if size <= 0 {
		size = 1024
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w := size * ss

	img := image.NewNRGBA(image.Rect(0, 0, w, w))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = background.R
		img.Pix[i+1] = background.G
		img.Pix[i+2] = background.B
		img.Pix[i+3] = background.A
	}

	islandOf := triangleIslands(patch.Triangles)

	for ti, tri := range patch.Triangles {
		c := palette[islandOf[ti]%len(palette)]
		var xs, ys [3]float64
		valid := true
		for k, vi := range tri {
			if int(vi) >= len(patch.SecondTexCoords) {
				valid = false
				break
			}
			uv := patch.SecondTexCoords[vi]
			xs[k] = float64(uv.X()) * float64(w)
			ys[k] = (1 - float64(uv.Y())) * float64(w)
		}
		if valid {
			fillTriangle(img, xs, ys, c)
		}
	}

	if ss > 1 {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst
	}
	return img
}

// WriteWebP encodes the image losslessly to the given path.
func WriteWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}

// fillTriangle fills one 2D triangle with edge functions, clamped to the
// image bounds. Degenerate triangles cover no pixels and are dropped.
func fillTriangle(img *image.NRGBA, xs, ys [3]float64, c color.NRGBA) {
	area := (xs[1]-xs[0])*(ys[2]-ys[0]) - (ys[1]-ys[0])*(xs[2]-xs[0])
	if area == 0 {
		return
	}

	minX := int(min(xs[0], xs[1], xs[2]))
	maxX := int(max(xs[0], xs[1], xs[2])) + 1
	minY := int(min(ys[0], ys[1], ys[2]))
	maxY := int(max(ys[0], ys[1], ys[2])) + 1

	b := img.Bounds()
	minX = max(minX, b.Min.X)
	minY = max(minY, b.Min.Y)
	maxX = min(maxX, b.Max.X)
	maxY = min(maxY, b.Max.Y)

	for y := minY; y < maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float64(x) + 0.5

			w0 := (xs[1]-xs[0])*(py-ys[0]) - (ys[1]-ys[0])*(px-xs[0])
			w1 := (xs[2]-xs[1])*(py-ys[1]) - (ys[2]-ys[1])*(px-xs[1])
			w2 := (xs[0]-xs[2])*(py-ys[2]) - (ys[0]-ys[2])*(px-xs[2])

			// Accept either winding.
			inside := (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)
			if !inside {
				continue
			}

			off := img.PixOffset(x, y)
			img.Pix[off] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = c.A
		}
	}
}

// triangleIslands groups triangles that share vertex indices and returns one
// island id per triangle, ids assigned in first-encounter order. Union-find
// over vertex indices; array-backed, so the result is deterministic.
func triangleIslands(triangles [][3]uint32) []int {
	maxVertex := uint32(0)
	for _, tri := range triangles {
		for _, vi := range tri {
			if vi > maxVertex {
				maxVertex = vi
			}
		}
	}

	parent := make([]int32, maxVertex+1)
	for i := range parent {
		parent[i] = int32(i)
	}
	var find func(int32) int32
	find = func(v int32) int32 {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}

	for _, tri := range triangles {
		a := find(int32(tri[0]))
		b := find(int32(tri[1]))
		c := find(int32(tri[2]))
		parent[b] = a
		parent[c] = a
	}

	ids := make(map[int32]int)
	out := make([]int, len(triangles))
	for ti, tri := range triangles {
		root := find(int32(tri[0]))
		id, ok := ids[root]
		if !ok {
			id = len(ids)
			ids[root] = id
		}
		out[ti] = id
	}
	return out
}
