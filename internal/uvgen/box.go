package uvgen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// boxFace labels one of the six faces of an axis-aligned box. Every triangle
// is mapped onto the face its normal points at most directly.
type boxFace int

const (
	facePX boxFace = iota
	faceNX
	facePY
	faceNY
	facePZ
	faceNZ
	faceCount
)

// classifyFace picks the box face whose axis has the largest absolute
// component in the normal. Ties go Z over Y over X, so the result is stable
// for any input, including degenerate (zero) normals, which land on +Z.
func classifyFace(normal mgl32.Vec3) boxFace {
	ax := abs32(normal.X())
	ay := abs32(normal.Y())
	az := abs32(normal.Z())

	longest := float32(0)
	face := facePZ

	if ax >= longest {
		longest = ax
		face = facePX
		if normal.X() < 0 {
			face = faceNX
		}
	}
	if ay >= longest {
		longest = ay
		face = facePY
		if normal.Y() < 0 {
			face = faceNY
		}
	}
	if az >= longest {
		face = facePZ
		if normal.Z() < 0 {
			face = faceNZ
		}
	}

	return face
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// project drops the face's dominant axis. The axis pair and order per face
// are fixed so that increasing U/V follows a consistent winding on all six
// faces.
func (f boxFace) project(p mgl32.Vec3) mgl32.Vec2 {
	switch f {
	case facePX:
		return mgl32.Vec2{p.Y(), p.Z()}
	case faceNX:
		return mgl32.Vec2{p.Z(), p.Y()}
	case facePY:
		return mgl32.Vec2{p.Z(), p.X()}
	case faceNY:
		return mgl32.Vec2{p.X(), p.Z()}
	case facePZ:
		return mgl32.Vec2{p.X(), p.Y()}
	default: // faceNZ
		return mgl32.Vec2{p.Y(), p.X()}
	}
}

// uvBox buckets triangle indices per box face and keeps one projected
// triangle per input triangle, parallel to the triangle buffer.
type uvBox struct {
	faces       [faceCount][]int
	projections [][3]mgl32.Vec2
}

// buildUVBox classifies and projects every triangle. Any out-of-range vertex
// index aborts the whole call.
func buildUVBox(vertices []mgl32.Vec3, triangles [][3]uint32) (*uvBox, error) {
	box := &uvBox{
		projections: make([][3]mgl32.Vec2, 0, len(triangles)),
	}

	for i, tri := range triangles {
		for _, vi := range tri {
			if int(vi) >= len(vertices) {
				return nil, fmt.Errorf("uvgen: triangle %d references vertex %d of %d: %w",
					i, vi, len(vertices), ErrInvalidIndex)
			}
		}

		a := vertices[tri[0]]
		b := vertices[tri[1]]
		c := vertices[tri[2]]

		normal := b.Sub(a).Cross(c.Sub(a))
		face := classifyFace(normal)

		box.faces[face] = append(box.faces[face], i)
		box.projections = append(box.projections, [3]mgl32.Vec2{
			face.project(a),
			face.project(b),
			face.project(c),
		})
	}

	return box, nil
}
